// Package category defines the phrase groupings a phrasebook stores.
package category

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Category is a named, ordered grouping of phrases.
type Category struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Order   int      `json:"order"`
	Phrases []Phrase `json:"phrases"`
}

// Phrase is one canned bilingual message. Both texts may contain {name}
// placeholder tokens.
type Phrase struct {
	ID     string `json:"id"`
	Base   string `json:"baseLang"`
	Target string `json:"targetLang"`
}

// Phrase returns the phrase with the given id, if present.
func (c *Category) Phrase(id string) (Phrase, bool) {
	for _, p := range c.Phrases {
		if p.ID == id {
			return p, true
		}
	}
	return Phrase{}, false
}

// Find locates a category by id, or by title ignoring case. Commands accept
// either form.
func Find(categories []*Category, ref string) (*Category, bool) {
	for _, c := range categories {
		if c != nil && c.ID == ref {
			return c, true
		}
	}
	for _, c := range categories {
		if c != nil && strings.EqualFold(c.Title, ref) {
			return c, true
		}
	}
	return nil, false
}

// FindPhrase locates a phrase by 1-based position or by id.
func (c *Category) FindPhrase(ref string) (Phrase, bool) {
	if c == nil {
		return Phrase{}, false
	}
	if i, err := strconv.Atoi(ref); err == nil {
		if i < 1 || i > len(c.Phrases) {
			return Phrase{}, false
		}
		return c.Phrases[i-1], true
	}
	return c.Phrase(ref)
}

// Validate checks the record before it crosses the store boundary.
func (c *Category) Validate() error {
	if c == nil {
		return errors.New("category: nil record")
	}
	if c.ID == "" {
		return errors.New("category: id is required")
	}
	if c.Title == "" {
		return errors.New("category: title is required")
	}
	seen := make(map[string]struct{}, len(c.Phrases))
	for _, p := range c.Phrases {
		if p.ID == "" {
			return errors.New("category: phrase id is required")
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("category: duplicate phrase id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate freely.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Phrases = append([]Phrase(nil), c.Phrases...)
	return &cp
}

// Sort orders categories ascending by Order, breaking ties by ID so the
// ordering is total and deterministic.
func Sort(categories []*Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Order != categories[j].Order {
			return categories[i].Order < categories[j].Order
		}
		return categories[i].ID < categories[j].ID
	})
}
