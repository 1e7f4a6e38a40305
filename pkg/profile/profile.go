// Package profile defines the recipient records a phrasebook stores.
package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// GeneralID is the pseudo-profile representing "no specific recipient". It is
// never persisted and always substitutes empty name values.
const GeneralID = "general"

// Profile is a messaging recipient with base and target language name forms.
type Profile struct {
	ID              string     `json:"id"`
	DisplayName     string     `json:"displayName"`
	MainTranslation string     `json:"mainTranslation"`
	Image           string     `json:"image,omitempty"`
	Birthdate       string     `json:"birthdate,omitempty"` // YYYY-MM-DD
	Timezone        string     `json:"timezone,omitempty"`  // IANA identifier
	Nicknames       []Nickname `json:"nicknames"`
}

// Nickname is an alternate name pair scoped to one profile. BaseValue and
// TargetValue are the substitution strings; Display is what pickers show.
type Nickname struct {
	ID          string `json:"id"`
	Display     string `json:"display"`
	BaseValue   string `json:"baseLang_value"`
	TargetValue string `json:"targetLang_value"`
}

// General returns the sentinel pseudo-profile.
func General() *Profile {
	return &Profile{ID: GeneralID, DisplayName: "General"}
}

// IsGeneral reports whether p is the no-recipient sentinel.
func (p *Profile) IsGeneral() bool {
	return p != nil && p.ID == GeneralID
}

// Nickname returns the nickname with the given id, if present.
func (p *Profile) Nickname(id string) (Nickname, bool) {
	for _, n := range p.Nicknames {
		if n.ID == id {
			return n, true
		}
	}
	return Nickname{}, false
}

// Find locates a profile by id, or by display name ignoring case. Commands
// accept either form.
func Find(profiles []*Profile, ref string) (*Profile, bool) {
	for _, p := range profiles {
		if p != nil && p.ID == ref {
			return p, true
		}
	}
	for _, p := range profiles {
		if p != nil && strings.EqualFold(p.DisplayName, ref) {
			return p, true
		}
	}
	return nil, false
}

// FindNickname locates a nickname by id, or by display text ignoring case.
func (p *Profile) FindNickname(ref string) (Nickname, bool) {
	if p == nil {
		return Nickname{}, false
	}
	if n, ok := p.Nickname(ref); ok {
		return n, true
	}
	for _, n := range p.Nicknames {
		if strings.EqualFold(n.Display, ref) {
			return n, true
		}
	}
	return Nickname{}, false
}

const birthdateLayout = "2006-01-02"

// Validate checks the record before it crosses the store boundary.
func (p *Profile) Validate() error {
	if p == nil {
		return errors.New("profile: nil record")
	}
	if p.ID == "" {
		return errors.New("profile: id is required")
	}
	if p.ID == GeneralID {
		return errors.New("profile: id 'general' is reserved")
	}
	if p.DisplayName == "" {
		return errors.New("profile: displayName is required")
	}
	if p.Birthdate != "" {
		if _, err := time.Parse(birthdateLayout, p.Birthdate); err != nil {
			return fmt.Errorf("profile: invalid birthdate %q: %w", p.Birthdate, err)
		}
	}
	if p.Timezone != "" {
		if _, err := time.LoadLocation(p.Timezone); err != nil {
			return fmt.Errorf("profile: invalid timezone %q: %w", p.Timezone, err)
		}
	}
	seen := make(map[string]struct{}, len(p.Nicknames))
	for _, n := range p.Nicknames {
		if n.ID == "" {
			return errors.New("profile: nickname id is required")
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("profile: duplicate nickname id %q", n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate freely.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Nicknames = append([]Nickname(nil), p.Nicknames...)
	return &cp
}
