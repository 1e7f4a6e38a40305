// Package viewmodel reduces stored categories and the active selection to the
// render-ready slides the carousel displays. It is pure: no I/O, no state,
// same inputs always produce the same slides.
package viewmodel

import (
	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/selection"
	"tableflip.dev/phrasebook/pkg/template"
)

// Card is one phrase ready to render. Base and Target carry the raw templates
// so a copy can substitute with the selection current at copy time; Display is
// the base text with the build-time selection substituted.
type Card struct {
	PhraseID string
	Base     string
	Target   string
	Display  string
}

// Slide groups the cards of one category.
type Slide struct {
	CategoryID string
	Title      string
	Cards      []Card
}

// Build produces one slide per category, in category order, with every card's
// display text substituted for the given selection.
func Build(categories []*category.Category, values selection.Values) []Slide {
	slides := make([]Slide, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		slide := Slide{
			CategoryID: c.ID,
			Title:      c.Title,
			Cards:      make([]Card, 0, len(c.Phrases)),
		}
		for _, p := range c.Phrases {
			slide.Cards = append(slide.Cards, Card{
				PhraseID: p.ID,
				Base:     p.Base,
				Target:   p.Target,
				Display:  substitute(p.Base, values.Base),
			})
		}
		slides = append(slides, slide)
	}
	return slides
}

// Resubstitute re-derives every card's display text for a new selection
// without refetching. Raw templates are preserved, so it composes with Build
// in any order.
func Resubstitute(slides []Slide, values selection.Values) []Slide {
	out := make([]Slide, len(slides))
	for i, s := range slides {
		cards := make([]Card, len(s.Cards))
		for j, c := range s.Cards {
			c.Display = substitute(c.Base, values.Base)
			cards[j] = c
		}
		s.Cards = cards
		out[i] = s
	}
	return out
}

// CopyTexts resolves what a tap on the card copies: the target template and
// the displayed base text, both substituted with the selection at copy time.
func CopyTexts(c Card, values selection.Values) (copied, original string) {
	return substitute(c.Target, values.Target), substitute(c.Base, values.Base)
}

func substitute(tmpl, name string) string {
	return template.Substitute(tmpl, map[string]string{"name": name})
}
