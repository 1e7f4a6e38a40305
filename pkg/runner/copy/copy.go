package copy

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/phrasebook/pkg/app"
	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/clipboard"
	"tableflip.dev/phrasebook/pkg/printers"
	"tableflip.dev/phrasebook/pkg/selection"
	"tableflip.dev/phrasebook/pkg/store"
	"tableflip.dev/phrasebook/pkg/template"
)

// Copy substitutes the resolved recipient into one phrase's target text and
// places it on the system clipboard. The selection is read at copy time, so
// the copied text always matches the recipient flags given.
type Copy struct {
	Category    string
	Phrase      string
	Profile     string
	Nickname    string
	Persistence store.Persistence
	Bus         *bus.Dispatcher
}

func (c *Copy) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("can not copy, no persistence")
	}
	d := c.Bus
	if d == nil {
		d = bus.New()
	}
	s := app.NewService(c.Persistence, d)
	if err := s.Initialize(ctx); err != nil {
		return err
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	cat, ok := category.Find(categories, c.Category)
	if !ok {
		return fmt.Errorf("unknown category %q", c.Category)
	}
	phrase, ok := cat.FindPhrase(c.Phrase)
	if !ok {
		return fmt.Errorf("unknown phrase %q in category %q", c.Phrase, cat.Title)
	}

	profiles, err := s.Profiles(ctx)
	if err != nil {
		return err
	}
	state, err := selection.FromRefs(d, profiles, c.Profile, c.Nickname)
	if err != nil {
		return err
	}
	values := state.Current()

	copied := template.Substitute(phrase.Target, map[string]string{"name": values.Target})
	original := template.Substitute(phrase.Base, map[string]string{"name": values.Base})

	if err := clipboard.Copy(copied); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	d.Publish(bus.MessageCopied, app.CopiedMessage{Copied: copied, Original: original})

	pp := printers.PrettyPrint{}
	pp.Copied(copied, original)
	return nil
}
