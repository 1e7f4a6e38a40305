package initialize

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/phrasebook/pkg/app"
	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/store"
)

// Initialize seeds the store with the default profiles and categories when it
// is empty. Running it against a populated store is a no-op.
type Initialize struct {
	Persistence store.Persistence
}

func (i *Initialize) Do(ctx context.Context) error {
	if i.Persistence == nil {
		return errors.New("can not init, no persistence")
	}
	s := app.NewService(i.Persistence, bus.New())
	if err := s.Initialize(ctx); err != nil {
		return err
	}
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return err
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "store ready: %d profiles, %d categories\n", len(profiles), len(categories))
	return nil
}
