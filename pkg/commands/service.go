package commands

import (
	"context"
	"fmt"

	"tableflip.dev/phrasebook/pkg/app"
	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/profile"
	"tableflip.dev/phrasebook/pkg/store"
)

// loadService builds the application service over the configured store. Each
// one-shot command gets its own dispatcher; events published during the
// command have no other subscribers.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.NewService(p, bus.New()), nil
}

// resolveCategory matches a command-line category reference against the store.
func resolveCategory(ctx context.Context, s *app.Service, ref string) (*category.Category, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := category.Find(categories, ref)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", ref)
	}
	return c, nil
}

// resolveProfile matches a command-line profile reference against the store.
func resolveProfile(ctx context.Context, s *app.Service, ref string) (*profile.Profile, error) {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := profile.Find(profiles, ref)
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", ref)
	}
	return p, nil
}
