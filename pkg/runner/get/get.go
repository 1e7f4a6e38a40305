package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/phrasebook/pkg/app"
	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/printers"
	"tableflip.dev/phrasebook/pkg/selection"
	"tableflip.dev/phrasebook/pkg/store"
)

// Kind selects what a Get lists.
const (
	KindPhrases    = "phrases"
	KindCategories = "categories"
	KindProfiles   = "profiles"
)

// Get lists phrases, categories, or profiles. Phrase listings substitute the
// resolved recipient into the base text, the way the carousel displays them.
type Get struct {
	ShowID      bool
	Kind        string
	Category    string
	Profile     string
	Nickname    string
	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	s := app.NewService(g.Persistence, bus.New())
	if err := s.Initialize(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.NewLine()

	switch g.Kind {
	case KindProfiles:
		profiles, err := s.Profiles(ctx)
		if err != nil {
			return err
		}
		pp.Title("Recipients")
		pp.Profiles(profiles, time.Now())
		return nil

	case KindCategories:
		categories, err := s.Categories(ctx)
		if err != nil {
			return err
		}
		pp.Title("Categories")
		pp.CategoryList(categories)
		return nil

	case KindPhrases, "":
		values, err := g.resolve(ctx, s)
		if err != nil {
			return err
		}
		categories, err := s.Categories(ctx)
		if err != nil {
			return err
		}
		if g.Category != "" {
			c, ok := category.Find(categories, g.Category)
			if !ok {
				return fmt.Errorf("unknown category %q", g.Category)
			}
			pp.Category(c, values)
			return nil
		}
		pp.Categories(categories, values)
		return nil

	default:
		return fmt.Errorf("unknown kind %q", g.Kind)
	}
}

func (g *Get) resolve(ctx context.Context, s *app.Service) (selection.Values, error) {
	profiles, err := s.Profiles(ctx)
	if err != nil {
		return selection.Values{}, err
	}
	state, err := selection.FromRefs(nil, profiles, g.Profile, g.Nickname)
	if err != nil {
		return selection.Values{}, err
	}
	return state.Current(), nil
}
