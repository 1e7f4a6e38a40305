package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/seed"
	"tableflip.dev/phrasebook/pkg/store"
)

// Categories returns all categories sorted ascending by order, ties broken by
// id so the ordering is deterministic.
func (s *Service) Categories(ctx context.Context) ([]*category.Category, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	records, err := s.Persistence.GetAll(ctx, store.TableCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]*category.Category, 0, len(records))
	for _, rec := range records {
		c := &category.Category{}
		if err := json.Unmarshal(rec.Data, c); err != nil {
			return nil, fmt.Errorf("app: decode category %s: %w", rec.ID, err)
		}
		categories = append(categories, c)
	}
	category.Sort(categories)
	return categories, nil
}

// Category fetches one category by id.
func (s *Service) Category(ctx context.Context, id string) (*category.Category, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	data, err := s.Persistence.Get(store.TableCategories, id)
	if err != nil {
		return nil, err
	}
	c := &category.Category{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("app: decode category %s: %w", id, err)
	}
	return c, nil
}

// CreateCategory stores a new empty category placed after the existing ones.
func (s *Service) CreateCategory(ctx context.Context, title string) (*category.Category, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	existing, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c := &category.Category{
		ID:      uuid.NewString(),
		Title:   title,
		Order:   len(existing),
		Phrases: []category.Phrase{},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.Persistence.Put(store.TableCategories, c.ID, c); err != nil {
		return nil, err
	}
	s.publish(bus.CategoriesListChanged)
	return c, nil
}

// CategoryUpdate carries the fields UpdateCategory may change.
type CategoryUpdate struct {
	Title *string
	Order *int
}

// UpdateCategory merges fields into an existing record and re-validates the
// result before persisting. A missing id is a no-op that still publishes;
// callers must not assume failure surfaces.
func (s *Service) UpdateCategory(ctx context.Context, id string, update CategoryUpdate) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	c, err := s.Category(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.publish(bus.CategoriesListChanged)
			return nil
		}
		return err
	}
	if update.Title != nil {
		c.Title = *update.Title
	}
	if update.Order != nil {
		c.Order = *update.Order
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.Persistence.Put(store.TableCategories, c.ID, c); err != nil {
		return err
	}
	s.publish(bus.CategoriesListChanged)
	return nil
}

// DeleteCategory removes a category and its phrases.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := s.Persistence.Delete(store.TableCategories, id); err != nil {
		return err
	}
	s.publish(bus.CategoriesListChanged)
	return nil
}

// AddPhrase appends a bilingual phrase to a category. A missing category
// fails silently, returning no phrase.
func (s *Service) AddPhrase(ctx context.Context, categoryID, base, target string) (*category.Phrase, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	c, err := s.Category(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	phrase := category.Phrase{ID: uuid.NewString(), Base: base, Target: target}
	c.Phrases = append(c.Phrases, phrase)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.Persistence.Put(store.TableCategories, c.ID, c); err != nil {
		return nil, err
	}
	s.publish(bus.CategoriesListChanged)
	return &phrase, nil
}

// PhraseUpdate carries the fields UpdatePhrase may change.
type PhraseUpdate struct {
	Base   *string
	Target *string
}

// UpdatePhrase merges fields into one phrase of a category. Missing category
// or phrase is a silent no-op.
func (s *Service) UpdatePhrase(ctx context.Context, categoryID, phraseID string, update PhraseUpdate) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	c, err := s.Category(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	changed := false
	for i := range c.Phrases {
		if c.Phrases[i].ID != phraseID {
			continue
		}
		if update.Base != nil {
			c.Phrases[i].Base = *update.Base
		}
		if update.Target != nil {
			c.Phrases[i].Target = *update.Target
		}
		changed = true
		break
	}
	if !changed {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.Persistence.Put(store.TableCategories, c.ID, c); err != nil {
		return err
	}
	s.publish(bus.CategoriesListChanged)
	return nil
}

// DeletePhrase removes one phrase from a category. Missing category is a
// silent no-op.
func (s *Service) DeletePhrase(ctx context.Context, categoryID, phraseID string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	c, err := s.Category(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	kept := c.Phrases[:0]
	for _, p := range c.Phrases {
		if p.ID != phraseID {
			kept = append(kept, p)
		}
	}
	c.Phrases = kept
	if err := s.Persistence.Put(store.TableCategories, c.ID, c); err != nil {
		return err
	}
	s.publish(bus.CategoriesListChanged)
	return nil
}

func (s *Service) initializeCategories(ctx context.Context) error {
	records, err := s.Persistence.GetAll(ctx, store.TableCategories)
	if err != nil {
		return err
	}
	if len(records) > 0 {
		return nil
	}
	for _, c := range seed.Categories() {
		if err := s.Persistence.Put(store.TableCategories, c.ID, c); err != nil {
			return fmt.Errorf("app: seed category %s: %w", c.ID, err)
		}
	}
	return nil
}
