// Package app provides high-level operations over profiles and categories.
// It wraps persistence and event broadcasting so UIs and CLIs can share logic:
// every mutation persists first, then publishes the matching list-changed
// event on the dispatcher.
package app

import (
	"context"
	"errors"

	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/store"
)

// Service is the sole writer of the profile and category collections. UI
// components never mutate records directly, only through these operations.
type Service struct {
	Persistence store.Persistence
	Bus         *bus.Dispatcher
}

var errNoPersistence = errors.New("app: no persistence configured")

// CopiedMessage is the payload published with bus.MessageCopied.
type CopiedMessage struct {
	Copied   string
	Original string
}

// NewService builds a service over the given persistence and dispatcher.
func NewService(p store.Persistence, d *bus.Dispatcher) *Service {
	return &Service{Persistence: p, Bus: d}
}

// Initialize seeds default profiles and categories on first run (either table
// empty) and publishes both list-changed events exactly once each so displays
// render the initial data. On subsequent runs it is a read-through no-op that
// still publishes.
func (s *Service) Initialize(ctx context.Context) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := s.initializeProfiles(ctx); err != nil {
		return err
	}
	if err := s.initializeCategories(ctx); err != nil {
		return err
	}
	s.publish(bus.ProfilesListChanged)
	s.publish(bus.CategoriesListChanged)
	return nil
}

func (s *Service) publish(event string) {
	if s.Bus != nil {
		s.Bus.Publish(event, nil)
	}
}
