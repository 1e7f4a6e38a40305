package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/profile"
	"tableflip.dev/phrasebook/pkg/seed"
	"tableflip.dev/phrasebook/pkg/store"
)

// Profiles returns all recipient profiles sorted by id.
func (s *Service) Profiles(ctx context.Context) ([]*profile.Profile, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	records, err := s.Persistence.GetAll(ctx, store.TableProfiles)
	if err != nil {
		return nil, err
	}
	profiles := make([]*profile.Profile, 0, len(records))
	for _, rec := range records {
		p := &profile.Profile{}
		if err := json.Unmarshal(rec.Data, p); err != nil {
			return nil, fmt.Errorf("app: decode profile %s: %w", rec.ID, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Profile fetches one profile by id.
func (s *Service) Profile(ctx context.Context, id string) (*profile.Profile, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	data, err := s.Persistence.Get(store.TableProfiles, id)
	if err != nil {
		return nil, err
	}
	p := &profile.Profile{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("app: decode profile %s: %w", id, err)
	}
	return p, nil
}

// CreateProfile stores a new recipient with an empty nickname list and a
// placeholder avatar derived from the display name.
func (s *Service) CreateProfile(ctx context.Context, displayName, mainTranslation string) (*profile.Profile, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	initial := "?"
	if displayName != "" {
		initial = string([]rune(displayName)[:1])
	}
	p := &profile.Profile{
		ID:              uuid.NewString(),
		DisplayName:     displayName,
		MainTranslation: mainTranslation,
		Image:           fmt.Sprintf("https://placehold.co/64x64/ccc/333?text=%s", initial),
		Nicknames:       []profile.Nickname{},
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Persistence.Put(store.TableProfiles, p.ID, p); err != nil {
		return nil, err
	}
	s.publish(bus.ProfilesListChanged)
	return p, nil
}

// ProfileUpdate carries the fields UpdateProfile may change.
type ProfileUpdate struct {
	DisplayName     *string
	MainTranslation *string
	Image           *string
	Birthdate       *string
	Timezone        *string
}

// UpdateProfile merges fields into an existing record and re-validates the
// result before persisting. A missing id is a no-op that still publishes.
func (s *Service) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	p, err := s.Profile(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.publish(bus.ProfilesListChanged)
			return nil
		}
		return err
	}
	if update.DisplayName != nil {
		p.DisplayName = *update.DisplayName
	}
	if update.MainTranslation != nil {
		p.MainTranslation = *update.MainTranslation
	}
	if update.Image != nil {
		p.Image = *update.Image
	}
	if update.Birthdate != nil {
		p.Birthdate = *update.Birthdate
	}
	if update.Timezone != nil {
		p.Timezone = *update.Timezone
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.Persistence.Put(store.TableProfiles, p.ID, p); err != nil {
		return err
	}
	s.publish(bus.ProfilesListChanged)
	return nil
}

// DeleteProfile removes a recipient and all of its nicknames.
func (s *Service) DeleteProfile(ctx context.Context, id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := s.Persistence.Delete(store.TableProfiles, id); err != nil {
		return err
	}
	s.publish(bus.ProfilesListChanged)
	return nil
}

// AddNickname appends a nickname to a profile. The base-language value
// defaults to the display text, matching how nicknames are entered. A missing
// profile fails silently, returning no nickname.
func (s *Service) AddNickname(ctx context.Context, profileID, display, targetValue string) (*profile.Nickname, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	p, err := s.Profile(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	n := profile.Nickname{
		ID:          uuid.NewString(),
		Display:     display,
		BaseValue:   display,
		TargetValue: targetValue,
	}
	p.Nicknames = append(p.Nicknames, n)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Persistence.Put(store.TableProfiles, p.ID, p); err != nil {
		return nil, err
	}
	s.publish(bus.ProfilesListChanged)
	return &n, nil
}

// NicknameUpdate carries the fields UpdateNickname may change.
type NicknameUpdate struct {
	Display     *string
	BaseValue   *string
	TargetValue *string
}

// UpdateNickname merges fields into one nickname of a profile. Missing
// profile or nickname is a silent no-op.
func (s *Service) UpdateNickname(ctx context.Context, profileID, nicknameID string, update NicknameUpdate) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	p, err := s.Profile(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	changed := false
	for i := range p.Nicknames {
		if p.Nicknames[i].ID != nicknameID {
			continue
		}
		if update.Display != nil {
			p.Nicknames[i].Display = *update.Display
		}
		if update.BaseValue != nil {
			p.Nicknames[i].BaseValue = *update.BaseValue
		}
		if update.TargetValue != nil {
			p.Nicknames[i].TargetValue = *update.TargetValue
		}
		changed = true
		break
	}
	if !changed {
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.Persistence.Put(store.TableProfiles, p.ID, p); err != nil {
		return err
	}
	s.publish(bus.ProfilesListChanged)
	return nil
}

// DeleteNickname removes one nickname from a profile. Missing profile is a
// silent no-op.
func (s *Service) DeleteNickname(ctx context.Context, profileID, nicknameID string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	p, err := s.Profile(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	kept := p.Nicknames[:0]
	for _, n := range p.Nicknames {
		if n.ID != nicknameID {
			kept = append(kept, n)
		}
	}
	p.Nicknames = kept
	if err := s.Persistence.Put(store.TableProfiles, p.ID, p); err != nil {
		return err
	}
	s.publish(bus.ProfilesListChanged)
	return nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

func (s *Service) initializeProfiles(ctx context.Context) error {
	records, err := s.Persistence.GetAll(ctx, store.TableProfiles)
	if err != nil {
		return err
	}
	if len(records) > 0 {
		return nil
	}
	for _, p := range seed.Profiles() {
		if err := s.Persistence.Put(store.TableProfiles, p.ID, p); err != nil {
			return fmt.Errorf("app: seed profile %s: %w", p.ID, err)
		}
	}
	return nil
}
