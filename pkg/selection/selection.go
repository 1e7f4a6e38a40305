// Package selection tracks the active recipient and reduces it to the value
// pair the template engine substitutes for {name}.
package selection

import (
	"errors"
	"fmt"

	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/profile"
)

// Values is the substitution pair derived from the active selection.
type Values struct {
	Base   string
	Target string
}

// ErrNicknameNotOwned is returned when a nickname outside the active profile
// is selected; prior selection is left unchanged.
var ErrNicknameNotOwned = errors.New("selection: nickname does not belong to active profile")

// State holds the active profile and optional nickname sub-selection. Every
// successful change is broadcast on the dispatcher as
// bus.ProfileSelectionChanged with the new Values payload.
type State struct {
	dispatcher *bus.Dispatcher

	active   *profile.Profile
	nickname *profile.Nickname
}

// New constructs an empty selection bound to the dispatcher.
func New(d *bus.Dispatcher) *State {
	return &State{dispatcher: d}
}

// SelectProfile makes p the active profile and clears any nickname choice.
// Selecting nil or the general sentinel yields empty substitution values.
func (s *State) SelectProfile(p *profile.Profile) {
	s.active = p.Clone()
	s.nickname = nil
	s.broadcast()
}

// SelectNickname activates a nickname belonging to the active profile. A
// nickname the active profile does not own is rejected and state is unchanged.
func (s *State) SelectNickname(n profile.Nickname) error {
	if s.active == nil || s.active.IsGeneral() {
		return ErrNicknameNotOwned
	}
	owned, ok := s.active.Nickname(n.ID)
	if !ok {
		return ErrNicknameNotOwned
	}
	s.nickname = &owned
	s.broadcast()
	return nil
}

// Profile returns the active profile, which may be nil or the general sentinel.
func (s *State) Profile() *profile.Profile {
	return s.active.Clone()
}

// Nickname returns the active nickname, if any.
func (s *State) Nickname() (profile.Nickname, bool) {
	if s.nickname == nil {
		return profile.Nickname{}, false
	}
	return *s.nickname, true
}

// Current reduces the selection to the substitution pair: the nickname values
// when a nickname is active, else the profile's name forms, else empty.
func (s *State) Current() Values {
	switch {
	case s.nickname != nil:
		return Values{Base: s.nickname.BaseValue, Target: s.nickname.TargetValue}
	case s.active != nil && !s.active.IsGeneral():
		return Values{Base: s.active.DisplayName, Target: s.active.MainTranslation}
	default:
		return Values{}
	}
}

// Reconcile realigns the selection with a reloaded profile list. A vanished
// active profile falls back to the first available profile (or none); a
// vanished nickname resets to the profile's default values. A broadcast is
// issued only when the effective selection changed.
func (s *State) Reconcile(profiles []*profile.Profile) {
	before := s.Current()
	changed := false

	if s.active != nil && !s.active.IsGeneral() {
		if fresh := findProfile(profiles, s.active.ID); fresh != nil {
			s.active = fresh.Clone()
		} else {
			s.active = nil
			s.nickname = nil
			changed = true
		}
	}

	if s.active == nil {
		if len(profiles) > 0 {
			s.active = profiles[0].Clone()
			changed = true
		}
	}

	if s.nickname != nil {
		if owned, ok := s.active.Nickname(s.nickname.ID); ok {
			s.nickname = &owned
		} else {
			s.nickname = nil
			changed = true
		}
	}

	if changed || s.Current() != before {
		s.broadcast()
	}
}

// FromRefs builds a selection from command-line references. An empty profile
// reference selects the first available profile; an empty nickname reference
// leaves the profile's own name forms active.
func FromRefs(d *bus.Dispatcher, profiles []*profile.Profile, profileRef, nicknameRef string) (*State, error) {
	s := New(d)
	if profileRef == "" {
		s.Reconcile(profiles)
	} else {
		p, ok := profile.Find(profiles, profileRef)
		if !ok {
			return nil, fmt.Errorf("selection: unknown profile %q", profileRef)
		}
		s.SelectProfile(p)
	}
	if nicknameRef != "" {
		n, ok := s.Profile().FindNickname(nicknameRef)
		if !ok {
			return nil, fmt.Errorf("selection: unknown nickname %q", nicknameRef)
		}
		if err := s.SelectNickname(n); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *State) broadcast() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(bus.ProfileSelectionChanged, s.Current())
}

func findProfile(profiles []*profile.Profile, id string) *profile.Profile {
	for _, p := range profiles {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}
