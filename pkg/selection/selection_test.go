package selection

import (
	"errors"
	"testing"

	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/profile"
)

func lena() *profile.Profile {
	return &profile.Profile{
		ID:              "léna",
		DisplayName:     "Léna",
		MainTranslation: "蕾娜",
		Nicknames: []profile.Nickname{
			{ID: "n1", Display: "Star", BaseValue: "my star", TargetValue: "我的小星星"},
		},
	}
}

func leelou() *profile.Profile {
	return &profile.Profile{ID: "leelou", DisplayName: "Leelou", MainTranslation: "理露"}
}

func TestCurrentDerivation(t *testing.T) {
	s := New(bus.New())

	if got := s.Current(); got != (Values{}) {
		t.Fatalf("empty selection Current() = %v", got)
	}

	s.SelectProfile(lena())
	if got := s.Current(); got != (Values{Base: "Léna", Target: "蕾娜"}) {
		t.Fatalf("profile Current() = %v", got)
	}

	if err := s.SelectNickname(profile.Nickname{ID: "n1"}); err != nil {
		t.Fatalf("SelectNickname: %v", err)
	}
	if got := s.Current(); got != (Values{Base: "my star", Target: "我的小星星"}) {
		t.Fatalf("nickname Current() = %v", got)
	}

	// Selecting another profile clears the nickname choice.
	s.SelectProfile(leelou())
	if got := s.Current(); got != (Values{Base: "Leelou", Target: "理露"}) {
		t.Fatalf("after reselect Current() = %v", got)
	}
	if _, ok := s.Nickname(); ok {
		t.Fatal("nickname survived a profile switch")
	}
}

func TestGeneralSentinelYieldsEmptyValues(t *testing.T) {
	s := New(bus.New())
	s.SelectProfile(profile.General())
	if got := s.Current(); got != (Values{}) {
		t.Fatalf("general Current() = %v", got)
	}
	if err := s.SelectNickname(profile.Nickname{ID: "n1"}); err == nil {
		t.Fatal("nickname under general selection should be rejected")
	}
}

func TestSelectNicknameNotOwnedRejected(t *testing.T) {
	s := New(bus.New())
	s.SelectProfile(leelou())

	err := s.SelectNickname(profile.Nickname{ID: "n1"})
	if !errors.Is(err, ErrNicknameNotOwned) {
		t.Fatalf("err = %v, want ErrNicknameNotOwned", err)
	}
	if got := s.Current(); got != (Values{Base: "Leelou", Target: "理露"}) {
		t.Fatalf("selection corrupted by rejected nickname: %v", got)
	}
}

func TestSelectionChangesBroadcast(t *testing.T) {
	d := bus.New()
	var events []Values
	d.Subscribe(bus.ProfileSelectionChanged, func(p any) {
		events = append(events, p.(Values))
	})

	s := New(d)
	s.SelectProfile(lena())
	_ = s.SelectNickname(profile.Nickname{ID: "n1"})
	_ = s.SelectNickname(profile.Nickname{ID: "bogus"}) // rejected, no broadcast

	if len(events) != 2 {
		t.Fatalf("broadcast count = %d, want 2", len(events))
	}
	if events[1] != (Values{Base: "my star", Target: "我的小星星"}) {
		t.Fatalf("last broadcast = %v", events[1])
	}
}

func TestReconcileFallsBackToFirstProfile(t *testing.T) {
	s := New(bus.New())
	s.SelectProfile(lena())

	// Léna was deleted; the list now holds only Leelou.
	s.Reconcile([]*profile.Profile{leelou()})
	if got := s.Current(); got != (Values{Base: "Leelou", Target: "理露"}) {
		t.Fatalf("fallback Current() = %v", got)
	}

	// Everything was deleted.
	s.Reconcile(nil)
	if got := s.Current(); got != (Values{}) {
		t.Fatalf("empty-list Current() = %v", got)
	}
}

func TestReconcileDropsVanishedNickname(t *testing.T) {
	s := New(bus.New())
	s.SelectProfile(lena())
	if err := s.SelectNickname(profile.Nickname{ID: "n1"}); err != nil {
		t.Fatalf("SelectNickname: %v", err)
	}

	// Same profile reloaded without the nickname.
	reloaded := lena()
	reloaded.Nicknames = nil
	s.Reconcile([]*profile.Profile{reloaded})

	if got := s.Current(); got != (Values{Base: "Léna", Target: "蕾娜"}) {
		t.Fatalf("Current() = %v, want profile defaults", got)
	}
}

func TestReconcileKeepsIntactSelectionQuiet(t *testing.T) {
	d := bus.New()
	s := New(d)
	s.SelectProfile(lena())

	var broadcasts int
	d.Subscribe(bus.ProfileSelectionChanged, func(any) { broadcasts++ })

	s.Reconcile([]*profile.Profile{lena(), leelou()})
	if broadcasts != 0 {
		t.Fatalf("unchanged reconcile broadcast %d times", broadcasts)
	}
}
