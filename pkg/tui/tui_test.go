package tui

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/phrasebook/pkg/app"
	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/profile"
	"tableflip.dev/phrasebook/pkg/store"
)

// fakePersistence is an in-memory store.Persistence for model tests.
type fakePersistence struct {
	tables map[store.Table]map[string][]byte
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{tables: map[store.Table]map[string][]byte{
		store.TableProfiles:   {},
		store.TableCategories: {},
	}}
}

func (f *fakePersistence) Get(table store.Table, id string) ([]byte, error) {
	data, ok := f.tables[table][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

func (f *fakePersistence) GetAll(ctx context.Context, table store.Table) ([]store.Record, error) {
	records := make([]store.Record, 0, len(f.tables[table]))
	for id, data := range f.tables[table] {
		records = append(records, store.Record{ID: id, Data: data})
	}
	return records, nil
}

func (f *fakePersistence) Add(table store.Table, id string, record any) error {
	return f.Put(table, id, record)
}

func (f *fakePersistence) Update(table store.Table, id string, partial map[string]any) error {
	data, ok := f.tables[table][id]
	if !ok {
		return nil
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	for k, v := range partial {
		doc[k] = v
	}
	return f.Put(table, id, doc)
}

func (f *fakePersistence) Put(table store.Table, id string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	f.tables[table][id] = data
	return nil
}

func (f *fakePersistence) Delete(table store.Table, id string) error {
	delete(f.tables[table], id)
	return nil
}

func (f *fakePersistence) Clear(ctx context.Context, table store.Table) error {
	f.tables[table] = map[string][]byte{}
	return nil
}

func (f *fakePersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func seededModel(t *testing.T) (Model, *bus.Dispatcher) {
	t.Helper()
	fp := newFakePersistence()
	mustPut := func(table store.Table, id string, record any) {
		if err := fp.Put(table, id, record); err != nil {
			t.Fatalf("seed %s/%s: %v", table, id, err)
		}
	}
	mustPut(store.TableProfiles, "léna", &profile.Profile{
		ID:              "léna",
		DisplayName:     "Léna",
		MainTranslation: "蕾娜",
		Timezone:        "Asia/Shanghai",
		Nicknames: []profile.Nickname{
			{ID: "star", Display: "Star", BaseValue: "my star", TargetValue: "我的小星星"},
		},
	})
	mustPut(store.TableCategories, "greetings", &category.Category{
		ID:    "greetings",
		Title: "Greetings",
		Order: 0,
		Phrases: []category.Phrase{
			{ID: "p1", Base: "Good morning {name}, how are you?", Target: "早上好{name}，你好吗？"},
		},
	})
	mustPut(store.TableCategories, "meals", &category.Category{
		ID:    "meals",
		Title: "Meals",
		Order: 1,
		Phrases: []category.Phrase{
			{ID: "p2", Base: "Enjoy your meal, {name}!", Target: "慢慢吃，{name}！"},
		},
	})

	d := bus.New()
	m := New(app.NewService(fp, d), d)
	m.termWidth = 96
	m.termHeight = 28
	return m, d
}

func loadModel(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.load()()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("load: %v", err.err)
	}
	return updateModel(t, m, msg)
}

func updateModel(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	out, ok := nm.(Model)
	if !ok {
		t.Fatalf("Update returned %T", nm)
	}
	return out
}

// drainBus applies every event the dispatcher forwarded into the program.
func drainBus(t *testing.T, m Model) Model {
	t.Helper()
	for {
		select {
		case msg := <-m.events:
			m = updateModel(t, m, msg)
		default:
			return m
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestViewRendersTabsAndSubstitutedCards(t *testing.T) {
	m, _ := seededModel(t)
	m = loadModel(t, m)

	view := stripANSI(m.View())
	if !strings.Contains(view, "Greetings") || !strings.Contains(view, "Meals") {
		t.Fatalf("expected both category tabs; view=%q", view)
	}
	// Reconcile picked the first profile, so the display text carries her name.
	if !strings.Contains(view, "→  Good morning Léna, how are you?") {
		t.Fatalf("expected substituted active card; view=%q", view)
	}
	if !strings.Contains(view, "recipient: Léna (蕾娜)") {
		t.Fatalf("expected recipient bar; view=%q", view)
	}
}

func TestSecondSlideRendersItsCards(t *testing.T) {
	m, _ := seededModel(t)
	m = loadModel(t, m)

	if m.slide != 0 {
		t.Fatalf("slide = %d, want 0", m.slide)
	}
	m.slide = 1
	m.card = 0
	view := stripANSI(m.View())
	if !strings.Contains(view, "Enjoy your meal, Léna!") {
		t.Fatalf("expected second slide card; view=%q", view)
	}
}

func TestCopyUsesSelectionAtCopyTime(t *testing.T) {
	m, _ := seededModel(t)
	m = loadModel(t, m)

	var copied string
	m.copyText = func(s string) bool {
		copied = s
		return true
	}

	p := m.sel.Profile()
	if err := m.sel.SelectNickname(p.Nicknames[0]); err != nil {
		t.Fatalf("SelectNickname: %v", err)
	}
	m.copyCurrent()

	if want := "早上好我的小星星，你好吗？"; copied != want {
		t.Fatalf("copied = %q, want %q", copied, want)
	}

	m = drainBus(t, m)
	if !strings.Contains(m.status, "copied: 早上好我的小星星，你好吗？") {
		t.Fatalf("status = %q, want copy confirmation", m.status)
	}
}

func TestCopyFailureDoesNotPublish(t *testing.T) {
	m, d := seededModel(t)
	m = loadModel(t, m)
	m = drainBus(t, m)

	published := 0
	d.Subscribe(bus.MessageCopied, func(any) { published++ })

	m.copyText = func(string) bool { return false }
	m.copyCurrent()

	if published != 0 {
		t.Fatalf("message-copied published %d times on failed copy", published)
	}
	if m.status != "clipboard unavailable" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestCycleNicknameWrapsBackToProfile(t *testing.T) {
	m, _ := seededModel(t)
	m = loadModel(t, m)

	m.cycleNickname()
	if n, ok := m.sel.Nickname(); !ok || n.Display != "Star" {
		t.Fatalf("expected Star nickname active, got %+v ok=%v", n, ok)
	}

	m.cycleNickname()
	if _, ok := m.sel.Nickname(); ok {
		t.Fatal("expected nickname cleared after wrapping")
	}
}

func TestPickerChoiceSelectsNickname(t *testing.T) {
	m, _ := seededModel(t)
	m = loadModel(t, m)
	m.rebuildPicker()

	// Items: general, léna, léna/Star.
	m.picker.Select(2)
	m.applyPickerChoice()

	if n, ok := m.sel.Nickname(); !ok || n.Display != "Star" {
		t.Fatalf("expected Star nickname selected, got %+v ok=%v", n, ok)
	}

	m = drainBus(t, m)
	view := stripANSI(m.View())
	if !strings.Contains(view, "Good morning my star, how are you?") {
		t.Fatalf("expected nickname substitution after selection change; view=%q", view)
	}
}

func TestSettingsToggleFollowsBusEvent(t *testing.T) {
	m, d := seededModel(t)
	m = loadModel(t, m)
	m = drainBus(t, m)

	d.Publish(bus.SettingsPanelToggle, nil)
	m = drainBus(t, m)
	if !m.showSettings {
		t.Fatal("expected settings panel shown after toggle event")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Settings · Léna") {
		t.Fatalf("expected settings panel content; view=%q", view)
	}
	if !strings.Contains(view, "Asia/Shanghai") {
		t.Fatalf("expected timezone in settings panel; view=%q", view)
	}

	d.Publish(bus.SettingsPanelToggle, nil)
	m = drainBus(t, m)
	if m.showSettings {
		t.Fatal("expected settings panel hidden after second toggle")
	}
}

func TestCategoriesListChangedReloads(t *testing.T) {
	m, d := seededModel(t)
	m = loadModel(t, m)
	m = drainBus(t, m)

	// A mutation elsewhere publishes categories-list-changed; the model should
	// respond with a reload command.
	d.Publish(bus.CategoriesListChanged, nil)

	var reload tea.Cmd
	select {
	case msg := <-m.events:
		bm, ok := msg.(busMsg)
		if !ok || bm.event != bus.CategoriesListChanged {
			t.Fatalf("unexpected message %#v", msg)
		}
		cmds := m.handleBus(bm)
		if len(cmds) == 0 {
			t.Fatal("expected reload command for categories-list-changed")
		}
		reload = cmds[0]
	default:
		t.Fatal("expected forwarded bus event")
	}

	if _, ok := reload().(loadedMsg); !ok {
		t.Fatal("expected reload command to produce loadedMsg")
	}
}
