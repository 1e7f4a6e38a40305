// Package tui is the interactive phrase carousel: category tabs across the
// top, phrase cards below, recipient selector and settings as overlays.
// Display state follows the dispatcher events, so edits made by CLI commands
// in another terminal show up while the carousel is open.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/phrasebook/pkg/app"
	"tableflip.dev/phrasebook/pkg/bus"
	"tableflip.dev/phrasebook/pkg/clipboard"
	"tableflip.dev/phrasebook/pkg/profile"
	"tableflip.dev/phrasebook/pkg/selection"
	"tableflip.dev/phrasebook/pkg/store"
	"tableflip.dev/phrasebook/pkg/tui/viewmodel"
)

type mode int

const (
	modeBrowse mode = iota
	modeProfiles
	modeInsert
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAddPhrase
	actionAddCategory
	actionAddNickname
)

// recipientItem is one row of the recipient picker: a profile, or one of its
// nicknames indented beneath it.
type recipientItem struct {
	profile  *profile.Profile
	nickname *profile.Nickname
}

func (it recipientItem) Title() string {
	if it.nickname != nil {
		return "  · " + it.nickname.Display
	}
	if it.profile.IsGeneral() {
		return it.profile.DisplayName
	}
	return fmt.Sprintf("%s (%s)", it.profile.DisplayName, it.profile.MainTranslation)
}
func (it recipientItem) Description() string { return "" }
func (it recipientItem) FilterValue() string {
	if it.nickname != nil {
		return it.nickname.Display
	}
	return it.profile.DisplayName
}

// Model contains the carousel state.
type Model struct {
	svc        *app.Service
	ctx        context.Context
	dispatcher *bus.Dispatcher
	sel        *selection.State

	mode   mode
	action action

	slides []viewmodel.Slide
	slide  int
	card   int

	profiles []*profile.Profile
	picker   list.Model
	input    textinput.Model

	showSettings bool
	status       string

	// copyText is swappable so tests do not touch the real clipboard.
	copyText func(string) bool

	events  chan tea.Msg
	watchCh <-chan store.Event

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int
}

// messages
type errMsg struct{ err error }
type busMsg struct {
	event   string
	payload any
}
type loadedMsg struct {
	slides   []viewmodel.Slide
	profiles []*profile.Profile
}
type storeChangedMsg struct{ table store.Table }
type readyMsg struct{}

// New creates a carousel model backed by the service. The dispatcher must be
// the one the service publishes on.
func New(svc *app.Service, d *bus.Dispatcher) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	picker := list.New([]list.Item{}, delegate, 40, 16)
	picker.Title = "Recipient"
	picker.SetShowHelp(false)
	picker.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := Model{
		svc:        svc,
		ctx:        context.Background(),
		dispatcher: d,
		sel:        selection.New(d),
		picker:     picker,
		input:      ti,
		status:     "h/l categories, j/k phrases, enter copy, p recipient, n nickname, s settings, ? help",
		copyText:   clipboard.WriteText,
		events:     make(chan tea.Msg, 32),
	}
	m.subscribe()
	if svc != nil {
		if ch, err := svc.Watch(m.ctx); err == nil {
			m.watchCh = ch
		}
	}
	return m
}

// subscribe forwards dispatcher events into the program as messages. Sends
// never block; a full queue drops the event and the next reload catches up.
func (m *Model) subscribe() {
	if m.dispatcher == nil {
		return
	}
	forward := func(event string) {
		m.dispatcher.Subscribe(event, func(payload any) {
			select {
			case m.events <- busMsg{event: event, payload: payload}:
			default:
			}
		})
	}
	forward(bus.CategoriesListChanged)
	forward(bus.ProfilesListChanged)
	forward(bus.ProfileSelectionChanged)
	forward(bus.MessageCopied)
	forward(bus.SettingsPanelToggle)
	forward(bus.AppReady)
}

// Init seeds the store if needed, loads data, and starts the event pumps.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initialize(), m.waitEvent(), m.watchStore())
}

func (m *Model) initialize() tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.Initialize(m.ctx); err != nil {
			return errMsg{err}
		}
		return readyMsg{}
	}
}

func (m *Model) load() tea.Cmd {
	values := m.sel.Current()
	return func() tea.Msg {
		categories, err := m.svc.Categories(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		profiles, err := m.svc.Profiles(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{
			slides:   viewmodel.Build(categories, values),
			profiles: profiles,
		}
	}
}

func (m *Model) waitEvent() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

// watchStore reads the next persistence change notification so a second
// terminal's edits reach this carousel. It re-arms after each message.
func (m *Model) watchStore() tea.Cmd {
	ch := m.watchCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeChangedMsg{table: ev.Table}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()

	case errMsg:
		m.status = "ERR: " + msg.err.Error()

	case readyMsg:
		cmds = append(cmds, m.load())
		if m.dispatcher != nil {
			m.dispatcher.Publish(bus.AppReady, nil)
		}

	case loadedMsg:
		m.profiles = msg.profiles
		m.slides = msg.slides
		m.sel.Reconcile(msg.profiles)
		m.slides = viewmodel.Resubstitute(m.slides, m.sel.Current())
		m.clampCursor()
		m.rebuildPicker()

	case storeChangedMsg:
		cmds = append(cmds, m.load(), m.watchStore())

	case busMsg:
		cmds = append(cmds, m.handleBus(msg)...)
		cmds = append(cmds, m.waitEvent())

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleBus(msg busMsg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg.event {
	case bus.CategoriesListChanged, bus.ProfilesListChanged:
		cmds = append(cmds, m.load())
	case bus.ProfileSelectionChanged:
		if values, ok := msg.payload.(selection.Values); ok {
			m.slides = viewmodel.Resubstitute(m.slides, values)
		}
	case bus.MessageCopied:
		if copied, ok := msg.payload.(app.CopiedMessage); ok {
			m.status = "copied: " + copied.Copied
		}
	case bus.SettingsPanelToggle:
		m.showSettings = !m.showSettings
	case bus.AppReady:
		m.status = "ready"
	}
	return cmds
}

func (m *Model) handleKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch m.mode {
	case modeHelp:
		switch msg.String() {
		case "q", "esc", "?":
			m.mode = modeBrowse
		}

	case modeProfiles:
		switch msg.String() {
		case "esc", "q":
			m.mode = modeBrowse
		case "enter":
			m.applyPickerChoice()
			m.mode = modeBrowse
		default:
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			cmds = append(cmds, cmd)
		}

	case modeInsert:
		switch msg.String() {
		case "enter":
			cmds = append(cmds, m.submitInput()...)
			m.leaveInsert()
		case "esc":
			m.status = "cancelled"
			m.leaveInsert()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case modeBrowse:
		switch msg.String() {
		case "q", "ctrl+c":
			cmds = append(cmds, tea.Quit)
		case "?":
			m.mode = modeHelp
		case "h", "left":
			if m.slide > 0 {
				m.slide--
				m.card = 0
			}
		case "l", "right":
			if m.slide < len(m.slides)-1 {
				m.slide++
				m.card = 0
			}
		case "j", "down":
			if s := m.currentSlide(); s != nil && m.card < len(s.Cards)-1 {
				m.card++
			}
		case "k", "up":
			if m.card > 0 {
				m.card--
			}
		case "g":
			m.card = 0
		case "G":
			if s := m.currentSlide(); s != nil && len(s.Cards) > 0 {
				m.card = len(s.Cards) - 1
			}
		case "enter":
			m.copyCurrent()
		case "p":
			m.rebuildPicker()
			m.mode = modeProfiles
		case "n":
			m.cycleNickname()
		case "s":
			if m.dispatcher != nil {
				m.dispatcher.Publish(bus.SettingsPanelToggle, nil)
			}
		case "a":
			if m.currentSlide() != nil {
				m.enterInsert(actionAddPhrase, "base text :: target text", &cmds)
			}
		case "A":
			m.enterInsert(actionAddCategory, "New category title", &cmds)
		case "N":
			if p := m.sel.Profile(); p != nil && !p.IsGeneral() {
				m.enterInsert(actionAddNickname, "nickname :: target form", &cmds)
			}
		case "d":
			m.handleDelete(&cmds)
		case "r":
			cmds = append(cmds, m.load())
		}
	}
	return cmds
}

func (m *Model) enterInsert(a action, placeholder string, cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) leaveInsert() {
	m.mode = modeBrowse
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
}

// submitInput applies the pending insert action. Phrase and nickname input
// pairs the two languages with a "::" separator.
func (m *Model) submitInput() []tea.Cmd {
	var cmds []tea.Cmd
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return nil
	}
	fail := func(err error) {
		cmds = append(cmds, func() tea.Msg { return errMsg{err} })
	}

	switch m.action {
	case actionAddPhrase:
		s := m.currentSlide()
		if s == nil {
			return nil
		}
		base, target := splitPair(value)
		if _, err := m.svc.AddPhrase(m.ctx, s.CategoryID, base, target); err != nil {
			fail(err)
		} else {
			m.status = "phrase added"
		}
	case actionAddCategory:
		if _, err := m.svc.CreateCategory(m.ctx, value); err != nil {
			fail(err)
		} else {
			m.status = "category added"
		}
	case actionAddNickname:
		p := m.sel.Profile()
		if p == nil || p.IsGeneral() {
			return nil
		}
		display, target := splitPair(value)
		if _, err := m.svc.AddNickname(m.ctx, p.ID, display, target); err != nil {
			fail(err)
		} else {
			m.status = "nickname added"
		}
	}
	return cmds
}

func splitPair(value string) (string, string) {
	parts := strings.SplitN(value, "::", 2)
	base := strings.TrimSpace(parts[0])
	target := ""
	if len(parts) == 2 {
		target = strings.TrimSpace(parts[1])
	}
	return base, target
}

// handleDelete removes the selected phrase on a double-press of d.
func (m *Model) handleDelete(cmds *[]tea.Cmd) {
	s := m.currentSlide()
	if s == nil || m.card >= len(s.Cards) {
		return
	}
	if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
		m.awaitingDD = false
		if err := m.svc.DeletePhrase(m.ctx, s.CategoryID, s.Cards[m.card].PhraseID); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		} else {
			m.status = "phrase deleted"
		}
		return
	}
	m.awaitingDD = true
	m.lastDTime = time.Now()
}

// copyCurrent substitutes the target template with the selection current
// right now and places it on the clipboard.
func (m *Model) copyCurrent() {
	s := m.currentSlide()
	if s == nil || m.card >= len(s.Cards) {
		return
	}
	copied, original := viewmodel.CopyTexts(s.Cards[m.card], m.sel.Current())
	if !m.copyText(copied) {
		m.status = "clipboard unavailable"
		return
	}
	if m.dispatcher != nil {
		m.dispatcher.Publish(bus.MessageCopied, app.CopiedMessage{Copied: copied, Original: original})
	} else {
		m.status = "copied: " + copied
	}
}

func (m *Model) cycleNickname() {
	p := m.sel.Profile()
	if p == nil || p.IsGeneral() || len(p.Nicknames) == 0 {
		return
	}
	current, active := m.sel.Nickname()
	if !active {
		_ = m.sel.SelectNickname(p.Nicknames[0])
		m.status = "nickname: " + p.Nicknames[0].Display
		return
	}
	for i, n := range p.Nicknames {
		if n.ID != current.ID {
			continue
		}
		if i+1 < len(p.Nicknames) {
			_ = m.sel.SelectNickname(p.Nicknames[i+1])
			m.status = "nickname: " + p.Nicknames[i+1].Display
		} else {
			// Wrapped past the last nickname: back to the profile itself.
			m.sel.SelectProfile(p)
			m.status = "nickname cleared"
		}
		return
	}
}

func (m *Model) applyPickerChoice() {
	item, ok := m.picker.SelectedItem().(recipientItem)
	if !ok {
		return
	}
	if item.nickname == nil {
		m.sel.SelectProfile(item.profile)
		m.status = "recipient: " + item.profile.DisplayName
		return
	}
	m.sel.SelectProfile(item.profile)
	if err := m.sel.SelectNickname(*item.nickname); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = "recipient: " + item.nickname.Display
}

func (m *Model) rebuildPicker() {
	items := []list.Item{recipientItem{profile: profile.General()}}
	for _, p := range m.profiles {
		p := p
		items = append(items, recipientItem{profile: p})
		for i := range p.Nicknames {
			items = append(items, recipientItem{profile: p, nickname: &p.Nicknames[i]})
		}
	}
	m.picker.SetItems(items)
}

func (m *Model) currentSlide() *viewmodel.Slide {
	if m.slide < 0 || m.slide >= len(m.slides) {
		return nil
	}
	return &m.slides[m.slide]
}

func (m *Model) clampCursor() {
	if m.slide >= len(m.slides) {
		m.slide = len(m.slides) - 1
	}
	if m.slide < 0 {
		m.slide = 0
	}
	if s := m.currentSlide(); s != nil && m.card >= len(s.Cards) {
		m.card = len(s.Cards) - 1
	}
	if m.card < 0 {
		m.card = 0
	}
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	w := m.termWidth / 2
	if w < 32 {
		w = 32
	}
	h := m.termHeight - 8
	if h < 8 {
		h = 8
	}
	m.picker.SetSize(w, h)
}

// Run launches the carousel over the given persistence.
func Run(p store.Persistence) error {
	d := bus.New()
	svc := app.NewService(p, d)
	program := tea.NewProgram(New(svc, d), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
