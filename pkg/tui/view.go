package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/phrasebook/pkg/timeutil"
)

var (
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	cardStyle      = lipgloss.NewStyle().PaddingLeft(3)
	activeCard     = lipgloss.NewStyle().Bold(true)
	targetStyle    = lipgloss.NewStyle().Faint(true).PaddingLeft(5)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	helpStyle      = lipgloss.NewStyle().Italic(true)
)

// View renders the tab row, the active slide's cards, the recipient bar, and
// any overlay for the current mode.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewCards())
	b.WriteString("\n")

	if m.showSettings {
		b.WriteString("\n" + panelStyle.Render(m.viewSettings()) + "\n")
	}

	switch m.mode {
	case modeProfiles:
		b.WriteString("\n" + m.picker.View() + "\n")
	case modeInsert:
		b.WriteString("\n" + m.insertPrompt() + m.input.View() + "\n")
	case modeHelp:
		help := "Keys: h/l categories, j/k phrases, g/G top/bottom, enter copy, p recipient, n cycle nickname, N add nickname, a add phrase, A add category, dd delete phrase, s settings, r refresh, q quit"
		b.WriteString("\n" + helpStyle.Render(wordwrap.String(help, m.wrapWidth())) + "\n")
	}

	b.WriteString("\n" + m.viewRecipientBar())
	b.WriteString("\n" + statusStyle.Render(m.status))
	return b.String()
}

func (m Model) viewTabs() string {
	if len(m.slides) == 0 {
		return tabStyle.Render("no categories")
	}
	tabs := make([]string, 0, len(m.slides))
	for i, s := range m.slides {
		if i == m.slide {
			tabs = append(tabs, activeTabStyle.Render(s.Title))
		} else {
			tabs = append(tabs, tabStyle.Render(s.Title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCards() string {
	s := m.currentSlide()
	if s == nil {
		return cardStyle.Render("nothing to show")
	}
	if len(s.Cards) == 0 {
		return cardStyle.Render("no phrases yet, press a to add one")
	}

	width := m.wrapWidth()
	var b strings.Builder
	for i, c := range s.Cards {
		display := wordwrap.String(c.Display, width)
		if i == m.card {
			b.WriteString(activeCard.Render("→  "+display) + "\n")
			b.WriteString(targetStyle.Render(wordwrap.String(c.Target, width)) + "\n")
		} else {
			b.WriteString(cardStyle.Render(display) + "\n")
		}
	}
	return b.String()
}

// viewRecipientBar shows who {name} resolves to, plus their local time and
// birthday countdown when the profile carries a timezone or birthdate.
func (m Model) viewRecipientBar() string {
	p := m.sel.Profile()
	if p == nil || p.IsGeneral() {
		return statusStyle.Render("recipient: general")
	}

	parts := []string{fmt.Sprintf("recipient: %s (%s)", p.DisplayName, p.MainTranslation)}
	if n, ok := m.sel.Nickname(); ok {
		parts = append(parts, "as "+n.Display)
	}
	now := time.Now()
	if p.Timezone != "" {
		parts = append(parts, "their time "+timeutil.ClockAt(p.Timezone, now))
	}
	if countdown := timeutil.FormatBirthdayCountdown(p.Birthdate, now); countdown != "" {
		parts = append(parts, countdown)
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}

func (m Model) viewSettings() string {
	p := m.sel.Profile()
	if p == nil || p.IsGeneral() {
		return "Settings\n\nNo recipient selected."
	}
	var b strings.Builder
	b.WriteString("Settings · " + p.DisplayName + "\n\n")
	fmt.Fprintf(&b, "translation  %s\n", p.MainTranslation)
	if p.Image != "" {
		fmt.Fprintf(&b, "image        %s\n", p.Image)
	}
	if p.Birthdate != "" {
		fmt.Fprintf(&b, "birthdate    %s\n", p.Birthdate)
	}
	if p.Timezone != "" {
		fmt.Fprintf(&b, "timezone     %s (%s)\n", p.Timezone, timeutil.ClockAt(p.Timezone, time.Now()))
	}
	if len(p.Nicknames) > 0 {
		b.WriteString("nicknames    ")
		names := make([]string, 0, len(p.Nicknames))
		for _, n := range p.Nicknames {
			names = append(names, fmt.Sprintf("%s (%s)", n.Display, n.TargetValue))
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) insertPrompt() string {
	switch m.action {
	case actionAddPhrase:
		return "Add phrase: "
	case actionAddCategory:
		return "Add category: "
	case actionAddNickname:
		return "Add nickname: "
	default:
		return ""
	}
}

func (m Model) wrapWidth() int {
	if m.termWidth <= 10 {
		return 70
	}
	w := m.termWidth - 8
	if w > 100 {
		w = 100
	}
	return w
}
