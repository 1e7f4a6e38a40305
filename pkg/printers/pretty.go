// Package printers renders categories, phrases, and profiles for the one-shot
// CLI commands.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/phrasebook/pkg/category"
	"tableflip.dev/phrasebook/pkg/profile"
	"tableflip.dev/phrasebook/pkg/selection"
	"tableflip.dev/phrasebook/pkg/template"
	"tableflip.dev/phrasebook/pkg/timeutil"
)

// PrettyPrint writes colored listings to color.Output.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, t.Sprint(title))
}

// Category prints one category's phrases with the current selection
// substituted into the base text. The raw target template is shown faint
// underneath each phrase.
func (pp *PrettyPrint) Category(c *category.Category, values selection.Values) {
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	pp.Title(c.Title)
	if len(c.Phrases) == 0 {
		_, _ = fmt.Fprint(color.Output, color.New(color.Faint, color.Italic).Sprint(" none\n\n"))
		return
	}
	for i, p := range c.Phrases {
		base := template.Substitute(p.Base, map[string]string{"name": values.Base})
		if pp.ShowID {
			_, _ = fmt.Fprintln(color.Output, y.Sprint(p.ID))
		}
		_, _ = fmt.Fprintf(color.Output, "%2d. %s\n", i+1, base)
		_, _ = fmt.Fprintf(color.Output, "    %s\n", f.Sprint(p.Target))
	}
	pp.NewLine()
}

// Categories prints every category in order.
func (pp *PrettyPrint) Categories(categories []*category.Category, values selection.Values) {
	for _, c := range categories {
		pp.Category(c, values)
	}
}

// CategoryList prints a compact id/title listing.
func (pp *PrettyPrint) CategoryList(categories []*category.Category) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Phrases"))
	for _, c := range categories {
		tbl.AddRow(c.ID, c.Title, fmt.Sprintf("%d", len(c.Phrases)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Profiles prints the recipient table with each recipient's local time and
// birthday countdown when a timezone or birthdate is set.
func (pp *PrettyPrint) Profiles(profiles []*profile.Profile, now time.Time) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)

	header := []interface{}{bold.Sprint("Name"), bold.Sprint("Translation"), bold.Sprint("Nicknames"), bold.Sprint("Local time"), bold.Sprint("Birthday")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	for _, p := range profiles {
		nicknames := make([]string, 0, len(p.Nicknames))
		for _, n := range p.Nicknames {
			nicknames = append(nicknames, n.Display)
		}

		clock := ""
		if p.Timezone != "" {
			clock = timeutil.ClockAt(p.Timezone, now)
		}
		birthday := timeutil.FormatBirthdayCountdown(p.Birthdate, now)

		row := []interface{}{p.DisplayName, p.MainTranslation, strings.Join(nicknames, ", "), clock, birthday}
		if pp.ShowID {
			row = append([]interface{}{p.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Copied confirms a clipboard copy, showing the base text it corresponds to.
func (pp *PrettyPrint) Copied(copied, original string) {
	g := color.New(color.FgGreen)
	f := color.New(color.Faint)
	_, _ = fmt.Fprintf(color.Output, "%s %s\n", g.Sprint("copied:"), copied)
	if original != "" {
		_, _ = fmt.Fprintf(color.Output, "%s %s\n", f.Sprint("  from:"), f.Sprint(original))
	}
}
