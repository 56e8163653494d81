package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"wpchat/config"
	appmodel "wpchat/model"
)

// paletteEntry is a quick action (sent right away) or an example query
// (copied into the input for editing)
type paletteEntry struct {
	Label  string
	Detail string
	Query  string
	Submit bool
}

type paletteState struct {
	active   bool
	input    textinput.Model
	entries  []paletteEntry
	filtered []paletteEntry
	selected int
}

// paletteSource lets sahilm/fuzzy search label and query together
type paletteSource []paletteEntry

func (s paletteSource) String(i int) string { return s[i].Label + " " + s[i].Query }
func (s paletteSource) Len() int            { return len(s) }

func newPaletteState() paletteState {
	ti := textinput.New()
	ti.Placeholder = "Filter quick actions and examples..."
	ti.CharLimit = 100

	var entries []paletteEntry
	for _, qa := range appmodel.QuickActions() {
		entries = append(entries, paletteEntry{
			Label:  qa.Label,
			Detail: qa.Description,
			Query:  qa.Query,
			Submit: true,
		})
	}
	for _, q := range appmodel.ExampleQueries() {
		entries = append(entries, paletteEntry{
			Label:  q,
			Detail: "Example: edit before sending",
			Query:  q,
		})
	}

	return paletteState{
		input:    ti,
		entries:  entries,
		filtered: entries,
	}
}

func (p *paletteState) open(width int) {
	p.active = true
	p.selected = 0
	p.input.SetValue("")
	p.input.Width = max(width/2-10, 20)
	p.input.Focus()
	p.filter()
}

func (p *paletteState) close() {
	p.active = false
	p.input.Blur()
}

func (p *paletteState) filter() {
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.filtered = p.entries
	} else {
		matches := fuzzy.FindFrom(query, paletteSource(p.entries))
		p.filtered = make([]paletteEntry, 0, len(matches))
		for _, m := range matches {
			p.filtered = append(p.filtered, p.entries[m.Index])
		}
	}

	if p.selected >= len(p.filtered) {
		p.selected = max(len(p.filtered)-1, 0)
	}
}

func (p paletteState) current() (paletteEntry, bool) {
	if p.selected < 0 || p.selected >= len(p.filtered) {
		return paletteEntry{}, false
	}
	return p.filtered[p.selected], true
}

func (a AppView) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := msg.String()

	switch {
	case pressed == "esc" || a.kb.Matches("quick_palette", pressed):
		a.palette.close()
		return a, nil

	case a.kb.Matches("palette_down", pressed):
		if a.palette.selected < len(a.palette.filtered)-1 {
			a.palette.selected++
		}
		return a, nil

	case a.kb.Matches("palette_up", pressed):
		if a.palette.selected > 0 {
			a.palette.selected--
		}
		return a, nil

	case pressed == "enter":
		entry, ok := a.palette.current()
		a.palette.close()
		if !ok {
			return a, nil
		}
		if entry.Submit {
			return a.submit(entry.Query)
		}
		a.textarea.SetValue(entry.Query)
		a.textarea.CursorEnd()
		a.textarea.Focus()
		return a, nil
	}

	var cmd tea.Cmd
	a.palette.input, cmd = a.palette.input.Update(msg)
	a.palette.filter()
	return a, cmd
}

func renderPalette(p paletteState, kb *config.KeyBindingsConfig, width, height int) string {
	modalWidth := min(max(width-10, 30), 80)

	title := TitleStyle.Foreground(successColor).Render("Quick Actions")

	var rows []string
	if len(p.filtered) == 0 {
		rows = append(rows, DimStyle.Render("No matches"))
	}
	for i, e := range p.filtered {
		key := ""
		if e.Submit {
			key = HighlightStyle.Render(quickActionKey(kb, e.Query)) + " "
		}
		label := runewidth.Truncate(e.Label, modalWidth/2, "…")
		detail := runewidth.Truncate(e.Detail, modalWidth-runewidth.StringWidth(label)-12, "…")

		line := fmt.Sprintf("%s  %s%s", label, key, DimStyle.Render(detail))
		if i == p.selected {
			line = SelectedStyle.Render("▶ "+label) + "  " + key + DimStyle.Render(detail)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	footer := FormatFooter("↑/↓", "Navigate", "Enter", "Select", "Esc", "Close")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		p.input.View(),
		"",
		strings.Join(rows, "\n"),
		"",
		footer,
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(content))
}

// quickActionKey returns the display key of the quick action sending query
func quickActionKey(kb *config.KeyBindingsConfig, query string) string {
	for i, qa := range appmodel.QuickActions() {
		if qa.Query == query {
			return kb.DisplayActionKey(fmt.Sprintf("quick_action_%d", i+1))
		}
	}
	return ""
}

// renderQuickActionBar lists the quick actions on one line, truncated to the window
func (a AppView) renderQuickActionBar() string {
	var parts []string
	for i, qa := range appmodel.QuickActions() {
		parts = append(parts, fmt.Sprintf("%s %s", a.kb.DisplayActionKey(fmt.Sprintf("quick_action_%d", i+1)), qa.Label))
	}
	bar := runewidth.Truncate(strings.Join(parts, "  "), max(a.width, 1), "…")
	return DimStyle.Render(bar)
}
