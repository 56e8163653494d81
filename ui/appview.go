package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wpchat/config"
	appmodel "wpchat/model"
)

// chrome is the number of lines around the viewport: title, separator,
// quick-action bar, textarea (3) and status bar.
const chrome = 7

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model
	kb        *config.KeyBindingsConfig

	// UI Components
	viewport viewport.Model
	textarea textarea.Model

	// Window state
	width  int
	height int
	ready  bool

	// Pending placeholder animation
	loadingSpinner spinner.Model

	showHelp  bool
	showAbout bool

	palette paletteState

	// Transient status bar text, cleared by the flashTickMsg with the same seq
	statusFlash string
	flashSeq    int
}

func NewAppView(dataModel *appmodel.Model) AppView {
	kb := config.DefaultKeybindings()
	if dataModel.Config != nil && dataModel.Config.Keybindings != nil {
		kb = dataModel.Config.Keybindings
	}

	ta := textarea.New()
	ta.Placeholder = "Ask about proof contests, search for SP1, request sections..."
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(80)

	// Enter sends (handled in Update), Alt+Enter inserts a newline
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	return AppView{
		dataModel:      dataModel,
		kb:             kb,
		viewport:       viewport.New(0, 0),
		textarea:       ta,
		loadingSpinner: newLoadingSpinner(),
		palette:        newPaletteState(),
	}
}

func newLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	return s
}

func (a AppView) Init() tea.Cmd {
	return textarea.Blink
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading wpchat..."
	}

	// Modal layers, top first
	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}
	if a.showAbout {
		return renderAboutModal(a, a.width, a.height)
	}
	if a.palette.active {
		return renderPalette(a.palette, a.kb, a.width, a.height)
	}

	title := TitleStyle.Render("wpchat") + DimStyle.Render(" | "+a.serverURL())
	if a.dataModel.InFlight() {
		title += TitleStyle.Render(fmt.Sprintf(" | %s %s", a.loadingSpinner.View(), a.pendingLabel()))
	}

	separator := ""

	statusBar := a.statusFlash
	if statusBar == "" {
		descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
		statusBar = fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  Alt+Enter %s  Enter %s",
			a.kb.DisplayActionKey("quit"), descStyle.Render("Quit"),
			a.kb.DisplayActionKey("help"), descStyle.Render("Help"),
			a.kb.DisplayActionKey("quick_palette"), descStyle.Render("Quick actions"),
			a.kb.DisplayActionKey("copy_last_response"), descStyle.Render("Copy"),
			descStyle.Render("New Line"),
			descStyle.Render("Send"),
		)
	}
	statusBar = StatusStyle.Render(statusBar)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		separator,
		a.viewport.View(),
		a.renderQuickActionBar(),
		a.textarea.View(),
		statusBar,
	)
}

func (a AppView) serverURL() string {
	if a.dataModel.Client != nil {
		return a.dataModel.Client.BaseURL()
	}
	if a.dataModel.Config != nil {
		return a.dataModel.Config.BaseURL()
	}
	return config.DefaultServerURL
}

func (a AppView) pendingLabel() string {
	for _, msg := range a.dataModel.Messages {
		if msg.Pending {
			return msg.Content + "..."
		}
	}
	return ""
}
