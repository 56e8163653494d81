package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wpchat/config"
	appmodel "wpchat/model"
)

const flashDuration = 2 * time.Second

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	// Spinner first so ticks keep the placeholder animated
	if a.dataModel.InFlight() {
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		cmds = append(cmds, cmd)
		a.updateViewportContent(a.viewport.AtBottom())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		widthChanged := msg.Width != a.width
		a.width = msg.Width
		a.height = msg.Height

		a.viewport.Width = a.width
		a.viewport.Height = max(a.height-chrome, 1)
		a.textarea.SetWidth(a.width)

		a.ready = true
		a.updateViewportContent(true)

		// Answers are wrapped to the window, so render them again
		if widthChanged {
			cmds = append(cmds, a.renderAllAsync())
		}
		return a, tea.Batch(cmds...)

	case toolResultMsg:
		appended, ok := a.dataModel.HandleToolResult(msg)
		if ok && !appended.Error {
			cmds = append(cmds, a.renderMarkdownAsync(appended.ID, appended.Content))
		}
		a.updateViewportContent(true)
		a.textarea.Focus()
		return a, tea.Batch(cmds...)

	case markdownRenderedMsg:
		a.dataModel.SetRendered(msg.MessageID, msg.Rendered)
		a.updateViewportContent(a.viewport.AtBottom())
		return a, tea.Batch(cmds...)

	case copyResultMsg:
		if msg.Err != nil {
			config.Log.Error().Err(msg.Err).Str("what", msg.What).Msg("clipboard write failed")
			cmds = append(cmds, a.flash(ErrorStyle.Render("Copy failed: "+msg.Err.Error())))
		} else {
			cmds = append(cmds, a.flash(SelectedStyle.Render(fmt.Sprintf("Copied %s to clipboard", msg.What))))
		}
		return a, tea.Batch(cmds...)

	case flashTickMsg:
		if msg.Seq == a.flashSeq {
			a.statusFlash = ""
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		model, keyCmd := a.handleKey(msg)
		cmds = append(cmds, keyCmd)
		return model, tea.Batch(cmds...)
	}

	return a, tea.Batch(cmds...)
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := msg.String()

	if pressed == "ctrl+c" || a.kb.Matches("quit", pressed) {
		config.Log.Debug().Str("key", pressed).Msg("quit requested")
		return a, tea.Quit
	}

	// Modal layers swallow everything else
	if a.showHelp {
		if pressed == "esc" || a.kb.Matches("help", pressed) {
			a.showHelp = false
		}
		return a, nil
	}
	if a.showAbout {
		if pressed == "esc" || a.kb.Matches("about", pressed) {
			a.showAbout = false
		}
		return a, nil
	}
	if a.palette.active {
		return a.handlePaletteKey(msg)
	}

	switch {
	case a.kb.Matches("help", pressed):
		a.showHelp = true
		return a, nil

	case a.kb.Matches("about", pressed):
		a.showAbout = true
		return a, nil

	case a.kb.Matches("quick_palette", pressed):
		a.palette.open(a.width)
		return a, nil

	case a.kb.Matches("new_chat", pressed):
		if a.dataModel.InFlight() {
			cmd := a.flash(DimStyle.Render("Wait for the current answer before starting a new chat"))
			return a, cmd
		}
		a.dataModel.Reset()
		a.textarea.Reset()
		a.updateViewportContent(true)
		flashCmd := a.flash(SelectedStyle.Render("New chat started"))
		return a, tea.Batch(a.renderAllAsync(), flashCmd)

	case a.kb.Matches("copy_last_response", pressed):
		last, ok := a.dataModel.LastBotMessage()
		if !ok {
			return a, nil
		}
		return a, copyCmd(last.Content, "response")

	case a.kb.Matches("copy_conversation", pressed):
		return a, copyCmd(a.dataModel.Transcript(), "conversation")

	case a.kb.Matches("clear_input", pressed):
		a.textarea.Reset()
		return a, nil

	case a.kb.Matches("scroll_down", pressed):
		a.viewport.ScrollDown(1)
		return a, nil
	case a.kb.Matches("scroll_up", pressed):
		a.viewport.ScrollUp(1)
		return a, nil
	case a.kb.Matches("half_page_down", pressed):
		a.viewport.HalfPageDown()
		return a, nil
	case a.kb.Matches("half_page_up", pressed):
		a.viewport.HalfPageUp()
		return a, nil
	case a.kb.Matches("page_down", pressed), pressed == "pgdown":
		a.viewport.PageDown()
		return a, nil
	case a.kb.Matches("page_up", pressed), pressed == "pgup":
		a.viewport.PageUp()
		return a, nil
	case a.kb.Matches("scroll_to_top", pressed):
		a.viewport.GotoTop()
		return a, nil
	case a.kb.Matches("scroll_to_bottom", pressed):
		a.viewport.GotoBottom()
		return a, nil
	}

	if i := a.quickActionIndex(pressed); i >= 0 {
		actions := appmodel.QuickActions()
		if i < len(actions) {
			return a.submit(actions[i].Query)
		}
		return a, nil
	}

	// Input is disabled while an answer is outstanding
	if a.dataModel.InFlight() {
		if pressed == "enter" {
			cmd := a.flash(DimStyle.Render("Waiting for the current answer..."))
			return a, cmd
		}
		return a, nil
	}

	if pressed == "enter" {
		text := a.textarea.Value()
		if strings.TrimSpace(text) == "" {
			return a, nil
		}
		a.textarea.Reset()
		return a.submit(text)
	}

	var cmd tea.Cmd
	a.textarea, cmd = a.textarea.Update(msg)
	return a, cmd
}

func (a AppView) quickActionIndex(pressed string) int {
	for i := 1; i <= 4; i++ {
		if a.kb.Matches(fmt.Sprintf("quick_action_%d", i), pressed) {
			return i - 1
		}
	}
	return -1
}

// submit starts a submission unless one is already outstanding
func (a AppView) submit(text string) (tea.Model, tea.Cmd) {
	if a.dataModel.InFlight() {
		cmd := a.flash(DimStyle.Render("Waiting for the current answer..."))
		return a, cmd
	}

	cmd := a.dataModel.SubmitCmd(text)
	if cmd == nil {
		return a, nil
	}

	a.loadingSpinner = newLoadingSpinner()
	a.updateViewportContent(true)
	return a, tea.Batch(cmd, a.loadingSpinner.Tick)
}

// flash shows text in the status bar until the matching tick clears it
func (a *AppView) flash(text string) tea.Cmd {
	a.flashSeq++
	a.statusFlash = text
	seq := a.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashTickMsg{Seq: seq}
	})
}
