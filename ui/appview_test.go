package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"wpchat/config"
	"wpchat/mcp/mcptest"
	appmodel "wpchat/model"
)

func newTestView(t *testing.T, caller *mcptest.FakeCaller) AppView {
	t.Helper()
	m := appmodel.NewModel(config.Default(), caller, "test", "Apache-2.0")
	view := NewAppView(m)
	updated, _ := view.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppView)
}

func press(t *testing.T, a AppView, key tea.KeyMsg) (AppView, tea.Cmd) {
	t.Helper()
	updated, cmd := a.Update(key)
	return updated.(AppView), cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

// findToolResult runs cmd (and any batch it expands to) until it yields a
// tool result. Only use it on commands that do not sleep.
func findToolResult(cmd tea.Cmd) (appmodel.ToolResultMsg, bool) {
	if cmd == nil {
		return appmodel.ToolResultMsg{}, false
	}
	switch msg := cmd().(type) {
	case appmodel.ToolResultMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if res, ok := findToolResult(c); ok {
				return res, true
			}
		}
	}
	return appmodel.ToolResultMsg{}, false
}

func TestEnterSubmitsAndResolves(t *testing.T) {
	caller := mcptest.NewFakeCaller("zkVM stands for zero-knowledge virtual machine.", nil)
	a := newTestView(t, caller)

	a.textarea.SetValue("search for zkVM")
	a, cmd := press(t, a, enterKey)

	if !a.dataModel.InFlight() {
		t.Fatal("expected a pending placeholder after Enter")
	}
	if len(a.dataModel.Messages) != 3 {
		t.Fatalf("len(Messages) = %d, want 3", len(a.dataModel.Messages))
	}
	if a.textarea.Value() != "" {
		t.Errorf("input not cleared: %q", a.textarea.Value())
	}

	result, ok := findToolResult(cmd)
	if !ok {
		t.Fatal("Enter did not produce a tool call")
	}

	updated, _ := a.Update(result)
	a = updated.(AppView)

	if a.dataModel.InFlight() {
		t.Error("still in flight after the result arrived")
	}
	last := a.dataModel.Messages[len(a.dataModel.Messages)-1]
	if last.Content != "zkVM stands for zero-knowledge virtual machine." {
		t.Errorf("last message = %q", last.Content)
	}

	calls := caller.Calls()
	if len(calls) != 1 || calls[0].Name != "search_whitepaper" || calls[0].Args["query"] != "zkVM" {
		t.Errorf("calls = %+v, want one search_whitepaper(query=zkVM)", calls)
	}
}

func TestEnterBlockedWhileInFlight(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("ok", nil))

	a.textarea.SetValue("list sections")
	a, _ = press(t, a, enterKey)

	a.textarea.SetValue("search again")
	a, _ = press(t, a, enterKey)

	if len(a.dataModel.Messages) != 3 {
		t.Errorf("len(Messages) = %d, want 3 (second submission blocked)", len(a.dataModel.Messages))
	}
	if a.textarea.Value() != "search again" {
		t.Errorf("blocked input was consumed: %q", a.textarea.Value())
	}
	if a.statusFlash == "" {
		t.Error("expected a status flash explaining the wait")
	}
}

func TestEnterOnBlankInputIsIgnored(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("ok", nil))

	a.textarea.SetValue("   ")
	a, _ = press(t, a, enterKey)

	if len(a.dataModel.Messages) != 1 || a.dataModel.InFlight() {
		t.Errorf("blank Enter changed the conversation: %d messages", len(a.dataModel.Messages))
	}
}

func TestQuickActionKeys(t *testing.T) {
	tests := []struct {
		key  rune
		tool string
		arg  string
	}{
		{'1', "get_section", "Abstract"},
		{'2', "get_key_concepts", "proof contests"},
		{'3', "search_whitepaper", "SP1"},
		{'4', "list_sections", ""},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			caller := mcptest.NewFakeCaller("ok", nil)
			a := newTestView(t, caller)

			_, cmd := press(t, a, altKey(tt.key))
			if _, ok := findToolResult(cmd); !ok {
				t.Fatal("quick action did not start a call")
			}

			calls := caller.Calls()
			if len(calls) != 1 || calls[0].Name != tt.tool {
				t.Fatalf("calls = %+v, want %s", calls, tt.tool)
			}
			for _, v := range calls[0].Args {
				if v != tt.arg {
					t.Errorf("arg = %v, want %q", v, tt.arg)
				}
			}
		})
	}
}

func TestNewChatResetsConversation(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("answer", nil))

	a.textarea.SetValue("explain proving pools")
	a, cmd := press(t, a, enterKey)
	result, _ := findToolResult(cmd)

	// new chat is refused while the answer is outstanding
	a, _ = press(t, a, altKey('n'))
	if len(a.dataModel.Messages) != 3 {
		t.Fatalf("new chat during a call changed messages: %d", len(a.dataModel.Messages))
	}

	updated, _ := a.Update(result)
	a = updated.(AppView)

	a, _ = press(t, a, altKey('n'))
	if len(a.dataModel.Messages) != 1 || a.dataModel.Messages[0].ID != appmodel.WelcomeID {
		t.Errorf("after new chat: %+v", a.dataModel.Messages)
	}
}

func TestCopyLastResponse(t *testing.T) {
	var copied string
	saved := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = saved })

	a := newTestView(t, mcptest.NewFakeCaller("unused", nil))

	_, cmd := press(t, a, altKey('y'))
	if cmd == nil {
		t.Fatal("copy produced no command")
	}
	msg, ok := cmd().(appmodel.CopyResultMsg)
	if !ok {
		t.Fatalf("copy command returned %T", cmd())
	}
	if copied != appmodel.WelcomeText {
		t.Errorf("copied %q, want the welcome text", copied)
	}

	updated, _ := a.Update(msg)
	a = updated.(AppView)
	if !strings.Contains(stripANSI(a.statusFlash), "Copied response") {
		t.Errorf("statusFlash = %q", a.statusFlash)
	}
}

func TestCopyFailureFlashes(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("unused", nil))

	updated, _ := a.Update(appmodel.CopyResultMsg{What: "conversation", Err: errors.New("no clipboard")})
	a = updated.(AppView)

	if !strings.Contains(stripANSI(a.statusFlash), "Copy failed: no clipboard") {
		t.Errorf("statusFlash = %q", a.statusFlash)
	}
}

func TestFlashTickClearsMatchingSequence(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("unused", nil))
	a.flash("first")
	a.flash("second")

	updated, _ := a.Update(appmodel.FlashTickMsg{Seq: 1})
	a = updated.(AppView)
	if a.statusFlash != "second" {
		t.Errorf("stale tick cleared the flash: %q", a.statusFlash)
	}

	updated, _ = a.Update(appmodel.FlashTickMsg{Seq: 2})
	a = updated.(AppView)
	if a.statusFlash != "" {
		t.Errorf("statusFlash = %q, want cleared", a.statusFlash)
	}
}

func TestPaletteFilter(t *testing.T) {
	p := newPaletteState()
	p.open(100)

	if len(p.filtered) != len(appmodel.QuickActions())+len(appmodel.ExampleQueries()) {
		t.Fatalf("unfiltered palette has %d entries", len(p.filtered))
	}

	p.input.SetValue("sp1")
	p.filter()

	if len(p.filtered) == 0 {
		t.Fatal("no matches for sp1")
	}
	if p.filtered[0].Query != "search_whitepaper SP1" {
		t.Errorf("best match = %+v", p.filtered[0])
	}

	p.input.SetValue("zzzzqqq")
	p.filter()
	if len(p.filtered) != 0 || p.selected != 0 {
		t.Errorf("filtered = %v, selected = %d", p.filtered, p.selected)
	}
	if _, ok := p.current(); ok {
		t.Error("current() on an empty palette should fail")
	}
}

func TestPaletteExampleFillsInput(t *testing.T) {
	caller := mcptest.NewFakeCaller("ok", nil)
	a := newTestView(t, caller)

	a, _ = press(t, a, altKey('p'))
	if !a.palette.active {
		t.Fatal("palette did not open")
	}

	// skip past the quick actions to the first example
	for range appmodel.QuickActions() {
		a, _ = press(t, a, downKey)
	}
	a, _ = press(t, a, enterKey)

	if a.palette.active {
		t.Error("palette still open after Enter")
	}
	if got := a.textarea.Value(); got != appmodel.ExampleQueries()[0] {
		t.Errorf("input = %q, want %q", got, appmodel.ExampleQueries()[0])
	}
	if len(a.dataModel.Messages) != 1 || len(caller.Calls()) != 0 {
		t.Error("choosing an example should not submit it")
	}
}

func TestPaletteQuickActionSubmits(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("ok", nil))

	a, _ = press(t, a, altKey('p'))
	a, cmd := press(t, a, enterKey)

	if !a.dataModel.InFlight() {
		t.Error("quick action from the palette should submit")
	}
	if _, ok := findToolResult(cmd); !ok {
		t.Error("no tool call started")
	}
}

func TestFormatUserMessage(t *testing.T) {
	got := stripANSI(formatUserMessage("[09:30]", "You", "line one\nline two"))

	for _, want := range []string{userBar + " [09:30] You", userBar + " line one", userBar + " line two"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatUserMessage() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderPendingAndErrorMessages(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("ok", nil))

	pending := stripANSI(a.renderMessage(Message{Role: appmodel.RoleBot, Content: "Listing sections", Pending: true}))
	if !strings.Contains(pending, "Thinking... (Listing sections)") {
		t.Errorf("pending render = %q", pending)
	}

	failed := stripANSI(a.renderMessage(Message{Role: appmodel.RoleBot, Content: "⏱️ Request timed out.", Error: true}))
	if !strings.Contains(failed, "Error") || !strings.Contains(failed, "Request timed out") {
		t.Errorf("error render = %q", failed)
	}
}

func TestRenderMarkdown(t *testing.T) {
	got := stripANSI(renderMarkdown("**Proof contests** are described in the [docs](https://docs.succinct.xyz).", 60))

	for _, want := range []string{"Proof contests", "docs", "https://docs.succinct.xyz"} {
		if !strings.Contains(got, want) {
			t.Errorf("renderMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestQuickActionBarFitsWidth(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("ok", nil))
	a.width = 30

	bar := stripANSI(a.renderQuickActionBar())
	if w := runewidth.StringWidth(bar); w > 30 {
		t.Errorf("bar width = %d, want <= 30: %q", w, bar)
	}
}

func TestViewShowsHeader(t *testing.T) {
	a := newTestView(t, mcptest.NewFakeCaller("ok", nil))

	view := stripANSI(a.View())
	if !strings.Contains(view, "wpchat") || !strings.Contains(view, "http://whitepaper.test") {
		t.Errorf("header missing from view:\n%s", view)
	}
}
