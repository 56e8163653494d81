package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"wpchat/config"
	appmodel "wpchat/model"
)

const userBar = "┃"

var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s\x1b]+)`)
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

func (a *AppView) updateViewportContent(gotoBottom bool) {
	var content strings.Builder
	for _, msg := range a.dataModel.Messages {
		content.WriteString(a.renderMessage(msg))
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

func (a AppView) renderMessage(msg Message) string {
	timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

	switch {
	case msg.Role == appmodel.RoleUser:
		return formatUserMessage(timestamp, UserStyle.Render("You"), msg.Content)

	case msg.Pending:
		return fmt.Sprintf("%s %s\n%s %s\n\n",
			timestamp,
			AssistantStyle.Render("Assistant"),
			a.loadingSpinner.View(),
			DimStyle.Render(fmt.Sprintf("Thinking... (%s)", msg.Content)),
		)

	case msg.Error:
		return fmt.Sprintf("%s %s\n%s\n\n", timestamp, ErrorStyle.Render("Error"), ErrorStyle.Render(msg.Content))
	}

	body := msg.Rendered
	if body == "" {
		body = msg.Content
	}
	return fmt.Sprintf("%s %s\n%s\n\n", timestamp, AssistantStyle.Render("Assistant"), strings.TrimRight(body, "\n"))
}

func formatUserMessage(timestamp, role, content string) string {
	bar := UserStyle.Render(userBar)

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s\n", bar, timestamp, role))

	for _, line := range strings.Split(content, "\n") {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}

	result.WriteString("\n")

	return result.String()
}

// renderAllAsync re-renders every settled assistant turn, used after a resize
func (a AppView) renderAllAsync() tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range a.dataModel.Messages {
		if msg.Role == appmodel.RoleBot && !msg.Pending && !msg.Error {
			cmds = append(cmds, a.renderMarkdownAsync(msg.ID, msg.Content))
		}
	}
	return tea.Batch(cmds...)
}

func (a AppView) renderMarkdownAsync(messageID, content string) tea.Cmd {
	width := a.width - 4
	return func() tea.Msg {
		start := time.Now()
		rendered := renderMarkdown(content, width)
		config.Log.Debug().
			Str("message", messageID).
			Int("chars", len(content)).
			Dur("elapsed", time.Since(start)).
			Msg("markdown rendered")

		return markdownRenderedMsg{
			MessageID: messageID,
			Rendered:  rendered,
		}
	}
}

// renderMarkdown renders an answer for the terminal. Autolink is disabled so
// URLs stay plain text the terminal can detect.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 76
	}

	content = mdLinkRegex.ReplaceAllString(content, "$1 ($2)")

	ext := markdown.Extensions() &^ parser.Autolink
	p := parser.NewWithExtensions(ext)
	r := markdown.NewRenderer(width, 0)
	doc := p.Parse([]byte(content))
	rendered := gomarkdown.Render(doc, r)

	return postProcessMarkdown(string(rendered))
}

func postProcessMarkdown(rendered string) string {
	rendered = fixInlineCode(rendered)
	return colorURLs(rendered)
}

// fixInlineCode swaps the renderer's blue-background inline code for red text
func fixInlineCode(s string) string {
	return inlineCodeRegex.ReplaceAllString(s, "\x1b[31m$1\x1b[0m")
}

func colorURLs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = urlRegex.ReplaceAllString(line, "\x1b[31m$1\x1b[0m")
	}
	return strings.Join(lines, "\n")
}

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
