package intent

import (
	"regexp"
	"strings"
)

// command is a literal tool invocation typed by the user, e.g. "get_section abstract"
type command struct {
	word string
	tool Tool
	arg  string // empty for commands that take no argument
}

var commands = []command{
	{word: "get_section", tool: ToolSection, arg: ArgSection},
	{word: "get_key_concepts", tool: ToolConcept, arg: ArgConcept},
	{word: "search_whitepaper", tool: ToolSearch, arg: ArgQuery},
	{word: "list_sections", tool: ToolListSections},
}

// rule is one natural-language pattern. Rules are tried in order and the
// first match wins.
type rule struct {
	pattern *regexp.Regexp
	build   func(match []string) Intent
}

var rules = []rule{
	{
		pattern: regexp.MustCompile(`(?is)^(?:search(?:\s+for)?|find|look\s+for)\s+(.+)$`),
		build: func(m []string) Intent {
			return Intent{Tool: ToolSearch, Args: map[string]string{ArgQuery: m[1]}}
		},
	},
	{
		pattern: regexp.MustCompile(`(?is)^(?:get|show|display)\s+(?:section\s+)?(.+)$`),
		build: func(m []string) Intent {
			return Intent{Tool: ToolSection, Args: map[string]string{ArgSection: m[1]}}
		},
	},
	{
		pattern: regexp.MustCompile(`(?is)^(?:explain|what\s+is|define)\s+(.+)$`),
		build: func(m []string) Intent {
			return Intent{Tool: ToolConcept, Args: map[string]string{ArgConcept: m[1]}}
		},
	},
	{
		pattern: regexp.MustCompile(`(?is)^(?:list|show)\s+(?:all\s+)?(?:sections|content)`),
		build: func([]string) Intent {
			return Intent{Tool: ToolListSections, Args: map[string]string{}}
		},
	},
}

// Classify maps free-form user text to exactly one Intent.
//
// Literal commands are checked first, then the natural-language rules in
// order. Anything else becomes a full-text search for the original text.
// Matching ignores case and surrounding whitespace; captured arguments keep
// the user's casing.
func Classify(text string) Intent {
	trimmed := strings.TrimSpace(text)

	if in, ok := matchCommand(trimmed); ok {
		return in
	}

	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(trimmed); m != nil {
			return r.build(m)
		}
	}

	return Intent{Tool: ToolSearch, Args: map[string]string{ArgQuery: text}}
}

func matchCommand(trimmed string) (Intent, bool) {
	for _, c := range commands {
		if c.arg == "" {
			if strings.EqualFold(trimmed, c.word) {
				return Intent{Tool: c.tool, Args: map[string]string{}}, true
			}
			continue
		}

		if len(trimmed) <= len(c.word) || !strings.EqualFold(trimmed[:len(c.word)], c.word) {
			continue
		}

		// The command word must be followed by whitespace, not more letters.
		rest := trimmed[len(c.word):]
		if !startsWithSpace(rest) {
			continue
		}

		arg := strings.TrimSpace(rest)
		if arg == "" {
			continue
		}
		return Intent{Tool: c.tool, Args: map[string]string{c.arg: arg}}, true
	}
	return Intent{}, false
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeft(s, " \t\r\n") != s
}
