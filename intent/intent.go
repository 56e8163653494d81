package intent

import "fmt"

// Tool is one of the fixed remote operations exposed by the whitepaper service
type Tool int

const (
	ToolSearch Tool = iota
	ToolSection
	ToolConcept
	ToolListSections
)

var toolNames = map[Tool]string{
	ToolSearch:       "search_whitepaper",
	ToolSection:      "get_section",
	ToolConcept:      "get_key_concepts",
	ToolListSections: "list_sections",
}

var toolLabels = map[Tool]string{
	ToolSearch:       "Searching whitepaper",
	ToolSection:      "Fetching section",
	ToolConcept:      "Looking up concept",
	ToolListSections: "Listing sections",
}

// Argument names expected by the remote tools
const (
	ArgQuery   = "query"
	ArgSection = "section"
	ArgConcept = "concept"
)

// Tools returns the fixed tool enumeration in display order
func Tools() []Tool {
	return []Tool{ToolSection, ToolConcept, ToolSearch, ToolListSections}
}

// String returns the wire name of the tool
func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// Label returns a short human description used while a call is outstanding
func (t Tool) Label() string {
	if label, ok := toolLabels[t]; ok {
		return label
	}
	return "Working"
}

// ParseTool maps a wire name back to its Tool
func ParseTool(name string) (Tool, error) {
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tool: %q", name)
}

// Intent pairs a tool with the arguments to call it with
type Intent struct {
	Tool Tool
	Args map[string]string
}

// Arguments converts Args to the generic map the transports encode
func (i Intent) Arguments() map[string]any {
	args := make(map[string]any, len(i.Args))
	for k, v := range i.Args {
		args[k] = v
	}
	return args
}
