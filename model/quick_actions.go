package model

// QuickAction is a canned query offered next to the input
type QuickAction struct {
	Label       string
	Query       string
	Description string
}

var quickActions = []QuickAction{
	{
		Label:       "What is the Succinct Network?",
		Query:       "get_section Abstract",
		Description: "Get an overview of the Succinct Network",
	},
	{
		Label:       "Explain proof contests",
		Query:       "get_key_concepts proof contests",
		Description: "Understand the core auction mechanism",
	},
	{
		Label:       "Search for SP1",
		Query:       "search_whitepaper SP1",
		Description: "Learn about the zkVM powering the network",
	},
	{
		Label:       "List all sections",
		Query:       "list_sections",
		Description: "See all available whitepaper sections",
	},
}

var exampleQueries = []string{
	"search for zkVM",
	"explain proof contests",
	"show abstract",
	"list sections",
}

func QuickActions() []QuickAction {
	out := make([]QuickAction, len(quickActions))
	copy(out, quickActions)
	return out
}

// ExampleQueries are natural-language samples the user can edit before sending
func ExampleQueries() []string {
	out := make([]string, len(exampleQueries))
	copy(out, exampleQueries)
	return out
}

const WelcomeText = `✨ Welcome to the Succinct Network Whitepaper Assistant!

I can help you explore the whitepaper content. Here's what you can do:

- **Search**: "search for zkVM" or "find proof contests"
- **Get Sections**: "show me the abstract" or "display network architecture"
- **Explain Concepts**: "what is SP1?" or "explain proving pools"
- **List Content**: "list all sections"

Use the quick actions below or ask me anything!`
