package config

import (
	"strings"
)

// KeyBindingsConfig holds modifier customization and optional per-action overrides
type KeyBindingsConfig struct {
	Modifiers ModifierConfig    `toml:"modifiers"`
	Actions   map[string]string `toml:"actions"`
}

type ModifierConfig struct {
	Primary   string `toml:"primary"`   // e.g., "alt", "ctrl", "meta", "super"
	Secondary string `toml:"secondary"` // e.g., "alt+shift", "ctrl+shift"
}

// actionDef is the default modifier and key of an action
type actionDef struct {
	modifier string // "primary", "secondary", or "none"
	key      string
}

// actionRegistry maps action names to their default keybindings.
// Any of these can be overridden in [keybindings.actions].
var actionRegistry = map[string]actionDef{
	// Modals
	"help":          {"primary", "h"},
	"about":         {"secondary", "a"},
	"quick_palette": {"primary", "p"},

	// Quick actions
	"quick_action_1": {"primary", "1"},
	"quick_action_2": {"primary", "2"},
	"quick_action_3": {"primary", "3"},
	"quick_action_4": {"primary", "4"},

	// Conversation
	"new_chat":           {"primary", "n"},
	"copy_last_response": {"primary", "y"},
	"copy_conversation":  {"primary", "c"},
	"clear_input":        {"primary", "u"},
	"quit":               {"primary", "q"},

	// Scrolling
	"scroll_down":      {"primary", "j"},
	"scroll_up":        {"primary", "k"},
	"half_page_down":   {"secondary", "j"},
	"half_page_up":     {"secondary", "k"},
	"page_down":        {"primary", "pgdown"},
	"page_up":          {"primary", "pgup"},
	"scroll_to_top":    {"primary", "g"},
	"scroll_to_bottom": {"secondary", "g"},

	// Quick-action palette (the filter input takes plain letters)
	"palette_down": {"none", "down"},
	"palette_up":   {"none", "up"},
}

func DefaultKeybindings() *KeyBindingsConfig {
	return &KeyBindingsConfig{
		Modifiers: ModifierConfig{
			Primary:   "alt",
			Secondary: "alt+shift",
		},
	}
}

func (kb *KeyBindingsConfig) Primary() string {
	if kb.Modifiers.Primary == "" {
		return "alt"
	}
	return kb.Modifiers.Primary
}

func (kb *KeyBindingsConfig) Secondary() string {
	if kb.Modifiers.Secondary == "" {
		return "alt+shift"
	}
	return kb.Modifiers.Secondary
}

// PrimaryKey builds a keybinding string with the primary modifier, e.g. "alt+s"
func (kb *KeyBindingsConfig) PrimaryKey(key string) string {
	return kb.Primary() + "+" + key
}

// SecondaryKey builds a keybinding string with the secondary modifier.
// Terminals report shift+letter as the uppercase letter, so "alt+shift" with
// "s" becomes "alt+S"; special keys keep the explicit shift.
func (kb *KeyBindingsConfig) SecondaryKey(key string) string {
	secondary := kb.Secondary()

	if strings.Contains(strings.ToLower(secondary), "shift") && len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		var mods []string
		for _, part := range strings.Split(secondary, "+") {
			if strings.ToLower(part) != "shift" {
				mods = append(mods, part)
			}
		}
		if len(mods) > 0 {
			return strings.Join(mods, "+") + "+" + strings.ToUpper(key)
		}
		return strings.ToUpper(key)
	}

	return secondary + "+" + key
}

// GetActionKey returns the keybinding for an action: the user override if
// any, otherwise the registry default. Unknown actions return "".
func (kb *KeyBindingsConfig) GetActionKey(action string) string {
	if override, ok := kb.Actions[action]; ok && override != "" {
		return override
	}

	def, ok := actionRegistry[action]
	if !ok {
		return ""
	}

	switch def.modifier {
	case "primary":
		return kb.PrimaryKey(def.key)
	case "secondary":
		return kb.SecondaryKey(def.key)
	default:
		return def.key
	}
}

// Matches reports whether a key press (tea.KeyMsg.String()) triggers action
func (kb *KeyBindingsConfig) Matches(action, pressed string) bool {
	bound := kb.GetActionKey(action)
	return bound != "" && bound == pressed
}

// DisplayActionKey returns the keybinding formatted for the UI, e.g. "Alt+Shift+J"
func (kb *KeyBindingsConfig) DisplayActionKey(action string) string {
	key := kb.GetActionKey(action)
	if key == "" {
		return ""
	}
	return capitalizeKeybinding(key)
}

// capitalizeKeybinding turns "alt+D" into "Alt+Shift+D" and "ctrl+j" into "Ctrl+J"
func capitalizeKeybinding(key string) string {
	parts := strings.Split(key, "+")

	hasShift := false
	for _, p := range parts {
		if strings.ToLower(p) == "shift" {
			hasShift = true
			break
		}
	}

	var result []string
	for i, part := range parts {
		if part == "" {
			continue
		}

		if len(part) == 1 && part[0] >= 'A' && part[0] <= 'Z' {
			if !hasShift && i > 0 {
				result = append(result, "Shift")
			}
			result = append(result, part)
			continue
		}

		result = append(result, strings.ToUpper(part[:1])+part[1:])
	}

	return strings.Join(result, "+")
}

// Validate returns (isValid, message). A valid config may still carry a warning.
func (kb *KeyBindingsConfig) Validate() (bool, string) {
	primary := kb.Primary()
	secondary := kb.Secondary()

	if primary == "shift" || secondary == "shift" {
		return false, "Shift alone conflicts with typing"
	}

	if primary == secondary {
		return false, "Primary and secondary modifiers must differ"
	}

	if strings.Contains(primary, "ctrl") || strings.Contains(secondary, "ctrl") {
		return true, "Warning: Ctrl may conflict with terminal shortcuts (Ctrl+C, Ctrl+Z, Ctrl+D)"
	}

	return true, ""
}
