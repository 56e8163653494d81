package config

import "testing"

func TestGetActionKey(t *testing.T) {
	tests := []struct {
		name     string
		kb       *KeyBindingsConfig
		action   string
		expected string
	}{
		{"primary default", DefaultKeybindings(), "help", "alt+h"},
		{"secondary letter uses uppercase", DefaultKeybindings(), "half_page_down", "alt+J"},
		{"no modifier", DefaultKeybindings(), "palette_down", "down"},
		{"digit", DefaultKeybindings(), "quick_action_3", "alt+3"},
		{"unknown action", DefaultKeybindings(), "launch_rockets", ""},
		{
			name: "ctrl modifiers",
			kb: &KeyBindingsConfig{
				Modifiers: ModifierConfig{Primary: "ctrl", Secondary: "ctrl+shift"},
			},
			action:   "scroll_to_bottom",
			expected: "ctrl+G",
		},
		{
			name: "override",
			kb: &KeyBindingsConfig{
				Modifiers: ModifierConfig{Primary: "alt", Secondary: "alt+shift"},
				Actions:   map[string]string{"copy_last_response": "ctrl+y"},
			},
			action:   "copy_last_response",
			expected: "ctrl+y",
		},
		{
			name: "secondary without shift keeps key",
			kb: &KeyBindingsConfig{
				Modifiers: ModifierConfig{Primary: "alt", Secondary: "ctrl"},
			},
			action:   "about",
			expected: "ctrl+a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kb.GetActionKey(tt.action); got != tt.expected {
				t.Errorf("GetActionKey(%q) = %q, want %q", tt.action, got, tt.expected)
			}
		})
	}
}

func TestDisplayActionKey(t *testing.T) {
	kb := DefaultKeybindings()

	tests := map[string]string{
		"help":           "Alt+H",
		"about":          "Alt+Shift+A",
		"quick_action_1": "Alt+1",
		"page_down":      "Alt+Pgdown",
		"palette_up":     "Up",
	}

	for action, want := range tests {
		if got := kb.DisplayActionKey(action); got != want {
			t.Errorf("DisplayActionKey(%q) = %q, want %q", action, got, want)
		}
	}
}

func TestMatches(t *testing.T) {
	kb := DefaultKeybindings()

	if !kb.Matches("quit", "alt+q") {
		t.Error("alt+q should match quit")
	}
	if kb.Matches("quit", "q") {
		t.Error("plain q should not match quit")
	}
	if kb.Matches("no_such_action", "") {
		t.Error("unknown action should never match")
	}
}

func TestValidateKeybindings(t *testing.T) {
	tests := []struct {
		name      string
		mods      ModifierConfig
		wantValid bool
		wantMsg   bool
	}{
		{"defaults", ModifierConfig{"alt", "alt+shift"}, true, false},
		{"shift alone", ModifierConfig{"shift", "alt"}, false, true},
		{"same modifiers", ModifierConfig{"alt", "alt"}, false, true},
		{"ctrl warns", ModifierConfig{"ctrl", "ctrl+shift"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := &KeyBindingsConfig{Modifiers: tt.mods}
			valid, msg := kb.Validate()
			if valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", valid, tt.wantValid)
			}
			if (msg != "") != tt.wantMsg {
				t.Errorf("msg = %q, want message: %v", msg, tt.wantMsg)
			}
		})
	}
}
