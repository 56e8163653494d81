package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings mirrors settings.toml. Empty fields keep their defaults.
type Settings struct {
	DataDirectory  string            `toml:"data_directory"`
	ServerURL      string            `toml:"server_url"`
	Transport      string            `toml:"transport"`
	RequestTimeout string            `toml:"request_timeout"`
	Keybindings    KeyBindingsConfig `toml:"keybindings"`
}

func LoadSettings(path string) (*Settings, error) {
	s := &Settings{}
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// CreateDefaultSettings writes the commented template if no settings file exists yet
func CreateDefaultSettings(path string) error {
	if FileExists(path) {
		return nil
	}

	if err := EnsureDir(GetConfigDir()); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(GenerateSettingsTemplate()), 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
