package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DefaultServerURL      = "https://succint-whitepaper-mcp.onrender.com"
	DefaultRequestTimeout = 30 * time.Second

	TransportREST       = "rest"
	TransportStreamable = "streamable"

	EnvServerURL = "WPCHAT_SERVER_URL"
	EnvDebug     = "WPCHAT_DEBUG"
)

type Config struct {
	DataDirectory  string
	ServerURL      string
	Transport      string
	RequestTimeout time.Duration
	Keybindings    *KeyBindingsConfig
}

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// BaseURL returns the server URL without a trailing slash
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.ServerURL, "/")
}

func (c *Config) applyEnvOverrides() {
	if url := os.Getenv(EnvServerURL); url != "" {
		c.ServerURL = url
	}
}

func CheckDebug() bool {
	debug := os.Getenv(EnvDebug)
	return debug == "true" || debug == "1"
}

// Default returns the configuration used when no settings file exists
func Default() *Config {
	return &Config{
		DataDirectory:  "~/.local/share/wpchat",
		ServerURL:      DefaultServerURL,
		Transport:      TransportREST,
		RequestTimeout: DefaultRequestTimeout,
		Keybindings:    DefaultKeybindings(),
	}
}

// Load builds the configuration from defaults, the optional settings file
// and finally environment overrides.
func Load() (*Config, error) {
	return LoadFrom(GetSettingsFilePath())
}

// LoadFrom is Load with an explicit settings file path
func LoadFrom(settingsPath string) (*Config, error) {
	cfg := Default()

	if FileExists(settingsPath) {
		settings, err := LoadSettings(settingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		if err := cfg.applySettings(settings); err != nil {
			return nil, fmt.Errorf("invalid settings in %s: %w", settingsPath, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applySettings(s *Settings) error {
	if s.DataDirectory != "" {
		c.DataDirectory = s.DataDirectory
	}
	if s.ServerURL != "" {
		c.ServerURL = s.ServerURL
	}
	if s.Transport != "" {
		c.Transport = strings.ToLower(s.Transport)
	}
	if s.RequestTimeout != "" {
		d, err := time.ParseDuration(s.RequestTimeout)
		if err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	if s.Keybindings.Modifiers.Primary != "" {
		c.Keybindings.Modifiers.Primary = s.Keybindings.Modifiers.Primary
	}
	if s.Keybindings.Modifiers.Secondary != "" {
		c.Keybindings.Modifiers.Secondary = s.Keybindings.Modifiers.Secondary
	}
	if len(s.Keybindings.Actions) > 0 {
		c.Keybindings.Actions = s.Keybindings.Actions
	}
	return nil
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server URL cannot be empty")
	}
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://: %q", c.ServerURL)
	}
	switch c.Transport {
	case TransportREST, TransportStreamable:
	default:
		return fmt.Errorf("unknown transport %q (expected %q or %q)", c.Transport, TransportREST, TransportStreamable)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout cannot be negative")
	}
	if ok, msg := c.Keybindings.Validate(); !ok {
		return fmt.Errorf("invalid keybindings: %s", msg)
	}
	return nil
}
