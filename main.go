package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wpchat/config"
	"wpchat/mcp"
	"wpchat/model"
	"wpchat/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func main() {
	settingsPath := config.GetSettingsFilePath()
	if !config.FileExists(settingsPath) {
		// First run: leave a commented template behind to edit later
		if err := config.CreateDefaultSettings(settingsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create %s: %v\n", settingsPath, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		showError("Configuration Error", fmt.Sprintf("%v\n\nFix %s or the %s variable and try again.",
			err, settingsPath, config.EnvServerURL))
		os.Exit(1)
	}

	closeLog := config.InitDebugLog(cfg.DataDir())
	defer closeLog()

	config.Log.Info().
		Str("version", Version).
		Str("server", cfg.BaseURL()).
		Str("transport", cfg.Transport).
		Dur("timeout", cfg.RequestTimeout).
		Msg("starting wpchat")

	client, err := mcp.NewFromConfig(cfg, Version)
	if err != nil {
		config.Log.Error().Err(err).Msg("failed to create tool client")
		showError("Server Configuration Error", err.Error())
		os.Exit(1)
	}
	if c, ok := client.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				config.Log.Warn().Err(err).Msg("failed to close tool client")
			}
		}()
	}

	m := model.NewModel(cfg, client, Version, License)

	p := tea.NewProgram(
		ui.NewAppView(m),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		config.Log.Error().Err(err).Msg("program exited with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config.Log.Info().Int("messages", len(m.Messages)).Msg("wpchat exited")
}

func showError(title, message string) {
	p := tea.NewProgram(
		ui.NewErrorModal(title, message),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
	}
}
