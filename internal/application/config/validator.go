package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/fontset/internal/domain"
)

// Validate ensures config structure is consistent. parseApp resolves
// default_apps tokens for the running platform.
func Validate(cfg domain.Config, parseApp func(string) (domain.App, bool)) error {
	if cfg.ConfigFormatVersion != "" && cfg.ConfigFormatVersion != "1" {
		return fmt.Errorf("config_format_version %s is not supported", cfg.ConfigFormatVersion)
	}
	if err := validatePreferences(cfg.Preferences, parseApp); err != nil {
		return err
	}
	if err := validateTerminal(cfg.Terminal); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	return nil
}

func validatePreferences(prefs domain.Preferences, parseApp func(string) (domain.App, bool)) error {
	var unknown []string
	for _, token := range prefs.DefaultApps {
		if _, ok := parseApp(token); !ok {
			unknown = append(unknown, fmt.Sprintf("%q", token))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("preferences.default_apps has unknown apps: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// validateTerminal matches flavors exactly, as the adapter registry does.
func validateTerminal(term domain.TerminalSettings) error {
	switch term.Flavor {
	case "", domain.TerminalFlavorTilix, domain.TerminalFlavorGnomeTerminal:
		return nil
	default:
		return fmt.Errorf("terminal.flavor must be %s|%s, got %s",
			domain.TerminalFlavorTilix, domain.TerminalFlavorGnomeTerminal, term.Flavor)
	}
}

func validateHistory(history domain.HistorySettings) error {
	if history.Enabled && strings.TrimSpace(history.Path) == "" {
		return fmt.Errorf("history.path must be set when history is enabled")
	}
	return nil
}
