package config

import (
	"strings"
	"testing"

	"github.com/doeshing/fontset/internal/domain"
)

func linuxApps(token string) (domain.App, bool) {
	return domain.ParseAppFor("linux", token)
}

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Preferences:         domain.Preferences{DefaultApps: []string{"terminal", "vscode"}},
		Terminal:            domain.TerminalSettings{Flavor: domain.TerminalFlavorTilix},
		History:             domain.HistorySettings{Enabled: true, Path: "/tmp/history.db"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "empty flavor", mutate: func(c *domain.Config) { c.Terminal.Flavor = "" }},
		{name: "history disabled without path", mutate: func(c *domain.Config) {
			c.History = domain.HistorySettings{}
		}},
		{name: "future version", mutate: func(c *domain.Config) { c.ConfigFormatVersion = "2" }, wantErr: "config_format_version"},
		{name: "unknown app", mutate: func(c *domain.Config) {
			c.Preferences.DefaultApps = []string{"vscode", "emacs"}
		}, wantErr: `"emacs"`},
		{name: "xcode off darwin", mutate: func(c *domain.Config) {
			c.Preferences.DefaultApps = []string{"xcode"}
		}, wantErr: "default_apps"},
		{name: "bad flavor", mutate: func(c *domain.Config) { c.Terminal.Flavor = "konsole" }, wantErr: "terminal.flavor"},
		{name: "flavor case differs", mutate: func(c *domain.Config) { c.Terminal.Flavor = "Tilix" }, wantErr: "terminal.flavor"},
		{name: "history without path", mutate: func(c *domain.Config) { c.History.Path = " " }, wantErr: "history.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg, linuxApps)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
