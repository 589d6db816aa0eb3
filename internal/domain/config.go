package domain

// Config mirrors ~/.fontset/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Preferences         Preferences      `yaml:"preferences"`
	Terminal            TerminalSettings `yaml:"terminal"`
	Paths               PathOverrides    `yaml:"paths"`
	History             HistorySettings  `yaml:"history"`
}

// Preferences captures user level defaults.
type Preferences struct {
	DefaultApps []string `yaml:"default_apps"`
}

// TerminalSettings picks the dconf-backed terminal used for "terminal" on Linux.
type TerminalSettings struct {
	Flavor string `yaml:"flavor"`
}

// PathOverrides points adapters at non-standard settings files. Empty
// values use the platform default location.
type PathOverrides struct {
	VSCode          string `yaml:"vscode,omitempty"`
	SublimeText     string `yaml:"sublimetext,omitempty"`
	Atom            string `yaml:"atom,omitempty"`
	Alacritty       string `yaml:"alacritty,omitempty"`
	WindowsTerminal string `yaml:"windows_terminal,omitempty"`
}

// HistorySettings controls the apply log.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Terminal flavors selectable on Linux.
const (
	TerminalFlavorTilix         = "tilix"
	TerminalFlavorGnomeTerminal = "gnome-terminal"
)
