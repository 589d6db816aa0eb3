package dconf

// Schema describes where a dconf-backed terminal keeps its profiles.
//
// Tilix: https://github.com/gnunn1/tilix/blob/4178cf16f4b15f06b679fa05c0fa6fc8afd40999/source/gx/tilix/preferences.d#L315
type Schema struct {
	// Name is used in messages.
	Name string
	// Program must be on PATH for the terminal to count as installed.
	Program string
	// Namespace is the dconf directory passed to dump and load.
	Namespace string
	// DefaultSection holds the "default" key pointing at the active profile.
	DefaultSection string
	// ProfilePrefix is prepended to a profile id to form its section name.
	ProfilePrefix string
	// FirstRunProfileID is the profile the terminal creates on first launch.
	FirstRunProfileID string
	// DefaultFamily and DefaultSize are the terminal's built-in font.
	DefaultFamily string
	DefaultSize   string
	// VisibleName names a profile fontset has to create itself.
	VisibleName string
}

// TilixSchema is Tilix's dconf layout.
var TilixSchema = Schema{
	Name:              "Tilix",
	Program:           "tilix",
	Namespace:         "/com/gexperts/Tilix/",
	DefaultSection:    "profiles",
	ProfilePrefix:     "profiles/",
	FirstRunProfileID: "2b7c4080-0ddd-46c5-8f23-563fd3ba789d",
	DefaultFamily:     "Monospace Regular",
	DefaultSize:       "12",
	VisibleName:       "Default",
}

// GnomeTerminalSchema is GNOME Terminal's dconf layout.
var GnomeTerminalSchema = Schema{
	Name:              "GNOME Terminal",
	Program:           "gnome-terminal",
	Namespace:         "/org/gnome/terminal/legacy/profiles:/",
	DefaultSection:    "/",
	ProfilePrefix:     ":",
	FirstRunProfileID: "b1dcc9dd-5262-4d8d-a863-c897e6d979b9",
	DefaultFamily:     "Monospace",
	DefaultSize:       "12",
	VisibleName:       "Default",
}

// profileSection returns the section name holding profile id.
func (s Schema) profileSection(id string) string {
	return s.ProfilePrefix + id
}
