package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/pkg/filesystem"
)

// Layout supplies the base directories settings paths are derived from.
type Layout struct {
	GOOS      string
	Home      string
	ConfigDir string
	// LocalAppData is only used on Windows.
	LocalAppData string
}

// DefaultLayout reads the base directories of the current user.
func DefaultLayout(goos string) Layout {
	return Layout{
		GOOS:         goos,
		Home:         filesystem.UserHomeDir(),
		ConfigDir:    filesystem.UserConfigDir(),
		LocalAppData: os.Getenv("LOCALAPPDATA"),
	}
}

func pick(override, fallback string) string {
	if override != "" {
		return filesystem.ExpandPath(override)
	}
	return fallback
}

// VSCode is Visual Studio Code's user settings.json.
func VSCode(l Layout, override string) Document {
	return Document{
		Path:    pick(override, filepath.Join(l.ConfigDir, "Code", "User", "settings.json")),
		FontKey: `editor\.fontFamily`,
		Ligatures: func(doc []byte, flag domain.LigaturesFlag) ([]byte, error) {
			return setIfChanged(doc, `editor\.fontLigatures`, flag.Enabled())
		},
	}
}

// SublimeText is Sublime Text's user Preferences.sublime-settings.
func SublimeText(l Layout, override string) Document {
	dir := filepath.Join(l.ConfigDir, "Sublime Text")
	if l.GOOS == "linux" {
		dir = filepath.Join(l.ConfigDir, "sublime-text")
	}
	return Document{
		Path:      pick(override, filepath.Join(dir, "Packages", "User", "Preferences.sublime-settings")),
		FontKey:   "font_face",
		Ligatures: sublimeLigatures,
	}
}

// Atom is Atom's config.json. Atom also reads config.cson, which fontset
// cannot edit.
func Atom(l Layout, override string) Document {
	return Document{
		Path:    pick(override, filepath.Join(l.Home, ".atom", "config.json")),
		FontKey: `\*.editor.fontFamily`,
		Precheck: func(d Document) error {
			if _, err := os.Stat(d.Path); err == nil {
				return nil
			}
			cson := filepath.Join(filepath.Dir(d.Path), "config.cson")
			if _, err := os.Stat(cson); err == nil {
				return fmt.Errorf("%s is CSON; move its settings to config.json to let fontset edit them", cson)
			}
			return nil
		},
	}
}

// WindowsTerminal is Windows Terminal's settings.json; fonts are set on
// profiles.defaults so every profile inherits them.
func WindowsTerminal(l Layout, override string) Document {
	return Document{
		Path: pick(override, filepath.Join(l.LocalAppData, "Packages",
			"Microsoft.WindowsTerminal_8wekyb3d8bbwe", "LocalState", "settings.json")),
		FontKey: "profiles.defaults.font.face",
		Ligatures: func(doc []byte, flag domain.LigaturesFlag) ([]byte, error) {
			value := 0
			if flag.Enabled() {
				value = 1
			}
			return setIfChanged(doc, "profiles.defaults.font.features.liga", value)
		},
	}
}

const sublimeNoLiga = "no_liga"

// sublimeLigatures adds or removes "no_liga" in font_options.
func sublimeLigatures(doc []byte, flag domain.LigaturesFlag) ([]byte, error) {
	current := gjson.GetBytes(doc, "font_options")
	if current.Exists() && !current.IsArray() {
		return nil, errors.New("font_options is not a list")
	}
	var options []string
	for _, v := range current.Array() {
		options = append(options, v.String())
	}

	has := slices.Contains(options, sublimeNoLiga)
	switch {
	case flag.Enabled() && has:
		options = slices.DeleteFunc(options, func(o string) bool { return o == sublimeNoLiga })
	case !flag.Enabled() && !has:
		options = append(options, sublimeNoLiga)
	default:
		return doc, nil
	}
	if options == nil {
		options = []string{}
	}
	return sjson.SetBytes(doc, "font_options", options)
}

func setIfChanged(doc []byte, path string, value interface{}) ([]byte, error) {
	current := gjson.GetBytes(doc, path)
	if current.Exists() && current.Value() == normalize(value) {
		return doc, nil
	}
	return sjson.SetBytes(doc, path, value)
}

// normalize maps value to the type gjson.Result.Value would decode it as.
func normalize(value interface{}) interface{} {
	if i, ok := value.(int); ok {
		return float64(i)
	}
	return value
}
