// Package alacritty sets the font family in Alacritty's config file.
//
// alacritty.toml is preferred; a legacy alacritty.yml is edited only when it
// is the sole config present. Alacritty has no ligature support, so the
// ligatures flag is accepted and ignored.
package alacritty

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/pkg/filesystem"
	"github.com/doeshing/fontset/internal/ports"
)

const program = "alacritty"

// Paths lists the config files Alacritty reads, in preference order.
type Paths struct {
	TOML string
	YAML string
}

// DefaultPaths returns the config locations for goos. Alacritty uses
// ~/.config on macOS too, not ~/Library.
func DefaultPaths(goos, home, configDir string) Paths {
	dir := filepath.Join(home, ".config", "alacritty")
	if goos == "windows" || goos == "linux" {
		dir = filepath.Join(configDir, "alacritty")
	}
	return Paths{
		TOML: filepath.Join(dir, "alacritty.toml"),
		YAML: filepath.Join(dir, "alacritty.yml"),
	}
}

// PathsFromOverride derives the paths from a user supplied config file.
func PathsFromOverride(path string) Paths {
	path = filesystem.ExpandPath(path)
	if ext := filepath.Ext(path); ext == ".yml" || ext == ".yaml" {
		return Paths{YAML: path}
	}
	return Paths{TOML: path}
}

// Adapter edits Alacritty's config.
type Adapter struct {
	paths   Paths
	locator ports.ProgramLocator
	logger  ports.Logger
}

// New builds an Alacritty adapter.
func New(paths Paths, locator ports.ProgramLocator, logger ports.Logger) *Adapter {
	return &Adapter{paths: paths, locator: locator, logger: logger}
}

// Apply implements ports.Adapter.
func (a *Adapter) Apply(_ context.Context, setting domain.Setting) error {
	path, editor := a.target()
	if !a.installed(path) {
		return domain.NewAdapterError(domain.AppAlacritty, domain.KindNotInstalled,
			fmt.Errorf("could not find %s on PATH or %s", program, path))
	}

	if flag, ok := setting.Ligatures(); ok {
		a.logger.Debug("ligatures not supported", map[string]interface{}{"app": program, "ligatures": flag.String()})
	}
	font, ok := setting.Font()
	if !ok {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.NewAdapterError(domain.AppAlacritty, domain.KindStoreUnreadable, err)
	}

	updated, err := editor(data, font.String())
	if err != nil {
		return domain.NewAdapterError(domain.AppAlacritty, domain.KindStoreUnreadable, fmt.Errorf("parse %s: %w", path, err))
	}
	if data != nil && bytes.Equal(updated, data) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.NewAdapterError(domain.AppAlacritty, domain.KindStoreWriteFailed, err)
	}
	if err := filesystem.WriteFileAtomic(path, updated, domain.SettingsFilePermissions); err != nil {
		return domain.NewAdapterError(domain.AppAlacritty, domain.KindStoreWriteFailed, err)
	}
	return nil
}

// Detect implements ports.Detector.
func (a *Adapter) Detect(context.Context) domain.HealthCheck {
	path, _ := a.target()
	if !a.installed(path) {
		return domain.HealthCheck{Name: program, Status: domain.HealthWarn, Details: "not installed"}
	}
	return domain.HealthCheck{Name: program, Status: domain.HealthOK, Details: path}
}

type editFunc func(data []byte, family string) ([]byte, error)

// target picks the file to edit: an existing TOML config, else an existing
// YAML config, else a new TOML config.
func (a *Adapter) target() (string, editFunc) {
	if a.paths.TOML != "" && exists(a.paths.TOML) {
		return a.paths.TOML, setTOMLFamily
	}
	if a.paths.YAML != "" && exists(a.paths.YAML) {
		return a.paths.YAML, setYAMLFamily
	}
	if a.paths.TOML == "" {
		return a.paths.YAML, setYAMLFamily
	}
	return a.paths.TOML, setTOMLFamily
}

func (a *Adapter) installed(path string) bool {
	if _, err := a.locator.LookPath(program); err == nil {
		return true
	}
	return exists(path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var (
	_ ports.Adapter  = (*Adapter)(nil)
	_ ports.Detector = (*Adapter)(nil)
)
