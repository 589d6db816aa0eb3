package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	rootassets "github.com/doeshing/fontset/assets"
	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/pkg/filesystem"
	"github.com/doeshing/fontset/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "FONTSET_CONFIG"

// FileLoader loads YAML configuration from ~/.fontset/config.yaml (overridable via FONTSET_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		if err := writeDefault(path); err != nil {
			return domain.Config{}, err
		}
		data = rootassets.DefaultConfigYAML
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Path returns the config file in use.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".fontset", "config.yaml")
}

// Save writes cfg to the config file.
func (l *FileLoader) Save(cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return filesystem.WriteFileAtomic(path, raw, domain.ConfigFilePermissions)
}

// Reset overwrites the config file with the defaults.
func (l *FileLoader) Reset() (domain.Config, error) {
	cfg := DefaultConfig()
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}
	if err := filesystem.WriteFileAtomic(path, rootassets.DefaultConfigYAML, domain.ConfigFilePermissions); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Backup copies the config file next to itself with a timestamp suffix.
func (l *FileLoader) Backup() (string, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102T150405"))
	if err := os.WriteFile(backup, data, domain.ConfigFilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, rootassets.DefaultConfigYAML, domain.ConfigFilePermissions)
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	_ = yaml.Unmarshal(rootassets.DefaultConfigYAML, &cfg)
	return hydrateDefaults(cfg)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Terminal.Flavor == "" {
		cfg.Terminal.Flavor = domain.TerminalFlavorTilix
	}
	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(filesystem.UserHomeDir(), ".fontset", "history", "history.db")
	} else {
		cfg.History.Path = filesystem.ExpandPath(cfg.History.Path)
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
