// Package adapters registers one adapter per supported app.
package adapters

import (
	"fmt"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/infrastructure/adapters/alacritty"
	"github.com/doeshing/fontset/internal/infrastructure/adapters/dconf"
	"github.com/doeshing/fontset/internal/infrastructure/adapters/jsonfile"
	"github.com/doeshing/fontset/internal/ports"
)

// Registry resolves apps to adapters. It is built once per invocation and
// only read afterwards.
type Registry struct {
	adapters map[domain.App]ports.Adapter
}

// Dependencies are the collaborators adapters are built from.
type Dependencies struct {
	GOOS    string
	Config  domain.Config
	Layout  jsonfile.Layout
	Locator ports.ProgramLocator
	Runner  ports.CommandRunner
	Logger  ports.Logger
}

// NewRegistry registers an adapter for every app available on deps.GOOS.
func NewRegistry(deps Dependencies) (*Registry, error) {
	paths := deps.Config.Paths
	r := &Registry{adapters: map[domain.App]ports.Adapter{}}

	alacrittyPaths := alacritty.DefaultPaths(deps.GOOS, deps.Layout.Home, deps.Layout.ConfigDir)
	if paths.Alacritty != "" {
		alacrittyPaths = alacritty.PathsFromOverride(paths.Alacritty)
	}
	r.adapters[domain.AppAlacritty] = alacritty.New(alacrittyPaths, deps.Locator, deps.Logger)
	r.adapters[domain.AppAtom] = jsonfile.New(domain.AppAtom, jsonfile.Atom(deps.Layout, paths.Atom), deps.Logger)
	r.adapters[domain.AppSublimeText] = jsonfile.New(domain.AppSublimeText, jsonfile.SublimeText(deps.Layout, paths.SublimeText), deps.Logger)
	r.adapters[domain.AppVSCode] = jsonfile.New(domain.AppVSCode, jsonfile.VSCode(deps.Layout, paths.VSCode), deps.Logger)

	terminal, err := terminalAdapter(deps)
	if err != nil {
		return nil, err
	}
	r.adapters[domain.AppTerminal] = terminal

	if deps.GOOS == "darwin" {
		r.adapters[domain.AppXcode] = unsupported{app: domain.AppXcode, reason: "Xcode font themes are not supported yet"}
	}

	for _, spec := range domain.AppsFor(deps.GOOS) {
		if _, ok := r.adapters[spec.App]; !ok {
			return nil, fmt.Errorf("no adapter registered for %s", spec.Token)
		}
	}
	return r, nil
}

func terminalAdapter(deps Dependencies) (ports.Adapter, error) {
	switch deps.GOOS {
	case "darwin":
		return unsupported{app: domain.AppTerminal, reason: "macOS Terminal profiles are not supported yet"}, nil
	case "windows":
		doc := jsonfile.WindowsTerminal(deps.Layout, deps.Config.Paths.WindowsTerminal)
		return jsonfile.New(domain.AppTerminal, doc, deps.Logger), nil
	}

	var schema dconf.Schema
	switch deps.Config.Terminal.Flavor {
	case "", domain.TerminalFlavorTilix:
		schema = dconf.TilixSchema
	case domain.TerminalFlavorGnomeTerminal:
		schema = dconf.GnomeTerminalSchema
	default:
		return nil, fmt.Errorf("unknown terminal flavor %q", deps.Config.Terminal.Flavor)
	}
	return dconf.New(domain.AppTerminal, schema, deps.Locator, deps.Runner, deps.Logger), nil
}

// AdapterFor implements ports.AdapterResolver.
func (r *Registry) AdapterFor(app domain.App) (ports.Adapter, error) {
	a, ok := r.adapters[app]
	if !ok {
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownApplication, app)
	}
	return a, nil
}

var _ ports.AdapterResolver = (*Registry)(nil)
