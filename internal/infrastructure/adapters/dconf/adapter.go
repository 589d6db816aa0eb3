// Package dconf applies font settings to terminals that keep their
// preferences in dconf, such as Tilix and GNOME Terminal.
//
// Every Apply dumps the terminal's namespace, picks the profile to edit,
// merges the requested font into the current declaration and loads a
// single-section keyfile back. `dconf load` merges by section, so keys the
// keyfile does not mention are left as they were.
package dconf

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

const storeProgram = "dconf"

// Adapter is the dconf-backed adapter for one terminal.
type Adapter struct {
	app     domain.App
	schema  Schema
	locator ports.ProgramLocator
	runner  ports.CommandRunner
	logger  ports.Logger
}

// New builds an adapter that reports errors as app and edits the store
// described by schema.
func New(app domain.App, schema Schema, locator ports.ProgramLocator, runner ports.CommandRunner, logger ports.Logger) *Adapter {
	return &Adapter{
		app:     app,
		schema:  schema,
		locator: locator,
		runner:  runner,
		logger:  logger,
	}
}

// Apply implements ports.Adapter.
func (a *Adapter) Apply(ctx context.Context, setting domain.Setting) error {
	if err := a.preflight(); err != nil {
		return domain.NewAdapterError(a.app, domain.KindNotInstalled, err)
	}

	snap, err := a.dump(ctx)
	if err != nil {
		return domain.NewAdapterError(a.app, domain.KindStoreUnreadable, err)
	}

	p := a.schema.resolveProfile(snap)
	family, size := a.schema.currentFont(snap, p)
	if font, ok := setting.Font(); ok {
		family = font.String()
	}
	if flag, ok := setting.Ligatures(); ok {
		// No dconf key holds ligatures yet; the flag is accepted and dropped.
		a.logger.Debug("ligatures not persisted", map[string]interface{}{
			"terminal":  a.schema.Name,
			"ligatures": flag.String(),
		})
	}

	a.logger.Debug("resolved profile", map[string]interface{}{
		"terminal": a.schema.Name,
		"profile":  p.ID,
		"source":   p.Source.String(),
		"family":   family,
		"size":     size,
	})

	keyfile := a.schema.render(p, family, size)
	if err := a.runner.RunWithInput(ctx, []byte(keyfile), storeProgram, "load", a.schema.Namespace); err != nil {
		return domain.NewAdapterError(a.app, domain.KindStoreWriteFailed, fmt.Errorf("dconf load %s: %w", a.schema.Namespace, err))
	}
	return nil
}

// Detect implements ports.Detector.
func (a *Adapter) Detect(context.Context) domain.HealthCheck {
	name := fmt.Sprintf("%s (%s)", a.app, a.schema.Name)
	if err := a.preflight(); err != nil {
		return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: err.Error()}
	}
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: "dconf store " + a.schema.Namespace}
}

// preflight requires both the terminal and dconf to be executable on PATH.
func (a *Adapter) preflight() error {
	var missing []string
	for _, program := range []string{a.schema.Program, storeProgram} {
		if _, err := a.locator.LookPath(program); err != nil {
			missing = append(missing, program)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("could not find %s on PATH", strings.Join(missing, " or "))
	}
	return nil
}

func (a *Adapter) dump(ctx context.Context) (snapshot, error) {
	out, err := a.runner.Output(ctx, storeProgram, "dump", a.schema.Namespace)
	if err != nil {
		return nil, fmt.Errorf("dconf dump %s: %w", a.schema.Namespace, err)
	}
	if !utf8.Valid(out) {
		return nil, fmt.Errorf("dconf dump %s: output is not valid UTF-8", a.schema.Namespace)
	}
	return parseSnapshot(string(out)), nil
}

var (
	_ ports.Adapter  = (*Adapter)(nil)
	_ ports.Detector = (*Adapter)(nil)
)
