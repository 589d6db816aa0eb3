// Package ports defines the interfaces between the application core and its
// adapters.
//
// The application layer (dispatcher, doctor) only sees these interfaces;
// the infrastructure layer supplies concrete implementations that talk to
// dconf, settings files, the process table and the history database.
package ports

import (
	"context"

	"github.com/doeshing/fontset/internal/domain"
)

// Adapter applies a setting to one application's own store.
// Implementations must be idempotent and return *domain.AdapterError on failure.
type Adapter interface {
	Apply(ctx context.Context, setting domain.Setting) error
}

// Detector is implemented by adapters that can report whether their
// prerequisites are present without touching the store.
type Detector interface {
	Detect(ctx context.Context) domain.HealthCheck
}

// AdapterResolver maps an App to its adapter.
type AdapterResolver interface {
	AdapterFor(domain.App) (Adapter, error)
}

// ProgramLocator finds executables on the search path.
type ProgramLocator interface {
	LookPath(program string) (string, error)
}

// CommandRunner runs short-lived helper processes.
type CommandRunner interface {
	// Output runs name and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// RunWithInput runs name with input fed on its standard input.
	RunWithInput(ctx context.Context, input []byte, name string, args ...string) error
}

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.fontset/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryRepository persists one record per invocation.
type HistoryRepository interface {
	Save(domain.HistoryRecord) error
	Records(limit int) ([]domain.HistoryRecord, error)
	Clear() error
	Path() string
}

// Reporter receives per-app outcomes as they happen. Implementations must
// be safe for concurrent use.
type Reporter interface {
	Applied(app domain.App)
	Failed(subject string, err error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
