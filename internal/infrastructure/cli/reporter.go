package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/doeshing/fontset/internal/domain"
	"github.com/doeshing/fontset/internal/ports"
)

// consoleReporter prints one line per app as results arrive. Workers call it
// concurrently, so writes are serialized.
type consoleReporter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	logger ports.Logger
}

// NewConsoleReporter builds a reporter writing successes to out and failures
// to errOut.
func NewConsoleReporter(out, errOut io.Writer, logger ports.Logger) ports.Reporter {
	return &consoleReporter{out: out, errOut: errOut, logger: logger}
}

func (r *consoleReporter) Applied(app domain.App) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s: applied\n", app)
}

func (r *consoleReporter) Failed(subject string, err error) {
	r.logger.Debug("apply failed", map[string]interface{}{"subject": subject})
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.errOut, "error: %v\n", err)
}
