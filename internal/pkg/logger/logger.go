package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// StdLogger is a lightweight implementation backed by Go's log package.
// Nothing is written unless verbose is set.
type StdLogger struct {
	verbose atomic.Bool
	mu      sync.Mutex
	out     *log.Logger
}

// NewStd creates a StdLogger writing to stderr.
func NewStd(verbose bool) *StdLogger {
	return New(os.Stderr, verbose)
}

// New creates a StdLogger writing to w.
func New(w io.Writer, verbose bool) *StdLogger {
	l := &StdLogger{out: log.New(w, "fontset ", log.LstdFlags)}
	l.verbose.Store(verbose)
	return l
}

// SetVerbose toggles output after construction, e.g. from a --verbose flag.
func (l *StdLogger) SetVerbose(verbose bool) {
	l.verbose.Store(verbose)
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.print("[DEBUG]", msg, nil, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.print("[INFO]", msg, nil, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.print("[WARN]", msg, nil, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.print("[ERROR]", msg, err, fields)
}

func (l *StdLogger) print(level, msg string, err error, fields map[string]interface{}) {
	if !l.verbose.Load() {
		return
	}
	line := level + " " + msg
	if err != nil {
		line += ": " + err.Error()
	}
	if f := formatFields(fields); f != "" {
		line += " " + f
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Println(line)
}

// formatFields renders fields as sorted key=value pairs.
func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}
