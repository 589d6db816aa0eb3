// Package executor runs the short-lived helper processes adapters depend on.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/doeshing/fontset/internal/ports"
)

// LocalExecutor runs programs directly, without a shell in between.
type LocalExecutor struct {
	logger ports.Logger
}

// NewLocalExecutor builds a new executor.
func NewLocalExecutor(logger ports.Logger) *LocalExecutor {
	return &LocalExecutor{logger: logger}
}

// Output implements ports.CommandRunner.
func (e *LocalExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	e.debug("running", name, args)
	if err := c.Run(); err != nil {
		return nil, withStderr(err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// RunWithInput implements ports.CommandRunner. The whole input is written
// before stdin is closed and the process is waited for.
func (e *LocalExecutor) RunWithInput(ctx context.Context, input []byte, name string, args ...string) error {
	c := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	c.Stderr = &stderr

	stdin, err := c.StdinPipe()
	if err != nil {
		return fmt.Errorf("open stdin of %s: %w", name, err)
	}

	e.debug("running with input", name, args)
	if err := c.Start(); err != nil {
		return err
	}
	_, writeErr := stdin.Write(input)
	closeErr := stdin.Close()
	waitErr := c.Wait()

	if writeErr != nil {
		return fmt.Errorf("write to %s: %w", name, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close stdin of %s: %w", name, closeErr)
	}
	if waitErr != nil {
		return withStderr(waitErr, stderr.String())
	}
	return nil
}

func (e *LocalExecutor) debug(msg, name string, args []string) {
	if e.logger == nil {
		return
	}
	e.logger.Debug(msg, map[string]interface{}{"program": name, "args": strings.Join(args, " ")})
}

func withStderr(err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && stderr != "" {
		return fmt.Errorf("%w: %s", err, stderr)
	}
	return err
}

// PathLocator resolves programs on PATH. A program counts as found only if
// it is an executable regular file.
type PathLocator struct{}

// NewPathLocator builds a locator over the process PATH.
func NewPathLocator() PathLocator {
	return PathLocator{}
}

// LookPath implements ports.ProgramLocator.
func (PathLocator) LookPath(program string) (string, error) {
	return exec.LookPath(program)
}

var (
	_ ports.CommandRunner  = (*LocalExecutor)(nil)
	_ ports.ProgramLocator = PathLocator{}
)
