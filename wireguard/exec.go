// Package wireguard provides tunnel status collection and connect/disconnect
// orchestration for WireGuard on macOS.
// This file contains the subprocess runner used by every other component.
package wireguard

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Result holds the outcome of a completed subprocess invocation.
type Result struct {
	// ExitCode is the process exit status.
	ExitCode int
	// Stdout is the captured standard output.
	Stdout string
	// Stderr is the captured standard error.
	Stderr string
}

// Runner runs an external command to completion and captures its output.
// A non-nil error means the process could not be started at all (binary
// missing, not executable); that case is distinct from a Result with a
// nonzero exit code. Runner implementations do not retry.
type Runner interface {
	Run(name string, args ...string) (*Result, error)
}

// CommandRunner is the production Runner backed by os/exec.
// Commands containing a path separator are executed directly; bare names
// are resolved through PATH first. Calls block until the process exits;
// no timeout is enforced.
type CommandRunner struct{}

// Run executes the command and waits for it to finish.
func (CommandRunner) Run(name string, args ...string) (*Result, error) {
	path := name
	if !strings.ContainsRune(name, os.PathSeparator) {
		resolved, err := exec.LookPath(name)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	cmd := exec.Command(path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}, nil
		}
		// Process never started.
		return nil, err
	}

	return &Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
