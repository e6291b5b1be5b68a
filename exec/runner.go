// Package exec provides a stub-friendly interface for running external commands.
package exec

import (
	"context"
	"os"
	"os/exec"
)

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string // working directory (optional)
}

// CommandRunner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type CommandRunner interface {
	// Run executes a command and returns its exit code.
	// Returns the exit code if the process exits (even non-zero).
	// Returns an error only for execution failures (binary not found,
	// ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (int, error)
}

// RealRunner is the production implementation of CommandRunner using os/exec.
// All three standard streams are inherited: subprocess output is meant to
// reach the user live, and nothing consumes it programmatically.
type RealRunner struct{}

// NewRealRunner creates a new RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command with inherited standard streams.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
