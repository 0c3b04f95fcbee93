package run

import (
	"context"
	"errors"
	"fmt"
	osexec "os/exec"

	platformerrors "github.com/jmgilman/go/errors"
)

// RunError represents an error that occurred during command execution.
// It includes the exit code, the command that was run, any captured output,
// and whether the command was killed by its timeout.
type RunError struct {
	// Command is the full command that was executed (including arguments)
	Command []string

	// ExitCode is the exit code returned by the command
	ExitCode int

	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// TimedOut reports whether the command was terminated by its timeout
	TimedOut bool

	// Err is the underlying error from the execution
	Err error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("command %v timed out", e.Command)
	}
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *RunError) Unwrap() error {
	return e.Err
}

// classifyError maps execution errors to platform error types. Unknown
// errors are passed through unchanged to preserve their original
// information.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return platformerrors.Wrap(err, platformerrors.CodeTimeout, "command timed out")
	}
	if errors.Is(err, context.Canceled) {
		return platformerrors.Wrap(err, platformerrors.CodeTimeout, "command canceled")
	}
	if errors.Is(err, osexec.ErrNotFound) {
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, "command not found")
	}

	return err
}
