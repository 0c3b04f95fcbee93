package run

import (
	"context"
	"io"
)

// CommandWrapper wraps a Runner to provide a command-specific interface.
// It prepends a command name to all Run() calls, making it convenient for
// tools that are called frequently with different arguments (e.g., git,
// docker). CommandWrapper implements the Runner interface, allowing it to be
// used anywhere a Runner is expected.
type CommandWrapper struct {
	runner Runner
	cmd    string
}

// NewWrapper creates a new CommandWrapper that prepends the given command to all Run() calls.
// The runner parameter can be any implementation of the Runner interface, including
// mock runners for testing.
func NewWrapper(runner Runner, cmd string) *CommandWrapper {
	return &CommandWrapper{
		runner: runner,
		cmd:    cmd,
	}
}

// WithEnv sets environment variables for the command.
func (w *CommandWrapper) WithEnv(env map[string]string) Runner {
	w.runner = w.runner.WithEnv(env)
	return w
}

// WithDir sets the working directory for the command.
func (w *CommandWrapper) WithDir(dir string) Runner {
	w.runner = w.runner.WithDir(dir)
	return w
}

// WithContext sets the context for the command.
func (w *CommandWrapper) WithContext(ctx context.Context) Runner {
	w.runner = w.runner.WithContext(ctx)
	return w
}

// WithDisableColors disables color output.
func (w *CommandWrapper) WithDisableColors() Runner {
	w.runner = w.runner.WithDisableColors()
	return w
}

// WithTimeout sets a timeout for the command.
func (w *CommandWrapper) WithTimeout(timeout string) Runner {
	w.runner = w.runner.WithTimeout(timeout)
	return w
}

// WithInheritEnv enables environment inheritance.
func (w *CommandWrapper) WithInheritEnv() Runner {
	w.runner = w.runner.WithInheritEnv()
	return w
}

// WithStdin sets the standard input reader.
func (w *CommandWrapper) WithStdin(r io.Reader) Runner {
	w.runner = w.runner.WithStdin(r)
	return w
}

// WithStdout sets the stdout redirection target.
func (w *CommandWrapper) WithStdout(target any) Runner {
	w.runner = w.runner.WithStdout(target)
	return w
}

// WithStderr sets the stderr redirection target.
func (w *CommandWrapper) WithStderr(target any) Runner {
	w.runner = w.runner.WithStderr(target)
	return w
}

// WithPassthrough enables output passthrough.
func (w *CommandWrapper) WithPassthrough() Runner {
	w.runner = w.runner.WithPassthrough()
	return w
}

// Run executes the wrapped command with the given arguments.
// The command name is prepended to the arguments.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.runner.Run(fullArgs...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Runner {
	return &CommandWrapper{
		runner: w.runner.Clone(),
		cmd:    w.cmd,
	}
}
