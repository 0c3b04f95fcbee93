package run

import (
	"context"
	"io"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/runner.go -pkg mocks . Runner

// Runner is the main interface for executing commands.
// It provides a fluent API for configuring and running commands.
type Runner interface {
	// WithEnv sets environment variables for the command.
	// These are local settings that override any global environment variables.
	WithEnv(env map[string]string) Runner

	// WithDir sets the working directory for the command.
	// This is a local setting that overrides any global working directory.
	WithDir(dir string) Runner

	// WithContext sets the context for the command.
	// The command will be canceled if the context is canceled.
	WithContext(ctx context.Context) Runner

	// WithDisableColors disables color output by setting common environment variables.
	// This sets NO_COLOR=1, TERM=dumb, and other common color-disabling variables.
	WithDisableColors() Runner

	// WithTimeout sets a timeout for the command execution.
	// This is a convenience method that creates a context with timeout.
	WithTimeout(timeout string) Runner

	// WithInheritEnv inherits environment variables from the parent process.
	WithInheritEnv() Runner

	// WithStdin sets the reader used as the command's standard input.
	WithStdin(r io.Reader) Runner

	// WithStdout redirects the command's standard output to the given target,
	// in addition to capturing it. The target may be anything Resolve accepts
	// (writer, path, File, descriptor, standard-stream sentinel, Tee, another
	// MonitoredPipe) or a spawn-time marker (ChildStream, CloseStream).
	WithStdout(target any) Runner

	// WithStderr redirects the command's standard error to the given target,
	// in addition to capturing it. Accepts the same targets as WithStdout.
	WithStderr(target any) Runner

	// WithPassthrough streams output to the process-wide stdout/stderr while
	// also capturing it.
	WithPassthrough() Runner

	// Run executes the command with the given arguments.
	// It returns a Result containing the captured output and exit code.
	Run(args ...string) (*Result, error)

	// Clone creates a copy of the runner with the same configuration.
	// This is useful for creating multiple runners with the same base configuration.
	Clone() Runner
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is the combined stdout and stderr output
	Combined string

	// ExitCode is the exit code returned by the command
	ExitCode int

	// TimedOut reports whether the command was terminated by its timeout
	TimedOut bool

	// Duration is the wall-clock time the command ran for
	Duration time.Duration
}

// Option is a function that configures a Command with global settings.
// These settings are applied at creation time and can be overridden by local settings.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		c.WithEnv(env)
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.WithDir(dir)
	}
}

// WithContext returns an Option that sets the global context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.WithContext(ctx)
	}
}

// WithDisableColors returns an Option that globally disables color output.
func WithDisableColors() Option {
	return func(c *Command) {
		c.WithDisableColors()
	}
}

// WithTimeout returns an Option that sets a global timeout.
func WithTimeout(timeout string) Option {
	return func(c *Command) {
		c.WithTimeout(timeout)
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.WithInheritEnv()
	}
}

// WithStdin returns an Option that sets the global standard input reader.
func WithStdin(r io.Reader) Option {
	return func(c *Command) {
		c.WithStdin(r)
	}
}

// WithStdout returns an Option that sets the global stdout redirection target.
func WithStdout(target any) Option {
	return func(c *Command) {
		c.WithStdout(target)
	}
}

// WithStderr returns an Option that sets the global stderr redirection target.
func WithStderr(target any) Option {
	return func(c *Command) {
		c.WithStderr(target)
	}
}

// WithPassthrough returns an Option that globally enables output passthrough.
func WithPassthrough() Option {
	return func(c *Command) {
		c.WithPassthrough()
	}
}
