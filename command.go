package run

import (
	"context"
	"errors"
	"io"
	"os"
	osexec "os/exec"
	"time"

	platformerrors "github.com/jmgilman/go/errors"
	"golang.org/x/sync/errgroup"
)

// Command is the concrete implementation of the Runner interface.
// It provides command execution with configurable settings and monitored-pipe
// output redirection.
type Command struct {
	config  *config
	ctx     context.Context
	stdin   io.Reader
	stdout  any
	stderr  any
	timeout string
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
	}

	// Apply global options
	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the command.
func (c *Command) WithEnv(env map[string]string) Runner {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the command.
func (c *Command) WithDir(dir string) Runner {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the command.
func (c *Command) WithContext(ctx context.Context) Runner {
	c.ctx = ctx
	return c
}

// WithDisableColors disables color output.
func (c *Command) WithDisableColors() Runner {
	val := true
	c.config.localDisableColors = &val
	return c
}

// WithTimeout sets a timeout for the command.
func (c *Command) WithTimeout(timeout string) Runner {
	c.timeout = timeout
	return c
}

// WithInheritEnv enables environment inheritance.
func (c *Command) WithInheritEnv() Runner {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStdin sets the standard input reader.
func (c *Command) WithStdin(r io.Reader) Runner {
	c.stdin = r
	return c
}

// WithStdout sets the stdout redirection target.
func (c *Command) WithStdout(target any) Runner {
	c.stdout = target
	return c
}

// WithStderr sets the stderr redirection target.
func (c *Command) WithStderr(target any) Runner {
	c.stderr = target
	return c
}

// WithPassthrough enables output passthrough.
func (c *Command) WithPassthrough() Runner {
	val := true
	c.config.localPassthrough = &val
	return c
}

// streamSpec describes how one of the child's output streams is wired into
// the spawn call.
type streamSpec struct {
	// file is handed to the spawn call as the stream's descriptor.
	file *os.File

	// pipe drains the stream into its resolved destinations; closed after
	// the command exits.
	pipe *MonitoredPipe

	// spawnOnly marks a write end created solely for the spawn call (the
	// closed-stream emulation); released once the command has run.
	spawnOnly bool

	// alias is non-zero when the stream should share the other stream's
	// descriptor in the child.
	alias ChildStream
}

func (s *streamSpec) release() {
	if s == nil {
		return
	}
	if s.pipe != nil {
		_ = s.pipe.Close()
	}
	if s.spawnOnly && s.file != nil {
		_ = s.file.Close()
	}
}

// setupStream prepares one output stream. Spawn-time markers are honored
// directly; every other target is wrapped in a monitored pipe together with
// the capture buffer (and the passthrough stream when enabled), so captured
// output stays available no matter where the stream is redirected.
func (c *Command) setupStream(target any, capture io.Writer, passthrough StdStream) (*streamSpec, error) {
	switch t := target.(type) {
	case closeStream:
		// Hand the child a write end whose read end is already closed;
		// child writes fail with EPIPE.
		r, w, err := os.Pipe()
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to create pipe")
		}
		_ = r.Close()
		return &streamSpec{file: w, spawnOnly: true}, nil
	case ChildStream:
		return &streamSpec{alias: t}, nil
	}

	targets := []any{capture}
	if target != nil {
		targets = append(targets, target)
	}
	if c.config.effectivePassthrough() {
		targets = append(targets, passthrough)
	}

	var resolved any = targets[0]
	if len(targets) > 1 {
		resolved = Tee(targets...)
	}

	pipe, err := NewPipe(resolved)
	if err != nil {
		return nil, err
	}
	return &streamSpec{file: pipe.File(), pipe: pipe}, nil
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &RunError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	// Apply timeout if set
	ctx := c.ctx
	if c.timeout != "" {
		duration, err := time.ParseDuration(c.timeout)
		if err != nil {
			return nil, &RunError{
				Command:  args,
				ExitCode: -1,
				Err:      platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "invalid timeout"),
			}
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	// Create the command
	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)

	// Set working directory
	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}

	// Set environment
	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	for k, v := range c.config.effectiveEnv() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	if c.stdin != nil {
		cmd.Stdin = c.stdin
	}

	// Setup output capture and redirection
	stdoutCapture := newOutputCapture()
	stderrCapture := newOutputCapture()
	combined := newCombinedWriter()

	outSpec, err := c.setupStream(c.stdout, newMultiWriter(stdoutCapture, combined), Stdout)
	if err != nil {
		return nil, &RunError{Command: args, ExitCode: -1, Err: err}
	}
	errSpec, err := c.setupStream(c.stderr, newMultiWriter(stderrCapture, combined), Stderr)
	if err != nil {
		outSpec.release()
		return nil, &RunError{Command: args, ExitCode: -1, Err: err}
	}

	// Resolve in-child aliasing between the two streams
	if outSpec.alias != 0 || errSpec.alias != 0 {
		if outSpec.alias != 0 && errSpec.alias != 0 {
			outSpec.release()
			errSpec.release()
			return nil, &RunError{
				Command:  args,
				ExitCode: -1,
				Err: platformerrors.New(platformerrors.CodeInvalidInput,
					"stdout and stderr cannot both alias each other"),
			}
		}
		if outSpec.alias != 0 {
			if outSpec.alias != ChildStream(Stderr) {
				errSpec.release()
				return nil, &RunError{
					Command:  args,
					ExitCode: -1,
					Err: platformerrors.Newf(platformerrors.CodeInvalidInput,
						"stdout can only alias the child's stderr, got descriptor %d", int(outSpec.alias)),
				}
			}
			outSpec.file = errSpec.file
		}
		if errSpec.alias != 0 {
			if errSpec.alias != ChildStream(Stdout) {
				outSpec.release()
				return nil, &RunError{
					Command:  args,
					ExitCode: -1,
					Err: platformerrors.Newf(platformerrors.CodeInvalidInput,
						"stderr can only alias the child's stdout, got descriptor %d", int(errSpec.alias)),
				}
			}
			errSpec.file = outSpec.file
		}
	}

	cmd.Stdout = outSpec.file
	cmd.Stderr = errSpec.file

	// Execute the command
	start := time.Now()
	err = cmd.Run()
	elapsed := time.Since(start)

	timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)

	// Release spawn-only descriptors, then close both monitored pipes,
	// draining whatever the child wrote before it exited.
	if outSpec.spawnOnly {
		_ = outSpec.file.Close()
	}
	if errSpec.spawnOnly {
		_ = errSpec.file.Close()
	}

	g := new(errgroup.Group)
	for _, p := range []*MonitoredPipe{outSpec.pipe, errSpec.pipe} {
		if p != nil {
			g.Go(p.Close)
		}
	}
	closeErr := g.Wait()

	// Surface the first destination failure captured while draining
	var destErr error
	for _, p := range []*MonitoredPipe{outSpec.pipe, errSpec.pipe} {
		if p != nil && p.Err() != nil {
			destErr = p.Err()
			break
		}
	}

	// Build result
	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	result := &Result{
		Stdout:   stdoutCapture.String(),
		Stderr:   stderrCapture.String(),
		Combined: combined.String(),
		ExitCode: exitCode,
		TimedOut: timedOut,
		Duration: elapsed,
	}

	// Reset local configuration for next run
	c.config.resetLocal()
	c.timeout = ""
	c.stdin = nil
	c.stdout = nil
	c.stderr = nil

	// Handle errors: the command's own failure takes precedence, then a
	// captured destination failure, then destination close failures.
	if err != nil {
		cause := classifyError(err)
		if timedOut {
			// The kill shows up as a plain exit error; the deadline is the
			// real cause.
			cause = platformerrors.Wrap(err, platformerrors.CodeTimeout, "command timed out")
		}
		return result, &RunError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			TimedOut: timedOut,
			Err:      cause,
		}
	}
	if destErr != nil {
		return result, &RunError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err: platformerrors.Wrap(destErr, platformerrors.CodeExecutionFailed,
				"output redirection failed"),
		}
	}
	if closeErr != nil {
		return result, &RunError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err: platformerrors.Wrap(closeErr, platformerrors.CodeExecutionFailed,
				"failed to close redirection target"),
		}
	}

	return result, nil
}

// Clone creates a copy of the runner with the same configuration.
func (c *Command) Clone() Runner {
	return &Command{
		config:  c.config.clone(),
		ctx:     c.ctx,
		stdin:   c.stdin,
		stdout:  c.stdout,
		stderr:  c.stderr,
		timeout: c.timeout,
	}
}
