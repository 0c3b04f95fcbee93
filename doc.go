// Package run provides a testable interface for executing local commands with
// timeout enforcement, flexible output redirection, and structured results.
//
// This package wraps the standard library's os/exec, providing the Command
// struct that implements the Runner interface. Following Go best practices,
// the package returns concrete types (Command, CommandWrapper) while accepting
// interfaces in function parameters, making it easy to mock command execution
// in tests. Subprocess output is drained through monitored pipes, so a single
// stream can be fanned out to any mix of buffers, files, descriptors, and
// other pipes while the command is still running.
//
// # Basic Usage
//
// Create a runner and run a command:
//
//	runner := run.New()
//	result, err := runner.Run("echo", "hello world")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Stdout) // "hello world\n"
//
// # Redirection Targets
//
// WithStdout and WithStderr accept a redirection target of almost any shape.
// The target is resolved to a concrete destination before the command starts:
//
//	var buf bytes.Buffer
//
//	runner.WithStdout(&buf).Run("ls")                  // any io.Writer
//	runner.WithStdout("out.log").Run("ls")             // file path (truncated)
//	runner.WithStdout(run.File{                        // path with open flags
//		Path: "out.log",
//		Flag: os.O_WRONLY | os.O_CREATE | os.O_APPEND,
//		Perm: 0o600,
//	}).Run("ls")
//	runner.WithStdout(7).Run("ls")                     // numeric descriptor
//	runner.WithStdout(run.Stderr).Run("ls")            // process-wide stderr
//	runner.WithStdout(run.Tee(&buf, "out.log")).Run("ls") // fan-out
//
// Captured output always remains available on the Result, regardless of any
// additional targets.
//
// Two targets are resolved at spawn time rather than through a pipe:
// run.ChildStream(n) aliases the stream onto another of the child's
// descriptors, and run.CloseStream hands the child a stream whose other end
// is already closed. Neither can be wrapped by a monitored pipe; NewPipe
// rejects them.
//
// # Monitored Pipes
//
// MonitoredPipe is the redirection engine and can be used directly. It owns
// an OS pipe and a background goroutine that continuously drains the read end
// into the resolved destination:
//
//	pipe, err := run.NewPipe(run.Tee(&buf, "out.log"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pipe.Close()
//
//	cmd := exec.Command("make", "all")
//	cmd.Stdout = pipe.File()
//
// Close must be called exactly once after the subprocess has terminated; it
// drains any remaining bytes, stops the background goroutine, and closes the
// destination. A destination failure during draining never crosses the
// goroutine boundary: it is captured and exposed through Err after Close.
//
// # Configuration
//
// The package supports both global configuration (set at creation time) and
// local configuration (set per-execution). Local settings always override
// global settings:
//
//	runner := run.New(
//		run.WithEnv(map[string]string{"GLOBAL_VAR": "value"}),
//		run.WithDisableColors(),
//		run.WithInheritEnv(),
//	)
//
//	result, err := runner.
//		WithDir("/tmp").
//		WithTimeout("5s").
//		Run("some-command")
//
// # Error Handling
//
// Command failures return a structured *RunError that includes the exit code,
// the command, the captured output, and whether the run timed out. Underlying
// failures carry platform error codes from github.com/jmgilman/go/errors:
// construction-time rejections (unsupported or non-pipeable redirection
// targets) are CodeInvalidInput, timeouts are CodeTimeout, and destination
// failures surface as CodeExecutionFailed after cleanup has completed.
//
//	result, err := runner.WithTimeout("1s").Run("sleep", "10")
//	var runErr *run.RunError
//	if errors.As(err, &runErr) && runErr.TimedOut {
//		// handle timeout
//	}
//
// # Command Wrappers
//
// For commands that are executed frequently, create a wrapper that
// automatically prepends the command name:
//
//	runner := run.New()
//	git := run.NewWrapper(runner, "git")
//
//	result, err := git.WithDir("/repo").Run("status")
//	// Equivalent to: runner.WithDir("/repo").Run("git", "status")
//
// # Testing
//
// The package follows the Go idiom "accept interfaces, return structs".
// Production code uses the concrete *Command type, but test code can provide
// mock implementations of the Runner interface (a generated mock lives in the
// mocks subpackage).
package run
