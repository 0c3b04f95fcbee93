package run_test

import (
	"context"
	"io"
	"testing"

	"github.com/jmgilman/go/run"
	"github.com/jmgilman/go/run/mocks"
)

func TestWrapperWithMock(t *testing.T) {
	// Create a mock runner
	var mockRunner *mocks.RunnerMock
	mockRunner = &mocks.RunnerMock{
		WithEnvFunc: func(env map[string]string) run.Runner {
			// Verify the expected env is passed
			if env["TEST_VAR"] != "test_value" {
				t.Errorf("expected TEST_VAR=test_value, got: %v", env)
			}
			return mockRunner // Return self for chaining
		},
		WithDirFunc: func(dir string) run.Runner {
			// Verify the expected dir is passed
			if dir != "/test/dir" {
				t.Errorf("expected dir=/test/dir, got: %s", dir)
			}
			return mockRunner // Return self for chaining
		},
		WithContextFunc: func(ctx context.Context) run.Runner {
			return mockRunner // Return self for chaining
		},
		WithDisableColorsFunc: func() run.Runner {
			return mockRunner // Return self for chaining
		},
		WithTimeoutFunc: func(timeout string) run.Runner {
			return mockRunner // Return self for chaining
		},
		WithInheritEnvFunc: func() run.Runner {
			return mockRunner // Return self for chaining
		},
		WithStdinFunc: func(r io.Reader) run.Runner {
			return mockRunner // Return self for chaining
		},
		WithStdoutFunc: func(target any) run.Runner {
			return mockRunner // Return self for chaining
		},
		WithStderrFunc: func(target any) run.Runner {
			return mockRunner // Return self for chaining
		},
		WithPassthroughFunc: func() run.Runner {
			return mockRunner // Return self for chaining
		},
		RunFunc: func(args ...string) (*run.Result, error) {
			// Verify that the wrapper prepends the command name
			if len(args) < 1 || args[0] != "git" {
				t.Errorf("expected first arg to be 'git', got: %v", args)
			}
			if len(args) < 2 || args[1] != "status" {
				t.Errorf("expected second arg to be 'status', got: %v", args)
			}
			return &run.Result{
				Stdout:   "mock output",
				Stderr:   "",
				Combined: "mock output",
				ExitCode: 0,
			}, nil
		},
		CloneFunc: func() run.Runner {
			return mockRunner // Return self for simplicity in this test
		},
	}

	// Create a wrapper with the mock runner
	wrapper := run.NewWrapper(mockRunner, "git")

	// Test that we can configure the wrapper with fluent API
	result, err := wrapper.
		WithEnv(map[string]string{"TEST_VAR": "test_value"}).
		WithDir("/test/dir").
		Run("status")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Stdout != "mock output" {
		t.Errorf("expected mock output, got: %s", result.Stdout)
	}

	// Verify that the mock methods were called
	if len(mockRunner.WithEnvCalls()) != 1 {
		t.Errorf("expected WithEnv to be called once, got: %d", len(mockRunner.WithEnvCalls()))
	}

	if len(mockRunner.WithDirCalls()) != 1 {
		t.Errorf("expected WithDir to be called once, got: %d", len(mockRunner.WithDirCalls()))
	}

	if len(mockRunner.RunCalls()) != 1 {
		t.Errorf("expected Run to be called once, got: %d", len(mockRunner.RunCalls()))
	}

	// Verify the arguments passed to Run
	runCalls := mockRunner.RunCalls()
	if len(runCalls) > 0 && len(runCalls[0].Args) >= 2 {
		if runCalls[0].Args[0] != "git" {
			t.Errorf("expected first arg 'git', got: %s", runCalls[0].Args[0])
		}
		if runCalls[0].Args[1] != "status" {
			t.Errorf("expected second arg 'status', got: %s", runCalls[0].Args[1])
		}
	}
}
