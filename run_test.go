package run

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	runner := New()
	if runner == nil {
		t.Fatal("New() returned nil")
	}
}

func TestBasicExecution(t *testing.T) {
	runner := New()
	result, err := runner.Run("echo", "hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "hello world") {
		t.Errorf("expected stdout to contain 'hello world', got: %s", result.Stdout)
	}

	if result.ExitCode != 0 {
		t.Errorf("expected exit code 0, got: %d", result.ExitCode)
	}
}

func TestCommandFailure(t *testing.T) {
	runner := New()
	result, err := runner.Run("false")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	runErr, ok := err.(*RunError)
	if !ok {
		t.Fatalf("expected RunError, got: %T", err)
	}

	if runErr.ExitCode == 0 {
		t.Error("expected non-zero exit code")
	}

	if result == nil {
		t.Fatal("expected result even with error")
	}
}

func TestWithDir(t *testing.T) {
	runner := New()
	result, err := runner.WithDir("/tmp").Run("pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "/tmp") {
		t.Errorf("expected stdout to contain '/tmp', got: %s", result.Stdout)
	}
}

func TestWithEnv(t *testing.T) {
	runner := New()
	result, err := runner.WithEnv(map[string]string{
		"TEST_VAR": "test_value",
	}).Run("sh", "-c", "echo $TEST_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "test_value") {
		t.Errorf("expected stdout to contain 'test_value', got: %s", result.Stdout)
	}
}

func TestWithDisableColors(t *testing.T) {
	runner := New()
	result, err := runner.WithDisableColors().Run("sh", "-c", "echo $NO_COLOR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "1") {
		t.Errorf("expected NO_COLOR=1, got: %s", result.Stdout)
	}
}

func TestWithTimeout(t *testing.T) {
	runner := New()
	result, err := runner.WithTimeout("100ms").Run("sleep", "1")
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}

	runErr, ok := err.(*RunError)
	if !ok {
		t.Fatalf("expected RunError, got: %T", err)
	}

	if !runErr.TimedOut {
		t.Errorf("expected TimedOut to be set, got: %v", err)
	}

	if result == nil || !result.TimedOut {
		t.Error("expected result.TimedOut to be set")
	}
}

func TestWithInvalidTimeout(t *testing.T) {
	runner := New()
	_, err := runner.WithTimeout("not-a-duration").Run("echo", "x")
	if err == nil {
		t.Fatal("expected error for invalid timeout, got nil")
	}
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	runner := New()
	_, err := runner.WithContext(ctx).Run("sleep", "1")
	if err == nil {
		t.Fatal("expected context cancellation error, got nil")
	}
}

func TestCombinedOutput(t *testing.T) {
	runner := New()
	result, err := runner.Run("sh", "-c", "echo stdout && echo stderr >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Combined, "stdout") {
		t.Errorf("expected combined output to contain 'stdout', got: %s", result.Combined)
	}

	if !strings.Contains(result.Combined, "stderr") {
		t.Errorf("expected combined output to contain 'stderr', got: %s", result.Combined)
	}
}

func TestSeparateOutput(t *testing.T) {
	runner := New()
	result, err := runner.Run("sh", "-c", "echo stdout && echo stderr >&2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "stdout") {
		t.Errorf("expected stdout to contain 'stdout', got: %s", result.Stdout)
	}

	if !strings.Contains(result.Stderr, "stderr") {
		t.Errorf("expected stderr to contain 'stderr', got: %s", result.Stderr)
	}
}

func TestWithStdin(t *testing.T) {
	runner := New()
	result, err := runner.WithStdin(strings.NewReader("from stdin")).Run("cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "from stdin") {
		t.Errorf("expected stdout to contain 'from stdin', got: %s", result.Stdout)
	}
}

func TestGlobalOptions(t *testing.T) {
	runner := New(
		WithEnv(map[string]string{"GLOBAL_VAR": "global"}),
		WithDisableColors(),
	)

	result, err := runner.Run("sh", "-c", "echo $GLOBAL_VAR $NO_COLOR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "global") {
		t.Errorf("expected global env var to be set, got: %s", result.Stdout)
	}

	if !strings.Contains(result.Stdout, "1") {
		t.Errorf("expected NO_COLOR to be set, got: %s", result.Stdout)
	}
}

func TestLocalOverridesGlobal(t *testing.T) {
	runner := New(
		WithEnv(map[string]string{"TEST_VAR": "global"}),
	)

	result, err := runner.WithEnv(map[string]string{"TEST_VAR": "local"}).Run("sh", "-c", "echo $TEST_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "local") {
		t.Errorf("expected local value to override global, got: %s", result.Stdout)
	}
}

func TestClone(t *testing.T) {
	runner1 := New(WithEnv(map[string]string{"GLOBAL_VAR": "global"}))
	runner2 := runner1.Clone()

	// Modify runner2
	result, err := runner2.WithEnv(map[string]string{"LOCAL_VAR": "local"}).Run("sh", "-c", "echo $GLOBAL_VAR $LOCAL_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "global") {
		t.Errorf("expected cloned runner to inherit global config, got: %s", result.Stdout)
	}

	if !strings.Contains(result.Stdout, "local") {
		t.Errorf("expected cloned runner to have local config, got: %s", result.Stdout)
	}

	// Verify runner1 is unchanged
	result, err = runner1.Run("sh", "-c", "echo $GLOBAL_VAR $LOCAL_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "global") {
		t.Errorf("expected original runner to still have global config, got: %s", result.Stdout)
	}

	if strings.Contains(result.Stdout, "local") {
		t.Errorf("expected original runner to not have local config from clone, got: %s", result.Stdout)
	}
}

func TestInheritEnv(t *testing.T) {
	// Set a test environment variable
	t.Setenv("TEST_INHERIT_VAR", "inherited")

	runner := New()
	result, err := runner.WithInheritEnv().Run("sh", "-c", "echo $TEST_INHERIT_VAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result.Stdout, "inherited") {
		t.Errorf("expected to inherit environment variable, got: %s", result.Stdout)
	}
}

func TestEmptyCommand(t *testing.T) {
	runner := New()
	_, err := runner.Run()
	if err == nil {
		t.Fatal("expected error for empty command, got nil")
	}
}
