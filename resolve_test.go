package run

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWriter(t *testing.T) {
	dest, err := Resolve(&bytes.Buffer{})
	require.NoError(t, err)

	require.IsType(t, &writerDestination{}, dest)
	assert.True(t, dest.Pipeable())
}

func TestResolveDescriptorBackedWriterBeforeWriter(t *testing.T) {
	// *os.File satisfies io.Writer too; the descriptor-aware handler must
	// win so caller-owned handles are never treated as plain writers.
	dest, err := Resolve(os.Stdout)
	require.NoError(t, err)

	require.IsType(t, &handleDestination{}, dest)
}

func TestResolveFileDescriptor(t *testing.T) {
	dest, err := Resolve(7)
	require.NoError(t, err)

	require.IsType(t, &fdDestination{}, dest)
	assert.Equal(t, 7, dest.(*fdDestination).fd)
}

func TestResolveStandardStreams(t *testing.T) {
	out, err := Resolve(Stdout)
	require.NoError(t, err)
	require.IsType(t, &stdStreamDestination{}, out)
	assert.Same(t, os.Stdout, out.(*stdStreamDestination).f)

	errDest, err := Resolve(Stderr)
	require.NoError(t, err)
	require.IsType(t, &stdStreamDestination{}, errDest)
	assert.Same(t, os.Stderr, errDest.(*stdStreamDestination).f)
}

func TestResolvePathOpensEagerly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	dest, err := Resolve(path)
	require.NoError(t, err)
	require.IsType(t, &fileDestination{}, dest)

	// The file exists before anything is written.
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, dest.Close())
}

func TestResolvePathOpenFailure(t *testing.T) {
	dest, err := Resolve(filepath.Join(t.TempDir(), "missing", "out.log"))
	require.Error(t, err)
	assert.Nil(t, dest)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
}

func TestResolveFileWithFlagsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	require.NoError(t, os.WriteFile(path, []byte("first "), 0o644))

	dest, err := Resolve(File{
		Path: path,
		Flag: os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	})
	require.NoError(t, err)

	_, err = dest.Write([]byte("second"))
	require.NoError(t, err)
	require.NoError(t, dest.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first second", string(contents))
}

func TestResolveFileWithPerm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	dest, err := Resolve(File{Path: path, Perm: 0o600})
	require.NoError(t, err)
	require.NoError(t, dest.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestResolveMonitoredPipe(t *testing.T) {
	inner, err := NewPipe(&bytes.Buffer{})
	require.NoError(t, err)
	defer func() { require.NoError(t, inner.Close()) }()

	dest, err := Resolve(inner)
	require.NoError(t, err)
	require.IsType(t, &pipeDestination{}, dest)
}

func TestResolveNestedTee(t *testing.T) {
	var a, b, c bytes.Buffer

	dest, err := Resolve(Tee(&a, Tee(&b, &c)))
	require.NoError(t, err)
	require.IsType(t, &teeDestination{}, dest)

	_, err = dest.Write([]byte("fan"))
	require.NoError(t, err)

	assert.Equal(t, "fan", a.String())
	assert.Equal(t, "fan", b.String())
	assert.Equal(t, "fan", c.String())
}

func TestResolveEmptyTee(t *testing.T) {
	dest, err := Resolve(Tee())
	require.Error(t, err)
	assert.Nil(t, dest)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
}

func TestResolveTeeChildFailureClosesSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	// Second child cannot resolve; the opened file must not leak.
	dest, err := Resolve(Tee(path, struct{}{}))
	require.Error(t, err)
	assert.Nil(t, dest)
	assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
}

func TestResolveSpawnTimeMarkers(t *testing.T) {
	alias, err := Resolve(ChildStream(1))
	require.NoError(t, err)
	assert.False(t, alias.Pipeable())

	closed, err := Resolve(CloseStream)
	require.NoError(t, err)
	assert.False(t, closed.Pipeable())
}

func TestResolveUnsupportedTarget(t *testing.T) {
	for _, target := range []any{nil, 3.14, []string{"x"}, struct{}{}} {
		dest, err := Resolve(target)
		require.Error(t, err, "target %T", target)
		assert.Nil(t, dest)
		assert.Equal(t, platformerrors.CodeInvalidInput, platformerrors.GetCode(err))
	}
}

func TestResolvePriorityOrder(t *testing.T) {
	// The dispatch table must keep descriptor-like checks ahead of the
	// broad writer check; this pins the documented order.
	names := make([]string, len(handlers))
	for i, h := range handlers {
		names[i] = h.name
	}

	assert.Equal(t, []string{
		"child stream",
		"close stream",
		"standard stream",
		"file descriptor",
		"monitored pipe",
		"tee",
		"file",
		"file path",
		"descriptor-backed writer",
		"writer",
	}, names)
}
