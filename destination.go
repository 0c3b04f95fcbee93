package run

import (
	"errors"
	"io"
	"os"

	platformerrors "github.com/jmgilman/go/errors"
	"golang.org/x/sys/unix"
)

// Destination is a resolved output sink for one subprocess stream.
// Implementations forward bytes to the underlying resource and release, on
// Close, only the resources they opened themselves. Close is idempotent.
type Destination interface {
	// Write forwards p to the underlying sink and returns the number of
	// bytes accepted. Non-partial-write sinks return len(p).
	Write(p []byte) (n int, err error)

	// Close releases resources the destination itself acquired. Resources
	// supplied by the caller (writers, open files, descriptors, other
	// pipes) are never closed.
	Close() error

	// Pipeable reports whether the destination may be wrapped by a
	// MonitoredPipe. Spawn-time-only markers return false.
	Pipeable() bool
}

// StdStream identifies one of the process-wide standard output streams.
type StdStream int

// Redirection sentinels for the process-wide standard streams.
const (
	Stdout StdStream = 1
	Stderr StdStream = 2
)

// ChildStream is a spawn-time redirection target that aliases a stream onto
// another of the child process's standard descriptors (1 for stdout, 2 for
// stderr). It cannot be wrapped by a MonitoredPipe.
type ChildStream int

type closeStream struct{}

// CloseStream is a spawn-time redirection target that hands the child a
// stream whose other end is already closed, so child writes fail with EPIPE.
// It cannot be wrapped by a MonitoredPipe.
var CloseStream closeStream

// File is a redirection target naming a path together with optional open
// flags and permission bits. A zero Flag means truncate-and-create for
// writing; a zero Perm means the default 0o644.
type File struct {
	Path string
	Flag int
	Perm os.FileMode
}

type teeTarget struct {
	targets []any
}

// Tee returns a redirection target that fans output out to every given
// target. Each target is resolved independently, so mixed kinds and nested
// tees are supported.
func Tee(targets ...any) any {
	return teeTarget{targets: targets}
}

// fdWriter is a writer backed by an OS descriptor, such as *os.File.
// Descriptor-backed writers resolve ahead of plain writers.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// writerDestination forwards to a caller-supplied io.Writer. The writer is
// caller-owned and never closed.
type writerDestination struct {
	w io.Writer
}

func (d *writerDestination) Write(p []byte) (int, error) { return d.w.Write(p) }
func (d *writerDestination) Close() error                { return nil }
func (d *writerDestination) Pipeable() bool              { return true }

// fileDestination owns a file the resolver opened by path. It is the only
// destination that closes its resource.
type fileDestination struct {
	f      *os.File
	closed bool
}

func (d *fileDestination) Write(p []byte) (int, error) {
	if d.closed {
		return 0, os.ErrClosed
	}
	return d.f.Write(p)
}

func (d *fileDestination) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.f.Close()
}

func (d *fileDestination) Pipeable() bool { return true }

// fdDestination writes to a numeric descriptor the caller owns. Each write
// goes directly to the raw descriptor; the descriptor is never held or
// closed, which avoids ownership ambiguity with the caller.
type fdDestination struct {
	fd int
}

func (d *fdDestination) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(d.fd, p[written:])
		if n > 0 {
			written += n
		}
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (d *fdDestination) Close() error   { return nil }
func (d *fdDestination) Pipeable() bool { return true }

// handleDestination wraps a descriptor-backed writer the caller opened,
// such as *os.File. The handle is caller-owned and never closed.
type handleDestination struct {
	f fdWriter
}

func (d *handleDestination) Write(p []byte) (int, error) { return d.f.Write(p) }
func (d *handleDestination) Close() error                { return nil }
func (d *handleDestination) Pipeable() bool              { return true }

// stdStreamDestination forwards to one of the process-wide standard streams.
// The stream handle is captured at construction and never closed.
type stdStreamDestination struct {
	f *os.File
}

func newStdStreamDestination(s StdStream) *stdStreamDestination {
	if s == Stderr {
		return &stdStreamDestination{f: os.Stderr}
	}
	return &stdStreamDestination{f: os.Stdout}
}

func (d *stdStreamDestination) Write(p []byte) (int, error) { return d.f.Write(p) }
func (d *stdStreamDestination) Close() error                { return nil }
func (d *stdStreamDestination) Pipeable() bool              { return true }

// pipeDestination forwards to another MonitoredPipe. The pipe is
// caller-owned and never closed.
type pipeDestination struct {
	p *MonitoredPipe
}

func (d *pipeDestination) Write(p []byte) (int, error) { return d.p.Write(p) }
func (d *pipeDestination) Close() error                { return nil }
func (d *pipeDestination) Pipeable() bool              { return true }

// teeDestination fans writes out to every child destination. A write stops
// at the first failing child; later children do not receive that write.
type teeDestination struct {
	children []Destination
}

func (d *teeDestination) Write(p []byte) (int, error) {
	for _, c := range d.children {
		n, err := c.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (d *teeDestination) Close() error {
	var errs []error
	for _, c := range d.children {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Pipeable is the conjunction of the children: a tee that wraps any
// spawn-time-only marker cannot be driven by a monitored pipe either.
func (d *teeDestination) Pipeable() bool {
	for _, c := range d.children {
		if !c.Pipeable() {
			return false
		}
	}
	return true
}

// childStreamDestination represents in-child descriptor aliasing. It only
// has meaning at spawn time and cannot accept writes.
type childStreamDestination struct {
	fd int
}

func (d *childStreamDestination) Write(p []byte) (int, error) {
	return 0, platformerrors.New(platformerrors.CodeInvalidInput,
		"child stream aliasing is resolved at spawn time and cannot accept writes")
}

func (d *childStreamDestination) Close() error   { return nil }
func (d *childStreamDestination) Pipeable() bool { return false }

// closeStreamDestination represents closing the stream in the child. It only
// has meaning at spawn time and cannot accept writes.
type closeStreamDestination struct{}

func (d *closeStreamDestination) Write(p []byte) (int, error) {
	return 0, platformerrors.New(platformerrors.CodeInvalidInput,
		"a closed stream is resolved at spawn time and cannot accept writes")
}

func (d *closeStreamDestination) Close() error   { return nil }
func (d *closeStreamDestination) Pipeable() bool { return false }
