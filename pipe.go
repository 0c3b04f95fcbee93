package run

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	platformerrors "github.com/jmgilman/go/errors"
)

// Defaults for the monitor loop. The poll interval is a latency/CPU
// tradeoff, not a contract; reads always stay bounded so state transitions
// remain responsive.
const (
	DefaultChunkSize    = 100_000
	DefaultPollInterval = time.Millisecond
)

// ErrClosed is returned by MonitoredPipe.Write once the pipe has left the
// open state.
var ErrClosed = platformerrors.New(platformerrors.CodeConflict, "monitored pipe is closed")

// pipeState tracks the pipe lifecycle. Transitions are monotonic:
// open -> closing -> closed, exactly once per instance.
type pipeState int

const (
	stateOpen pipeState = iota
	stateClosing
	stateClosed
)

// MonitoredPipe owns an OS pipe and a background goroutine that drains the
// read end into a resolved destination while a subprocess writes to the
// write end. Closing the pipe flushes remaining bytes, closes both pipe
// ends, then closes the destination, in that order.
//
// The owner must call Close exactly once, after the subprocess has
// terminated; an instance that is never closed leaks two descriptors and a
// goroutine.
type MonitoredPipe struct {
	mu    sync.Mutex
	state pipeState
	err   error

	r    *os.File
	w    *os.File
	dest Destination

	chunkSize    int
	pollInterval time.Duration

	// done is closed by the monitor goroutine once the pipe reaches the
	// closed state; Close blocks on it.
	done chan struct{}

	// closeOnce guards the destination close so repeated Close calls
	// release it exactly once.
	closeOnce sync.Once
}

// PipeOption configures a MonitoredPipe at construction.
type PipeOption func(*MonitoredPipe)

// WithChunkSize sets the maximum number of bytes the monitor reads from the
// pipe per iteration.
func WithChunkSize(n int) PipeOption {
	return func(p *MonitoredPipe) {
		if n > 0 {
			p.chunkSize = n
		}
	}
}

// WithPollInterval sets how long the monitor waits for data before
// rechecking the pipe state.
func WithPollInterval(d time.Duration) PipeOption {
	return func(p *MonitoredPipe) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

// NewPipe resolves the redirection target and starts a monitored pipe
// draining into it. Targets that only have meaning at spawn time
// (ChildStream, CloseStream) are rejected with an invalid-input error before
// any goroutine starts.
func NewPipe(target any, opts ...PipeOption) (*MonitoredPipe, error) {
	dest, err := Resolve(target)
	if err != nil {
		return nil, err
	}
	if !dest.Pipeable() {
		_ = dest.Close()
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput,
			"redirection target %v (%T) cannot be wrapped by a monitored pipe", target, target)
	}

	p := &MonitoredPipe{
		state:        stateOpen,
		dest:         dest,
		chunkSize:    DefaultChunkSize,
		pollInterval: DefaultPollInterval,
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	r, w, err := os.Pipe()
	if err != nil {
		_ = dest.Close()
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to create pipe")
	}
	p.r, p.w = r, w

	go p.monitor()

	return p, nil
}

// File returns the pipe's write end, suitable for substitution into a child
// process's stdout or stderr slot (e.g. exec.Cmd.Stdout). The returned file
// is owned by the pipe and closed during Close.
func (p *MonitoredPipe) File() *os.File {
	return p.w
}

// Write forwards b to the pipe's write end. It fails with ErrClosed once the
// pipe has left the open state. The state check happens under the lock but
// the write itself does not: a write larger than the kernel pipe buffer
// blocks until the monitor drains, and the monitor needs the lock to observe
// state transitions. os.File serializes Write against Close internally, so a
// teardown racing an in-flight write surfaces as a closed-file error, which
// is normalized to ErrClosed.
func (p *MonitoredPipe) Write(b []byte) (int, error) {
	p.mu.Lock()
	if p.state != stateOpen {
		p.mu.Unlock()
		return 0, ErrClosed
	}
	w := p.w
	p.mu.Unlock()

	n, err := w.Write(b)
	if errors.Is(err, os.ErrClosed) {
		return n, ErrClosed
	}
	return n, err
}

// Close transitions the pipe out of the open state, waits for the monitor
// goroutine to flush remaining bytes and release both pipe ends, then closes
// the destination exactly once. It must only be called after the subprocess
// writing to the pipe has terminated. Repeated calls return nil. Close also
// waits out a teardown the monitor started on its own after a destination
// failure, so the pipe is always fully released when it returns.
func (p *MonitoredPipe) Close() error {
	p.mu.Lock()
	if p.state == stateOpen {
		p.state = stateClosing
	}
	p.mu.Unlock()

	<-p.done

	var err error
	p.closeOnce.Do(func() {
		err = p.dest.Close()
	})
	return err
}

// Err returns the first error raised by the destination while draining, or
// nil. It is the owner's only view of destination failures: the monitor
// goroutine captures them instead of propagating across the goroutine
// boundary. Inspect it after Close returns.
func (p *MonitoredPipe) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *MonitoredPipe) snapshotState() pipeState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// captureError records the first destination failure and forces the pipe out
// of the open state so the monitor loop stops.
func (p *MonitoredPipe) captureError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err == nil {
		p.err = err
	}
	if p.state == stateOpen {
		p.state = stateClosing
	}
}

// monitor drains the read end into the destination until the pipe leaves the
// open state, then tears down. Reads are bounded by the poll interval rather
// than blocking indefinitely, keeping state transitions responsive. The
// goroutine never lets a failure escape: destination errors and panics are
// captured and the pipe always reaches the closed state.
func (p *MonitoredPipe) monitor() {
	buf := make([]byte, p.chunkSize)

	for p.snapshotState() == stateOpen {
		_ = p.r.SetReadDeadline(time.Now().Add(p.pollInterval))

		n, err := p.r.Read(buf)
		if n > 0 {
			if werr := p.deliver(buf[:n]); werr != nil {
				p.captureError(werr)
				break
			}
		}
		if err != nil && !os.IsTimeout(err) {
			break
		}
	}

	p.teardown(buf)
}

// teardown performs the one-shot close sequence: close the write end so the
// read end can reach end-of-stream, flush what remains (unless the
// destination already failed), close the read end, then mark the pipe closed
// and wake any goroutine blocked in Close.
func (p *MonitoredPipe) teardown(buf []byte) {
	p.mu.Lock()
	if p.state == stateOpen {
		p.state = stateClosing
	}
	_ = p.w.Close()
	p.mu.Unlock()

	if p.Err() == nil {
		p.drain(buf)
	}

	_ = p.r.Close()

	p.mu.Lock()
	p.state = stateClosed
	p.mu.Unlock()
	close(p.done)
}

// drain forwards any bytes still buffered in the pipe until end-of-stream.
// The write end is already closed, so once every writer's copy of it is gone
// the reads terminate with EOF.
func (p *MonitoredPipe) drain(buf []byte) {
	for {
		_ = p.r.SetReadDeadline(time.Now().Add(p.pollInterval))

		n, err := p.r.Read(buf)
		if n > 0 {
			if werr := p.deliver(buf[:n]); werr != nil {
				p.captureError(werr)
				return
			}
		}
		if err == nil || os.IsTimeout(err) {
			continue
		}
		return
	}
}

// deliver forwards one chunk to the destination, containing panics so a
// misbehaving destination cannot kill the monitor goroutine.
func (p *MonitoredPipe) deliver(chunk []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = platformerrors.Newf(platformerrors.CodeInternal,
				"destination write panicked: %v", r)
		}
	}()

	n, err := p.dest.Write(chunk)
	if err != nil {
		return err
	}
	if n != len(chunk) {
		return io.ErrShortWrite
	}
	return nil
}
