package run

import (
	"bytes"
	"io"
	"sync"
)

// multiWriter writes to multiple writers simultaneously.
// It's similar to io.MultiWriter but safe for use as a shared destination.
type multiWriter struct {
	writers []io.Writer
	mu      sync.Mutex
}

// newMultiWriter creates a new multiWriter that writes to all provided writers.
func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{
		writers: writers,
	}
}

// Write writes data to all underlying writers.
func (mw *multiWriter) Write(p []byte) (n int, err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, w := range mw.writers {
		n, err = w.Write(p)
		if err != nil {
			return
		}
		if n != len(p) {
			err = io.ErrShortWrite
			return
		}
	}
	return len(p), nil
}

// outputCapture accumulates one stream of a command's output. The stdout and
// stderr pipes drain on separate goroutines, so access is locked.
type outputCapture struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

// newOutputCapture creates a new output capture.
func newOutputCapture() *outputCapture {
	return &outputCapture{}
}

// Write appends data to the captured output.
func (oc *outputCapture) Write(p []byte) (n int, err error) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.buffer.Write(p)
}

// String returns the captured output as a string.
func (oc *outputCapture) String() string {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.buffer.String()
}

// combinedWriter combines stdout and stderr into a single output stream.
type combinedWriter struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

// newCombinedWriter creates a new combined writer.
func newCombinedWriter() *combinedWriter {
	return &combinedWriter{}
}

// Write writes data to the combined buffer.
func (cw *combinedWriter) Write(p []byte) (n int, err error) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.buffer.Write(p)
}

// String returns the combined output as a string.
func (cw *combinedWriter) String() string {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.buffer.String()
}
