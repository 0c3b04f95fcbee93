package run

import (
	"io"
	"os"

	platformerrors "github.com/jmgilman/go/errors"
)

// Default open behavior for path-based redirection targets.
const (
	defaultFileFlag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	defaultFilePerm = os.FileMode(0o644)
)

// handler pairs a predicate with a constructor for one destination kind.
type handler struct {
	name    string
	accepts func(target any) bool
	build   func(target any) (Destination, error)
}

// handlers is the resolver's dispatch table, tried strictly in order. The
// order matters because some predicates overlap: the spawn-time markers and
// descriptor checks must run before the broad io.Writer check, since values
// like *os.File satisfy both. Populated in init so the tee handler can
// recurse through Resolve.
var handlers []handler

func init() {
	handlers = []handler{
		{
			name:    "child stream",
			accepts: func(t any) bool { _, ok := t.(ChildStream); return ok },
			build: func(t any) (Destination, error) {
				return &childStreamDestination{fd: int(t.(ChildStream))}, nil
			},
		},
		{
			name:    "close stream",
			accepts: func(t any) bool { _, ok := t.(closeStream); return ok },
			build: func(t any) (Destination, error) {
				return &closeStreamDestination{}, nil
			},
		},
		{
			name:    "standard stream",
			accepts: func(t any) bool { _, ok := t.(StdStream); return ok },
			build: func(t any) (Destination, error) {
				return newStdStreamDestination(t.(StdStream)), nil
			},
		},
		{
			name:    "file descriptor",
			accepts: func(t any) bool { _, ok := t.(int); return ok },
			build: func(t any) (Destination, error) {
				return &fdDestination{fd: t.(int)}, nil
			},
		},
		{
			name:    "monitored pipe",
			accepts: func(t any) bool { _, ok := t.(*MonitoredPipe); return ok },
			build: func(t any) (Destination, error) {
				return &pipeDestination{p: t.(*MonitoredPipe)}, nil
			},
		},
		{
			name:    "tee",
			accepts: func(t any) bool { _, ok := t.(teeTarget); return ok },
			build:   buildTee,
		},
		{
			name:    "file",
			accepts: func(t any) bool { _, ok := t.(File); return ok },
			build: func(t any) (Destination, error) {
				return openFile(t.(File))
			},
		},
		{
			name:    "file path",
			accepts: func(t any) bool { _, ok := t.(string); return ok },
			build: func(t any) (Destination, error) {
				return openFile(File{Path: t.(string)})
			},
		},
		{
			name:    "descriptor-backed writer",
			accepts: func(t any) bool { _, ok := t.(fdWriter); return ok },
			build: func(t any) (Destination, error) {
				return &handleDestination{f: t.(fdWriter)}, nil
			},
		},
		{
			name:    "writer",
			accepts: func(t any) bool { _, ok := t.(io.Writer); return ok },
			build: func(t any) (Destination, error) {
				return &writerDestination{w: t.(io.Writer)}, nil
			},
		},
	}
}

// Resolve maps a redirection target to the concrete destination that handles
// it, trying each known destination kind in priority order. Destinations
// that open a resource do so eagerly, so resolution fails immediately with
// the underlying I/O error rather than lazily on first write.
func Resolve(target any) (Destination, error) {
	for _, h := range handlers {
		if h.accepts(target) {
			return h.build(target)
		}
	}
	return nil, platformerrors.Newf(platformerrors.CodeInvalidInput,
		"unsupported redirection target: %v (%T)", target, target)
}

// openFile opens a path-based target eagerly, applying the default truncate
// flags and permission bits where the caller left them zero.
func openFile(t File) (Destination, error) {
	flag := t.Flag
	if flag == 0 {
		flag = defaultFileFlag
	}
	perm := t.Perm
	if perm == 0 {
		perm = defaultFilePerm
	}

	f, err := os.OpenFile(t.Path, flag, perm)
	if err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput,
			"failed to open redirection target %q", t.Path)
	}
	return &fileDestination{f: f}, nil
}

// buildTee resolves each child target recursively. A child that fails to
// resolve closes the children already built so no opened resource leaks.
func buildTee(target any) (Destination, error) {
	tee := target.(teeTarget)
	if len(tee.targets) == 0 {
		return nil, platformerrors.New(platformerrors.CodeInvalidInput,
			"tee requires at least one target")
	}

	children := make([]Destination, 0, len(tee.targets))
	for _, t := range tee.targets {
		child, err := Resolve(t)
		if err != nil {
			for _, built := range children {
				_ = built.Close()
			}
			return nil, err
		}
		children = append(children, child)
	}
	return &teeDestination{children: children}, nil
}
