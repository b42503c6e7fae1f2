package core

import (
	"time"

	"github.com/go-arbor/arbor/pkg/errors"
)

// Configure is a configuration callback applied to a freshly constructed
// node before it is attached to its parent. It may mutate properties,
// register handlers, and issue nested Build calls that attach children to
// the node.
type Configure[T Node] func(T) error

// Build constructs a node, configures it, attaches it to parent, and
// returns it.
//
// The configuration callbacks run to completion before the node is
// attached, so a fully populated subtree is what appears under parent.
// Sibling Build calls inside one callback attach in the order they were
// issued. A nil parent builds a detached root.
//
// Errors surface synchronously: a construct error is wrapped as
// invalid_argument, a configure error or panic aborts before attachment,
// and an attach error carries the container's invalid_attachment cause.
// Siblings attached before the failure stay in place.
func Build[T Node](parent Container, construct func() (T, error), configure ...Configure[T]) (T, error) {
	return BuildAt(parent, nil, construct, configure...)
}

// BuildAt is Build with an explicit slot for slotted and region
// containers (an int position for ordered containers, a string name for
// region containers).
func BuildAt[T Node](parent Container, slot any, construct func() (T, error), configure ...Configure[T]) (T, error) {
	const op = "core.Build"
	var zero T

	node, err := construct()
	if err != nil {
		return zero, errors.New(op, errors.KindInvalidArgument, err)
	}

	for _, fn := range configure {
		if fn == nil {
			continue
		}
		if err := runConfigure(node, fn); err != nil {
			return zero, err
		}
	}

	if parent != nil {
		if err := parent.Attach(node, slot); err != nil {
			return zero, err
		}
	}
	return node, nil
}

// MustBuild is Build that panics on error. Intended for static trees
// whose construction cannot fail.
func MustBuild[T Node](parent Container, construct func() (T, error), configure ...Configure[T]) T {
	node, err := Build(parent, construct, configure...)
	if err != nil {
		panic(err)
	}
	return node
}

// MustBuildAt is BuildAt that panics on error.
func MustBuildAt[T Node](parent Container, slot any, construct func() (T, error), configure ...Configure[T]) T {
	node, err := BuildAt(parent, slot, construct, configure...)
	if err != nil {
		panic(err)
	}
	return node
}

// runConfigure executes one callback with panic recovery. A recovered
// panic is reported to the global error handler and returned as the
// build error, mirroring how build failures are surfaced elsewhere in
// the framework.
func runConfigure[T Node](node T, fn Configure[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p := &errors.PanicError{
				Op:         "core.Build configure",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportPanic(p)
			err = p
		}
	}()
	return fn(node)
}
