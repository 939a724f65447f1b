// Package walk provides tunable options and error definitions for
// instruction-driven traversal over a core.Network.
package walk

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netwalk/core"
)

// DefaultMaxSteps bounds a walk unless overridden: generous enough for
// any realistic network, small enough to turn a pathological
// no-target-reachable walk into a diagnosable error instead of an
// infinite loop.
const DefaultMaxSteps = 1 << 30

// cancelCheckInterval controls how often the walk loop polls the
// context; must be a power of two (the loop masks the step counter).
const cancelCheckInterval = 1 << 10

// Sentinel errors for walk execution.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("walk: network is nil")

	// ErrStartNotFound is returned when a start ID is absent from the
	// network at walk entry.
	ErrStartNotFound = errors.New("walk: start node not found")

	// ErrNoTargets is returned when the target set is empty.
	ErrNoTargets = errors.New("walk: target set is empty")

	// ErrNoStartNodes is returned by SynchronizedSteps when no start
	// nodes are supplied.
	ErrNoStartNodes = errors.New("walk: no start nodes supplied")

	// ErrUnknownNode is returned when the traversal reaches a node
	// absent from the network: a malformed graph, fatal for the whole
	// computation. Never conflated with ErrStepLimit.
	ErrUnknownNode = errors.New("walk: traversal reached a node absent from the network")

	// ErrStepLimit is returned when MaxSteps is exhausted before any
	// target is reached. Distinct from ErrUnknownNode: the graph is
	// well-formed, the target just was not found within the bound.
	ErrStepLimit = errors.New("walk: step limit exceeded before reaching a target")

	// ErrStepOverflow is returned when the LCM reduction of
	// SynchronizedSteps overflows uint64.
	ErrStepOverflow = errors.New("walk: synchronized step count overflows uint64")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Option configures walk behavior via functional arguments.
// If an Option is invalid (e.g. negative step limit), it is recorded
// internally and surfaced as ErrOptionViolation when the walk starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize walk execution.
type Options struct {
	// Ctx allows cancellation and deadlines; polled periodically by
	// the walk loop (every cancelCheckInterval steps).
	Ctx context.Context

	// MaxSteps caps the number of edge traversals per walk.
	// A value of 0 explicitly disables the bound (the walk may then
	// run forever on a network with no reachable target).
	MaxSteps uint64

	// OnStep is called after every edge traversal with the 1-indexed
	// step number and the edge just taken.
	OnStep func(step uint64, from, to core.NodeID)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MaxSteps == DefaultMaxSteps
//   - no-op OnStep hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: DefaultMaxSteps,
		OnStep:   func(uint64, core.NodeID, core.NodeID) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the walk at n edge traversals.
//
//	n > 0:  limit to n steps
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxSteps = uint64(n)
		}
	}
}

// WithOnStep registers a callback to run after every edge traversal.
func WithOnStep(fn func(step uint64, from, to core.NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result holds the outcome of a single walk:
//   - Steps: the exact number of edge traversals taken. A start node
//     that is already accepting yields 0; a target first reached by
//     the very first instruction yields 1.
//   - Final: the accepting node the walk stopped on.
type Result struct {
	Steps uint64
	Final core.NodeID
}
