// Package walk implements instruction-driven traversal over a
// core.Network: a token follows one exit per step, the exit choice
// dictated by a cyclically replayed instruction tape, until it lands on
// an accepting node.
package walk

import (
	"fmt"

	"github.com/katalvlaran/netwalk/core"
)

// Walk simulates a token moving through net from start, one edge per
// step, choosing exits according to instructions (replayed cyclically),
// and returns the exact number of edge traversals needed to first land
// on a node in targets.
//
// Acceptance is tested before each step: a start node already in
// targets yields Steps == 0; a target first reached via the first
// instruction yields Steps == 1.
//
// Returns ErrNetworkNil, ErrNoTargets, ErrStartNotFound, or
// core.ErrEmptyInstructions for invalid input, ErrOptionViolation for
// bad options, ErrUnknownNode if the traversal steps onto an ID absent
// from the network (malformed graph — fatal, never "stay in place"),
// ErrStepLimit when MaxSteps is exhausted first, or the context error
// on cancellation.
//
// Complexity: O(S) time for S steps taken, O(1) memory.
func Walk(net *core.Network, start core.NodeID, targets core.TargetSet, instructions core.Instructions, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := validate(net, start, targets); err != nil {
		return nil, err
	}

	return run(net, start, targets, instructions, o)
}

// validate checks the per-walk preconditions shared by Walk and
// SynchronizedSteps.
func validate(net *core.Network, start core.NodeID, targets core.TargetSet) error {
	if targets.Len() == 0 {
		return ErrNoTargets
	}
	if !net.Has(start) {
		return fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	return nil
}

// run is the walk loop proper. Options are already resolved; the cursor
// is private to this walk, so concurrent runs over the same immutable
// inputs need no coordination.
func run(net *core.Network, start core.NodeID, targets core.TargetSet, instructions core.Instructions, o Options) (*Result, error) {
	cursor, err := core.NewCursor(instructions)
	if err != nil {
		return nil, err
	}

	cur := start
	var steps uint64
	for {
		// acceptance first: step counts are first-hit counts
		if targets.Contains(cur) {
			return &Result{Steps: steps, Final: cur}, nil
		}
		// cancellation check (amortized: every cancelCheckInterval steps)
		if steps&(cancelCheckInterval-1) == 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
		}
		if o.MaxSteps > 0 && steps >= o.MaxSteps {
			return nil, fmt.Errorf("%w: no target within %d steps of %q", ErrStepLimit, o.MaxSteps, start)
		}

		next, ok := net.Step(cur, cursor.Next())
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, cur)
		}
		steps++
		o.OnStep(steps, cur, next)
		cur = next
	}
}
