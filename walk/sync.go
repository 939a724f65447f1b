package walk

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netwalk/core"
)

// SynchronizedSteps runs one independent walk per start node and
// reduces the individual first-hit step counts by least common
// multiple, seeded with 1: the first step at which all walks
// simultaneously sit on an accepting node.
//
// Precondition (not verified): each walk's target-hitting behavior must
// be purely periodic from step zero, i.e. its first-hit step count
// equals its cycle period. The LCM reduction is only the correct
// synchronization under that assumption; this engine deliberately does
// not perform general cycle detection.
//
// All shared inputs are immutable, so the per-start walks run in
// parallel; each goroutine owns its private cursor and counter. The
// result does not depend on the order of starts. A walk whose start is
// already accepting contributes 0, making the combined result 0.
//
// Returns ErrNoStartNodes for an empty start list, ErrStepOverflow if
// the reduction overflows uint64, and otherwise the same errors as
// Walk (the first failing walk aborts the whole computation).
//
// Complexity: O(ΣS) total steps across walks, O(len(starts)) memory.
func SynchronizedSteps(net *core.Network, starts []core.NodeID, targets core.TargetSet, instructions core.Instructions, opts ...Option) (uint64, error) {
	if net == nil {
		return 0, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if len(starts) == 0 {
		return 0, ErrNoStartNodes
	}
	// Fail fast, in deterministic order, before spawning workers.
	for _, s := range starts {
		if err := validate(net, s, targets); err != nil {
			return 0, err
		}
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	wo := o
	wo.Ctx = ctx
	counts := make([]uint64, len(starts))
	for i, s := range starts {
		i, s := i, s
		g.Go(func() error {
			res, err := run(net, s, targets, instructions, wo)
			if err != nil {
				return err
			}
			counts[i] = res.Steps

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	combined := uint64(1)
	for _, c := range counts {
		var err error
		if combined, err = lcm(combined, c); err != nil {
			return 0, err
		}
	}

	return combined, nil
}

// gcd is the euclidean greatest common divisor.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm returns the least common multiple of a and b, with lcm(x, 0) = 0,
// guarding against uint64 overflow.
func lcm(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	q := a / gcd(a, b)
	if q > math.MaxUint64/b {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", ErrStepOverflow, a, b)
	}

	return q * b, nil
}
