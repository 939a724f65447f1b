// Package walk is the netwalk traversal engine: a token moves through a
// core.Network one edge per step, the exit at each step dictated by the
// next symbol of an indefinitely repeated instruction tape, until it
// lands on a node accepted by the caller-supplied target set.
//
// What
//
//   - Walk: a single walk from one start node. Returns a Result with
//     the exact first-hit step count (acceptance tested before each
//     step: start-on-target is 0, first-instruction hit is 1) and the
//     accepting node reached.
//   - SynchronizedSteps: one walk per start node, reduced by least
//     common multiple (seeded with 1) — the first step at which every
//     walk simultaneously sits on an accepting node.
//   - Functional options: WithContext (cancellation), WithMaxSteps
//     (hard bound; 0 disables it), WithOnStep (per-edge observation).
//
// Why
//
//   - First-hit step counts are the primitive answer of this domain;
//     everything else (mode selection, formatting) lives in the host.
//   - An unbounded search is not an acceptable failure mode: walks are
//     bounded by DefaultMaxSteps unless explicitly unbounded, and
//     exhausting the bound is ErrStepLimit — a condition distinct from
//     the malformed-graph ErrUnknownNode.
//
// Periodicity precondition
//
//	SynchronizedSteps assumes, without verifying, that every walk's
//	target-hitting behavior is purely periodic from step zero: the
//	first-hit step count equals the cycle period, and each repeat
//	arrives on an accepting node at exact multiples of it. The LCM of
//	the first-hit counts is the correct synchronization only for that
//	class of networks. General synchronization of eventually-periodic
//	walks would need cycle-start offsets tracked separately; this
//	engine deliberately does not do that, and inputs violating the
//	assumption yield a well-defined but meaningless number.
//
// Concurrency
//
//	Network, Instructions, and TargetSet are immutable after
//	construction, so SynchronizedSteps fans the independent walks out
//	across goroutines (errgroup); each walk owns its private cursor
//	and step counter. The first failing walk cancels the rest.
//
// Complexity (S = steps taken, k = number of starts)
//
//   - Walk:              O(S) time, O(1) memory
//   - SynchronizedSteps: O(ΣS) total time across k parallel walks,
//     O(k) memory
//
// Usage
//
//	res, err := walk.Walk(net, "AAA", core.NewTargetSet("ZZZ"), instructions)
//	if err != nil {
//	    // handle one of:
//	    // ErrNetworkNil, ErrNoTargets, ErrStartNotFound,
//	    // core.ErrEmptyInstructions, ErrOptionViolation,
//	    // ErrUnknownNode, ErrStepLimit, or ctx.Err()
//	}
//	fmt.Println(res.Steps)
//
//	combined, err := walk.SynchronizedSteps(
//	    net,
//	    net.NodesEndingIn('A'),
//	    core.NewTargetSet(net.NodesEndingIn('Z')...),
//	    instructions,
//	    walk.WithMaxSteps(1_000_000),
//	)
//
// Errors
//
//   - ErrNetworkNil      if the network pointer is nil.
//   - ErrStartNotFound   if a start node does not exist at walk entry.
//   - ErrNoTargets       if the target set is empty.
//   - ErrNoStartNodes    if SynchronizedSteps receives no starts.
//   - ErrUnknownNode     if the traversal steps onto an absent ID (fatal).
//   - ErrStepLimit       if MaxSteps is exhausted before any target.
//   - ErrStepOverflow    if the LCM reduction overflows uint64.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - core.ErrEmptyInstructions if the instruction tape is empty.
package walk
