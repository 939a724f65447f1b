// Package core provides the fundamental netwalk types: fixed-width node
// identifiers, two-exit nodes, the immutable Network they form, the
// cyclic instruction tape, and the target (acceptance) set.
//
// What
//
//   - NodeID: exactly 3 symbols from [A-Z0-9]; hashable, immutable,
//     used directly as the map key of a Network.
//   - Node: one vertex — its own ID plus the IDs behind its Left and
//     Right exits. Every node has exactly two outgoing edges.
//   - Network: the ID→Node mapping. Built once via AddNode, then
//     read-only; Step resolves one traversal hop, Validate checks that
//     every exit resolves, NodeIDs/NodesEndingIn enumerate
//     deterministically (ascending order).
//   - Instruction / Instructions: the Left/Right control symbols and
//     their finite ordered sequence.
//   - Cursor: a cycling iterator over a non-empty Instructions tape
//     (index modulo length); construction fails on an empty tape.
//   - TargetSet: the set of accepting node IDs consulted by walks.
//
// Why
//
//   - All edges are weak, ID-based references resolved by hash lookup
//     at traversal time — no pointer graph, no ownership cycles.
//   - Everything is immutable after construction, so any number of
//     concurrent walks may share one Network, one Instructions tape,
//     and one TargetSet with zero coordination.
//
// Errors
//
//   - ErrBadNodeID          malformed identifier (width or alphabet).
//   - ErrBadInstruction     symbol other than 'L'/'R'.
//   - ErrEmptyInstructions  cursor construction over an empty tape.
//   - ErrDuplicateNode      AddNode with an ID already present.
//   - ErrDanglingEdge       Validate found an exit that does not resolve.
//
// See package walk for the traversal engine and package parse for the
// textual input format.
package core
