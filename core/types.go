// Package core defines the fundamental types, options, and sentinel errors
// for the netwalk traversal engine: fixed-width node identifiers, two-exit
// nodes, immutable networks, instruction tapes, and target sets.
package core

import (
	"errors"
	"fmt"
)

// IDWidth is the fixed number of symbols in every NodeID.
const IDWidth = 3

// Sentinel errors for core construction and validation.
var (
	// ErrBadNodeID indicates an identifier that is not exactly IDWidth
	// symbols drawn from uppercase letters and digits.
	ErrBadNodeID = errors.New("core: node ID must be exactly 3 symbols from [A-Z0-9]")

	// ErrBadInstruction indicates a symbol other than 'L' or 'R'.
	ErrBadInstruction = errors.New("core: instruction must be 'L' or 'R'")

	// ErrEmptyInstructions indicates an attempt to cycle over an empty
	// instruction sequence.
	ErrEmptyInstructions = errors.New("core: instruction sequence must be non-empty")

	// ErrDuplicateNode indicates that AddNode was called with an ID
	// already present in the network.
	ErrDuplicateNode = errors.New("core: node already present in network")

	// ErrDanglingEdge indicates that a node's exit references an ID
	// absent from the network.
	ErrDanglingEdge = errors.New("core: edge references a node absent from the network")
)

// NodeID identifies one node of a Network. A valid NodeID is exactly
// IDWidth symbols long, each an uppercase letter or digit. NodeIDs are
// immutable values and are used directly as map keys.
type NodeID string

// ParseNodeID validates s and returns it as a NodeID.
// Returns ErrBadNodeID (wrapped with the offending value) otherwise.
func ParseNodeID(s string) (NodeID, error) {
	id := NodeID(s)
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrBadNodeID, s)
	}

	return id, nil
}

// Valid reports whether id is exactly IDWidth symbols from [A-Z0-9].
// Complexity: O(IDWidth).
func (id NodeID) Valid() bool {
	if len(id) != IDWidth {
		return false
	}
	for i := 0; i < IDWidth; i++ {
		c := id[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}

// EndsIn reports whether the last symbol of id equals sym.
// Used to select start and target populations by terminal marker.
func (id NodeID) EndsIn(sym byte) bool {
	return len(id) == IDWidth && id[IDWidth-1] == sym
}

// Instruction is one directional choice applied at a traversal step.
type Instruction byte

const (
	// Left selects the left exit of the current node.
	Left Instruction = 'L'
	// Right selects the right exit of the current node.
	Right Instruction = 'R'
)

// ParseInstruction converts a raw symbol into an Instruction.
// Returns ErrBadInstruction for anything other than 'L' or 'R'.
func ParseInstruction(c byte) (Instruction, error) {
	switch Instruction(c) {
	case Left:
		return Left, nil
	case Right:
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadInstruction, c)
	}
}

// String returns "L" or "R" for known instructions, "?" otherwise.
func (i Instruction) String() string {
	switch i {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// Node is one vertex of the network: its own ID plus the IDs reached
// through its left and right exits. Nodes are immutable once added.
type Node struct {
	ID    NodeID
	Left  NodeID
	Right NodeID
}

// Exit returns the neighbor ID selected by inst.
// Unknown instructions fall through to the right exit; callers are
// expected to hold only parsed Instructions.
func (n Node) Exit(inst Instruction) NodeID {
	if inst == Left {
		return n.Left
	}

	return n.Right
}

// TargetSet is the acceptance condition of a walk: the set of node IDs
// considered accepting. Read-only during traversal.
type TargetSet map[NodeID]struct{}

// NewTargetSet builds a TargetSet from the given IDs.
func NewTargetSet(ids ...NodeID) TargetSet {
	ts := make(TargetSet, len(ids))
	for _, id := range ids {
		ts[id] = struct{}{}
	}

	return ts
}

// Add inserts id into the set.
func (ts TargetSet) Add(id NodeID) {
	ts[id] = struct{}{}
}

// Contains reports whether id is accepting. Complexity: O(1).
func (ts TargetSet) Contains(id NodeID) bool {
	_, ok := ts[id]

	return ok
}

// Len returns the number of accepting IDs.
func (ts TargetSet) Len() int {
	return len(ts)
}
