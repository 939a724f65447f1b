package core

import (
	"fmt"
	"sort"
)

// Network is the full traversal graph: a mapping from NodeID to Node in
// which every node carries exactly two outgoing exits. A Network is
// mutable only through AddNode during construction and is treated as
// read-only by every traversal; concurrent walks over a built Network
// need no locking.
type Network struct {
	nodes map[NodeID]Node
}

// NewNetwork returns an empty Network ready for AddNode calls.
func NewNetwork() *Network {
	return &Network{nodes: make(map[NodeID]Node)}
}

// AddNode inserts a node with the given exits.
// Returns ErrBadNodeID if any of the three IDs is malformed, or
// ErrDuplicateNode if id is already present. Exits may reference IDs
// not (yet) present; use Validate to check referential integrity once
// construction is complete.
// Complexity: O(1).
func (nw *Network) AddNode(id, left, right NodeID) error {
	for _, v := range []NodeID{id, left, right} {
		if !v.Valid() {
			return fmt.Errorf("%w: %q", ErrBadNodeID, v)
		}
	}
	if _, exists := nw.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	nw.nodes[id] = Node{ID: id, Left: left, Right: right}

	return nil
}

// Node returns the node stored under id and whether it exists.
func (nw *Network) Node(id NodeID) (Node, bool) {
	n, ok := nw.nodes[id]

	return n, ok
}

// Has reports whether id resolves to a node in the network.
func (nw *Network) Has(id NodeID) bool {
	_, ok := nw.nodes[id]

	return ok
}

// Len returns the number of nodes.
func (nw *Network) Len() int {
	return len(nw.nodes)
}

// Step resolves one traversal step: it looks up cur and returns the
// exit selected by inst. The second result is false when cur is absent
// from the network — absence is representable here, never papered over,
// so that callers can surface a malformed network instead of walking in
// place. Complexity: O(1).
func (nw *Network) Step(cur NodeID, inst Instruction) (NodeID, bool) {
	n, ok := nw.nodes[cur]
	if !ok {
		return "", false
	}

	return n.Exit(inst), true
}

// NodeIDs returns all node IDs in ascending order.
// Sorted enumeration keeps start/target selection deterministic.
// Complexity: O(V log V).
func (nw *Network) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(nw.nodes))
	for id := range nw.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodesWhere returns, in ascending order, every node ID for which the
// predicate holds. Complexity: O(V log V).
func (nw *Network) NodesWhere(pred func(NodeID) bool) []NodeID {
	ids := make([]NodeID, 0)
	for id := range nw.nodes {
		if pred(id) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodesEndingIn returns, in ascending order, every node ID whose last
// symbol equals sym. This is the start/target population selector for
// synchronized walks (e.g. all IDs ending in 'A' or 'Z').
func (nw *Network) NodesEndingIn(sym byte) []NodeID {
	return nw.NodesWhere(func(id NodeID) bool { return id.EndsIn(sym) })
}

// Validate checks referential integrity: every exit of every node must
// resolve to a node present in the network. Returns ErrDanglingEdge
// (wrapped with the first offending node and exit, in ascending ID
// order) or nil. Complexity: O(V log V).
func (nw *Network) Validate() error {
	for _, id := range nw.NodeIDs() {
		n := nw.nodes[id]
		if !nw.Has(n.Left) {
			return fmt.Errorf("%w: %q -L-> %q", ErrDanglingEdge, n.ID, n.Left)
		}
		if !nw.Has(n.Right) {
			return fmt.Errorf("%w: %q -R-> %q", ErrDanglingEdge, n.ID, n.Right)
		}
	}

	return nil
}
