// Package netwalk is a small toolkit for walking "two-way" networks:
// directed graphs in which every node carries exactly two labeled exits
// (Left and Right), steered by a finite instruction tape that is
// replayed cyclically until an accepting node is reached.
//
// 🚀 What is netwalk?
//
//	A deterministic traversal engine that brings together:
//		• Core primitives: fixed-width node IDs, two-exit nodes, immutable networks
//		• A cycling instruction cursor with constructor-time validation
//		• Single walks: exact first-hit step counts with a hard step bound
//		• Synchronized walks: LCM reduction of several independent walks
//		• Text ingestion: the "ID = (LEFT, RIGHT)" network format
//
// ✨ Why choose netwalk?
//
//   - Deterministic – sorted enumeration, reproducible step counts
//   - Rock-solid guarantees – sentinel errors, no silent defaults, no panics
//   - Pure Go core – the engine itself has no cgo and no heavy deps
//   - Extensible – functional options (WithMaxSteps, WithOnStep…) on every walk
//
// Under the hood, everything is organized under three subpackages:
//
//	core/  — NodeID, Node, Network, Instruction, Cursor, TargetSet
//	parse/ — instruction-line and node-line parsing into core types
//	walk/  — Walk and SynchronizedSteps, the traversal engine proper
//
// Quick ASCII example:
//
//	    AAA ──L──▶ BBB ──R──▶ ZZZ
//	     └────────R─────────────┘
//
//	a token leaves AAA, follows the instruction tape one exit per step,
//	and stops the moment it lands on an accepting node.
//
// A tiny CLI host lives in cmd/netwalk for one-shot runs over input
// files. Dive into the per-package docs for the full contract, error
// taxonomy, and worked examples.
//
//	go get github.com/katalvlaran/netwalk
package netwalk
