// Package parse turns the textual network format into core types.
//
// What
//
//	The input document has two sections separated by a blank line:
//
//	    LLR
//
//	    AAA = (BBB, BBB)
//	    BBB = (AAA, ZZZ)
//	    ZZZ = (ZZZ, ZZZ)
//
//   - Instructions parses the L/R control line.
//   - Network parses the node block: one "ID = (LEFT, RIGHT)" line per
//     node, all three identifiers exactly 3 symbols from [A-Z0-9].
//   - Document splits and parses both sections at once.
//
// Why
//
//	Construction and validation stay out of the traversal engine: by
//	the time a walk starts, the tape and network are fully typed. The
//	one check parse does NOT perform is referential integrity — a
//	dangling exit is representable in a core.Network and surfaces
//	either through core.Network.Validate or as walk.ErrUnknownNode at
//	traversal time.
//
// Errors
//
//   - ErrBadDocument            missing blank-line separator.
//   - ErrBadNodeLine            line does not match the production
//     (wrapped with the 1-indexed line number and the raw line).
//   - core.ErrBadInstruction    foreign symbol on the control line.
//   - core.ErrEmptyInstructions blank control line.
//   - core.ErrDuplicateNode     repeated node ID in the block.
package parse
