// Package parse ingests the textual network format into core types:
// an instruction line of L/R symbols, a blank separator line, then one
// "ID = (LEFT, RIGHT)" line per node.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/netwalk/core"
)

// Sentinel errors for input ingestion.
var (
	// ErrBadDocument indicates the two-section layout is missing: an
	// instruction line, a blank line, then node lines.
	ErrBadDocument = errors.New("parse: input must be an instruction line, a blank line, then node lines")

	// ErrBadNodeLine indicates a line that does not match the
	// "ID = (LEFT, RIGHT)" production.
	ErrBadNodeLine = errors.New("parse: malformed node line")
)

// nodeLineRE captures the fixed-width node production:
// three [A-Z0-9] symbols for each of ID, LEFT, and RIGHT.
var nodeLineRE = regexp.MustCompile(`^([A-Z0-9]{3}) = \(([A-Z0-9]{3}), ([A-Z0-9]{3})\)$`)

// Instructions parses a line of L/R symbols into the control sequence.
// Surrounding whitespace is ignored. Returns core.ErrEmptyInstructions
// for a blank line and core.ErrBadInstruction (with the position) for
// any other symbol. Complexity: O(len(line)).
func Instructions(line string) (core.Instructions, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, core.ErrEmptyInstructions
	}
	seq := make(core.Instructions, 0, len(line))
	for i := 0; i < len(line); i++ {
		inst, err := core.ParseInstruction(line[i])
		if err != nil {
			return nil, fmt.Errorf("parse: symbol %d: %w", i+1, err)
		}
		seq = append(seq, inst)
	}

	return seq, nil
}

// Network parses one node line per non-blank line of block into a
// core.Network. Line numbers in errors are 1-indexed within block.
// Referential integrity is deliberately not checked here — dangling
// exits are a walk-time (or core.Network.Validate) concern.
// Complexity: O(lines).
func Network(block string) (*core.Network, error) {
	nw := core.NewNetwork()
	for lineNo, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		m := nodeLineRE.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadNodeLine, lineNo+1, line)
		}
		if err := nw.AddNode(core.NodeID(m[1]), core.NodeID(m[2]), core.NodeID(m[3])); err != nil {
			return nil, fmt.Errorf("parse: line %d: %w", lineNo+1, err)
		}
	}

	return nw, nil
}

// Document splits the full two-section input and parses both parts:
// the first section is the instruction line, everything after the
// first blank line is the node block. Returns ErrBadDocument when the
// separator is missing.
func Document(input string) (core.Instructions, *core.Network, error) {
	head, rest, found := strings.Cut(input, "\n\n")
	if !found {
		return nil, nil, ErrBadDocument
	}
	seq, err := Instructions(head)
	if err != nil {
		return nil, nil, err
	}
	nw, err := Network(rest)
	if err != nil {
		return nil, nil, err
	}

	return seq, nw, nil
}
