package core

// Instructions is the finite control sequence of a walk, replayed
// cyclically by a Cursor. It is constructed once and shared read-only
// across walks; every walk owns its private Cursor.
type Instructions []Instruction

// Cursor cycles indefinitely over a non-empty instruction sequence:
// after the last instruction it wraps to the first. A Cursor is a
// single-walk, single-goroutine object — share the Instructions, not
// the Cursor.
type Cursor struct {
	seq Instructions
	pos int
}

// NewCursor builds a cycling cursor over seq.
// Returns ErrEmptyInstructions when seq is empty: an empty tape makes
// the cyclic iteration degenerate, so it is rejected at construction
// time rather than discovered mid-walk.
func NewCursor(seq Instructions) (*Cursor, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyInstructions
	}

	return &Cursor{seq: seq}, nil
}

// Next returns the current instruction and advances the cursor,
// wrapping after the final instruction. Complexity: O(1).
func (c *Cursor) Next() Instruction {
	inst := c.seq[c.pos]
	c.pos++
	if c.pos == len(c.seq) {
		c.pos = 0
	}

	return inst
}

// Len returns the length of the underlying sequence.
func (c *Cursor) Len() int {
	return len(c.seq)
}
