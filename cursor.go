package orderedset

import (
	"github.com/anacrolix/missinggo/v2/panicif"
)

// A position in a Set. Cursors don't own anything: they stay valid, and keep referring to the
// same key, across inserts and across erasure of other keys. A cursor to an erased key dangles.
// Cursors compare equal with == when they refer to the same position.
type Cursor[K any] struct {
	n *node[K]
}

// Returns the key at the cursor. Panics at the end position.
func (me Cursor[K]) Key() K {
	panicif.True(me.n.end)
	return me.n.key
}

func (me Cursor[K]) IsEnd() bool {
	return me.n.end
}

// Returns the cursor at the next key in ascending order, or the end position after the last key.
// Calling Next on the end position is undefined.
func (me Cursor[K]) Next() Cursor[K] {
	return Cursor[K]{me.n.next()}
}

// Returns the cursor at the previous key. Prev of the end position is the last key. Calling Prev
// on the first key is undefined.
func (me Cursor[K]) Prev() Cursor[K] {
	return Cursor[K]{me.n.prev()}
}

// Iterates keys descending, as a reversed view over a Cursor. The reverse cursor at base refers to
// the key before base, so the reverse begin wraps the set's end, and the reverse end wraps the
// set's begin.
type ReverseCursor[K any] struct {
	base Cursor[K]
}

func (me ReverseCursor[K]) Base() Cursor[K] {
	return me.base
}

func (me ReverseCursor[K]) Key() K {
	return me.base.Prev().Key()
}

func (me ReverseCursor[K]) Next() ReverseCursor[K] {
	return ReverseCursor[K]{me.base.Prev()}
}

func (me ReverseCursor[K]) Prev() ReverseCursor[K] {
	return ReverseCursor[K]{me.base.Next()}
}
