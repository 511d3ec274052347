package orderedset

import (
	"iter"
)

// Yields keys ascending. The next position is found before each key is yielded, so the caller may
// Delete the key it was just given.
func (me *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		me.yieldFrom(me.Begin(), yield)
	}
}

// Yields keys greater than or equal to gte, ascending.
func (me *Set[K]) IterFrom(gte K) iter.Seq[K] {
	return func(yield func(K) bool) {
		me.yieldFrom(me.LowerBound(gte), yield)
	}
}

// Yields keys in [gte, lt), ascending.
func (me *Set[K]) IterRange(gte, lt K) iter.Seq[K] {
	return func(yield func(K) bool) {
		me.yieldFrom(me.LowerBound(gte), func(k K) bool {
			return me.cmp(k, lt) < 0 && yield(k)
		})
	}
}

func (me *Set[K]) yieldFrom(c Cursor[K], yield func(K) bool) {
	for !c.IsEnd() {
		next := c.Next()
		if !yield(c.n.key) {
			return
		}
		c = next
	}
}

// Yields keys descending. As with All, the caller may Delete the key it was just given.
func (me *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		if me.Empty() {
			return
		}
		first := me.Begin()
		c := me.Last()
		for {
			var prev Cursor[K]
			if c != first {
				prev = c.Prev()
			}
			if !yield(c.n.key) {
				return
			}
			if c == first {
				return
			}
			c = prev
		}
	}
}
