package orderedset

import (
	"cmp"
	"slices"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
	"golang.org/x/exp/constraints"

	"github.com/anacrolix/orderedset/internal/amortize"
)

// Three-way comparison: negative if a orders before b, zero if equal, positive if after.
type CompareFunc[K any] func(a, b K) int

// An ordered set of unique keys, held in an unbalanced binary search tree with parent links. Tree
// shape depends only on insertion order: inserting sorted keys produces a chain, and operations on
// it are O(n). Not safe for concurrent use. A Set must not be copied after Init.
type Set[K any] struct {
	// Sentinel. Its left child is the root, and it is the end position.
	anchor node[K]
	len    int
	cmp    CompareFunc[K]
	addr   *Set[K]
	// Validate after mutations, amortized.
	checks    bool
	checkFreq amortize.Value
}

func New[K any](cmp CompareFunc[K]) *Set[K] {
	ret := &Set[K]{}
	ret.Init(cmp)
	return ret
}

func NewOrdered[K constraints.Ordered]() *Set[K] {
	return New(cmp.Compare[K])
}

// Creates a Set from a strict weak ordering, for key types that only provide less-than.
func NewLess[K any](less func(a, b K) bool) *Set[K] {
	return New(func(a, b K) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	})
}

func (me *Set[K]) Init(cmp CompareFunc[K]) {
	panicif.True(me.addr != nil)
	panicif.True(cmp == nil)
	me.addr = me
	me.anchor.end = true
	me.cmp = cmp
	me.checks = defaultChecks
}

// Enables or disables periodic invariant validation after mutations.
func (me *Set[K]) SetChecks(on bool) {
	me.checks = on
}

// Returns the sentinel, after making sure the Set was initialized and hasn't moved.
func (me *Set[K]) sentinel() *node[K] {
	panicif.True(me.addr == nil)
	panicif.NotEq(me.addr, me)
	return &me.anchor
}

func (me *Set[K]) root() *node[K] {
	return me.sentinel().left
}

func (me *Set[K]) mutated() {
	if me.checks && me.checkFreq.Try() {
		panicif.Err(me.Validate())
	}
}

func (me *Set[K]) Len() int {
	return me.len
}

func (me *Set[K]) Empty() bool {
	return me.len == 0
}

func (me *Set[K]) Begin() Cursor[K] {
	return Cursor[K]{me.sentinel().leftmost()}
}

func (me *Set[K]) End() Cursor[K] {
	return Cursor[K]{me.sentinel()}
}

// Returns a cursor at the greatest key, or End if the set is empty.
func (me *Set[K]) Last() Cursor[K] {
	if me.Empty() {
		return me.End()
	}
	return me.End().Prev()
}

func (me *Set[K]) RBegin() ReverseCursor[K] {
	return ReverseCursor[K]{me.End()}
}

func (me *Set[K]) REnd() ReverseCursor[K] {
	return ReverseCursor[K]{me.Begin()}
}

// Returns the cursor at the key equal to key, or End.
func (me *Set[K]) Find(key K) Cursor[K] {
	cur := me.root()
	for cur != nil {
		c := me.cmp(key, cur.key)
		switch {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return Cursor[K]{cur}
		}
	}
	return me.End()
}

func (me *Set[K]) Contains(key K) bool {
	return !me.Find(key).IsEnd()
}

// Returns the stored key that compares equal to key.
func (me *Set[K]) Get(key K) (ret g.Option[K]) {
	c := me.Find(key)
	if !c.IsEnd() {
		ret.Set(c.Key())
	}
	return
}

// Returns the cursor at the first key not less than key, or End.
func (me *Set[K]) LowerBound(key K) Cursor[K] {
	return me.bound(key, func(c int) bool { return c >= 0 })
}

// Returns the cursor at the first key greater than key, or End.
func (me *Set[K]) UpperBound(key K) Cursor[K] {
	return me.bound(key, func(c int) bool { return c > 0 })
}

// Descends from the root, remembering the last node whose comparison against key satisfies
// candidate, and going left from it. Otherwise goes right.
func (me *Set[K]) bound(key K, candidate func(c int) bool) Cursor[K] {
	ret := me.sentinel()
	cur := ret.left
	for cur != nil {
		if candidate(me.cmp(cur.key, key)) {
			ret = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return Cursor[K]{ret}
}

// Gets the first key greater than or equal to key.
func (me *Set[K]) GetGte(key K) (ret g.Option[K]) {
	c := me.LowerBound(key)
	if !c.IsEnd() {
		ret.Set(c.Key())
	}
	return
}

func (me *Set[K]) Min() (ret g.Option[K]) {
	if !me.Empty() {
		ret.Set(me.Begin().Key())
	}
	return
}

func (me *Set[K]) Max() (ret g.Option[K]) {
	if !me.Empty() {
		ret.Set(me.Last().Key())
	}
	return
}

// Inserts key if no equal key is present. Returns the cursor at the key in the set, and whether it
// was created. An existing equal key is left in place.
func (me *Set[K]) Insert(key K) (_ Cursor[K], inserted bool) {
	parent := me.sentinel()
	link := &parent.left
	for *link != nil {
		cur := *link
		c := me.cmp(key, cur.key)
		if c == 0 {
			return Cursor[K]{cur}, false
		}
		parent = cur
		if c < 0 {
			link = &cur.left
		} else {
			link = &cur.right
		}
	}
	n := &node[K]{
		parent: parent,
		key:    key,
	}
	*link = n
	me.len++
	me.mutated()
	return Cursor[K]{n}, true
}

// Unlinks n, which has at most one child, promoting the child into n's place.
func (me *Set[K]) detach(n *node[K]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	*n.parentSlot() = child
	if child != nil {
		child.parent = n.parent
	}
}

// Removes the key at c, which must be a cursor from this set other than End. Returns the cursor at
// the key that followed it. Cursors to other keys remain valid.
func (me *Set[K]) Erase(c Cursor[K]) (next Cursor[K]) {
	me.sentinel()
	n := c.n
	panicif.True(n.end)
	succ := n.next()
	if n.left != nil && n.right != nil {
		// The successor is in n's right subtree and has no left child. Take it out first, then move
		// it into n's position, so n's children are never handled while succ is still linked
		// beneath them.
		me.detach(succ)
		*n.parentSlot() = succ
		succ.parent = n.parent
		succ.left = n.left
		succ.right = n.right
		succ.left.parent = succ
		if succ.right != nil {
			succ.right.parent = succ
		}
	} else {
		me.detach(n)
	}
	n.unlink()
	me.len--
	me.mutated()
	return Cursor[K]{succ}
}

// Removes the key equal to key, returning whether it was present.
func (me *Set[K]) Delete(key K) (removed bool) {
	c := me.Find(key)
	if c.IsEnd() {
		return false
	}
	me.Erase(c)
	return true
}

// Removes all keys. The Set remains usable.
func (me *Set[K]) Clear() {
	end := me.sentinel()
	teardown(end.left)
	end.left = nil
	me.len = 0
	me.checkFreq.Reset()
}

// Unlinks every node under root without recursing, so chains of any length are fine.
func teardown[K any](root *node[K]) {
	if root == nil {
		return
	}
	stack := []*node[K]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.unlink()
	}
}

// Returns a new Set with the same keys and comparison, built by inserting keys in ascending order.
// The result has the same keys but not the same shape: it's a chain.
func (me *Set[K]) Clone() *Set[K] {
	ret := New(me.cmp)
	ret.checks = me.checks
	for k := range me.All() {
		ret.Insert(k)
	}
	return ret
}

// Replaces the contents of me with a copy of other. The copy is built completely before anything
// in me changes.
func (me *Set[K]) Assign(other *Set[K]) {
	if me == other {
		return
	}
	tmp := other.Clone()
	me.Swap(tmp)
	tmp.Clear()
}

// Exchanges the contents and comparison of two sets in constant time. Cursors move with their keys,
// but End of each set stays with that set.
func (me *Set[K]) Swap(other *Set[K]) {
	a := me.sentinel()
	b := other.sentinel()
	a.left, b.left = b.left, a.left
	if a.left != nil {
		a.left.parent = a
	}
	if b.left != nil {
		b.left.parent = b
	}
	me.len, other.len = other.len, me.len
	me.cmp, other.cmp = other.cmp, me.cmp
}

// Returns the keys in ascending order.
func (me *Set[K]) Keys() []K {
	return slices.Collect(me.All())
}

// Depth of the deepest key, 0 for an empty set.
func (me *Set[K]) Height() (height int) {
	level := make([]*node[K], 0, 1)
	if root := me.root(); root != nil {
		level = append(level, root)
	}
	for len(level) > 0 {
		height++
		var below []*node[K]
		for _, n := range level {
			if n.left != nil {
				below = append(below, n.left)
			}
			if n.right != nil {
				below = append(below, n.right)
			}
		}
		level = below
	}
	return
}
