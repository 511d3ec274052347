package orderedset

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/stretchr/testify/assert"
)

func newIntSet(t testing.TB, keys ...int) *Set[int] {
	s := NewOrdered[int]()
	s.SetChecks(true)
	for _, k := range keys {
		_, inserted := s.Insert(k)
		qt.Assert(t, qt.IsTrue(inserted))
	}
	qt.Assert(t, qt.IsNil(s.Validate()))
	return s
}

func TestEmpty(t *testing.T) {
	s := NewOrdered[int]()
	qt.Assert(t, qt.IsTrue(s.Empty()))
	qt.Assert(t, qt.Equals(s.Len(), 0))
	qt.Assert(t, qt.Equals(s.Begin(), s.End()))
	qt.Assert(t, qt.Equals(s.Last(), s.End()))
	qt.Assert(t, qt.IsTrue(s.End().IsEnd()))
	qt.Assert(t, qt.IsFalse(s.Min().Ok))
	qt.Assert(t, qt.IsFalse(s.Max().Ok))
	qt.Assert(t, qt.Equals(s.Height(), 0))
	qt.Assert(t, qt.HasLen(s.Keys(), 0))
	qt.Assert(t, qt.IsNil(s.Validate()))
}

func TestSingleInsert(t *testing.T) {
	s := NewOrdered[int]()
	c, inserted := s.Insert(5)
	qt.Assert(t, qt.IsTrue(inserted))
	qt.Assert(t, qt.IsFalse(s.Empty()))
	qt.Assert(t, qt.Equals(s.Begin(), c))
	qt.Assert(t, qt.Equals(s.Begin().Key(), 5))
	qt.Assert(t, qt.Equals(s.Begin().Next(), s.End()))
	qt.Assert(t, qt.Equals(s.End().Prev(), c))
}

func TestDuplicateInsert(t *testing.T) {
	s := newIntSet(t, 1, 2, 3)
	first := s.Find(2)
	c, inserted := s.Insert(2)
	qt.Assert(t, qt.IsFalse(inserted))
	qt.Assert(t, qt.Equals(c, first))
	qt.Assert(t, qt.Equals(s.Len(), 3))
}

func TestIterateBothWays(t *testing.T) {
	s := newIntSet(t, 1, 2, 3)
	qt.Assert(t, qt.Equals(s.Begin().Next().Key(), 2))
	qt.Assert(t, qt.Equals(s.Begin().Next().Next().Key(), 3))
	qt.Assert(t, qt.Equals(s.End().Prev().Key(), 3))
	qt.Assert(t, qt.Equals(s.End().Prev().Prev().Key(), 2))
	qt.Assert(t, qt.Equals(s.Last().Key(), 3))
}

func TestInsertOrderScenario(t *testing.T) {
	s := newIntSet(t, 5, 2, 10, 6, 14, 7, 8)
	qt.Assert(t, qt.DeepEquals(s.Keys(), []int{2, 5, 6, 7, 8, 10, 14}))
	qt.Assert(t, qt.Equals(s.root().key, 5))
	qt.Assert(t, qt.Equals(s.Height(), 5))
}

// 5 has children 2 and 10. Its successor 6 has a right child 7 and takes 5's place.
func TestEraseTwoChildren(t *testing.T) {
	s := newIntSet(t, 5, 2, 10, 6, 14, 7, 8)
	ten := s.Find(10)
	next := s.Erase(s.Find(5))
	qt.Assert(t, qt.Equals(next.Key(), 6))
	qt.Assert(t, qt.DeepEquals(s.Keys(), []int{2, 6, 7, 8, 10, 14}))
	qt.Assert(t, qt.Equals(s.Len(), 6))
	root := s.root()
	qt.Assert(t, qt.Equals(root, next.n))
	qt.Assert(t, qt.Equals(root.parent, &s.anchor))
	qt.Assert(t, qt.Equals(root.left.key, 2))
	qt.Assert(t, qt.Equals(root.right, ten.n))
	qt.Assert(t, qt.Equals(ten.n.left.key, 7))
	qt.Assert(t, qt.Equals(ten.Key(), 10))
	qt.Assert(t, qt.IsNil(s.Validate()))
}

func TestEraseRoot(t *testing.T) {
	s := newIntSet(t, 2, 1, 4, 3, 5)
	next := s.Erase(s.Begin().Next())
	qt.Assert(t, qt.Equals(next.Key(), 3))
	qt.Assert(t, qt.Equals(s.Begin().Next().Key(), 3))
	qt.Assert(t, qt.Equals(s.Begin().Next().Next().Key(), 4))
	qt.Assert(t, qt.DeepEquals(s.Keys(), []int{1, 3, 4, 5}))
	qt.Assert(t, qt.Equals(s.root().key, 3))
	qt.Assert(t, qt.Equals(s.root().right.left, (*node[int])(nil)))
}

// The successor is the erased node's right child.
func TestEraseSuccessorIsRightChild(t *testing.T) {
	s := newIntSet(t, 2, 1, 3)
	next := s.Erase(s.Find(2))
	qt.Assert(t, qt.Equals(next.Key(), 3))
	qt.Assert(t, qt.Equals(s.root().key, 3))
	qt.Assert(t, qt.Equals(s.root().left.key, 1))
	qt.Assert(t, qt.IsNil(s.root().right))
	qt.Assert(t, qt.IsNil(s.Validate()))
}

func TestEraseLeaf(t *testing.T) {
	s := newIntSet(t, 2, 1, 4, 3, 5)
	next := s.Erase(s.Begin())
	qt.Assert(t, qt.Equals(next.Key(), 2))
	qt.Assert(t, qt.DeepEquals(s.Keys(), []int{2, 3, 4, 5}))
	qt.Assert(t, qt.Equals(s.Begin().Next().Key(), 3))
}

func TestEraseOneChild(t *testing.T) {
	s := newIntSet(t, 4, 2, 1)
	next := s.Erase(s.Find(2))
	qt.Assert(t, qt.Equals(next.Key(), 4))
	qt.Assert(t, qt.Equals(s.root().left.key, 1))
	qt.Assert(t, qt.Equals(s.root().left.parent, s.root()))
	s = newIntSet(t, 1, 2, 3)
	next = s.Erase(s.Begin())
	qt.Assert(t, qt.Equals(next.Key(), 2))
	qt.Assert(t, qt.Equals(s.root().key, 2))
	qt.Assert(t, qt.Equals(s.root().parent, &s.anchor))
}

func TestEraseMaxReturnsEnd(t *testing.T) {
	s := newIntSet(t, 3, 1, 2)
	qt.Assert(t, qt.Equals(s.Erase(s.Last()), s.End()))
	qt.Assert(t, qt.Equals(s.Erase(s.Find(1)).Key(), 2))
	qt.Assert(t, qt.Equals(s.Erase(s.Begin()), s.End()))
	qt.Assert(t, qt.IsTrue(s.Empty()))
	qt.Assert(t, qt.Equals(s.Begin(), s.End()))
}

func TestEraseEndPanics(t *testing.T) {
	s := newIntSet(t, 1)
	assert.Panics(t, func() { s.Erase(s.End()) })
	assert.Panics(t, func() { s.End().Key() })
}

func TestCursorsSurviveOtherMutations(t *testing.T) {
	s := newIntSet(t, 50, 20, 80, 10, 30, 70, 90, 60, 65)
	held := map[int]Cursor[int]{}
	for _, k := range []int{10, 30, 65, 80} {
		held[k] = s.Find(k)
	}
	for _, k := range []int{50, 70, 20, 90, 60} {
		qt.Assert(t, qt.IsTrue(s.Delete(k)))
	}
	for _, k := range []int{55, 25, 100, 5} {
		s.Insert(k)
	}
	for k, c := range held {
		qt.Assert(t, qt.Equals(c.Key(), k))
		qt.Assert(t, qt.Equals(s.Find(k), c))
	}
	qt.Assert(t, qt.Equals(held[65].Next(), held[80]))
	qt.Assert(t, qt.Equals(held[30].Prev().Key(), 25))
}

func TestDelete(t *testing.T) {
	s := newIntSet(t, 3, 1, 2)
	qt.Assert(t, qt.IsTrue(s.Delete(1)))
	qt.Assert(t, qt.IsFalse(s.Delete(1)))
	qt.Assert(t, qt.IsFalse(s.Contains(1)))
	qt.Assert(t, qt.Equals(s.Find(1), s.End()))
	qt.Assert(t, qt.Equals(s.Len(), 2))
}

func TestBounds(t *testing.T) {
	s := newIntSet(t, 10, 20, 30)
	for _, tc := range []struct {
		x            int
		lower, upper int
	}{
		{5, 10, 10},
		{10, 10, 20},
		{15, 20, 20},
		{30, 30, -1},
		{31, -1, -1},
	} {
		check := func(c Cursor[int], want int) {
			if want == -1 {
				qt.Check(t, qt.Equals(c, s.End()), qt.Commentf("x=%v", tc.x))
			} else {
				qt.Check(t, qt.Equals(c.Key(), want), qt.Commentf("x=%v", tc.x))
			}
		}
		check(s.LowerBound(tc.x), tc.lower)
		check(s.UpperBound(tc.x), tc.upper)
		qt.Check(t, qt.Equals(s.LowerBound(tc.x) == s.UpperBound(tc.x), !s.Contains(tc.x)))
	}
	qt.Assert(t, qt.Equals(s.GetGte(11).Unwrap(), 20))
	qt.Assert(t, qt.IsFalse(s.GetGte(31).Ok))
	e := NewOrdered[int]()
	qt.Assert(t, qt.Equals(e.LowerBound(1), e.End()))
	qt.Assert(t, qt.Equals(e.UpperBound(1), e.End()))
}

type caseless string

func TestNewLess(t *testing.T) {
	s := NewLess(func(a, b caseless) bool {
		return strings.ToLower(string(a)) < strings.ToLower(string(b))
	})
	s.Insert("Banana")
	s.Insert("apple")
	_, inserted := s.Insert("APPLE")
	qt.Assert(t, qt.IsFalse(inserted))
	qt.Assert(t, qt.DeepEquals(s.Keys(), []caseless{"apple", "Banana"}))
	qt.Assert(t, qt.Equals(s.Get("BANANA").Unwrap(), "Banana"))
	qt.Assert(t, qt.IsFalse(s.Get("cherry").Ok))
}

func TestMinMax(t *testing.T) {
	s := newIntSet(t, 4, 8, 1, 9, 3)
	qt.Assert(t, qt.Equals(s.Min().Unwrap(), 1))
	qt.Assert(t, qt.Equals(s.Max().Unwrap(), 9))
}

func TestSortedInsertionIsAChain(t *testing.T) {
	s := NewOrdered[int]()
	for i := range 100 {
		s.Insert(i)
	}
	qt.Assert(t, qt.Equals(s.Height(), 100))
	qt.Assert(t, qt.IsNil(s.Validate()))
}

func TestClear(t *testing.T) {
	s := newIntSet(t, 5, 2, 10, 6, 14, 7, 8)
	stale := s.Find(6)
	s.Clear()
	qt.Assert(t, qt.IsTrue(s.Empty()))
	qt.Assert(t, qt.Equals(s.Begin(), s.End()))
	qt.Assert(t, qt.IsNil(stale.n.parent))
	qt.Assert(t, qt.IsNil(s.Validate()))
	s.Insert(1)
	qt.Assert(t, qt.DeepEquals(s.Keys(), []int{1}))
}

func TestClearLongChain(t *testing.T) {
	s := NewOrdered[int]()
	for i := range 10_000 {
		s.Insert(-i)
	}
	s.Clear()
	qt.Assert(t, qt.Equals(s.Len(), 0))
}

func TestClone(t *testing.T) {
	s := newIntSet(t, 5, 2, 10, 6, 14, 7, 8)
	c := s.Clone()
	qt.Assert(t, qt.DeepEquals(c.Keys(), s.Keys()))
	qt.Assert(t, qt.Equals(c.Len(), s.Len()))
	qt.Assert(t, qt.IsNil(c.Validate()))
	c.Delete(5)
	c.Insert(100)
	qt.Assert(t, qt.DeepEquals(s.Keys(), []int{2, 5, 6, 7, 8, 10, 14}))
	qt.Assert(t, qt.DeepEquals(c.Keys(), []int{2, 6, 7, 8, 10, 14, 100}))
}

func TestAssign(t *testing.T) {
	dst := newIntSet(t, 1, 2, 3)
	src := newIntSet(t, 9, 7, 8)
	dst.Assign(src)
	qt.Assert(t, qt.DeepEquals(dst.Keys(), []int{7, 8, 9}))
	qt.Assert(t, qt.DeepEquals(src.Keys(), []int{7, 8, 9}))
	qt.Assert(t, qt.IsNil(dst.Validate()))
	qt.Assert(t, qt.IsNil(src.Validate()))
	dst.Insert(10)
	qt.Assert(t, qt.IsFalse(src.Contains(10)))
	dst.Assign(dst)
	qt.Assert(t, qt.DeepEquals(dst.Keys(), []int{7, 8, 9, 10}))
}

func TestSwap(t *testing.T) {
	a := newIntSet(t, 2, 1, 3)
	b := newIntSet(t, 20)
	aTwo := a.Find(2)
	a.Swap(b)
	qt.Assert(t, qt.DeepEquals(a.Keys(), []int{20}))
	qt.Assert(t, qt.DeepEquals(b.Keys(), []int{1, 2, 3}))
	qt.Assert(t, qt.Equals(a.Len(), 1))
	qt.Assert(t, qt.Equals(b.Len(), 3))
	qt.Assert(t, qt.IsNil(a.Validate()))
	qt.Assert(t, qt.IsNil(b.Validate()))
	// Climbing out of the maximum must land on the new owner's sentinel.
	qt.Assert(t, qt.Equals(aTwo.Next().Next(), b.End()))
	qt.Assert(t, qt.Equals(a.Begin().Next(), a.End()))
	empty := NewOrdered[int]()
	empty.Swap(a)
	qt.Assert(t, qt.IsTrue(a.Empty()))
	qt.Assert(t, qt.Equals(a.Begin(), a.End()))
	qt.Assert(t, qt.DeepEquals(empty.Keys(), []int{20}))
	qt.Assert(t, qt.IsNil(empty.Validate()))
}

func TestSwapExchangesOrdering(t *testing.T) {
	asc := NewOrdered[int]()
	desc := New(func(a, b int) int { return cmp.Compare(b, a) })
	for _, k := range []int{1, 2, 3} {
		asc.Insert(k)
		desc.Insert(k)
	}
	asc.Swap(desc)
	asc.Insert(4)
	qt.Assert(t, qt.DeepEquals(asc.Keys(), []int{4, 3, 2, 1}))
	qt.Assert(t, qt.IsTrue(slices.IsSorted(desc.Keys())))
}

func TestInitTwicePanics(t *testing.T) {
	var s Set[int]
	s.Init(cmp.Compare[int])
	assert.Panics(t, func() { s.Init(cmp.Compare[int]) })
}

func TestCopiedSetPanics(t *testing.T) {
	s := newIntSet(t, 1)
	copied := *s
	assert.Panics(t, func() { copied.Insert(2) })
}

func TestUninitializedPanics(t *testing.T) {
	var s Set[int]
	assert.Panics(t, func() { s.Begin() })
}
