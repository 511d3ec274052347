package btreeset

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/google/btree"
)

const googleDegree = 8

type googleSet[K any] struct {
	inner *btree.BTreeG[K]
}

func (me googleSet[K]) Insert(key K) bool {
	_, replaced := me.inner.ReplaceOrInsert(key)
	return !replaced
}

func (me googleSet[K]) Delete(key K) bool {
	_, deleted := me.inner.Delete(key)
	return deleted
}

func (me googleSet[K]) Contains(key K) bool {
	return me.inner.Has(key)
}

func (me googleSet[K]) Len() int {
	return me.inner.Len()
}

func (me googleSet[K]) Iter(yield func(K) bool) {
	me.inner.Ascend(btree.ItemIteratorG[K](yield))
}

func (me googleSet[K]) IterFrom(gte K) iter.Seq[K] {
	return func(yield func(K) bool) {
		me.inner.AscendGreaterOrEqual(gte, btree.ItemIteratorG[K](yield))
	}
}

func (me googleSet[K]) GetGte(gte K) (ret g.Option[K]) {
	me.inner.AscendGreaterOrEqual(gte, func(k K) bool {
		ret.Set(k)
		return false
	})
	return
}

func MakeGoogle[K any](cmp CompareFunc[K]) Interface[K] {
	return googleSet[K]{
		inner: btree.NewG(googleDegree, func(a, b K) bool {
			return cmp(a, b) < 0
		}),
	}
}
