package btreeset

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/tidwall/btree"
)

type tidwallSet[K any] struct {
	inner *btree.BTreeG[K]
}

func (me tidwallSet[K]) Insert(key K) bool {
	_, replaced := me.inner.Set(key)
	return !replaced
}

func (me tidwallSet[K]) Delete(key K) bool {
	_, deleted := me.inner.Delete(key)
	return deleted
}

func (me tidwallSet[K]) Contains(key K) bool {
	_, ok := me.inner.Get(key)
	return ok
}

func (me tidwallSet[K]) Len() int {
	return me.inner.Len()
}

func (me tidwallSet[K]) Iter(yield func(K) bool) {
	it := me.inner.Iter()
	defer it.Release()
	for ok := it.First(); ok; ok = it.Next() {
		if !yield(it.Item()) {
			return
		}
	}
}

func (me tidwallSet[K]) IterFrom(gte K) iter.Seq[K] {
	return func(yield func(K) bool) {
		me.inner.Ascend(gte, yield)
	}
}

func (me tidwallSet[K]) GetGte(gte K) (ret g.Option[K]) {
	me.inner.Ascend(gte, func(k K) bool {
		ret.Set(k)
		return false
	})
	return
}

func MakeTidwall[K any](cmp CompareFunc[K]) Interface[K] {
	return tidwallSet[K]{
		inner: btree.NewBTreeGOptions(func(a, b K) bool {
			return cmp(a, b) < 0
		}, btree.Options{
			Degree:  32,
			NoLocks: true,
		}),
	}
}
