package btreeset

import (
	"iter"

	"github.com/anacrolix/btree"
	g "github.com/anacrolix/generics"
)

type anacrolixSet[K any] struct {
	inner btree.Set[K]
}

func (me *anacrolixSet[K]) Insert(key K) bool {
	_, overwrote := me.inner.Upsert(key)
	return !overwrote
}

func (me *anacrolixSet[K]) Delete(key K) (removed bool) {
	_, _, removed = me.inner.Map.Delete(key)
	return
}

func (me *anacrolixSet[K]) Contains(key K) bool {
	_, ok := me.inner.Get(key)
	return ok
}

func (me *anacrolixSet[K]) Len() int {
	return me.inner.Len()
}

func (me *anacrolixSet[K]) Iter(yield func(K) bool) {
	it := me.inner.Iterator()
	for it.First(); it.Valid(); it.Next() {
		if !yield(it.Cur()) {
			return
		}
	}
}

func (me *anacrolixSet[K]) IterFrom(gte K) iter.Seq[K] {
	return func(yield func(K) bool) {
		it := me.inner.Iterator()
		for it.SeekGE(gte); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

func (me *anacrolixSet[K]) GetGte(gte K) (_ g.Option[K]) {
	it := me.inner.Iterator()
	it.SeekGE(gte)
	if !it.Valid() {
		return
	}
	return g.Some(it.Cur())
}

func MakeAnacrolix[K any](cmp CompareFunc[K]) Interface[K] {
	return &anacrolixSet[K]{inner: btree.MakeSet[K](cmp)}
}
