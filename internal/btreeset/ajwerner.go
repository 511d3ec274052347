package btreeset

import (
	"iter"

	"github.com/ajwerner/btree"
	g "github.com/anacrolix/generics"
)

type ajwernerSet[K any] struct {
	inner btree.Set[K]
	cmp   CompareFunc[K]
	len   int
}

func (me *ajwernerSet[K]) Insert(key K) bool {
	_, overwrote := me.inner.Upsert(key)
	if !overwrote {
		me.len++
	}
	return !overwrote
}

func (me *ajwernerSet[K]) Delete(key K) bool {
	if !me.inner.Delete(key) {
		return false
	}
	me.len--
	return true
}

func (me *ajwernerSet[K]) Contains(key K) bool {
	gte := me.GetGte(key)
	return gte.Ok && me.cmp(gte.Value, key) == 0
}

func (me *ajwernerSet[K]) Len() int {
	return me.len
}

func (me *ajwernerSet[K]) Iter(yield func(K) bool) {
	it := me.inner.Iterator()
	for it.First(); it.Valid(); it.Next() {
		if !yield(it.Cur()) {
			return
		}
	}
}

func (me *ajwernerSet[K]) IterFrom(gte K) iter.Seq[K] {
	return func(yield func(K) bool) {
		it := me.inner.Iterator()
		for it.SeekGE(gte); it.Valid(); it.Next() {
			if !yield(it.Cur()) {
				return
			}
		}
	}
}

func (me *ajwernerSet[K]) GetGte(gte K) (ret g.Option[K]) {
	it := me.inner.Iterator()
	it.SeekGE(gte)
	if it.Valid() {
		ret.Set(it.Cur())
	}
	return
}

func MakeAjwerner[K any](cmp CompareFunc[K]) Interface[K] {
	return &ajwernerSet[K]{
		inner: btree.MakeSet[K](cmp),
		cmp:   cmp,
	}
}
