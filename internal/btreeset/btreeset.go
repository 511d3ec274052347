// Package btreeset wraps third-party btrees behind one ordered set interface, for comparing
// against and benchmarking orderedset.Set.
package btreeset

import (
	"iter"

	g "github.com/anacrolix/generics"
)

type CompareFunc[K any] func(a, b K) int

type Interface[K any] interface {
	// Returns true if key wasn't already present.
	Insert(key K) (inserted bool)
	Delete(key K) (removed bool)
	Contains(key K) bool
	Len() int
	Iter(yield func(K) bool)
	IterFrom(gte K) iter.Seq[K]
	GetGte(gte K) g.Option[K]
}

// Constructs an empty set ordered by cmp.
type Maker[K any] func(cmp CompareFunc[K]) Interface[K]

type Backend[K any] struct {
	Name string
	Make Maker[K]
}

func Backends[K any]() []Backend[K] {
	return []Backend[K]{
		{"anacrolix", MakeAnacrolix[K]},
		{"ajwerner", MakeAjwerner[K]},
		{"tidwall", MakeTidwall[K]},
		{"google", MakeGoogle[K]},
	}
}

// Gets the first key greater than key, using IterFrom.
func GetGt[K any](s Interface[K], cmp CompareFunc[K], key K) (ret g.Option[K]) {
	for k := range s.IterFrom(key) {
		if cmp(k, key) > 0 {
			ret.Set(k)
			return
		}
	}
	return
}
