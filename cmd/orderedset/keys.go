package main

import (
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"
)

type keyOrder string

const (
	randomOrder  keyOrder = "random"
	sortedOrder  keyOrder = "sorted"
	reverseOrder keyOrder = "reverse"
)

func (me *keyOrder) UnmarshalText(b []byte) error {
	switch o := keyOrder(b); o {
	case randomOrder, sortedOrder, reverseOrder:
		*me = o
		return nil
	default:
		return errors.Errorf("unknown key order %q", b)
	}
}

// Returns n distinct keys in the given order.
func makeKeys(n int, order keyOrder, seed uint64) []int {
	switch order {
	case sortedOrder:
		ret := make([]int, n)
		for i := range ret {
			ret[i] = i
		}
		return ret
	case reverseOrder:
		ret := makeKeys(n, sortedOrder, seed)
		slices.Reverse(ret)
		return ret
	default:
		return rand.New(rand.NewPCG(seed, 0)).Perm(n)
	}
}
