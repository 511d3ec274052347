package main

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/anacrolix/log"
	"github.com/anacrolix/multiless"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/anacrolix/orderedset"
	"github.com/anacrolix/orderedset/internal/btreeset"
)

type BenchCmd struct {
	Keys     int      `default:"10000" help:"number of distinct keys"`
	Order    keyOrder `default:"random" help:"insertion order: random, sorted or reverse"`
	Seed     uint64   `default:"1" arg:"env:ORDEREDSET_SEED"`
	Backends []string `help:"btree backends to compare against, all if none given"`
}

// The operations a benchmarked set has to support.
type benchSet interface {
	Insert(int) bool
	Contains(int) bool
	Delete(int) bool
}

type bstBenchSet struct {
	*orderedset.Set[int]
}

func (me bstBenchSet) Insert(k int) bool {
	_, inserted := me.Set.Insert(k)
	return inserted
}

type benchResult struct {
	impl    string
	phase   string
	elapsed time.Duration
	ops     int
}

func (me benchResult) String() string {
	perOp := me.elapsed / time.Duration(max(me.ops, 1))
	return fmt.Sprintf("%-10s %-8s %14v %10v/op %12s",
		me.impl, me.phase, me.elapsed, perOp,
		humanize.SI(float64(me.ops)/me.elapsed.Seconds(), "op/s"))
}

func compareBenchResults(a, b benchResult) int {
	return multiless.New().Cmp(
		strings.Compare(a.phase, b.phase),
	).Int64(
		int64(a.elapsed), int64(b.elapsed),
	).OrderingInt()
}

func selectBackends(names []string) (ret []btreeset.Backend[int], err error) {
	all := btreeset.Backends[int]()
	if len(names) == 0 {
		return all, nil
	}
	for _, name := range names {
		i := slices.IndexFunc(all, func(b btreeset.Backend[int]) bool {
			return b.Name == name
		})
		if i == -1 {
			return nil, errors.Errorf("unknown backend %q", name)
		}
		ret = append(ret, all[i])
	}
	return
}

func runBench(impl string, s benchSet, keys []int) (results []benchResult, err error) {
	phase := func(name string, op func(k int) bool) error {
		started := time.Now()
		for _, k := range keys {
			if !op(k) {
				return errors.Errorf("%v: %v failed for key %v", impl, name, k)
			}
		}
		results = append(results, benchResult{impl, name, time.Since(started), len(keys)})
		return nil
	}
	for _, p := range []struct {
		name string
		op   func(int) bool
	}{
		{"insert", s.Insert},
		{"find", s.Contains},
		{"delete", s.Delete},
	} {
		if err = phase(p.name, p.op); err != nil {
			return
		}
	}
	return
}

func benchErr(cmd *BenchCmd) error {
	if cmd.Keys <= 0 {
		return errors.New("keys must be positive")
	}
	backends, err := selectBackends(cmd.Backends)
	if err != nil {
		return err
	}
	keys := makeKeys(cmd.Keys, cmd.Order, cmd.Seed)
	logger.Levelf(log.Info, "benchmarking %s keys in %v order", humanize.Comma(int64(len(keys))), cmd.Order)
	if cmd.Order != randomOrder && cmd.Keys > 20_000 {
		logger.Levelf(log.Warning, "%v order builds a chain, expect quadratic time for the bst", cmd.Order)
	}
	bst := orderedset.NewOrdered[int]()
	var results []benchResult
	bstResults, err := runBench("bst", bstBenchSet{bst}, keys)
	if err != nil {
		return err
	}
	results = append(results, bstResults...)
	for _, b := range backends {
		logger.Levelf(log.Debug, "running %v", b.Name)
		r, err := runBench(b.Name, b.Make(cmp.Compare[int]), keys)
		if err != nil {
			return err
		}
		results = append(results, r...)
	}
	slices.SortStableFunc(results, compareBenchResults)
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}
