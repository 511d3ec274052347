package main

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"github.com/RoaringBitmap/roaring"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/anacrolix/orderedset"
	"github.com/anacrolix/orderedset/internal/amortize"
	"github.com/anacrolix/orderedset/internal/btreeset"
)

type CheckCmd struct {
	Ops      int    `default:"100000" help:"number of random operations"`
	KeySpace int    `default:"1000" help:"keys are drawn from [0, keyspace)"`
	Seed     uint64 `default:"1" arg:"env:ORDEREDSET_SEED"`
}

// Applies random inserts and erasures, mirroring them into a btree and a bitmap. The tree is
// validated at power-of-two op counts and at the end.
func checkErr(cmd *CheckCmd) error {
	if cmd.KeySpace <= 0 || uint64(cmd.KeySpace) > 1<<32 {
		return errors.New("keyspace must be in (0, 2^32]")
	}
	r := rand.New(rand.NewPCG(cmd.Seed, 0))
	s := orderedset.NewOrdered[int]()
	ref := btreeset.MakeTidwall(cmp.Compare[int])
	var bm roaring.Bitmap
	var validateFreq amortize.Value
	validate := func(op int) error {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "after op %v", op)
		}
		if s.Len() != ref.Len() {
			return errors.Errorf("after op %v: len %v, expected %v", op, s.Len(), ref.Len())
		}
		want := bm.ToArray()
		got := make([]uint32, 0, len(want))
		for k := range s.All() {
			got = append(got, uint32(k))
		}
		if !slices.Equal(got, want) {
			return errors.Errorf("after op %v: keys differ from bitmap", op)
		}
		return nil
	}
	for op := range cmd.Ops {
		k := r.IntN(cmd.KeySpace)
		switch r.IntN(3) {
		case 0, 1:
			_, inserted := s.Insert(k)
			bm.Add(uint32(k))
			if inserted != ref.Insert(k) {
				return errors.Errorf("op %v: insert %v returned %v", op, k, inserted)
			}
		default:
			// Erase the key at or after k, to exercise the returned successor.
			c := s.LowerBound(k)
			if c.IsEnd() {
				continue
			}
			erased := c.Key()
			next := s.Erase(c)
			bm.Remove(uint32(erased))
			if !ref.Delete(erased) {
				return errors.Errorf("op %v: erased %v, which wasn't present", op, erased)
			}
			want := btreeset.GetGt(ref, cmp.Compare[int], erased)
			if next.IsEnd() != !want.Ok || (want.Ok && next.Key() != want.Value) {
				return errors.Errorf("op %v: erase of %v returned wrong successor", op, erased)
			}
		}
		if validateFreq.Try() {
			if err := validate(op); err != nil {
				return err
			}
			logger.Levelf(log.Debug, "op %v: %v keys, height %v", op, s.Len(), s.Height())
		}
	}
	if err := validate(cmd.Ops); err != nil {
		return err
	}
	logger.Levelf(log.Info, "%s ops ok, %v keys, height %v", humanize.Comma(int64(cmd.Ops)), s.Len(), s.Height())
	return nil
}
