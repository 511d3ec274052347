package main

import (
	"io"
	"strconv"

	"github.com/anacrolix/log"
	"github.com/pkg/errors"

	"github.com/anacrolix/orderedset"
)

type DotCmd struct {
	Keys   []int  `arg:"positional" help:"keys to insert, in insertion order"`
	Random int    `help:"insert this many random keys instead"`
	Seed   uint64 `default:"1"`
}

func dotErr(cmd *DotCmd, w io.Writer) error {
	keys := cmd.Keys
	if cmd.Random > 0 {
		if len(keys) != 0 {
			return errors.New("can't give keys and --random together")
		}
		keys = makeKeys(cmd.Random, randomOrder, cmd.Seed)
	}
	s := orderedset.NewOrdered[int]()
	for _, k := range keys {
		if _, inserted := s.Insert(k); !inserted {
			logger.Levelf(log.Warning, "duplicate key %v ignored", k)
		}
	}
	logger.Levelf(log.Debug, "%v keys, height %v", s.Len(), s.Height())
	return errors.Wrap(s.WriteDot(w, strconv.Itoa), "rendering tree")
}
