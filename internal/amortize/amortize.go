// Package amortize spreads expensive checks out over time: a check succeeds on the 1st, 2nd, 4th,
// 8th... attempt, so running it costs O(log n) over n attempts.
package amortize

import (
	"math/bits"
)

// Counts attempts for a single owner, such as a container that isn't safe for concurrent use. The
// zero value is ready, and its first attempt succeeds.
type Value struct {
	attempts uint
}

func (me *Value) Try() bool {
	me.attempts++
	return bits.OnesCount(me.attempts) == 1
}

// Starts over, so the next attempt succeeds.
func (me *Value) Reset() {
	me.attempts = 0
}
