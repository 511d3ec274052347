package orderedset

import (
	"os"
	"strconv"

	"github.com/anacrolix/missinggo/v2/panicif"
	"golang.org/x/exp/constraints"
)

// Sets created after init validate themselves periodically when ORDEREDSET_CHECKS is non-zero.
var defaultChecks = intFromEnv("ORDEREDSET_CHECKS", 0, 8) != 0

func intFromEnv[T constraints.Integer](key string, defaultValue T, bitSize int) T {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	i64, err := strconv.ParseInt(s, 0, bitSize)
	panicif.Err(err)
	return T(i64)
}
