package cavegrid

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ParseSeed maps a seed string to an integer seed. Decimal integers map to
// their value; any other string is hashed with xxhash.
func ParseSeed(s string) int64 {
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return n
	}
	return int64(xxhash.Sum64String(s))
}

// RandomSeed returns a seed string derived from the current time.
func RandomSeed() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
