package service

import (
	"math/rand/v2"
	"time"
)

// BackoffPolicy returns the delay before re-reading after a lost attempt.
// attempt is 1-based and names the attempt that just failed.
type BackoffPolicy func(attempt uint) time.Duration

// JitterBackoff picks a uniformly random delay in (0, window], where the
// window starts at base and doubles per failed attempt up to max. Full jitter
// keeps contending writers from colliding again on the same schedule.
func JitterBackoff(base, max time.Duration) BackoffPolicy {
	return func(attempt uint) time.Duration {
		window := base << (attempt - 1)
		if window <= 0 || window > max {
			window = max
		}
		return time.Duration(rand.Int64N(int64(window))) + 1
	}
}
