package core

import "math"

// AddDistance returns a+b for non-negative distances, or (math.MaxInt64, false)
// when the sum does not fit in an int64.
func AddDistance(a, b int64) (int64, bool) {
	if b > math.MaxInt64-a {
		return math.MaxInt64, false
	}

	return a + b, true
}
