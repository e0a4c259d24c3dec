// Package num provides numeric helpers that work across Go's built-in
// number types.
package num

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Random returns a uniformly distributed integer in [min, max], both
// bounds inclusive. The bounds are swapped when min > max.
//
//	num.Random(1, 6)               // a die roll
//	num.Random[uint8](0, 255)      // any byte
func Random[T constraints.Integer](min, max T) T {
	if min > max {
		min, max = max, min
	}
	// Work in uint64 so that spans wider than int64 (or the full uint64
	// range) neither overflow nor bias the draw.
	span := uint64(max) - uint64(min)
	if span == ^uint64(0) {
		return T(rand.Uint64())
	}
	return min + T(rand.Uint64N(span+1))
}

// RandomFloat returns a uniformly distributed float in [min, max). The
// bounds are swapped when min > max; equal bounds return min.
func RandomFloat[T constraints.Float](min, max T) T {
	if min > max {
		min, max = max, min
	}
	return min + T(rand.Float64())*(max-min)
}
