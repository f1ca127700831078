package randsource

import (
	"golang.org/x/exp/constraints"
)

// FillInt overwrites every element of s with an independent uniform draw
// from the closed interval [min, max]. The length of s is unchanged.
//
// It panics when min > max.
func FillInt[T constraints.Integer](src Source, s []T, min, max T) {
	if min > max {
		panic("randsource: FillInt called with min > max")
	}
	// Wraps correctly for signed T, see spanDraw.
	span := uint64(max) - uint64(min)
	for i := range s {
		s[i] = min + T(spanDraw(src, span))
	}
}

// FillReal overwrites every element of s with an independent uniform draw
// from [min, max). The length of s is unchanged.
//
// It panics when min > max.
func FillReal[T constraints.Float](src Source, s []T, min, max T) {
	if min > max {
		panic("randsource: FillReal called with min > max")
	}
	for i := range s {
		s[i] = min + T(src.Float64())*(max-min)
	}
}

// FillUnit overwrites every element of s with an independent uniform draw
// from [0, 1).
func FillUnit[T constraints.Float](src Source, s []T) {
	for i := range s {
		s[i] = T(src.Float64())
	}
}
