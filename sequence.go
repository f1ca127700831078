package randsource

import (
	"errors"
)

// ErrEmptySource is returned by Item, Items, and ItemsInto when the source
// sequence has no elements to draw from.
var ErrEmptySource = errors.New("randsource: empty source sequence")

// Shuffle reorders the elements of s so that every permutation is equally
// likely. Slices of length 0 or 1 are left as-is.
func Shuffle[T any](src Source, s []T) {
	src.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Item returns one element of s chosen uniformly at random.
//
// It returns ErrEmptySource when s is empty.
func Item[T any](src Source, s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmptySource
	}
	return s[src.IntN(len(s))], nil
}

// Items returns count elements drawn independently from s with
// replacement: the same element may be chosen more than once. Callers that
// need distinct elements should Shuffle a copy and slice it instead.
//
// It returns ErrEmptySource when s is empty, and panics when count is
// negative.
func Items[T any](src Source, s []T, count int) ([]T, error) {
	if count < 0 {
		panic("randsource: Items called with negative count")
	}
	if len(s) == 0 {
		return nil, ErrEmptySource
	}
	out := make([]T, count)
	for i := range out {
		out[i] = s[src.IntN(len(s))]
	}
	return out, nil
}

// ItemsInto overwrites every element of dst with an element drawn
// independently from s with replacement. An empty dst is a silent no-op,
// even when s is also empty.
//
// It returns ErrEmptySource, leaving dst untouched, when s is empty and
// dst is not.
func ItemsInto[T any](src Source, s, dst []T) error {
	if len(dst) == 0 {
		return nil
	}
	if len(s) == 0 {
		return ErrEmptySource
	}
	for i := range dst {
		dst[i] = s[src.IntN(len(s))]
	}
	return nil
}
