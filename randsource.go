package randsource

import (
	"math"
	"math/rand/v2"
)

// Source is the sampling surface shared by *RandomSource and
// *SharedRandomSource.
//
// The generic helpers in this package (FillInt, Shuffle, Item, ...) accept
// any Source, so they work over both the unsynchronized and the
// mutex-guarded generator.
type Source interface {
	// IntN returns a uniform random int in [0, n). It panics when n <= 0.
	IntN(n int) int
	// Int64N returns a uniform random int64 in [0, n). It panics when n <= 0.
	Int64N(n int64) int64
	// Uint64N returns a uniform random uint64 in [0, n). It panics when n == 0.
	Uint64N(n uint64) uint64
	// Uint64 returns a uniform random 64-bit value.
	Uint64() uint64
	// Float64 returns a uniform random float64 in [0, 1).
	Float64() float64
	// Shuffle pseudo-randomizes the order of n elements through swap.
	Shuffle(n int, swap func(i, j int))
}

var (
	_ Source = (*RandomSource)(nil)
	_ Source = (*SharedRandomSource)(nil)
)

// RandomSource is a pseudo-random generator with uniform sampling helpers
// over explicit ranges.
//
// It is deterministic: two sources constructed with NewSeeded and the same
// seed return identical sequences for identical call sequences. It is not
// safe for concurrent use; wrap it in a SharedRandomSource, or use a
// SourcePool, for that.
//
// It is never suitable for security purposes. Use crypto/rand for those.
type RandomSource struct {
	rng *rand.Rand
}

// New returns a RandomSource seeded from the system entropy source.
//
// Construction never fails; see GetSeed for the fallback behavior when the
// entropy source is unavailable.
func New() *RandomSource {
	return NewSeeded(GetSeed())
}

// NewSeeded returns a RandomSource seeded with the given seed.
func NewSeeded(seed uint64) *RandomSource {
	return &RandomSource{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Next returns a uniform random uint32 in the closed interval [0, max].
func (r *RandomSource) Next(max uint32) uint32 {
	return uint32(r.rng.Uint64N(uint64(max) + 1))
}

// NextInt returns a uniform random int in the closed interval [min, max].
// Both endpoints are possible results.
//
// It panics when min > max.
func (r *RandomSource) NextInt(min, max int) int {
	if min > max {
		panic("randsource: NextInt called with min > max")
	}
	return min + int(spanDraw(r, uint64(max)-uint64(min)))
}

// NextInt64 returns a uniform random int64 in the closed interval
// [min, max].
//
// It panics when min > max.
func (r *RandomSource) NextInt64(min, max int64) int64 {
	if min > max {
		panic("randsource: NextInt64 called with min > max")
	}
	return min + int64(spanDraw(r, uint64(max)-uint64(min)))
}

// NextReal returns a uniform random float64 in [min, max).
//
// The upper bound is exclusive, inherited from Float64. A result equal to
// max can still occur through floating-point rounding when max-min is not
// exactly representable.
//
// It panics when min > max.
func (r *RandomSource) NextReal(min, max float64) float64 {
	if min > max {
		panic("randsource: NextReal called with min > max")
	}
	return min + r.rng.Float64()*(max-min)
}

// NextUnit returns a uniform random float64 in [0, 1).
func (r *RandomSource) NextUnit() float64 {
	return r.rng.Float64()
}

// IntN implements Source.
func (r *RandomSource) IntN(n int) int {
	return r.rng.IntN(n)
}

// Int64N implements Source.
func (r *RandomSource) Int64N(n int64) int64 {
	return r.rng.Int64N(n)
}

// Uint64N implements Source.
func (r *RandomSource) Uint64N(n uint64) uint64 {
	return r.rng.Uint64N(n)
}

// Uint64 implements Source.
func (r *RandomSource) Uint64() uint64 {
	return r.rng.Uint64()
}

// Float64 implements Source.
func (r *RandomSource) Float64() float64 {
	return r.rng.Float64()
}

// Shuffle pseudo-randomizes the order of n elements through the given swap
// function, using the Fisher–Yates algorithm: every one of the n!
// permutations is equally likely.
//
// n of 0 or 1 is a no-op; negative n panics.
func (r *RandomSource) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}

// Perm returns a uniform random permutation of the integers [0, n).
func (r *RandomSource) Perm(n int) []int {
	return r.rng.Perm(n)
}

// spanDraw returns a uniform random value in the closed interval
// [0, span]. Computing the span as uint64(max)-uint64(min) wraps correctly
// for signed bounds, and the full-width span cannot go through Uint64N
// because span+1 would overflow to 0.
func spanDraw(src Source, span uint64) uint64 {
	if span == math.MaxUint64 {
		return src.Uint64()
	}
	return src.Uint64N(span + 1)
}
