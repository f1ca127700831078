package randsource

import (
	"math/rand/v2"
	"sync"
)

var _ rand.Source = (*LockedSource)(nil)

// LockedSource is a thread-safe implementation of rand/v2's Source.
//
// A *rand.Rand constructed on top of it is safe for concurrent use, since
// rand/v2's Rand keeps no state of its own outside the source. It is an
// alternative to SharedRandomSource for callers who want the full
// *rand.Rand surface rather than this package's.
type LockedSource struct {
	src  rand.Source
	lock sync.Mutex
}

// NewLockedSource creates a *LockedSource over a generator seeded with the
// given seed.
func NewLockedSource(seed uint64) *LockedSource {
	return &LockedSource{
		src: rand.NewPCG(seed, seed),
	}
}

// Uint64 implements rand.Source.
//
// It calls the underlying source's Uint64 with lock.
func (ls *LockedSource) Uint64() (n uint64) {
	ls.lock.Lock()
	n = ls.src.Uint64()
	ls.lock.Unlock()
	return
}
