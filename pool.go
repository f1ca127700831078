package randsource

import (
	"sync"
)

// SourcePool hands out independent, entropy-seeded RandomSources, created
// lazily on first use.
//
// It is the lock-free alternative to SharedRandomSource: a source is owned
// exclusively by its caller between Get and Put, so draws need no
// synchronization, at the cost of one sequence per caller instead of a
// single global one.
type SourcePool struct {
	pool sync.Pool
}

// NewSourcePool creates an empty SourcePool.
func NewSourcePool() *SourcePool {
	return &SourcePool{
		pool: sync.Pool{
			New: func() interface{} {
				return New()
			},
		},
	}
}

// Get returns a RandomSource for the caller's exclusive use until it is
// handed back with Put.
func (p *SourcePool) Get() *RandomSource {
	return p.pool.Get().(*RandomSource)
}

// Put returns r to the pool.
//
// The caller must not use r after Put.
func (p *SourcePool) Put(r *RandomSource) {
	p.pool.Put(r)
}
