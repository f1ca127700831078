// Package randsource provides seedable uniform random generators and
// helpers built on top of them:
//
// 1. RandomSource, a properly seeded pseudo-random generator owned by the
// caller, with uniform sampling over explicit integer and real ranges.
//
// 2. SharedRandomSource, a mutex decorator over one RandomSource making it
// safe for concurrent use, and SourcePool, the lock-free alternative that
// hands each caller an independent generator instead.
//
// 3. Generic fill, shuffle, and selection helpers working over any Source.
package randsource
