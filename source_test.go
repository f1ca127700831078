package randsource_test

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/bitgloss/randsource"
)

func TestLockedSource(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := rand.New(randsource.NewLockedSource(12345))
		b := rand.New(randsource.NewLockedSource(12345))
		for i := 0; i < 100; i++ {
			if va, vb := a.Uint64(), b.Uint64(); va != vb {
				t.Fatalf("Draw %d: %d != %d", i, va, vb)
			}
		}
	})

	t.Run("concurrent", func(t *testing.T) {
		const (
			goroutines = 8
			draws      = 10000
		)

		r := rand.New(randsource.NewLockedSource(randsource.GetSeed()))
		var wg sync.WaitGroup
		wg.Add(goroutines)
		for g := 0; g < goroutines; g++ {
			go func() {
				defer wg.Done()
				for i := 0; i < draws; i++ {
					if got := r.IntN(10); got < 0 || got > 9 {
						t.Errorf("IntN(10) = %d, out of range", got)
						return
					}
				}
			}()
		}
		wg.Wait()
	})
}
