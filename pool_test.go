package randsource_test

import (
	"sync"
	"testing"

	"github.com/bitgloss/randsource"
)

func TestSourcePool(t *testing.T) {
	t.Run("get-put", func(t *testing.T) {
		pool := randsource.NewSourcePool()
		r := pool.Get()
		if r == nil {
			t.Fatal("Expected a source from an empty pool")
		}
		if got := r.NextInt(0, 9); got < 0 || got > 9 {
			t.Errorf("NextInt(0, 9) = %d, out of range", got)
		}
		pool.Put(r)
	})

	t.Run("concurrent", func(t *testing.T) {
		const (
			goroutines = 8
			draws      = 10000
		)

		pool := randsource.NewSourcePool()
		var wg sync.WaitGroup
		wg.Add(goroutines)
		for g := 0; g < goroutines; g++ {
			go func() {
				defer wg.Done()
				r := pool.Get()
				defer pool.Put(r)
				for i := 0; i < draws; i++ {
					if got := r.NextInt(0, 9); got < 0 || got > 9 {
						t.Errorf("NextInt(0, 9) = %d, out of range", got)
						return
					}
				}
			}()
		}
		wg.Wait()
	})
}
