package task

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool(t *testing.T) {
	t.Run("Runs Every Job", func(t *testing.T) {
		pool := NewWorkerPool(4)
		defer pool.Stop()

		var counter int64
		for i := 0; i < 100; i++ {
			pool.Submit(func() {
				atomic.AddInt64(&counter, 1)
			})
		}
		pool.Wait()
		if counter != 100 {
			t.Errorf("ran %d jobs, want 100", counter)
		}
	})

	t.Run("Wait Blocks Until Done", func(t *testing.T) {
		pool := NewWorkerPool(2)
		defer pool.Stop()

		results := make([]int64, 8)
		for i := range results {
			i := i
			pool.Submit(func() {
				atomic.StoreInt64(&results[i], 1)
			})
		}
		pool.Wait()
		for i := range results {
			if atomic.LoadInt64(&results[i]) != 1 {
				t.Errorf("job %d had not finished when Wait returned", i)
			}
		}
	})

	t.Run("Defaults To CPU Count", func(t *testing.T) {
		pool := NewWorkerPool(0)
		defer pool.Stop()
		if pool.NumWorkers() < 1 {
			t.Errorf("pool size = %d, want at least 1", pool.NumWorkers())
		}
	})

	t.Run("Stop Is Idempotent", func(t *testing.T) {
		pool := NewWorkerPool(1)
		pool.Stop()
		pool.Stop()
	})

	t.Run("Usable Across Waves", func(t *testing.T) {
		pool := NewWorkerPool(3)
		defer pool.Stop()

		var counter int64
		for wave := 0; wave < 3; wave++ {
			for i := 0; i < 10; i++ {
				pool.Submit(func() { atomic.AddInt64(&counter, 1) })
			}
			pool.Wait()
		}
		if counter != 30 {
			t.Errorf("ran %d jobs across waves, want 30", counter)
		}
	})
}
