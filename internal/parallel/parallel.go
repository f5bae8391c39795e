// Package parallel splits elementwise array kernels across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a kernel is split.
type Config struct {
	Workers  int // Upper bound on goroutines; <= 1 runs inline.
	MinChunk int // Minimum elements per goroutine.
}

// DefaultConfig returns one worker per CPU and chunks large enough that
// small arrays never leave the calling goroutine.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: 4096,
	}
}

// Chunks returns the number of ranges For will split n elements into.
func (c Config) Chunks(n int) int {
	if n <= 0 {
		return 0
	}
	if c.Workers <= 1 || n < 2*c.MinChunk {
		return 1
	}
	return min(c.Workers, n/max(c.MinChunk, 1))
}

// For calls f over consecutive half-open ranges covering [0, n). The ranges
// are disjoint, so f may write to its own slice positions without locking.
// For returns after every call has finished.
func For(n int, cfg Config, f func(lo, hi int)) {
	chunks := cfg.Chunks(n)
	switch chunks {
	case 0:
		return
	case 1:
		f(0, n)
		return
	}

	size := (n + chunks - 1) / chunks
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		lo := lo
		wg.Add(1)
		go func() {
			defer wg.Done()
			f(lo, hi)
		}()
	}
	wg.Wait()
}
