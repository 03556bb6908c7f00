package dynamo

import (
	"sync"
	"testing"
)

func TestParallelForCoversRange(t *testing.T) {
	tests := []struct {
		name              string
		n, chunk, workers int
	}{
		{"inline", 10, 100, 8},
		{"even", 1000, 10, 4},
		{"uneven", 1001, 10, 7},
		{"single worker", 500, 1, 1},
		{"empty", 0, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int, tt.n)
			var mu sync.Mutex
			calls := 0

			ParallelFor(tt.n, tt.chunk, tt.workers, func(start, end int) {
				mu.Lock()
				calls++
				mu.Unlock()
				for i := start; i < end; i++ {
					hits[i]++
				}
			})

			for i, h := range hits {
				if h != 1 {
					t.Fatalf("index %d visited %d times", i, h)
				}
			}
			if calls > tt.workers {
				t.Errorf("%d chunks for %d workers", calls, tt.workers)
			}
		})
	}
}
