package fractal

import (
	"runtime"
	"sync"
)

// serialRowLimit is the grid height below which the goroutine fan-out costs
// more than it saves.
const serialRowLimit = 16

// forEachRow partitions the row range [0, rows) across worker goroutines.
// Each row is visited by exactly one worker, so fn may write per-row state
// without synchronization.
func forEachRow(rows int, fn func(start, end int)) {
	if rows < serialRowLimit {
		fn(0, rows)
		return
	}

	workers := runtime.NumCPU()
	chunkSize := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= rows {
			break
		}
		end := start + chunkSize
		if end > rows {
			end = rows
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}

	wg.Wait()
}
