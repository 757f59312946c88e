package images

import (
	"runtime"
	"sync"
)

// Parallel splits [0, dataSize) into one contiguous part per CPU and runs fn on each
// part concurrently. It returns once every part is done. Small inputs run on the
// calling goroutine.
//
// Arguments:
// - dataSize: The number of items, e.g. grid rows.
// - fn: Processes items [partStart, partEnd). Parts never overlap.
//
// Example:
//
//	Parallel(height, func(start, end int) {
//	    for y := start; y < end; y++ {
//	        // Process row y
//	    }
//	})
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()

	if dataSize < numGoroutines*parallelMinRowsPerCPU {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize
		// Last part takes the remainder.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}
	wg.Wait()
}

// parallelMinRowsPerCPU keeps small grids on one goroutine.
const parallelMinRowsPerCPU = 64
