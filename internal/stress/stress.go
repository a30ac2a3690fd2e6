// Package stress holds the synthetic CPU and memory workload generators
// behind the stress endpoints.
package stress

import (
	"errors"
	"runtime"
	"time"
)

// MaxMemoryMB caps memory stress allocations.
const MaxMemoryMB = 100

var ErrTooLarge = errors.New("allocation size too large")

// CPU sums i*i with wrapping 64-bit arithmetic for i in [0, iterations)
// and returns the checksum with the elapsed wall-clock time. Returning
// the checksum keeps the loop from being optimized away; the result is
// deterministic for a given iteration count.
func CPU(iterations uint64) (uint64, time.Duration) {
	start := time.Now()
	var result uint64
	for i := uint64(0); i < iterations; i++ {
		result += i * i
	}
	return result, time.Since(start)
}

// Memory allocates sizeMB mebibytes of zeroed memory and releases it
// before returning. The elapsed time spans allocation through release.
func Memory(sizeMB int) (int, time.Duration, error) {
	if sizeMB < 0 || sizeMB > MaxMemoryMB {
		return 0, 0, ErrTooLarge
	}

	start := time.Now()
	buf := make([]byte, sizeMB*1024*1024)
	allocated := len(buf)
	buf = nil
	runtime.GC()
	return allocated, time.Since(start), nil
}
