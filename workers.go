package mdsite

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one page is converted at a time.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing; conversion is CPU-bound and gains
	// little beyond this.
	MaxWorkers = 16
)

// ResolveWorkers determines how many pages to convert in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
