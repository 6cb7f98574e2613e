package tracer

// The RowScheduler interface is implemented by all row scheduling algorithms.
type RowScheduler interface {
	// Partition the frame rows among numWorkers workers.
	//
	// This function returns the ordered list of rows each worker should
	// render. Concatenating the row lists yields every row in [0, frameH)
	// exactly once.
	Schedule(numWorkers int, frameH int) [][]int
}

// The interleaved scheduler deals rows round-robin so that every worker
// receives a representative slice of the frame. Expensive regions (for
// example the horizon of a scene) are spread across the pool instead of
// landing on a single worker.
type interleavedScheduler struct {
}

// Create a new interleaved scheduler instance.
func NewInterleavedScheduler() RowScheduler {
	return &interleavedScheduler{}
}

// Partition the frame rows among numWorkers workers.
//
// Row j is assigned to worker j % numWorkers and each worker visits its
// rows from the top of the frame (j = frameH-1) downwards.
func (sch *interleavedScheduler) Schedule(numWorkers int, frameH int) [][]int {
	rows := make([][]int, numWorkers)
	for j := frameH - 1; j >= 0; j-- {
		w := j % numWorkers
		rows[w] = append(rows[w], j)
	}
	return rows
}
