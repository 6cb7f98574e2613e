package renderer

import "time"

type WorkerStat struct {
	// The worker id.
	Id int

	// The number of rows assigned to this worker and the percentage of
	// the total frame area they represent.
	Rows         int
	FramePercent float32

	// Render time for the assigned rows.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for the entire frame.
	RenderTime time.Duration
}
