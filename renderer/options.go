package renderer

type Options struct {
	// Frame dims.
	FrameW int
	FrameH int

	// Number of samples gathered per pixel.
	SamplesPerPixel int

	// Max number of ray bounces per sample.
	MaxDepth int

	// Number of render workers. Zero selects one worker per logical CPU.
	NumWorkers int

	// Base seed for the per-worker random number generators. Worker i
	// draws its samples from a generator seeded with Seed + i, so a
	// fixed seed and worker count reproduce a frame exactly.
	Seed int64
}
