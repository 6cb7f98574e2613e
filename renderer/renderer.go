package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/tracer"
	"github.com/achilleasa/rigel/types"
)

type Renderer interface {
	// Render the frame.
	Render() (*Frame, error)

	// Get render statistics for the last frame.
	Stats() FrameStats
}

// A single frame pixel in 8-bit RGB form, as streamed by a render worker.
type pixel struct {
	r, g, b uint8
}

type defaultRenderer struct {
	sc        *scene.Scene
	scheduler tracer.RowScheduler
	options   Options

	stats FrameStats
}

// Create a new renderer that traces the scene on a pool of CPU workers.
// The scene camera must be set up before the renderer is created.
func NewDefault(sc *scene.Scene, scheduler tracer.RowScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW < 1 || opts.FrameH < 1 {
		return nil, ErrInvalidFrameDims
	}
	if opts.SamplesPerPixel < 1 {
		return nil, ErrInvalidSampleCount
	}
	if opts.NumWorkers < 1 {
		opts.NumWorkers = runtime.NumCPU()
	}

	return &defaultRenderer{
		sc:        sc,
		scheduler: scheduler,
		options:   opts,
	}, nil
}

// Render the frame.
//
// Frame rows are dealt to a fixed pool of workers by the attached scheduler
// and each worker streams finished pixels into its own channel. The
// collector walks rows from the top of the frame downwards draining exactly
// one row's worth of pixels from the owning worker's channel, so the frame
// assembles in scanline order no matter how the workers interleave.
func (r *defaultRenderer) Render() (*Frame, error) {
	var (
		frameW     = r.options.FrameW
		frameH     = r.options.FrameH
		numWorkers = r.options.NumWorkers
	)

	rowAssignments := r.scheduler.Schedule(numWorkers, frameH)

	outs := make([]chan pixel, numWorkers)
	for w := 0; w < numWorkers; w++ {
		outs[w] = make(chan pixel, frameW)
	}

	workerStats := make([]WorkerStat, numWorkers)

	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int, rows []int, out chan<- pixel) {
			defer wg.Done()
			defer close(out)

			// Each worker owns a seeded rng stream so renders are
			// reproducible for a fixed seed and worker count.
			rng := rand.New(rand.NewSource(r.options.Seed + int64(workerID)))
			tr := tracer.New(r.sc.World, tracer.SkyGradient, r.options.MaxDepth, rng)

			workerStart := time.Now()
			for _, j := range rows {
				r.renderRow(tr, rng, j, out)
			}

			workerStats[workerID] = WorkerStat{
				Id:           workerID,
				Rows:         len(rows),
				FramePercent: float32(len(rows)) / float32(frameH) * 100.0,
				RenderTime:   time.Since(workerStart),
			}
		}(w, rowAssignments[w], outs[w])
	}

	frame := NewFrame(frameW, frameH)
	offset := 0
	for j := frameH - 1; j >= 0; j-- {
		out := outs[j%numWorkers]
		for i := 0; i < frameW; i++ {
			px := <-out
			frame.Pix[offset] = px.r
			frame.Pix[offset+1] = px.g
			frame.Pix[offset+2] = px.b
			offset += 3
		}
	}

	wg.Wait()
	r.stats = FrameStats{
		Workers:    workerStats,
		RenderTime: time.Since(start),
	}

	return frame, nil
}

func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Render a single frame row, streaming quantized pixels to out.
func (r *defaultRenderer) renderRow(tr *tracer.Tracer, rng *rand.Rand, j int, out chan<- pixel) {
	var (
		frameW  = r.options.FrameW
		frameH  = r.options.FrameH
		samples = r.options.SamplesPerPixel
		cam     = r.sc.Camera
	)

	for i := 0; i < frameW; i++ {
		var sum types.Color
		for s := 0; s < samples; s++ {
			u := (float64(i) + rng.Float64()) / float64(frameW-1)
			v := (float64(j) + rng.Float64()) / float64(frameH-1)
			sum = sum.Add(tr.Trace(cam.GetRay(u, v, rng)))
		}
		out <- quantize(sum, samples)
	}
}

// Average the accumulated samples and quantize to 8 bits per channel.
func quantize(sum types.Color, samples int) pixel {
	scale := 1.0 / float64(samples)
	return pixel{
		r: quantizeChannel(sum[0] * scale),
		g: quantizeChannel(sum[1] * scale),
		b: quantizeChannel(sum[2] * scale),
	}
}

// Apply the gamma 2 tone curve and clamp to the 8-bit channel range.
func quantizeChannel(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	v = math.Sqrt(v)
	if v > 0.999 {
		v = 0.999
	}
	return uint8(256.0 * v)
}
