package renderer

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/tracer"
	"github.com/achilleasa/rigel/types"
)

func TestNewDefaultValidation(t *testing.T) {
	type spec struct {
		sc       *scene.Scene
		opts     Options
		expError error
	}

	validOpts := Options{FrameW: 8, FrameH: 8, SamplesPerPixel: 1, MaxDepth: 5}

	noCamera := scene.NewScene()
	ready := scene.NewScene()
	ready.SetupCamera(1)

	specs := []spec{
		spec{nil, validOpts, ErrSceneNotDefined},
		spec{noCamera, validOpts, ErrCameraNotDefined},
		spec{ready, Options{FrameW: 0, FrameH: 8, SamplesPerPixel: 1}, ErrInvalidFrameDims},
		spec{ready, Options{FrameW: 8, FrameH: 0, SamplesPerPixel: 1}, ErrInvalidFrameDims},
		spec{ready, Options{FrameW: 8, FrameH: 8, SamplesPerPixel: 0}, ErrInvalidSampleCount},
		spec{ready, validOpts, nil},
	}

	for index, s := range specs {
		_, err := NewDefault(s.sc, tracer.NewInterleavedScheduler(), s.opts)
		if err != s.expError {
			t.Fatalf("[spec %d] expected to get %v; got %v", index, s.expError, err)
		}
	}
}

func TestRenderIsDeterministicForFixedSeed(t *testing.T) {
	opts := Options{
		FrameW:          16,
		FrameH:          12,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		NumWorkers:      3,
		Seed:            99,
	}

	frame1 := renderTestScene(t, opts)
	frame2 := renderTestScene(t, opts)

	if !bytes.Equal(frame1.Pix, frame2.Pix) {
		t.Fatal("expected identical frames for a fixed seed and worker count")
	}

	opts.Seed = 100
	frame3 := renderTestScene(t, opts)
	if bytes.Equal(frame1.Pix, frame3.Pix) {
		t.Fatal("expected a different seed to change the frame")
	}
}

func TestRenderEmptySceneProducesSkyGradient(t *testing.T) {
	sc := scene.NewScene()
	sc.Config = scene.CameraConfig{
		LookFrom:  types.XYZ(0, 0, 0),
		LookAt:    types.XYZ(0, 0, -1),
		Up:        types.XYZ(0, 1, 0),
		FOV:       90,
		Aperture:  0,
		FocusDist: 1,
	}
	sc.SetupCamera(1)

	r, err := NewDefault(sc, tracer.NewInterleavedScheduler(), Options{
		FrameW:          8,
		FrameH:          8,
		SamplesPerPixel: 1,
		MaxDepth:        5,
		NumWorkers:      2,
		Seed:            1,
	})
	if err != nil {
		t.Fatal(err)
	}

	frame, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}

	// Sky colors interpolate between white and light blue, so the blue
	// channel saturates everywhere and red never exceeds green.
	for i := 0; i < len(frame.Pix); i += 3 {
		red, green, blue := frame.Pix[i], frame.Pix[i+1], frame.Pix[i+2]
		if blue != 255 {
			t.Fatalf("expected saturated blue channel at offset %d; got %d", i, blue)
		}
		if red > green {
			t.Fatalf("expected red <= green at offset %d; got %d > %d", i, red, green)
		}
	}

	// The top image row looks towards the zenith and must be bluer
	// (less red) than the bottom row.
	topRed := int(frame.Pix[0])
	bottomRed := int(frame.Pix[(frame.H-1)*frame.W*3])
	if topRed >= bottomRed {
		t.Fatalf("expected the gradient to darken towards the top; got top %d, bottom %d", topRed, bottomRed)
	}
}

func TestRenderStats(t *testing.T) {
	opts := Options{
		FrameW:          16,
		FrameH:          12,
		SamplesPerPixel: 2,
		MaxDepth:        5,
		NumWorkers:      3,
		Seed:            7,
	}
	sc := makeTestScene()

	r, err := NewDefault(sc, tracer.NewInterleavedScheduler(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = r.Render(); err != nil {
		t.Fatal(err)
	}

	stats := r.Stats()
	if len(stats.Workers) != opts.NumWorkers {
		t.Fatalf("expected stats for %d workers; got %d", opts.NumWorkers, len(stats.Workers))
	}

	totalRows := 0
	for _, ws := range stats.Workers {
		totalRows += ws.Rows
	}
	if totalRows != opts.FrameH {
		t.Fatalf("expected workers to cover all %d rows; got %d", opts.FrameH, totalRows)
	}
	if stats.RenderTime <= 0 {
		t.Fatalf("expected a positive render time; got %s", stats.RenderTime)
	}
}

func TestRenderDefaultsWorkerCountToNumCPU(t *testing.T) {
	sc := makeTestScene()
	r, err := NewDefault(sc, tracer.NewInterleavedScheduler(), Options{
		FrameW:          8,
		FrameH:          8,
		SamplesPerPixel: 1,
		MaxDepth:        5,
		Seed:            1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = r.Render(); err != nil {
		t.Fatal(err)
	}

	if got := len(r.Stats().Workers); got != runtime.NumCPU() {
		t.Fatalf("expected one worker per logical CPU (%d); got %d", runtime.NumCPU(), got)
	}
}

func TestQuantizeChannel(t *testing.T) {
	type spec struct {
		in  float64
		exp uint8
	}
	specs := []spec{
		spec{0, 0},
		// Gamma 2 maps linear 0.25 to half intensity.
		spec{0.25, 128},
		spec{1, 255},
		// Out of range values clamp instead of wrapping.
		spec{-1, 0},
		spec{4, 255},
	}

	for index, s := range specs {
		if got := quantizeChannel(s.in); got != s.exp {
			t.Fatalf("[spec %d] expected channel value %d; got %d", index, s.exp, got)
		}
	}
}

func TestQuantizeAveragesSamples(t *testing.T) {
	// Four samples summing to linear (1, 1, 1) average to 0.25 per
	// channel, which the tone curve maps to half intensity.
	sum := types.RGB(1, 1, 1)
	px := quantize(sum, 4)
	if px.r != 128 || px.g != 128 || px.b != 128 {
		t.Fatalf("expected half intensity pixel; got (%d, %d, %d)", px.r, px.g, px.b)
	}
}

func makeTestScene() *scene.Scene {
	sc := scene.NewScene()
	sc.Add(
		scene.NewSphere(types.XYZ(0, -1000.5, -1), 1000, scene.NewLambertian(types.RGB(0.8, 0.8, 0))),
		scene.NewSphere(types.XYZ(0, 0, -1), 0.5, scene.NewLambertian(types.RGB(0.1, 0.2, 0.5))),
		scene.NewSphere(types.XYZ(1, 0, -1), 0.5, scene.NewMetal(types.RGB(0.8, 0.6, 0.2), 0.1)),
		scene.NewSphere(types.XYZ(-1, 0, -1), 0.5, scene.NewDielectric(1.5)),
	)
	sc.Config = scene.CameraConfig{
		LookFrom:     types.XYZ(0, 0, 1),
		LookAt:       types.XYZ(0, 0, -1),
		Up:           types.XYZ(0, 1, 0),
		FOV:          60,
		Aperture:     0.05,
		FocusDist:    2,
		ShutterOpen:  0,
		ShutterClose: 1,
	}
	sc.SetupCamera(16.0 / 12.0)
	return sc
}

func renderTestScene(t *testing.T, opts Options) *Frame {
	t.Helper()

	r, err := NewDefault(makeTestScene(), tracer.NewInterleavedScheduler(), opts)
	if err != nil {
		t.Fatal(err)
	}
	frame, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	return frame
}
