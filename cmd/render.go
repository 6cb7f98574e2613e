package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/rigel/renderer"
	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/scene/reader"
	"github.com/achilleasa/rigel/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}
	applyCameraOverrides(ctx, sc)

	aspect := ctx.Float64("aspect")
	if aspect <= 0 {
		return errors.New("aspect ratio must be positive")
	}

	opts := renderer.Options{
		FrameW:          ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}
	opts.FrameH = int(float64(opts.FrameW) / aspect)

	// The view transform uses the true frame aspect, which can drift from
	// the requested ratio after the frame height is truncated.
	sc.SetupCamera(float64(opts.FrameW) / float64(opts.FrameH))

	r, err := renderer.NewDefault(sc, tracer.NewInterleavedScheduler(), opts)
	if err != nil {
		return err
	}

	frame, err := r.Render()
	if err != nil {
		return err
	}

	if err = frame.Save(ctx.String("out")); err != nil {
		return err
	}

	displayFrameStats(r.Stats())
	return nil
}

// Camera flags passed on the command line override the scene file settings.
func applyCameraOverrides(ctx *cli.Context, sc *scene.Scene) {
	if ctx.IsSet("fov") {
		sc.Config.FOV = ctx.Float64("fov")
	}

	if ctx.IsSet("aperture") {
		sc.Config.Aperture = ctx.Float64("aperture")
	}

	if ctx.IsSet("focus-dist") {
		sc.Config.FocusDist = ctx.Float64("focus-dist")
	}
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", stat.Id),
			fmt.Sprintf("%d", stat.Rows),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
