package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/scene/reader"
	"github.com/achilleasa/rigel/scene/writer"
	"github.com/achilleasa/rigel/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display scene statistics.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	displaySceneStats(sc.Stats())
	displayCameraSettings(sc.Config)
	return nil
}

// Convert a scene between the yaml and json formats.
func ConvertScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	return writer.WriteScene(sc, ctx.String("out"))
}

// Generate a random sphere field scene and write out its definition.
func GenerateScene(ctx *cli.Context) error {
	setupLogging(ctx)

	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	sc := scene.Generate(rng)

	return writer.WriteScene(sc, ctx.String("out"))
}

func displaySceneStats(stats scene.SceneStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Element", "Count"})
	table.Append([]string{"static spheres", fmt.Sprintf("%d", stats.Spheres)})
	table.Append([]string{"moving spheres", fmt.Sprintf("%d", stats.MovingSpheres)})
	table.Append([]string{"diffuse materials", fmt.Sprintf("%d", stats.Lambertians)})
	table.Append([]string{"metal materials", fmt.Sprintf("%d", stats.Metals)})
	table.Append([]string{"dielectric materials", fmt.Sprintf("%d", stats.Dielectrics)})
	table.SetFooter([]string{"TOTAL SURFACES", fmt.Sprintf("%d", stats.Surfaces())})

	table.Render()
	logger.Noticef("scene information\n%s", buf.String())
}

func displayCameraSettings(cfg scene.CameraConfig) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Camera setting", "Value"})
	table.Append([]string{"look from", fmtVec(cfg.LookFrom)})
	table.Append([]string{"look at", fmtVec(cfg.LookAt)})
	table.Append([]string{"up", fmtVec(cfg.Up)})
	table.Append([]string{"fov", fmt.Sprintf("%.1f deg", cfg.FOV)})
	table.Append([]string{"aperture", fmt.Sprintf("%.2f", cfg.Aperture)})
	table.Append([]string{"focus distance", fmt.Sprintf("%.2f", cfg.FocusDist)})
	table.Append([]string{"shutter interval", fmt.Sprintf("[%.2f, %.2f)", cfg.ShutterOpen, cfg.ShutterClose)})

	table.Render()
	logger.Noticef("camera settings\n%s", buf.String())
}

func fmtVec(v types.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
