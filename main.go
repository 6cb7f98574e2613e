package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/rigel/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rigel"
	app.Usage = "render scenes using a recursive monte carlo ray tracer"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Parse a scene definition and render it to a still frame by distributing
pixel rows over a pool of render workers.

The scene argument accepts a local file, a http(s) url or "-" to read the
definition from stdin. Rendered frames are saved as png or ppm depending on
the --out extension; pass --out - to stream ppm data to stdout.`,
			ArgsUsage: "scene_file",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width in pixels",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Value: 16.0 / 9.0,
					Usage: "frame aspect ratio (width over height)",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 50,
					Usage: "max ray bounces before a path is terminated",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 selects one per cpu core)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for the render sampler",
				},
				cli.Float64Flag{
					Name:  "fov",
					Value: 20,
					Usage: "vertical field of view in degrees (overrides the scene camera)",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Value: 0.1,
					Usage: "lens aperture diameter (overrides the scene camera)",
				},
				cli.Float64Flag{
					Name:  "focus-dist",
					Value: 10,
					Usage: "distance to the focus plane (overrides the scene camera)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "info",
			Usage:     "display statistics for a scene",
			ArgsUsage: "scene_file",
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:      "convert",
			Usage:     "convert a scene between the yaml and json formats",
			ArgsUsage: "scene_file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "-",
					Usage: "output scene filename (- writes yaml to stdout)",
				},
			},
			Action: cmd.ConvertScene,
		},
		{
			Name:  "generate",
			Usage: "generate a random sphere field scene",
			Description: `
Generate the random sphere field scene: a large ground sphere, a grid of
small spheres with randomized materials and three large feature spheres.
The definition can be piped straight into the render command:

   rigel generate | rigel render -`,
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for the scene sampler",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "-",
					Usage: "output scene filename (- writes yaml to stdout)",
				},
			},
			Action: cmd.GenerateScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
