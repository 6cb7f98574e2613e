package writer

import (
	"fmt"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/types"
)

// The serializable document form of a scene. Center and material values are
// emitted as the concrete document shape for each surface and material type
// so that parsers can discriminate them by key presence alone.
type sceneDoc struct {
	Camera  cameraDoc   `json:"camera" yaml:"camera"`
	Objects []objectDoc `json:"objects" yaml:"objects"`
}

type cameraDoc struct {
	LookFrom     pointDoc `json:"lookFrom" yaml:"lookFrom"`
	LookAt       pointDoc `json:"lookAt" yaml:"lookAt"`
	Up           pointDoc `json:"up" yaml:"up"`
	FOV          float64  `json:"fov" yaml:"fov"`
	Aperture     float64  `json:"aperture" yaml:"aperture"`
	FocusDist    float64  `json:"focusDist" yaml:"focusDist"`
	ShutterOpen  float64  `json:"shutterOpen" yaml:"shutterOpen"`
	ShutterClose float64  `json:"shutterClose" yaml:"shutterClose"`
}

type objectDoc struct {
	Center   interface{}  `json:"center" yaml:"center"`
	Time     *intervalDoc `json:"time,omitempty" yaml:"time,omitempty"`
	Radius   float64      `json:"radius" yaml:"radius"`
	Material interface{}  `json:"material" yaml:"material"`
}

type pointDoc struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

type spanDoc struct {
	Start pointDoc `json:"start" yaml:"start"`
	End   pointDoc `json:"end" yaml:"end"`
}

type intervalDoc struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

type colorDoc struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

type lambertianDoc struct {
	Albedo colorDoc `json:"albedo" yaml:"albedo"`
}

// Metal documents always carry a fuzz key, even when it is zero, as its
// presence is what tells a metal apart from a diffuse material.
type metalDoc struct {
	Albedo colorDoc `json:"albedo" yaml:"albedo"`
	Fuzz   float64  `json:"fuzz" yaml:"fuzz"`
}

type dielectricDoc struct {
	IR float64 `json:"ir" yaml:"ir"`
}

// Flatten a scene into its serializable document form.
func docFromScene(sc *scene.Scene) (sceneDoc, error) {
	doc := sceneDoc{
		Camera:  cameraDocFrom(sc.Config),
		Objects: make([]objectDoc, 0, len(sc.World)),
	}
	for index, surface := range sc.World {
		obj, err := objectDocFrom(surface)
		if err != nil {
			return sceneDoc{}, fmt.Errorf("writer: object %d: %v", index, err)
		}
		doc.Objects = append(doc.Objects, obj)
	}
	return doc, nil
}

func cameraDocFrom(cfg scene.CameraConfig) cameraDoc {
	return cameraDoc{
		LookFrom:     pointDocFrom(cfg.LookFrom),
		LookAt:       pointDocFrom(cfg.LookAt),
		Up:           pointDocFrom(cfg.Up),
		FOV:          cfg.FOV,
		Aperture:     cfg.Aperture,
		FocusDist:    cfg.FocusDist,
		ShutterOpen:  cfg.ShutterOpen,
		ShutterClose: cfg.ShutterClose,
	}
}

func objectDocFrom(surface scene.Surface) (objectDoc, error) {
	switch s := surface.(type) {
	case *scene.Sphere:
		mat, err := materialDocFrom(s.Mat)
		if err != nil {
			return objectDoc{}, err
		}
		return objectDoc{
			Center:   pointDocFrom(s.Center),
			Radius:   s.Radius,
			Material: mat,
		}, nil
	case *scene.MovingSphere:
		mat, err := materialDocFrom(s.Mat)
		if err != nil {
			return objectDoc{}, err
		}
		return objectDoc{
			Center: spanDoc{
				Start: pointDocFrom(s.CenterStart),
				End:   pointDocFrom(s.CenterEnd),
			},
			Time:     &intervalDoc{Start: s.TimeStart, End: s.TimeEnd},
			Radius:   s.Radius,
			Material: mat,
		}, nil
	default:
		return objectDoc{}, fmt.Errorf("unsupported surface type %T", surface)
	}
}

func materialDocFrom(mat scene.Material) (interface{}, error) {
	switch m := mat.(type) {
	case *scene.Lambertian:
		return lambertianDoc{Albedo: colorDocFrom(m.Albedo)}, nil
	case *scene.Metal:
		return metalDoc{Albedo: colorDocFrom(m.Albedo), Fuzz: m.Fuzz}, nil
	case *scene.Dielectric:
		return dielectricDoc{IR: m.IOR}, nil
	case nil:
		return nil, fmt.Errorf("missing material")
	default:
		return nil, fmt.Errorf("unsupported material type %T", mat)
	}
}

func pointDocFrom(v types.Vec3) pointDoc {
	return pointDoc{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func colorDocFrom(c types.Color) colorDoc {
	return colorDoc{R: c.X(), G: c.Y(), B: c.Z()}
}
