package reader

import (
	"fmt"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/types"
)

// The raw types mirror the structured scene format. Sphere and material
// kinds carry no explicit tag; they are discriminated by which fields are
// present, so optional fields decode through pointers.
type rawScene struct {
	Camera  *rawCamera  `json:"camera" yaml:"camera"`
	Objects []rawObject `json:"objects" yaml:"objects"`
}

type rawObject struct {
	Center   rawCenter    `json:"center" yaml:"center"`
	Time     *rawInterval `json:"time" yaml:"time"`
	Radius   float64      `json:"radius" yaml:"radius"`
	Material *rawMaterial `json:"material" yaml:"material"`
}

// A center is either a single point (static sphere) or a start/end pair
// (moving sphere).
type rawCenter struct {
	X *float64 `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
	Z *float64 `json:"z" yaml:"z"`

	Start *rawVec `json:"start" yaml:"start"`
	End   *rawVec `json:"end" yaml:"end"`
}

type rawInterval struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

type rawVec struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

type rawColor struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// A material with albedo and fuzz is a metal, with albedo alone a diffuse
// and with ir alone a dielectric.
type rawMaterial struct {
	Albedo *rawColor `json:"albedo,omitempty" yaml:"albedo,omitempty"`
	Fuzz   *float64  `json:"fuzz,omitempty" yaml:"fuzz,omitempty"`
	IR     *float64  `json:"ir,omitempty" yaml:"ir,omitempty"`
}

type rawCamera struct {
	LookFrom     *rawVec  `json:"lookFrom,omitempty" yaml:"lookFrom,omitempty"`
	LookAt       *rawVec  `json:"lookAt,omitempty" yaml:"lookAt,omitempty"`
	Up           *rawVec  `json:"up,omitempty" yaml:"up,omitempty"`
	FOV          *float64 `json:"fov,omitempty" yaml:"fov,omitempty"`
	Aperture     *float64 `json:"aperture,omitempty" yaml:"aperture,omitempty"`
	FocusDist    *float64 `json:"focusDist,omitempty" yaml:"focusDist,omitempty"`
	ShutterOpen  *float64 `json:"shutterOpen,omitempty" yaml:"shutterOpen,omitempty"`
	ShutterClose *float64 `json:"shutterClose,omitempty" yaml:"shutterClose,omitempty"`
}

// Convert a decoded raw scene into scene surfaces and camera settings.
func buildScene(raw rawScene) (*scene.Scene, error) {
	sc := scene.NewScene()
	if raw.Camera != nil {
		applyCameraSettings(&sc.Config, raw.Camera)
	}

	for index, obj := range raw.Objects {
		surf, err := buildSurface(index, obj)
		if err != nil {
			return nil, err
		}
		sc.Add(surf)
	}
	return sc, nil
}

// Camera settings listed in the scene file override the defaults; the rest
// keep their default values.
func applyCameraSettings(cfg *scene.CameraConfig, raw *rawCamera) {
	if raw.LookFrom != nil {
		cfg.LookFrom = vec(*raw.LookFrom)
	}
	if raw.LookAt != nil {
		cfg.LookAt = vec(*raw.LookAt)
	}
	if raw.Up != nil {
		cfg.Up = vec(*raw.Up)
	}
	if raw.FOV != nil {
		cfg.FOV = *raw.FOV
	}
	if raw.Aperture != nil {
		cfg.Aperture = *raw.Aperture
	}
	if raw.FocusDist != nil {
		cfg.FocusDist = *raw.FocusDist
	}
	if raw.ShutterOpen != nil {
		cfg.ShutterOpen = *raw.ShutterOpen
	}
	if raw.ShutterClose != nil {
		cfg.ShutterClose = *raw.ShutterClose
	}
}

func buildSurface(index int, obj rawObject) (scene.Surface, error) {
	mat, err := buildMaterial(index, obj.Material)
	if err != nil {
		return nil, err
	}

	center := obj.Center
	isPoint := center.X != nil || center.Y != nil || center.Z != nil
	isPair := center.Start != nil || center.End != nil

	switch {
	case isPoint && isPair:
		return nil, fmt.Errorf("reader: object %d: center cannot combine point and start/end forms", index)
	case isPair:
		if center.Start == nil || center.End == nil {
			return nil, fmt.Errorf("reader: object %d: center start/end pair is incomplete", index)
		}
		if obj.Time == nil {
			return nil, fmt.Errorf("reader: object %d: moving sphere requires a time interval", index)
		}
		return scene.NewMovingSphere(
			vec(*center.Start),
			vec(*center.End),
			obj.Time.Start,
			obj.Time.End,
			obj.Radius,
			mat,
		), nil
	case isPoint:
		if center.X == nil || center.Y == nil || center.Z == nil {
			return nil, fmt.Errorf("reader: object %d: center requires x, y and z", index)
		}
		if obj.Time != nil {
			return nil, fmt.Errorf("reader: object %d: static sphere cannot define a time interval", index)
		}
		return scene.NewSphere(types.XYZ(*center.X, *center.Y, *center.Z), obj.Radius, mat), nil
	default:
		return nil, fmt.Errorf("reader: object %d: missing center", index)
	}
}

func buildMaterial(index int, raw *rawMaterial) (scene.Material, error) {
	if raw == nil {
		return nil, fmt.Errorf("reader: object %d: missing material", index)
	}

	hasAlbedo := raw.Albedo != nil
	hasFuzz := raw.Fuzz != nil
	hasIR := raw.IR != nil

	switch {
	case hasIR && (hasAlbedo || hasFuzz):
		return nil, fmt.Errorf("reader: object %d: material cannot combine 'ir' with 'albedo' or 'fuzz'", index)
	case hasIR:
		return scene.NewDielectric(*raw.IR), nil
	case hasAlbedo && hasFuzz:
		return scene.NewMetal(col(*raw.Albedo), *raw.Fuzz), nil
	case hasAlbedo:
		return scene.NewLambertian(col(*raw.Albedo)), nil
	default:
		return nil, fmt.Errorf("reader: object %d: material must define 'albedo' or 'ir'", index)
	}
}

func vec(v rawVec) types.Vec3 {
	return types.XYZ(v.X, v.Y, v.Z)
}

func col(c rawColor) types.Color {
	return types.RGB(c.R, c.G, c.B)
}
