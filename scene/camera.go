package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/rigel/types"
)

// CameraConfig packs the parameters that position and shape a scene camera.
type CameraConfig struct {
	// Camera position.
	LookFrom types.Point3

	// Point the camera is aimed at.
	LookAt types.Point3

	// World up direction.
	Up types.Vec3

	// Vertical field of view in degrees.
	FOV float64

	// Lens aperture diameter. A zero aperture yields a pinhole camera.
	Aperture float64

	// Distance from the camera to the plane of perfect focus.
	FocusDist float64

	// Shutter interval. Every primary ray is stamped with a uniformly
	// random time inside [ShutterOpen, ShutterClose).
	ShutterOpen  float64
	ShutterClose float64
}

// Get the camera settings used when a scene does not define its own.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:     types.XYZ(13, 2, 3),
		LookAt:       types.XYZ(0, 0, 0),
		Up:           types.XYZ(0, 1, 0),
		FOV:          20,
		Aperture:     0.1,
		FocusDist:    10,
		ShutterOpen:  0,
		ShutterClose: 1,
	}
}

// The camera type maps film coordinates to world-space rays using a thin
// lens model.
type Camera struct {
	origin          types.Point3
	lowerLeftCorner types.Point3
	horizontal      types.Vec3
	vertical        types.Vec3
	u, v            types.Vec3
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// Create a new camera from the given settings and frame aspect ratio.
func NewCamera(cfg CameraConfig, aspect float64) *Camera {
	theta := cfg.FOV * math.Pi / 180.0
	h := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * h
	viewportWidth := aspect * viewportHeight

	w := cfg.LookFrom.Sub(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Mul(viewportWidth * cfg.FocusDist)
	vertical := v.Mul(viewportHeight * cfg.FocusDist)
	lowerLeftCorner := cfg.LookFrom.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(w.Mul(cfg.FocusDist))

	return &Camera{
		origin:          cfg.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      cfg.Aperture / 2.0,
		shutterOpen:     cfg.ShutterOpen,
		shutterClose:    cfg.ShutterClose,
	}
}

// Generate the world-space ray for film coordinates (s, t) in [0, 1]. The
// ray origin is jittered across the lens disk for depth of field and the
// ray time is drawn from the shutter interval.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) types.Ray {
	rd := types.RandomInUnitDisk(rng).Mul(c.lensRadius)
	offset := c.u.Mul(rd.X()).Add(c.v.Mul(rd.Y()))

	origin := c.origin.Add(offset)
	dir := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)
	time := c.shutterOpen + rng.Float64()*(c.shutterClose-c.shutterOpen)

	return types.NewRay(origin, dir, time)
}
