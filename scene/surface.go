package scene

import (
	"math"

	"github.com/achilleasa/rigel/types"
)

// HitRecord captures a single ray-surface intersection.
type HitRecord struct {
	// Intersection point in world space.
	Point types.Point3

	// Surface normal at the intersection point. Always oriented against
	// the incoming ray.
	Normal types.Vec3

	// Material of the surface that was hit.
	Material Material

	// Ray parameter at the intersection point.
	T float64

	// True when the ray hit the surface from the outside.
	FrontFace bool
}

// Orient the record normal against the incoming ray. The outward normal must
// have unit length.
func (rec *HitRecord) setFaceNormal(r types.Ray, outward types.Vec3) {
	rec.FrontFace = r.Dir.Dot(outward) < 0
	if rec.FrontFace {
		rec.Normal = outward
	} else {
		rec.Normal = outward.Neg()
	}
}

// Surface is implemented by anything a ray can intersect.
type Surface interface {
	// Test r against the surface and return the hit record for the
	// nearest intersection with ray parameter inside [tMin, tMax].
	Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool)
}

// Defines a stationary sphere surface.
type Sphere struct {
	Center types.Point3
	Radius float64
	Mat    Material
}

// Create a new sphere surface.
func NewSphere(center types.Point3, radius float64, mat Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

func (s *Sphere) Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	return hitSphere(r, s.Center, s.Radius, s.Mat, tMin, tMax)
}

// Defines a sphere surface whose center moves linearly between two points
// over a time interval. Rays sample the sphere at the position indicated by
// their time value.
type MovingSphere struct {
	CenterStart types.Point3
	CenterEnd   types.Point3
	TimeStart   float64
	TimeEnd     float64
	Radius      float64
	Mat         Material
}

// Create a new moving sphere surface.
func NewMovingSphere(centerStart, centerEnd types.Point3, timeStart, timeEnd, radius float64, mat Material) *MovingSphere {
	return &MovingSphere{
		CenterStart: centerStart,
		CenterEnd:   centerEnd,
		TimeStart:   timeStart,
		TimeEnd:     timeEnd,
		Radius:      radius,
		Mat:         mat,
	}
}

// Get the sphere center at time t. A degenerate time interval pins the
// sphere to its start position.
func (s *MovingSphere) centerAt(t float64) types.Point3 {
	if s.TimeStart == s.TimeEnd {
		return s.CenterStart
	}
	return types.Lerp(s.CenterStart, s.CenterEnd, (t-s.TimeStart)/(s.TimeEnd-s.TimeStart))
}

func (s *MovingSphere) Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	return hitSphere(r, s.centerAt(r.Time), s.Radius, s.Mat, tMin, tMax)
}

// Solve the quadratic for a ray-sphere intersection and populate a hit
// record for the nearest root inside [tMin, tMax]. Uses the half-b form of
// the quadratic formula.
func hitSphere(r types.Ray, center types.Point3, radius float64, mat Material, tMin, tMax float64) (HitRecord, bool) {
	oc := r.Origin.Sub(center)
	a := r.Dir.LenSq()
	halfB := oc.Dot(r.Dir)
	c := oc.LenSq() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Prefer the near root; fall back to the far one if it lies outside
	// the search interval.
	root := (-halfB - sqrtD) / a
	if root < tMin || tMax < root {
		root = (-halfB + sqrtD) / a
		if root < tMin || tMax < root {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{
		Point:    r.At(root),
		Material: mat,
		T:        root,
	}
	rec.setFaceNormal(r, rec.Point.Sub(center).Mul(1.0/radius))
	return rec, true
}

// SurfaceList is an ordered collection of surfaces that can be intersected
// as a unit.
type SurfaceList []Surface

// Scan the list and return the hit record for the intersection closest to
// the ray origin. Each surface is tested against an interval narrowed to the
// closest hit found so far.
func (l SurfaceList) Hit(r types.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestT := tMax

	for _, surf := range l {
		if rec, hit := surf.Hit(r, tMin, closestT); hit {
			hitAnything = true
			closestT = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}
