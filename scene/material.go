package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/rigel/types"
)

// Material determines how rays scatter off a surface.
type Material interface {
	// Compute the scattered ray and attenuation for an incoming ray that
	// produced the given hit. Returns false if the ray was absorbed.
	// Scattered rays keep the time value of the incoming ray.
	Scatter(rayIn types.Ray, rec HitRecord, rng *rand.Rand) (types.Ray, types.Color, bool)
}

// Defines a diffuse material with a uniform albedo.
type Lambertian struct {
	Albedo types.Color
}

// Create a new diffuse material.
func NewLambertian(albedo types.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter the ray in a random direction biased towards the surface normal.
// Diffuse materials always scatter.
func (m *Lambertian) Scatter(rayIn types.Ray, rec HitRecord, rng *rand.Rand) (types.Ray, types.Color, bool) {
	dir := rec.Normal.Add(types.RandomUnitVector(rng))

	// Degenerate scatter directions collapse onto the normal.
	if dir.NearZero() {
		dir = rec.Normal
	}

	return types.NewRay(rec.Point, dir, rayIn.Time), m.Albedo, true
}

// Defines a reflective material. Fuzz perturbs reflected rays to simulate
// brushed surfaces.
type Metal struct {
	Albedo types.Color
	Fuzz   float64
}

// Create a new metallic material. Fuzz values are clamped to [0, 1].
func NewMetal(albedo types.Color, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	} else if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Mirror the ray about the surface normal and perturb it by the fuzz
// factor. Heavily fuzzed rays may point below the surface; they are traced
// like any other scattered ray.
func (m *Metal) Scatter(rayIn types.Ray, rec HitRecord, rng *rand.Rand) (types.Ray, types.Color, bool) {
	reflected := rayIn.Dir.Normalize().Reflect(rec.Normal)
	dir := reflected.Add(types.RandomInUnitSphere(rng).Mul(m.Fuzz))
	return types.NewRay(rec.Point, dir, rayIn.Time), m.Albedo, true
}

// Defines a transparent material such as glass or water.
type Dielectric struct {
	// Index of refraction.
	IOR float64
}

// Create a new dielectric material with the given index of refraction.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// Refract the ray through the surface, or reflect it when Snell's law has
// no solution or the Schlick reflectance test passes. Dielectrics absorb
// nothing so attenuation is always white.
func (m *Dielectric) Scatter(rayIn types.Ray, rec HitRecord, rng *rand.Rand) (types.Ray, types.Color, bool) {
	ratio := m.IOR
	if rec.FrontFace {
		ratio = 1.0 / m.IOR
	}

	unitDir := rayIn.Dir.Normalize()
	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if ratio*sinTheta > 1.0 || reflectance(cosTheta, ratio) > rng.Float64() {
		dir = unitDir.Reflect(rec.Normal)
	} else {
		dir = unitDir.Refract(rec.Normal, ratio)
	}

	return types.NewRay(rec.Point, dir, rayIn.Time), types.RGB(1, 1, 1), true
}

// Schlick's polynomial approximation of the Fresnel reflectance.
func reflectance(cosTheta, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
