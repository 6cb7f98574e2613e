package types

import (
	"math"

	"golang.org/x/image/math/f64"
)

const (
	// Threshold below which a vector length is treated as zero.
	floatCmpEpsilon = 1e-12

	// Threshold below which a vector component is treated as zero when
	// testing for degenerate scatter directions.
	nearZeroEpsilon = 1e-8
)

type Vec3 f64.Vec3

// Point3 is a Vec3 that marks a location in world space.
type Point3 = Vec3

// Color is a Vec3 with linear R, G, B components in the [0, 1] range.
type Color = Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Define a color from linear R, G, B components.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Get the vector X component.
func (v Vec3) X() float64 {
	return v[0]
}

// Get the vector Y component.
func (v Vec3) Y() float64 {
	return v[1]
}

// Get the vector Z component.
func (v Vec3) Z() float64 {
	return v[2]
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Multiply two vectors component-wise.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Negate all vector components.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Get squared vector length.
func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Calculate dot product of 2 vectors.
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Normalize vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Check whether all vector components are close to zero.
func (v Vec3) NearZero() bool {
	return math.Abs(v[0]) < nearZeroEpsilon && math.Abs(v[1]) < nearZeroEpsilon && math.Abs(v[2]) < nearZeroEpsilon
}

// Reflect vector about a unit normal.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract a unit vector through a surface with unit normal n where
// etaiOverEtat is the ratio of the refractive indices at the boundary.
func (v Vec3) Refract(n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(v.Neg().Dot(n), 1.0)
	rOutPerp := v.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LenSq())))
	return rOutPerp.Add(rOutParallel)
}

// Interpolate linearly between two vectors.
func Lerp(v1, v2 Vec3, t float64) Vec3 {
	return v1.Mul(1.0 - t).Add(v2.Mul(t))
}
