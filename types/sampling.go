package types

import "math/rand"

// Pick a uniformly distributed point inside the unit sphere using rejection
// sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			2*rng.Float64() - 1,
			2*rng.Float64() - 1,
			2*rng.Float64() - 1,
		}
		if p.LenSq() < 1 {
			return p
		}
	}
}

// Pick a uniformly distributed direction on the unit sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// Pick a uniformly distributed point inside the unit disk on the XY plane.
// Lens offsets for defocus blur are sampled from this disk.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{
			2*rng.Float64() - 1,
			2*rng.Float64() - 1,
			0,
		}
		if p.LenSq() < 1 {
			return p
		}
	}
}
