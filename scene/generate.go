package scene

import (
	"math/rand"

	"github.com/achilleasa/rigel/types"
)

// Build the showcase scene: a huge ground sphere, a 22x22 grid of small
// randomized spheres and three large feature spheres near the origin.
// Diffuse grid spheres drift upwards over the shutter interval so they
// render with motion blur. The same rng seed always yields the same scene.
func Generate(rng *rand.Rand) *Scene {
	sc := NewScene()

	sc.Add(NewSphere(types.XYZ(0, -1000, 0), 1000, NewLambertian(types.RGB(0.5, 0.5, 0.5))))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := types.XYZ(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())

			// Keep the grid clear of the large metal sphere.
			if center.Sub(types.XYZ(4, 0.2, 0)).Len() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randColor(rng).MulVec(randColor(rng))
				centerEnd := center.Add(types.XYZ(0, 0.5*rng.Float64(), 0))
				sc.Add(NewMovingSphere(center, centerEnd, 0, 1, 0.2, NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randColorBetween(rng, 0.5, 1)
				fuzz := 0.5 * rng.Float64()
				sc.Add(NewSphere(center, 0.2, NewMetal(albedo, fuzz)))
			default:
				sc.Add(NewSphere(center, 0.2, NewDielectric(1.5)))
			}
		}
	}

	sc.Add(
		NewSphere(types.XYZ(0, 1, 0), 1, NewDielectric(1.5)),
		NewSphere(types.XYZ(-4, 1, 0), 1, NewLambertian(types.RGB(0.4, 0.2, 0.1))),
		NewSphere(types.XYZ(4, 1, 0), 1, NewMetal(types.RGB(0.7, 0.6, 0.5), 0)),
	)

	return sc
}

// Draw a color with each channel uniform in [0, 1).
func randColor(rng *rand.Rand) types.Color {
	return types.RGB(rng.Float64(), rng.Float64(), rng.Float64())
}

// Draw a color with each channel uniform in [min, max).
func randColorBetween(rng *rand.Rand, min, max float64) types.Color {
	span := max - min
	return types.RGB(min+span*rng.Float64(), min+span*rng.Float64(), min+span*rng.Float64())
}
