package tracer

import (
	"math"
	"math/rand"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/types"
)

// Hits closer than this are ignored so that scattered rays cannot re-hit
// the surface they just left.
const hitEpsilon = 0.001

// Background maps rays that escape the scene to a color.
type Background func(r types.Ray) types.Color

// SkyGradient is the default background. It blends white at the horizon
// into light blue at the zenith based on the ray Y direction.
func SkyGradient(r types.Ray) types.Color {
	unit := r.Dir.Normalize()
	t := 0.5 * (unit.Y() + 1.0)
	return types.Lerp(types.RGB(1, 1, 1), types.RGB(0.5, 0.7, 1.0), t)
}

// Tracer evaluates the color seen along a ray by recursively following
// material scatter events until the ray escapes to the background, gets
// absorbed, or runs out of bounces.
//
// A tracer owns its random number generator and is not safe for concurrent
// use; each render worker should create its own.
type Tracer struct {
	world      scene.Surface
	background Background
	maxDepth   int
	rng        *rand.Rand
}

// Create a new tracer for the given world. A nil background defaults to the
// sky gradient.
func New(world scene.Surface, background Background, maxDepth int, rng *rand.Rand) *Tracer {
	if background == nil {
		background = SkyGradient
	}
	return &Tracer{
		world:      world,
		background: background,
		maxDepth:   maxDepth,
		rng:        rng,
	}
}

// Get the color seen along r.
func (t *Tracer) Trace(r types.Ray) types.Color {
	return t.trace(r, t.maxDepth)
}

func (t *Tracer) trace(r types.Ray, depth int) types.Color {
	// The bounce budget is exhausted; no more light is gathered.
	if depth <= 0 {
		return types.RGB(0, 0, 0)
	}

	rec, hit := t.world.Hit(r, hitEpsilon, math.Inf(1))
	if !hit {
		return t.background(r)
	}

	scattered, attenuation, ok := rec.Material.Scatter(r, rec, t.rng)
	if !ok {
		return types.RGB(0, 0, 0)
	}

	return attenuation.MulVec(t.trace(scattered, depth-1))
}
