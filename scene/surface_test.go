package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/rigel/types"
)

func TestSphereHit(t *testing.T) {
	type spec struct {
		ray      types.Ray
		expHit   bool
		expT     float64
		expFront bool
	}

	s := NewSphere(types.XYZ(0, 0, -1), 0.5, NewLambertian(types.RGB(0.5, 0.5, 0.5)))

	specs := []spec{
		// Head-on hit from outside picks the near root.
		spec{types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0), true, 0.5, true},
		// A ray starting at the center picks the far root and the normal flips.
		spec{types.NewRay(types.XYZ(0, 0, -1), types.XYZ(0, 0, -1), 0), true, 0.5, false},
		// Ray pointing away misses.
		spec{types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), 0), false, 0, false},
		// Ray outside the silhouette misses.
		spec{types.NewRay(types.XYZ(0, 1, 0), types.XYZ(0, 0, -1), 0), false, 0, false},
	}

	for index, sp := range specs {
		rec, hit := s.Hit(sp.ray, 0.001, math.Inf(1))
		if hit != sp.expHit {
			t.Fatalf("[spec %d] expected hit to be %t; got %t", index, sp.expHit, hit)
		}
		if !hit {
			continue
		}
		if math.Abs(rec.T-sp.expT) > 1e-9 {
			t.Fatalf("[spec %d] expected hit at t=%f; got t=%f", index, sp.expT, rec.T)
		}
		if rec.FrontFace != sp.expFront {
			t.Fatalf("[spec %d] expected front face to be %t; got %t", index, sp.expFront, rec.FrontFace)
		}
	}
}

func TestSphereHitRecordGeometry(t *testing.T) {
	mat := NewLambertian(types.RGB(0.5, 0.5, 0.5))
	s := NewSphere(types.XYZ(0, 0, -1), 0.5, mat)
	r := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0.25)

	rec, hit := s.Hit(r, 0.001, math.Inf(1))
	if !hit {
		t.Fatal("expected ray to hit the sphere")
	}

	if rec.Point != types.XYZ(0, 0, -0.5) {
		t.Fatalf("expected hit point (0, 0, -0.5); got %v", rec.Point)
	}
	if rec.Normal != types.XYZ(0, 0, 1) {
		t.Fatalf("expected outward unit normal (0, 0, 1); got %v", rec.Normal)
	}
	if rec.Material != mat {
		t.Fatal("expected hit record to carry the sphere material")
	}
}

func TestSphereHitRespectsInterval(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, -2), 0.5, nil)
	r := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0)

	// Both roots (1.5 and 2.5) lie beyond tMax.
	if _, hit := s.Hit(r, 0.001, 1.0); hit {
		t.Fatal("expected hit beyond tMax to be discarded")
	}

	// Both roots lie below tMin.
	if _, hit := s.Hit(r, 3.0, math.Inf(1)); hit {
		t.Fatal("expected hit below tMin to be discarded")
	}

	// The near root is excluded but the far root is still in range.
	rec, hit := s.Hit(r, 2.0, math.Inf(1))
	if !hit {
		t.Fatal("expected far root to satisfy the interval")
	}
	if math.Abs(rec.T-2.5) > 1e-9 {
		t.Fatalf("expected far root at t=2.5; got %f", rec.T)
	}
}

func TestNormalAlwaysFacesAgainstRay(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, 0), 1, nil)

	// Hit the sphere from the outside and from the inside.
	rays := []types.Ray{
		types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1), 0),
		types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0.3, -0.5, 1), 0),
	}

	for index, r := range rays {
		rec, hit := s.Hit(r, 0.001, math.Inf(1))
		if !hit {
			t.Fatalf("[spec %d] expected ray to hit the sphere", index)
		}
		if rec.Normal.Dot(r.Dir) >= 0 {
			t.Fatalf("[spec %d] expected normal to face against the ray; got normal %v for dir %v", index, rec.Normal, r.Dir)
		}
		if math.Abs(rec.Normal.Len()-1) > 1e-9 {
			t.Fatalf("[spec %d] expected unit normal; got length %f", index, rec.Normal.Len())
		}
	}
}

func TestSurfaceListReturnsClosestHit(t *testing.T) {
	mat := NewLambertian(types.RGB(0.5, 0.5, 0.5))
	near := NewSphere(types.XYZ(0, 0, -2), 0.5, mat)
	far := NewSphere(types.XYZ(0, 0, -10), 0.5, mat)

	// Insertion order must not affect which hit wins.
	lists := []SurfaceList{
		SurfaceList{far, near},
		SurfaceList{near, far},
	}

	r := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0)
	for index, l := range lists {
		rec, hit := l.Hit(r, 0.001, math.Inf(1))
		if !hit {
			t.Fatalf("[spec %d] expected ray to hit the list", index)
		}
		if math.Abs(rec.T-1.5) > 1e-9 {
			t.Fatalf("[spec %d] expected nearest hit at t=1.5; got %f", index, rec.T)
		}
	}
}

func TestEmptySurfaceList(t *testing.T) {
	var l SurfaceList
	r := types.NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), 0)

	if _, hit := l.Hit(r, 0.001, math.Inf(1)); hit {
		t.Fatal("expected empty list to report a miss")
	}
}

func TestMovingSphereFollowsRayTime(t *testing.T) {
	type spec struct {
		time   float64
		expHit bool
	}

	// The sphere slides from x=-2 at time 0 to x=2 at time 1. A ray shot
	// down the -z axis at x=2 only meets it at shutter close.
	s := NewMovingSphere(types.XYZ(-2, 0, -2), types.XYZ(2, 0, -2), 0, 1, 0.5, nil)

	specs := []spec{
		spec{0, false},
		spec{0.5, false},
		spec{1, true},
	}

	for index, sp := range specs {
		r := types.NewRay(types.XYZ(2, 0, 0), types.XYZ(0, 0, -1), sp.time)
		if _, hit := s.Hit(r, 0.001, math.Inf(1)); hit != sp.expHit {
			t.Fatalf("[spec %d] expected hit at time %.1f to be %t; got %t", index, sp.time, sp.expHit, hit)
		}
	}
}

func TestMovingSphereCenterInterpolation(t *testing.T) {
	s := NewMovingSphere(types.XYZ(0, 0, 0), types.XYZ(4, 0, 0), 2, 4, 1, nil)

	if got := s.centerAt(2); got != types.XYZ(0, 0, 0) {
		t.Fatalf("expected center at interval start to be the start point; got %v", got)
	}
	if got := s.centerAt(4); got != types.XYZ(4, 0, 0) {
		t.Fatalf("expected center at interval end to be the end point; got %v", got)
	}
	if got := s.centerAt(3); got != types.XYZ(2, 0, 0) {
		t.Fatalf("expected center at the interval midpoint to be (2, 0, 0); got %v", got)
	}

	// A zero-length time interval pins the sphere to its start position.
	frozen := NewMovingSphere(types.XYZ(1, 2, 3), types.XYZ(9, 9, 9), 5, 5, 1, nil)
	if got := frozen.centerAt(5); got != types.XYZ(1, 2, 3) {
		t.Fatalf("expected degenerate interval to pin the center; got %v", got)
	}
}
