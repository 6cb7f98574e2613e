package types

// Ray is the parametric line origin + t*dir. Each ray also carries the time
// at which it samples the scene so that time-varying surfaces can be
// intersected at the correct position.
type Ray struct {
	Origin Point3
	Dir    Vec3
	Time   float64
}

// Define a ray from an origin, a direction and a sample time.
func NewRay(origin Point3, dir Vec3, time float64) Ray {
	return Ray{Origin: origin, Dir: dir, Time: time}
}

// Get the point at parameter t along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
