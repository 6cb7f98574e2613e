package scene

// Scene groups the surfaces to be rendered with the camera viewing them.
type Scene struct {
	// The surfaces making up the scene world.
	World SurfaceList

	// Camera settings for the scene. Merged from scene files and command
	// line flags before the camera is built.
	Config CameraConfig

	// The scene camera. Nil until SetupCamera is called.
	Camera *Camera
}

// Create a new empty scene with the default camera settings.
func NewScene() *Scene {
	return &Scene{
		World:  make(SurfaceList, 0),
		Config: DefaultCameraConfig(),
	}
}

// Add surfaces to the scene world.
func (s *Scene) Add(surfaces ...Surface) {
	s.World = append(s.World, surfaces...)
}

// Build the scene camera for the given frame aspect ratio. Must be called
// before the scene is rendered.
func (s *Scene) SetupCamera(aspect float64) {
	s.Camera = NewCamera(s.Config, aspect)
}

// SceneStats counts the surfaces and materials in a scene.
type SceneStats struct {
	Spheres       int
	MovingSpheres int
	Lambertians   int
	Metals        int
	Dielectrics   int
}

// Get the total surface count.
func (st SceneStats) Surfaces() int {
	return st.Spheres + st.MovingSpheres
}

// Tally the surfaces in the scene by type.
func (s *Scene) Stats() SceneStats {
	var st SceneStats
	for _, surf := range s.World {
		var mat Material
		switch v := surf.(type) {
		case *Sphere:
			st.Spheres++
			mat = v.Mat
		case *MovingSphere:
			st.MovingSpheres++
			mat = v.Mat
		}

		switch mat.(type) {
		case *Lambertian:
			st.Lambertians++
		case *Metal:
			st.Metals++
		case *Dielectric:
			st.Dielectrics++
		}
	}
	return st
}
