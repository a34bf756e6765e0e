package scene

import "github.com/charmbracelet/harmonica"

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithDotRadius sets the base world-space radius of each dot before the
// per-record scale factor is applied. Defaults to 0.12.
//
// Parameters:
//   - radius: the base dot radius in world units
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDotRadius(radius float32) SceneBuilderOption {
	return func(s *scene) {
		if radius > 0 {
			s.dotRadius = radius
		}
	}
}

// WithBaseColor sets the RGB tint applied to every dot. Defaults to a pale
// blue-white.
//
// Parameters:
//   - red: red channel in [0, 1]
//   - green: green channel in [0, 1]
//   - blue: blue channel in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBaseColor(red, green, blue float32) SceneBuilderOption {
	return func(s *scene) {
		s.baseColor = [3]float32{red, green, blue}
	}
}

// WithFadeSpring overrides the spring driving the startup fade-in.
// Defaults to a critically damped spring at 5Hz angular frequency.
//
// Parameters:
//   - frequency: the spring's angular frequency
//   - damping: the spring's damping ratio (1.0 = critically damped)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithFadeSpring(frequency, damping float64) SceneBuilderOption {
	return func(s *scene) {
		s.spring = harmonica.NewSpring(harmonica.FPS(60), frequency, damping)
		s.springSet = true
	}
}

// WithMeshDetail sets the subdivision counts for the shared sphere mesh.
// Defaults to 12 rings by 18 segments, which is plenty for dots a few
// pixels across.
//
// Parameters:
//   - rings: latitude subdivisions (minimum 3)
//   - segments: longitude subdivisions (minimum 3)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshDetail(rings, segments int) SceneBuilderOption {
	return func(s *scene) {
		s.meshRings = rings
		s.meshSegments = segments
	}
}
