package renderer

import "math"

// SphereMesh generates a unit UV sphere. Every vertex normal equals its
// position, which is what makes the lambert term in the field shader work
// without a separate normal transform.
//
// Parameters:
//   - rings: number of latitude subdivisions (minimum 3)
//   - segments: number of longitude subdivisions (minimum 3)
//
// Returns:
//   - []Vertex: the sphere vertices
//   - []uint32: the triangle list indices
func SphereMesh(rings, segments int) ([]Vertex, []uint32) {
	if rings < 3 {
		rings = 3
	}
	if segments < 3 {
		segments = 3
	}

	vertices := make([]Vertex, 0, (rings+1)*(segments+1))
	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		y := float32(math.Cos(phi))
		r := float32(math.Sin(phi))
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			vertices = append(vertices, Vertex{
				Position: [3]float32{x, y, z},
				Normal:   [3]float32{x, y, z},
			})
		}
	}

	indices := make([]uint32, 0, rings*segments*6)
	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			indices = append(indices, a, b, a+1)
			indices = append(indices, a+1, b, b+1)
		}
	}

	return vertices, indices
}
