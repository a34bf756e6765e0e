package renderer

import (
	"math"
	"testing"
)

func TestSphereMeshCounts(t *testing.T) {
	rings, segments := 12, 18
	vertices, indices := SphereMesh(rings, segments)

	wantVerts := (rings + 1) * (segments + 1)
	if len(vertices) != wantVerts {
		t.Fatalf("vertex count: got %d want %d", len(vertices), wantVerts)
	}
	wantIndices := rings * segments * 6
	if len(indices) != wantIndices {
		t.Fatalf("index count: got %d want %d", len(indices), wantIndices)
	}
	if len(indices)%3 != 0 {
		t.Fatalf("index count not a multiple of 3: %d", len(indices))
	}
}

func TestSphereMeshUnitRadius(t *testing.T) {
	vertices, _ := SphereMesh(8, 12)
	for i, v := range vertices {
		l := math.Sqrt(float64(v.Position[0]*v.Position[0] +
			v.Position[1]*v.Position[1] +
			v.Position[2]*v.Position[2]))
		if math.Abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d not on unit sphere: length %v", i, l)
		}
		if v.Normal != v.Position {
			t.Fatalf("vertex %d normal != position", i)
		}
	}
}

func TestSphereMeshIndicesInRange(t *testing.T) {
	vertices, indices := SphereMesh(6, 9)
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			t.Fatalf("index %d out of range: %d >= %d", i, idx, len(vertices))
		}
	}
}

func TestSphereMeshClampsDetail(t *testing.T) {
	vertices, indices := SphereMesh(0, 0)
	if len(vertices) != 16 || len(indices) != 54 {
		t.Fatalf("minimum detail: got %d vertices %d indices", len(vertices), len(indices))
	}
}
