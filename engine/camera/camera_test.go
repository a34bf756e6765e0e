package camera

import (
	"math"
	"testing"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	x, y, z := c.Position()
	if x != 0 || y != 0 || z != 40 {
		t.Fatalf("default position: got (%v, %v, %v)", x, y, z)
	}
	if got := c.Fov(); math.Abs(float64(got)-math.Pi/4) > 1e-6 {
		t.Fatalf("default fov: got %v", got)
	}
	if c.Near() >= c.Far() {
		t.Fatalf("near %v not in front of far %v", c.Near(), c.Far())
	}
}

func TestViewProjectionCentersOrigin(t *testing.T) {
	c := NewCamera(camWithSquareAspect()...)
	m := c.ViewProjectionMatrix()

	// The camera looks straight at the origin, so the origin must project
	// to the center of the screen.
	clipX := m[12]
	clipY := m[13]
	clipW := m[15]
	if math.Abs(float64(clipX/clipW)) > 1e-5 || math.Abs(float64(clipY/clipW)) > 1e-5 {
		t.Fatalf("origin off-center: (%v, %v)", clipX/clipW, clipY/clipW)
	}
}

func TestSetAspectRecomputes(t *testing.T) {
	c := NewCamera(WithAspect(1))
	before := c.ViewProjectionMatrix()
	c.SetAspect(2)
	after := c.ViewProjectionMatrix()
	if c.Aspect() != 2 {
		t.Fatalf("aspect not stored")
	}
	if before == after {
		t.Fatalf("matrices not recomputed after SetAspect")
	}
}

func TestSetPositionRecomputes(t *testing.T) {
	c := NewCamera()
	before := c.ViewProjectionMatrix()
	c.SetPosition(5, 0, 40)
	if before == c.ViewProjectionMatrix() {
		t.Fatalf("matrices not recomputed after SetPosition")
	}
	x, _, _ := c.Position()
	if x != 5 {
		t.Fatalf("position not stored")
	}
}

func camWithSquareAspect() []CameraBuilderOption {
	return []CameraBuilderOption{WithAspect(1)}
}
