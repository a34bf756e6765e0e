package field

import (
	"math"
	"testing"
)

func TestNormalizedDistanceClamps(t *testing.T) {
	if got := NormalizedDistance(-1, 8); got != 0 {
		t.Fatalf("negative distance: got %v want 0", got)
	}
	if got := NormalizedDistance(0, 8); got != 0 {
		t.Fatalf("zero distance: got %v want 0", got)
	}
	if got := NormalizedDistance(4, 8); got != 0.5 {
		t.Fatalf("half radius: got %v want 0.5", got)
	}
	if got := NormalizedDistance(8, 8); got != 1 {
		t.Fatalf("at radius: got %v want 1", got)
	}
	if got := NormalizedDistance(100, 8); got != 1 {
		t.Fatalf("beyond radius: got %v want 1", got)
	}
	if got := NormalizedDistance(3, 0); got != 1 {
		t.Fatalf("zero radius: got %v want 1", got)
	}
	if got := NormalizedDistance(3, -2); got != 1 {
		t.Fatalf("negative radius: got %v want 1", got)
	}
}

func TestDepthTargetEndpoints(t *testing.T) {
	if got := DepthTarget(0, 8, -3, 3); got != 3 {
		t.Fatalf("zero distance: got %v want maxZ", got)
	}
	if got := DepthTarget(8, 8, -3, 3); got != -3 {
		t.Fatalf("at radius: got %v want minZ", got)
	}
	if got := DepthTarget(50, 8, -3, 3); got != -3 {
		t.Fatalf("far: got %v want minZ", got)
	}
}

func TestOpacityTargetEndpoints(t *testing.T) {
	if got := OpacityTarget(0, 8, 0.1, 0.9); got != 0.9 {
		t.Fatalf("zero distance: got %v want maxOpacity", got)
	}
	if got := OpacityTarget(8, 8, 0.1, 0.9); got != 0.1 {
		t.Fatalf("at radius: got %v want minOpacity", got)
	}
}

func TestOpacityTargetClampsToUnit(t *testing.T) {
	if got := OpacityTarget(0, 8, 0.5, 3.0); got != 1 {
		t.Fatalf("overshoot: got %v want 1", got)
	}
	if got := OpacityTarget(10, 8, -0.5, 0.9); got != 0 {
		t.Fatalf("undershoot: got %v want 0", got)
	}
}

func TestScaleTargetEndpoints(t *testing.T) {
	if got := ScaleTarget(0, 8, 0.8, 1.2); got != 1.2 {
		t.Fatalf("zero distance: got %v want maxScale", got)
	}
	if got := ScaleTarget(8, 8, 0.8, 1.2); got != 0.8 {
		t.Fatalf("at radius: got %v want minScale", got)
	}
}

func TestFalloffMonotonic(t *testing.T) {
	prevDepth := float32(math.Inf(1))
	prevOpacity := float32(math.Inf(1))
	prevScale := float32(math.Inf(1))
	for d := float32(0); d <= 10; d += 0.25 {
		depth := DepthTarget(d, 8, -3, 3)
		opacity := OpacityTarget(d, 8, 0.1, 0.9)
		scale := ScaleTarget(d, 8, 0.8, 1.2)
		if depth > prevDepth || opacity > prevOpacity || scale > prevScale {
			t.Fatalf("falloff not monotonic at d=%v", d)
		}
		prevDepth, prevOpacity, prevScale = depth, opacity, scale
	}
}

// Opacity uses a softer exponent than depth and scale: at mid distance it
// must retain a larger fraction of its span than the quadratic curves do.
func TestOpacityCurveSofterThanDepth(t *testing.T) {
	d, radius := float32(4), float32(8)
	depthFrac := (DepthTarget(d, radius, 0, 1) - 0) / 1
	opacityFrac := (OpacityTarget(d, radius, 0, 1) - 0) / 1
	if opacityFrac <= depthFrac {
		t.Fatalf("opacity falloff not softer: opacity %v depth %v", opacityFrac, depthFrac)
	}
}
