package pointer

import (
	"math"
	"testing"
)

func TestStepEasesTowardTarget(t *testing.T) {
	tr := NewTracker()
	tr.SetTarget(1, -1)

	tr.Step()
	x, y := tr.Smoothed()
	if math.Abs(float64(x-DefaultSmoothing)) > 1e-6 {
		t.Fatalf("first step x: got %v want %v", x, DefaultSmoothing)
	}
	if math.Abs(float64(y+DefaultSmoothing)) > 1e-6 {
		t.Fatalf("first step y: got %v want %v", y, -DefaultSmoothing)
	}
}

func TestStepConverges(t *testing.T) {
	tr := NewTracker()
	tr.SetTarget(0.5, 0.25)

	for i := 0; i < 500; i++ {
		tr.Step()
	}
	x, y := tr.Smoothed()
	if math.Abs(float64(x-0.5)) > 1e-4 || math.Abs(float64(y-0.25)) > 1e-4 {
		t.Fatalf("did not converge: got (%v, %v)", x, y)
	}
}

func TestStepNeverOvershoots(t *testing.T) {
	tr := NewTracker()
	tr.SetTarget(1, 0)

	prev := float32(0)
	for i := 0; i < 200; i++ {
		tr.Step()
		x, _ := tr.Smoothed()
		if x > 1 || x < prev {
			t.Fatalf("overshoot or regression at step %d: %v", i, x)
		}
		prev = x
	}
}

func TestWorldScaling(t *testing.T) {
	tr := NewTracker(WithSmoothing(1), WithWorldScale(30))
	tr.SetTarget(1, -0.5)
	tr.Step() // smoothing 1 snaps in one step

	x, y := tr.World()
	if x != 30 || y != -15 {
		t.Fatalf("world position: got (%v, %v) want (30, -15)", x, y)
	}
}

func TestTouchMoveRequiresActiveTouch(t *testing.T) {
	tr := NewTracker()

	tr.TouchMove(1, 1)
	x, y := tr.Target()
	if x != 0 || y != 0 {
		t.Fatalf("inactive touch moved target: (%v, %v)", x, y)
	}

	tr.SetTouchActive(true)
	if !tr.TouchActive() {
		t.Fatalf("touch not active after SetTouchActive(true)")
	}
	tr.TouchMove(1, 1)
	x, y = tr.Target()
	if x != 1 || y != 1 {
		t.Fatalf("active touch did not move target: (%v, %v)", x, y)
	}

	tr.SetTouchActive(false)
	tr.TouchMove(-1, -1)
	x, y = tr.Target()
	if x != 1 || y != 1 {
		t.Fatalf("released touch moved target: (%v, %v)", x, y)
	}
}

func TestSetTargetAlwaysHonored(t *testing.T) {
	tr := NewTracker()
	tr.SetTouchActive(true)
	tr.SetTarget(-0.25, 0.75)
	x, y := tr.Target()
	if x != -0.25 || y != 0.75 {
		t.Fatalf("target: got (%v, %v)", x, y)
	}
}
