package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/dotfield/engine/camera"
	"github.com/Carmen-Shannon/dotfield/engine/field"
	"github.com/Carmen-Shannon/dotfield/engine/pointer"
	"github.com/Carmen-Shannon/dotfield/engine/renderer"
	"github.com/Carmen-Shannon/dotfield/engine/scene"
)

// stubScene counts loop callbacks so the goroutine plumbing can be tested
// without a window or GPU.
type stubScene struct {
	active  atomic.Bool
	ticks   atomic.Int64
	renders atomic.Int64
	resizes atomic.Int64
}

var _ scene.Scene = &stubScene{}

func newStubScene(active bool) *stubScene {
	s := &stubScene{}
	s.active.Store(active)
	return s
}

func (s *stubScene) Name() string { return "stub" }

func (s *stubScene) SetName(string) {}

func (s *stubScene) Active() bool { return s.active.Load() }

func (s *stubScene) SetActive(a bool) { s.active.Store(a) }

func (s *stubScene) Camera() camera.Camera { return nil }

func (s *stubScene) Renderer() renderer.Renderer { return nil }

func (s *stubScene) Field() field.Field { return nil }

func (s *stubScene) Pointer() pointer.Tracker { return nil }

func (s *stubScene) Tick(float32) { s.ticks.Add(1) }

func (s *stubScene) Render(float32) error { s.renders.Add(1); return nil }

func (s *stubScene) Resize(int, int) { s.resizes.Add(1) }

func (s *stubScene) Fade() float32 { return 1 }

func TestSceneRegistry(t *testing.T) {
	e := NewEngine()
	s := newStubScene(true)

	e.AddScene(3, s)
	if e.Scene(3) != s {
		t.Fatalf("scene not registered")
	}
	if e.Scene(99) != nil {
		t.Fatalf("missing key should return nil")
	}

	cp := e.Scenes()
	delete(cp, 3)
	if e.Scene(3) != s {
		t.Fatalf("Scenes() must return a copy")
	}

	e.RemoveScene(3)
	if e.Scene(3) != nil {
		t.Fatalf("scene not removed")
	}
}

func TestWithSceneOption(t *testing.T) {
	s := newStubScene(true)
	e := NewEngine(WithScene(0, s), WithTickRate(120), WithProfiling(true))
	if e.Scene(0) != s {
		t.Fatalf("WithScene did not register the scene")
	}
}

func TestLoopsTickAndRenderActiveScenes(t *testing.T) {
	active := newStubScene(true)
	inactive := newStubScene(false)

	e := NewEngine(
		WithScene(0, active),
		WithScene(1, inactive),
		WithTickRate(240),
	).(*engine)

	e.running.Store(true)
	e.handle()
	time.Sleep(50 * time.Millisecond)
	// Exercise the dynamic rate path while the loops are live.
	e.SetTickRate(120)
	time.Sleep(50 * time.Millisecond)
	e.signalQuit()
	e.wg.Wait()

	if active.ticks.Load() == 0 {
		t.Fatalf("active scene never ticked")
	}
	if active.renders.Load() == 0 {
		t.Fatalf("active scene never rendered")
	}
	if inactive.ticks.Load() != 0 || inactive.renders.Load() != 0 {
		t.Fatalf("inactive scene ran: ticks %d renders %d",
			inactive.ticks.Load(), inactive.renders.Load())
	}
}

func TestTickCallbackRunsAtTickRate(t *testing.T) {
	var calls atomic.Int64
	e := NewEngine(WithTickRate(240)).(*engine)
	e.SetTickCallback(func(dt float32) {
		if dt < 0 {
			t.Errorf("negative delta time: %v", dt)
		}
		calls.Add(1)
	})

	e.running.Store(true)
	e.handle()
	time.Sleep(100 * time.Millisecond)
	e.signalQuit()
	e.wg.Wait()

	if calls.Load() == 0 {
		t.Fatalf("tick callback never fired")
	}
}

func TestRunWithoutWindowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when running without a window")
		}
	}()
	NewEngine().Run()
}

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	e.Quit() // must not panic on double close
}

func TestSetTickRateBeforeRun(t *testing.T) {
	e := NewEngine().(*engine)
	e.SetTickRate(30)
	if e.engineTickRate != time.Second/30 {
		t.Fatalf("tick rate: got %v", e.engineTickRate)
	}
	e.SetTickRate(0)
	if e.engineTickRate != time.Second/60 {
		t.Fatalf("tick rate default: got %v", e.engineTickRate)
	}
}

func TestSetRenderFrameLimit(t *testing.T) {
	e := NewEngine().(*engine)
	e.SetRenderFrameLimit(30)
	if e.renderFrameLimit != time.Second/30 {
		t.Fatalf("frame limit: got %v", e.renderFrameLimit)
	}
	e.SetRenderFrameLimit(0)
	if e.renderFrameLimit != 0 {
		t.Fatalf("frame limit not cleared: %v", e.renderFrameLimit)
	}
}
