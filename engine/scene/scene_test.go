package scene

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/dotfield/engine/camera"
	"github.com/Carmen-Shannon/dotfield/engine/field"
	"github.com/Carmen-Shannon/dotfield/engine/pointer"
	"github.com/Carmen-Shannon/dotfield/engine/renderer"
)

// stubRenderer records calls so scene behavior can be asserted without a GPU.
type stubRenderer struct {
	meshInit       bool
	indexCount     int
	fieldCapacity  int
	globalsWrites  int
	lastTint       [4]float32
	instanceWrites int
	lastInstances  []renderer.Instance
	frames         int
	draws          []uint32
	presents       int
	resizeW        int
	resizeH        int
}

var _ renderer.Renderer = &stubRenderer{}

func (s *stubRenderer) Resize(width, height int) { s.resizeW, s.resizeH = width, height }

func (s *stubRenderer) SetPresentMode(mode renderer.PresentMode) {}
func (s *stubRenderer) InitMesh(vertexData, indexData []byte, indexCount int) error {
	s.meshInit = true
	s.indexCount = indexCount
	return nil
}
func (s *stubRenderer) InitFieldBuffers(maxInstances int) error {
	s.fieldCapacity = maxInstances
	return nil
}
func (s *stubRenderer) WriteGlobals(viewProjection [16]float32, tint [4]float32) {
	s.globalsWrites++
	s.lastTint = tint
}
func (s *stubRenderer) WriteInstances(instances []renderer.Instance) {
	s.instanceWrites++
	s.lastInstances = append(s.lastInstances[:0], instances...)
}
func (s *stubRenderer) BeginFrame() error { s.frames++; return nil }

func (s *stubRenderer) Draw(instanceCount uint32) error {
	s.draws = append(s.draws, instanceCount)
	return nil
}

func (s *stubRenderer) EndFrame() {}

func (s *stubRenderer) Present() { s.presents++ }

func testScene(t *testing.T) (Scene, *stubRenderer, field.Field, pointer.Tracker) {
	t.Helper()
	r := &stubRenderer{}
	f := field.NewField(field.WithExtent(2), field.WithSpacing(1), field.WithWorkers(1))
	tr := pointer.NewTracker()
	cam := camera.NewCamera(camera.WithAspect(16.0 / 9.0))
	return NewScene("test", cam, r, f, tr), r, f, tr
}

func TestNewSceneInitializesGPUResources(t *testing.T) {
	_, r, f, _ := testScene(t)
	if !r.meshInit {
		t.Fatalf("mesh not initialized")
	}
	if r.indexCount <= 0 {
		t.Fatalf("index count not set")
	}
	if r.fieldCapacity != f.Count() {
		t.Fatalf("instance capacity: got %d want %d", r.fieldCapacity, f.Count())
	}
}

func TestNewSceneNilCollaboratorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil camera")
		}
	}()
	f := field.NewField(field.WithExtent(2), field.WithSpacing(1), field.WithWorkers(1))
	NewScene("bad", nil, &stubRenderer{}, f, pointer.NewTracker())
}

func TestTickStepsTrackerAndField(t *testing.T) {
	s, _, f, tr := testScene(t)
	tr.SetTarget(1, 0)

	s.Tick(1.0 / 60)

	if x, _ := tr.Smoothed(); x == 0 {
		t.Fatalf("tracker did not step")
	}
	advanced := false
	for _, sp := range f.Spheres() {
		if sp.RotA != 0 {
			advanced = true
		}
	}
	if !advanced {
		t.Fatalf("field did not update")
	}
}

func TestFadeSpringsTowardOne(t *testing.T) {
	s, _, _, _ := testScene(t)
	if s.Fade() != 0 {
		t.Fatalf("fade should start at 0, got %v", s.Fade())
	}

	for i := 0; i < 300; i++ {
		s.Tick(1.0 / 60)
	}
	if f := s.Fade(); f < 0.99 {
		t.Fatalf("fade did not settle near 1: %v", f)
	}
}

func TestRenderStagesEveryRecord(t *testing.T) {
	s, r, f, _ := testScene(t)
	s.Tick(1.0 / 60)

	if err := s.Render(1.0 / 60); err != nil {
		t.Fatalf("render: %v", err)
	}

	if r.globalsWrites != 1 || r.instanceWrites != 1 {
		t.Fatalf("uploads: globals %d instances %d", r.globalsWrites, r.instanceWrites)
	}
	if len(r.lastInstances) != f.Count() {
		t.Fatalf("staged %d instances, want %d", len(r.lastInstances), f.Count())
	}
	if len(r.draws) != 1 || r.draws[0] != uint32(f.Count()) {
		t.Fatalf("draw calls: %v", r.draws)
	}
	if r.frames != 1 || r.presents != 1 {
		t.Fatalf("frame lifecycle: frames %d presents %d", r.frames, r.presents)
	}
	if r.lastTint[3] != s.Fade() {
		t.Fatalf("tint alpha %v does not match fade %v", r.lastTint[3], s.Fade())
	}
}

func TestRenderInstanceMirrorsSphere(t *testing.T) {
	s, r, f, _ := testScene(t)
	s.Tick(1.0 / 60)
	if err := s.Render(1.0 / 60); err != nil {
		t.Fatalf("render: %v", err)
	}

	spheres := f.Spheres()
	for i, inst := range r.lastInstances {
		sp := spheres[i]
		if inst.Position != [3]float32{sp.X, sp.Y, sp.Z} {
			t.Fatalf("instance %d position %v does not match record", i, inst.Position)
		}
		if inst.Opacity != sp.Opacity {
			t.Fatalf("instance %d opacity %v want %v", i, inst.Opacity, sp.Opacity)
		}
		if inst.RotA != sp.RotA || inst.RotB != sp.RotB {
			t.Fatalf("instance %d rotation mismatch", i)
		}
	}
}

func TestResizePropagates(t *testing.T) {
	s, r, _, _ := testScene(t)
	s.Resize(1920, 1080)
	if r.resizeW != 1920 || r.resizeH != 1080 {
		t.Fatalf("renderer resize: got %dx%d", r.resizeW, r.resizeH)
	}
	if got := s.Camera().Aspect(); got != 1920.0/1080.0 {
		t.Fatalf("camera aspect: got %v", got)
	}

	// Degenerate sizes during minimize must be ignored.
	s.Resize(0, 0)
	if r.resizeW != 1920 {
		t.Fatalf("zero-size resize was not ignored")
	}
}

// The engine runs Tick and Render on separate goroutines; the render side
// must only ever see the staged copy of the records, never the live slice
// the field rewrites. Run with -race.
func TestConcurrentTickAndRender(t *testing.T) {
	s, r, f, tr := testScene(t)
	tr.SetTarget(0.5, -0.5)
	s.Tick(1.0 / 60) // populate the staged buffer before the loops race

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Tick(1.0 / 60)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if err := s.Render(1.0 / 60); err != nil {
				t.Errorf("render: %v", err)
				return
			}
		}
	}()
	wg.Wait()

	if len(r.lastInstances) != f.Count() {
		t.Fatalf("staged %d instances, want %d", len(r.lastInstances), f.Count())
	}
}

func TestActiveFlag(t *testing.T) {
	s, _, _, _ := testScene(t)
	if !s.Active() {
		t.Fatalf("scene should start active")
	}
	s.SetActive(false)
	if s.Active() {
		t.Fatalf("SetActive(false) ignored")
	}
	s.SetName("renamed")
	if s.Name() != "renamed" {
		t.Fatalf("SetName ignored")
	}
}
