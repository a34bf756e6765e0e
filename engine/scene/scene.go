package scene

import (
	"encoding/binary"
	"sync"

	"github.com/Carmen-Shannon/dotfield/common"
	"github.com/Carmen-Shannon/dotfield/engine/camera"
	"github.com/Carmen-Shannon/dotfield/engine/field"
	"github.com/Carmen-Shannon/dotfield/engine/pointer"
	"github.com/Carmen-Shannon/dotfield/engine/renderer"
	"github.com/charmbracelet/harmonica"
)

// Scene drives one dot field: it steps the pointer tracker and the field
// simulation on the tick loop, and stages instance data for the renderer on
// the render loop. Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// Field returns the scene's dot field.
	Field() field.Field

	// Pointer returns the scene's pointer tracker.
	Pointer() pointer.Tracker

	// Tick advances the simulation one step: the pointer tracker eases
	// toward its target, the field updates every dot from the smoothed
	// world-space pointer, the startup fade spring advances, and the
	// resulting records are staged for the render loop. The live field
	// records are only ever touched here, so the two loops never share
	// them.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last tick in seconds
	Tick(deltaTime float32)

	// Render uploads the most recently staged instance data and encodes
	// one full frame: globals upload, instance upload, render pass,
	// submit, present. Call from the render loop only.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	//
	// Returns:
	//   - error: an error if the frame could not be started
	Render(deltaTime float32) error

	// Resize propagates a new surface size to the renderer and updates the
	// camera aspect ratio.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// Fade returns the current global fade multiplier in [0, 1]. The scene
	// springs from 0 toward 1 after construction, so the field fades in
	// rather than popping.
	Fade() float32
}

type scene struct {
	mu *sync.Mutex

	name   string
	active bool

	cam     camera.Camera
	rend    renderer.Renderer
	dots    field.Field
	tracker pointer.Tracker

	dotRadius float32
	baseColor [3]float32

	spring     harmonica.Spring
	springSet  bool
	fadePos    float64
	fadeVel    float64
	fadeTarget float64

	// Double-buffered instance data: Tick writes staged under mu, Render
	// copies it into upload (render-owned) and hands that to the GPU queue.
	// Both are reused across frames to avoid per-frame allocations of
	// ~Count instances.
	staged []renderer.Instance
	upload []renderer.Instance

	meshRings    int
	meshSegments int
}

var _ Scene = &scene{}

// NewScene creates a new Scene wired to the given camera, renderer, field and
// pointer tracker, uploads the shared sphere mesh, and sizes the GPU instance
// buffer for the field's record count.
//
// Panics if any of the four collaborators is nil, or if the mesh or instance
// buffers cannot be created — a scene without GPU resources cannot render
// anything and there is no sensible way to limp along.
//
// Parameters:
//   - name: the scene's identifier
//   - cam: the camera providing the view-projection matrix
//   - r: the renderer the scene draws through
//   - f: the dot field to simulate and draw
//   - tracker: the pointer tracker feeding the field
//   - options: variadic list of SceneBuilderOption functions to configure the Scene
//
// Returns:
//   - Scene: a new instance of Scene ready for the tick and render loops
func NewScene(name string, cam camera.Camera, r renderer.Renderer, f field.Field, tracker pointer.Tracker, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}
	if f == nil {
		panic("scene: NewScene requires a non-nil Field")
	}
	if tracker == nil {
		panic("scene: NewScene requires a non-nil Tracker")
	}

	s := &scene{
		mu:           &sync.Mutex{},
		name:         name,
		active:       true,
		cam:          cam,
		rend:         r,
		dots:         f,
		tracker:      tracker,
		dotRadius:    0.12,
		baseColor:    [3]float32{0.85, 0.88, 1.0},
		fadeTarget:   1.0,
		meshRings:    12,
		meshSegments: 18,
	}

	for _, opt := range options {
		opt(s)
	}

	if !s.springSet {
		s.spring = harmonica.NewSpring(harmonica.FPS(60), 5.0, 1.0)
	}

	vertices, indices := renderer.SphereMesh(s.meshRings, s.meshSegments)
	vertexBytes := common.SliceToBytes(vertices)
	indexBytes := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(indexBytes[i*4:], idx)
	}
	if err := r.InitMesh(vertexBytes, indexBytes, len(indices)); err != nil {
		panic("scene: failed to init mesh buffers: " + err.Error())
	}
	if err := r.InitFieldBuffers(f.Count()); err != nil {
		panic("scene: failed to init field buffers: " + err.Error())
	}

	s.staged = make([]renderer.Instance, 0, f.Count())
	s.upload = make([]renderer.Instance, 0, f.Count())

	return s
}

func (s *scene) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	return s.rend
}

func (s *scene) Field() field.Field {
	return s.dots
}

func (s *scene) Pointer() pointer.Tracker {
	return s.tracker
}

func (s *scene) Tick(deltaTime float32) {
	_ = deltaTime // the simulation is tick-rate based, not wall-clock based

	s.tracker.Step()
	wx, wy := s.tracker.World()
	s.dots.Update(wx, wy)

	// Stage the updated records while still on the tick goroutine: the
	// render loop must never read the live field slice, only this copy.
	spheres := s.dots.Spheres()
	s.mu.Lock()
	s.fadePos, s.fadeVel = s.spring.Update(s.fadePos, s.fadeVel, s.fadeTarget)
	radius := s.dotRadius
	s.staged = s.staged[:0]
	for i := range spheres {
		sp := &spheres[i]
		s.staged = append(s.staged, renderer.Instance{
			Position: [3]float32{sp.X, sp.Y, sp.Z},
			Scale:    radius * sp.Scale,
			RotA:     sp.RotA,
			RotB:     sp.RotB,
			Opacity:  sp.Opacity,
		})
	}
	s.mu.Unlock()
}

func (s *scene) Render(deltaTime float32) error {
	_ = deltaTime

	s.mu.Lock()
	fade := s.fadePos
	if fade < 0 {
		fade = 0
	} else if fade > 1 {
		fade = 1
	}
	tint := [4]float32{s.baseColor[0], s.baseColor[1], s.baseColor[2], float32(fade)}
	s.upload = append(s.upload[:0], s.staged...)
	s.mu.Unlock()

	s.rend.WriteGlobals(s.cam.ViewProjectionMatrix(), tint)
	s.rend.WriteInstances(s.upload)

	if err := s.rend.BeginFrame(); err != nil {
		return err
	}
	if err := s.rend.Draw(uint32(len(s.upload))); err != nil {
		s.rend.EndFrame()
		s.rend.Present()
		return err
	}
	s.rend.EndFrame()
	s.rend.Present()
	return nil
}

func (s *scene) Resize(width, height int) {
	if height <= 0 {
		return
	}
	s.rend.Resize(width, height)
	s.cam.SetAspect(float32(width) / float32(height))
}

func (s *scene) Fade() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.fadePos
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return float32(f)
}
