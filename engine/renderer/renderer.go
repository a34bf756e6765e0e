package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/dotfield/engine/window"
)

// RendererBackendType selects the rendering backend implementation.
type RendererBackendType int

const (
	// BackendTypeWGPU is the WebGPU backend (the only backend currently).
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how frames are delivered to the display.
type PresentMode int

const (
	// PresentModeVSync synchronizes presentation with the display refresh.
	PresentModeVSync PresentMode = iota
	// PresentModeUncapped presents as fast as the GPU allows.
	PresentModeUncapped
)

// MSAASampleCount is the multisample anti-aliasing sample count.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4
)

// Vertex is the CPU-side layout of one mesh vertex (24 bytes).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Instance is the CPU-side layout of one dot instance as uploaded to the
// GPU storage buffer each frame (32 bytes, matching the WGSL Instance
// struct: pos_scale followed by rot_opacity).
type Instance struct {
	Position [3]float32
	Scale    float32
	RotA     float32
	RotB     float32
	Opacity  float32
	_        float32
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	pendingClearColor    *[4]float64
}

// Renderer draws the dot field. It owns the GPU surface, the single
// instanced render pipeline, the shared mesh buffers, and the per-frame
// instance storage buffer. The scene writes globals and instances once per
// frame and then runs the BeginFrame/Draw/EndFrame/Present cycle.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when the window is resized.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the surface present mode.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitMesh creates GPU vertex and index buffers from raw byte data.
	// All instances share this one mesh.
	//
	// Parameters:
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - indexData: the raw index data bytes to upload to the GPU
	//   - indexCount: the number of indices, used for draw calls
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMesh(vertexData, indexData []byte, indexCount int) error

	// InitFieldBuffers creates the globals uniform buffer, the instance
	// storage buffer sized for maxInstances, and the bind group tying both
	// to the pipeline. Must be called once before the first frame.
	//
	// Parameters:
	//   - maxInstances: capacity of the instance buffer
	//
	// Returns:
	//   - error: an error if buffer or bind group creation fails
	InitFieldBuffers(maxInstances int) error

	// WriteGlobals uploads the per-frame globals: the combined
	// view-projection matrix and the tint color whose alpha carries the
	// global fade multiplier.
	//
	// Parameters:
	//   - viewProjection: column-major view-projection matrix
	//   - tint: RGBA tint; alpha multiplies every instance's opacity
	WriteGlobals(viewProjection [16]float32, tint [4]float32)

	// WriteInstances uploads the per-frame instance data. Instances beyond
	// the capacity passed to InitFieldBuffers are dropped.
	//
	// Parameters:
	//   - instances: the staged instance slice
	WriteInstances(instances []Instance)

	// BeginFrame acquires the swapchain texture and begins the render pass.
	// Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// Draw encodes the instanced draw command within the current render pass.
	//
	// Parameters:
	//   - instanceCount: the number of instances to draw
	//
	// Returns:
	//   - error: an error if no frame is in progress
	Draw(instanceCount uint32) error

	// EndFrame ends the render pass and submits the command buffer to the
	// GPU. Does not present — call Present() after EndFrame.
	EndFrame()

	// Present presents the surface to the display and releases the
	// swapchain texture. Must be called once per frame after EndFrame.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer targeting the given window's surface.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window whose surface the renderer draws into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}
	clear := [4]float64{0.02, 0.02, 0.05, 1.0}
	if r.pendingClearColor != nil {
		clear = *r.pendingClearColor
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, clear)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) InitMesh(vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMesh(vertexData, indexData, indexCount)
}

func (r *renderer) InitFieldBuffers(maxInstances int) error {
	return r.backend.InitFieldBuffers(maxInstances)
}

func (r *renderer) WriteGlobals(viewProjection [16]float32, tint [4]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.WriteGlobals(viewProjection, tint)
}

func (r *renderer) WriteInstances(instances []Instance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.WriteInstances(instances)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) Draw(instanceCount uint32) error {
	return r.backend.Draw(instanceCount)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}
