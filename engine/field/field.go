package field

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/aquilax/go-perlin"
)

// secondAxisRatio is the fixed ratio between a sphere's secondary and
// primary self-rotation speed.
const secondAxisRatio = 0.7

// Default field parameters. The defaults produce a 150x150 grid of 22500
// spheres reacting within an 8 world-unit influence radius.
const (
	DefaultExtent            = 60.0
	DefaultSpacing           = 0.4
	DefaultInfluenceRadius   = 8.0
	DefaultMinZ              = -3.0
	DefaultMaxZ              = 3.0
	DefaultMinOpacity        = 0.1
	DefaultMaxOpacity        = 0.9
	DefaultMinScale          = 0.8
	DefaultMaxScale          = 1.2
	DefaultDepthSmoothing    = 0.1
	DefaultRotationSpeedBase = 0.002
	DefaultRotationSpeedSpan = 0.008
)

// Sphere is a single record in the field. X, Y, and RotSpeed are fixed at
// creation; Z, Opacity, Scale, RotA, and RotB are rewritten every tick by
// Update. RotA and RotB increase monotonically.
type Sphere struct {
	X, Y float32

	Z       float32
	Opacity float32
	Scale   float32

	RotA, RotB float32
	RotSpeed   float32
}

type fieldImpl struct {
	spheres []Sphere

	extent  float32
	spacing float32
	radius  float32

	minZ, maxZ             float32
	minOpacity, maxOpacity float32
	minScale, maxScale     float32
	depthSmoothing         float32

	rotSpeedBase float32
	rotSpeedSpan float32

	// Idle drift: a slow Perlin wave added to the depth target so the field
	// breathes when the pointer is idle. Amplitude 0 disables it.
	driftAmplitude float32
	driftFrequency float64
	driftSpeed     float64
	driftTime      float64
	noise          *perlin.Perlin
	noiseSeed      int64

	// updatePool fans the per-tick sphere transform out across a bounded set
	// of reusable goroutines. Records are independent, so chunked parallel
	// execution is observably identical to the sequential loop.
	updatePool worker.DynamicWorkerPool
	workers    int
}

// Field holds the flat collection of sphere records and applies the
// per-tick transform. The record count is fixed after construction; no
// insertion or removal happens at runtime.
type Field interface {
	// Count returns the number of sphere records in the field.
	//
	// Returns:
	//   - int: the record count
	Count() int

	// Spheres returns the backing record slice. The slice is owned by the
	// Field and rewritten by Update; callers must treat it as read-only,
	// must not retain it across ticks, and must not read it concurrently
	// with Update — readers on other goroutines get a staged copy instead.
	//
	// Returns:
	//   - []Sphere: the live record slice
	Spheres() []Sphere

	// Update applies one tick of the field transform given the current
	// world-space pointer position. For every record it recomputes the
	// pointer distance, eases depth 10% of the remaining way toward its
	// falloff target, assigns opacity and scale targets directly, and
	// advances both self-rotation angles by the record's fixed speed.
	// An empty field is a no-op.
	//
	// Parameters:
	//   - pointerX, pointerY: smoothed pointer position in world units
	Update(pointerX, pointerY float32)

	// InfluenceRadius returns the configured influence radius in world units.
	//
	// Returns:
	//   - float32: the influence radius
	InfluenceRadius() float32
}

var _ Field = &fieldImpl{}

// NewField creates the sphere grid from the configured extent and spacing.
// Each axis holds int(extent/spacing) records placed from -extent/2 in
// spacing steps, so the total count is the square of that and deterministic
// for a given configuration. Rotation speeds are drawn once per record from
// a bounded uniform range and never change afterwards.
//
// Parameters:
//   - options: functional options to configure the field
//
// Returns:
//   - Field: the newly created field
func NewField(options ...FieldBuilderOption) Field {
	f := &fieldImpl{
		extent:         DefaultExtent,
		spacing:        DefaultSpacing,
		radius:         DefaultInfluenceRadius,
		minZ:           DefaultMinZ,
		maxZ:           DefaultMaxZ,
		minOpacity:     DefaultMinOpacity,
		maxOpacity:     DefaultMaxOpacity,
		minScale:       DefaultMinScale,
		maxScale:       DefaultMaxScale,
		depthSmoothing: DefaultDepthSmoothing,
		rotSpeedBase:   DefaultRotationSpeedBase,
		rotSpeedSpan:   DefaultRotationSpeedSpan,
		driftFrequency: 0.05,
		driftSpeed:     0.004,
		workers:        max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(f)
	}

	f.noise = perlin.NewPerlin(2, 2, 3, f.noiseSeed)

	perAxis := 0
	if f.spacing > 0 {
		perAxis = int(f.extent / f.spacing)
	}
	f.spheres = make([]Sphere, 0, perAxis*perAxis)
	half := f.extent / 2
	for i := 0; i < perAxis; i++ {
		for j := 0; j < perAxis; j++ {
			f.spheres = append(f.spheres, Sphere{
				X:        -half + float32(i)*f.spacing,
				Y:        -half + float32(j)*f.spacing,
				Opacity:  f.minOpacity,
				Scale:    f.minScale,
				RotSpeed: f.rotSpeedBase + rand.Float32()*f.rotSpeedSpan,
			})
		}
	}

	// The pool is created after options so WithWorkers can override the
	// default. Queue size 256 leaves headroom over the chunk count.
	if f.workers > 1 {
		f.updatePool = worker.NewDynamicWorkerPool(f.workers, 256, 1*time.Second)
	}

	return f
}

func (f *fieldImpl) Count() int {
	return len(f.spheres)
}

func (f *fieldImpl) Spheres() []Sphere {
	return f.spheres
}

func (f *fieldImpl) InfluenceRadius() float32 {
	return f.radius
}

func (f *fieldImpl) Update(pointerX, pointerY float32) {
	if len(f.spheres) == 0 {
		return
	}

	if f.updatePool == nil {
		f.updateRange(0, len(f.spheres), pointerX, pointerY)
		f.driftTime += f.driftSpeed
		return
	}

	// Chunked fan-out with a WaitGroup barrier: workers are reused across
	// ticks, and the barrier keeps the tick synchronous for the caller.
	chunk := (len(f.spheres) + f.workers - 1) / f.workers
	var wg sync.WaitGroup
	for start := 0; start < len(f.spheres); start += chunk {
		end := min(start+chunk, len(f.spheres))
		wg.Add(1)
		s, e := start, end
		f.updatePool.SubmitTask(worker.Task{
			ID: s,
			Do: func() (any, error) {
				defer wg.Done()
				f.updateRange(s, e, pointerX, pointerY)
				return nil, nil
			},
		})
	}
	wg.Wait()
	f.driftTime += f.driftSpeed
}

// updateRange applies the per-record transform to records [start, end).
// Safe to run concurrently for disjoint ranges: each record only reads its
// own fields plus the immutable field configuration.
func (f *fieldImpl) updateRange(start, end int, pointerX, pointerY float32) {
	for i := start; i < end; i++ {
		s := &f.spheres[i]

		dx := s.X - pointerX
		dy := s.Y - pointerY
		d := float32(math.Sqrt(float64(dx*dx + dy*dy)))

		target := DepthTarget(d, f.radius, f.minZ, f.maxZ)
		if f.driftAmplitude > 0 {
			target += f.driftAmplitude * float32(f.noise.Noise2D(
				float64(s.X)*f.driftFrequency+f.driftTime,
				float64(s.Y)*f.driftFrequency,
			))
		}
		// Depth eases toward its target independently of the pointer
		// smoothing; opacity and scale snap to theirs each tick.
		s.Z += (target - s.Z) * f.depthSmoothing
		s.Opacity = OpacityTarget(d, f.radius, f.minOpacity, f.maxOpacity)
		s.Scale = ScaleTarget(d, f.radius, f.minScale, f.maxScale)

		s.RotA += s.RotSpeed
		s.RotB += s.RotSpeed * secondAxisRatio
	}
}
