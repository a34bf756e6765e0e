package pointer

import "sync"

// Default tracker parameters. The smoothing factor is the per-tick fraction
// of the remaining distance the smoothed position moves toward the target.
const (
	DefaultSmoothing  = 0.05
	DefaultWorldScale = 30.0
)

type tracker struct {
	mu sync.Mutex

	targetX, targetY     float32
	smoothedX, smoothedY float32
	touchActive          bool

	smoothing  float32
	worldScale float32
}

// Tracker maintains the raw pointer target written by input handlers and a
// smoothed position advanced once per tick. Handlers may write the target at
// arbitrary frequency from the windowing thread; the last write before a
// tick wins. The smoothed position approaches the target exponentially and
// never overshoots for smoothing factors in (0, 1).
type Tracker interface {
	// SetTarget sets the raw pointer target in normalized device
	// coordinates [-1, 1]. Called by pointer-move input handlers.
	//
	// Parameters:
	//   - x, y: target position in NDC
	SetTarget(x, y float32)

	// Target returns the current raw target in NDC.
	//
	// Returns:
	//   - x, y: the raw target position
	Target() (x, y float32)

	// SetTouchActive sets the touch-active flag. Touch-start handlers set
	// it, touch-end handlers clear it.
	//
	// Parameters:
	//   - active: the new flag value
	SetTouchActive(active bool)

	// TouchActive reports whether a touch is currently held.
	//
	// Returns:
	//   - bool: true while a touch is active
	TouchActive() bool

	// TouchMove sets the raw target like SetTarget but is honored only
	// while the touch-active flag is set. Called by touch-move handlers.
	//
	// Parameters:
	//   - x, y: target position in NDC
	TouchMove(x, y float32)

	// Step advances the smoothed position one tick toward the target:
	// smoothed += (target - smoothed) * smoothing, independently per axis.
	// Called once per frame tick.
	Step()

	// Smoothed returns the current smoothed position in NDC.
	//
	// Returns:
	//   - x, y: the smoothed position
	Smoothed() (x, y float32)

	// World returns the smoothed position scaled into world units by the
	// fixed world-scale multiplier. This is the position the field update
	// consumes.
	//
	// Returns:
	//   - x, y: the smoothed position in world units
	World() (x, y float32)
}

var _ Tracker = &tracker{}

// NewTracker creates a Tracker with a neutral (zero) target and smoothed
// position.
//
// Parameters:
//   - options: functional options to configure the tracker
//
// Returns:
//   - Tracker: the newly created tracker
func NewTracker(options ...TrackerBuilderOption) Tracker {
	t := &tracker{
		smoothing:  DefaultSmoothing,
		worldScale: DefaultWorldScale,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *tracker) SetTarget(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.targetX = x
	t.targetY = y
}

func (t *tracker) Target() (x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.targetX, t.targetY
}

func (t *tracker) SetTouchActive(active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touchActive = active
}

func (t *tracker) TouchActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.touchActive
}

func (t *tracker) TouchMove(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.touchActive {
		return
	}
	t.targetX = x
	t.targetY = y
}

func (t *tracker) Step() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.smoothedX += (t.targetX - t.smoothedX) * t.smoothing
	t.smoothedY += (t.targetY - t.smoothedY) * t.smoothing
}

func (t *tracker) Smoothed() (x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.smoothedX, t.smoothedY
}

func (t *tracker) World() (x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.smoothedX * t.worldScale, t.smoothedY * t.worldScale
}
