package pointer

// TrackerBuilderOption is a functional option for configuring a tracker.
// Use the With* functions to create options.
type TrackerBuilderOption func(*tracker)

// WithSmoothing sets the per-tick smoothing factor. Values in (0, 1)
// produce an exponential-decay approach toward the target; 1 snaps
// immediately.
//
// Parameters:
//   - smoothing: the smoothing factor (default 0.05)
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithSmoothing(smoothing float32) TrackerBuilderOption {
	return func(t *tracker) {
		t.smoothing = smoothing
	}
}

// WithWorldScale sets the multiplier converting the smoothed NDC position
// into world units.
//
// Parameters:
//   - scale: the world-scale multiplier (default 30)
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithWorldScale(scale float32) TrackerBuilderOption {
	return func(t *tracker) {
		t.worldScale = scale
	}
}
