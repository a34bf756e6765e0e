package renderer

// RendererBuilderOption is a function that configures a renderer before the
// backend is created.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the initial present mode of the surface.
//
// Parameters:
//   - mode: the PresentMode to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode to the renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count. Defaults to 4x.
//
// Parameters:
//   - samples: the MSAASampleCount to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the sample count to the renderer
func WithMSAA(samples MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &samples
	}
}

// WithClearColor sets the background color the surface is cleared to each
// frame. Defaults to a near-black blue.
//
// Parameters:
//   - red: red channel in [0, 1]
//   - green: green channel in [0, 1]
//   - blue: blue channel in [0, 1]
//   - alpha: alpha channel in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color to the renderer
func WithClearColor(red, green, blue, alpha float64) RendererBuilderOption {
	return func(r *renderer) {
		c := [4]float64{red, green, blue, alpha}
		r.pendingClearColor = &c
	}
}

// WithForceSoftwareRenderer forces the use of a software (fallback) adapter.
// Useful for headless environments or driver troubleshooting.
//
// Parameters:
//   - force: whether to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the fallback flag to the renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
