package field

// FieldBuilderOption is a functional option for configuring a field.
// Use the With* functions to create options.
type FieldBuilderOption func(*fieldImpl)

// WithExtent sets the grid extent per axis in world units.
//
// Parameters:
//   - extent: world-unit width/height of the grid
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithExtent(extent float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.extent = extent
	}
}

// WithSpacing sets the distance between neighboring grid positions.
// The per-axis record count is int(extent / spacing).
//
// Parameters:
//   - spacing: world-unit step between records
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithSpacing(spacing float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.spacing = spacing
	}
}

// WithInfluenceRadius sets the pointer influence radius. Records farther
// than this from the pointer settle at the minimum depth, opacity, and scale.
//
// Parameters:
//   - radius: influence radius in world units
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithInfluenceRadius(radius float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.radius = radius
	}
}

// WithDepthRange sets the depth bounds reached at the influence edge and at
// zero pointer distance respectively.
//
// Parameters:
//   - minZ: far-field depth offset
//   - maxZ: depth offset under the pointer
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithDepthRange(minZ, maxZ float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.minZ = minZ
		f.maxZ = maxZ
	}
}

// WithOpacityRange sets the opacity bounds reached at the influence edge and
// at zero pointer distance respectively.
//
// Parameters:
//   - minOpacity: far-field opacity
//   - maxOpacity: opacity under the pointer
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithOpacityRange(minOpacity, maxOpacity float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.minOpacity = minOpacity
		f.maxOpacity = maxOpacity
	}
}

// WithScaleRange sets the scale bounds reached at the influence edge and at
// zero pointer distance respectively.
//
// Parameters:
//   - minScale: far-field scale multiplier
//   - maxScale: scale multiplier under the pointer
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithScaleRange(minScale, maxScale float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.minScale = minScale
		f.maxScale = maxScale
	}
}

// WithDepthSmoothing sets the per-tick fraction of the remaining distance
// that each record's depth moves toward its target. Must be in (0, 1] for
// convergence.
//
// Parameters:
//   - fraction: easing fraction per tick (default 0.1)
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithDepthSmoothing(fraction float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.depthSmoothing = fraction
	}
}

// WithRotationSpeedRange sets the bounds of the uniform distribution each
// record's self-rotation speed is drawn from at creation: base + rand*span.
//
// Parameters:
//   - base: minimum rotation speed in radians per tick
//   - span: width of the random range above the base
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithRotationSpeedRange(base, span float32) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.rotSpeedBase = base
		f.rotSpeedSpan = span
	}
}

// WithDrift enables the idle Perlin drift added to each record's depth
// target. Amplitude 0 (the default) disables it.
//
// Parameters:
//   - amplitude: world-unit height of the drift wave
//   - frequency: spatial frequency of the wave across the grid
//   - speed: how far the wave advances per tick
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithDrift(amplitude float32, frequency, speed float64) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.driftAmplitude = amplitude
		f.driftFrequency = frequency
		f.driftSpeed = speed
	}
}

// WithDriftSeed sets the seed for the drift noise source.
//
// Parameters:
//   - seed: the noise seed
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithDriftSeed(seed int64) FieldBuilderOption {
	return func(f *fieldImpl) {
		f.noiseSeed = seed
	}
}

// WithWorkers sets the number of pool workers used for the per-tick
// transform. A value of 1 runs the update sequentially on the caller.
//
// Parameters:
//   - workers: worker count (default NumCPU-1, minimum 1)
//
// Returns:
//   - FieldBuilderOption: option function to apply
func WithWorkers(workers int) FieldBuilderOption {
	return func(f *fieldImpl) {
		if workers < 1 {
			workers = 1
		}
		f.workers = workers
	}
}
