package field

import "math"

// Falloff curve exponents. Opacity deliberately uses a softer curve than
// depth and scale; the asymmetry is tuned, do not unify.
const (
	depthExponent   = 2.0
	opacityExponent = 1.5
	scaleExponent   = 2.0
)

// NormalizedDistance maps a planar distance to [0, 1] against the influence
// radius. Distances at or beyond the radius saturate at 1, and negative
// inputs clamp to 0, so every falloff curve stays bounded for arbitrary
// real inputs.
//
// Parameters:
//   - d: planar distance from the sphere to the pointer in world units
//   - radius: influence radius in world units
//
// Returns:
//   - float32: the normalized distance in [0, 1]
func NormalizedDistance(d, radius float32) float32 {
	if radius <= 0 {
		return 1
	}
	n := d / radius
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// DepthTarget computes the depth a sphere should settle at for a given
// pointer distance. Quadratic falloff: zero distance reaches maxZ, distances
// beyond the influence radius settle at minZ.
//
// Parameters:
//   - d: planar distance from the sphere to the pointer in world units
//   - radius: influence radius in world units
//   - minZ, maxZ: depth bounds in world units
//
// Returns:
//   - float32: the target depth offset
func DepthTarget(d, radius, minZ, maxZ float32) float32 {
	n := NormalizedDistance(d, radius)
	return minZ + (maxZ-minZ)*powf(1-n, depthExponent)
}

// OpacityTarget computes the opacity a sphere should display for a given
// pointer distance. Uses a 1.5 exponent falloff and clamps the result to
// [0, 1] to guard against floating-point drift.
//
// Parameters:
//   - d: planar distance from the sphere to the pointer in world units
//   - radius: influence radius in world units
//   - minOpacity, maxOpacity: opacity bounds
//
// Returns:
//   - float32: the target opacity in [0, 1]
func OpacityTarget(d, radius, minOpacity, maxOpacity float32) float32 {
	n := NormalizedDistance(d, radius)
	o := minOpacity + (maxOpacity-minOpacity)*powf(1-n, opacityExponent)
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// ScaleTarget computes the scale multiplier a sphere should display for a
// given pointer distance. Quadratic falloff matching DepthTarget.
//
// Parameters:
//   - d: planar distance from the sphere to the pointer in world units
//   - radius: influence radius in world units
//   - minScale, maxScale: scale bounds
//
// Returns:
//   - float32: the target scale multiplier
func ScaleTarget(d, radius, minScale, maxScale float32) float32 {
	n := NormalizedDistance(d, radius)
	return minScale + (maxScale-minScale)*powf(1-n, scaleExponent)
}

func powf(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
