package parameter

import (
	"time"
)

// Scene Layout
const (
	// RootCount is the number of bolts placed around the ring
	RootCount = 12

	// RootSteps is the segment count of every root bolt
	RootSteps = 5

	// MinRootSteps is the smallest root segmentation that still allows a child span
	MinRootSteps = 2

	// ChildCount is the number of children attached to each bolt that has children
	ChildCount = 2

	// ChildDepth is the number of child generations below a root
	ChildDepth = 1

	// RadiusFactor is the ring radius as a fraction of surface width
	RadiusFactor = 1.0 / 3.0
)

// Bolt Style Defaults
const (
	BoltSpeed      = 0.025
	BoltAmplitude  = 1.0
	BoltLineWidth  = 5.0
	BoltGlowRadius = 50.0
	BoltAlpha      = 1.0
	BoltGlowAlpha  = 0.25

	// BoltColorHex and BoltGlowColorHex are white core and white halo
	BoltColorHex     = "#ffffff"
	BoltGlowColorHex = "#ffffff"
)

// Generation Scaling (applied per child generation, compounding)
const (
	ChildSpeedScale     = 1.35
	ChildLineWidthScale = 0.75

	// ChildJitterScale widens the jitter band of parented bolts relative to their length
	ChildJitterScale = 1.5
)

// Path Geometry
const (
	// JitterClamp caps the jitter band width in surface units
	JitterClamp = 750.0

	// NoiseSpatialDivisor converts point index to noise coordinate (fixed frequency)
	NoiseSpatialDivisor = 60.0

	// PhaseJitterMin is the lower bound of the per-frame phase advance as a fraction of speed
	PhaseJitterMin = 0.2

	// StrokeWidthMax is the upper bound of the per-frame randomized stroke width
	StrokeWidthMax = 12.0
)

// Noise
const (
	NoiseOctaves = 6
	NoiseFalloff = 0.5
)

// Re-span Timer
const (
	// RespanMaxDelay is the exclusive upper bound of the randomized re-span interval
	RespanMaxDelay = 1500 * time.Millisecond

	// MinChildSpan is the minimum number of parent steps a child covers
	MinChildSpan = 2
)
