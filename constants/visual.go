package constants

import "time"

// Visual event lifecycle
const (
	EventLifetime = 1500 * time.Millisecond
	ParticleCount = 12
)

// Particle motion
const (
	ParticleSpeedMin   = 10.0
	ParticleSpeedRange = 10.0
	ParticleFlight     = 1 * time.Second
	ParticleStagger    = 20 * time.Millisecond
	// ParticleTravelScale converts velocity units to pixel travel at the end of flight
	ParticleTravelScale = 15.0
	// Approximate pixel size of a terminal cell
	CellPixelWidth  = 8.0
	CellPixelHeight = 16.0
)

// Randomized placement
const (
	PositionMin   = 10.0
	PositionRange = 80.0
	RotationRange = 60.0 // centered, so [-30, 30]
)

// Glyph magnitudes, in terminal rows
const (
	GlyphSizeRegular = 10
	GlyphSizeSpecial = 8
)

// BackgroundAdvanceThreshold is the random draw a non-space key must exceed to advance the background
const BackgroundAdvanceThreshold = 0.8

// Pop-in spring
const (
	PopAngularFrequency = 12.0
	PopDamping          = 0.35
)
