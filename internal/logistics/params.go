// Package logistics estimates travel between points of interest and orders them
// into a visiting sequence. All operations are pure functions of their inputs
// and an immutable Params set, so an Engine may be shared across goroutines.
package logistics

import (
	"fmt"
	"maps"
	"math"

	"poi-logistics-service/internal/domain"
)

const (
	EarthRadiusKm      = 6371.0
	RoadFactor         = 1.3
	WalkThresholdKm    = 1.5
	TransitThresholdKm = 5.0
	MinDurationMinutes = 5
)

// Tuning constants used by an Engine.
// Speeds are km/h; Buffers are minutes added after the base duration.
type Params struct {
	EarthRadiusKm      float64
	RoadFactor         float64
	WalkThresholdKm    float64
	TransitThresholdKm float64
	MinDurationMinutes int
	Speeds             map[domain.Mode]float64
	Buffers            map[domain.Mode]int
}

// DefaultParams returns a fresh copy of the calibrated defaults.
func DefaultParams() Params {
	return Params{
		EarthRadiusKm:      EarthRadiusKm,
		RoadFactor:         RoadFactor,
		WalkThresholdKm:    WalkThresholdKm,
		TransitThresholdKm: TransitThresholdKm,
		MinDurationMinutes: MinDurationMinutes,
		Speeds: map[domain.Mode]float64{
			domain.ModeWalk:    4.5,
			domain.ModeTransit: 20.0,
			domain.ModeDrive:   30.0,
			domain.ModeBike:    15.0,
		},
		Buffers: map[domain.Mode]int{
			domain.ModeTransit: 10, // wait time
			domain.ModeWalk:    2,  // orientation time
		},
	}
}

// Validate checks every field that the estimator divides by or compares against.
func (p Params) Validate() error {
	if !(p.EarthRadiusKm > 0) {
		return fmt.Errorf("%w: earth radius must be positive, got %v", domain.ErrInvalidParams, p.EarthRadiusKm)
	}
	if !(p.RoadFactor >= 1) || math.IsInf(p.RoadFactor, 0) {
		return fmt.Errorf("%w: road factor must be >= 1, got %v", domain.ErrInvalidParams, p.RoadFactor)
	}
	if !(p.WalkThresholdKm >= 0) || !(p.TransitThresholdKm >= p.WalkThresholdKm) {
		return fmt.Errorf(
			"%w: thresholds must satisfy 0 <= walk <= transit, got walk=%v transit=%v",
			domain.ErrInvalidParams, p.WalkThresholdKm, p.TransitThresholdKm,
		)
	}
	if p.MinDurationMinutes < 0 {
		return fmt.Errorf("%w: min duration must be >= 0, got %d", domain.ErrInvalidParams, p.MinDurationMinutes)
	}
	for _, m := range domain.Modes {
		if !(p.Speeds[m] > 0) {
			return fmt.Errorf("%w: speed for mode %q must be positive, got %v", domain.ErrInvalidParams, m, p.Speeds[m])
		}
	}
	for m, b := range p.Buffers {
		if b < 0 {
			return fmt.Errorf("%w: buffer for mode %q must be >= 0, got %d", domain.ErrInvalidParams, m, b)
		}
	}
	return nil
}

// Engine evaluates the logistics operations against one Params set.
type Engine struct {
	params Params
}

// NewEngine validates p and takes a private copy of its tables.
func NewEngine(p Params) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	p.Speeds = maps.Clone(p.Speeds)
	p.Buffers = maps.Clone(p.Buffers)
	if p.Buffers == nil {
		p.Buffers = map[domain.Mode]int{}
	}

	return &Engine{params: p}, nil
}

// Params returns a copy of the engine's configuration.
func (e *Engine) Params() Params {
	p := e.params
	p.Speeds = maps.Clone(p.Speeds)
	p.Buffers = maps.Clone(p.Buffers)
	return p
}

var defaultEngine = mustEngine(DefaultParams())

func mustEngine(p Params) *Engine {
	e, err := NewEngine(p)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the engine built from DefaultParams.
func Default() *Engine { return defaultEngine }
