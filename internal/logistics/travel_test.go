package logistics_test

import (
	"math/rand"
	"testing"

	"poi-logistics-service/internal/domain"
	"poi-logistics-service/internal/logistics"

	"github.com/stretchr/testify/assert"
)

var (
	colosseum = domain.Coordinate{Lat: 41.8902, Lon: 12.4922}
	trevi     = domain.Coordinate{Lat: 41.9009, Lon: 12.4833}
	equator   = domain.Coordinate{Lat: 0, Lon: 0}
	nearby    = domain.Coordinate{Lat: 0, Lon: 0.005}
	newark    = domain.Coordinate{Lat: 40.0, Lon: -74}
	faraway   = domain.Coordinate{Lat: 40.5, Lon: -74}
)

func TestEstimateTravelColosseumToTrevi(t *testing.T) {
	info := logistics.EstimateTravel(colosseum, trevi, domain.ModeAuto)

	// Raw distance is under the walking threshold but the inflated one is not.
	assert.True(t, logistics.IsWalkable(colosseum.Lat, colosseum.Lon, trevi.Lat, trevi.Lon))
	assert.Equal(t, domain.ModeTransit, info.Mode)
	assert.InDelta(t, 1.82, info.DistanceKm, 0.001)
	assert.Equal(t, 15, info.DurationMinutes)
}

func TestEstimateTravelModes(t *testing.T) {
	tests := []struct {
		name     string
		from, to domain.Coordinate
		mode     domain.Mode
		wantMode domain.Mode
		wantKm   float64
		wantMin  int
	}{
		{"auto short walk", equator, nearby, domain.ModeAuto, domain.ModeWalk, 0.72, 11},
		{"auto long drive", newark, faraway, domain.ModeAuto, domain.ModeDrive, 72.28, 144},
		{"explicit bike", newark, faraway, domain.ModeBike, domain.ModeBike, 72.28, 289},
		{"explicit transit", newark, faraway, domain.ModeTransit, domain.ModeTransit, 72.28, 226},
		{"explicit walk adds orientation", newark, faraway, domain.ModeWalk, domain.ModeWalk, 72.28, 965},
		{"unknown mode uses transit speed without buffer", newark, faraway, domain.Mode("boat"), domain.Mode("boat"), 72.28, 216},
		{"same point floors to minimum", equator, equator, domain.ModeAuto, domain.ModeWalk, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := logistics.EstimateTravel(tt.from, tt.to, tt.mode)
			assert.Equal(t, tt.wantMode, info.Mode)
			assert.InDelta(t, tt.wantKm, info.DistanceKm, 0.001)
			assert.Equal(t, tt.wantMin, info.DurationMinutes)
		})
	}
}

func TestEstimateTravelProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	e := logistics.Default()

	for i := 0; i < 500; i++ {
		lat1, lon1 := randomCoord(r)
		// Keep most pairs local so all three auto modes are exercised.
		from := domain.Coordinate{Lat: lat1, Lon: lon1}
		to := domain.Coordinate{Lat: clamp(lat1+r.NormFloat64()*0.03, -90, 90), Lon: lon1}

		info := e.EstimateTravel(from, to, domain.ModeAuto)
		road := e.Between(from, to) * logistics.RoadFactor

		assert.GreaterOrEqual(t, info.DurationMinutes, logistics.MinDurationMinutes)
		assert.GreaterOrEqual(t, info.DistanceKm, 0.0)
		assert.Equal(t, e.SelectMode(road), info.Mode)
		assert.Equal(t, info, e.EstimateTravel(from, to, domain.ModeAuto))
	}
}

func TestSelectModeThresholds(t *testing.T) {
	e := logistics.Default()

	assert.Equal(t, domain.ModeWalk, e.SelectMode(0))
	assert.Equal(t, domain.ModeWalk, e.SelectMode(1.5))
	assert.Equal(t, domain.ModeTransit, e.SelectMode(1.5001))
	assert.Equal(t, domain.ModeTransit, e.SelectMode(5.0))
	assert.Equal(t, domain.ModeDrive, e.SelectMode(5.0001))
}

func TestEstimateWalkingTime(t *testing.T) {
	assert.Equal(t, 5, logistics.EstimateWalkingTime(0.3))
	assert.Equal(t, 5, logistics.EstimateWalkingTime(0))
	assert.Equal(t, 13, logistics.EstimateWalkingTime(1.0))
	assert.Equal(t, 60, logistics.EstimateWalkingTime(4.5))
}

func TestIsWalkable(t *testing.T) {
	assert.True(t, logistics.IsWalkable(0, 0, 0, 0))
	assert.True(t, logistics.IsWalkable(0, 0, 0, 0.01))
	assert.False(t, logistics.IsWalkable(0, 0, 0, 0.05))
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
