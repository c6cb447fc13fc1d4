package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visiting sequence expressed as indices into the input coordinate list.
// It is always a permutation of 0..n-1.
type RouteOrder []int

// A point of interest with a stable identifier.
type POI struct {
	ID         uuid.UUID
	Name       string
	Coordinate Coordinate
}

// Represents a single stop in a planned day.
// Travel describes the leg from the previous stop and is nil for the first stop.
type PlannedStop struct {
	POI      POI
	ArriveAt time.Time
	Travel   *TravelInfo
}

// Represents the sequenced and timed stops of one itinerary day.
// TotalDistanceKm and TotalDurationMinutes cover travel only, not dwell time.
type DayPlan struct {
	DepartAt             time.Time
	Order                RouteOrder
	Stops                []PlannedStop
	TotalDistanceKm      float64
	TotalDurationMinutes int
}
