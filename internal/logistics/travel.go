package logistics

import (
	"math"

	"poi-logistics-service/internal/domain"
)

// SelectMode picks a transport mode for a road-inflated distance.
func (e *Engine) SelectMode(roadKm float64) domain.Mode {
	switch {
	case roadKm <= e.params.WalkThresholdKm:
		return domain.ModeWalk
	case roadKm <= e.params.TransitThresholdKm:
		return domain.ModeTransit
	default:
		return domain.ModeDrive
	}
}

// speed returns the average speed for m. Unrecognized modes travel at transit
// speed rather than failing.
func (e *Engine) speed(m domain.Mode) float64 {
	if s, ok := e.params.Speeds[m]; ok {
		return s
	}
	return e.params.Speeds[domain.ModeTransit]
}

// EstimateTravel estimates road distance, duration and mode between two points.
//
// The straight-line distance is inflated by RoadFactor. With ModeAuto the mode
// is chosen from the inflated distance. Duration is the floored travel time at
// the mode's speed plus the mode's buffer, never less than MinDurationMinutes.
func (e *Engine) EstimateTravel(from, to domain.Coordinate, mode domain.Mode) domain.TravelInfo {
	roadKm := e.Between(from, to) * e.params.RoadFactor

	if mode == domain.ModeAuto {
		mode = e.SelectMode(roadKm)
	}

	minutes := int(math.Floor(roadKm / e.speed(mode) * 60))
	minutes += e.params.Buffers[mode]
	minutes = max(minutes, e.params.MinDurationMinutes)

	return domain.TravelInfo{
		DistanceKm:      roundTo2(roadKm),
		DurationMinutes: minutes,
		Mode:            mode,
	}
}

// EstimateWalkingTime converts an already known distance into walking minutes.
// No road factor or buffer is applied; the minimum duration still holds.
func (e *Engine) EstimateWalkingTime(distanceKm float64) int {
	minutes := int(math.Floor(distanceKm / e.params.Speeds[domain.ModeWalk] * 60))
	return max(minutes, e.params.MinDurationMinutes)
}

// IsWalkable reports whether the straight-line distance is within walking range.
func (e *Engine) IsWalkable(from, to domain.Coordinate) bool {
	return e.Between(from, to) <= e.params.WalkThresholdKm
}

// EstimateTravel uses the default engine.
func EstimateTravel(from, to domain.Coordinate, mode domain.Mode) domain.TravelInfo {
	return defaultEngine.EstimateTravel(from, to, mode)
}

// EstimateWalkingTime uses the default engine.
func EstimateWalkingTime(distanceKm float64) int {
	return defaultEngine.EstimateWalkingTime(distanceKm)
}

// IsWalkable uses the default engine.
func IsWalkable(lat1, lon1, lat2, lon2 float64) bool {
	return defaultEngine.IsWalkable(domain.Coordinate{Lat: lat1, Lon: lon1}, domain.Coordinate{Lat: lat2, Lon: lon2})
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
