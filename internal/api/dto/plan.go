package dto

import "time"

type PlanStopRequest struct {
	ID   string  `json:"poi_id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Exactly one of POIIDs and Stops must be set.
type PlanRequest struct {
	POIIDs       []string          `json:"poi_ids"`
	Stops        []PlanStopRequest `json:"stops"`
	DepartAt     *time.Time        `json:"depart_at"`
	Mode         string            `json:"mode"`
	DwellMinutes int               `json:"dwell_minutes"`
}

type PlanStopResponse struct {
	POIID        string          `json:"poi_id"`
	Name         string          `json:"name"`
	Lat          float64         `json:"lat"`
	Lon          float64         `json:"lon"`
	ArriveAt     time.Time       `json:"arrive_at"`
	FromPrevious *TravelResponse `json:"travel_from_previous"`
}

type PlanResponse struct {
	DepartAt             time.Time          `json:"depart_at"`
	Order                []int              `json:"order"`
	TotalDistanceKm      float64            `json:"total_distance_km"`
	TotalDurationMinutes int                `json:"total_duration_minutes"`
	Stops                []PlanStopResponse `json:"stops"`
}
