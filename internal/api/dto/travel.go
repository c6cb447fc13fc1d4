package dto

type Point struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
	Walkable   bool    `json:"walkable"`
}

type WalkingTimeResponse struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
}

type TravelRequest struct {
	From Point  `json:"from"`
	To   Point  `json:"to"`
	Mode string `json:"mode"`
}

type TravelResponse struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	Mode            string  `json:"mode"`
}

type RouteRequest struct {
	Coordinates []Point `json:"coordinates"`
}

type RouteResponse struct {
	Order []int `json:"order"`
}
