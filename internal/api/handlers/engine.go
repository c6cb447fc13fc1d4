package handlers

import (
	"net/http"
	"poi-logistics-service/internal/api/dto"
	"poi-logistics-service/internal/domain"
	"poi-logistics-service/internal/logistics"
	"strconv"
)

// EngineHandler exposes the logistics engine operations directly.
type EngineHandler struct {
	Engine *logistics.Engine
}

func (h *EngineHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	from, err := parseCoordinateParams(r, "lat1", "lon1")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseCoordinateParams(r, "lat2", "lon2")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		DistanceKm: h.Engine.Between(from, to),
		Walkable:   h.Engine.IsWalkable(from, to),
	})
}

func (h *EngineHandler) WalkingTime(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	km, err := parseFloatParam(r, "distance_km")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if km < 0 {
		writeError(w, r, http.StatusBadRequest, "distance_km must be >= 0, got "+strconv.FormatFloat(km, 'f', -1, 64))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.WalkingTimeResponse{
		DistanceKm:      km,
		DurationMinutes: h.Engine.EstimateWalkingTime(km),
	})
}

func (h *EngineHandler) Travel(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.TravelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	from, err := toCoordinate(req.From, "from")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	to, err := toCoordinate(req.To, "to")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// The engine would fall back to transit speed for unknown modes; the API rejects them.
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	info := h.Engine.EstimateTravel(from, to, mode)
	writeJSON(w, r, http.StatusOK, toTravelResponse(info))
}

func (h *EngineHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	coords := make([]domain.Coordinate, 0, len(req.Coordinates))
	for i, p := range req.Coordinates {
		c, err := toCoordinate(p, "coordinates["+strconv.Itoa(i)+"]")
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		coords = append(coords, c)
	}

	order := h.Engine.OptimizeRoute(coords)
	writeJSON(w, r, http.StatusOK, dto.RouteResponse{Order: order})
}
