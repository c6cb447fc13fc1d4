package handlers

import (
	"log"
	"net/http"
	"poi-logistics-service/internal/api/dto"
	"poi-logistics-service/internal/domain"
	"poi-logistics-service/internal/logistics"
	"poi-logistics-service/internal/ports"
	"poi-logistics-service/internal/services"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Keeps the O(n²) sequencing bounded per request.
const maxPlanStops = 100

type PlanHandler struct {
	Repo   ports.POIRepository
	Engine *logistics.Engine
}

// Plan sequences and times one itinerary day, given either POI ids resolved
// through the repository or inline stops with coordinates.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if (len(req.POIIDs) == 0) == (len(req.Stops) == 0) {
		writeError(w, r, http.StatusBadRequest, "exactly one of poi_ids or stops is required")
		return
	}
	if len(req.POIIDs) > maxPlanStops || len(req.Stops) > maxPlanStops {
		writeError(w, r, http.StatusBadRequest, "at most "+strconv.Itoa(maxPlanStops)+" stops are allowed")
		return
	}

	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.DwellMinutes < 0 || req.DwellMinutes > 24*60 {
		writeError(w, r, http.StatusBadRequest, "dwell_minutes must be between 0 and 1440")
		return
	}

	depart := time.Now().UTC()
	if req.DepartAt != nil {
		depart = *req.DepartAt
	}

	svcReq := services.PlanDayRequest{
		DepartAt:     depart,
		Mode:         mode,
		DwellMinutes: req.DwellMinutes,
	}

	var plan *domain.DayPlan
	if len(req.POIIDs) > 0 {
		if h.Repo == nil {
			writeError(w, r, http.StatusServiceUnavailable, "poi lookup is not configured")
			return
		}

		ids := make([]uuid.UUID, 0, len(req.POIIDs))
		for i, raw := range req.POIIDs {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				writeError(w, r, http.StatusBadRequest, "poi_ids["+strconv.Itoa(i)+"] is not a valid uuid")
				return
			}
			ids = append(ids, id)
		}

		plan, err = services.PlanDayForPOIs(r.Context(), svcReq, ids, h.Repo, h.Engine)
	} else {
		pois := make([]domain.POI, 0, len(req.Stops))
		for i, s := range req.Stops {
			p := domain.POI{Name: s.Name, Coordinate: domain.Coordinate{Lat: s.Lat, Lon: s.Lon}}
			if err := p.Coordinate.Validate(); err != nil {
				writeError(w, r, http.StatusBadRequest, "stops["+strconv.Itoa(i)+"]: "+err.Error())
				return
			}
			if s.ID != "" {
				if p.ID, err = uuid.Parse(strings.TrimSpace(s.ID)); err != nil {
					writeError(w, r, http.StatusBadRequest, "stops["+strconv.Itoa(i)+"].poi_id is not a valid uuid")
					return
				}
			}
			pois = append(pois, p)
		}

		plan, err = services.PlanDay(r.Context(), svcReq, pois, h.Engine)
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("plan day failed: %v", err)
			writeError(w, r, status, "internal server error")
			return
		}
		writeError(w, r, status, err.Error())
		return
	}

	res := dto.PlanResponse{
		DepartAt:             plan.DepartAt,
		Order:                plan.Order,
		TotalDistanceKm:      plan.TotalDistanceKm,
		TotalDurationMinutes: plan.TotalDurationMinutes,
		Stops:                make([]dto.PlanStopResponse, 0, len(plan.Stops)),
	}
	for _, s := range plan.Stops {
		stop := dto.PlanStopResponse{
			Name:     s.POI.Name,
			Lat:      s.POI.Coordinate.Lat,
			Lon:      s.POI.Coordinate.Lon,
			ArriveAt: s.ArriveAt,
		}
		if s.POI.ID != uuid.Nil {
			stop.POIID = s.POI.ID.String()
		}
		if s.Travel != nil {
			t := toTravelResponse(*s.Travel)
			stop.FromPrevious = &t
		}
		res.Stops = append(res.Stops, stop)
	}

	writeJSON(w, r, http.StatusOK, res)
}
