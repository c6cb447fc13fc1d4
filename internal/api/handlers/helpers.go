package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"poi-logistics-service/internal/api/dto"
	"poi-logistics-service/internal/domain"
	"strconv"
)

// Upper bound on accepted JSON bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object, rejecting unknown fields.
// It writes the 400 response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func parseFloatParam(r *http.Request, key string) (float64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return f, nil
}

func parseCoordinateParams(r *http.Request, latKey, lonKey string) (domain.Coordinate, error) {
	lat, err := parseFloatParam(r, latKey)
	if err != nil {
		return domain.Coordinate{}, err
	}
	lon, err := parseFloatParam(r, lonKey)
	if err != nil {
		return domain.Coordinate{}, err
	}
	c := domain.Coordinate{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return domain.Coordinate{}, fmt.Errorf("%s/%s: %w", latKey, lonKey, err)
	}
	return c, nil
}

func toCoordinate(p dto.Point, field string) (domain.Coordinate, error) {
	if p.Lat == nil || p.Lon == nil {
		return domain.Coordinate{}, fmt.Errorf("%s: lat and lon are required", field)
	}
	c := domain.Coordinate{Lat: *p.Lat, Lon: *p.Lon}
	if err := c.Validate(); err != nil {
		return domain.Coordinate{}, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

func toTravelResponse(t domain.TravelInfo) dto.TravelResponse {
	return dto.TravelResponse{
		DistanceKm:      t.DistanceKm,
		DurationMinutes: t.DurationMinutes,
		Mode:            string(t.Mode),
	}
}

// statusFor maps domain errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinate), errors.Is(err, domain.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPOINotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
