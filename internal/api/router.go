package api

import (
	"net/http"
	"poi-logistics-service/internal/api/handlers"
	"poi-logistics-service/internal/logistics"
	"poi-logistics-service/internal/platform/obs"
	"poi-logistics-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// repo may be nil, in which case planning by POI id is unavailable.
func NewRouter(engine *logistics.Engine, repo ports.POIRepository) http.Handler {
	mux := http.NewServeMux()

	engineHandler := &handlers.EngineHandler{Engine: engine}
	planHandler := &handlers.PlanHandler{
		Repo:   repo,
		Engine: engine,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/distance", engineHandler.Distance)
	mux.HandleFunc("/walking-time", engineHandler.WalkingTime)
	mux.HandleFunc("/travel", engineHandler.Travel)
	mux.HandleFunc("/route", engineHandler.Route)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.Handle("/metrics", obs.MetricsHandler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
