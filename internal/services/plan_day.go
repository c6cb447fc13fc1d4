package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"poi-logistics-service/internal/domain"
	"poi-logistics-service/internal/logistics"
	"poi-logistics-service/internal/platform/obs"
	"poi-logistics-service/internal/ports"
	"time"

	"github.com/google/uuid"
)

type PlanDayRequest struct {
	DepartAt time.Time
	// Mode forces every leg onto one transport mode; ModeAuto selects per leg.
	Mode domain.Mode
	// DwellMinutes is spent at each stop before leaving for the next one.
	DwellMinutes int
}

// Sequence and time a day of POIs.
//
// Stops are ordered with the engine's nearest-neighbor heuristic starting
// from the first POI, then each consecutive pair is estimated to fill in
// the inbound leg and arrival time of every stop after the first.
func PlanDay(
	ctx context.Context,
	req PlanDayRequest,
	pois []domain.POI,
	engine *logistics.Engine,
) (_ *domain.DayPlan, err error) {
	defer obs.Time(ctx, "services.PlanDay")(&err)

	if engine == nil {
		return nil, errors.New("plan day: engine must be non-nil")
	}

	if req.DwellMinutes < 0 {
		return nil, fmt.Errorf("plan day: dwell minutes must be >= 0, got %d", req.DwellMinutes)
	}

	coords := make([]domain.Coordinate, 0, len(pois))
	for _, p := range pois {
		coords = append(coords, p.Coordinate)
	}

	order := engine.OptimizeRoute(coords)

	stops := make([]domain.PlannedStop, 0, len(order))
	currentTime := req.DepartAt
	totalDistanceKm := 0.0
	totalDurationMinutes := 0

	for i, idx := range order {
		stop := domain.PlannedStop{POI: pois[idx]}

		if i > 0 {
			prev := pois[order[i-1]]
			travel := engine.EstimateTravel(prev.Coordinate, stop.POI.Coordinate, req.Mode)

			currentTime = currentTime.Add(time.Duration(req.DwellMinutes+travel.DurationMinutes) * time.Minute)
			totalDistanceKm += travel.DistanceKm
			totalDurationMinutes += travel.DurationMinutes
			stop.Travel = &travel
		}

		stop.ArriveAt = currentTime
		stops = append(stops, stop)
	}

	return &domain.DayPlan{
		DepartAt:             req.DepartAt,
		Order:                order,
		Stops:                stops,
		TotalDistanceKm:      math.Round(totalDistanceKm*100) / 100,
		TotalDurationMinutes: totalDurationMinutes,
	}, nil
}

// Resolve POI ids through the repository, then plan the day.
func PlanDayForPOIs(
	ctx context.Context,
	req PlanDayRequest,
	ids []uuid.UUID,
	repo ports.POIRepository,
	engine *logistics.Engine,
) (*domain.DayPlan, error) {
	if repo == nil {
		return nil, errors.New("plan day for pois: repository must be non-nil")
	}

	pois, err := repo.GetPOIs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("plan day for pois: %w", err)
	}

	// Delegate to PlanDay once every id is resolved.
	plan, err := PlanDay(ctx, req, pois, engine)
	if err != nil {
		return nil, fmt.Errorf("plan day for pois: %w", err)
	}
	return plan, nil
}
