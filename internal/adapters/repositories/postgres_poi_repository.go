package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"poi-logistics-service/internal/domain"
	"poi-logistics-service/internal/platform/obs"

	"github.com/google/uuid"
)

// PostgreSQL-backed implementation of the POIRepository port.
type PostgresPOIRepository struct{ DB *sql.DB }

func NewPostgresPOIRepository(db *sql.DB) *PostgresPOIRepository {
	return &PostgresPOIRepository{DB: db}
}

// Return the requested POIs in the order of ids.
func (s *PostgresPOIRepository) GetPOIs(ctx context.Context, ids []uuid.UUID) (_ []domain.POI, err error) {
	defer obs.Time(ctx, "poi.repo.GetPOIs")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres poi repository: DB is nil")
	}

	if len(ids) == 0 {
		return []domain.POI{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id.String())
	}

	q := `
	SELECT poi_id, name, latitude, longitude
    FROM points_of_interest
    WHERE poi_id = ANY($1::uuid[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get pois: query points_of_interest table: %w", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]domain.POI, len(uniq))
	for rows.Next() {
		var rawID, name string
		var lat, lon float64
		if err := rows.Scan(&rawID, &name, &lat, &lon); err != nil {
			return nil, fmt.Errorf("get pois: scan row: %w", err)
		}
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("get pois: parse poi_id %q: %w", rawID, err)
		}
		found[id] = domain.POI{ID: id, Name: name, Coordinate: domain.Coordinate{Lat: lat, Lon: lon}}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get pois: row iteration: %w", err)
	}

	return orderPOIs(ids, found)
}

func orderPOIs(ids []uuid.UUID, found map[uuid.UUID]domain.POI) ([]domain.POI, error) {
	out := make([]domain.POI, 0, len(ids))
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("get pois: poi_id=%s: %w", id, domain.ErrPOINotFound)
		}
		out = append(out, p)
	}
	return out, nil
}
