package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"poi-logistics-service/internal/domain"
	"strings"

	"github.com/google/uuid"
)

// Initialize the PostgreSQL schema used by the POI repository.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPOIsQuery := `
	CREATE TABLE IF NOT EXISTS points_of_interest (
		poi_id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL CHECK (latitude BETWEEN -90 AND 90),
		longitude DOUBLE PRECISION NOT NULL CHECK (longitude BETWEEN -180 AND 180)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_points_of_interest_lat_lon
    ON points_of_interest(latitude, longitude);
	`

	statements := []string{
		createPOIsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type POISeed struct {
	ID   string  `json:"poi_id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// ParseSeeds validates seed records and converts them to domain POIs.
func ParseSeeds(data []POISeed) ([]domain.POI, error) {
	pois := make([]domain.POI, 0, len(data))
	for i, item := range data {
		id, err := uuid.Parse(strings.TrimSpace(item.ID))
		if err != nil {
			return nil, fmt.Errorf("seed pois: invalid poi_id at index %d: %w", i+1, err)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed pois: item at index %d: name cannot be empty", i+1)
		}

		c := domain.Coordinate{Lat: item.Lat, Lon: item.Lon}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("seed pois: item %q at index %d: %w", name, i+1, err)
		}

		pois = append(pois, domain.POI{ID: id, Name: name, Coordinate: c})
	}
	return pois, nil
}

// Read and validate POI seed data from a JSON file.
func LoadSeeds(jsonPath string) ([]domain.POI, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed pois: read %q: %w", jsonPath, err)
	}

	var data []POISeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed pois: parse json: %w", err)
	}

	return ParseSeeds(data)
}

// Populate the database with POI data from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed pois: DB is nil")
	}

	rows, err := LoadSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed pois: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO points_of_interest (poi_id, name, latitude, longitude)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (poi_id) DO UPDATE
	SET name = EXCLUDED.name,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed pois: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.ExecContext(ctx, p.ID.String(), p.Name, p.Coordinate.Lat, p.Coordinate.Lon); err != nil {
			return fmt.Errorf("seed pois: insert poi_id=%s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pois: commit tx: %w", err)
	}

	return nil
}
