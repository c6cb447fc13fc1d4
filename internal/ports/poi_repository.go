package ports

import (
	"context"
	"poi-logistics-service/internal/domain"

	"github.com/google/uuid"
)

// Port: a boundary for retrieving points of interest from a data source.
type POIRepository interface {
	// Retrieve POIs in the order of ids. Unknown ids fail with domain.ErrPOINotFound.
	GetPOIs(ctx context.Context, ids []uuid.UUID) ([]domain.POI, error)
}
