package repositories

import (
	"context"
	"poi-logistics-service/internal/domain"

	"github.com/google/uuid"
)

// In-memory POIRepository, used for tests and for serving a seed file without a database.
type StaticPOIRepository struct {
	m map[uuid.UUID]domain.POI
}

func NewStaticPOIRepository(pois []domain.POI) *StaticPOIRepository {
	m := make(map[uuid.UUID]domain.POI, len(pois))
	for _, p := range pois {
		m[p.ID] = p
	}
	return &StaticPOIRepository{m: m}
}

func (s *StaticPOIRepository) GetPOIs(ctx context.Context, ids []uuid.UUID) ([]domain.POI, error) {
	return orderPOIs(ids, s.m)
}
