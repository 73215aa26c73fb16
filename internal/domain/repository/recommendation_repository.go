package repository

import (
	"context"

	"github.com/aivio/aivio-api/internal/domain/entity"
)

// RecommendationRepository defines persistence for recommendation rows.
// InsertBatch writes all rows in a single transaction; either every row
// commits or none do.
type RecommendationRepository interface {
	InsertBatch(ctx context.Context, recs []entity.Recommendation) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]entity.Recommendation, error)
}
