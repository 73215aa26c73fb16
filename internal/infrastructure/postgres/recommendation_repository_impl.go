package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aivio/aivio-api/internal/domain/entity"
	"github.com/aivio/aivio-api/internal/domain/repository"
)

type RecommendationRepository struct {
	pool *pgxpool.Pool
}

func NewRecommendationRepository(pool *pgxpool.Pool) *RecommendationRepository {
	return &RecommendationRepository{pool: pool}
}

// InsertBatch writes every row inside one transaction. A failure on any row
// rolls back the whole batch.
func (r *RecommendationRepository) InsertBatch(ctx context.Context, recs []entity.Recommendation) error {
	if r.pool == nil {
		return repository.ErrStoreUnavailable
	}
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(`
			INSERT INTO recommendations (user_id, item_id, score)
			VALUES ($1, $2, $3)
		`, rec.UserID, rec.ItemID, rec.Score)
	}

	br := tx.SendBatch(ctx, batch)
	for range recs {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	if err := br.Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *RecommendationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]entity.Recommendation, error) {
	if r.pool == nil {
		return nil, repository.ErrStoreUnavailable
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, item_id, score, created_at
		FROM recommendations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]entity.Recommendation, 0, limit)
	for rows.Next() {
		var rec entity.Recommendation
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.ItemID, &rec.Score, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

var _ repository.RecommendationRepository = (*RecommendationRepository)(nil)
