package application

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/aivio/aivio-api/internal/domain/entity"
	repo "github.com/aivio/aivio-api/internal/domain/repository"
	"github.com/aivio/aivio-api/internal/ml"
)

// RecommendedItem is one (item, score) pair of a recommendation response.
type RecommendedItem struct {
	ItemID int64   `json:"item_id"`
	Score  float64 `json:"score"`
}

// RecommendationService orchestrates scoring, ranking and persistence.
type RecommendationService struct {
	Repo   repo.RecommendationRepository
	Scorer ml.Scorer
	Logger *logrus.Logger
}

func NewRecommendationService(recRepo repo.RecommendationRepository, scorer ml.Scorer, logger *logrus.Logger) *RecommendationService {
	return &RecommendationService{Repo: recRepo, Scorer: scorer, Logger: logger}
}

// Recommend scores the whole batch in one call, sorts descending by score
// (stable, so ties keep their input order), and persists one row per item in
// a single transaction. An empty item list is a valid no-op: empty result,
// zero rows written. If persistence fails the whole request fails; no partial
// commit is exposed to the caller.
func (s *RecommendationService) Recommend(ctx context.Context, userID int64, itemIDs []int64) ([]RecommendedItem, error) {
	scores, err := s.Scorer.PredictScores(ctx, userID, itemIDs)
	if err != nil {
		return nil, err
	}

	items := make([]RecommendedItem, len(itemIDs))
	for i, itemID := range itemIDs {
		items[i] = RecommendedItem{ItemID: itemID, Score: scores[i]}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	if len(items) > 0 {
		recs := make([]entity.Recommendation, len(items))
		for i, item := range items {
			recs[i] = entity.Recommendation{UserID: userID, ItemID: item.ItemID, Score: item.Score}
		}
		if err := s.Repo.InsertBatch(ctx, recs); err != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("persist recommendations failed")
			return nil, err
		}
	}

	return items, nil
}

// History returns the user's most recently created rows, newest first,
// truncated to limit. Callers validate limit > 0.
func (s *RecommendationService) History(ctx context.Context, userID int64, limit int) ([]RecommendedItem, error) {
	recs, err := s.Repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]RecommendedItem, len(recs))
	for i, rec := range recs {
		items[i] = RecommendedItem{ItemID: rec.ItemID, Score: rec.Score}
	}
	return items, nil
}
