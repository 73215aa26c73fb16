package ml

import (
	"context"
	"math/rand"
)

// Scorer produces one relevance score per requested item for a user.
// Implementations must return scores in [0, 1), one per input item id, in
// input order, and must accept any integer item id without error. A trained
// model can be substituted for the random placeholder behind this interface
// without touching the recommendation service.
type Scorer interface {
	PredictScores(ctx context.Context, userID int64, itemIDs []int64) ([]float64, error)
}

// RandomScorer is the placeholder model: uniformly random scores, independent
// per call, no consistency across calls for the same (user, item) pair.
type RandomScorer struct{}

func NewRandomScorer() *RandomScorer { return &RandomScorer{} }

func (s *RandomScorer) PredictScores(_ context.Context, _ int64, itemIDs []int64) ([]float64, error) {
	scores := make([]float64, len(itemIDs))
	for i := range scores {
		scores[i] = rand.Float64()
	}
	return scores, nil
}

var _ Scorer = (*RandomScorer)(nil)
