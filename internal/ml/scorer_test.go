package ml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomScorerShapeAndRange(t *testing.T) {
	s := NewRandomScorer()

	itemIDs := []int64{5, -3, 0, 5, 1 << 40}
	scores, err := s.PredictScores(context.Background(), 1, itemIDs)
	require.NoError(t, err)
	require.Len(t, scores, len(itemIDs))

	for _, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.Less(t, score, 1.0)
	}
}

func TestRandomScorerEmptyInput(t *testing.T) {
	s := NewRandomScorer()

	scores, err := s.PredictScores(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}
