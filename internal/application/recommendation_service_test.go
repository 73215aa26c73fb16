package application

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivio/aivio-api/internal/domain/entity"
)

type fakeRecRepo struct {
	rows      []entity.Recommendation
	insertErr error
}

func (f *fakeRecRepo) InsertBatch(_ context.Context, recs []entity.Recommendation) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	now := time.Now()
	for i, rec := range recs {
		rec.ID = int64(len(f.rows) + 1)
		rec.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		f.rows = append(f.rows, rec)
	}
	return nil
}

func (f *fakeRecRepo) ListByUser(_ context.Context, userID int64, limit int) ([]entity.Recommendation, error) {
	var out []entity.Recommendation
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if f.rows[i].UserID == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

// stubScorer scores each item as item_id/100 so ranking is predictable.
type stubScorer struct{}

func (stubScorer) PredictScores(_ context.Context, _ int64, itemIDs []int64) ([]float64, error) {
	scores := make([]float64, len(itemIDs))
	for i, id := range itemIDs {
		scores[i] = float64(id) / 100
	}
	return scores, nil
}

func TestRecommendSortsAndPersists(t *testing.T) {
	recRepo := &fakeRecRepo{}
	svc := NewRecommendationService(recRepo, stubScorer{}, logrus.New())

	input := []int64{3, 9, 1, 7}
	items, err := svc.Recommend(context.Background(), 42, input)
	require.NoError(t, err)
	require.Len(t, items, len(input))

	// Output is a permutation of the input ids, sorted descending by score.
	gotIDs := make([]int64, len(items))
	for i, item := range items {
		gotIDs[i] = item.ItemID
	}
	assert.ElementsMatch(t, input, gotIDs)
	assert.True(t, sort.SliceIsSorted(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	}))
	assert.Equal(t, []int64{9, 7, 3, 1}, gotIDs)

	// One persisted row per input id, owned by the user.
	require.Len(t, recRepo.rows, len(input))
	for _, row := range recRepo.rows {
		assert.Equal(t, int64(42), row.UserID)
	}
}

func TestRecommendEmptyInputIsNoOp(t *testing.T) {
	recRepo := &fakeRecRepo{}
	svc := NewRecommendationService(recRepo, stubScorer{}, logrus.New())

	items, err := svc.Recommend(context.Background(), 42, []int64{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, recRepo.rows)
}

func TestRecommendPersistFailureFailsRequest(t *testing.T) {
	recRepo := &fakeRecRepo{insertErr: errors.New("connection reset")}
	svc := NewRecommendationService(recRepo, stubScorer{}, logrus.New())

	_, err := svc.Recommend(context.Background(), 42, []int64{1, 2})
	assert.Error(t, err)
	assert.Empty(t, recRepo.rows)
}

func TestHistoryNewestFirstTruncated(t *testing.T) {
	recRepo := &fakeRecRepo{}
	svc := NewRecommendationService(recRepo, stubScorer{}, logrus.New())

	for i := 0; i < 3; i++ {
		_, err := svc.Recommend(context.Background(), 42, []int64{int64(10 + i)})
		require.NoError(t, err)
	}
	_, err := svc.Recommend(context.Background(), 7, []int64{99})
	require.NoError(t, err)

	items, err := svc.History(context.Background(), 42, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(12), items[0].ItemID)
	assert.Equal(t, int64(11), items[1].ItemID)
}
