package entity

import (
	"time"
)

// Recommendation is one persisted (user, item) scoring event.
// Rows are append-only; a batch of them is written per recommend request.
type Recommendation struct {
	ID        int64
	UserID    int64
	ItemID    int64
	Score     float64
	CreatedAt time.Time
}
