package repository

import (
	"context"
	"errors"

	"github.com/aivio/aivio-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a queried row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a create collides on the email unique index.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrStoreUnavailable is returned when the database was not reachable at startup.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
