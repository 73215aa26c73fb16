package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aivio/aivio-api/internal/domain/entity"
	"github.com/aivio/aivio-api/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository accepts a nil pool; operations then report
// repository.ErrStoreUnavailable instead of panicking, so the process can
// keep serving the endpoints that do not touch the database.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if r.pool == nil {
		return repository.ErrStoreUnavailable
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, hashed_password, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, u.Email, u.HashedPassword, u.IsActive)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if r.pool == nil {
		return nil, repository.ErrStoreUnavailable
	}
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, hashed_password, is_active, created_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.IsActive, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.pool == nil {
		return nil, repository.ErrStoreUnavailable
	}
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, hashed_password, is_active, created_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.IsActive, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
