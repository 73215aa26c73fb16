package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/aivio/aivio-api/internal/domain/entity"
	repo "github.com/aivio/aivio-api/internal/domain/repository"
	"github.com/aivio/aivio-api/pkg/helpers"
)

var (
	// ErrEmailTaken maps to the duplicate-registration client error.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, credential verification and token issuance.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(userRepo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: userRepo, JWT: jwt, Logger: logger}
}

// Register creates a new active user with a bcrypt-hashed password.
// A colliding email is rejected before any write; the store's unique index
// backstops the race between check and insert.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, HashedPassword: hash, IsActive: true}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	return u, nil
}

// Login verifies credentials and returns a signed access token.
// Unknown email and wrong password take the same exit path.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return "", err
	}
	return token, nil
}
