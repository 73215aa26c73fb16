package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aivio/aivio-api/internal/domain/entity"
	repo "github.com/aivio/aivio-api/internal/domain/repository"
	"github.com/aivio/aivio-api/pkg/helpers"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repo.ErrDuplicateEmail
	}
	u.ID = f.nextID
	f.nextID++
	u.CreatedAt = time.Now()
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	jwt, err := helpers.NewJWTManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	userRepo := newFakeUserRepo()
	logger := logrus.New()
	return NewAuthService(userRepo, jwt, logger), userRepo
}

func TestRegisterCreatesActiveUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	u, err := svc.Register(context.Background(), "alice@example.com", "supersecret")
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "supersecret", u.HashedPassword)
	assert.True(t, helpers.CompareHashAndPassword(u.HashedPassword, "supersecret"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, userRepo := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "alice@example.com", "supersecret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice@example.com", "othersecret")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, userRepo.byEmail, 1)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	u, err := svc.Register(context.Background(), "alice@example.com", "supersecret")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "alice@example.com", "supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.JWT.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), "alice@example.com", "supersecret")
	require.NoError(t, err)

	_, wrongPw := svc.Login(context.Background(), "alice@example.com", "wrongpassword")
	_, unknown := svc.Login(context.Background(), "nobody@example.com", "supersecret")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw, unknown)
}
