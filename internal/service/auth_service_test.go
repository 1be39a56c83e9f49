package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Chodoro/psusphere/internal/models"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

type mockAuthRepo struct {
	users            map[string]*models.User
	lastLoginUpdated bool
	passwordUpdated  bool
	created          []*models.User
}

func (m *mockAuthRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthRepo) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	m.lastLoginUpdated = true
	return nil
}

func (m *mockAuthRepo) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	m.passwordUpdated = true
	m.users[id].PasswordHash = passwordHash
	m.users[id].Active = true
	return nil
}

func (m *mockAuthRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = "new-user"
	m.created = append(m.created, user)
	return nil
}

func newAuthFixture(t *testing.T, active bool) (*AuthService, *mockAuthRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockAuthRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Username: "admin", PasswordHash: string(hash), FullName: "Site Admin", Active: active},
	}}
	svc := NewAuthService(repo, nil, zap.NewNop(), AuthConfig{SessionSecret: "secret", SessionTTL: time.Hour, Issuer: "psusphere"})
	return svc, repo
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc, repo := newAuthFixture(t, true)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: " admin ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
	assert.True(t, repo.lastLoginUpdated)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, repo := newAuthFixture(t, true)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "nope"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	assert.False(t, repo.lastLoginUpdated)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "nope"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestAuthServiceLoginInactive(t *testing.T) {
	svc, _ := newAuthFixture(t, false)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, appErrors.ErrInactiveAccount)
}

func TestAuthServiceLoginRequiresFields(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, err := svc.Login(context.Background(), models.LoginRequest{})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestAuthServiceValidateTokenRejectsExpiredAndForeign(t *testing.T) {
	svc, _ := newAuthFixture(t, true)
	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	svc.now = time.Now
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.SessionClaims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{Issuer: "psusphere"}})
	signed, err := foreign.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestAuthServiceAuthenticateChecksAccount(t *testing.T) {
	svc, repo := newAuthFixture(t, true)
	ctx := context.Background()
	resp, err := svc.Login(ctx, models.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)

	claims, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	repo.users["u1"].Active = false
	_, err = svc.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	delete(repo.users, "u1")
	_, err = svc.Authenticate(ctx, resp.Token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestAuthServiceMe(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	info, err := svc.Me(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Site Admin", info.FullName)

	_, err = svc.Me(context.Background(), "gone")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestAuthServiceCreateUser(t *testing.T) {
	svc, repo := newAuthFixture(t, false)

	created, err := svc.CreateUser(context.Background(), CreateUserRequest{Username: "registrar", Password: "long-enough"})
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.created, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created[0].PasswordHash), []byte("long-enough")))

	created, err = svc.CreateUser(context.Background(), CreateUserRequest{Username: "admin", Password: "another-pass"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, repo.passwordUpdated)
	assert.True(t, repo.users["u1"].Active)

	_, err = svc.CreateUser(context.Background(), CreateUserRequest{Username: "x", Password: "short"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
