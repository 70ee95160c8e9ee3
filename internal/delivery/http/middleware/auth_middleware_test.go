package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evently/config"
	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (s *stubUserRepo) SoftDelete(ctx context.Context, id uuid.UUID) error  { return nil }

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test_secret_key_very_long_for_testing"
	cfg.JWT.TTL = time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func runAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *entity.User) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var resolved *entity.User
	handler := m.Authenticate(func(c echo.Context) error {
		resolved = deliverycontext.GetUser(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, resolved
}

func TestAuthMiddleware_ResolvesSession(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	user := &entity.User{ID: uuid.New(), Username: "alice123", Role: entity.RoleUser}
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	m := NewAuthMiddleware(tokenSvc, repo)

	token, err := tokenSvc.Generate(user.ID)
	require.NoError(t, err)

	rec, resolved := runAuthenticate(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestAuthMiddleware_SchemeValueIsNotInspected(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	m := NewAuthMiddleware(tokenSvc, repo)

	token, err := tokenSvc.Generate(user.ID)
	require.NoError(t, err)

	rec, resolved := runAuthenticate(t, m, "Token "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc, &stubUserRepo{})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no scheme", header: "just-a-token"},
		{name: "too many fields", header: "Bearer one two"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "non-token second field", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resolved := runAuthenticate(t, m, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, resolved)
		})
	}
}

func TestAuthMiddleware_RejectsUnknownAccount(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	m := NewAuthMiddleware(tokenSvc, &stubUserRepo{})

	token, err := tokenSvc.Generate(uuid.New())
	require.NoError(t, err)

	rec, resolved := runAuthenticate(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, resolved)
}

func TestAuthMiddleware_RejectsDeactivatedAccount(t *testing.T) {
	tokenSvc := newTestTokenService(t)
	user := &entity.User{ID: uuid.New(), Deleted: true}
	repo := &stubUserRepo{users: map[uuid.UUID]*entity.User{user.ID: user}}
	m := NewAuthMiddleware(tokenSvc, repo)

	token, err := tokenSvc.Generate(user.ID)
	require.NoError(t, err)

	rec, resolved := runAuthenticate(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, resolved)
}
