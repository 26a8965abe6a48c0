package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/pkg/middleware"
	"clothing-shop/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, users *repository.MockUserRepository, email string, active bool) *entity.User {
	t.Helper()

	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "João Souza",
		Email:        email,
		PasswordHash: "irrelevant",
		Role:         entity.RoleVendedor,
		IsActive:     active,
	}
	require.NoError(t, users.Create(context.Background(), user))

	return user
}

func authenticateHandler(users *repository.MockUserRepository, jwts *utils.JWTManager) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := utils.GetEmailFromContext(r.Context())
		w.Write([]byte(email))
	})
	return middleware.Authenticate(users, jwts, zap.NewNop())(next)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	users := repository.NewMockUserRepository()
	jwts := utils.NewJWTManager(utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec := httptest.NewRecorder()

	authenticateHandler(users, jwts).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "detail")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	users := repository.NewMockUserRepository()
	jwts := utils.NewJWTManager(utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	authenticateHandler(users, jwts).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	users := repository.NewMockUserRepository()
	jwts := utils.NewJWTManager(utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	authenticateHandler(users, jwts).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenSetsIdentity(t *testing.T) {
	users := repository.NewMockUserRepository()
	jwts := utils.NewJWTManager(utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})
	seedUser(t, users, "joao@example.com", true)

	token, err := jwts.Issue("joao@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	authenticateHandler(users, jwts).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "joao@example.com", rec.Body.String())
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	users := repository.NewMockUserRepository()
	jwts := utils.NewJWTManager(utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})
	seedUser(t, users, "joao@example.com", false)

	token, err := jwts.Issue("joao@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	authenticateHandler(users, jwts).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func requireRolesHandler(roles ...entity.UserRole) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return middleware.RequireRoles(roles...)(next)
}

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/clients", nil)
	ctx := utils.SetUserContext(req.Context(), uuid.New(), "joao@example.com", role)
	return req.WithContext(ctx)
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	rec := httptest.NewRecorder()

	requireRolesHandler(entity.RoleAdministrador, entity.RoleGerente).
		ServeHTTP(rec, requestWithRole("gerente"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	rec := httptest.NewRecorder()

	requireRolesHandler(entity.RoleAdministrador, entity.RoleGerente).
		ServeHTTP(rec, requestWithRole("marketing"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "marketing")
}

func TestRequireRoles_EmptyListAllowsAnyAuthenticated(t *testing.T) {
	rec := httptest.NewRecorder()

	requireRolesHandler().ServeHTTP(rec, requestWithRole("marketing"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoles_RejectsMissingIdentity(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients", nil)

	requireRolesHandler(entity.RoleAdministrador).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
