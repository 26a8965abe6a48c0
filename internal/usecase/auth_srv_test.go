package usecase_test

import (
	"context"
	"testing"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, svc *usecase.Service, email, usrType string) uuid.UUID {
	t.Helper()

	user, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		UsrName:  "João Souza",
		UsrEmail: email,
		UsrPass:  "senha-secreta",
		UsrType:  usrType,
	})
	require.NoError(t, err)

	return uuid.MustParse(user.UsrID)
}

func TestAuthRegister_CreatesActiveUser(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		UsrName:  "João Souza",
		UsrEmail: "joao@example.com",
		UsrPass:  "senha-secreta",
		UsrType:  "Vendedor",
	})

	require.NoError(t, err)
	assert.Equal(t, "vendedor", user.UsrType)
	assert.True(t, user.UsrActive)
}

func TestAuthRegister_RejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	registerUser(t, svc, "joao@example.com", "vendedor")

	_, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		UsrName:  "João Souza",
		UsrEmail: "joao@example.com",
		UsrPass:  "outra-senha",
		UsrType:  "gerente",
	})

	assert.ErrorIs(t, err, entity.ErrDuplicateUserEmail)
}

func TestAuthRegister_RejectsUnknownType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		UsrName:  "João Souza",
		UsrEmail: "joao@example.com",
		UsrPass:  "senha-secreta",
		UsrType:  "diretor",
	})

	var enumErr *entity.EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, entity.ValidUserTypes, enumErr.ValidTypes)
}

func TestAuthLogin_IssuesBearerToken(t *testing.T) {
	svc := newTestService(t)
	registerUser(t, svc, "joao@example.com", "vendedor")

	token, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		UsrEmail: "joao@example.com",
		UsrPass:  "senha-secreta",
	})

	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	// The token subject must be the login email.
	jwts := utils.NewJWTManager(utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30})
	subject, err := jwts.Validate(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "joao@example.com", subject)
}

func TestAuthLogin_RejectsWrongPassword(t *testing.T) {
	svc := newTestService(t)
	registerUser(t, svc, "joao@example.com", "vendedor")

	_, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		UsrEmail: "joao@example.com",
		UsrPass:  "senha-errada",
	})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestAuthLogin_RejectsUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		UsrEmail: "ninguem@example.com",
		UsrPass:  "senha-secreta",
	})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestAuthChangeUserType(t *testing.T) {
	svc := newTestService(t)
	userID := registerUser(t, svc, "joao@example.com", "vendedor")

	user, err := svc.Auth.ChangeUserType(context.Background(), userID, &request.ChangeUserTypeRequest{
		UsrType: "gerente",
	})

	require.NoError(t, err)
	assert.Equal(t, "gerente", user.UsrType)
}

func TestAuthChangeUserType_UnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Auth.ChangeUserType(context.Background(), uuid.New(), &request.ChangeUserTypeRequest{
		UsrType: "gerente",
	})

	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestAuthRefreshToken(t *testing.T) {
	svc := newTestService(t)
	registerUser(t, svc, "joao@example.com", "vendedor")

	token, err := svc.Auth.Login(context.Background(), &request.LoginRequest{
		UsrEmail: "joao@example.com",
		UsrPass:  "senha-secreta",
	})
	require.NoError(t, err)

	refreshed, err := svc.Auth.RefreshToken(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Auth.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
