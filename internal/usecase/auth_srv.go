package usecase

import (
	"context"
	"strings"
	"time"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/dto/response"
	"clothing-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	ChangeUserType(ctx context.Context, id uuid.UUID, req *request.ChangeUserTypeRequest) (*response.UserResponse, error)
	RefreshToken(ctx context.Context, token string) (*response.TokenResponse, error)
}

type authService struct {
	repo *repository.Repository
	jwts *utils.JWTManager
	log  *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	jwts *utils.JWTManager,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo: repo,
		jwts: jwts,
		log:  log,
	}
}

// Login checks the credentials and issues a bearer token with the user
// email as subject. Unknown email, wrong password and disabled account
// all answer the same way.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.UsrEmail)
	if err != nil {
		s.log.Error("Failed to check credentials", zap.Error(err), zap.String("email", req.UsrEmail))
		return nil, err
	}

	if user == nil || !user.IsActive || !utils.CheckPasswordHash(req.UsrPass, user.PasswordHash) {
		s.log.Warn("Rejected login", zap.String("email", req.UsrEmail))
		return nil, entity.ErrInvalidCredentials
	}

	token, err := s.jwts.Issue(user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("email", user.Email))
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return response.NewTokenResponse(token), nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	usrType := strings.ToLower(strings.TrimSpace(req.UsrType))
	if !entity.IsValidUserType(usrType) {
		return nil, entity.NewEnumError("Tipo de usuário inválido.", entity.ValidUserTypes)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.UsrEmail)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.UsrEmail))
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateUserEmail
	}

	hashedPassword, err := utils.HashPassword(req.UsrPass)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.UsrName,
		Email:        req.UsrEmail,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(usrType),
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.UsrEmail))
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("type", usrType))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ChangeUserType moves a staff account to another role. Nothing else
// about the account is touched.
func (s *authService) ChangeUserType(ctx context.Context, id uuid.UUID, req *request.ChangeUserTypeRequest) (*response.UserResponse, error) {
	usrType := strings.ToLower(strings.TrimSpace(req.UsrType))
	if !entity.IsValidUserType(usrType) {
		return nil, entity.NewEnumError("Tipo de usuário inválido.", entity.ValidUserTypes)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	user.Role = entity.UserRole(usrType)
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user role", zap.Error(err), zap.String("user_id", id.String()))
		return nil, err
	}

	s.log.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("type", usrType))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// RefreshToken re-issues from a still-valid token. The caller already
// passed authentication, so an expired token never reaches this point
// with a fresh one attached.
func (s *authService) RefreshToken(ctx context.Context, token string) (*response.TokenResponse, error) {
	refreshed, err := s.jwts.Refresh(token)
	if err != nil {
		return nil, err
	}
	return response.NewTokenResponse(refreshed), nil
}
