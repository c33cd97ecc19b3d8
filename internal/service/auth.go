package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gearshop/shop-backend/internal/domain"
	"github.com/gearshop/shop-backend/internal/models"
	"github.com/gearshop/shop-backend/internal/repo"
	"github.com/gearshop/shop-backend/internal/transport"
	"github.com/gearshop/shop-backend/pkg/hash"
	"github.com/gearshop/shop-backend/pkg/logging"
	"github.com/gearshop/shop-backend/pkg/tokens"
)

type AuthService struct {
	Users     repo.UserRepository
	JWTSecret []byte
}

func NewAuthService(users repo.UserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{Users: users, JWTSecret: jwtSecret}
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash password", "error", err)
		return nil, ErrInternal
	}

	u := &models.User{
		Email:    domain.NormalizeEmail(req.Email),
		Password: pwHash,
		FullName: req.FullName,
		IsActive: true,
		Roles:    []string{"user"},
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, classifyDBError(ctx, "auth_register", err)
	}

	token, err := tokens.NewAccessToken(s.JWTSecret, u.ID, u.Roles, time.Now().Add(tokens.AccessTokenTTL))
	if err != nil {
		l.Error("register_error", "reason", "cannot sign token", "error", err)
		return nil, ErrInternal
	}
	return &transport.AuthResponse{User: u, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	u, err := s.Users.GetByEmail(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, classifyDBError(ctx, "auth_login", err)
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !hash.CheckPassword(u.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.NewAccessToken(s.JWTSecret, u.ID, u.Roles, time.Now().Add(tokens.AccessTokenTTL))
	if err != nil {
		l.Error("login_error", "reason", "cannot sign token", "error", err)
		return nil, ErrInternal
	}
	return &transport.AuthResponse{User: u, Token: token}, nil
}
