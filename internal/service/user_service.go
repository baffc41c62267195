package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fieldops/installation-service/internal/auth"
	"github.com/fieldops/installation-service/internal/config"
	"github.com/fieldops/installation-service/internal/domain"
	"github.com/fieldops/installation-service/internal/repository"
	apperrors "github.com/fieldops/installation-service/pkg/util"
)

// UserService coordinates account creation and login flows.
type UserService struct {
	users      repository.UserRepository
	sessions   auth.SessionStore
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.AuthConfig, users repository.UserRepository, sessions auth.SessionStore) *UserService {
	return &UserService{
		users:      users,
		sessions:   sessions,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// CreateUser creates a regular account. Email is required and normalized
// before persistence; the password is stored as a bcrypt hash.
func (s *UserService) CreateUser(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.NewValidationError("email is required", map[string]any{"email": "required"})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateSuperuser creates an account with staff and superuser capability.
func (s *UserService) CreateSuperuser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.CreateUser(ctx, email, password, "")
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password, registers a session and returns
// the signed token.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !user.IsActive {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("user inactive")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, claims, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.sessions.Save(ctx, claims.ID, user.ID, s.tokenMgr.TTL()); err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, claims.ExpiresAt.Time, nil
}

// Register creates an account and immediately opens a session for it.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*domain.User, string, time.Time, error) {
	user, err := s.CreateUser(ctx, email, password, name)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, claims, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.sessions.Save(ctx, claims.ID, user.ID, s.tokenMgr.TTL()); err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, claims.ExpiresAt.Time, nil
}

// Logout revokes the session behind the given token id.
func (s *UserService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Revoke(ctx, tokenID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// NormalizeEmail trims surrounding whitespace and lowercases the domain part.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
