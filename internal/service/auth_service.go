package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/labtrack/labtrack-service/internal/auth"
	"github.com/labtrack/labtrack-service/internal/config"
	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/repository"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgAccountDeactivated = "Account is deactivated. Contact admin."
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
}

// RegisterInput describes a new account. An empty Role means TECHNICIAN.
type RegisterInput struct {
	Email    string
	Password string
	Role     domain.Role
	FullName *string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperrors.NewValidationError("Email and password required", nil)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleTechnician
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("User already exists", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		FullName:     trimmedPtr(in.FullName),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("User already exists", nil)
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and issues a token. Unknown email and wrong
// password produce the same error; a deactivated account is refused before the
// password is checked.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("Email and password required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, "", time.Time{}, err
	}
	if !user.IsActive {
		return nil, "", time.Time{}, apperrors.NewForbidden(msgAccountDeactivated)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// EnsureAdmin creates the bootstrap administrator unless the email is taken.
// It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, fullName string) (bool, error) {
	if _, err := s.users.GetByEmail(ctx, normalizeEmail(email)); err == nil {
		return false, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	var name *string
	if fullName != "" {
		name = &fullName
	}
	if _, err := s.Register(ctx, RegisterInput{Email: email, Password: password, Role: domain.RoleAdmin, FullName: name}); err != nil {
		if apperrors.IsCode(err, "CONFLICT") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
