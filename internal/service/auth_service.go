package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/config"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/repository"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

// AuthService coordinates login and logout flows.
type AuthService struct {
	accounts   repository.AccountRepository
	sessions   repository.SessionRepository
	tokenMgr   *auth.TokenManager
	sessionTTL time.Duration
	logger     *zap.Logger
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AccountRepo  repository.AccountRepository
	SessionRepo  repository.SessionRepository
	TokenManager *auth.TokenManager
	Logger       *zap.Logger
}

// LoginResult is returned on successful login.
type LoginResult struct {
	SessionID   string
	Identity    domain.Identity
	Permissions domain.PermissionSet
	Token       string
	ExpiresAt   time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		accounts:   deps.AccountRepo,
		sessions:   deps.SessionRepo,
		tokenMgr:   deps.TokenManager,
		sessionTTL: cfg.SessionTTL(),
		logger:     logger,
	}
}

// Login authenticates an account and opens a session for it.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if account.Status != domain.AccountStatusActive {
		return nil, apperrors.NewForbidden("account is inactive")
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Identity:  account.Identity(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(session.ID, session.Identity)
	if err != nil {
		return nil, err
	}

	account.LastLoginAt = &now
	if err := s.accounts.Update(ctx, account); err != nil {
		s.logger.Warn("record last login", zap.String("account_id", account.ID), zap.Error(err))
	}

	return &LoginResult{
		SessionID:   session.ID,
		Identity:    session.Identity,
		Permissions: auth.ResolvePermissions(&session.Identity),
		Token:       token,
		ExpiresAt:   exp,
	}, nil
}

// Logout ends the session; tokens bound to it stop working.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
