package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/events"
	"github.com/spec-kit/showroom-crm/internal/observability"
	"github.com/spec-kit/showroom-crm/internal/repository"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

// UserCreateInput describes a new dashboard account.
type UserCreateInput struct {
	Name               string
	Email              string
	Password           string
	Role               domain.Role
	Country            string
	TelegramCustomerID *string
	ShowroomCode       *string
}

// UserService manages dashboard accounts.
type UserService struct {
	accounts       repository.AccountRepository
	dispatcher     events.Dispatcher
	metrics        *observability.Metrics
	logger         *zap.Logger
	bcryptCost     int
	defaultCountry string
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	AccountRepo    repository.AccountRepository
	Dispatcher     events.Dispatcher
	Metrics        *observability.Metrics
	Logger         *zap.Logger
	BcryptCost     int
	DefaultCountry string
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		accounts:       deps.AccountRepo,
		dispatcher:     deps.Dispatcher,
		metrics:        deps.Metrics,
		logger:         logger,
		bcryptCost:     deps.BcryptCost,
		defaultCountry: deps.DefaultCountry,
	}
}

// List returns the accounts the caller may manage.
func (s *UserService) List(ctx context.Context, principal *auth.Principal, filter repository.AccountFilter) ([]domain.Account, error) {
	if err := requireSettings(principal); err != nil {
		return nil, err
	}
	all, err := s.accounts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return scoped(s.metrics, "accounts", all, principal), nil
}

// Create registers a new account. Callers limited to a showroom can only add
// non head office accounts to their own showroom.
func (s *UserService) Create(ctx context.Context, principal *auth.Principal, input UserCreateInput) (*domain.Account, error) {
	if err := requireSettings(principal); err != nil {
		return nil, err
	}
	if !input.Role.Valid() {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": input.Role})
	}

	input.TelegramCustomerID = optionalTag(input.TelegramCustomerID)
	input.ShowroomCode = optionalTag(input.ShowroomCode)
	if principal.Permissions.DataScope != domain.ScopeAll {
		if input.Role == domain.RoleHeadOffice {
			return nil, apperrors.NewForbidden("cannot create head office accounts")
		}
		input.ShowroomCode = principal.Identity.ShowroomCode
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	country := strings.ToUpper(strings.TrimSpace(input.Country))
	if country == "" {
		country = s.defaultCountry
	}
	account := &domain.Account{
		ID:                 uuid.NewString(),
		Name:               strings.TrimSpace(input.Name),
		Email:              email,
		PasswordHash:       hash,
		Role:               input.Role,
		Status:             domain.AccountStatusActive,
		Country:            country,
		TelegramCustomerID: input.TelegramCustomerID,
		ShowroomCode:       input.ShowroomCode,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
		}
		return nil, err
	}

	s.publish(ctx, events.New(events.EventAccountCreated, account.ID, events.ActorFrom(principal.Identity), events.AccountCreatedPayload{
		Email: account.Email,
		Role:  account.Role,
	}))
	return account, nil
}

// SetStatus activates or deactivates an account.
func (s *UserService) SetStatus(ctx context.Context, principal *auth.Principal, id string, status domain.AccountStatus) (*domain.Account, error) {
	if err := requireSettings(principal); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid account status", map[string]any{"status": status})
	}
	if id == principal.Identity.ID && status == domain.AccountStatusInactive {
		return nil, apperrors.NewValidationError("cannot deactivate your own account", nil)
	}

	account, err := s.accounts.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && !visible(*account, principal)) {
		return nil, apperrors.NewNotFound("account", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}
	if account.Status == status {
		return account, nil
	}

	old := account.Status
	account.Status = status
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.EventAccountStatusChanged, account.ID, events.ActorFrom(principal.Identity), events.AccountStatusChangedPayload{
		OldStatus: old,
		NewStatus: status,
	}))
	return account, nil
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

// optionalTag trims a scoping tag and drops it when blank.
func optionalTag(tag *string) *string {
	if tag == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*tag)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func requireSettings(principal *auth.Principal) error {
	if principal == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !principal.Permissions.CanAccessSettings {
		return apperrors.NewForbidden("you don't have permission to view this section")
	}
	return nil
}
