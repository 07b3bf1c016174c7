package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

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

const summaryPreviewLength = 100

// InteractionService coordinates interaction workflows.
type InteractionService struct {
	interactions repository.InteractionRepository
	customers    repository.CustomerRepository
	escalations  repository.EscalationRepository
	dispatcher   events.Dispatcher
	metrics      *observability.Metrics
	logger       *zap.Logger
}

// InteractionDependencies bundles repositories for the interaction service.
type InteractionDependencies struct {
	InteractionRepo repository.InteractionRepository
	CustomerRepo    repository.CustomerRepository
	EscalationRepo  repository.EscalationRepository
	Dispatcher      events.Dispatcher
	Metrics         *observability.Metrics
	Logger          *zap.Logger
}

// InteractionFilter narrows a scoped interaction listing.
type InteractionFilter struct {
	Status     *domain.InteractionStatus
	Priority   *domain.Priority
	CustomerID string
}

// InteractionCreateInput describes a newly logged interaction.
type InteractionCreateInput struct {
	CustomerID   string
	Type         domain.InteractionType
	Message      string
	Priority     domain.Priority
	NextAction   string
	FollowUpDate *time.Time
}

// EscalationResult pairs the escalated interaction with the case it opened.
type EscalationResult struct {
	Interaction *domain.Interaction
	Escalation  *domain.Escalation
}

// NewInteractionService constructs the service.
func NewInteractionService(deps InteractionDependencies) *InteractionService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InteractionService{
		interactions: deps.InteractionRepo,
		customers:    deps.CustomerRepo,
		escalations:  deps.EscalationRepo,
		dispatcher:   deps.Dispatcher,
		metrics:      deps.Metrics,
		logger:       logger,
	}
}

// List returns visible interactions in repository order.
func (s *InteractionService) List(ctx context.Context, principal *auth.Principal, filter InteractionFilter) ([]domain.Interaction, error) {
	all, err := s.interactions.List(ctx)
	if err != nil {
		return nil, err
	}

	result := []domain.Interaction{}
	for _, interaction := range scoped(s.metrics, "interactions", all, principal) {
		if filter.Status != nil && interaction.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && interaction.Priority != *filter.Priority {
			continue
		}
		if filter.CustomerID != "" && interaction.CustomerID != filter.CustomerID {
			continue
		}
		result = append(result, interaction)
	}
	return result, nil
}

// Timeline returns visible interactions newest first.
func (s *InteractionService) Timeline(ctx context.Context, principal *auth.Principal) ([]domain.Interaction, error) {
	result, err := s.List(ctx, principal, InteractionFilter{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].OccurredAt.After(result[j].OccurredAt)
	})
	return result, nil
}

// Create logs an interaction on behalf of the caller.
func (s *InteractionService) Create(ctx context.Context, principal *auth.Principal, input InteractionCreateInput) (*domain.Interaction, error) {
	if principal == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	missing := []string{}
	if strings.TrimSpace(input.CustomerID) == "" {
		missing = append(missing, "customer_id")
	}
	if strings.TrimSpace(input.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("Missing Information", map[string]any{"fields": missing})
	}

	customer, err := s.customers.GetByID(ctx, input.CustomerID)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && !visible(*customer, principal)) {
		return nil, apperrors.NewNotFound("customer", map[string]any{"id": input.CustomerID})
	}
	if err != nil {
		return nil, err
	}

	if input.Type == "" {
		input.Type = domain.InteractionTypeCall
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}

	identity := principal.Identity
	assignee := identity.ID
	interaction := &domain.Interaction{
		ID:                 uuid.NewString(),
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		Type:               input.Type,
		Message:            strings.TrimSpace(input.Message),
		Status:             domain.InteractionStatusCompleted,
		Priority:           input.Priority,
		AssignedTo:         &assignee,
		AssignedToName:     identity.Name,
		AssignedToRole:     identity.Role,
		NextAction:         input.NextAction,
		EscalationLevel:    domain.LevelSalesPerson,
		FollowUpDate:       input.FollowUpDate,
		TelegramCustomerID: identity.TelegramCustomerID,
		ShowroomCode:       identity.ShowroomCode,
		OccurredAt:         time.Now().UTC(),
	}
	interaction.AISummary = Summarize(interaction.Type, customer.Name, interaction.Message)

	if err := s.interactions.Create(ctx, interaction); err != nil {
		return nil, err
	}

	s.publish(ctx, events.New(events.EventInteractionCreated, interaction.ID, events.ActorFrom(identity), events.InteractionCreatedPayload{
		CustomerID: customer.ID,
		Type:       interaction.Type,
		Priority:   interaction.Priority,
	}))
	return interaction, nil
}

// Escalate moves an interaction one rung up the ladder and opens an
// escalation case for it.
func (s *InteractionService) Escalate(ctx context.Context, principal *auth.Principal, id, reason string) (*EscalationResult, error) {
	if principal == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	interaction, err := s.interactions.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && !visible(*interaction, principal)) {
		return nil, apperrors.NewNotFound("interaction", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}

	from := interaction.EscalationLevel
	next, ok := auth.NextEscalationLevel(from, principal.Permissions)
	if !ok {
		return nil, apperrors.NewDomainError(apperrors.CodeForbidden, "Cannot Escalate", http.StatusForbidden, map[string]any{
			"reason":           "You don't have permission to escalate this interaction",
			"escalation_level": from,
		})
	}

	original := *interaction
	interaction.EscalationLevel = next
	interaction.Status = domain.InteractionStatusEscalated
	interaction.NextAction = fmt.Sprintf("Escalated to %s", next.Label())
	if err := s.interactions.Update(ctx, interaction); err != nil {
		return nil, err
	}

	identity := principal.Identity
	escalatedBy := identity.ID
	issue := strings.TrimSpace(reason)
	if issue == "" {
		issue = fmt.Sprintf("%s interaction escalated", interaction.Type)
	}
	interactionID := interaction.ID
	now := time.Now().UTC()
	escalation := &domain.Escalation{
		ID:            uuid.NewString(),
		InteractionID: &interactionID,
		CustomerName:  interaction.CustomerName,
		Issue:         issue,
		Description:   interaction.Message,
		Priority:      interaction.Priority,
		Status:        domain.EscalationStatusPending,
		EscalatedFrom: from,
		EscalatedTo:   next,
		EscalatedBy:   &escalatedBy,
		AssignedTo:    next.Label(),
		ShowroomCode:  interaction.ShowroomCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if interaction.ShowroomCode != nil {
		escalation.Showroom = *interaction.ShowroomCode
	}
	if customer, err := s.customers.GetByID(ctx, interaction.CustomerID); err == nil {
		escalation.Country = customer.CountryCode
	}
	if err := s.escalations.Create(ctx, escalation); err != nil {
		if rollbackErr := s.interactions.Update(ctx, &original); rollbackErr != nil {
			s.logger.Error("restore interaction after failed escalation",
				zap.String("interaction_id", original.ID), zap.Error(rollbackErr))
			return nil, errors.Join(err, rollbackErr)
		}
		return nil, err
	}

	s.publish(ctx, events.New(events.EventInteractionEscalated, interaction.ID, events.ActorFrom(identity), events.InteractionEscalatedPayload{
		EscalationID: escalation.ID,
		FromLevel:    from,
		ToLevel:      next,
		CustomerName: interaction.CustomerName,
	}))
	return &EscalationResult{Interaction: interaction, Escalation: escalation}, nil
}

func (s *InteractionService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

// Summarize builds the generated interaction summary.
func Summarize(interactionType domain.InteractionType, customerName, message string) string {
	return fmt.Sprintf("AI Summary: %s interaction with %s. %s...", interactionType, customerName, truncateRunes(message, summaryPreviewLength))
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}
