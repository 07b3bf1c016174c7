package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/events"
	"github.com/spec-kit/showroom-crm/internal/observability"
	"github.com/spec-kit/showroom-crm/internal/repository"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

// EscalationFilter narrows the escalation board.
type EscalationFilter struct {
	Search   string
	Status   *domain.EscalationStatus
	Priority *domain.Priority
	Country  string
}

// EscalationStats summarizes every escalation visible to the caller.
type EscalationStats struct {
	Total           int
	Pending         int
	InProgress      int
	Resolved        int
	Urgent          int
	AvgResponseTime time.Duration
}

// EscalationService serves the escalation board.
type EscalationService struct {
	escalations repository.EscalationRepository
	dispatcher  events.Dispatcher
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// NewEscalationService constructs the service.
func NewEscalationService(escalations repository.EscalationRepository, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) *EscalationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EscalationService{escalations: escalations, dispatcher: dispatcher, metrics: metrics, logger: logger}
}

// List returns the filtered escalations along with stats over the caller's
// whole scope.
func (s *EscalationService) List(ctx context.Context, principal *auth.Principal, filter EscalationFilter) ([]domain.Escalation, EscalationStats, error) {
	if err := requireTeamData(principal); err != nil {
		return nil, EscalationStats{}, err
	}

	all, err := s.escalations.List(ctx)
	if err != nil {
		return nil, EscalationStats{}, err
	}
	inScope := scoped(s.metrics, "escalations", all, principal)

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := []domain.Escalation{}
	for _, e := range inScope {
		if search != "" && !strings.Contains(strings.ToLower(e.CustomerName), search) &&
			!strings.Contains(strings.ToLower(e.OrderID), search) &&
			!strings.Contains(strings.ToLower(e.Issue), search) {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && e.Priority != *filter.Priority {
			continue
		}
		if filter.Country != "" && !strings.EqualFold(e.Country, filter.Country) {
			continue
		}
		result = append(result, e)
	}
	return result, Stats(inScope), nil
}

// UpdateStatus moves an escalation through its workflow.
func (s *EscalationService) UpdateStatus(ctx context.Context, principal *auth.Principal, id string, status domain.EscalationStatus) (*domain.Escalation, error) {
	if err := requireTeamData(principal); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid escalation status", map[string]any{"status": status})
	}

	current, err := s.escalations.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && !visible(*current, principal)) {
		return nil, apperrors.NewNotFound("escalation", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}

	updated, err := s.escalations.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		event := events.New(events.EventEscalationStatusChanged, id, events.ActorFrom(principal.Identity), events.EscalationStatusChangedPayload{
			OldStatus: current.Status,
			NewStatus: status,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return updated, nil
}

// Stats counts escalations per status and averages their response time.
func Stats(escalations []domain.Escalation) EscalationStats {
	stats := EscalationStats{Total: len(escalations)}
	var total time.Duration
	for _, e := range escalations {
		switch e.Status {
		case domain.EscalationStatusPending:
			stats.Pending++
		case domain.EscalationStatusInProgress:
			stats.InProgress++
		case domain.EscalationStatusResolved:
			stats.Resolved++
		}
		if e.Priority == domain.PriorityUrgent {
			stats.Urgent++
		}
		total += e.ResponseTime()
	}
	if stats.Total > 0 {
		stats.AvgResponseTime = total / time.Duration(stats.Total)
	}
	return stats
}

func requireTeamData(principal *auth.Principal) error {
	if principal == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !principal.Permissions.CanViewTeamData {
		return apperrors.NewForbidden("you don't have permission to view this section")
	}
	return nil
}
