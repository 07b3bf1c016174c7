package dto

import (
	"time"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// CreateInteractionRequest payload. customer_id and message are checked by
// the service so both report together.
type CreateInteractionRequest struct {
	CustomerID   string                 `json:"customer_id"`
	Type         domain.InteractionType `json:"type" validate:"omitempty,oneof=call email message meeting"`
	Message      string                 `json:"message" validate:"max=4000"`
	Priority     domain.Priority        `json:"priority" validate:"omitempty,oneof=urgent high medium low"`
	NextAction   string                 `json:"next_action" validate:"max=500"`
	FollowUpDate *time.Time             `json:"follow_up_date"`
}

// EscalateRequest payload.
type EscalateRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// InteractionResponse represents an interaction record.
type InteractionResponse struct {
	ID                 string                   `json:"id"`
	CustomerID         string                   `json:"customer_id"`
	CustomerName       string                   `json:"customer_name"`
	Type               domain.InteractionType   `json:"type"`
	Message            string                   `json:"message"`
	Status             domain.InteractionStatus `json:"status"`
	Priority           domain.Priority          `json:"priority"`
	AssignedTo         *string                  `json:"assigned_to"`
	AssignedToName     string                   `json:"assigned_to_name"`
	AssignedToRole     domain.Role              `json:"assigned_to_role"`
	NextAction         string                   `json:"next_action"`
	EscalationLevel    domain.EscalationLevel   `json:"escalation_level"`
	EscalationLabel    string                   `json:"escalation_label"`
	AISummary          string                   `json:"ai_summary,omitempty"`
	FollowUpDate       *time.Time               `json:"follow_up_date,omitempty"`
	TelegramCustomerID *string                  `json:"telegram_customer_id"`
	ShowroomCode       *string                  `json:"showroom_code"`
	Timestamp          time.Time                `json:"timestamp"`
}

// FromInteraction maps a domain interaction.
func FromInteraction(i domain.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:                 i.ID,
		CustomerID:         i.CustomerID,
		CustomerName:       i.CustomerName,
		Type:               i.Type,
		Message:            i.Message,
		Status:             i.Status,
		Priority:           i.Priority,
		AssignedTo:         i.AssignedTo,
		AssignedToName:     i.AssignedToName,
		AssignedToRole:     i.AssignedToRole,
		NextAction:         i.NextAction,
		EscalationLevel:    i.EscalationLevel,
		EscalationLabel:    i.EscalationLevel.Label(),
		AISummary:          i.AISummary,
		FollowUpDate:       i.FollowUpDate,
		TelegramCustomerID: i.TelegramCustomerID,
		ShowroomCode:       i.ShowroomCode,
		Timestamp:          i.OccurredAt,
	}
}

// FromInteractions maps a slice, always returning a non-nil slice.
func FromInteractions(records []domain.Interaction) []InteractionResponse {
	out := make([]InteractionResponse, 0, len(records))
	for _, i := range records {
		out = append(out, FromInteraction(i))
	}
	return out
}
