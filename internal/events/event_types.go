package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInteractionCreated      EventType = "interaction_created"
	EventInteractionEscalated    EventType = "interaction_escalated"
	EventEscalationStatusChanged EventType = "escalation_status_changed"
	EventAccountCreated          EventType = "account_created"
	EventAccountStatusChanged    EventType = "account_status_changed"
	EventFollowUpDue             EventType = "follow_up_due"
)

// SystemActor is the actor of events raised by background jobs.
var SystemActor = Actor{ID: "system", Name: "Scheduler"}

// Actor identifies who triggered an event.
type Actor struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

// ActorFrom builds the actor for an identity.
func ActorFrom(identity domain.Identity) Actor {
	return Actor{ID: identity.ID, Name: identity.Name, Role: identity.Role}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	SubjectID string    `json:"subject_id"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// New stamps a fresh event.
func New(eventType EventType, subjectID string, actor Actor, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// InteractionCreatedPayload payload.
type InteractionCreatedPayload struct {
	CustomerID string                 `json:"customer_id"`
	Type       domain.InteractionType `json:"type"`
	Priority   domain.Priority        `json:"priority"`
}

// InteractionEscalatedPayload payload.
type InteractionEscalatedPayload struct {
	EscalationID string                 `json:"escalation_id"`
	FromLevel    domain.EscalationLevel `json:"from_level"`
	ToLevel      domain.EscalationLevel `json:"to_level"`
	CustomerName string                 `json:"customer_name"`
}

// EscalationStatusChangedPayload payload.
type EscalationStatusChangedPayload struct {
	OldStatus domain.EscalationStatus `json:"old_status"`
	NewStatus domain.EscalationStatus `json:"new_status"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// AccountStatusChangedPayload payload.
type AccountStatusChangedPayload struct {
	OldStatus domain.AccountStatus `json:"old_status"`
	NewStatus domain.AccountStatus `json:"new_status"`
}

// FollowUpDuePayload payload.
type FollowUpDuePayload struct {
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	AssignedTo   *string   `json:"assigned_to"`
	FollowUpDate time.Time `json:"follow_up_date"`
}
