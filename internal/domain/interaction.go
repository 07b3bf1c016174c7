package domain

import "time"

// InteractionType enumerates contact channels.
type InteractionType string

const (
	InteractionTypeCall    InteractionType = "call"
	InteractionTypeEmail   InteractionType = "email"
	InteractionTypeMessage InteractionType = "message"
	InteractionTypeMeeting InteractionType = "meeting"
)

// InteractionStatus enumerates interaction lifecycle states.
type InteractionStatus string

const (
	InteractionStatusCompleted  InteractionStatus = "completed"
	InteractionStatusPending    InteractionStatus = "pending"
	InteractionStatusInProgress InteractionStatus = "in_progress"
	InteractionStatusEscalated  InteractionStatus = "escalated"
)

// EscalationLevel is the rung of the escalation ladder an interaction sits on.
type EscalationLevel int

const (
	LevelSalesPerson     EscalationLevel = 0
	LevelShowroomManager EscalationLevel = 1
	LevelHeadOffice      EscalationLevel = 2
)

// Label returns the tier name for the level.
func (l EscalationLevel) Label() string {
	switch l {
	case LevelSalesPerson:
		return "Sales Person"
	case LevelShowroomManager:
		return "Showroom Manager"
	case LevelHeadOffice:
		return "Head Office"
	default:
		return "Unknown"
	}
}

// Interaction records a single contact with a customer.
type Interaction struct {
	ID                 string
	CustomerID         string
	CustomerName       string
	Type               InteractionType
	Message            string
	Status             InteractionStatus
	Priority           Priority
	AssignedTo         *string
	AssignedToName     string
	AssignedToRole     Role
	NextAction         string
	EscalationLevel    EscalationLevel
	AISummary          string
	FollowUpDate       *time.Time
	TelegramCustomerID *string
	ShowroomCode       *string
	OccurredAt         time.Time
	UpdatedAt          time.Time
}

// ScopeTags implements Scoped. Interactions are owned by their assignee.
func (i Interaction) ScopeTags() ScopeTags {
	return ScopeTags{
		OwnerID:            i.AssignedTo,
		TelegramCustomerID: i.TelegramCustomerID,
		ShowroomCode:       i.ShowroomCode,
	}
}
