package domain

import "time"

// EscalationStatus enumerates escalation workflow states.
type EscalationStatus string

const (
	EscalationStatusPending    EscalationStatus = "pending"
	EscalationStatusInProgress EscalationStatus = "in-progress"
	EscalationStatusResolved   EscalationStatus = "resolved"
)

// Escalation is a case raised up the escalation ladder.
type Escalation struct {
	ID            string
	InteractionID *string
	CustomerName  string
	OrderID       string
	Issue         string
	Description   string
	Priority      Priority
	Status        EscalationStatus
	EscalatedFrom EscalationLevel
	EscalatedTo   EscalationLevel
	EscalatedBy   *string
	AssignedTo    string
	Showroom      string
	ShowroomCode  *string
	Country       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ScopeTags implements Scoped. Escalations are owned by whoever raised them.
func (e Escalation) ScopeTags() ScopeTags {
	return ScopeTags{
		OwnerID:      e.EscalatedBy,
		ShowroomCode: e.ShowroomCode,
	}
}

// ResponseTime is the elapsed time between creation and the last update.
func (e Escalation) ResponseTime() time.Duration {
	if e.UpdatedAt.Before(e.CreatedAt) {
		return 0
	}
	return e.UpdatedAt.Sub(e.CreatedAt)
}

// Valid reports whether the status is a known workflow state.
func (s EscalationStatus) Valid() bool {
	switch s {
	case EscalationStatusPending, EscalationStatusInProgress, EscalationStatusResolved:
		return true
	default:
		return false
	}
}
