package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerStatus enumerates the follow-up state of a customer.
type CustomerStatus string

const (
	CustomerStatusPending    CustomerStatus = "pending"
	CustomerStatusInProgress CustomerStatus = "in_progress"
	CustomerStatusEscalated  CustomerStatus = "escalated"
	CustomerStatusCompleted  CustomerStatus = "completed"
)

// Priority enumerates urgency for customers and interactions.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Customer is a showroom customer tracked by the sales team.
type Customer struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	Status             CustomerStatus
	Priority           Priority
	OrderValue         decimal.Decimal
	CountryCode        string
	LastInteractionAt  time.Time
	SalesPersonID      *string
	TelegramCustomerID *string
	ShowroomCode       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ScopeTags implements Scoped. Customers are owned by their sales person.
func (c Customer) ScopeTags() ScopeTags {
	return ScopeTags{
		OwnerID:            c.SalesPersonID,
		TelegramCustomerID: c.TelegramCustomerID,
		ShowroomCode:       c.ShowroomCode,
	}
}
