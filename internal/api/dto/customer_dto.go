package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// CustomerResponse represents a customer record.
type CustomerResponse struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Email              string                `json:"email"`
	Phone              string                `json:"phone"`
	Status             domain.CustomerStatus `json:"status"`
	Priority           domain.Priority       `json:"priority"`
	OrderValue         decimal.Decimal       `json:"order_value"`
	CountryCode        string                `json:"country_code"`
	LastInteractionAt  time.Time             `json:"last_interaction_at"`
	SalesPersonID      *string               `json:"sales_person_id"`
	TelegramCustomerID *string               `json:"telegram_customer_id"`
	ShowroomCode       *string               `json:"showroom_code"`
}

// FromCustomer maps a domain customer.
func FromCustomer(c domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Status:             c.Status,
		Priority:           c.Priority,
		OrderValue:         c.OrderValue,
		CountryCode:        c.CountryCode,
		LastInteractionAt:  c.LastInteractionAt,
		SalesPersonID:      c.SalesPersonID,
		TelegramCustomerID: c.TelegramCustomerID,
		ShowroomCode:       c.ShowroomCode,
	}
}

// FromCustomers maps a slice, always returning a non-nil slice.
func FromCustomers(records []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(records))
	for _, c := range records {
		out = append(out, FromCustomer(c))
	}
	return out
}
