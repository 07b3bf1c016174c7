package dto

import (
	"time"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// CreateUserRequest payload.
type CreateUserRequest struct {
	Name               string      `json:"name" validate:"required,min=2,max=100"`
	Email              string      `json:"email" validate:"required,email,max=255"`
	Password           string      `json:"password" validate:"required,min=8,max=72"`
	Role               domain.Role `json:"role" validate:"required,oneof=sales_person showroom_manager head_office"`
	Country            string      `json:"country" validate:"omitempty,len=2,alpha"`
	TelegramCustomerID *string     `json:"telegram_customer_id" validate:"omitempty,max=100"`
	ShowroomCode       *string     `json:"showroom_code" validate:"omitempty,max=20"`
}

// UpdateUserStatusRequest payload.
type UpdateUserStatusRequest struct {
	Status domain.AccountStatus `json:"status" validate:"required,oneof=active inactive"`
}

// AccountResponse represents a dashboard account without credentials.
type AccountResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	Role               domain.Role          `json:"role"`
	RoleName           string               `json:"role_name"`
	Status             domain.AccountStatus `json:"status"`
	Country            string               `json:"country"`
	TelegramCustomerID *string              `json:"telegram_customer_id"`
	ShowroomCode       *string              `json:"showroom_code"`
	LastLoginAt        *time.Time           `json:"last_login_at"`
	CreatedAt          time.Time            `json:"created_at"`
}

// FromAccount maps a domain account.
func FromAccount(a domain.Account) AccountResponse {
	return AccountResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Email:              a.Email,
		Role:               a.Role,
		RoleName:           a.Role.DisplayName(),
		Status:             a.Status,
		Country:            a.Country,
		TelegramCustomerID: a.TelegramCustomerID,
		ShowroomCode:       a.ShowroomCode,
		LastLoginAt:        a.LastLoginAt,
		CreatedAt:          a.CreatedAt,
	}
}

// FromAccounts maps a slice, always returning a non-nil slice.
func FromAccounts(records []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(records))
	for _, a := range records {
		out = append(out, FromAccount(a))
	}
	return out
}
