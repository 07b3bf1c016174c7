package domain

import "time"

// AccountStatus represents whether an account may sign in.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

// Account is a dashboard user as managed by head office.
type Account struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	Role               Role
	Status             AccountStatus
	Country            string
	TelegramCustomerID *string
	ShowroomCode       *string
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Identity projects the account onto the session identity.
func (a Account) Identity() Identity {
	return Identity{
		ID:                 a.ID,
		Name:               a.Name,
		Email:              a.Email,
		Role:               a.Role,
		TelegramCustomerID: a.TelegramCustomerID,
		ShowroomCode:       a.ShowroomCode,
	}
}

// ScopeTags implements Scoped. Accounts own themselves.
func (a Account) ScopeTags() ScopeTags {
	id := a.ID
	return ScopeTags{
		OwnerID:      &id,
		ShowroomCode: a.ShowroomCode,
	}
}

// Valid reports whether the status is known.
func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusInactive
}
