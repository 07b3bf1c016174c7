package domain

// Role enumerates the static job functions that drive every access decision.
type Role string

const (
	RoleSalesPerson     Role = "sales_person"
	RoleShowroomManager Role = "showroom_manager"
	RoleHeadOffice      Role = "head_office"
)

// Roles lists every recognized role in escalation-ladder order.
func Roles() []Role {
	return []Role{RoleSalesPerson, RoleShowroomManager, RoleHeadOffice}
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSalesPerson, RoleShowroomManager, RoleHeadOffice:
		return true
	default:
		return false
	}
}

// DisplayName returns the label shown next to a user's name.
func (r Role) DisplayName() string {
	switch r {
	case RoleSalesPerson:
		return "Sales Person"
	case RoleShowroomManager:
		return "Showroom Manager"
	case RoleHeadOffice:
		return "Head Office"
	default:
		return string(r)
	}
}

// Identity is the active user of a session.
type Identity struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               Role    `json:"role"`
	TelegramCustomerID *string `json:"telegram_customer_id,omitempty"`
	ShowroomCode       *string `json:"showroom_code,omitempty"`
}
