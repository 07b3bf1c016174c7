package domain

// DataScope is the breadth of records a permission set can see.
type DataScope string

const (
	ScopeOwn      DataScope = "own"
	ScopeShowroom DataScope = "showroom"
	ScopeAll      DataScope = "all"
)

// PermissionSet bundles the capability flags and data scope derived from a Role.
type PermissionSet struct {
	CanViewAllCustomers     bool      `json:"canViewAllCustomers"`
	CanViewTeamData         bool      `json:"canViewTeamData"`
	CanEscalateToManager    bool      `json:"canEscalateToManager"`
	CanEscalateToHeadOffice bool      `json:"canEscalateToHeadOffice"`
	CanViewAnalytics        bool      `json:"canViewAnalytics"`
	CanManageTeam           bool      `json:"canManageTeam"`
	CanViewReports          bool      `json:"canViewReports"`
	CanAccessSettings       bool      `json:"canAccessSettings"`
	DataScope               DataScope `json:"dataScope"`
}

// CanEscalate reports whether any escalation step is available.
func (p PermissionSet) CanEscalate() bool {
	return p.CanEscalateToManager || p.CanEscalateToHeadOffice
}
