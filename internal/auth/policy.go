package auth

import "github.com/spec-kit/showroom-crm/internal/domain"

// PolicyFor returns the canonical permission set for a role. Unrecognized
// roles get RestrictivePermissions.
func PolicyFor(role domain.Role) domain.PermissionSet {
	switch role {
	case domain.RoleSalesPerson:
		return domain.PermissionSet{
			CanEscalateToManager: true,
			DataScope:            domain.ScopeOwn,
		}
	case domain.RoleShowroomManager:
		return domain.PermissionSet{
			CanViewAllCustomers:     true,
			CanViewTeamData:         true,
			CanEscalateToHeadOffice: true,
			CanViewAnalytics:        true,
			CanManageTeam:           true,
			CanViewReports:          true,
			CanAccessSettings:       true,
			DataScope:               domain.ScopeShowroom,
		}
	case domain.RoleHeadOffice:
		return domain.PermissionSet{
			CanViewAllCustomers: true,
			CanViewTeamData:     true,
			CanViewAnalytics:    true,
			CanManageTeam:       true,
			CanViewReports:      true,
			CanAccessSettings:   true,
			DataScope:           domain.ScopeAll,
		}
	default:
		return RestrictivePermissions()
	}
}

// RestrictivePermissions is the fail-closed permission set: every flag off, own scope.
func RestrictivePermissions() domain.PermissionSet {
	return domain.PermissionSet{DataScope: domain.ScopeOwn}
}

// PolicyTable returns the permission set of every recognized role.
func PolicyTable() map[domain.Role]domain.PermissionSet {
	table := make(map[domain.Role]domain.PermissionSet, len(domain.Roles()))
	for _, role := range domain.Roles() {
		table[role] = PolicyFor(role)
	}
	return table
}
