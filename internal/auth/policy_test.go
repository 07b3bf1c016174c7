package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

func TestPolicyTableRows(t *testing.T) {
	sales := PolicyFor(domain.RoleSalesPerson)
	assert.Equal(t, domain.PermissionSet{CanEscalateToManager: true, DataScope: domain.ScopeOwn}, sales)

	manager := PolicyFor(domain.RoleShowroomManager)
	assert.Equal(t, domain.PermissionSet{
		CanViewAllCustomers:     true,
		CanViewTeamData:         true,
		CanEscalateToHeadOffice: true,
		CanViewAnalytics:        true,
		CanManageTeam:           true,
		CanViewReports:          true,
		CanAccessSettings:       true,
		DataScope:               domain.ScopeShowroom,
	}, manager)

	headOffice := PolicyFor(domain.RoleHeadOffice)
	assert.False(t, headOffice.CanEscalate())
	assert.True(t, headOffice.CanAccessSettings)
	assert.Equal(t, domain.ScopeAll, headOffice.DataScope)
}

func TestUnknownRolesFailClosed(t *testing.T) {
	for _, role := range []domain.Role{"", "admin", "SALES_PERSON", "head office"} {
		assert.Equal(t, RestrictivePermissions(), PolicyFor(role), "role %q", role)
	}
	assert.Equal(t, domain.PermissionSet{DataScope: domain.ScopeOwn}, RestrictivePermissions())
}

func TestNoRoleHoldsBothEscalationFlags(t *testing.T) {
	table := PolicyTable()
	require.Len(t, table, len(domain.Roles()))
	for role, perms := range table {
		assert.False(t, perms.CanEscalateToManager && perms.CanEscalateToHeadOffice, "role %s", role)
	}
}

func TestResolvePermissions(t *testing.T) {
	for _, role := range domain.Roles() {
		assert.Equal(t, PolicyFor(role), ResolvePermissions(&domain.Identity{ID: "1", Role: role}))
	}

	assert.Equal(t, RestrictivePermissions(), ResolvePermissions(nil))
	assert.Equal(t, ResolvePermissions(nil), ResolvePermissions(&domain.Identity{ID: "1"}))
	assert.Equal(t, RestrictivePermissions(), ResolvePermissions(&domain.Identity{ID: "1", Role: "intern"}))
}

func TestNextEscalationLevel(t *testing.T) {
	cases := []struct {
		name    string
		current domain.EscalationLevel
		role    domain.Role
		want    domain.EscalationLevel
		ok      bool
	}{
		{"sales escalates fresh interaction", domain.LevelSalesPerson, domain.RoleSalesPerson, domain.LevelShowroomManager, true},
		{"sales cannot skip to head office", domain.LevelShowroomManager, domain.RoleSalesPerson, domain.LevelShowroomManager, false},
		{"manager escalates to head office", domain.LevelShowroomManager, domain.RoleShowroomManager, domain.LevelHeadOffice, true},
		{"manager cannot take a fresh interaction", domain.LevelSalesPerson, domain.RoleShowroomManager, domain.LevelSalesPerson, false},
		{"head office never escalates", domain.LevelSalesPerson, domain.RoleHeadOffice, domain.LevelSalesPerson, false},
		{"head office level is terminal", domain.LevelHeadOffice, domain.RoleShowroomManager, domain.LevelHeadOffice, false},
		{"unknown role", domain.LevelSalesPerson, "guest", domain.LevelSalesPerson, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := NextEscalationLevel(tc.current, PolicyFor(tc.role))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, next)
		})
	}
}
