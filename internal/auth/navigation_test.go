package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

func navIDs(items []NavigationItem) []View {
	out := make([]View, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestNavigationPerRole(t *testing.T) {
	assert.Equal(t, []View{
		ViewOverview, ViewInteractions, ViewInteractionTimeline,
		ViewMyCustomers, ViewFollowUps, ViewEscalations,
	}, navIDs(Navigation(PolicyFor(domain.RoleSalesPerson))))

	assert.Equal(t, []View{
		ViewOverview, ViewInteractions, ViewInteractionTimeline,
		ViewTeamPerformance, ViewShowroomAnalytics, ViewEscalations,
		ViewPerformance, ViewReports, ViewSettings,
	}, navIDs(Navigation(PolicyFor(domain.RoleShowroomManager))))

	assert.Equal(t, []View{
		ViewOverview, ViewInteractions, ViewInteractionTimeline,
		ViewTeamPerformance, ViewShowroomAnalytics,
		ViewPerformance, ViewReports, ViewAllEscalations, ViewUserManagement, ViewSettings,
	}, navIDs(Navigation(PolicyFor(domain.RoleHeadOffice))))
}

func TestNavigationNeverShowsGatedItems(t *testing.T) {
	sets := []domain.PermissionSet{RestrictivePermissions()}
	for _, role := range domain.Roles() {
		sets = append(sets, PolicyFor(role))
	}
	// single-flag sets
	sets = append(sets,
		domain.PermissionSet{CanViewTeamData: true, DataScope: domain.ScopeShowroom},
		domain.PermissionSet{CanViewAnalytics: true, DataScope: domain.ScopeShowroom},
		domain.PermissionSet{CanViewReports: true, DataScope: domain.ScopeShowroom},
		domain.PermissionSet{CanAccessSettings: true, DataScope: domain.ScopeShowroom},
		domain.PermissionSet{CanEscalateToHeadOffice: true, DataScope: domain.ScopeShowroom},
	)

	for _, perms := range sets {
		items := Navigation(perms)
		for _, item := range items {
			switch item.ID {
			case ViewTeamPerformance:
				assert.True(t, perms.CanViewTeamData)
			case ViewPerformance:
				assert.True(t, perms.CanViewAnalytics)
			case ViewReports:
				assert.True(t, perms.CanViewReports)
			case ViewSettings:
				assert.True(t, perms.CanAccessSettings)
			case ViewEscalations:
				assert.True(t, perms.CanEscalate())
			case ViewAllEscalations, ViewUserManagement:
				assert.Equal(t, domain.ScopeAll, perms.DataScope)
			case ViewMyCustomers, ViewFollowUps:
				assert.Equal(t, domain.ScopeOwn, perms.DataScope)
			}
		}
		if perms.CanAccessSettings {
			assert.Equal(t, ViewSettings, items[len(items)-1].ID)
		}
	}
}

func TestRestrictiveNavigation(t *testing.T) {
	assert.Equal(t, []View{
		ViewOverview, ViewInteractions, ViewInteractionTimeline, ViewMyCustomers, ViewFollowUps,
	}, navIDs(Navigation(RestrictivePermissions())))
}

func TestViewAllowed(t *testing.T) {
	sales := PolicyFor(domain.RoleSalesPerson)
	manager := PolicyFor(domain.RoleShowroomManager)

	assert.True(t, ViewAllowed(ViewOverview, sales))
	assert.True(t, ViewAllowed("made-up", sales))
	assert.True(t, ViewAllowed(ViewEscalations, sales))
	assert.False(t, ViewAllowed(ViewPerformance, sales))
	assert.False(t, ViewAllowed(ViewSettings, sales))
	assert.False(t, ViewAllowed(ViewAllEscalations, sales))

	assert.True(t, ViewAllowed(ViewAllEscalations, manager))
	assert.True(t, ViewAllowed(ViewUserManagement, manager))
	assert.True(t, ViewAllowed(ViewEscalations, PolicyFor(domain.RoleHeadOffice)))
}
