package auth

import "github.com/spec-kit/showroom-crm/internal/domain"

// View identifies a dashboard section.
type View string

const (
	ViewOverview            View = "overview"
	ViewInteractions        View = "interactions"
	ViewInteractionTimeline View = "interaction-timeline"
	ViewMyCustomers         View = "my-customers"
	ViewFollowUps           View = "follow-ups"
	ViewTeamPerformance     View = "team-performance"
	ViewShowroomAnalytics   View = "showroom-analytics"
	ViewEscalations         View = "escalations"
	ViewPerformance         View = "performance"
	ViewReports             View = "reports"
	ViewAllEscalations      View = "all-escalations"
	ViewUserManagement      View = "user-management"
	ViewSettings            View = "settings"
)

// NavigationItem is an entry of the dashboard sidebar.
type NavigationItem struct {
	ID    View   `json:"id"`
	Label string `json:"label"`
}

// Navigation builds the sidebar for a permission set. Items are gated only by
// permission flags and scope, never by role. Settings is always last.
func Navigation(perms domain.PermissionSet) []NavigationItem {
	items := []NavigationItem{
		{ID: ViewOverview, Label: "Overview"},
		{ID: ViewInteractions, Label: "Manage Interactions"},
		{ID: ViewInteractionTimeline, Label: "Timeline"},
	}

	if perms.DataScope == domain.ScopeOwn {
		items = append(items,
			NavigationItem{ID: ViewMyCustomers, Label: "My Customers"},
			NavigationItem{ID: ViewFollowUps, Label: "Follow-ups"},
		)
	}
	if perms.CanViewTeamData {
		items = append(items,
			NavigationItem{ID: ViewTeamPerformance, Label: "Team Performance"},
			NavigationItem{ID: ViewShowroomAnalytics, Label: "Analytics"},
		)
	}
	if perms.CanEscalate() {
		items = append(items, NavigationItem{ID: ViewEscalations, Label: "Escalations"})
	}
	if perms.CanViewAnalytics {
		items = append(items, NavigationItem{ID: ViewPerformance, Label: "Performance"})
	}
	if perms.CanViewReports {
		items = append(items, NavigationItem{ID: ViewReports, Label: "Reports"})
	}
	if perms.DataScope == domain.ScopeAll {
		items = append(items,
			NavigationItem{ID: ViewAllEscalations, Label: "All Escalations"},
			NavigationItem{ID: ViewUserManagement, Label: "User Management"},
		)
	}
	if perms.CanAccessSettings {
		items = append(items, NavigationItem{ID: ViewSettings, Label: "Settings"})
	}
	return items
}

// ViewAllowed reports whether perms may open view. Unknown views render the
// overview, which is open to everyone.
func ViewAllowed(view View, perms domain.PermissionSet) bool {
	switch view {
	case ViewPerformance, ViewShowroomAnalytics:
		return perms.CanViewAnalytics
	case ViewTeamPerformance, ViewAllEscalations:
		return perms.CanViewTeamData
	case ViewUserManagement, ViewSettings:
		return perms.CanAccessSettings
	case ViewReports:
		return perms.CanViewReports
	default:
		return true
	}
}
