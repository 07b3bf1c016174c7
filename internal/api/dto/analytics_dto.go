package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// OverviewResponse is the landing dashboard.
type OverviewResponse struct {
	TotalCustomers  int                `json:"total_customers"`
	ActiveFollowUps int                `json:"active_follow_ups"`
	Escalated       int                `json:"escalated_cases"`
	Completed       int                `json:"completed"`
	TotalOrderValue decimal.Decimal    `json:"total_order_value"`
	RecentCustomers []CustomerResponse `json:"recent_customers"`
}

// PerformanceResponse aggregates customer outcomes.
type PerformanceResponse struct {
	ByStatus          map[domain.CustomerStatus]int `json:"by_status"`
	ByPriority        map[domain.Priority]int       `json:"by_priority"`
	ConversionRate    float64                       `json:"conversion_rate"`
	TotalOrderValue   decimal.Decimal               `json:"total_order_value"`
	AverageOrderValue decimal.Decimal               `json:"average_order_value"`
}

// AssigneePerformanceResponse is one team row.
type AssigneePerformanceResponse struct {
	AssigneeID       string      `json:"assignee_id"`
	AssigneeName     string      `json:"assignee_name"`
	Role             domain.Role `json:"role"`
	Interactions     int         `json:"interactions"`
	Escalated        int         `json:"escalated"`
	PendingFollowUps int         `json:"pending_follow_ups"`
}

// ShowroomSummaryResponse is one showroom row.
type ShowroomSummaryResponse struct {
	ShowroomCode string          `json:"showroom_code"`
	Customers    int             `json:"customers"`
	OrderValue   decimal.Decimal `json:"order_value"`
	Escalated    int             `json:"escalated"`
}

// FromOverview maps the overview report.
func FromOverview(r *service.OverviewReport) OverviewResponse {
	return OverviewResponse{
		TotalCustomers:  r.TotalCustomers,
		ActiveFollowUps: r.ActiveFollowUps,
		Escalated:       r.Escalated,
		Completed:       r.Completed,
		TotalOrderValue: r.TotalOrderValue,
		RecentCustomers: FromCustomers(r.RecentCustomers),
	}
}

// FromPerformance maps the performance report.
func FromPerformance(r *service.PerformanceReport) PerformanceResponse {
	return PerformanceResponse{
		ByStatus:          r.ByStatus,
		ByPriority:        r.ByPriority,
		ConversionRate:    r.ConversionRate,
		TotalOrderValue:   r.TotalOrderValue,
		AverageOrderValue: r.AverageOrderValue,
	}
}

// FromTeam maps team rows.
func FromTeam(rows []service.AssigneePerformance) []AssigneePerformanceResponse {
	out := make([]AssigneePerformanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, AssigneePerformanceResponse(r))
	}
	return out
}

// FromShowrooms maps showroom rows.
func FromShowrooms(rows []service.ShowroomSummary) []ShowroomSummaryResponse {
	out := make([]ShowroomSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ShowroomSummaryResponse(r))
	}
	return out
}
