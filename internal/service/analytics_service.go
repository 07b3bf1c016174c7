package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/observability"
	"github.com/spec-kit/showroom-crm/internal/repository"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

const recentCustomerLimit = 5

// OverviewReport is the landing dashboard summary.
type OverviewReport struct {
	TotalCustomers  int
	ActiveFollowUps int
	Escalated       int
	Completed       int
	TotalOrderValue decimal.Decimal
	RecentCustomers []domain.Customer
}

// PerformanceReport aggregates customer outcomes.
type PerformanceReport struct {
	ByStatus          map[domain.CustomerStatus]int
	ByPriority        map[domain.Priority]int
	ConversionRate    float64
	TotalOrderValue   decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// AssigneePerformance aggregates interactions per assignee.
type AssigneePerformance struct {
	AssigneeID       string
	AssigneeName     string
	Role             domain.Role
	Interactions     int
	Escalated        int
	PendingFollowUps int
}

// ShowroomSummary aggregates customers per showroom. An empty code groups
// customers with no showroom.
type ShowroomSummary struct {
	ShowroomCode string
	Customers    int
	OrderValue   decimal.Decimal
	Escalated    int
}

// AnalyticsService computes reports from records visible to the caller.
type AnalyticsService struct {
	customers    repository.CustomerRepository
	interactions repository.InteractionRepository
	metrics      *observability.Metrics
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(customers repository.CustomerRepository, interactions repository.InteractionRepository, metrics *observability.Metrics) *AnalyticsService {
	return &AnalyticsService{customers: customers, interactions: interactions, metrics: metrics}
}

func (s *AnalyticsService) visibleCustomers(ctx context.Context, principal *auth.Principal) ([]domain.Customer, error) {
	all, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	return scoped(s.metrics, "customers", all, principal), nil
}

// Overview summarizes the caller's customers.
func (s *AnalyticsService) Overview(ctx context.Context, principal *auth.Principal) (*OverviewReport, error) {
	customers, err := s.visibleCustomers(ctx, principal)
	if err != nil {
		return nil, err
	}

	report := &OverviewReport{TotalCustomers: len(customers), TotalOrderValue: decimal.Zero}
	for _, c := range customers {
		switch c.Status {
		case domain.CustomerStatusPending, domain.CustomerStatusInProgress:
			report.ActiveFollowUps++
		case domain.CustomerStatusEscalated:
			report.Escalated++
		case domain.CustomerStatusCompleted:
			report.Completed++
		}
		report.TotalOrderValue = report.TotalOrderValue.Add(c.OrderValue)
	}

	recent := append([]domain.Customer{}, customers...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].LastInteractionAt.After(recent[j].LastInteractionAt)
	})
	if len(recent) > recentCustomerLimit {
		recent = recent[:recentCustomerLimit]
	}
	report.RecentCustomers = recent
	return report, nil
}

// Performance reports outcome counts and order value. Requires analytics.
func (s *AnalyticsService) Performance(ctx context.Context, principal *auth.Principal) (*PerformanceReport, error) {
	if err := requireAnalytics(principal); err != nil {
		return nil, err
	}
	customers, err := s.visibleCustomers(ctx, principal)
	if err != nil {
		return nil, err
	}

	report := &PerformanceReport{
		ByStatus:          map[domain.CustomerStatus]int{},
		ByPriority:        map[domain.Priority]int{},
		TotalOrderValue:   decimal.Zero,
		AverageOrderValue: decimal.Zero,
	}
	for _, c := range customers {
		report.ByStatus[c.Status]++
		report.ByPriority[c.Priority]++
		report.TotalOrderValue = report.TotalOrderValue.Add(c.OrderValue)
	}
	if n := len(customers); n > 0 {
		report.ConversionRate = float64(report.ByStatus[domain.CustomerStatusCompleted]) / float64(n)
		report.AverageOrderValue = report.TotalOrderValue.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	return report, nil
}

// Team reports interaction load per assignee. Requires team data.
func (s *AnalyticsService) Team(ctx context.Context, principal *auth.Principal) ([]AssigneePerformance, error) {
	if err := requireTeamData(principal); err != nil {
		return nil, err
	}
	all, err := s.interactions.List(ctx)
	if err != nil {
		return nil, err
	}

	byAssignee := map[string]*AssigneePerformance{}
	for _, i := range scoped(s.metrics, "interactions", all, principal) {
		if i.AssignedTo == nil {
			continue
		}
		row, ok := byAssignee[*i.AssignedTo]
		if !ok {
			row = &AssigneePerformance{AssigneeID: *i.AssignedTo, AssigneeName: i.AssignedToName, Role: i.AssignedToRole}
			byAssignee[*i.AssignedTo] = row
		}
		row.Interactions++
		if i.Status == domain.InteractionStatusEscalated {
			row.Escalated++
		}
		if i.FollowUpDate != nil && i.Status != domain.InteractionStatusCompleted {
			row.PendingFollowUps++
		}
	}

	result := make([]AssigneePerformance, 0, len(byAssignee))
	for _, row := range byAssignee {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].AssigneeName != result[j].AssigneeName {
			return result[i].AssigneeName < result[j].AssigneeName
		}
		return result[i].AssigneeID < result[j].AssigneeID
	})
	return result, nil
}

// Showrooms reports customers per showroom. Requires analytics.
func (s *AnalyticsService) Showrooms(ctx context.Context, principal *auth.Principal) ([]ShowroomSummary, error) {
	if err := requireAnalytics(principal); err != nil {
		return nil, err
	}
	customers, err := s.visibleCustomers(ctx, principal)
	if err != nil {
		return nil, err
	}

	byCode := map[string]*ShowroomSummary{}
	for _, c := range customers {
		code := ""
		if c.ShowroomCode != nil {
			code = *c.ShowroomCode
		}
		row, ok := byCode[code]
		if !ok {
			row = &ShowroomSummary{ShowroomCode: code, OrderValue: decimal.Zero}
			byCode[code] = row
		}
		row.Customers++
		row.OrderValue = row.OrderValue.Add(c.OrderValue)
		if c.Status == domain.CustomerStatusEscalated {
			row.Escalated++
		}
	}

	result := make([]ShowroomSummary, 0, len(byCode))
	for _, row := range byCode {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ShowroomCode < result[j].ShowroomCode })
	return result, nil
}

func requireAnalytics(principal *auth.Principal) error {
	if principal == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !principal.Permissions.CanViewAnalytics {
		return apperrors.NewForbidden("you don't have permission to view this section")
	}
	return nil
}
