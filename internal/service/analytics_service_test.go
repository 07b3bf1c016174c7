package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/repository"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

func newAnalyticsService(t *testing.T) (*AnalyticsService, *repository.Store) {
	t.Helper()
	store := newSeededStore(t)
	return NewAnalyticsService(store.Customers, store.Interactions, nil), store
}

func TestAnalyticsService_OverviewUsesVisibleCustomers(t *testing.T) {
	svc, store := newAnalyticsService(t)

	report, err := svc.Overview(context.Background(), principalFor(t, store, repository.SampleManagerID))
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalCustomers)
	assert.Equal(t, 2, report.ActiveFollowUps)
	assert.Equal(t, 0, report.Escalated)
	assert.Equal(t, 1, report.Completed)
	assert.True(t, decimal.RequireFromString("4650.50").Equal(report.TotalOrderValue), report.TotalOrderValue.String())
	assert.Equal(t, []string{"1", "2", "4"}, customerIDs(report.RecentCustomers))
}

func TestAnalyticsService_OverviewForSalesPerson(t *testing.T) {
	svc, store := newAnalyticsService(t)

	report, err := svc.Overview(context.Background(), principalFor(t, store, repository.SampleSalesPersonID))
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalCustomers)
	assert.True(t, decimal.NewFromInt(2500).Equal(report.TotalOrderValue))
}

func TestAnalyticsService_Performance(t *testing.T) {
	svc, store := newAnalyticsService(t)

	report, err := svc.Performance(context.Background(), principalFor(t, store, repository.SampleHeadOfficeID))
	require.NoError(t, err)
	assert.Equal(t, 1, report.ByStatus[domain.CustomerStatusCompleted])
	assert.Equal(t, 2, report.ByPriority[domain.PriorityHigh])
	assert.InDelta(t, 0.25, report.ConversionRate, 1e-9)
	assert.True(t, decimal.RequireFromString("10450.50").Equal(report.TotalOrderValue))
	assert.True(t, decimal.RequireFromString("2612.63").Equal(report.AverageOrderValue), report.AverageOrderValue.String())

	_, err = svc.Performance(context.Background(), principalFor(t, store, repository.SampleSalesPersonID))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestAnalyticsService_Team(t *testing.T) {
	svc, store := newAnalyticsService(t)

	rows, err := svc.Team(context.Background(), principalFor(t, store, repository.SampleHeadOfficeID))
	require.NoError(t, err)
	assert.Equal(t, []AssigneePerformance{
		{AssigneeID: "4", AssigneeName: "Jane Manager", Role: domain.RoleShowroomManager, Interactions: 1, Escalated: 1},
		{AssigneeID: "1", AssigneeName: "John Sales", Role: domain.RoleSalesPerson, Interactions: 2, PendingFollowUps: 1},
	}, rows)

	_, err = svc.Team(context.Background(), principalFor(t, store, repository.SampleSalesPersonID))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestAnalyticsService_Showrooms(t *testing.T) {
	svc, store := newAnalyticsService(t)

	rows, err := svc.Showrooms(context.Background(), principalFor(t, store, repository.SampleHeadOfficeID))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "", rows[0].ShowroomCode)
	assert.Equal(t, "SR001", rows[1].ShowroomCode)
	assert.Equal(t, 2, rows[1].Customers)
	assert.True(t, decimal.NewFromInt(3700).Equal(rows[1].OrderValue))
	assert.Equal(t, "SR002", rows[2].ShowroomCode)
	assert.Equal(t, 1, rows[2].Escalated)
}
