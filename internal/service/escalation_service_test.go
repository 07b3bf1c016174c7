package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/events"
	"github.com/spec-kit/showroom-crm/internal/repository"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

func escalationIDs(records []domain.Escalation) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestEscalationService_ManagerSeesShowroomAndUntagged(t *testing.T) {
	store := newSeededStore(t)
	svc := NewEscalationService(store.Escalations, nil, nil, nil)

	got, stats, err := svc.List(context.Background(), principalFor(t, store, repository.SampleManagerID), EscalationFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ESC-001", "ESC-003"}, escalationIDs(got))
	assert.Equal(t, EscalationStats{
		Total:           2,
		Pending:         1,
		Resolved:        1,
		Urgent:          1,
		AvgResponseTime: 11 * time.Hour,
	}, stats)
}

func TestEscalationService_HeadOfficeFilters(t *testing.T) {
	store := newSeededStore(t)
	svc := NewEscalationService(store.Escalations, nil, nil, nil)
	hq := principalFor(t, store, repository.SampleHeadOfficeID)
	ctx := context.Background()

	got, stats, err := svc.List(ctx, hq, EscalationFilter{Search: "payment"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ESC-003"}, escalationIDs(got))
	assert.Equal(t, 3, stats.Total, "stats cover the whole scope")
	assert.Equal(t, 16*time.Hour+10*time.Minute, stats.AvgResponseTime)

	got, _, err = svc.List(ctx, hq, EscalationFilter{Country: "uae"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ESC-001"}, escalationIDs(got))

	inProgress := domain.EscalationStatusInProgress
	got, _, err = svc.List(ctx, hq, EscalationFilter{Status: &inProgress})
	require.NoError(t, err)
	assert.Equal(t, []string{"ESC-002"}, escalationIDs(got))
}

func TestEscalationService_SalesPersonForbidden(t *testing.T) {
	store := newSeededStore(t)
	svc := NewEscalationService(store.Escalations, nil, nil, nil)

	_, _, err := svc.List(context.Background(), principalFor(t, store, repository.SampleSalesPersonID), EscalationFilter{})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))

	_, _, err = svc.List(context.Background(), nil, EscalationFilter{})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
}

func TestEscalationService_UpdateStatus(t *testing.T) {
	store := newSeededStore(t)
	dispatcher := events.NewInMemoryDispatcher()
	rec := &recordedEvents{}
	dispatcher.Subscribe(events.EventEscalationStatusChanged, rec.handle)
	svc := NewEscalationService(store.Escalations, dispatcher, nil, nil)
	manager := principalFor(t, store, repository.SampleManagerID)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, manager, "ESC-001", domain.EscalationStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.EscalationStatusInProgress, updated.Status)
	require.Len(t, rec.events, 1)
	assert.Equal(t, events.EscalationStatusChangedPayload{
		OldStatus: domain.EscalationStatusPending,
		NewStatus: domain.EscalationStatusInProgress,
	}, rec.events[0].Payload)

	_, err = svc.UpdateStatus(ctx, manager, "ESC-002", domain.EscalationStatusResolved)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, err = svc.UpdateStatus(ctx, manager, "ESC-001", domain.EscalationStatus("closed"))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
}

func TestStatsEmpty(t *testing.T) {
	assert.Equal(t, EscalationStats{}, Stats(nil))
}
