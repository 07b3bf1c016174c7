package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var got []Event
	d.Subscribe(EventInteractionCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventAccountCreated, func(context.Context, Event) error {
		t.Fatal("unexpected delivery")
		return nil
	})

	event := New(EventInteractionCreated, "42", ActorFrom(domain.Identity{ID: "1", Role: domain.RoleSalesPerson}), nil)
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, "42", got[0].SubjectID)
	assert.Equal(t, domain.RoleSalesPerson, got[0].Actor.Role)
	assert.NotEmpty(t, got[0].ID)
}

func TestDispatcher_RunsAllHandlersAndJoinsErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	calls := 0
	d.Subscribe(EventAccountCreated, func(context.Context, Event) error {
		calls++
		return boom
	})
	d.Subscribe(EventAccountCreated, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := d.Publish(context.Background(), New(EventAccountCreated, "7", Actor{}, nil))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(EventEscalationStatusChanged, "ESC-001", Actor{}, nil)))
}
