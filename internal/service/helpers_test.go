package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/repository"
)

func newSeededStore(t *testing.T) *repository.Store {
	t.Helper()
	store := repository.NewMemoryStore()
	hash, err := auth.HashPassword("password", 4)
	require.NoError(t, err)
	_, err = repository.Seed(context.Background(), store, hash)
	require.NoError(t, err)
	return store
}

func principalFor(t *testing.T, store *repository.Store, accountID string) *auth.Principal {
	t.Helper()
	account, err := store.Accounts.GetByID(context.Background(), accountID)
	require.NoError(t, err)
	identity := account.Identity()
	return &auth.Principal{
		SessionID:   "test-session",
		Identity:    identity,
		Permissions: auth.ResolvePermissions(&identity),
	}
}

func customerIDs(records []domain.Customer) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func interactionIDs(records []domain.Interaction) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
