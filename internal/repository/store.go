package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles the record repositories.
type Store struct {
	Accounts     AccountRepository
	Customers    CustomerRepository
	Interactions InteractionRepository
	Escalations  EscalationRepository
}

// NewPostgresStore wires every repository to the pool.
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Accounts:     NewAccountRepository(pool),
		Customers:    NewCustomerRepository(pool),
		Interactions: NewInteractionRepository(pool),
		Escalations:  NewEscalationRepository(pool),
	}
}

// NewMemoryStore returns empty in-memory repositories.
func NewMemoryStore() *Store {
	return &Store{
		Accounts:     NewMemoryAccountRepository(),
		Customers:    NewMemoryCustomerRepository(),
		Interactions: NewMemoryInteractionRepository(),
		Escalations:  NewMemoryEscalationRepository(),
	}
}

// Seed loads the sample dataset unless accounts already exist. It reports
// whether anything was written.
func Seed(ctx context.Context, store *Store, passwordHash string) (bool, error) {
	existing, err := store.Accounts.List(ctx, AccountFilter{})
	if err != nil {
		return false, fmt.Errorf("check accounts: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, account := range SampleAccounts(passwordHash) {
		if err := store.Accounts.Create(ctx, &account); err != nil {
			return false, fmt.Errorf("seed account %s: %w", account.ID, err)
		}
	}
	for _, customer := range SampleCustomers() {
		if err := store.Customers.Create(ctx, &customer); err != nil {
			return false, fmt.Errorf("seed customer %s: %w", customer.ID, err)
		}
	}
	for _, interaction := range SampleInteractions() {
		if err := store.Interactions.Create(ctx, &interaction); err != nil {
			return false, fmt.Errorf("seed interaction %s: %w", interaction.ID, err)
		}
	}
	for _, escalation := range SampleEscalations() {
		if err := store.Escalations.Create(ctx, &escalation); err != nil {
			return false, fmt.Errorf("seed escalation %s: %w", escalation.ID, err)
		}
	}
	return true, nil
}
