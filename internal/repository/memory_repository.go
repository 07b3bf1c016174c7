package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// The in-memory repositories back the service when no database is
// configured. Missing records surface as pgx.ErrNoRows so callers handle both
// backends the same way.

type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
}

// NewMemoryAccountRepository returns an empty in-memory account store.
func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{}
}

func (r *memoryAccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return ErrDuplicateEmail
		}
	}
	stamp(&account.CreatedAt, &account.UpdatedAt)
	r.accounts = append(r.accounts, *account)
	return nil
}

func (r *memoryAccountRepository) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.accounts {
		if r.accounts[idx].ID != account.ID {
			continue
		}
		account.UpdatedAt = time.Now().UTC()
		r.accounts[idx] = *account
		return nil
	}
	return pgx.ErrNoRows
}

func (r *memoryAccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if account.ID == id {
			return &account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryAccountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			return &account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryAccountRepository) List(_ context.Context, filter AccountFilter) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := []domain.Account{}
	for _, account := range r.accounts {
		if filter.Role != nil && account.Role != *filter.Role {
			continue
		}
		if filter.Status != nil && account.Status != *filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(account.Name), search) &&
			!strings.Contains(strings.ToLower(account.Email), search) {
			continue
		}
		result = append(result, account)
	}
	return result, nil
}

type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []domain.Customer
}

// NewMemoryCustomerRepository returns an empty in-memory customer store.
func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{}
}

func (r *memoryCustomerRepository) Create(_ context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&customer.CreatedAt, &customer.UpdatedAt)
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *memoryCustomerRepository) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, customer := range r.customers {
		if customer.ID == id {
			return &customer, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryCustomerRepository) List(context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Customer{}, r.customers...), nil
}

type memoryInteractionRepository struct {
	mu           sync.RWMutex
	interactions []domain.Interaction
}

// NewMemoryInteractionRepository returns an empty in-memory interaction store.
func NewMemoryInteractionRepository() InteractionRepository {
	return &memoryInteractionRepository{}
}

func (r *memoryInteractionRepository) Create(_ context.Context, interaction *domain.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if interaction.OccurredAt.IsZero() {
		interaction.OccurredAt = time.Now().UTC()
	}
	interaction.UpdatedAt = interaction.OccurredAt
	r.interactions = append(r.interactions, *interaction)
	return nil
}

func (r *memoryInteractionRepository) Update(_ context.Context, interaction *domain.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.interactions {
		if r.interactions[idx].ID != interaction.ID {
			continue
		}
		interaction.UpdatedAt = time.Now().UTC()
		r.interactions[idx] = *interaction
		return nil
	}
	return pgx.ErrNoRows
}

func (r *memoryInteractionRepository) GetByID(_ context.Context, id string) (*domain.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, interaction := range r.interactions {
		if interaction.ID == id {
			return &interaction, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryInteractionRepository) List(context.Context) ([]domain.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Interaction{}, r.interactions...), nil
}

type memoryEscalationRepository struct {
	mu          sync.RWMutex
	escalations []domain.Escalation
}

// NewMemoryEscalationRepository returns an empty in-memory escalation store.
func NewMemoryEscalationRepository() EscalationRepository {
	return &memoryEscalationRepository{}
}

func (r *memoryEscalationRepository) Create(_ context.Context, escalation *domain.Escalation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&escalation.CreatedAt, &escalation.UpdatedAt)
	r.escalations = append(r.escalations, *escalation)
	return nil
}

func (r *memoryEscalationRepository) UpdateStatus(_ context.Context, id string, status domain.EscalationStatus) (*domain.Escalation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := range r.escalations {
		if r.escalations[idx].ID != id {
			continue
		}
		r.escalations[idx].Status = status
		r.escalations[idx].UpdatedAt = time.Now().UTC()
		updated := r.escalations[idx]
		return &updated, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memoryEscalationRepository) GetByID(_ context.Context, id string) (*domain.Escalation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, escalation := range r.escalations {
		if escalation.ID == id {
			return &escalation, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// List returns escalations newest first, matching the Postgres ordering.
func (r *memoryEscalationRepository) List(context.Context) ([]domain.Escalation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := append([]domain.Escalation{}, r.escalations...)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func stamp(created, updated *time.Time) {
	if created.IsZero() {
		*created = time.Now().UTC()
	}
	if updated.IsZero() {
		*updated = *created
	}
}
