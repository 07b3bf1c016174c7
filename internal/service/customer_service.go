package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/observability"
	"github.com/spec-kit/showroom-crm/internal/repository"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

// CustomerFilter narrows a scoped customer listing.
type CustomerFilter struct {
	Status   *domain.CustomerStatus
	Priority *domain.Priority
	Country  string
	Showroom string
	Search   string
}

// CustomerService serves customer records within the caller's scope.
type CustomerService struct {
	customers repository.CustomerRepository
	metrics   *observability.Metrics
}

// NewCustomerService constructs the service.
func NewCustomerService(customers repository.CustomerRepository, metrics *observability.Metrics) *CustomerService {
	return &CustomerService{customers: customers, metrics: metrics}
}

// List returns the visible customers that satisfy filter.
func (s *CustomerService) List(ctx context.Context, principal *auth.Principal, filter CustomerFilter) ([]domain.Customer, error) {
	all, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := []domain.Customer{}
	for _, customer := range scoped(s.metrics, "customers", all, principal) {
		if filter.Status != nil && customer.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && customer.Priority != *filter.Priority {
			continue
		}
		if filter.Country != "" && !strings.EqualFold(customer.CountryCode, filter.Country) {
			continue
		}
		if filter.Showroom != "" && (customer.ShowroomCode == nil || !strings.EqualFold(*customer.ShowroomCode, filter.Showroom)) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(customer.Name), search) &&
			!strings.Contains(strings.ToLower(customer.Email), search) &&
			!strings.Contains(customer.Phone, search) {
			continue
		}
		result = append(result, customer)
	}
	return result, nil
}

// Get returns one customer. Records outside the caller's scope are reported
// as missing.
func (s *CustomerService) Get(ctx context.Context, principal *auth.Principal, id string) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
	}
	if err != nil {
		return nil, err
	}
	if !visible(*customer, principal) {
		return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
	}
	return customer, nil
}
