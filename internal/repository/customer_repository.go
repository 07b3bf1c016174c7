package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// CustomerRepository defines persistence access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

const customerColumns = `id, name, email, phone, status, priority, order_value::text, country_code, last_interaction_at,
        sales_person_id, telegram_customer_id, showroom_code, created_at, updated_at`

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (id, name, email, phone, status, priority, order_value, country_code,
            last_interaction_at, sales_person_id, telegram_customer_id, showroom_code)
        VALUES ($1,$2,$3,$4,$5,$6,$7::numeric,$8,$9,$10,$11,$12)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Status,
		customer.Priority,
		customer.OrderValue.String(),
		customer.CountryCode,
		customer.LastInteractionAt,
		customer.SalesPersonID,
		customer.TelegramCustomerID,
		customer.ShowroomCode,
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	return scanCustomer(r.pool.QueryRow(ctx, query, id))
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *customer)
	}
	return result, rows.Err()
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var (
		customer   domain.Customer
		orderValue string
	)
	if err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Status,
		&customer.Priority,
		&orderValue,
		&customer.CountryCode,
		&customer.LastInteractionAt,
		&customer.SalesPersonID,
		&customer.TelegramCustomerID,
		&customer.ShowroomCode,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	value, err := decimal.NewFromString(orderValue)
	if err != nil {
		return nil, err
	}
	customer.OrderValue = value
	return &customer, nil
}
