package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// EscalationRepository defines persistence for escalation cases.
type EscalationRepository interface {
	Create(ctx context.Context, escalation *domain.Escalation) error
	UpdateStatus(ctx context.Context, id string, status domain.EscalationStatus) (*domain.Escalation, error)
	GetByID(ctx context.Context, id string) (*domain.Escalation, error)
	List(ctx context.Context) ([]domain.Escalation, error)
}

type escalationRepository struct {
	pool *pgxpool.Pool
}

// NewEscalationRepository returns a Postgres-backed implementation.
func NewEscalationRepository(pool *pgxpool.Pool) EscalationRepository {
	return &escalationRepository{pool: pool}
}

const escalationColumns = `id, interaction_id, customer_name, order_id, issue, description, priority, status,
        escalated_from, escalated_to, escalated_by, assigned_to, showroom, showroom_code, country, created_at, updated_at`

func (r *escalationRepository) Create(ctx context.Context, e *domain.Escalation) error {
	const query = `
        INSERT INTO escalations (id, interaction_id, customer_name, order_id, issue, description, priority, status,
            escalated_from, escalated_to, escalated_by, assigned_to, showroom, showroom_code, country, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`

	_, err := r.pool.Exec(ctx, query,
		e.ID,
		e.InteractionID,
		e.CustomerName,
		e.OrderID,
		e.Issue,
		e.Description,
		e.Priority,
		e.Status,
		e.EscalatedFrom,
		e.EscalatedTo,
		e.EscalatedBy,
		e.AssignedTo,
		e.Showroom,
		e.ShowroomCode,
		e.Country,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *escalationRepository) UpdateStatus(ctx context.Context, id string, status domain.EscalationStatus) (*domain.Escalation, error) {
	query := `UPDATE escalations SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + escalationColumns
	return scanEscalation(r.pool.QueryRow(ctx, query, status, id))
}

func (r *escalationRepository) GetByID(ctx context.Context, id string) (*domain.Escalation, error) {
	query := `SELECT ` + escalationColumns + ` FROM escalations WHERE id=$1`
	return scanEscalation(r.pool.QueryRow(ctx, query, id))
}

func (r *escalationRepository) List(ctx context.Context) ([]domain.Escalation, error) {
	query := `SELECT ` + escalationColumns + ` FROM escalations ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Escalation{}
	for rows.Next() {
		e, err := scanEscalation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func scanEscalation(row pgx.Row) (*domain.Escalation, error) {
	var e domain.Escalation
	if err := row.Scan(
		&e.ID,
		&e.InteractionID,
		&e.CustomerName,
		&e.OrderID,
		&e.Issue,
		&e.Description,
		&e.Priority,
		&e.Status,
		&e.EscalatedFrom,
		&e.EscalatedTo,
		&e.EscalatedBy,
		&e.AssignedTo,
		&e.Showroom,
		&e.ShowroomCode,
		&e.Country,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
