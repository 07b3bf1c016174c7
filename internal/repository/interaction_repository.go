package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// InteractionRepository defines persistence for customer interactions.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	Update(ctx context.Context, interaction *domain.Interaction) error
	GetByID(ctx context.Context, id string) (*domain.Interaction, error)
	List(ctx context.Context) ([]domain.Interaction, error)
}

type interactionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository returns a Postgres-backed implementation.
func NewInteractionRepository(pool *pgxpool.Pool) InteractionRepository {
	return &interactionRepository{pool: pool}
}

const interactionColumns = `id, customer_id, customer_name, type, message, status, priority, assigned_to, assigned_to_name,
        assigned_to_role, next_action, escalation_level, ai_summary, follow_up_date, telegram_customer_id, showroom_code,
        occurred_at, updated_at`

func (r *interactionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	const query = `
        INSERT INTO interactions (id, customer_id, customer_name, type, message, status, priority, assigned_to,
            assigned_to_name, assigned_to_role, next_action, escalation_level, ai_summary, follow_up_date,
            telegram_customer_id, showroom_code, occurred_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		interaction.ID,
		interaction.CustomerID,
		interaction.CustomerName,
		interaction.Type,
		interaction.Message,
		interaction.Status,
		interaction.Priority,
		interaction.AssignedTo,
		interaction.AssignedToName,
		interaction.AssignedToRole,
		interaction.NextAction,
		interaction.EscalationLevel,
		interaction.AISummary,
		interaction.FollowUpDate,
		interaction.TelegramCustomerID,
		interaction.ShowroomCode,
		interaction.OccurredAt,
	).Scan(&interaction.UpdatedAt)
}

func (r *interactionRepository) Update(ctx context.Context, interaction *domain.Interaction) error {
	const query = `
        UPDATE interactions
        SET status=$1, priority=$2, assigned_to=$3, assigned_to_name=$4, assigned_to_role=$5, next_action=$6,
            escalation_level=$7, ai_summary=$8, follow_up_date=$9, updated_at=NOW()
        WHERE id=$10
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		interaction.Status,
		interaction.Priority,
		interaction.AssignedTo,
		interaction.AssignedToName,
		interaction.AssignedToRole,
		interaction.NextAction,
		interaction.EscalationLevel,
		interaction.AISummary,
		interaction.FollowUpDate,
		interaction.ID,
	).Scan(&interaction.UpdatedAt)
}

func (r *interactionRepository) GetByID(ctx context.Context, id string) (*domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM interactions WHERE id=$1`
	return scanInteraction(r.pool.QueryRow(ctx, query, id))
}

func (r *interactionRepository) List(ctx context.Context) ([]domain.Interaction, error) {
	query := `SELECT ` + interactionColumns + ` FROM interactions ORDER BY occurred_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Interaction{}
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *interaction)
	}
	return result, rows.Err()
}

func scanInteraction(row pgx.Row) (*domain.Interaction, error) {
	var i domain.Interaction
	if err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.CustomerName,
		&i.Type,
		&i.Message,
		&i.Status,
		&i.Priority,
		&i.AssignedTo,
		&i.AssignedToName,
		&i.AssignedToRole,
		&i.NextAction,
		&i.EscalationLevel,
		&i.AISummary,
		&i.FollowUpDate,
		&i.TelegramCustomerID,
		&i.ShowroomCode,
		&i.OccurredAt,
		&i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}
