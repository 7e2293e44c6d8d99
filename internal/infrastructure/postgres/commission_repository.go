package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var _ repository.CommissionRepository = (*CommissionRepo)(nil)

// CommissionRepo CommissionRepository adapter over PostgreSQL (pool or tx).
type CommissionRepo struct {
	q Querier
}

// NewCommissionRepository builds the adapter.
func NewCommissionRepository(q Querier) *CommissionRepo {
	return &CommissionRepo{q: q}
}

// Create persists a commission record.
func (r *CommissionRepo) Create(ctx context.Context, c *entity.Commission) error {
	query := `
		INSERT INTO commissions (id, booking_id, agent_id, rate, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, c.ID, c.BookingID, c.AgentID, c.Rate, c.Amount, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("commission for booking already exists: %w", err)
		}
		return fmt.Errorf("insert commission: %w", err)
	}
	return nil
}

// GetByBookingID fetches the commission record of a booking, (nil, nil) when
// the booking has none.
func (r *CommissionRepo) GetByBookingID(ctx context.Context, bookingID string) (*entity.Commission, error) {
	query := `
		SELECT id, booking_id, agent_id, rate, amount, created_at
		FROM commissions WHERE booking_id = $1`
	var c entity.Commission
	err := r.q.QueryRow(ctx, query, bookingID).Scan(
		&c.ID, &c.BookingID, &c.AgentID, &c.Rate, &c.Amount, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission: %w", err)
	}
	return &c, nil
}

// Update rewrites agent, rate and amount for an existing record.
func (r *CommissionRepo) Update(ctx context.Context, c *entity.Commission) error {
	query := `UPDATE commissions SET agent_id = $2, rate = $3, amount = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.AgentID, c.Rate, c.Amount)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	return nil
}

// DeleteByBookingID drops the record when a booking leaves the
// commissionable statuses.
func (r *CommissionRepo) DeleteByBookingID(ctx context.Context, bookingID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM commissions WHERE booking_id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("delete commission: %w", err)
	}
	return nil
}

// ListByAgent returns the agent's commission rows joined to booking, trip and
// lead customer, optionally windowed on created_at. Ordering is part of the
// query so callers cannot forget it.
func (r *CommissionRepo) ListByAgent(ctx context.Context, agentID string, from, to *time.Time) ([]repository.AgentCommissionRow, error) {
	query := `
		SELECT co.id, co.booking_id, co.agent_id, co.rate, co.amount, co.created_at,
		       t.code, t.name,
		       c.id, c.first_name_th, c.last_name_th, c.first_name_en, c.last_name_en,
		       (SELECT COUNT(*) FROM booking_companions bc WHERE bc.booking_id = b.id)
		FROM commissions co
		JOIN bookings b  ON b.id = co.booking_id
		JOIN leads l     ON l.id = b.lead_id
		JOIN customers c ON c.id = l.customer_id
		JOIN trips t     ON t.id = b.trip_id
		WHERE co.agent_id = $1
		  AND ($2::timestamptz IS NULL OR co.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR co.created_at <= $3)
		ORDER BY co.created_at DESC`
	rows, err := r.q.Query(ctx, query, agentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list agent commissions: %w", err)
	}
	defer rows.Close()
	var list []repository.AgentCommissionRow
	for rows.Next() {
		var row repository.AgentCommissionRow
		if err := rows.Scan(
			&row.Commission.ID, &row.Commission.BookingID, &row.Commission.AgentID,
			&row.Commission.Rate, &row.Commission.Amount, &row.Commission.CreatedAt,
			&row.TripCode, &row.TripName,
			&row.Customer.ID, &row.Customer.FirstNameTh, &row.Customer.LastNameTh,
			&row.Customer.FirstNameEn, &row.Customer.LastNameEn,
			&row.CompanionCount,
		); err != nil {
			return nil, fmt.Errorf("scan agent commission: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
