package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo BookingRepository adapter over PostgreSQL (pool or tx).
type BookingRepo struct {
	q Querier
}

// NewBookingRepository builds the adapter.
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

// Create persists the booking and its companion links.
func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, lead_id, trip_id, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.LeadID, b.TripID, b.Status, b.TotalAmount, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return r.setCompanions(ctx, b.ID, b.CompanionIDs)
}

// GetByID fetches one booking with companion ids.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	query := `
		SELECT id, lead_id, trip_id, status, total_amount, created_at, updated_at
		FROM bookings WHERE id = $1`
	var b entity.Booking
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.LeadID, &b.TripID, &b.Status, &b.TotalAmount, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	companions, err := r.companionIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	b.CompanionIDs = companions
	return &b, nil
}

// List returns bookings newest first with pagination.
func (r *BookingRepo) List(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, lead_id, trip_id, status, total_amount, created_at, updated_at
		FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Booking
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.LeadID, &b.TripID, &b.Status, &b.TotalAmount,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update overwrites booking columns and replaces companion links.
func (r *BookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	query := `
		UPDATE bookings
		SET lead_id = $2, trip_id = $3, status = $4, total_amount = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.LeadID, b.TripID, b.Status, b.TotalAmount, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return r.setCompanions(ctx, b.ID, b.CompanionIDs)
}

// Delete removes a booking and its companion links.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM booking_companions WHERE booking_id = $1`, id); err != nil {
		return fmt.Errorf("delete booking companions: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// ListCommissionable returns the agent's CONFIRMED/COMPLETED bookings joined
// to the lead customer and trip.
func (r *BookingRepo) ListCommissionable(ctx context.Context, agentID string) ([]repository.AgentBooking, error) {
	query := `
		SELECT b.id, b.lead_id, b.trip_id, b.status, b.total_amount, b.created_at, b.updated_at,
		       c.id, c.first_name_th, c.last_name_th, c.first_name_en, c.last_name_en,
		       t.id, t.code, t.name, t.destination
		FROM bookings b
		JOIN leads l     ON l.id = b.lead_id
		JOIN customers c ON c.id = l.customer_id
		JOIN trips t     ON t.id = b.trip_id
		WHERE l.agent_id = $1 AND b.status IN ($2, $3)
		ORDER BY b.created_at DESC`
	rows, err := r.q.Query(ctx, query, agentID,
		entity.BookingStatusConfirmed, entity.BookingStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("list commissionable bookings: %w", err)
	}
	defer rows.Close()
	var list []repository.AgentBooking
	for rows.Next() {
		var ab repository.AgentBooking
		if err := rows.Scan(
			&ab.Booking.ID, &ab.Booking.LeadID, &ab.Booking.TripID, &ab.Booking.Status,
			&ab.Booking.TotalAmount, &ab.Booking.CreatedAt, &ab.Booking.UpdatedAt,
			&ab.Customer.ID, &ab.Customer.FirstNameTh, &ab.Customer.LastNameTh,
			&ab.Customer.FirstNameEn, &ab.Customer.LastNameEn,
			&ab.Trip.ID, &ab.Trip.Code, &ab.Trip.Name, &ab.Trip.Destination,
		); err != nil {
			return nil, fmt.Errorf("scan commissionable booking: %w", err)
		}
		list = append(list, ab)
	}
	return list, rows.Err()
}

func (r *BookingRepo) setCompanions(ctx context.Context, bookingID string, customerIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM booking_companions WHERE booking_id = $1`, bookingID); err != nil {
		return fmt.Errorf("clear booking companions: %w", err)
	}
	for _, cid := range customerIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO booking_companions (booking_id, customer_id) VALUES ($1, $2)`, bookingID, cid); err != nil {
			return fmt.Errorf("insert booking companion: %w", err)
		}
	}
	return nil
}

func (r *BookingRepo) companionIDs(ctx context.Context, bookingID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT customer_id FROM booking_companions WHERE booking_id = $1`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list booking companions: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan companion id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
