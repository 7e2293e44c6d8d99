package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var _ repository.TripRepository = (*TripRepo)(nil)

// TripRepo TripRepository adapter over PostgreSQL (pool or tx).
type TripRepo struct {
	q Querier
}

// NewTripRepository builds the adapter.
func NewTripRepository(q Querier) *TripRepo {
	return &TripRepo{q: q}
}

// Create persists a new trip. Duplicate code maps to domain.ErrDuplicate.
func (r *TripRepo) Create(ctx context.Context, t *entity.Trip) error {
	query := `
		INSERT INTO trips (id, code, name, destination, start_date, end_date, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Code, t.Name, t.Destination, t.StartDate, t.EndDate, t.Price, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

// GetByID fetches one trip.
func (r *TripRepo) GetByID(ctx context.Context, id string) (*entity.Trip, error) {
	query := `
		SELECT id, code, name, destination, start_date, end_date, price, created_at, updated_at
		FROM trips WHERE id = $1`
	var t entity.Trip
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Code, &t.Name, &t.Destination, &t.StartDate, &t.EndDate, &t.Price,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return &t, nil
}

// List returns trips newest first with pagination.
func (r *TripRepo) List(ctx context.Context, limit, offset int) ([]*entity.Trip, error) {
	query := `
		SELECT id, code, name, destination, start_date, end_date, price, created_at, updated_at
		FROM trips ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	defer rows.Close()
	var list []*entity.Trip
	for rows.Next() {
		var t entity.Trip
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Destination, &t.StartDate, &t.EndDate,
			&t.Price, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update overwrites trip columns.
func (r *TripRepo) Update(ctx context.Context, t *entity.Trip) error {
	query := `
		UPDATE trips
		SET code = $2, name = $3, destination = $4, start_date = $5, end_date = $6, price = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Code, t.Name, t.Destination, t.StartDate, t.EndDate, t.Price, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update trip: %w", err)
	}
	return nil
}

// Delete removes a trip.
func (r *TripRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}
