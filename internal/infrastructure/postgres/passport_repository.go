package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var _ repository.PassportRepository = (*PassportRepo)(nil)

// PassportRepo PassportRepository adapter over PostgreSQL. Constructed on
// the pool for single writes and on a tx (via TxRunner) for set-primary.
type PassportRepo struct {
	q Querier
}

// NewPassportRepository builds the adapter.
func NewPassportRepository(q Querier) *PassportRepo {
	return &PassportRepo{q: q}
}

// Upsert inserts or updates a passport by id.
func (r *PassportRepo) Upsert(ctx context.Context, p *entity.Passport) error {
	query := `
		INSERT INTO passports (id, customer_id, passport_no, issue_date, expiry_date, is_primary, image_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET passport_no = EXCLUDED.passport_no,
		    issue_date  = EXCLUDED.issue_date,
		    expiry_date = EXCLUDED.expiry_date,
		    is_primary  = EXCLUDED.is_primary,
		    image_key   = EXCLUDED.image_key,
		    updated_at  = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CustomerID, p.PassportNo, p.IssueDate, p.ExpiryDate, p.IsPrimary,
		nullIfEmpty(p.ImageKey), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert passport: %w", err)
	}
	return nil
}

// GetByID fetches one passport.
func (r *PassportRepo) GetByID(ctx context.Context, id string) (*entity.Passport, error) {
	query := `
		SELECT id, customer_id, passport_no, issue_date, expiry_date, is_primary,
		       COALESCE(image_key, ''), created_at, updated_at
		FROM passports WHERE id = $1`
	var p entity.Passport
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CustomerID, &p.PassportNo, &p.IssueDate, &p.ExpiryDate, &p.IsPrimary,
		&p.ImageKey, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get passport: %w", err)
	}
	return &p, nil
}

// ListByCustomer returns the customer's passports, primary first.
func (r *PassportRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Passport, error) {
	query := `
		SELECT id, customer_id, passport_no, issue_date, expiry_date, is_primary,
		       COALESCE(image_key, ''), created_at, updated_at
		FROM passports WHERE customer_id = $1 ORDER BY is_primary DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list passports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Passport
	for rows.Next() {
		var p entity.Passport
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.PassportNo, &p.IssueDate, &p.ExpiryDate,
			&p.IsPrimary, &p.ImageKey, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan passport: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ClearPrimary unsets is_primary on every passport of the customer.
func (r *PassportRepo) ClearPrimary(ctx context.Context, customerID string) error {
	_, err := r.q.Exec(ctx, `UPDATE passports SET is_primary = FALSE WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("clear primary passports: %w", err)
	}
	return nil
}

// Delete removes a passport.
func (r *PassportRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM passports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete passport: %w", err)
	}
	return nil
}
