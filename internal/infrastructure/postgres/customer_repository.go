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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo CustomerRepository adapter over PostgreSQL (pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, first_name_th, last_name_th, first_name_en, last_name_en, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.FirstNameTh, c.LastNameTh, c.FirstNameEn, c.LastNameEn,
		nullIfEmpty(c.Email), nullIfEmpty(c.Phone), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches one customer with its tag ids.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, first_name_th, last_name_th, first_name_en, last_name_en,
		       COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstNameTh, &c.LastNameTh, &c.FirstNameEn, &c.LastNameEn,
		&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	tags, err := r.tagIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	c.TagIDs = tags
	return &c, nil
}

// List returns customers with pagination, newest first.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, first_name_th, last_name_th, first_name_en, last_name_en,
		       COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at
		FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FirstNameTh, &c.LastNameTh, &c.FirstNameEn, &c.LastNameEn,
			&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update overwrites customer columns.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name_th = $2, last_name_th = $3, first_name_en = $4, last_name_en = $5,
		    email = $6, phone = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.FirstNameTh, c.LastNameTh, c.FirstNameEn, c.LastNameEn,
		nullIfEmpty(c.Email), nullIfEmpty(c.Phone), c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// SetTags replaces the customer's tag links.
func (r *CustomerRepo) SetTags(ctx context.Context, customerID string, tagIDs []string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM customer_tags WHERE customer_id = $1`, customerID); err != nil {
		return fmt.Errorf("clear customer tags: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO customer_tags (customer_id, tag_id) VALUES ($1, $2)`, customerID, tagID); err != nil {
			return fmt.Errorf("insert customer tag: %w", err)
		}
	}
	return nil
}

func (r *CustomerRepo) tagIDs(ctx context.Context, customerID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT tag_id FROM customer_tags WHERE customer_id = $1`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer tags: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tag id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
