package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, customer_id, agent_id, status, COALESCE(source, ''), COALESCE(note, ''), created_at, updated_at`

// LeadRepo LeadRepository adapter over PostgreSQL (pool or tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository builds the adapter.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persists a new lead.
func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (id, customer_id, agent_id, status, source, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CustomerID, l.AgentID, l.Status, nullIfEmpty(l.Source), nullIfEmpty(l.Note),
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID fetches one lead.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	var l entity.Lead
	err := r.q.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id).Scan(
		&l.ID, &l.CustomerID, &l.AgentID, &l.Status, &l.Source, &l.Note, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List returns leads newest first with pagination.
func (r *LeadRepo) List(ctx context.Context, limit, offset int) ([]*entity.Lead, error) {
	return r.list(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByAgent returns the agent's leads newest first.
func (r *LeadRepo) ListByAgent(ctx context.Context, agentID string, limit, offset int) ([]*entity.Lead, error) {
	return r.list(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE agent_id = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset, agentID)
}

func (r *LeadRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.AgentID, &l.Status, &l.Source, &l.Note,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update overwrites lead columns.
func (r *LeadRepo) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads
		SET customer_id = $2, agent_id = $3, status = $4, source = $5, note = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CustomerID, l.AgentID, l.Status, nullIfEmpty(l.Source), nullIfEmpty(l.Note), l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete removes a lead.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
