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

var _ repository.TagRepository = (*TagRepo)(nil)

// TagRepo TagRepository adapter over PostgreSQL (pool or tx). The unique
// index on name backs the 409-on-duplicate contract.
type TagRepo struct {
	q Querier
}

// NewTagRepository builds the adapter.
func NewTagRepository(q Querier) *TagRepo {
	return &TagRepo{q: q}
}

// Create persists a new tag, domain.ErrDuplicate on name collision.
func (r *TagRepo) Create(ctx context.Context, t *entity.Tag) error {
	query := `INSERT INTO tags (id, name, color, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, t.ID, t.Name, nullIfEmpty(t.Color), t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID fetches one tag.
func (r *TagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	var t entity.Tag
	err := r.q.QueryRow(ctx,
		`SELECT id, name, COALESCE(color, ''), created_at, updated_at FROM tags WHERE id = $1`, id).Scan(
		&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &t, nil
}

// List returns every tag ordered by name.
func (r *TagRepo) List(ctx context.Context) ([]*entity.Tag, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, COALESCE(color, ''), created_at, updated_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tag
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update overwrites tag columns, domain.ErrDuplicate on name collision.
func (r *TagRepo) Update(ctx context.Context, t *entity.Tag) error {
	query := `UPDATE tags SET name = $2, color = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, t.ID, t.Name, nullIfEmpty(t.Color), t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// Delete removes a tag and its customer links.
func (r *TagRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM customer_tags WHERE tag_id = $1`, id); err != nil {
		return fmt.Errorf("delete tag links: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
