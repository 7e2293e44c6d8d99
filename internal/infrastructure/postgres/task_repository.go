package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo TaskRepository adapter over PostgreSQL (pool or tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository builds the adapter.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

// Create persists a new task.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, title, note, due_date, done, assignee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Title, nullIfEmpty(t.Note), t.DueDate, t.Done, t.AssigneeID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID fetches one task.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	query := `
		SELECT id, title, COALESCE(note, ''), due_date, done, assignee_id, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Note, &t.DueDate, &t.Done, &t.AssigneeID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// ListByAssignee returns the assignee's tasks, open ones first then by due date.
func (r *TaskRepo) ListByAssignee(ctx context.Context, assigneeID string, limit, offset int) ([]*entity.Task, error) {
	query := `
		SELECT id, title, COALESCE(note, ''), due_date, done, assignee_id, created_at, updated_at
		FROM tasks WHERE assignee_id = $1
		ORDER BY done, due_date NULLS LAST, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, assigneeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Note, &t.DueDate, &t.Done, &t.AssigneeID,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update overwrites task columns.
func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, note = $3, due_date = $4, done = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, t.ID, t.Title, nullIfEmpty(t.Note), t.DueDate, t.Done, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
