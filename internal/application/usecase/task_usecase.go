package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

// TaskUseCase task CRUD scoped to the assignee.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUseCase builds the use case.
func NewTaskUseCase(taskRepo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo}
}

// Create persists a task; an empty assignee defaults to the caller.
func (uc *TaskUseCase) Create(ctx context.Context, callerID string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	assignee := in.AssigneeID
	if assignee == "" {
		assignee = callerID
	}
	now := time.Now()
	task := &entity.Task{
		ID:         uuid.New().String(),
		Title:      in.Title,
		Note:       in.Note,
		DueDate:    in.DueDate,
		AssigneeID: assignee,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// ListMine returns the caller's tasks.
func (uc *TaskUseCase) ListMine(ctx context.Context, callerID string, limit, offset int) ([]*dto.TaskResponse, error) {
	tasks, err := uc.taskRepo.ListByAssignee(ctx, callerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Update patches a task. Only the assignee may touch it.
func (uc *TaskUseCase) Update(ctx context.Context, callerID, id string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if task.AssigneeID != callerID {
		return nil, domain.ErrForbidden
	}
	if in.Title != "" {
		task.Title = in.Title
	}
	task.Note = in.Note
	task.DueDate = in.DueDate
	if in.Done != nil {
		task.Done = *in.Done
	}
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete removes a task. Only the assignee may delete it.
func (uc *TaskUseCase) Delete(ctx context.Context, callerID, id string) error {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	if task.AssigneeID != callerID {
		return domain.ErrForbidden
	}
	return uc.taskRepo.Delete(ctx, id)
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:         t.ID,
		Title:      t.Title,
		Note:       t.Note,
		DueDate:    t.DueDate,
		Done:       t.Done,
		AssigneeID: t.AssigneeID,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
