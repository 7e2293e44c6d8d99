package repository

import (
	"context"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

// LeadRepository is the persistence port for Lead.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Lead, error)
	ListByAgent(ctx context.Context, agentID string, limit, offset int) ([]*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id string) error
}

// TripRepository is the persistence port for Trip.
type TripRepository interface {
	Create(ctx context.Context, trip *entity.Trip) error
	GetByID(ctx context.Context, id string) (*entity.Trip, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Trip, error)
	Update(ctx context.Context, trip *entity.Trip) error
	Delete(ctx context.Context, id string) error
}

// TagRepository is the persistence port for Tag. Create and Update return
// domain.ErrDuplicate on a name collision.
type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	GetByID(ctx context.Context, id string) (*entity.Tag, error)
	List(ctx context.Context) ([]*entity.Tag, error)
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id string) error
}

// TaskRepository is the persistence port for Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string, limit, offset int) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id string) error
}

// NotificationRepository is the persistence port for Notification.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
