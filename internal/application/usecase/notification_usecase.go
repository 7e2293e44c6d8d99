package usecase

import (
	"context"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

// NotificationUseCase list and mark-read, with the ownership gate: only the
// owning user may mark a notification read.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationUseCase builds the use case.
func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// ListMine returns the caller's notifications, newest first.
func (uc *NotificationUseCase) ListMine(ctx context.Context, callerID string, limit, offset int) ([]*dto.NotificationResponse, error) {
	list, err := uc.notificationRepo.ListByUser(ctx, callerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// MarkRead flips isRead for one notification. A caller who does not own it
// gets ErrForbidden and the row is left untouched, whatever their role.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, callerID, id string) (*dto.NotificationResponse, error) {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if n.UserID != callerID {
		return nil, domain.ErrForbidden
	}
	if !n.IsRead {
		if err := uc.notificationRepo.MarkRead(ctx, id); err != nil {
			return nil, err
		}
		n.IsRead = true
	}
	return toNotificationResponse(n), nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
