package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/tripdesk-api/internal/application/usecase"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
}

func newFakeNotificationRepo(ns ...*entity.Notification) *fakeNotificationRepo {
	r := &fakeNotificationRepo{notifications: map[string]*entity.Notification{}}
	for _, n := range ns {
		cp := *n
		r.notifications[n.ID] = &cp
	}
	return r
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	cp := *n
	r.notifications[n.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, _, _ int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	if n, ok := r.notifications[id]; ok {
		n.IsRead = true
	}
	return nil
}

func TestMarkRead_OwnerFlipsFlag(t *testing.T) {
	repo := newFakeNotificationRepo(&entity.Notification{ID: "n1", UserID: "u1", Title: "Booking confirmed"})
	uc := usecase.NewNotificationUseCase(repo)

	out, err := uc.MarkRead(context.Background(), "u1", "n1")
	require.NoError(t, err)
	assert.True(t, out.IsRead)

	stored, _ := repo.GetByID(context.Background(), "n1")
	assert.True(t, stored.IsRead)
}

// A non-owner gets 403 regardless of role, and the row stays unread.
func TestMarkRead_NonOwnerForbidden(t *testing.T) {
	repo := newFakeNotificationRepo(&entity.Notification{ID: "n1", UserID: "u1"})
	uc := usecase.NewNotificationUseCase(repo)

	_, err := uc.MarkRead(context.Background(), "u2", "n1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, _ := repo.GetByID(context.Background(), "n1")
	assert.False(t, stored.IsRead, "row must be untouched")
}

func TestMarkRead_Unknown(t *testing.T) {
	uc := usecase.NewNotificationUseCase(newFakeNotificationRepo())
	_, err := uc.MarkRead(context.Background(), "u1", "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkRead_AlreadyReadIsIdempotent(t *testing.T) {
	repo := newFakeNotificationRepo(&entity.Notification{ID: "n1", UserID: "u1", IsRead: true})
	uc := usecase.NewNotificationUseCase(repo)

	out, err := uc.MarkRead(context.Background(), "u1", "n1")
	require.NoError(t, err)
	assert.True(t, out.IsRead)
}

func TestListMine_OnlyOwnRows(t *testing.T) {
	repo := newFakeNotificationRepo(
		&entity.Notification{ID: "n1", UserID: "u1"},
		&entity.Notification{ID: "n2", UserID: "u2"},
	)
	uc := usecase.NewNotificationUseCase(repo)

	out, err := uc.ListMine(context.Background(), "u1", 20, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "n1", out[0].ID)
}
