package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/application/usecase"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

// fakeAccountRepo supports the email lookups the account use case needs.
type fakeAccountRepo struct {
	users map[string]*entity.User
}

func newFakeAccountRepo(users ...*entity.User) *fakeAccountRepo {
	r := &fakeAccountRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeAccountRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeAccountRepo) FindByResetToken(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeAccountRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
func (r *fakeAccountRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeAccountRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func TestUserCreate_NoPasswordAtCreation(t *testing.T) {
	repo := newFakeAccountRepo()
	uc := usecase.NewUserUseCase(repo)

	rate := decimal.NewFromInt(10)
	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "new@example.com", Name: "New Agent", Role: "AGENT", CommissionRate: &rate,
	})
	require.NoError(t, err)
	assert.Equal(t, "AGENT", out.Role)
	assert.True(t, out.IsActive)

	stored, _ := repo.FindByID(context.Background(), out.ID)
	assert.Nil(t, stored.PasswordHash, "accounts start without a password; the reset flow sets one")
}

func TestUserCreate_UnknownRole(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeAccountRepo())

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "new@example.com", Name: "X", Role: "MANAGER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo(&entity.User{ID: "u1", Email: "taken@example.com", Role: entity.RoleAgent})
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "taken@example.com", Name: "X", Role: "AGENT",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserPatch_DeactivateFlipsFlag(t *testing.T) {
	repo := newFakeAccountRepo(&entity.User{ID: "u1", Email: "a@example.com", Role: entity.RoleAgent, IsActive: true})
	uc := usecase.NewUserUseCase(repo)

	inactive := false
	out, err := uc.Patch(context.Background(), "u1", dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestUserPatch_RoleChangeValidated(t *testing.T) {
	repo := newFakeAccountRepo(&entity.User{ID: "u1", Email: "a@example.com", Role: entity.RoleAgent, IsActive: true})
	uc := usecase.NewUserUseCase(repo)

	bad := "OWNER"
	_, err := uc.Patch(context.Background(), "u1", dto.UpdateUserRequest{Role: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	good := "ADMIN"
	out, err := uc.Patch(context.Background(), "u1", dto.UpdateUserRequest{Role: &good})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", out.Role)
}
