package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/application/usecase"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

// fakeTagRepo enforces name uniqueness the way the unique constraint does.
type fakeTagRepo struct {
	tags map[string]*entity.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[string]*entity.Tag{}}
}

func (r *fakeTagRepo) nameTaken(name, excludeID string) bool {
	for _, t := range r.tags {
		if t.Name == name && t.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeTagRepo) Create(_ context.Context, tag *entity.Tag) error {
	if r.nameTaken(tag.Name, tag.ID) {
		return domain.ErrDuplicate
	}
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) GetByID(_ context.Context, id string) (*entity.Tag, error) {
	t, ok := r.tags[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTagRepo) List(_ context.Context) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTagRepo) Update(_ context.Context, tag *entity.Tag) error {
	if r.nameTaken(tag.Name, tag.ID) {
		return domain.ErrDuplicate
	}
	cp := *tag
	r.tags[tag.ID] = &cp
	return nil
}

func (r *fakeTagRepo) Delete(_ context.Context, id string) error {
	delete(r.tags, id)
	return nil
}

func TestTagCreate_DuplicateName(t *testing.T) {
	uc := usecase.NewTagUseCase(newFakeTagRepo())

	first, err := uc.Create(context.Background(), dto.TagRequest{Name: "VIP"})
	require.NoError(t, err)
	assert.Equal(t, "VIP", first.Name)

	_, err = uc.Create(context.Background(), dto.TagRequest{Name: "VIP"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTagCreate_EmptyName(t *testing.T) {
	uc := usecase.NewTagUseCase(newFakeTagRepo())

	_, err := uc.Create(context.Background(), dto.TagRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Names are case-sensitive exact matches, so "vip" and "VIP" may coexist.
func TestTagCreate_CaseSensitiveNames(t *testing.T) {
	uc := usecase.NewTagUseCase(newFakeTagRepo())

	_, err := uc.Create(context.Background(), dto.TagRequest{Name: "VIP"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.TagRequest{Name: "vip"})
	assert.NoError(t, err)
}

func TestTagUpdate_RenameOntoExisting(t *testing.T) {
	uc := usecase.NewTagUseCase(newFakeTagRepo())

	_, err := uc.Create(context.Background(), dto.TagRequest{Name: "VIP"})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), dto.TagRequest{Name: "Corporate"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), second.ID, dto.TagRequest{Name: "VIP"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTagDelete_Unknown(t *testing.T) {
	uc := usecase.NewTagUseCase(newFakeTagRepo())
	err := uc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
