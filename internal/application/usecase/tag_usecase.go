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

// TagUseCase tag CRUD. Name uniqueness is enforced by the repository
// (unique constraint), surfaced as domain.ErrDuplicate.
type TagUseCase struct {
	tagRepo repository.TagRepository
}

// NewTagUseCase builds the use case.
func NewTagUseCase(tagRepo repository.TagRepository) *TagUseCase {
	return &TagUseCase{tagRepo: tagRepo}
}

// List returns every tag.
func (uc *TagUseCase) List(ctx context.Context) ([]*dto.TagResponse, error) {
	tags, err := uc.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, toTagResponse(t))
	}
	return out, nil
}

// Create persists a tag. Duplicate name returns domain.ErrDuplicate.
func (uc *TagUseCase) Create(ctx context.Context, in dto.TagRequest) (*dto.TagResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	tag := &entity.Tag{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

// Update renames/recolours a tag.
func (uc *TagUseCase) Update(ctx context.Context, id string, in dto.TagRequest) (*dto.TagResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	tag, err := uc.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, domain.ErrNotFound
	}
	tag.Name = in.Name
	tag.Color = in.Color
	tag.UpdatedAt = time.Now()
	if err := uc.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

// Delete removes a tag.
func (uc *TagUseCase) Delete(ctx context.Context, id string) error {
	tag, err := uc.tagRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return domain.ErrNotFound
	}
	return uc.tagRepo.Delete(ctx, id)
}

func toTagResponse(t *entity.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
