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

// TripUseCase trip CRUD.
type TripUseCase struct {
	tripRepo repository.TripRepository
}

// NewTripUseCase builds the use case.
func NewTripUseCase(tripRepo repository.TripRepository) *TripUseCase {
	return &TripUseCase{tripRepo: tripRepo}
}

// Create persists a trip. Duplicate code returns domain.ErrDuplicate.
func (uc *TripUseCase) Create(ctx context.Context, in dto.TripRequest) (*dto.TripResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: code and name are required", domain.ErrInvalidInput)
	}
	now := time.Now()
	trip := &entity.Trip{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Destination: in.Destination,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

// GetByID fetches one trip.
func (uc *TripUseCase) GetByID(ctx context.Context, id string) (*dto.TripResponse, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, domain.ErrNotFound
	}
	return toTripResponse(trip), nil
}

// List returns trips with pagination.
func (uc *TripUseCase) List(ctx context.Context, limit, offset int) ([]*dto.TripResponse, error) {
	trips, err := uc.tripRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	return out, nil
}

// Update overwrites trip fields.
func (uc *TripUseCase) Update(ctx context.Context, id string, in dto.TripRequest) (*dto.TripResponse, error) {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, domain.ErrNotFound
	}
	trip.Code = in.Code
	trip.Name = in.Name
	trip.Destination = in.Destination
	trip.StartDate = in.StartDate
	trip.EndDate = in.EndDate
	trip.Price = in.Price
	trip.UpdatedAt = time.Now()
	if err := uc.tripRepo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

// Delete removes a trip.
func (uc *TripUseCase) Delete(ctx context.Context, id string) error {
	trip, err := uc.tripRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if trip == nil {
		return domain.ErrNotFound
	}
	return uc.tripRepo.Delete(ctx, id)
}

func toTripResponse(t *entity.Trip) *dto.TripResponse {
	return &dto.TripResponse{
		ID:          t.ID,
		Code:        t.Code,
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Price:       t.Price,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
