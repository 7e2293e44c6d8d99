package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// BookingUseCase booking CRUD. It also keeps the persisted commission
// records in step with the booking: a row is written when the booking first
// turns CONFIRMED, updated when the amount changes while commissionable, and
// removed when the booking leaves the commissionable statuses. Without this
// the admin detail view would drift from the live aggregation.
type BookingUseCase struct {
	bookingRepo    repository.BookingRepository
	leadRepo       repository.LeadRepository
	tripRepo       repository.TripRepository
	userRepo       repository.UserRepository
	commissionRepo repository.CommissionRepository
}

// NewBookingUseCase builds the use case.
func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	leadRepo repository.LeadRepository,
	tripRepo repository.TripRepository,
	userRepo repository.UserRepository,
	commissionRepo repository.CommissionRepository,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:    bookingRepo,
		leadRepo:       leadRepo,
		tripRepo:       tripRepo,
		userRepo:       userRepo,
		commissionRepo: commissionRepo,
	}
}

// Create persists a booking after checking the lead and trip exist.
func (uc *BookingUseCase) Create(ctx context.Context, in dto.BookingRequest) (*dto.BookingResponse, error) {
	if in.LeadID == "" || in.TripID == "" {
		return nil, fmt.Errorf("%w: leadId and tripId are required", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.BookingStatusPending
	}
	if !entity.ValidBookingStatus(status) {
		return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrInvalidInput, status)
	}
	lead, err := uc.leadRepo.GetByID(ctx, in.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, fmt.Errorf("%w: lead %s", domain.ErrNotFound, in.LeadID)
	}
	trip, err := uc.tripRepo.GetByID(ctx, in.TripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, fmt.Errorf("%w: trip %s", domain.ErrNotFound, in.TripID)
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:           uuid.New().String(),
		LeadID:       in.LeadID,
		TripID:       in.TripID,
		Status:       status,
		TotalAmount:  in.TotalAmount,
		CompanionIDs: in.CompanionIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	if entity.CommissionableStatus(status) {
		if err := uc.syncCommission(ctx, booking, lead); err != nil {
			return nil, err
		}
	}
	return toBookingResponse(booking), nil
}

// GetByID fetches one booking.
func (uc *BookingUseCase) GetByID(ctx context.Context, id string) (*dto.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	return toBookingResponse(booking), nil
}

// List returns bookings with pagination.
func (uc *BookingUseCase) List(ctx context.Context, limit, offset int) ([]*dto.BookingResponse, error) {
	bookings, err := uc.bookingRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out, nil
}

// Update overwrites booking fields and reconciles the commission record with
// the new status/amount.
func (uc *BookingUseCase) Update(ctx context.Context, id string, in dto.BookingRequest) (*dto.BookingResponse, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" {
		if !entity.ValidBookingStatus(in.Status) {
			return nil, fmt.Errorf("%w: unknown booking status %q", domain.ErrInvalidInput, in.Status)
		}
		booking.Status = in.Status
	}
	if !in.TotalAmount.IsZero() {
		booking.TotalAmount = in.TotalAmount
	}
	if in.CompanionIDs != nil {
		booking.CompanionIDs = in.CompanionIDs
	}
	booking.UpdatedAt = time.Now()
	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if entity.CommissionableStatus(booking.Status) {
		lead, err := uc.leadRepo.GetByID(ctx, booking.LeadID)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			return nil, fmt.Errorf("%w: lead %s", domain.ErrNotFound, booking.LeadID)
		}
		if err := uc.syncCommission(ctx, booking, lead); err != nil {
			return nil, err
		}
	} else {
		if err := uc.commissionRepo.DeleteByBookingID(ctx, booking.ID); err != nil {
			return nil, err
		}
	}
	return toBookingResponse(booking), nil
}

// Delete removes a booking and its commission record.
func (uc *BookingUseCase) Delete(ctx context.Context, id string) error {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return domain.ErrNotFound
	}
	if err := uc.commissionRepo.DeleteByBookingID(ctx, id); err != nil {
		return err
	}
	return uc.bookingRepo.Delete(ctx, id)
}

// syncCommission upserts the persisted commission record for a
// commissionable booking, using the owning agent's current rate.
func (uc *BookingUseCase) syncCommission(ctx context.Context, booking *entity.Booking, lead *entity.Lead) error {
	agent, err := uc.userRepo.FindByID(ctx, lead.AgentID)
	if err != nil {
		return err
	}
	if agent == nil {
		return fmt.Errorf("%w: agent %s", domain.ErrNotFound, lead.AgentID)
	}
	rate := agent.RateOrZero()
	amount := booking.TotalAmount.Mul(rate).Div(hundred)

	existing, err := uc.commissionRepo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return uc.commissionRepo.Create(ctx, &entity.Commission{
			ID:        uuid.New().String(),
			BookingID: booking.ID,
			AgentID:   lead.AgentID,
			Rate:      rate,
			Amount:    amount,
			CreatedAt: booking.CreatedAt,
		})
	}
	existing.AgentID = lead.AgentID
	existing.Rate = rate
	existing.Amount = amount
	return uc.commissionRepo.Update(ctx, existing)
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	return &dto.BookingResponse{
		ID:           b.ID,
		LeadID:       b.LeadID,
		TripID:       b.TripID,
		Status:       b.Status,
		TotalAmount:  b.TotalAmount,
		CompanionIDs: b.CompanionIDs,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
