package repository

import (
	"context"
	"time"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

// AgentBooking is a booking joined to its customer and trip, as needed by the
// self-service commission view.
type AgentBooking struct {
	Booking  entity.Booking
	Customer entity.Customer
	Trip     entity.Trip
}

// BookingRepository is the persistence port for Booking.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id string) error
	// ListCommissionable returns the agent's bookings with status CONFIRMED or
	// COMPLETED, joined to customer and trip.
	ListCommissionable(ctx context.Context, agentID string) ([]AgentBooking, error)
}

// AgentCommissionRow is a persisted commission joined to booking, trip and
// customer, as needed by the admin per-agent detail view.
type AgentCommissionRow struct {
	Commission     entity.Commission
	TripCode       string
	TripName       string
	Customer       entity.Customer
	CompanionCount int
}

// CommissionRepository is the persistence port for the persisted Commission
// records backing the admin detail view.
type CommissionRepository interface {
	Create(ctx context.Context, commission *entity.Commission) error
	GetByBookingID(ctx context.Context, bookingID string) (*entity.Commission, error)
	Update(ctx context.Context, commission *entity.Commission) error
	DeleteByBookingID(ctx context.Context, bookingID string) error
	// ListByAgent returns rows for the agent, optionally windowed on
	// created_at, ordered created_at DESC at the query level.
	ListByAgent(ctx context.Context, agentID string, from, to *time.Time) ([]AgentCommissionRow, error)
}
