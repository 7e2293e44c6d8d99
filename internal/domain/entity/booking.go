package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking statuses. Only CONFIRMED and COMPLETED count toward commission.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// CommissionableStatus reports whether a booking in status s earns commission.
func CommissionableStatus(s string) bool {
	return s == BookingStatusConfirmed || s == BookingStatusCompleted
}

// Booking ties a lead to a trip. The lead customer is the primary traveller;
// CompanionIDs lists additional customers on the same booking, so the head
// count is 1 + len(CompanionIDs).
type Booking struct {
	ID           string
	LeadID       string
	TripID       string
	Status       string
	TotalAmount  decimal.Decimal
	CompanionIDs []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Commission is the persisted per-booking commission record written when a
// booking first turns CONFIRMED and kept in sync on later status or amount
// changes. The self-service view recomputes from live bookings; this record
// backs the admin per-agent detail.
type Commission struct {
	ID        string
	BookingID string
	AgentID   string
	Rate      decimal.Decimal // percentage at the time of confirmation
	Amount    decimal.Decimal // TotalAmount × Rate / 100
	CreatedAt time.Time
}
