package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MyCommissionRow one booking line in the self-service commission view.
type MyCommissionRow struct {
	BookingID    string          `json:"bookingId"`
	CustomerName string          `json:"customerName"`
	TripName     string          `json:"tripName"`
	Destination  string          `json:"destination"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Commission   decimal.Decimal `json:"commission"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// MyCommissionResponse self-service aggregation for the calling agent.
type MyCommissionResponse struct {
	CommissionRate  decimal.Decimal   `json:"commissionRate"`
	TotalSales      decimal.Decimal   `json:"totalSales"`
	TotalCommission decimal.Decimal   `json:"totalCommission"`
	TotalBookings   int               `json:"totalBookings"`
	Bookings        []MyCommissionRow `json:"bookings"`
}

// AgentCommissionRow one line in the admin per-agent detail view, read from
// persisted commission records.
type AgentCommissionRow struct {
	TripCode         string          `json:"tripCode"`
	TripName         string          `json:"tripName"`
	CustomerName     string          `json:"customerName"`
	TotalPeople      int             `json:"totalPeople"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
}
