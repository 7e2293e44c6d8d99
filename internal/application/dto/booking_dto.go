package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripRequest create/update input.
type TripRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Destination string          `json:"destination"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Price       decimal.Decimal `json:"price"`
}

// TripResponse trip output.
type TripResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Destination string          `json:"destination"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// LeadRequest create/update input.
type LeadRequest struct {
	CustomerID string `json:"customerId"`
	AgentID    string `json:"agentId"`
	Status     string `json:"status"`
	Source     string `json:"source"`
	Note       string `json:"note"`
}

// LeadResponse lead output.
type LeadResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	AgentID    string    `json:"agentId"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BookingRequest create/update input.
type BookingRequest struct {
	LeadID       string          `json:"leadId"`
	TripID       string          `json:"tripId"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CompanionIDs []string        `json:"companionIds"`
}

// BookingResponse booking output.
type BookingResponse struct {
	ID           string          `json:"id"`
	LeadID       string          `json:"leadId"`
	TripID       string          `json:"tripId"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CompanionIDs []string        `json:"companionIds"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
