package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserResponse user output. Password hash and reset-token fields never leave
// the application layer.
type UserResponse struct {
	ID             string           `json:"id"`
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	Role           string           `json:"role"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// CreateUserRequest admin creates an account. No password here; the account
// starts without one and gains it through the reset flow.
type CreateUserRequest struct {
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	Role           string           `json:"role"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
}

// UpdateUserRequest admin patch; nil fields are left untouched.
type UpdateUserRequest struct {
	Name           *string          `json:"name"`
	Role           *string          `json:"role"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
	IsActive       *bool            `json:"isActive"`
}
