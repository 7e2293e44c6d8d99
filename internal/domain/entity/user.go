package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the closed set of back-office roles. Comparisons go through the
// typed constants only; unknown strings fail ParseRole.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAgent      Role = "AGENT"
)

// Valid reports whether the role is one of the known constants.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleAgent:
		return true
	}
	return false
}

// IsElevated reports whether the role may access admin-gated routes.
func (r Role) IsElevated() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// ParseRole converts a string into a Role, rejecting anything outside the set.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// TokenPurpose tags a user's reset token so a token issued for one flow
// cannot be replayed in the other.
type TokenPurpose string

const (
	TokenPurposePasswordReset TokenPurpose = "PASSWORD_RESET"
	TokenPurposeEmailChange   TokenPurpose = "EMAIL_CHANGE"
)

// User is a back-office account (admin or sales agent).
// PasswordHash is nil until the first password reset completes; a user
// without a hash cannot log in and any session naming them is invalid.
type User struct {
	ID             string
	Email          string
	PasswordHash   *string
	Name           string
	Role           Role
	CommissionRate *decimal.Decimal // percentage, nil = not commissioned
	IsActive       bool
	ResetToken     *string
	ResetPurpose   *TokenPurpose
	ResetExpiry    *time.Time
	PendingEmail   *string // target address of an in-flight email change
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RateOrZero returns the commission rate, defaulting to zero when unset.
func (u *User) RateOrZero() decimal.Decimal {
	if u.CommissionRate == nil {
		return decimal.Zero
	}
	return *u.CommissionRate
}

// CanAuthenticate reports whether the account may hold a session:
// active and with a password set.
func (u *User) CanAuthenticate() bool {
	return u.IsActive && u.PasswordHash != nil
}
