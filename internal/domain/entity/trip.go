package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a sellable package tour.
type Trip struct {
	ID          string
	Code        string // short code shown on commission statements, e.g. "JP-TYO-05"
	Name        string
	Destination string
	StartDate   *time.Time
	EndDate     *time.Time
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
