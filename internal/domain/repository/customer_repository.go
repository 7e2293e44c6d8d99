package repository

import (
	"context"

	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

// CustomerRepository is the persistence port for Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	SetTags(ctx context.Context, customerID string, tagIDs []string) error
}

// PassportRepository is the persistence port for Passport. SetPrimary-style
// multi-statement writes run through the PassportTxRunner instead.
type PassportRepository interface {
	Upsert(ctx context.Context, passport *entity.Passport) error
	GetByID(ctx context.Context, id string) (*entity.Passport, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Passport, error)
	ClearPrimary(ctx context.Context, customerID string) error
	Delete(ctx context.Context, id string) error
}

// PassportTxRunner executes fn against a transaction-bound PassportRepository.
// A non-nil error from fn rolls the transaction back as a whole.
type PassportTxRunner interface {
	RunPassport(ctx context.Context, fn func(repo PassportRepository) error) error
}
