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

// CustomerUseCase customer CRUD plus the passport subresource.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	passportRepo repository.PassportRepository
	txRunner     repository.PassportTxRunner
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(
	customerRepo repository.CustomerRepository,
	passportRepo repository.PassportRepository,
	txRunner repository.PassportTxRunner,
) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, passportRepo: passportRepo, txRunner: txRunner}
}

// Create persists a new customer.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if in.FirstNameTh == "" && in.FirstNameEn == "" {
		return nil, fmt.Errorf("%w: a first name (Thai or English) is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		FirstNameTh: in.FirstNameTh,
		LastNameTh:  in.LastNameTh,
		FirstNameEn: in.FirstNameEn,
		LastNameEn:  in.LastNameEn,
		Email:       in.Email,
		Phone:       in.Phone,
		TagIDs:      in.TagIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	if len(in.TagIDs) > 0 {
		if err := uc.customerRepo.SetTags(ctx, customer.ID, in.TagIDs); err != nil {
			return nil, err
		}
	}
	return toCustomerResponse(customer), nil
}

// GetByID fetches one customer.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List returns customers with pagination.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update overwrites customer fields and tag links.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.FirstNameTh = in.FirstNameTh
	customer.LastNameTh = in.LastNameTh
	customer.FirstNameEn = in.FirstNameEn
	customer.LastNameEn = in.LastNameEn
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.TagIDs = in.TagIDs
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	if err := uc.customerRepo.SetTags(ctx, id, in.TagIDs); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customerRepo.Delete(ctx, id)
}

// ListPassports returns the customer's passports.
func (uc *CustomerUseCase) ListPassports(ctx context.Context, customerID string) ([]*dto.PassportResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	passports, err := uc.passportRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PassportResponse, 0, len(passports))
	for _, p := range passports {
		out = append(out, toPassportResponse(p))
	}
	return out, nil
}

// UpsertPassport writes a passport. When SetPrimary is requested the clear
// of the other primary flags and the upsert run inside one transaction, so a
// concurrent reader never sees two primaries or none.
func (uc *CustomerUseCase) UpsertPassport(ctx context.Context, customerID string, in dto.PassportRequest) (*dto.PassportResponse, error) {
	if in.PassportNo == "" {
		return nil, fmt.Errorf("%w: passportNo is required", domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	passport := &entity.Passport{
		ID:         in.ID,
		CustomerID: customerID,
		PassportNo: in.PassportNo,
		IssueDate:  in.IssueDate,
		ExpiryDate: in.ExpiryDate,
		IsPrimary:  in.SetPrimary,
		ImageKey:   in.ImageKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if passport.ID == "" {
		passport.ID = uuid.New().String()
	}

	if in.SetPrimary {
		err = uc.txRunner.RunPassport(ctx, func(repo repository.PassportRepository) error {
			if err := repo.ClearPrimary(ctx, customerID); err != nil {
				return err
			}
			return repo.Upsert(ctx, passport)
		})
	} else {
		err = uc.passportRepo.Upsert(ctx, passport)
	}
	if err != nil {
		return nil, err
	}
	return toPassportResponse(passport), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		FirstNameTh: c.FirstNameTh,
		LastNameTh:  c.LastNameTh,
		FirstNameEn: c.FirstNameEn,
		LastNameEn:  c.LastNameEn,
		DisplayName: c.DisplayName(),
		Email:       c.Email,
		Phone:       c.Phone,
		TagIDs:      c.TagIDs,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toPassportResponse(p *entity.Passport) *dto.PassportResponse {
	return &dto.PassportResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		PassportNo: p.PassportNo,
		IssueDate:  p.IssueDate,
		ExpiryDate: p.ExpiryDate,
		IsPrimary:  p.IsPrimary,
		ImageKey:   p.ImageKey,
		CreatedAt:  p.CreatedAt,
	}
}
