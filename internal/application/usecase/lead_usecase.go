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

// LeadUseCase lead CRUD. A lead names its owning agent; commission for any
// booking on the lead goes to that agent.
type LeadUseCase struct {
	leadRepo     repository.LeadRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewLeadUseCase builds the use case.
func NewLeadUseCase(
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) *LeadUseCase {
	return &LeadUseCase{leadRepo: leadRepo, customerRepo: customerRepo, userRepo: userRepo}
}

// Create persists a lead after checking the customer and agent exist.
func (uc *LeadUseCase) Create(ctx context.Context, in dto.LeadRequest) (*dto.LeadResponse, error) {
	if in.CustomerID == "" || in.AgentID == "" {
		return nil, fmt.Errorf("%w: customerId and agentId are required", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.LeadStatusNew
	}
	if !entity.ValidLeadStatus(status) {
		return nil, fmt.Errorf("%w: unknown lead status %q", domain.ErrInvalidInput, status)
	}
	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", domain.ErrNotFound, in.CustomerID)
	}
	agent, err := uc.userRepo.FindByID(ctx, in.AgentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, fmt.Errorf("%w: agent %s", domain.ErrNotFound, in.AgentID)
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		AgentID:    in.AgentID,
		Status:     status,
		Source:     in.Source,
		Note:       in.Note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// GetByID fetches one lead.
func (uc *LeadUseCase) GetByID(ctx context.Context, id string) (*dto.LeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	return toLeadResponse(lead), nil
}

// List returns leads; agents see their own, admins see everyone's.
func (uc *LeadUseCase) List(ctx context.Context, requester *entity.User, limit, offset int) ([]*dto.LeadResponse, error) {
	var leads []*entity.Lead
	var err error
	if requester.Role.IsElevated() {
		leads, err = uc.leadRepo.List(ctx, limit, offset)
	} else {
		leads, err = uc.leadRepo.ListByAgent(ctx, requester.ID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return out, nil
}

// Update overwrites lead fields.
func (uc *LeadUseCase) Update(ctx context.Context, id string, in dto.LeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" {
		if !entity.ValidLeadStatus(in.Status) {
			return nil, fmt.Errorf("%w: unknown lead status %q", domain.ErrInvalidInput, in.Status)
		}
		lead.Status = in.Status
	}
	if in.AgentID != "" {
		lead.AgentID = in.AgentID
	}
	lead.Source = in.Source
	lead.Note = in.Note
	lead.UpdatedAt = time.Now()
	if err := uc.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// Delete removes a lead.
func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	return uc.leadRepo.Delete(ctx, id)
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:         l.ID,
		CustomerID: l.CustomerID,
		AgentID:    l.AgentID,
		Status:     l.Status,
		Source:     l.Source,
		Note:       l.Note,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
