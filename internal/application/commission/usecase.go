// Package commission computes agent commission: the self-service aggregation
// over live bookings and the admin detail view over persisted commission
// records.
package commission

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// StatementPDFGenerator renders the self-service aggregation as a PDF.
type StatementPDFGenerator interface {
	GenerateStatement(ctx context.Context, agentName string, data *dto.MyCommissionResponse) ([]byte, error)
}

// UseCase aggregates commission for agents.
type UseCase struct {
	userRepo       repository.UserRepository
	bookingRepo    repository.BookingRepository
	commissionRepo repository.CommissionRepository
	pdf            StatementPDFGenerator
}

// NewUseCase builds the commission use case.
func NewUseCase(
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commissionRepo repository.CommissionRepository,
	pdf StatementPDFGenerator,
) *UseCase {
	return &UseCase{userRepo: userRepo, bookingRepo: bookingRepo, commissionRepo: commissionRepo, pdf: pdf}
}

// MyCommission recomputes the calling agent's commission from live bookings.
//
// Only CONFIRMED/COMPLETED bookings are considered (the repository enforces
// the status filter). Per-row commission is totalAmount × rate / 100; totals
// are summed over unrounded amounts and everything is rounded to 2 dp only
// at the end, so the sum of rows always equals the total.
func (uc *UseCase) MyCommission(ctx context.Context, agentID string) (*dto.MyCommissionResponse, error) {
	agent, err := uc.userRepo.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrUserNotFound
	}
	rate := agent.RateOrZero()

	bookings, err := uc.bookingRepo.ListCommissionable(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("list commissionable bookings: %w", err)
	}

	totalSales := decimal.Zero
	rows := make([]dto.MyCommissionRow, 0, len(bookings))
	for _, b := range bookings {
		totalSales = totalSales.Add(b.Booking.TotalAmount)
		rows = append(rows, dto.MyCommissionRow{
			BookingID:    b.Booking.ID,
			CustomerName: b.Customer.DisplayName(),
			TripName:     b.Trip.Name,
			Destination:  b.Trip.Destination,
			TotalAmount:  b.Booking.TotalAmount.Round(2),
			Commission:   b.Booking.TotalAmount.Mul(rate).Div(hundred).Round(2),
			CreatedAt:    b.Booking.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	return &dto.MyCommissionResponse{
		CommissionRate:  rate,
		TotalSales:      totalSales.Round(2),
		TotalCommission: totalSales.Mul(rate).Div(hundred).Round(2),
		TotalBookings:   len(rows),
		Bookings:        rows,
	}, nil
}

// AgentDetail is the admin per-agent view over persisted commission records,
// optionally windowed on created_at. Ordering (created_at DESC) is enforced
// at the query level. Head count per row is the lead customer plus
// companions.
func (uc *UseCase) AgentDetail(ctx context.Context, agentID string, from, to *time.Time) ([]dto.AgentCommissionRow, error) {
	agent, err := uc.userRepo.FindByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrUserNotFound
	}

	records, err := uc.commissionRepo.ListByAgent(ctx, agentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list agent commissions: %w", err)
	}

	rows := make([]dto.AgentCommissionRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.AgentCommissionRow{
			TripCode:         r.TripCode,
			TripName:         r.TripName,
			CustomerName:     r.Customer.DisplayName(),
			TotalPeople:      1 + r.CompanionCount,
			CommissionAmount: r.Commission.Amount.Round(2),
			CreatedAt:        r.Commission.CreatedAt,
		})
	}
	return rows, nil
}

// Statement renders the self-service aggregation as a downloadable PDF.
func (uc *UseCase) Statement(ctx context.Context, agentID string) (pdfBytes []byte, filename string, err error) {
	agent, err := uc.userRepo.FindByID(ctx, agentID)
	if err != nil {
		return nil, "", err
	}
	if agent == nil {
		return nil, "", domain.ErrUserNotFound
	}
	data, err := uc.MyCommission(ctx, agentID)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.pdf.GenerateStatement(ctx, agent.Name, data)
	if err != nil {
		return nil, "", fmt.Errorf("generate statement: %w", err)
	}
	filename = fmt.Sprintf("commission-%s-%s.pdf", agentID, time.Now().Format("2006-01"))
	return out, filename, nil
}
