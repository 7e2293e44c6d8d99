package commission_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/tripdesk-api/internal/application/commission"
	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindByResetToken(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(_ context.Context, id string) error { delete(r.users, id); return nil }

// fakeBookingRepo seeds full bookings and applies the status filter in
// ListCommissionable the same way the SQL does.
type fakeBookingRepo struct {
	bookings []repository.AgentBooking
	agents   map[string]string // booking ID -> agent ID
}

func (r *fakeBookingRepo) Create(_ context.Context, _ *entity.Booking) error   { return nil }
func (r *fakeBookingRepo) GetByID(_ context.Context, _ string) (*entity.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) List(_ context.Context, _, _ int) ([]*entity.Booking, error) {
	return nil, nil
}
func (r *fakeBookingRepo) Update(_ context.Context, _ *entity.Booking) error { return nil }
func (r *fakeBookingRepo) Delete(_ context.Context, _ string) error          { return nil }
func (r *fakeBookingRepo) ListCommissionable(_ context.Context, agentID string) ([]repository.AgentBooking, error) {
	var out []repository.AgentBooking
	for _, b := range r.bookings {
		if r.agents[b.Booking.ID] == agentID && entity.CommissionableStatus(b.Booking.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCommissionRepo struct {
	rows map[string][]repository.AgentCommissionRow // by agent ID
}

func (r *fakeCommissionRepo) Create(_ context.Context, _ *entity.Commission) error { return nil }
func (r *fakeCommissionRepo) GetByBookingID(_ context.Context, _ string) (*entity.Commission, error) {
	return nil, nil
}
func (r *fakeCommissionRepo) Update(_ context.Context, _ *entity.Commission) error  { return nil }
func (r *fakeCommissionRepo) DeleteByBookingID(_ context.Context, _ string) error   { return nil }
func (r *fakeCommissionRepo) ListByAgent(_ context.Context, agentID string, from, to *time.Time) ([]repository.AgentCommissionRow, error) {
	var out []repository.AgentCommissionRow
	for _, row := range r.rows[agentID] {
		if from != nil && row.Commission.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && row.Commission.CreatedAt.After(*to) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

type fakePDF struct {
	lastAgent string
}

func (p *fakePDF) GenerateStatement(_ context.Context, agentName string, _ *dto.MyCommissionResponse) ([]byte, error) {
	p.lastAgent = agentName
	return []byte("%PDF-1.4 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func agentWithRate(id string, rate float64) *entity.User {
	r := decimal.NewFromFloat(rate)
	return &entity.User{
		ID:             id,
		Email:          id + "@example.com",
		Name:           "Agent " + id,
		Role:           entity.RoleAgent,
		CommissionRate: &r,
		IsActive:       true,
	}
}

func agentBooking(id, status string, amount float64, created time.Time) repository.AgentBooking {
	return repository.AgentBooking{
		Booking: entity.Booking{
			ID:          id,
			Status:      status,
			TotalAmount: decimal.NewFromFloat(amount),
			CreatedAt:   created,
		},
		Customer: entity.Customer{FirstNameEn: "Jane", LastNameEn: "Doe"},
		Trip:     entity.Trip{Name: "Tokyo Highlights", Destination: "Tokyo"},
	}
}

func buildUseCase(users *fakeUserRepo, bookings *fakeBookingRepo, commissions *fakeCommissionRepo, pdf *fakePDF) *commission.UseCase {
	if users == nil {
		users = &fakeUserRepo{users: map[string]*entity.User{}}
	}
	if bookings == nil {
		bookings = &fakeBookingRepo{agents: map[string]string{}}
	}
	if commissions == nil {
		commissions = &fakeCommissionRepo{rows: map[string][]repository.AgentCommissionRow{}}
	}
	if pdf == nil {
		pdf = &fakePDF{}
	}
	return commission.NewUseCase(users, bookings, commissions, pdf)
}

// ──────────────────────────────────────────────────────────────────────────────
// MyCommission
// ──────────────────────────────────────────────────────────────────────────────

func TestMyCommission_TwoBookingsAtTenPercent(t *testing.T) {
	now := time.Now()
	users := &fakeUserRepo{users: map[string]*entity.User{"a1": agentWithRate("a1", 10)}}
	bookings := &fakeBookingRepo{
		bookings: []repository.AgentBooking{
			agentBooking("b1", entity.BookingStatusConfirmed, 1000, now.Add(-time.Hour)),
			agentBooking("b2", entity.BookingStatusCompleted, 2000, now),
		},
		agents: map[string]string{"b1": "a1", "b2": "a1"},
	}
	uc := buildUseCase(users, bookings, nil, nil)

	out, err := uc.MyCommission(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, "3000", out.TotalSales.String())
	assert.Equal(t, "300", out.TotalCommission.String())
	assert.Equal(t, 2, out.TotalBookings)
	require.Len(t, out.Bookings, 2)

	// Newest first.
	assert.Equal(t, "b2", out.Bookings[0].BookingID)
	assert.Equal(t, "200", out.Bookings[0].Commission.String())
	assert.Equal(t, "b1", out.Bookings[1].BookingID)
	assert.Equal(t, "100", out.Bookings[1].Commission.String())
}

func TestMyCommission_PendingAndCancelledExcluded(t *testing.T) {
	now := time.Now()
	users := &fakeUserRepo{users: map[string]*entity.User{"a1": agentWithRate("a1", 10)}}
	bookings := &fakeBookingRepo{
		bookings: []repository.AgentBooking{
			agentBooking("b1", entity.BookingStatusConfirmed, 1000, now),
			agentBooking("b2", entity.BookingStatusPending, 5000, now),
			agentBooking("b3", entity.BookingStatusCancelled, 9000, now),
		},
		agents: map[string]string{"b1": "a1", "b2": "a1", "b3": "a1"},
	}
	uc := buildUseCase(users, bookings, nil, nil)

	out, err := uc.MyCommission(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalBookings)
	assert.Equal(t, "1000", out.TotalSales.String())
	assert.Equal(t, "100", out.TotalCommission.String())
}

func TestMyCommission_NilRateCountsAsZero(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"a1": {
		ID: "a1", Role: entity.RoleAgent, IsActive: true, // no commission rate set
	}}}
	bookings := &fakeBookingRepo{
		bookings: []repository.AgentBooking{
			agentBooking("b1", entity.BookingStatusConfirmed, 1000, time.Now()),
		},
		agents: map[string]string{"b1": "a1"},
	}
	uc := buildUseCase(users, bookings, nil, nil)

	out, err := uc.MyCommission(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, out.TotalCommission.IsZero())
	assert.True(t, out.Bookings[0].Commission.IsZero())
}

func TestMyCommission_ThaiNamePreferred(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"a1": agentWithRate("a1", 10)}}
	booking := agentBooking("b1", entity.BookingStatusConfirmed, 1000, time.Now())
	booking.Customer = entity.Customer{
		FirstNameTh: "สมชาย", LastNameTh: "ใจดี",
		FirstNameEn: "Somchai", LastNameEn: "Jaidee",
	}
	bookings := &fakeBookingRepo{
		bookings: []repository.AgentBooking{booking},
		agents:   map[string]string{"b1": "a1"},
	}
	uc := buildUseCase(users, bookings, nil, nil)

	out, err := uc.MyCommission(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "สมชาย ใจดี", out.Bookings[0].CustomerName)
}

func TestMyCommission_UnknownAgent(t *testing.T) {
	uc := buildUseCase(nil, nil, nil, nil)
	_, err := uc.MyCommission(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AgentDetail
// ──────────────────────────────────────────────────────────────────────────────

func TestAgentDetail_HeadCountIncludesLeadCustomer(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"a1": agentWithRate("a1", 10)}}
	commissions := &fakeCommissionRepo{rows: map[string][]repository.AgentCommissionRow{
		"a1": {
			{
				Commission:     entity.Commission{ID: "c1", AgentID: "a1", Amount: decimal.NewFromInt(150), CreatedAt: time.Now()},
				TripCode:       "JP-TYO-05",
				TripName:       "Tokyo Highlights",
				Customer:       entity.Customer{FirstNameEn: "Jane", LastNameEn: "Doe"},
				CompanionCount: 3,
			},
		},
	}}
	uc := buildUseCase(users, nil, commissions, nil)

	rows, err := uc.AgentDetail(context.Background(), "a1", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].TotalPeople, "lead customer plus three companions")
	assert.Equal(t, "JP-TYO-05", rows[0].TripCode)
	assert.Equal(t, "150", rows[0].CommissionAmount.String())
}

func TestAgentDetail_WindowFiltersRows(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"a1": agentWithRate("a1", 10)}}
	old := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	commissions := &fakeCommissionRepo{rows: map[string][]repository.AgentCommissionRow{
		"a1": {
			{Commission: entity.Commission{ID: "c1", Amount: decimal.NewFromInt(100), CreatedAt: old}},
			{Commission: entity.Commission{ID: "c2", Amount: decimal.NewFromInt(200), CreatedAt: recent}},
		},
	}}
	uc := buildUseCase(users, nil, commissions, nil)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rows, err := uc.AgentDetail(context.Background(), "a1", &from, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "200", rows[0].CommissionAmount.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Statement
// ──────────────────────────────────────────────────────────────────────────────

func TestStatement_ReturnsPDFAndFilename(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{"a1": agentWithRate("a1", 10)}}
	pdf := &fakePDF{}
	uc := buildUseCase(users, nil, nil, pdf)

	out, filename, err := uc.Statement(context.Background(), "a1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "Agent a1", pdf.lastAgent)
	assert.Contains(t, filename, "commission-a1-")
	assert.Contains(t, filename, ".pdf")
}
