package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/application/usecase"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.customers[id], nil
}
func (r *fakeCustomerRepo) List(_ context.Context, _, _ int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	delete(r.customers, id)
	return nil
}
func (r *fakeCustomerRepo) SetTags(_ context.Context, customerID string, tagIDs []string) error {
	if c, ok := r.customers[customerID]; ok {
		c.TagIDs = tagIDs
	}
	return nil
}

// fakePassportRepo stores passports by ID. It doubles as the
// transaction-bound repository handed out by fakePassportTx.
type fakePassportRepo struct {
	passports map[string]*entity.Passport
}

func newFakePassportRepo() *fakePassportRepo {
	return &fakePassportRepo{passports: map[string]*entity.Passport{}}
}

func (r *fakePassportRepo) Upsert(_ context.Context, p *entity.Passport) error {
	cp := *p
	r.passports[p.ID] = &cp
	return nil
}
func (r *fakePassportRepo) GetByID(_ context.Context, id string) (*entity.Passport, error) {
	return r.passports[id], nil
}
func (r *fakePassportRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Passport, error) {
	var out []*entity.Passport
	for _, p := range r.passports {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakePassportRepo) ClearPrimary(_ context.Context, customerID string) error {
	for _, p := range r.passports {
		if p.CustomerID == customerID {
			p.IsPrimary = false
		}
	}
	return nil
}
func (r *fakePassportRepo) Delete(_ context.Context, id string) error {
	delete(r.passports, id)
	return nil
}

// fakePassportTx runs fn against the shared passport repo, all-or-nothing
// semantics are not exercised here since the fake never fails.
type fakePassportTx struct {
	repo *fakePassportRepo
}

func (tx *fakePassportTx) RunPassport(_ context.Context, fn func(repo repository.PassportRepository) error) error {
	return fn(tx.repo)
}

func buildCustomerUC(customers *fakeCustomerRepo, passports *fakePassportRepo) *usecase.CustomerUseCase {
	return usecase.NewCustomerUseCase(customers, passports, &fakePassportTx{repo: passports})
}

func primaryCount(t *testing.T, repo *fakePassportRepo, customerID string) int {
	t.Helper()
	n := 0
	for _, p := range repo.passports {
		if p.CustomerID == customerID && p.IsPrimary {
			n++
		}
	}
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Customers
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_RequiresAName(t *testing.T) {
	uc := buildCustomerUC(newFakeCustomerRepo(), newFakePassportRepo())

	_, err := uc.Create(context.Background(), dto.CustomerRequest{Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_ThaiNameDrivesDisplayName(t *testing.T) {
	uc := buildCustomerUC(newFakeCustomerRepo(), newFakePassportRepo())

	out, err := uc.Create(context.Background(), dto.CustomerRequest{
		FirstNameTh: "สมหญิง", LastNameTh: "รักเที่ยว",
		FirstNameEn: "Somying", LastNameEn: "Rakthiao",
	})
	require.NoError(t, err)
	assert.Equal(t, "สมหญิง รักเที่ยว", out.DisplayName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Passports
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsertPassport_SetPrimaryLeavesExactlyOne(t *testing.T) {
	customers := newFakeCustomerRepo(&entity.Customer{ID: "c1", FirstNameEn: "Jane"})
	passports := newFakePassportRepo()
	uc := buildCustomerUC(customers, passports)

	// First passport, made primary.
	p1, err := uc.UpsertPassport(context.Background(), "c1", dto.PassportRequest{
		PassportNo: "AA1111111", SetPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, p1.IsPrimary)
	assert.Equal(t, 1, primaryCount(t, passports, "c1"))

	// Second passport takes over the flag; the first must lose it.
	p2, err := uc.UpsertPassport(context.Background(), "c1", dto.PassportRequest{
		PassportNo: "BB2222222", SetPrimary: true,
	})
	require.NoError(t, err)
	assert.True(t, p2.IsPrimary)
	assert.Equal(t, 1, primaryCount(t, passports, "c1"))

	stored1, _ := passports.GetByID(context.Background(), p1.ID)
	assert.False(t, stored1.IsPrimary)
}

func TestUpsertPassport_NonPrimaryDoesNotTouchOthers(t *testing.T) {
	customers := newFakeCustomerRepo(&entity.Customer{ID: "c1", FirstNameEn: "Jane"})
	passports := newFakePassportRepo()
	uc := buildCustomerUC(customers, passports)

	p1, err := uc.UpsertPassport(context.Background(), "c1", dto.PassportRequest{
		PassportNo: "AA1111111", SetPrimary: true,
	})
	require.NoError(t, err)

	_, err = uc.UpsertPassport(context.Background(), "c1", dto.PassportRequest{
		PassportNo: "BB2222222",
	})
	require.NoError(t, err)

	stored1, _ := passports.GetByID(context.Background(), p1.ID)
	assert.True(t, stored1.IsPrimary, "existing primary keeps its flag")
	assert.Equal(t, 1, primaryCount(t, passports, "c1"))
}

func TestUpsertPassport_UnknownCustomer(t *testing.T) {
	uc := buildCustomerUC(newFakeCustomerRepo(), newFakePassportRepo())

	_, err := uc.UpsertPassport(context.Background(), "ghost", dto.PassportRequest{
		PassportNo: "AA1111111",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpsertPassport_RequiresNumber(t *testing.T) {
	customers := newFakeCustomerRepo(&entity.Customer{ID: "c1", FirstNameEn: "Jane"})
	uc := buildCustomerUC(customers, newFakePassportRepo())

	_, err := uc.UpsertPassport(context.Background(), "c1", dto.PassportRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
