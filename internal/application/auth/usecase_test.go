package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tripdesk/tripdesk-api/internal/application/auth"
	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // by ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeMail struct {
	resetTo  []string
	changeTo []string
}

func (m *fakeMail) SendPasswordReset(_ context.Context, to, _, _ string) error {
	m.resetTo = append(m.resetTo, to)
	return nil
}

func (m *fakeMail) SendEmailChange(_ context.Context, to, _, _ string) error {
	m.changeTo = append(m.changeTo, to)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "tripdesk-test"}

func hashOf(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func activeAgent(t *testing.T, id, email, password string) *entity.User {
	t.Helper()
	return &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: hashOf(t, password),
		Name:         "Test Agent",
		Role:         entity.RoleAgent,
		IsActive:     true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "correct-horse"))
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "AGENT", out.User.Role)
}

// Absent user, wrong password, missing hash and inactive account must all
// collapse into the same error so the endpoint leaks nothing.
func TestLogin_FailsClosed(t *testing.T) {
	noHash := activeAgent(t, "u2", "nohash@example.com", "irrelevant")
	noHash.PasswordHash = nil
	inactive := activeAgent(t, "u3", "inactive@example.com", "secret-123")
	inactive.IsActive = false

	repo := newFakeUserRepo(
		activeAgent(t, "u1", "a@example.com", "correct-horse"),
		noHash,
		inactive,
	)
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	cases := []struct {
		name  string
		login dto.LoginRequest
	}{
		{"unknown email", dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"}},
		{"wrong password", dto.LoginRequest{Email: "a@example.com", Password: "wrong"}},
		{"no password hash", dto.LoginRequest{Email: "nohash@example.com", Password: "irrelevant"}},
		{"inactive account", dto.LoginRequest{Email: "inactive@example.com", Password: "secret-123"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), tc.login)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_WrongCurrent(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "old-password"))
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		CurrentPassword: "not-the-old-one",
		NewPassword:     "brand-new-password",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Hash must be untouched.
	u, _ := repo.FindByID(context.Background(), "u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("old-password")))
}

func TestChangePassword_TooShort(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "old-password"))
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword_Success(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "old-password"))
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "brand-new-password",
	})
	require.NoError(t, err)

	u, _ := repo.FindByID(context.Background(), "u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("brand-new-password")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Password reset flow
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "secret-123"))
	mail := &fakeMail{}
	uc := auth.NewAuthUseCase(repo, mail, testJWT, "http://localhost")

	err := uc.ForgotPassword(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mail.resetTo, "no mail for unknown addresses")
}

func TestForgotPassword_SetsTokenAndMails(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "secret-123"))
	mail := &fakeMail{}
	uc := auth.NewAuthUseCase(repo, mail, testJWT, "http://localhost")

	require.NoError(t, uc.ForgotPassword(context.Background(), "a@example.com"))

	u, _ := repo.FindByID(context.Background(), "u1")
	require.NotNil(t, u.ResetToken)
	require.NotNil(t, u.ResetPurpose)
	assert.Equal(t, entity.TokenPurposePasswordReset, *u.ResetPurpose)
	assert.Equal(t, []string{"a@example.com"}, mail.resetTo)
}

func TestResetPassword_HappyPathAndSingleUse(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "secret-123"))
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	require.NoError(t, uc.ForgotPassword(context.Background(), "a@example.com"))
	u, _ := repo.FindByID(context.Background(), "u1")
	token := *u.ResetToken

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "fresh-password",
	})
	require.NoError(t, err)

	u, _ = repo.FindByID(context.Background(), "u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("fresh-password")))
	assert.Nil(t, u.ResetToken, "token must be cleared on use")

	// Replaying the consumed token must fail.
	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResetPassword_ExpiredTokenLeavesPasswordUnchanged(t *testing.T) {
	user := activeAgent(t, "u1", "a@example.com", "secret-123")
	token := "expired-token"
	purpose := entity.TokenPurposePasswordReset
	expiry := time.Now().Add(-time.Minute)
	user.ResetToken = &token
	user.ResetPurpose = &purpose
	user.ResetExpiry = &expiry

	repo := newFakeUserRepo(user)
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "fresh-password",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	u, _ := repo.FindByID(context.Background(), "u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("secret-123")),
		"old password must still work after a failed reset")
}

// A token minted for the email-change flow must not reset a password, and
// vice versa.
func TestResetToken_PurposeIsNotInterchangeable(t *testing.T) {
	user := activeAgent(t, "u1", "a@example.com", "secret-123")
	token := "email-change-token"
	purpose := entity.TokenPurposeEmailChange
	expiry := time.Now().Add(time.Hour)
	pending := "new@example.com"
	user.ResetToken = &token
	user.ResetPurpose = &purpose
	user.ResetExpiry = &expiry
	user.PendingEmail = &pending

	repo := newFakeUserRepo(user)
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:       token,
		NewPassword: "fresh-password",
	})
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

// ──────────────────────────────────────────────────────────────────────────────
// Email change flow
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestEmailChange_TakenAddress(t *testing.T) {
	repo := newFakeUserRepo(
		activeAgent(t, "u1", "a@example.com", "secret-123"),
		activeAgent(t, "u2", "b@example.com", "secret-456"),
	)
	uc := auth.NewAuthUseCase(repo, &fakeMail{}, testJWT, "http://localhost")

	err := uc.RequestEmailChange(context.Background(), "u1", "b@example.com")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestVerifyEmail_SwapsAddress(t *testing.T) {
	repo := newFakeUserRepo(activeAgent(t, "u1", "a@example.com", "secret-123"))
	mail := &fakeMail{}
	uc := auth.NewAuthUseCase(repo, mail, testJWT, "http://localhost")

	require.NoError(t, uc.RequestEmailChange(context.Background(), "u1", "new@example.com"))
	assert.Equal(t, []string{"new@example.com"}, mail.changeTo, "link goes to the new address")

	u, _ := repo.FindByID(context.Background(), "u1")
	require.NoError(t, uc.VerifyEmail(context.Background(), *u.ResetToken))

	u, _ = repo.FindByID(context.Background(), "u1")
	assert.Equal(t, "new@example.com", u.Email)
	assert.Nil(t, u.PendingEmail)
	assert.Nil(t, u.ResetToken)
}
