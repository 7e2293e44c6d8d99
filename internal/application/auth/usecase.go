package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
	"github.com/tripdesk/tripdesk-api/internal/domain"
	"github.com/tripdesk/tripdesk-api/internal/domain/entity"
	"github.com/tripdesk/tripdesk-api/internal/domain/repository"
	"github.com/tripdesk/tripdesk-api/pkg/jwt"
)

const resetTokenTTL = time.Hour

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// MailSender delivers reset and email-change links. Implemented by the
// mailgun adapter; a nil-safe no-op is fine in development.
type MailSender interface {
	SendPasswordReset(ctx context.Context, to, name, link string) error
	SendEmailChange(ctx context.Context, to, name, link string) error
}

// AuthUseCase covers login, profile, password changes and the two
// reset-token flows.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mail     MailSender
	jwtCfg   JWTConfig
	baseURL  string
}

// NewAuthUseCase builds the auth use case. baseURL is the public frontend
// origin embedded in emailed links.
func NewAuthUseCase(userRepo repository.UserRepository, mail MailSender, jwtCfg JWTConfig, baseURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mail: mail, jwtCfg: jwtCfg, baseURL: baseURL}
}

// Login verifies credentials and issues a session token.
//
// Fails closed: absent user, missing password hash, bcrypt mismatch and an
// inactive account all collapse into domain.ErrInvalidCredentials so the
// caller cannot tell which condition tripped.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Me returns the caller's profile.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// ChangePassword verifies the current password before setting the new one.
// Wrong current password maps to ErrUnauthorized, not a validation error.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.PasswordHash == nil {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hash)
	user.PasswordHash = &h
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// ForgotPassword starts the reset flow. It succeeds whether or not the
// account exists so the endpoint cannot be used to enumerate emails.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return nil
	}
	token, err := newOpaqueToken()
	if err != nil {
		return err
	}
	purpose := entity.TokenPurposePasswordReset
	expiry := time.Now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetPurpose = &purpose
	user.ResetExpiry = &expiry
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}
	link := uc.baseURL + "/reset-password?token=" + token
	return uc.mail.SendPasswordReset(ctx, user.Email, user.Name, link)
}

// ResetPassword consumes a PASSWORD_RESET token. The token is single use:
// it is cleared in the same update that sets the new hash.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	user, err := uc.consumeToken(ctx, in.Token, entity.TokenPurposePasswordReset)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hash)
	user.PasswordHash = &h
	clearResetToken(user)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// RequestEmailChange stores an EMAIL_CHANGE token and mails the verification
// link to the new address.
func (uc *AuthUseCase) RequestEmailChange(ctx context.Context, userID string, newEmail string) error {
	if newEmail == "" {
		return fmt.Errorf("%w: new_email is required", domain.ErrInvalidInput)
	}
	taken, err := uc.userRepo.FindByEmail(ctx, newEmail)
	if err != nil {
		return err
	}
	if taken != nil {
		return domain.ErrEmailAlreadyExists
	}
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	token, err := newOpaqueToken()
	if err != nil {
		return err
	}
	purpose := entity.TokenPurposeEmailChange
	expiry := time.Now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetPurpose = &purpose
	user.ResetExpiry = &expiry
	user.PendingEmail = &newEmail
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}
	link := uc.baseURL + "/verify-email?token=" + token
	return uc.mail.SendEmailChange(ctx, newEmail, user.Name, link)
}

// VerifyEmail consumes an EMAIL_CHANGE token and swaps the address.
// A PASSWORD_RESET token presented here is rejected.
func (uc *AuthUseCase) VerifyEmail(ctx context.Context, token string) error {
	user, err := uc.consumeToken(ctx, token, entity.TokenPurposeEmailChange)
	if err != nil {
		return err
	}
	if user.PendingEmail == nil {
		return domain.ErrTokenInvalid
	}
	taken, err := uc.userRepo.FindByEmail(ctx, *user.PendingEmail)
	if err != nil {
		return err
	}
	if taken != nil && taken.ID != user.ID {
		return domain.ErrEmailAlreadyExists
	}
	user.Email = *user.PendingEmail
	user.PendingEmail = nil
	clearResetToken(user)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// consumeToken loads the user behind an opaque token and checks purpose and
// expiry. It does not clear the token; the caller does that in its final
// update so the whole consume is one write.
func (uc *AuthUseCase) consumeToken(ctx context.Context, token string, purpose entity.TokenPurpose) (*entity.User, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	user, err := uc.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil || user.ResetPurpose == nil || *user.ResetPurpose != purpose {
		return nil, domain.ErrTokenInvalid
	}
	if user.ResetExpiry == nil || user.ResetExpiry.Before(time.Now()) {
		return nil, domain.ErrTokenInvalid
	}
	return user, nil
}

func clearResetToken(u *entity.User) {
	u.ResetToken = nil
	u.ResetPurpose = nil
	u.ResetExpiry = nil
}

func newOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ToUserResponse strips credentials and token fields from a user.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           string(u.Role),
		CommissionRate: u.CommissionRate,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
