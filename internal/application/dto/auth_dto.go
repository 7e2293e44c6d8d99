package dto

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token plus the authenticated profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest session-gated password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ForgotPasswordRequest starts the password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest consumes a PASSWORD_RESET token.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ChangeEmailRequest starts the email-change flow (session-gated).
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email"`
}

// VerifyEmailRequest consumes an EMAIL_CHANGE token.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}
