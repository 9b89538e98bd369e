package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the gateway session token together with the
// account details needed to render the authenticated shell.
type LoginResponse struct {
	AccessToken           string   `json:"accessToken"`
	TokenType             string   `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64    `json:"expiresIn"`
	RequirePasswordChange bool     `json:"requirePasswordChange"`
	UserID                int64    `json:"userId"`
	Name                  string   `json:"name"`
	RoleID                int64    `json:"roleId"`
	Permissions           []string `json:"permissions"`
}

// ChangePasswordRequest represents a password change for the logged-in user.
// The flow is the forced first-login change, so no current password is sent;
// the backend authorizes it from the credential alone.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ForgotPasswordRequest starts the password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password reset flow with the emailed code
type ResetPasswordRequest struct {
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
