package idrive

import (
	"context"
	"net/http"
)

// LoginPayload is the body for `/usuarios/login`
type LoginPayload struct {
	Email    string `json:"correo_electronico"`
	Password string `json:"password"`
}

// LoginResult is the backend's login response. The access token becomes the
// Credential for every later call on this user's behalf.
type LoginResult struct {
	AccessToken           string   `json:"access_token"`
	TokenType             string   `json:"token_type"`
	RequirePasswordChange bool     `json:"requiere_cambio_password"`
	UserID                int64    `json:"id_usuario"`
	Name                  string   `json:"nombre"`
	RoleID                int64    `json:"id_rol"`
	Permissions           []string `json:"permisos"`
}

// Login authenticates against the backend
func (c *Client) Login(ctx context.Context, payload LoginPayload) (LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, Anonymous, http.MethodPost, "/usuarios/login", payload, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// ChangePassword sets a new password for the credential's owner
func (c *Client) ChangePassword(ctx context.Context, cred Credential, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return c.do(ctx, cred, http.MethodPut, "/usuarios/cambiar-password", body, nil)
}

// RequestPasswordReset asks the backend to send a reset token to the mailbox
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"correo_electronico": email}
	return c.do(ctx, Anonymous, http.MethodPost, "/usuarios/solicitar-reseteo", body, nil)
}

// ResetPassword consumes a reset token and sets the new password
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return c.do(ctx, Anonymous, http.MethodPost, "/usuarios/reseteo-password", body, nil)
}
