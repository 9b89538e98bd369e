package idrive

import (
	"context"
	"fmt"
	"net/http"

	"github.com/idriveapp/admin-gateway/internal/app/models"
)

// UserPayload is the create/update body for `/usuarios/`. The backend issues
// a temporary password on create, so none is sent.
type UserPayload struct {
	Name   string `json:"nombre"`
	Email  string `json:"correo_electronico"`
	Phone  string `json:"telefono"`
	Cedula string `json:"cedula"`
	RoleID int64  `json:"id_rol"`
	Status string `json:"estado,omitempty"`
}

// CreatedUser is the creation response: the new account plus its temporary
// password, which the admin hands to the user out of band.
type CreatedUser struct {
	models.User
	TemporaryPassword string `json:"password_temporal"`
}

// Users lists all accounts
func (c *Client) Users(ctx context.Context, cred Credential) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, cred, http.MethodGet, "/usuarios/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new account
func (c *Client) CreateUser(ctx context.Context, cred Credential, payload UserPayload) (CreatedUser, error) {
	var created CreatedUser
	if err := c.do(ctx, cred, http.MethodPost, "/usuarios/", payload, &created); err != nil {
		return CreatedUser{}, err
	}
	return created, nil
}

// UpdateUser rewrites an account
func (c *Client) UpdateUser(ctx context.Context, cred Credential, id int64, payload UserPayload) (models.User, error) {
	var updated models.User
	if err := c.do(ctx, cred, http.MethodPut, fmt.Sprintf("/usuarios/%d", id), payload, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// DeleteUser removes an account
func (c *Client) DeleteUser(ctx context.Context, cred Credential, id int64) error {
	return c.do(ctx, cred, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil, nil)
}

// Roles lists the assignable roles
func (c *Client) Roles(ctx context.Context, cred Credential) ([]models.Role, error) {
	var roles []models.Role
	if err := c.do(ctx, cred, http.MethodGet, "/roles/", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// Rooms lists the classrooms
func (c *Client) Rooms(ctx context.Context, cred Credential) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.do(ctx, cred, http.MethodGet, "/salones/", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}
