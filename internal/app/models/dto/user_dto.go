package dto

// Domain payloads keep the backend's wire vocabulary so the admin UI can
// swap between talking to the gateway and talking to the backend directly.

// CreateUserRequest represents a new account registered by an administrator
type CreateUserRequest struct {
	Name   string `json:"nombre" binding:"required"`
	Email  string `json:"correo_electronico" binding:"required,email"`
	Phone  string `json:"telefono" binding:"omitempty,min=7"`
	Cedula string `json:"cedula" binding:"required,cedula"`
	RoleID int64  `json:"id_rol" binding:"required,min=1"`
}

// UpdateUserRequest represents an account update; zero values leave the
// corresponding field untouched on the backend.
type UpdateUserRequest struct {
	Name   string `json:"nombre"`
	Email  string `json:"correo_electronico" binding:"omitempty,email"`
	Phone  string `json:"telefono"`
	Cedula string `json:"cedula" binding:"omitempty,cedula"`
	RoleID int64  `json:"id_rol"`
	Status string `json:"estado" binding:"omitempty,oneof=Activo Inactivo"`
}
