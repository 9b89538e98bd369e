package models

// Role names as stored by the backend
const (
	RoleNameAdmin   = "Administrador"
	RoleNameTeacher = "Profesor"
	RoleNameStudent = "Estudiante"
)

// User represents an account as returned by `/usuarios/`
type User struct {
	ID           int64  `json:"id_usuario"`
	Name         string `json:"nombre"`
	Email        string `json:"correo_electronico"`
	Phone        string `json:"telefono"`
	Cedula       string `json:"cedula"`
	RoleID       int64  `json:"id_rol"`
	RoleName     string `json:"nombre_rol"`
	Status       string `json:"estado"`
	RegisteredAt string `json:"fecha_registro"`
	LastAccess   string `json:"ultimo_acceso,omitempty"`
}

// IsTeacher reports whether the user can be assigned to teach a class
func (u User) IsTeacher() bool {
	return u.RoleName == RoleNameTeacher
}

// Role represents an assignable role as returned by `/roles/`
type Role struct {
	ID   int64  `json:"id_rol"`
	Name string `json:"nombre_rol"`
}

// Room represents a classroom as returned by `/salones/`
type Room struct {
	ID       int64  `json:"id_salon"`
	Name     string `json:"nombre_salon"`
	Location string `json:"ubicacion,omitempty"`
	Capacity int    `json:"aforo,omitempty"`
}
