package dto

import "github.com/idriveapp/admin-gateway/internal/app/models"

// ClassRequest represents a theory class create or update payload.
// The name must match one of the thirteen catalog modules; when the
// description is omitted the catalog description is used.
type ClassRequest struct {
	Name            string `json:"nombre_clase" binding:"required"`
	Description     string `json:"descripcion"`
	ScheduledAt     string `json:"fecha_hora" binding:"required"`
	TeacherID       int64  `json:"id_profesor" binding:"required,min=1"`
	RoomID          int64  `json:"id_salon" binding:"required,min=1"`
	Capacity        int    `json:"cupos_disponibles" binding:"required,min=1"`
	DurationMinutes int    `json:"duracion_minutos" binding:"omitempty,min=15"`
}

// ClassFormOptions carries the reference collections the class form needs
type ClassFormOptions struct {
	Teachers []models.User `json:"profesores"`
	Rooms    []models.Room `json:"salones"`
	Notices  []string      `json:"notices,omitempty"`
}
