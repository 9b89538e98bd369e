package models

// Class represents one scheduled theoretical driving class as returned by the
// iDrive backend (`/clases/`).
//
// ScheduledAt is kept as the raw backend string: observed payloads mix
// ISO-8601 timestamps with day-first `DD/MM/YYYY` text, so parsing is deferred
// to the calendar package instead of a time.Time unmarshal that would reject
// half the data.
type Class struct {
	ID              int64  `json:"id_clase"`
	Name            string `json:"nombre_clase"`
	Description     string `json:"descripcion"`
	ScheduledAt     string `json:"fecha_hora"`
	TeacherID       int64  `json:"id_profesor"`
	RoomID          int64  `json:"id_salon"`
	Capacity        int    `json:"cupos_disponibles"`
	DurationMinutes int    `json:"duracion_minutos"`
	CreatedAt       string `json:"fecha_creacion,omitempty"`
	UpdatedAt       string `json:"fecha_actualizacion,omitempty"`
}
