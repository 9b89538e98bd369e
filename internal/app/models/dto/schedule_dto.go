package dto

import (
	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/pkg/calendar"
)

// BookingRequest represents a booking made on behalf of a student
type BookingRequest struct {
	Cedula  string `json:"cedula" binding:"required,cedula"`
	ClassID int64  `json:"id_clase" binding:"required,min=1"`
}

// CalendarResponse carries calendar events plus any notices produced while
// collecting them. A notice means one of the source collections could not
// be loaded and was rendered as empty.
type CalendarResponse struct {
	Events  []calendar.Event `json:"events"`
	Notices []string         `json:"notices,omitempty"`
}

// DayClass is a class scheduled on a given day together with its occupancy
type DayClass struct {
	models.Class
	Registered int    `json:"registrados"`
	TimeOfDay  string `json:"hora"`
	Full       bool   `json:"lleno"`
}

// DayResponse lists the classes of a single calendar day
type DayResponse struct {
	Date    string     `json:"fecha"`
	Classes []DayClass `json:"clases"`
	Notices []string   `json:"notices,omitempty"`
}

// BookingListResponse lists bookings together with collection notices
type BookingListResponse struct {
	Bookings []models.Booking `json:"agendamientos"`
	Notices  []string         `json:"notices,omitempty"`
}

// ProgressResponse summarizes a student's advance through the theory catalog
type ProgressResponse struct {
	Completed int     `json:"completed"`
	Required  int     `json:"required"`
	Percent   float64 `json:"percent"`
}

// MyClassesResponse carries a student's own bookings and progress
type MyClassesResponse struct {
	Bookings []models.Booking `json:"agendamientos"`
	Progress ProgressResponse `json:"progress"`
}

// AvailableClassesResponse lists classes a student can still book
type AvailableClassesResponse struct {
	Classes []DayClass `json:"clases"`
	Notices []string   `json:"notices,omitempty"`
}
