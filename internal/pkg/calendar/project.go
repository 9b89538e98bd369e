package calendar

import (
	"fmt"

	"github.com/idriveapp/admin-gateway/internal/app/models"
)

// Event display colors. Exactly two states: at/over capacity, or open.
const (
	ColorFull = "#e74a3b"
	ColorOpen = "#2C3E50"
)

// EventDetails carries the source class and derived occupancy on an event,
// for the detail panel opened from a calendar click.
type EventDetails struct {
	models.Class
	Registered int    `json:"registrados"`
	TimeOfDay  string `json:"hora"`
}

// Event is one calendar-ready record in the shape the calendar widget
// consumes: id, title, date key and the two display colors.
type Event struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Date            string       `json:"date"`
	BackgroundColor string       `json:"backgroundColor"`
	BorderColor     string       `json:"borderColor"`
	Details         EventDetails `json:"extendedProps"`
}

// Project turns a class/booking snapshot into calendar events. Classes whose
// scheduled instant does not normalize are skipped silently: the projection
// never fails, and len(events) + skipped == len(classes) always holds.
func Project(classes []models.Class, bookings []models.Booking) []Event {
	events, _ := ProjectCounted(classes, bookings)
	return events
}

// ProjectCounted is Project plus the number of skipped classes
func ProjectCounted(classes []models.Class, bookings []models.Booking) ([]Event, int) {
	counts := OccupancyByClass(bookings)
	events := make([]Event, 0, len(classes))
	skipped := 0

	for _, class := range classes {
		norm, err := Normalize(class.ScheduledAt)
		if err != nil {
			skipped++
			continue
		}

		registered := counts[class.ID]
		color := ColorOpen
		if Full(class.Capacity, registered) {
			color = ColorFull
		}

		events = append(events, Event{
			ID:              class.ID,
			Title:           fmt.Sprintf("%s (%d/%d)", class.Name, registered, class.Capacity),
			Date:            norm.DateKey(),
			BackgroundColor: color,
			BorderColor:     color,
			Details: EventDetails{
				Class:      class,
				Registered: registered,
				TimeOfDay:  norm.TimeOfDay(),
			},
		})
	}

	return events, skipped
}
