package calendar

import "github.com/idriveapp/admin-gateway/internal/app/models"

// ClassesOn returns the classes whose normalized date key equals the target,
// in stable input order. Bookings are not consulted; the day panel resolves
// occupancy separately when it needs it.
//
// Classes with an unparseable scheduled instant never match any day.
func ClassesOn(dateKey string, classes []models.Class) []models.Class {
	matched := make([]models.Class, 0)
	for _, class := range classes {
		norm, err := Normalize(class.ScheduledAt)
		if err != nil {
			continue
		}
		if norm.DateKey() == dateKey {
			matched = append(matched, class)
		}
	}
	return matched
}
