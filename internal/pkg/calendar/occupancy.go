package calendar

import "github.com/idriveapp/admin-gateway/internal/app/models"

// Occupancy counts the active (non-cancelled) bookings referencing a class.
// Pure; O(n) over the booking snapshot.
func Occupancy(bookings []models.Booking, classID int64) int {
	count := 0
	for _, b := range bookings {
		if b.ClassID == classID && b.Active() {
			count++
		}
	}
	return count
}

// OccupancyByClass pre-groups active booking counts by class id in a single
// pass, for callers that will look up many classes against one snapshot.
func OccupancyByClass(bookings []models.Booking) map[int64]int {
	counts := make(map[int64]int)
	for _, b := range bookings {
		if b.Active() {
			counts[b.ClassID]++
		}
	}
	return counts
}

// Full reports whether a class is at or over capacity. A capacity of zero is
// always full; it never means "unlimited" and never divides anything.
func Full(capacity, registered int) bool {
	return registered >= capacity
}
