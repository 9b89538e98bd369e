package dto

// DashboardResponse aggregates the landing page statistics. Pointer fields
// are nil when the caller lacks the permission needed to compute them.
type DashboardResponse struct {
	ClassesThisMonth  int      `json:"classesThisMonth"`
	NewUsersThisMonth *int     `json:"newUsersThisMonth,omitempty"`
	OccupancyRate     float64  `json:"occupancyRate"`
	PendingBookings   *int     `json:"pendingBookings,omitempty"`
	Notices           []string `json:"notices,omitempty"`
}
