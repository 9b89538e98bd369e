package services

import (
	"github.com/idriveapp/admin-gateway/internal/idrive"
	"github.com/idriveapp/admin-gateway/internal/pkg/apperrors"
)

// Services defined in this package:
// - AuthService: Proxies login and password flows, mints gateway sessions
// - ScheduleService: Calendar snapshots, day views, bookings
// - UserService: Account administration, roles and rooms
// - ClassService: Theory class administration and the module catalog
// - StudentService: A student's own bookings, progress and available classes
// - DashboardService: Landing page statistics

// mapBackendError translates a backend call failure into the gateway's
// error taxonomy. The backend's own detail message is preserved when it
// carries one, so the UI can surface messages like "La clase ya no tiene
// cupos disponibles" verbatim.
func mapBackendError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	apiErr, ok := idrive.AsAPIError(err)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrBackendUnavailable, "the scheduling service is not reachable")
	}
	switch {
	case apiErr.IsNotFound():
		if notFound == nil {
			notFound = apperrors.ErrResourceNotFound
		}
		return apperrors.NewCustomError(notFound, apiErr.UserDetail())
	case apiErr.IsUnauthorized():
		return apperrors.NewCustomError(apperrors.ErrSessionExpired, "the backend rejected the stored credential")
	case apiErr.StatusCode == 403:
		return apperrors.NewForbiddenError(apiErr.UserDetail())
	case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		return apperrors.NewMutationError(apiErr.UserDetail())
	default:
		return apperrors.NewCustomError(apperrors.ErrBackendUnavailable, "the scheduling service failed to process the request")
	}
}
