package idrive

import (
	"context"
	"fmt"
	"net/http"

	"github.com/idriveapp/admin-gateway/internal/app/models"
)

// BookingPayload is the create body for `/agendamientos/`. The backend
// resolves the student from the cedula.
type BookingPayload struct {
	Cedula  string `json:"cedula"`
	ClassID int64  `json:"id_clase"`
}

// Bookings lists every booking with joined class/student details. The
// backend answers 404 on an empty table; that is an empty list here, not an
// error.
func (c *Client) Bookings(ctx context.Context, cred Credential) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, cred, http.MethodGet, "/agendamientos/", nil, &bookings); err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.IsNotFound() {
			return []models.Booking{}, nil
		}
		return nil, err
	}
	return bookings, nil
}

// MyBookings lists the bookings of the user owning the credential
func (c *Client) MyBookings(ctx context.Context, cred Credential) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, cred, http.MethodGet, "/agendamientos/mis-agendamientos", nil, &bookings); err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.IsNotFound() {
			return []models.Booking{}, nil
		}
		return nil, err
	}
	return bookings, nil
}

// CreateBooking books a student into a class by cedula
func (c *Client) CreateBooking(ctx context.Context, cred Credential, payload BookingPayload) (models.Booking, error) {
	var created models.Booking
	if err := c.do(ctx, cred, http.MethodPost, "/agendamientos/", payload, &created); err != nil {
		return models.Booking{}, err
	}
	return created, nil
}

// CancelBooking cancels a booking. The backend keeps the row and flips its
// state to Cancelado.
func (c *Client) CancelBooking(ctx context.Context, cred Credential, id int64) error {
	return c.do(ctx, cred, http.MethodDelete, fmt.Sprintf("/agendamientos/%d", id), nil, nil)
}
