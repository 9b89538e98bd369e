package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/idriveapp/admin-gateway/internal/app/models"
	"github.com/idriveapp/admin-gateway/internal/idrive"
)

// fakeBackend implements the per-service backend interfaces for tests
type fakeBackend struct {
	classes  []models.Class
	bookings []models.Booking
	mine     []models.Booking
	users    []models.User
	rooms    []models.Room
	roles    []models.Role

	classesErr  error
	bookingsErr error
	mineErr     error
	usersErr    error
	roomsErr    error
	rolesErr    error

	createdBooking   models.Booking
	createBookingErr error
	cancelErr        error
	cancelledID      int64

	createdClass   models.Class
	classPayload   idrive.ClassPayload
	classErr       error
	deletedClassID int64

	createdUser idrive.CreatedUser
	userPayload idrive.UserPayload
	userErr     error

	loginResult idrive.LoginResult
	loginErr    error
	resetErr    error
	changeErr   error
}

func (f *fakeBackend) Classes(ctx context.Context, cred idrive.Credential) ([]models.Class, error) {
	return f.classes, f.classesErr
}

func (f *fakeBackend) Bookings(ctx context.Context, cred idrive.Credential) ([]models.Booking, error) {
	return f.bookings, f.bookingsErr
}

func (f *fakeBackend) MyBookings(ctx context.Context, cred idrive.Credential) ([]models.Booking, error) {
	return f.mine, f.mineErr
}

func (f *fakeBackend) CreateBooking(ctx context.Context, cred idrive.Credential, payload idrive.BookingPayload) (models.Booking, error) {
	return f.createdBooking, f.createBookingErr
}

func (f *fakeBackend) CancelBooking(ctx context.Context, cred idrive.Credential, id int64) error {
	f.cancelledID = id
	return f.cancelErr
}

func (f *fakeBackend) CreateClass(ctx context.Context, cred idrive.Credential, payload idrive.ClassPayload) (models.Class, error) {
	f.classPayload = payload
	return f.createdClass, f.classErr
}

func (f *fakeBackend) UpdateClass(ctx context.Context, cred idrive.Credential, id int64, payload idrive.ClassPayload) (models.Class, error) {
	f.classPayload = payload
	return f.createdClass, f.classErr
}

func (f *fakeBackend) DeleteClass(ctx context.Context, cred idrive.Credential, id int64) error {
	f.deletedClassID = id
	return f.classErr
}

func (f *fakeBackend) Users(ctx context.Context, cred idrive.Credential) ([]models.User, error) {
	return f.users, f.usersErr
}

func (f *fakeBackend) CreateUser(ctx context.Context, cred idrive.Credential, payload idrive.UserPayload) (idrive.CreatedUser, error) {
	f.userPayload = payload
	return f.createdUser, f.userErr
}

func (f *fakeBackend) UpdateUser(ctx context.Context, cred idrive.Credential, id int64, payload idrive.UserPayload) (models.User, error) {
	f.userPayload = payload
	return f.createdUser.User, f.userErr
}

func (f *fakeBackend) DeleteUser(ctx context.Context, cred idrive.Credential, id int64) error {
	return f.userErr
}

func (f *fakeBackend) Roles(ctx context.Context, cred idrive.Credential) ([]models.Role, error) {
	return f.roles, f.rolesErr
}

func (f *fakeBackend) Rooms(ctx context.Context, cred idrive.Credential) ([]models.Room, error) {
	return f.rooms, f.roomsErr
}

func (f *fakeBackend) Login(ctx context.Context, payload idrive.LoginPayload) (idrive.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeBackend) ChangePassword(ctx context.Context, cred idrive.Credential, newPassword string) error {
	return f.changeErr
}

func (f *fakeBackend) RequestPasswordReset(ctx context.Context, email string) error {
	return f.resetErr
}

func (f *fakeBackend) ResetPassword(ctx context.Context, token, newPassword string) error {
	return f.resetErr
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func apiError(status int, detail string) error {
	return &idrive.APIError{
		Method:     "GET",
		Path:       "/test",
		StatusCode: status,
		Detail:     detail,
	}
}
