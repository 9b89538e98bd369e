package models

// BookingStatus is the backend's booking state enumeration
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pendiente"
	BookingConfirmed BookingStatus = "Confirmado"
	BookingCancelled BookingStatus = "Cancelado"
)

// Booking represents one student's reservation against a class, as returned
// by `/agendamientos/`. The backend joins class, teacher, room and student
// details into every row.
type Booking struct {
	ID          int64         `json:"id_agendamiento"`
	StudentID   int64         `json:"id_estudiante"`
	ClassID     int64         `json:"id_clase"`
	ReservedAt  string        `json:"fecha_reserva"`
	Status      BookingStatus `json:"estado"`
	Method      string        `json:"metodo_reserva,omitempty"`
	ConfirmedAt string        `json:"fecha_confirmacion,omitempty"`

	ClassName   string `json:"nombre_clase"`
	ClassDate   string `json:"fecha_hora"`
	TeacherName string `json:"profesor"`
	RoomName    string `json:"nombre_salon"`
	StudentName string `json:"estudiante"`
}

// Active reports whether the booking still occupies a seat.
// Pending and confirmed bookings count; cancelled ones never do.
func (b Booking) Active() bool {
	return b.Status != BookingCancelled
}
