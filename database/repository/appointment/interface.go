package appointmentRepo

import (
	"context"

	"telecare/models"
)

// AppointmentRepository manages appointment records. Only insert, delete and
// status updates mutate the collection; conflict detection reads through
// FindActiveByExactDate and FindActiveByDay.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, appointmentID string) error
	GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error

	// FindActiveByExactDate returns the first pending/confirmed appointment
	// for the doctor whose stored appointment_date byte-matches any of the
	// given strings, or nil when there is none.
	FindActiveByExactDate(ctx context.Context, doctorID string, dates []string) (*models.Appointment, error)

	// FindActiveByDay returns all pending/confirmed appointments for the
	// doctor whose stored appointment_date begins with the given
	// "YYYY-MM-DD" date.
	FindActiveByDay(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
}
