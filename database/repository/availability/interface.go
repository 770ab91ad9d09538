package availabilityRepo

import (
	"context"

	"telecare/models"
)

// AvailabilityRepository manages per-doctor weekly availability documents.
type AvailabilityRepository interface {
	// GetByDoctorID returns the doctor's weekly availability. If no document
	// exists yet, an all-unavailable default is created and returned.
	GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklyAvailability, error)

	// Upsert replaces the doctor's full week. The input must already be
	// normalized to all seven weekday keys; a day update always replaces
	// that day's complete range list.
	Upsert(ctx context.Context, doctorID string, week map[string]models.DayAvailability) (*models.WeeklyAvailability, error)
}
