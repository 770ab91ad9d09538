package scheduling

import (
	"context"

	"telecare/models"
	"telecare/utils"

	"go.uber.org/zap"
)

// IsSlotBooked reports whether the candidate datetime collides with any
// pending or confirmed appointment for the doctor.
//
// The check runs in two stages, first match wins: an exact-string match
// against the known stored-format variants (the legacy fast path), then a
// same-day scan with half-open 30-minute interval overlap. An unparseable
// candidate degrades to "not booked": a parse failure must never block
// booking, only conflict detection.
func (s *DefaultSchedulingService) IsSlotBooked(ctx context.Context, doctorID, datetime string) (bool, error) {
	logger := utils.GetLogger()

	slotStart, err := ParseAppointmentTime(datetime)
	if err != nil {
		logger.Warn("unparseable candidate slot time, treating as unbooked",
			zap.String("doctorID", doctorID),
			zap.String("datetime", datetime))
		return false, nil
	}

	// Stage 1: byte-identical stored values.
	match, err := s.Appointments.FindActiveByExactDate(ctx, doctorID, StoredVariants(slotStart))
	if err != nil {
		return false, &StorageError{Op: "conflict check (exact match)", Err: err}
	}
	if match != nil {
		return true, nil
	}

	// Stage 2: same-day overlap scan across heterogeneous stored formats.
	appointments, err := s.Appointments.FindActiveByDay(ctx, doctorID, slotStart.Format(DateLayout))
	if err != nil {
		return false, &StorageError{Op: "conflict check (day scan)", Err: err}
	}

	slotEnd := slotStart.Add(SlotLength)
	for _, appointment := range appointments {
		appointmentStart, err := ParseAppointmentTime(appointment.AppointmentDate)
		if err != nil {
			// Fail-open: dirty historical timestamps are skipped, not fatal.
			logger.Warn("skipping appointment with unparseable stored timestamp",
				zap.String("appointmentID", appointment.ID),
				zap.String("doctorID", doctorID),
				zap.String("appointmentDate", appointment.AppointmentDate))
			continue
		}
		appointmentEnd := appointmentStart.Add(SlotLength)
		if slotStart.Before(appointmentEnd) && slotEnd.After(appointmentStart) {
			return true, nil
		}
	}
	return false, nil
}

// overlappingAppointments returns the active appointments whose 30-minute
// window overlaps [slotStart, slotStart+30min), excluding the given id.
// Used by the post-write race check.
func (s *DefaultSchedulingService) overlappingAppointments(ctx context.Context, own *models.Appointment) ([]models.Appointment, error) {
	logger := utils.GetLogger()

	slotStart, err := ParseAppointmentTime(own.AppointmentDate)
	if err != nil {
		return nil, err
	}
	slotEnd := slotStart.Add(SlotLength)

	appointments, err := s.Appointments.FindActiveByDay(ctx, own.DoctorID, slotStart.Format(DateLayout))
	if err != nil {
		return nil, &StorageError{Op: "post-write race check", Err: err}
	}

	var conflicting []models.Appointment
	for _, appointment := range appointments {
		if appointment.ID == own.ID {
			continue
		}
		appointmentStart, err := ParseAppointmentTime(appointment.AppointmentDate)
		if err != nil {
			logger.Warn("skipping appointment with unparseable stored timestamp",
				zap.String("appointmentID", appointment.ID),
				zap.String("appointmentDate", appointment.AppointmentDate))
			continue
		}
		appointmentEnd := appointmentStart.Add(SlotLength)
		if slotStart.Before(appointmentEnd) && slotEnd.After(appointmentStart) {
			conflicting = append(conflicting, appointment)
		}
	}
	return conflicting, nil
}
