package scheduling

import (
	"context"

	"telecare/models"
	"telecare/services/session"
	"telecare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAppointment books a consultation slot. The flow is
// validate -> conflict check -> slot lock -> insert -> post-write re-check,
// with a compensating delete when the re-check shows this writer lost a
// race. The slot lock narrows the race window; when the lock backend is
// unavailable the engine proceeds optimistically rather than refusing the
// booking, and the re-check remains as the backstop.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	slotStart, err := ParseAppointmentTime(req.AppointmentDate)
	if err != nil {
		return nil, err
	}
	canonical := slotStart.Format(CanonicalLayout)

	ok, message, err := s.ValidateSlot(ctx, req.DoctorID, canonical)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotAvailableError{Message: message}
	}

	booked, err := s.IsSlotBooked(ctx, req.DoctorID, canonical)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, &ConflictError{Message: "Selected time slot is already booked"}
	}

	if s.Locks != nil {
		acquired, release, lockErr := s.Locks.Acquire(ctx, req.DoctorID, canonical)
		switch {
		case lockErr != nil:
			logger.Warn("slot lock backend unavailable, proceeding optimistically",
				zap.String("doctorID", req.DoctorID),
				zap.String("slot", canonical),
				zap.Error(lockErr))
		case !acquired:
			return nil, &ConflictError{Message: "Time slot is being booked by another patient"}
		default:
			defer release()
			// Re-check under the lock: a competitor may have committed
			// between the optimistic pre-check and lock acquisition.
			booked, err := s.IsSlotBooked(ctx, req.DoctorID, canonical)
			if err != nil {
				return nil, err
			}
			if booked {
				return nil, &ConflictError{Message: "Selected time slot is already booked"}
			}
		}
	}

	consultationType := req.ConsultationType
	if consultationType == "" {
		consultationType = "video"
	}

	appointment := &models.Appointment{
		ID:               uuid.New().String(),
		DoctorID:         req.DoctorID,
		PatientID:        req.PatientID,
		PatientName:      req.PatientName,
		AppointmentDate:  canonical,
		Status:           models.StatusPending,
		Reason:           req.Reason,
		Notes:            req.Notes,
		ConsultationType: consultationType,
		VideoCallID:      session.NewCallID(),
		CreatedAt:        s.now(),
	}
	if err := s.Appointments.Create(ctx, appointment); err != nil {
		return nil, &StorageError{Op: "create appointment", Err: err}
	}

	lost, err := s.lostRace(ctx, appointment)
	if err != nil {
		// The appointment is written; a failed re-check must not unwind it.
		logger.Warn("post-write race check failed, keeping appointment",
			zap.String("appointmentID", appointment.ID), zap.Error(err))
	}
	if lost {
		if delErr := s.Appointments.Delete(ctx, appointment.ID); delErr != nil {
			logger.Error("failed to delete appointment after losing booking race",
				zap.String("appointmentID", appointment.ID), zap.Error(delErr))
		}
		return nil, &ConflictError{Message: "Time slot was booked by another patient while processing your request"}
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, appointment.DoctorID, slotStart.Format(DateLayout))
	}
	if s.Expiry != nil {
		if err := s.Expiry.ScheduleExpiry(ctx, appointment.ID, slotStart); err != nil {
			logger.Warn("failed to schedule pending-appointment expiry",
				zap.String("appointmentID", appointment.ID), zap.Error(err))
		}
	}

	logger.Info("appointment created",
		zap.String("appointmentID", appointment.ID),
		zap.String("doctorID", appointment.DoctorID),
		zap.String("slot", canonical))
	return appointment, nil
}

// lostRace decides, symmetrically, whether this writer must yield its slot.
// Among concurrent writers of overlapping slots the earliest creation wins
// (id as tiebreak), so exactly one of two racing writers deletes its row;
// both-delete and both-survive are impossible.
func (s *DefaultSchedulingService) lostRace(ctx context.Context, own *models.Appointment) (bool, error) {
	conflicting, err := s.overlappingAppointments(ctx, own)
	if err != nil {
		return false, err
	}
	for _, other := range conflicting {
		if other.CreatedAt.Before(own.CreatedAt) {
			return true, nil
		}
		if other.CreatedAt.Equal(own.CreatedAt) && other.ID < own.ID {
			return true, nil
		}
	}
	return false, nil
}

// UpdateAppointmentStatus applies a guarded lifecycle transition. Status
// changes determine what the conflict checker sees, so the slot cache for
// the appointment's day is invalidated.
func (s *DefaultSchedulingService) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error) {
	appointment, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, &StorageError{Op: "load appointment", Err: err}
	}
	if err := appointment.Status.CanTransitionTo(status); err != nil {
		return nil, err
	}
	if err := s.Appointments.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, &StorageError{Op: "update appointment status", Err: err}
	}
	appointment.Status = status

	if s.Cache != nil {
		if slotStart, parseErr := ParseAppointmentTime(appointment.AppointmentDate); parseErr == nil {
			s.Cache.Invalidate(ctx, appointment.DoctorID, slotStart.Format(DateLayout))
		}
	}
	return appointment, nil
}
