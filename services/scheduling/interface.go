package scheduling

import (
	"context"
	"time"

	appointmentRepo "telecare/database/repository/appointment"
	availabilityRepo "telecare/database/repository/availability"
	"telecare/models"
)

// SlotLength is the fixed consultation window size.
const SlotLength = 30 * time.Minute

// Service exposes the availability and booking engine consumed by the HTTP
// layer.
type Service interface {
	GetWeeklyAvailability(ctx context.Context, doctorID string) (*models.WeeklyAvailability, error)
	SetWeeklyAvailability(ctx context.Context, doctorID string, week map[string]models.DayAvailability) (*models.WeeklyAvailability, error)
	GetDayAvailability(ctx context.Context, doctorID, weekday string) ([]models.TimeRange, error)
	GetSlotsForDate(ctx context.Context, doctorID, date string) ([]models.Slot, error)
	IsSlotBooked(ctx context.Context, doctorID, datetime string) (bool, error)
	ValidateSlot(ctx context.Context, doctorID, datetime string) (bool, string, error)
	CreateAppointment(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error)
}

// SlotLocker provides short-lived mutual exclusion per (doctor, slot) pair.
// Acquire returns whether the lock was taken and a release func. Backend
// failure is reported through err; the engine then degrades to optimistic
// mode instead of refusing the booking.
type SlotLocker interface {
	Acquire(ctx context.Context, doctorID, slotKey string) (bool, func(), error)
}

// SlotCache holds generated slot grids for a short TTL.
type SlotCache interface {
	Get(ctx context.Context, doctorID, date string) ([]models.Slot, bool)
	Set(ctx context.Context, doctorID, date string, slots []models.Slot)
	Invalidate(ctx context.Context, doctorID, date string)
	InvalidateDoctor(ctx context.Context, doctorID string)
}

// ExpiryScheduler enqueues deferred expiry of appointments that are still
// pending when their start time arrives.
type ExpiryScheduler interface {
	ScheduleExpiry(ctx context.Context, appointmentID string, startAt time.Time) error
}

// DefaultSchedulingService is the production engine. Locks, Cache and
// Expiry are optional; a nil value disables that collaborator.
type DefaultSchedulingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Locks        SlotLocker
	Cache        SlotCache
	Expiry       ExpiryScheduler

	// BookingBuffer is the same-day lead time below which slots are not
	// offered. Zero means the 60-minute default.
	BookingBuffer time.Duration

	// Now is an injectable clock returning UTC; nil means time.Now().UTC.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultSchedulingService) bookingBuffer() time.Duration {
	if s.BookingBuffer > 0 {
		return s.BookingBuffer
	}
	return time.Hour
}
