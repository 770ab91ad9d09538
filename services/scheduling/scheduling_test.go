package scheduling

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"telecare/models"
)

// fakeAvailabilityRepo is an in-memory AvailabilityRepository.
type fakeAvailabilityRepo struct {
	mu   sync.Mutex
	docs map[string]*models.WeeklyAvailability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{docs: make(map[string]*models.WeeklyAvailability)}
}

func (r *fakeAvailabilityRepo) GetByDoctorID(ctx context.Context, doctorID string) (*models.WeeklyAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc, ok := r.docs[doctorID]; ok {
		return doc, nil
	}
	doc := &models.WeeklyAvailability{
		DoctorID:  doctorID,
		Week:      models.DefaultWeek(),
		CreatedAt: time.Now().UTC(),
	}
	r.docs[doctorID] = doc
	return doc, nil
}

func (r *fakeAvailabilityRepo) Upsert(ctx context.Context, doctorID string, week map[string]models.DayAvailability) (*models.WeeklyAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := &models.WeeklyAvailability{
		DoctorID:  doctorID,
		Week:      week,
		UpdatedAt: time.Now().UTC(),
	}
	r.docs[doctorID] = doc
	return doc, nil
}

// fakeAppointmentRepo is an in-memory AppointmentRepository. onCreate, when
// set, runs after an insert and can inject a competing appointment to
// simulate a concurrent writer landing inside the race window.
type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []models.Appointment
	onCreate     func(r *fakeAppointmentRepo)
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{}
}

func (r *fakeAppointmentRepo) insert(appointment models.Appointment) {
	r.appointments = append(r.appointments, appointment)
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	r.insert(*appointment)
	hook := r.onCreate
	r.onCreate = nil
	r.mu.Unlock()
	if hook != nil {
		hook(r)
	}
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, appointmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, appointment := range r.appointments {
		if appointment.ID == appointmentID {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return context.Canceled
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, appointment := range r.appointments {
		if appointment.ID == appointmentID {
			found := appointment
			return &found, nil
		}
	}
	return nil, context.Canceled
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID {
			r.appointments[i].Status = status
			return nil
		}
	}
	return context.Canceled
}

func (r *fakeAppointmentRepo) FindActiveByExactDate(ctx context.Context, doctorID string, dates []string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, appointment := range r.appointments {
		if appointment.DoctorID != doctorID || !appointment.Status.IsActive() {
			continue
		}
		for _, date := range dates {
			if appointment.AppointmentDate == date {
				found := appointment
				return &found, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindActiveByDay(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.DoctorID == doctorID && appointment.Status.IsActive() &&
			strings.HasPrefix(appointment.AppointmentDate, date) {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appointments)
}

// newTestService wires the engine to fresh in-memory repositories with a
// fixed clock.
func newTestService(now time.Time) (*DefaultSchedulingService, *fakeAvailabilityRepo, *fakeAppointmentRepo) {
	availability := newFakeAvailabilityRepo()
	appointments := newFakeAppointmentRepo()
	svc := &DefaultSchedulingService{
		Availability: availability,
		Appointments: appointments,
		Now:          func() time.Time { return now },
	}
	return svc, availability, appointments
}

// setDay marks one weekday available with the given ranges.
func setDay(t *testing.T, svc *DefaultSchedulingService, doctorID, day string, ranges ...models.TimeRange) {
	t.Helper()
	week := map[string]models.DayAvailability{
		day: {IsAvailable: true, TimeSlots: ranges},
	}
	if _, err := svc.SetWeeklyAvailability(context.Background(), doctorID, week); err != nil {
		t.Fatalf("SetWeeklyAvailability failed: %v", err)
	}
}
