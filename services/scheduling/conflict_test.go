package scheduling

import (
	"context"
	"testing"
	"time"

	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeAppointment(doctorID, date string, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		ID:              "apt-" + date,
		DoctorID:        doctorID,
		AppointmentDate: date,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestIsSlotBooked(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("No Appointments", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		booked, err := svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T09:00:00")
		require.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("Exact Match Across Stored Variants", func(t *testing.T) {
		variants := []string{
			"2030-01-07T09:00:00",
			"2030-01-07 09:00:00",
			"2030-01-07T09:00:00Z",
			"2030-01-07T09:00:00.000Z",
		}
		for _, stored := range variants {
			svc, _, appointments := newTestService(now)
			appointments.insert(activeAppointment("doc-1", stored, models.StatusConfirmed))

			booked, err := svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T09:00:00")
			require.NoError(t, err)
			assert.True(t, booked, "stored %q should match exactly", stored)
		}
	})

	t.Run("Candidate Format Independence", func(t *testing.T) {
		svc, _, appointments := newTestService(now)
		appointments.insert(activeAppointment("doc-1", "2030-01-07T09:00:00", models.StatusPending))

		for _, candidate := range []string{
			"2030-01-07T09:00:00Z",
			"2030-01-07 09:00:00",
			"2030-01-07T09:00",
		} {
			booked, err := svc.IsSlotBooked(ctx, "doc-1", candidate)
			require.NoError(t, err)
			assert.True(t, booked, "candidate %q", candidate)
		}
	})

	t.Run("Overlap Detection", func(t *testing.T) {
		svc, _, appointments := newTestService(now)
		// Existing appointment 09:15-09:45.
		appointments.insert(activeAppointment("doc-1", "2030-01-07T09:15:00", models.StatusConfirmed))

		// Candidate 09:00-09:30 overlaps 09:15-09:30.
		booked, err := svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T09:00:00")
		require.NoError(t, err)
		assert.True(t, booked)

		// Candidate 09:45-10:15 is adjacent, not overlapping.
		booked, err = svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T09:45:00")
		require.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("Heterogeneous Stored Format In Day Scan", func(t *testing.T) {
		svc, _, appointments := newTestService(now)
		appointments.insert(activeAppointment("doc-1", "2030-01-07 09:15:00", models.StatusPending))

		booked, err := svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T09:00:00")
		require.NoError(t, err)
		assert.True(t, booked)
	})

	t.Run("Inactive Statuses Never Block", func(t *testing.T) {
		svc, _, appointments := newTestService(now)
		appointments.insert(activeAppointment("doc-1", "2030-01-07T09:00:00", models.StatusCancelled))
		appointments.insert(activeAppointment("doc-1", "2030-01-07T09:30:00", models.StatusCompleted))

		for _, candidate := range []string{"2030-01-07T09:00:00", "2030-01-07T09:30:00"} {
			booked, err := svc.IsSlotBooked(ctx, "doc-1", candidate)
			require.NoError(t, err)
			assert.False(t, booked, "candidate %q", candidate)
		}
	})

	t.Run("Other Doctors Do Not Conflict", func(t *testing.T) {
		svc, _, appointments := newTestService(now)
		appointments.insert(activeAppointment("doc-2", "2030-01-07T09:00:00", models.StatusConfirmed))

		booked, err := svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T09:00:00")
		require.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("Unparseable Stored Timestamp Skipped", func(t *testing.T) {
		svc, _, appointments := newTestService(now)
		appointments.insert(activeAppointment("doc-1", "2030-01-07Tgarbage", models.StatusConfirmed))
		appointments.insert(activeAppointment("doc-1", "2030-01-07T09:15:00", models.StatusConfirmed))

		// The dirty row is skipped, the clean one still conflicts.
		booked, err := svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T09:00:00")
		require.NoError(t, err)
		assert.True(t, booked)

		// Only the dirty row on a free slot: fail-open, not booked.
		booked, err = svc.IsSlotBooked(ctx, "doc-1", "2030-01-07T11:00:00")
		require.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("Unparseable Candidate Fails Open", func(t *testing.T) {
		svc, _, appointments := newTestService(now)
		appointments.insert(activeAppointment("doc-1", "2030-01-07T09:00:00", models.StatusConfirmed))

		booked, err := svc.IsSlotBooked(ctx, "doc-1", "not-a-timestamp")
		require.NoError(t, err)
		assert.False(t, booked)
	})
}
