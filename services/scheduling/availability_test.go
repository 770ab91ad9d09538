package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"telecare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyAvailability(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("First Read Synthesizes Default Week", func(t *testing.T) {
		svc, _, _ := newTestService(now)

		availability, err := svc.GetWeeklyAvailability(ctx, "doc-1")
		require.NoError(t, err)
		require.NotNil(t, availability)
		assert.Equal(t, "doc-1", availability.DoctorID)
		require.Len(t, availability.Week, 7)
		for _, day := range models.Weekdays {
			dayAvailability, ok := availability.Week[day]
			require.True(t, ok, "missing weekday %s", day)
			assert.False(t, dayAvailability.IsAvailable)
			assert.NotNil(t, dayAvailability.TimeSlots)
			assert.Empty(t, dayAvailability.TimeSlots)
		}
	})

	t.Run("Set Fills Missing Days", func(t *testing.T) {
		svc, _, _ := newTestService(now)

		stored, err := svc.SetWeeklyAvailability(ctx, "doc-1", map[string]models.DayAvailability{
			"monday": {IsAvailable: true, TimeSlots: []models.TimeRange{{StartTime: "09:00", EndTime: "12:00"}}},
		})
		require.NoError(t, err)
		require.Len(t, stored.Week, 7)
		assert.True(t, stored.Week["monday"].IsAvailable)
		assert.False(t, stored.Week["tuesday"].IsAvailable)
		assert.Empty(t, stored.Week["tuesday"].TimeSlots)
	})

	t.Run("Set Drops Unknown Keys", func(t *testing.T) {
		svc, _, _ := newTestService(now)

		stored, err := svc.SetWeeklyAvailability(ctx, "doc-1", map[string]models.DayAvailability{
			"funday": {IsAvailable: true},
			"monday": {IsAvailable: true, TimeSlots: []models.TimeRange{{StartTime: "09:00", EndTime: "12:00"}}},
		})
		require.NoError(t, err)
		require.Len(t, stored.Week, 7)
		_, ok := stored.Week["funday"]
		assert.False(t, ok)
	})
}

func TestGetDayAvailability(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Open Day Returns Ranges", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		setDay(t, svc, "doc-1", "monday", models.TimeRange{StartTime: "09:00", EndTime: "12:00"})

		ranges, err := svc.GetDayAvailability(ctx, "doc-1", "monday")
		require.NoError(t, err)
		require.Len(t, ranges, 1)
		assert.Equal(t, "09:00", ranges[0].StartTime)
	})

	t.Run("Weekday Key Normalized", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		setDay(t, svc, "doc-1", "monday", models.TimeRange{StartTime: "09:00", EndTime: "12:00"})

		ranges, err := svc.GetDayAvailability(ctx, "doc-1", "  Monday ")
		require.NoError(t, err)
		assert.Len(t, ranges, 1)
	})

	t.Run("Closed Day Returns Empty", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		setDay(t, svc, "doc-1", "monday", models.TimeRange{StartTime: "09:00", EndTime: "12:00"})

		ranges, err := svc.GetDayAvailability(ctx, "doc-1", "tuesday")
		require.NoError(t, err)
		assert.Empty(t, ranges)
	})

	t.Run("Unknown Weekday", func(t *testing.T) {
		svc, _, _ := newTestService(now)

		_, err := svc.GetDayAvailability(ctx, "doc-1", "someday")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
