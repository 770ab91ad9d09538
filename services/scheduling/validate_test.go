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

func TestValidateSlot(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Inside Range", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		setDay(t, svc, "doc-1", "monday", models.TimeRange{StartTime: "09:00", EndTime: "12:00"})

		// 2030-01-07 is a Monday.
		ok, message, err := svc.ValidateSlot(ctx, "doc-1", "2030-01-07T10:30:00")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Slot is available for booking", message)
	})

	t.Run("Range Boundaries", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		setDay(t, svc, "doc-1", "monday", models.TimeRange{StartTime: "09:00", EndTime: "12:00"})

		// Start is inclusive.
		ok, _, err := svc.ValidateSlot(ctx, "doc-1", "2030-01-07T09:00:00")
		require.NoError(t, err)
		assert.True(t, ok)

		// End is exclusive.
		ok, message, err := svc.ValidateSlot(ctx, "doc-1", "2030-01-07T12:00:00")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, message, "outside doctor's availability")
		assert.Contains(t, message, "09:00-12:00")
	})

	t.Run("Day Not Available", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		setDay(t, svc, "doc-1", "monday", models.TimeRange{StartTime: "09:00", EndTime: "12:00"})

		// 2030-01-08 is a Tuesday, which was never opened.
		ok, message, err := svc.ValidateSlot(ctx, "doc-1", "2030-01-08T10:00:00")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "Doctor is not available on this day", message)
	})

	t.Run("Default Schedule Is Closed", func(t *testing.T) {
		svc, _, _ := newTestService(now)

		// Doctor never configured anything; the synthesized default week
		// has every day closed.
		ok, message, err := svc.ValidateSlot(ctx, "doc-1", "2030-01-07T10:00:00")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "Doctor is not available on this day", message)
	})

	t.Run("Second Range Accepts", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		setDay(t, svc, "doc-1", "monday",
			models.TimeRange{StartTime: "09:00", EndTime: "12:00"},
			models.TimeRange{StartTime: "14:00", EndTime: "17:00"},
		)

		ok, _, err := svc.ValidateSlot(ctx, "doc-1", "2030-01-07T15:30:00")
		require.NoError(t, err)
		assert.True(t, ok)

		// Lunch gap rejected, message lists both windows.
		ok, message, err := svc.ValidateSlot(ctx, "doc-1", "2030-01-07T13:00:00")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, message, "09:00-12:00")
		assert.Contains(t, message, "14:00-17:00")
	})

	t.Run("Unparseable Datetime", func(t *testing.T) {
		svc, _, _ := newTestService(now)

		_, _, err := svc.ValidateSlot(ctx, "doc-1", "next tuesday")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
