package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentTime(t *testing.T) {
	want := time.Date(2030, 1, 7, 9, 30, 0, 0, time.UTC)

	t.Run("Accepted Shapes", func(t *testing.T) {
		inputs := []string{
			"2030-01-07T09:30:00",
			"2030-01-07 09:30:00",
			"2030-01-07T09:30:00Z",
			"2030-01-07T09:30:00.000000",
			"2030-01-07T09:30:00.123456Z",
			"2030-01-07T09:30",
			"2030-01-07 09:30",
			"  2030-01-07T09:30:00  ",
		}
		for _, input := range inputs {
			got, err := ParseAppointmentTime(input)
			require.NoError(t, err, "input %q", input)
			assert.True(t, got.Equal(want), "input %q parsed to %v", input, got)
		}
	})

	t.Run("Fractional Seconds Truncated", func(t *testing.T) {
		got, err := ParseAppointmentTime("2030-01-07T09:30:00.999999")
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "sub-second precision should be dropped")
	})

	t.Run("Rejected Shapes", func(t *testing.T) {
		inputs := []string{"", "garbage", "2030-01-07", "09:30", "07/01/2030 09:30"}
		for _, input := range inputs {
			_, err := ParseAppointmentTime(input)
			require.Error(t, err, "input %q", input)
			assert.True(t, errors.Is(err, ErrInvalidInput), "input %q should be ErrInvalidInput", input)
		}
	})
}

func TestStoredVariants(t *testing.T) {
	instant := time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)
	variants := StoredVariants(instant)

	assert.Contains(t, variants, "2030-01-07T09:00:00")
	assert.Contains(t, variants, "2030-01-07 09:00:00")
	assert.Contains(t, variants, "2030-01-07T09:00:00Z")
	assert.Contains(t, variants, "2030-01-07T09:00:00.000Z")
	assert.Contains(t, variants, "2030-01-07T09:00:00.000000")
}

func TestParseClockMinutes(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		minutes, err := ParseClockMinutes("09:30")
		require.NoError(t, err)
		assert.Equal(t, 570, minutes)

		minutes, err = ParseClockMinutes("00:00")
		require.NoError(t, err)
		assert.Equal(t, 0, minutes)

		minutes, err = ParseClockMinutes("23:30")
		require.NoError(t, err)
		assert.Equal(t, 1410, minutes)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{"", "9am", "25:00", "09:61"} {
			_, err := ParseClockMinutes(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}
