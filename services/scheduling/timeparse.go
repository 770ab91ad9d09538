package scheduling

import (
	"fmt"
	"strings"
	"time"
)

const (
	// CanonicalLayout is the format the write path stores going forward.
	// Historical rows vary; appointmentLayouts covers the known shapes.
	CanonicalLayout = "2006-01-02T15:04:05"
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
)

// appointmentLayouts is the ordered list of accepted timestamp shapes,
// tried in sequence. It replaces the chained string mutations the legacy
// system used for the same purpose.
var appointmentLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseAppointmentTime normalizes any accepted timestamp shape to a
// canonical UTC-naive instant at second precision.
func ParseAppointmentTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range appointmentLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized appointment time %q", ErrInvalidInput, value)
}

// StoredVariants returns the fixed set of stored-format variants for an
// instant, used by the exact-match fast path of the conflict checker.
func StoredVariants(t time.Time) []string {
	base := t.Format(CanonicalLayout)
	return []string{
		base,
		t.Format("2006-01-02 15:04:05"),
		base + "Z",
		base + ".000Z",
		base + ".000000",
	}
}

// ParseClockMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight.
func ParseClockMinutes(value string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: unrecognized clock time %q", ErrInvalidInput, value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// minutesOfDay is the candidate-side counterpart of ParseClockMinutes.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// formatClock renders minutes since midnight as "HH:MM".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
