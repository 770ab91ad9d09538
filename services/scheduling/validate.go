package scheduling

import (
	"context"
	"fmt"
	"strings"
)

// ValidateSlot confirms the candidate time falls inside one of the doctor's
// open weekly ranges. Range membership is inclusive at the start and
// exclusive at the end: a candidate exactly at a range's end time is
// rejected. Conflicts with existing appointments are IsSlotBooked's
// responsibility, not this check's; both must pass for a booking.
func (s *DefaultSchedulingService) ValidateSlot(ctx context.Context, doctorID, datetime string) (bool, string, error) {
	candidate, err := ParseAppointmentTime(datetime)
	if err != nil {
		return false, "", err
	}

	weekday := strings.ToLower(candidate.Weekday().String())
	ranges, err := s.GetDayAvailability(ctx, doctorID, weekday)
	if err != nil {
		return false, "", err
	}
	if len(ranges) == 0 {
		return false, "Doctor is not available on this day", nil
	}

	requestedMinutes := minutesOfDay(candidate)
	var windows []string
	for _, r := range ranges {
		startMinutes, errStart := ParseClockMinutes(r.StartTime)
		endMinutes, errEnd := ParseClockMinutes(r.EndTime)
		if errStart != nil || errEnd != nil {
			continue
		}
		if startMinutes <= requestedMinutes && requestedMinutes < endMinutes {
			return true, "Slot is available for booking", nil
		}
		windows = append(windows, r.StartTime+"-"+r.EndTime)
	}

	message := fmt.Sprintf("Requested time %s is outside doctor's availability. Available times: %s",
		formatClock(requestedMinutes), strings.Join(windows, ", "))
	return false, message, nil
}
