package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"telecare/models"
	"telecare/utils"

	"go.uber.org/zap"
)

// GetSlotsForDate derives the 30-minute bookable slots for a concrete
// calendar date from the doctor's weekly ranges and tags each with its
// booking status.
//
// A slot is emitted whenever its start falls inside a range; the slot's end
// is not clipped to the range end, so a 16:45 slot in a 09:00-17:00 range
// is offered even though it runs to 17:15. Ranges are processed in stored
// order and slots are not re-sorted across ranges.
func (s *DefaultSchedulingService) GetSlotsForDate(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	day, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil, fmt.Errorf("%w: unrecognized date %q", ErrInvalidInput, date)
	}
	dateKey := day.Format(DateLayout)

	if s.Cache != nil {
		if slots, ok := s.Cache.Get(ctx, doctorID, dateKey); ok {
			return slots, nil
		}
	}

	weekday := strings.ToLower(day.Weekday().String())
	ranges, err := s.GetDayAvailability(ctx, doctorID, weekday)
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		return []models.Slot{}, nil
	}

	logger := utils.GetLogger()
	now := s.now()
	isToday := now.Format(DateLayout) == dateKey
	cutoff := now.Add(s.bookingBuffer())

	slots := make([]models.Slot, 0)
	for _, r := range ranges {
		startMinutes, err := ParseClockMinutes(r.StartTime)
		if err != nil {
			logger.Warn("skipping availability range with bad start time",
				zap.String("doctorID", doctorID), zap.String("startTime", r.StartTime))
			continue
		}
		endMinutes, err := ParseClockMinutes(r.EndTime)
		if err != nil {
			logger.Warn("skipping availability range with bad end time",
				zap.String("doctorID", doctorID), zap.String("endTime", r.EndTime))
			continue
		}

		for m := startMinutes; m < endMinutes; m += int(SlotLength.Minutes()) {
			slotStart := time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, time.UTC)

			// Same-day buffer: slots starting at or before now+buffer are
			// dropped entirely, not just marked past.
			if isToday && !slotStart.After(cutoff) {
				continue
			}

			slotDateTime := slotStart.Format(CanonicalLayout)
			booked, err := s.IsSlotBooked(ctx, doctorID, slotDateTime)
			if err != nil {
				return nil, err
			}

			status := models.SlotStatusAvailable
			if booked {
				status = models.SlotStatusBooked
			}
			slots = append(slots, models.Slot{
				Time:        formatClock(m),
				DateTime:    slotDateTime,
				IsAvailable: !booked,
				Status:      status,
				IsPast:      isToday && slotStart.Before(now),
			})
		}
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, doctorID, dateKey, slots)
	}
	return slots, nil
}
