package scheduling

import (
	"context"
	"fmt"
	"strings"

	"telecare/models"
	"telecare/utils"

	"go.uber.org/zap"
)

// GetWeeklyAvailability returns the doctor's stored week, creating the
// all-unavailable default on first read.
func (s *DefaultSchedulingService) GetWeeklyAvailability(ctx context.Context, doctorID string) (*models.WeeklyAvailability, error) {
	availability, err := s.Availability.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, &StorageError{Op: "get weekly availability", Err: err}
	}
	return availability, nil
}

// SetWeeklyAvailability replaces the doctor's full week. Missing weekday
// keys are filled with unavailable empty days before writing.
func (s *DefaultSchedulingService) SetWeeklyAvailability(ctx context.Context, doctorID string, week map[string]models.DayAvailability) (*models.WeeklyAvailability, error) {
	normalized := models.NormalizeWeek(week)
	warnOverlappingRanges(doctorID, normalized)

	stored, err := s.Availability.Upsert(ctx, doctorID, normalized)
	if err != nil {
		return nil, &StorageError{Op: "set weekly availability", Err: err}
	}
	if s.Cache != nil {
		s.Cache.InvalidateDoctor(ctx, doctorID)
	}
	return stored, nil
}

// GetDayAvailability returns the open ranges for one weekday, or an empty
// list when the day is marked unavailable.
func (s *DefaultSchedulingService) GetDayAvailability(ctx context.Context, doctorID, weekday string) ([]models.TimeRange, error) {
	day := strings.ToLower(strings.TrimSpace(weekday))
	if !models.IsWeekday(day) {
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, weekday)
	}

	availability, err := s.Availability.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, &StorageError{Op: "get day availability", Err: err}
	}

	dayAvailability, ok := availability.Week[day]
	if !ok || !dayAvailability.IsAvailable {
		return nil, nil
	}
	return dayAvailability.TimeSlots, nil
}

// warnOverlappingRanges emits a diagnostic when ranges within one day
// overlap. Overlap is accepted input (deliberately dense coverage is a
// legitimate configuration) but is usually a data-entry error.
func warnOverlappingRanges(doctorID string, week map[string]models.DayAvailability) {
	logger := utils.GetLogger()
	for _, day := range models.Weekdays {
		ranges := week[day].TimeSlots
		for i := 0; i < len(ranges); i++ {
			startI, errS := ParseClockMinutes(ranges[i].StartTime)
			endI, errE := ParseClockMinutes(ranges[i].EndTime)
			if errS != nil || errE != nil {
				continue
			}
			for j := i + 1; j < len(ranges); j++ {
				startJ, errS := ParseClockMinutes(ranges[j].StartTime)
				endJ, errE := ParseClockMinutes(ranges[j].EndTime)
				if errS != nil || errE != nil {
					continue
				}
				if startI < endJ && endI > startJ {
					logger.Warn("overlapping availability ranges within a day",
						zap.String("doctorID", doctorID),
						zap.String("day", day),
						zap.String("rangeA", ranges[i].StartTime+"-"+ranges[i].EndTime),
						zap.String("rangeB", ranges[j].StartTime+"-"+ranges[j].EndTime))
				}
			}
		}
	}
}
