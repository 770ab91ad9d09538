package models

import "time"

// Weekdays lists the lowercase weekday keys used in availability documents,
// in calendar order starting from Monday.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// IsWeekday reports whether the given key is one of the seven weekday names.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// TimeRange is one open interval within a weekday. Times are wall-clock
// "HH:MM" strings in 24h format with start < end.
type TimeRange struct {
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
}

// DayAvailability holds a single weekday's configuration. Ranges within a
// day may overlap; that is accepted input and never deduped.
type DayAvailability struct {
	IsAvailable bool        `bson:"is_available" json:"is_available"`
	TimeSlots   []TimeRange `bson:"time_slots" json:"time_slots"`
}

// WeeklyAvailability is the per-doctor recurring schedule document. Exactly
// one document exists per doctor; all seven weekday keys are always present
// in stored documents.
type WeeklyAvailability struct {
	DoctorID  string                     `bson:"doctor_id" json:"doctor_id"`
	Week      map[string]DayAvailability `bson:"weekly_availability" json:"weekly_availability"`
	CreatedAt time.Time                  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time                  `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DefaultWeek returns an all-unavailable week with empty range lists.
func DefaultWeek() map[string]DayAvailability {
	week := make(map[string]DayAvailability, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = DayAvailability{IsAvailable: false, TimeSlots: []TimeRange{}}
	}
	return week
}

// NormalizeWeek returns a copy of the input with every missing weekday key
// filled with an unavailable empty day. Unknown keys are dropped. The input
// map is never mutated.
func NormalizeWeek(week map[string]DayAvailability) map[string]DayAvailability {
	normalized := make(map[string]DayAvailability, len(Weekdays))
	for _, day := range Weekdays {
		if d, ok := week[day]; ok {
			if d.TimeSlots == nil {
				d.TimeSlots = []TimeRange{}
			}
			normalized[day] = d
		} else {
			normalized[day] = DayAvailability{IsAvailable: false, TimeSlots: []TimeRange{}}
		}
	}
	return normalized
}
