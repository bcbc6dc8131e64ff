package btdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const MinutesPerDay = 24 * 60

const YearMonthDayFormat = "2006-01-02"
const MonthDayFormat = "01-02"

// TimeOfDay is a wall clock time with no date attached, stored as minutes
// since midnight. Published timetables only carry these, never full dates.
type TimeOfDay int

// ParseTimeOfDay parses a published "HH:MM" departure time.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	hourPart, minutePart, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found {
		return 0, fmt.Errorf("time %q is not in HH:MM format", value)
	}

	hours, err := strconv.Atoi(hourPart)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("time %q has an invalid hour", value)
	}

	minutes, err := strconv.Atoi(minutePart)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q has an invalid minute", value)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// TimeOfDayFromTime truncates a full timestamp down to its time of day.
// Seconds are dropped, matching the minute resolution of the timetable.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
