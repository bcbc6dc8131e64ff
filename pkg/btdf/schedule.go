package btdf

import (
	"time"
)

// BasicScheduleType resolves weekday or weekend purely from the day of week.
func BasicScheduleType(now time.Time) ScheduleType {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return ScheduleTypeWeekend
	}

	return ScheduleTypeWeekday
}

// IsAfterLastDeparture reports whether now is past the final departure of
// the day across the whole document for the given schedule type. A document
// with no parseable times for the schedule type never counts as finished.
func IsAfterLastDeparture(now time.Time, document *TimetableDocument, scheduleType ScheduleType) bool {
	latest, found := document.LatestDeparture(scheduleType)
	if !found {
		return false
	}

	return TimeOfDayFromTime(now) > latest
}

// ScheduleTypeFor decides which timetable applies right now.
//
// Holidays always run the weekend timetable. Once today's final departure
// has passed the decision is made for tomorrow instead, since every
// remaining departure on the board belongs to the next day.
func ScheduleTypeFor(now time.Time, document *TimetableDocument) ScheduleType {
	if IsHoliday(now) {
		return ScheduleTypeWeekend
	}

	if IsAfterLastDeparture(now, document, BasicScheduleType(now)) {
		tomorrow := now.AddDate(0, 0, 1)

		if IsHoliday(tomorrow) {
			return ScheduleTypeWeekend
		}

		return BasicScheduleType(tomorrow)
	}

	return BasicScheduleType(now)
}
