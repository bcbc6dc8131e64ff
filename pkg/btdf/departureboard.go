package btdf

import (
	"golang.org/x/exp/slices"
)

// ProcessedDeparture is a single row on the departure board.
type ProcessedDeparture struct {
	Time    TimeOfDay `json:"time" groups:"basic"`
	IsToday bool      `json:"isToday" groups:"basic"`
}

type departureCandidate struct {
	time    TimeOfDay
	isToday bool
	isPast  bool
	diff    int
}

// ProcessScheduleTimes selects which departures for one stop to put on the
// board, relative to now.
//
// Published times carry no date, so a time already behind us stands for two
// possible departures: the one missed today and the one coming up after
// midnight. Both become candidates and the sort by distance from now decides
// which of them the board shows. The window starts at the next upcoming
// departure; if fewer than maxCount departures remain, the most recently
// missed ones are pulled back in ahead of it so the list still reads in
// chronological order.
func ProcessScheduleTimes(rawTimes []TimeOfDay, now TimeOfDay, maxCount int) []ProcessedDeparture {
	if maxCount <= 0 || len(rawTimes) == 0 {
		return nil
	}

	candidates := make([]departureCandidate, 0, len(rawTimes)*2)
	for _, timeOfDay := range rawTimes {
		diff := int(timeOfDay) - int(now)

		if diff < 0 {
			candidates = append(candidates,
				departureCandidate{time: timeOfDay, isToday: true, isPast: true, diff: diff},
				departureCandidate{time: timeOfDay, isToday: false, diff: diff + MinutesPerDay},
			)
		} else {
			candidates = append(candidates, departureCandidate{time: timeOfDay, isToday: true, diff: diff})
		}
	}

	slices.SortStableFunc(candidates, func(a, b departureCandidate) int {
		return a.diff - b.diff
	})

	nextIndex := slices.IndexFunc(candidates, func(candidate departureCandidate) bool {
		return !candidate.isPast
	})

	var selected []departureCandidate
	if nextIndex == -1 {
		// No upcoming departure at all - show the most recently missed ones.
		start := len(candidates) - maxCount
		if start < 0 {
			start = 0
		}
		selected = candidates[start:]
	} else {
		end := nextIndex + maxCount
		if end > len(candidates) {
			end = len(candidates)
		}
		selected = slices.Clone(candidates[nextIndex:end])

		for backfill := nextIndex - 1; backfill >= 0 && len(selected) < maxCount; backfill-- {
			selected = append([]departureCandidate{candidates[backfill]}, selected...)
		}
	}

	departures := make([]ProcessedDeparture, 0, len(selected))
	for _, candidate := range selected {
		departures = append(departures, ProcessedDeparture{
			Time:    candidate.time,
			IsToday: candidate.isToday,
		})
	}

	return departures
}
