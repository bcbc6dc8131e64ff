package board

import (
	"time"

	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
	"golang.org/x/exp/slices"
)

// StopBoard is the rendered departure list for a single stop.
type StopBoard struct {
	Stop        string                    `json:"stop" groups:"basic"`
	Highlighted bool                      `json:"highlighted" groups:"basic"`
	Departures  []btdf.ProcessedDeparture `json:"departures" groups:"basic"`
}

type RouteBoard struct {
	RouteID   string      `json:"routeId" groups:"basic"`
	RouteName string      `json:"routeName" groups:"basic"`
	Stops     []StopBoard `json:"stops" groups:"basic"`
}

// BoardDocument is one full refresh of the departure display.
type BoardDocument struct {
	GeneratedAt   time.Time         `json:"generatedAt" groups:"basic"`
	ScheduleType  btdf.ScheduleType `json:"scheduleType" groups:"basic"`
	ScheduleLabel string            `json:"scheduleLabel" groups:"basic"`
	Routes        []RouteBoard      `json:"routes" groups:"basic"`
}

// Generator turns the static timetable into board documents. It keeps no
// state between Generate calls, so overlapping refreshes cannot corrupt
// each other.
type Generator struct {
	Timetable            *btdf.TimetableDocument
	MaxVisibleDepartures int
	Clock                func() time.Time
}

func NewGenerator(timetable *btdf.TimetableDocument, maxVisibleDepartures int, clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}

	return &Generator{
		Timetable:            timetable,
		MaxVisibleDepartures: maxVisibleDepartures,
		Clock:                clock,
	}
}

// Generate performs one full recomputation: resolve the schedule type for
// now, then select the visible departures for every stop of every route.
func (generator *Generator) Generate() *BoardDocument {
	now := generator.Clock()
	scheduleType := btdf.ScheduleTypeFor(now, generator.Timetable)
	nowTimeOfDay := btdf.TimeOfDayFromTime(now)

	routes := iter.Map(generator.Timetable.Routes, func(route **btdf.Route) RouteBoard {
		return generator.generateRoute(*route, scheduleType, nowTimeOfDay)
	})

	return &BoardDocument{
		GeneratedAt:   now,
		ScheduleType:  scheduleType,
		ScheduleLabel: scheduleType.DisplayLabel(),
		Routes:        routes,
	}
}

func (generator *Generator) generateRoute(route *btdf.Route, scheduleType btdf.ScheduleType, now btdf.TimeOfDay) RouteBoard {
	routeBoard := RouteBoard{
		RouteID:   route.ID,
		RouteName: route.Name,
	}

	for _, stop := range stopsInOrder(route, scheduleType) {
		rawTimes := route.TimesFor(scheduleType, stop)

		times := make([]btdf.TimeOfDay, 0, len(rawTimes))
		for _, value := range rawTimes {
			timeOfDay, err := btdf.ParseTimeOfDay(value)
			if err != nil {
				log.Warn().Err(err).
					Str("route", route.ID).
					Str("stop", stop).
					Msg("Skipping unparseable departure time")
				continue
			}

			times = append(times, timeOfDay)
		}

		routeBoard.Stops = append(routeBoard.Stops, StopBoard{
			Stop:       stop,
			Departures: btdf.ProcessScheduleTimes(times, now, generator.MaxVisibleDepartures),
		})
	}

	return routeBoard
}

// stopsInOrder returns the route's stops in sailing order. Routes published
// without an explicit stop list fall back to the schedule's keys, sorted for
// a deterministic board.
func stopsInOrder(route *btdf.Route, scheduleType btdf.ScheduleType) []string {
	if len(route.Stops) > 0 {
		return route.Stops
	}

	if route.Schedules == nil {
		return nil
	}

	stops := make([]string, 0, len(route.Schedules[scheduleType]))
	for stop := range route.Schedules[scheduleType] {
		stops = append(stops, stop)
	}
	slices.Sort(stops)

	return stops
}
