package btdf

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// TimetableDocument is the published timetable for the boat lines. It is
// validated once at the boundary and treated as read only afterwards - the
// engine never mutates it and keeps no derived state between refreshes.
type TimetableDocument struct {
	Metadata *TimetableMetadata `yaml:"metadata" json:"metadata" groups:"basic"`
	Routes   []*Route           `yaml:"routes" json:"routes" groups:"basic"`
}

type TimetableMetadata struct {
	Name       string `yaml:"name" json:"name" groups:"basic"`
	Version    string `yaml:"version" json:"version" groups:"basic"`
	ValidFrom  string `yaml:"validFrom" json:"validFrom" groups:"basic"`
	ValidUntil string `yaml:"validUntil" json:"validUntil" groups:"basic"`
}

type Route struct {
	ID   string `yaml:"id" json:"id" groups:"basic"`
	Name string `yaml:"name" json:"name" groups:"basic"`

	// Stops lists the stop names in sailing order for display purposes.
	Stops []string `yaml:"stops" json:"stops" groups:"basic"`

	Schedules map[ScheduleType]StopTimes `yaml:"schedules" json:"schedules" groups:"basic"`
}

// StopTimes maps a stop name to its published departure times, in the
// order they appear in the timetable.
type StopTimes map[string][]string

// Validate checks the structural requirements of a freshly loaded document.
// A document failing here must not reach the schedule engine at all.
func (document *TimetableDocument) Validate() error {
	if document.Metadata == nil {
		return errors.New("timetable document is missing the metadata section")
	}

	if document.Metadata.Version == "" {
		return errors.New("timetable metadata is missing a version")
	}

	if len(document.Routes) == 0 {
		return errors.New("timetable document contains no routes")
	}

	for index, route := range document.Routes {
		if route == nil || route.ID == "" {
			return fmt.Errorf("timetable route at index %d is missing an id", index)
		}
	}

	return nil
}

// CheckValidity warns when the document's validity period has elapsed.
// A stale timetable keeps being displayed, it just gets flagged.
func (document *TimetableDocument) CheckValidity(now time.Time) {
	if document.Metadata.ValidUntil == "" {
		return
	}

	validUntil, err := time.Parse(YearMonthDayFormat, document.Metadata.ValidUntil)
	if err != nil {
		log.Warn().Err(err).Msg("Could not parse timetable validity period")
		return
	}

	if now.After(validUntil.AddDate(0, 0, 1)) {
		log.Warn().
			Str("validuntil", document.Metadata.ValidUntil).
			Str("version", document.Metadata.Version).
			Msg("Timetable validity period has elapsed")
	}
}

// GetRoute returns the route with the given ID, or nil.
func (document *TimetableDocument) GetRoute(id string) *Route {
	for _, route := range document.Routes {
		if route != nil && route.ID == id {
			return route
		}
	}

	return nil
}

// TimesFor returns the published departure times for a stop under a
// schedule type. A route without that schedule section, or without the
// stop, simply contributes no times.
func (route *Route) TimesFor(scheduleType ScheduleType, stop string) []string {
	if route == nil || route.Schedules == nil {
		return nil
	}

	return route.Schedules[scheduleType][stop]
}

// LatestDeparture returns the latest time of day found across every stop of
// every route for the schedule type. The boolean is false when the document
// holds no parseable time at all for that schedule type.
func (document *TimetableDocument) LatestDeparture(scheduleType ScheduleType) (TimeOfDay, bool) {
	var latest TimeOfDay
	found := false

	for _, route := range document.Routes {
		if route == nil || route.Schedules == nil {
			continue
		}

		for stop, times := range route.Schedules[scheduleType] {
			for _, value := range times {
				timeOfDay, err := ParseTimeOfDay(value)
				if err != nil {
					log.Warn().Err(err).
						Str("route", route.ID).
						Str("stop", stop).
						Msg("Skipping unparseable departure time")
					continue
				}

				if !found || timeOfDay > latest {
					latest = timeOfDay
					found = true
				}
			}
		}
	}

	return latest, found
}
