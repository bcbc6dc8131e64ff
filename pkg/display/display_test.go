package display_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/kajtavla/kajtavla/pkg/board"
	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/kajtavla/kajtavla/pkg/config"
	"github.com/kajtavla/kajtavla/pkg/display"
	"github.com/kajtavla/kajtavla/pkg/stats"
	"github.com/stretchr/testify/assert"
)

func testTimetable() *btdf.TimetableDocument {
	return &btdf.TimetableDocument{
		Metadata: &btdf.TimetableMetadata{Name: "Sjövägen", Version: "2024.2"},
		Routes: []*btdf.Route{
			{
				ID:    "linje-80",
				Name:  "Linje 80",
				Stops: []string{"Nybroplan", "Allmänna gränd"},
				Schedules: map[btdf.ScheduleType]btdf.StopTimes{
					btdf.ScheduleTypeWeekday: {
						"Nybroplan":      {"06:30", "23:45"},
						"Allmänna gränd": {"06:50"},
					},
				},
			},
		},
	}
}

func TestRefreshRendersBoard(t *testing.T) {
	// Tuesday 2024-04-02, late evening so the early sailing wraps to tomorrow
	now := time.Date(2024, time.April, 2, 23, 50, 0, 0, time.UTC)

	var out bytes.Buffer
	boardDisplay := &display.Display{
		Generator:     board.NewGenerator(testTimetable(), 3, func() time.Time { return now }),
		Stats:         stats.NewCollector(config.DefaultUpdateInterval, 3),
		Interval:      config.DefaultUpdateInterval,
		Out:           &out,
		HighlightStop: "Nybroplan",
	}

	boardDisplay.Refresh()

	rendered := out.String()
	assert.Contains(t, rendered, "Linje 80")
	assert.Contains(t, rendered, "> Nybroplan")
	assert.Contains(t, rendered, "06:30*", "tomorrow departures carry the wrap marker")
	assert.Contains(t, rendered, "avgår i morgon")
	assert.Contains(t, rendered, "Vardagar")
}

func TestRenderEmptyStop(t *testing.T) {
	timetable := testTimetable()
	timetable.Routes[0].Schedules[btdf.ScheduleTypeWeekday]["Allmänna gränd"] = nil

	now := time.Date(2024, time.April, 2, 12, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	boardDisplay := &display.Display{
		Generator: board.NewGenerator(timetable, 3, func() time.Time { return now }),
		Stats:     stats.NewCollector(config.DefaultUpdateInterval, 3),
		Interval:  config.DefaultUpdateInterval,
		Out:       &out,
	}

	boardDisplay.Refresh()

	assert.Contains(t, out.String(), "inga avgångar")
}
