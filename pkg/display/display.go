package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kajtavla/kajtavla/pkg/board"
	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/kajtavla/kajtavla/pkg/stats"
)

// Display runs the departure board on a terminal, recomputing the whole
// board every interval. Each refresh is independent - nothing carries over
// between ticks except the timetable itself.
type Display struct {
	Generator *board.Generator
	Stats     *stats.Collector
	Interval  time.Duration
	Out       io.Writer

	HighlightStop string
	ReturnStop    string
}

// Run refreshes immediately and then once per interval until the context
// is cancelled.
func (display *Display) Run(ctx context.Context) error {
	display.Refresh()

	ticker := time.NewTicker(display.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			display.Refresh()
		}
	}
}

// Refresh performs one full recomputation and renders it.
func (display *Display) Refresh() {
	startTime := time.Now()
	document := display.Generator.Generate()

	display.Stats.BoardGenerations.Inc()
	display.Stats.BoardDuration.Observe(time.Since(startTime).Seconds())
	display.Stats.RecordScheduleType(string(document.ScheduleType))

	display.Render(document)
}

// Render writes one board document as text.
func (display *Display) Render(document *board.BoardDocument) {
	fmt.Fprintf(display.Out, "%s · %s\n",
		document.ScheduleLabel,
		document.GeneratedAt.Format("2006-01-02 15:04"))

	hasTomorrow := false

	for _, routeBoard := range document.Routes {
		fmt.Fprintf(display.Out, "\n%s\n", routeBoard.RouteName)

		for _, stopBoard := range routeBoard.Stops {
			marker := "  "
			if stopBoard.Stop == display.HighlightStop || stopBoard.Stop == display.ReturnStop {
				marker = "> "
			}

			fmt.Fprintf(display.Out, "%s%-20s %s\n", marker, stopBoard.Stop, formatDepartures(stopBoard.Departures))

			for _, departure := range stopBoard.Departures {
				if !departure.IsToday {
					hasTomorrow = true
				}
			}
		}
	}

	if hasTomorrow {
		fmt.Fprintf(display.Out, "\n* avgår i morgon\n")
	}
}

func formatDepartures(departures []btdf.ProcessedDeparture) string {
	if len(departures) == 0 {
		return "inga avgångar"
	}

	formatted := make([]string, 0, len(departures))
	for _, departure := range departures {
		value := departure.Time.String()
		if !departure.IsToday {
			value += "*"
		}
		formatted = append(formatted, value)
	}

	return strings.Join(formatted, "  ")
}
