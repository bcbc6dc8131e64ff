package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kajtavla/kajtavla/pkg/api"
	"github.com/kajtavla/kajtavla/pkg/board"
	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/kajtavla/kajtavla/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardPayload struct {
	ScheduleType  string `json:"scheduleType"`
	ScheduleLabel string `json:"scheduleLabel"`
	Routes        []struct {
		RouteID string `json:"routeId"`
		Stops   []struct {
			Stop        string `json:"stop"`
			Highlighted bool   `json:"highlighted"`
			Departures  []struct {
				Time    string `json:"time"`
				IsToday bool   `json:"isToday"`
			} `json:"departures"`
		} `json:"stops"`
	} `json:"routes"`
}

func testTimetable() *btdf.TimetableDocument {
	return &btdf.TimetableDocument{
		Metadata: &btdf.TimetableMetadata{
			Name:    "Sjövägen",
			Version: "2024.2",
		},
		Routes: []*btdf.Route{
			{
				ID:    "linje-80",
				Name:  "Linje 80",
				Stops: []string{"Nybroplan", "Allmänna gränd"},
				Schedules: map[btdf.ScheduleType]btdf.StopTimes{
					btdf.ScheduleTypeWeekday: {
						"Nybroplan":      {"06:30", "07:30", "08:30", "18:30"},
						"Allmänna gränd": {"06:50", "07:50", "08:50", "18:50"},
					},
					btdf.ScheduleTypeWeekend: {
						"Nybroplan": {"10:00", "17:00"},
					},
				},
			},
		},
	}
}

func testServer(highlightStop string) *fiber.App {
	// Tuesday 2024-04-02 07:45
	now := time.Date(2024, time.April, 2, 7, 45, 0, 0, time.UTC)
	timetable := testTimetable()

	return api.NewServer(&api.ServerEnv{
		Timetable:            timetable,
		Generator:            board.NewGenerator(timetable, 3, func() time.Time { return now }),
		Stats:                stats.NewCollector(time.Minute, 3),
		DefaultHighlightStop: highlightStop,
	})
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(response.Body).Decode(target))
	require.NoError(t, response.Body.Close())
}

func TestAPIVersion(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/version", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	var payload map[string]string
	decodeBody(t, response, &payload)
	assert.Equal(t, "v0.1", payload["version"])
}

func TestGetBoard(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/board", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	var payload boardPayload
	decodeBody(t, response, &payload)

	assert.Equal(t, "weekday", payload.ScheduleType)
	assert.Equal(t, "Vardagar", payload.ScheduleLabel)

	require.Len(t, payload.Routes, 1)
	assert.Equal(t, "linje-80", payload.Routes[0].RouteID)

	require.Len(t, payload.Routes[0].Stops, 2)
	nybroplan := payload.Routes[0].Stops[0]
	assert.Equal(t, "Nybroplan", nybroplan.Stop)
	assert.False(t, nybroplan.Highlighted)

	require.Len(t, nybroplan.Departures, 3)
	assert.Equal(t, "08:30", nybroplan.Departures[0].Time)
	assert.True(t, nybroplan.Departures[0].IsToday)
	assert.Equal(t, "06:30", nybroplan.Departures[2].Time)
	assert.False(t, nybroplan.Departures[2].IsToday)
}

func TestGetBoardHighlightQuery(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/board?highlight=Nybroplan", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	var payload boardPayload
	decodeBody(t, response, &payload)

	require.Len(t, payload.Routes, 1)
	require.Len(t, payload.Routes[0].Stops, 2)
	assert.True(t, payload.Routes[0].Stops[0].Highlighted)
	assert.False(t, payload.Routes[0].Stops[1].Highlighted)
}

func TestGetBoardDefaultHighlight(t *testing.T) {
	app := testServer("Allmänna gränd")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/board", nil), -1)
	require.NoError(t, err)

	var payload boardPayload
	decodeBody(t, response, &payload)

	require.Len(t, payload.Routes, 1)
	require.Len(t, payload.Routes[0].Stops, 2)
	assert.False(t, payload.Routes[0].Stops[0].Highlighted)
	assert.True(t, payload.Routes[0].Stops[1].Highlighted)
}

func TestGetRouteBoard(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/board/linje-80", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	var payload struct {
		RouteID string `json:"routeId"`
		Stops   []struct {
			Stop string `json:"stop"`
		} `json:"stops"`
	}
	decodeBody(t, response, &payload)

	assert.Equal(t, "linje-80", payload.RouteID)
	require.Len(t, payload.Stops, 2)
}

func TestGetRouteBoardNotFound(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/board/linje-99", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)

	var payload map[string]string
	decodeBody(t, response, &payload)
	assert.Equal(t, "Could not find Route matching Route Identifier", payload["error"])
}

func TestGetTimetable(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/timetable", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	var payload struct {
		Metadata struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"metadata"`
		Routes []struct {
			ID string `json:"id"`
		} `json:"routes"`
	}
	decodeBody(t, response, &payload)

	assert.Equal(t, "Sjövägen", payload.Metadata.Name)
	assert.Equal(t, "2024.2", payload.Metadata.Version)
	require.Len(t, payload.Routes, 1)
	assert.Equal(t, "linje-80", payload.Routes[0].ID)
}

func TestGetTimetableRoute(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/timetable/routes/linje-80", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, response.StatusCode)

	var payload struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, response, &payload)

	assert.Equal(t, "linje-80", payload.ID)
	assert.Equal(t, "Linje 80", payload.Name)
}

func TestGetTimetableRouteNotFound(t *testing.T) {
	app := testServer("")

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/timetable/routes/linje-99", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
}
