package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	iso8601 "github.com/senseyeio/duration"

	_ "time/tzdata"
)

// Config is the explicit configuration value handed to each component.
// Every recognised option lives here rather than in globals.
type Config struct {
	// TimetableSource is a local path or HTTP URL to the published timetable.
	TimetableSource string

	// MaxVisibleDepartures bounds the departure list shown per stop.
	MaxVisibleDepartures int

	// UpdateInterval is the display refresh period.
	UpdateInterval time.Duration

	// HighlightStop and ReturnStop are display-only concerns: which stop to
	// emphasise and which opposite-direction stop to show alongside it.
	HighlightStop string
	ReturnStop    string

	// MetricsAddress exposes prometheus metrics when set, e.g. ":9102".
	MetricsAddress string

	// RedisAddress enables the shared board cache when set.
	RedisAddress  string
	RedisPassword string
	RedisDatabase int

	// Location is the timezone the timetable is published in.
	Location *time.Location
}

const (
	DefaultMaxVisibleDepartures = 9
	DefaultUpdateInterval       = time.Minute
	DefaultTimetableSource      = "timetable.yaml"
	DefaultTimezone             = "Europe/Stockholm"
)

// Load builds a Config from the environment, with optional .env support.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TimetableSource:      getenvDefault("KAJTAVLA_TIMETABLE", DefaultTimetableSource),
		MaxVisibleDepartures: DefaultMaxVisibleDepartures,
		UpdateInterval:       DefaultUpdateInterval,
		HighlightStop:        os.Getenv("KAJTAVLA_HIGHLIGHT_STOP"),
		ReturnStop:           os.Getenv("KAJTAVLA_RETURN_STOP"),
		MetricsAddress:       os.Getenv("KAJTAVLA_METRICS_ADDRESS"),
		RedisAddress:         os.Getenv("KAJTAVLA_REDIS_ADDRESS"),
		RedisPassword:        os.Getenv("KAJTAVLA_REDIS_PASSWORD"),
	}

	if value := os.Getenv("KAJTAVLA_MAX_VISIBLE_DEPARTURES"); value != "" {
		count, err := strconv.Atoi(value)
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid KAJTAVLA_MAX_VISIBLE_DEPARTURES: %q", value)
		}
		cfg.MaxVisibleDepartures = count
	}

	// Update interval is an ISO8601 duration, e.g. PT1M or PT30S
	if value := os.Getenv("KAJTAVLA_UPDATE_INTERVAL"); value != "" {
		interval, err := parseISO8601Interval(value)
		if err != nil {
			return nil, err
		}
		cfg.UpdateInterval = interval
	}

	if value := os.Getenv("KAJTAVLA_REDIS_DATABASE"); value != "" {
		database, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid KAJTAVLA_REDIS_DATABASE: %q", value)
		}
		cfg.RedisDatabase = database
	}

	timezone := getenvDefault("KAJTAVLA_TIMEZONE", DefaultTimezone)
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid KAJTAVLA_TIMEZONE: %q", timezone)
	}
	cfg.Location = location

	return cfg, nil
}

// Now returns the current wall clock time in the timetable's timezone. The
// engine itself never reads the clock - callers pass this value in, so tests
// can substitute any instant they like.
func (cfg *Config) Now() time.Time {
	return time.Now().In(cfg.Location)
}

func parseISO8601Interval(value string) (time.Duration, error) {
	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("invalid KAJTAVLA_UPDATE_INTERVAL: %q", value)
	}

	reference := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	interval := parsed.Shift(reference).Sub(reference)
	if interval <= 0 {
		return 0, fmt.Errorf("KAJTAVLA_UPDATE_INTERVAL must be positive, got %q", value)
	}

	return interval, nil
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
