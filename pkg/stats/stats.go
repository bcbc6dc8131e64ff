package stats

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Collector tracks what the departure display is doing.
type Collector struct {
	registry *prometheus.Registry

	BoardGenerations  prometheus.Counter
	BoardDuration     prometheus.Histogram
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	ScheduleType      *prometheus.GaugeVec
	UpdateInterval    prometheus.Gauge
	VisibleDepartures prometheus.Gauge
}

func NewCollector(updateInterval time.Duration, maxVisibleDepartures int) *Collector {
	registry := prometheus.NewRegistry()

	collector := &Collector{
		registry: registry,
		BoardGenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kajtavla_board_generations_total",
			Help: "Total departure board recomputations.",
		}),
		BoardDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kajtavla_board_generation_duration_seconds",
			Help:    "Duration of a full board recomputation.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kajtavla_board_cache_hits_total",
			Help: "Board requests answered from the shared cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kajtavla_board_cache_misses_total",
			Help: "Board requests that required a recomputation.",
		}),
		ScheduleType: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kajtavla_schedule_type",
			Help: "1 for the schedule type currently in effect, 0 otherwise.",
		}, []string{"type"}),
		UpdateInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kajtavla_update_interval_seconds",
			Help: "Configured display refresh interval in seconds.",
		}),
		VisibleDepartures: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kajtavla_max_visible_departures",
			Help: "Configured departure list length per stop.",
		}),
	}

	registry.MustRegister(
		collector.BoardGenerations, collector.BoardDuration,
		collector.CacheHits, collector.CacheMisses,
		collector.ScheduleType,
		collector.UpdateInterval, collector.VisibleDepartures,
	)

	collector.UpdateInterval.Set(updateInterval.Seconds())
	collector.VisibleDepartures.Set(float64(maxVisibleDepartures))

	return collector
}

// RecordScheduleType flips the schedule type gauge to the given value.
func (collector *Collector) RecordScheduleType(scheduleType string) {
	for _, known := range []string{"weekday", "weekend"} {
		value := 0.0
		if known == scheduleType {
			value = 1.0
		}
		collector.ScheduleType.WithLabelValues(known).Set(value)
	}
}

func (collector *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(collector.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on the given address in the background.
func (collector *Collector) Serve(address string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	server := &http.Server{Addr: address, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Metrics server failed")
		}
	}()

	log.Info().Str("address", address).Msg("Metrics server listening")

	return server
}
