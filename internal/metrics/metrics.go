// Package metrics описывает Prometheus-метрики сервиса маршрутов
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы построения маршрута
const (
	RouteOutcomeOK      = "ok"
	RouteOutcomeEmpty   = "empty"
	RouteOutcomeNoEntry = "no_entry"
)

var (
	// HTTP
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "route_service_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_service_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// Catalog
	CatalogPlaces = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "route_service_catalog_places",
			Help: "Number of places in the loaded catalog",
		},
	)

	CatalogEntryPoints = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "route_service_catalog_entry_points",
			Help: "Number of entry points in the loaded catalog",
		},
	)

	FilterMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_service_filter_matches",
			Help:    "Number of places matched by a filter query",
			Buckets: []float64{0, 1, 3, 5, 10, 25, 50, 100, 250},
		},
	)

	FilterCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "route_service_filter_cache_hits_total",
			Help: "Total number of filter memo hits",
		},
	)

	FilterCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "route_service_filter_cache_misses_total",
			Help: "Total number of filter memo misses",
		},
	)

	// Routes
	RoutesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_service_routes_total",
			Help: "Total number of route requests by outcome and movement",
		},
		[]string{"outcome", "movement"},
	)

	RouteStops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_service_route_stops",
			Help:    "Number of stops in a planned route including the entry point",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8},
		},
	)

	RouteDistanceKm = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_service_route_distance_km",
			Help:    "Straight-line length of planned routes in kilometers",
			Buckets: []float64{0.5, 1, 2, 3, 5, 8, 13, 20},
		},
	)

	// Events
	EventPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "route_service_event_publish_failures_total",
			Help: "Total number of route events that could not be published",
		},
	)

	WorkerMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "route_service_worker_messages_total",
			Help: "Total number of stream messages handled by the stats worker",
		},
		[]string{"result"}, // "recorded", "invalid", "failed"
	)
)

// RecordHTTPRequest учитывает один HTTP-запрос
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
}

// SetCatalogSize выставляет размер загруженного каталога
func SetCatalogSize(places, entries int) {
	CatalogPlaces.Set(float64(places))
	CatalogEntryPoints.Set(float64(entries))
}

// RecordFilter учитывает результат фильтра и попадание в memo
func RecordFilter(matches int, cacheHit bool) {
	FilterMatches.Observe(float64(matches))
	if cacheHit {
		FilterCacheHits.Inc()
	} else {
		FilterCacheMisses.Inc()
	}
}

// RecordRoute учитывает исход построения маршрута
func RecordRoute(outcome, movement string, stops int, distanceKm float64) {
	RoutesTotal.WithLabelValues(outcome, movement).Inc()
	if outcome == RouteOutcomeOK {
		RouteStops.Observe(float64(stops))
		RouteDistanceKm.Observe(distanceKm)
	}
}
