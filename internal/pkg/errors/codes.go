package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrNoEntryPoint = New(
		"NO_ENTRY_POINT",
		"Catalog has no entry points to start a route from",
		http.StatusServiceUnavailable,
	)

	ErrCatalogUnavailable = New(
		"CATALOG_UNAVAILABLE",
		"Catalog is not loaded",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStatsUnavailable = New(
		"STATS_UNAVAILABLE",
		"Route statistics are not available",
		http.StatusServiceUnavailable,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
