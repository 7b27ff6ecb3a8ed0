package model

import "errors"

// ClickUp API errors.
var (
	// ErrRateLimited indicates the ClickUp API returned 429.
	ErrRateLimited = errors.New("clickup API rate limit exceeded")

	// ErrUnauthorized indicates an invalid or expired token.
	ErrUnauthorized = errors.New("clickup token invalid or expired")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found in clickup")

	// ErrTimeout indicates the request to ClickUp timed out.
	ErrTimeout = errors.New("clickup request timed out")

	// ErrInvalidResponse indicates the API answered with an unparseable body.
	ErrInvalidResponse = errors.New("invalid response from clickup API")

	// ErrNoTeams indicates the token has no workspace to query.
	ErrNoTeams = errors.New("no clickup teams available for this token")
)

// Configuration validation errors. All of them surface before any
// aggregation work begins.
var (
	ErrInvalidHourlyRate  = errors.New("hourly rate must be positive")
	ErrInvalidTaxRate     = errors.New("tax rate must be within [0,1)")
	ErrInvalidRounding    = errors.New("rounding granularity must not be negative")
	ErrInvalidPrecision   = errors.New("precision out of range")
	ErrUnknownSortOrder   = errors.New("unknown sort order")
	ErrUnknownDisplayMode = errors.New("unknown display mode")
	ErrInvalidTimezone    = errors.New("unknown timezone")
	ErrInvalidPeriod      = errors.New("invalid report period")
	ErrMissingToken       = errors.New("CLICKUP_TOKEN is not configured")
)
