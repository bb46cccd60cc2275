package store

import "errors"

// Sentinel errors returned by repositories. Match with [errors.Is].
var (
	// ErrDiaryNotFound is returned when no diary exists for the user and date.
	ErrDiaryNotFound = errors.New("diary was not found")

	// ErrTemporarilyUnavailable wraps driver errors classified as
	// [Retryable]; the HTTP layer answers 503 for it.
	ErrTemporarilyUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
