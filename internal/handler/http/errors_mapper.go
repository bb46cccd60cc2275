package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/internal/validators"
)

// errorStatuses is checked in order; the first match wins. More specific
// errors come before the ones that wrap them.
var errorStatuses = []struct {
	target error
	status int
}{
	{validators.ErrContentTooLarge, http.StatusRequestEntityTooLarge},
	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrValidationNoUserID, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},

	{store.ErrDiaryNotFound, http.StatusNotFound},
	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
