package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-data/internal/app"
	"github.com/MKhiriev/go-secure-data/internal/service"
	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/MKhiriev/go-secure-data/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidEvent:            http.StatusBadRequest,
	service.ErrMissingParameter:        http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	models.ErrUnsupportedAttributeType: http.StatusBadRequest,

	store.ErrAccessDenied:          http.StatusForbidden,
	store.ErrNotFound:              http.StatusNotFound,
	store.ErrAlreadyExists:         http.StatusConflict,
	store.ErrUnknownEntity:         http.StatusBadRequest,
	store.ErrUnknownAttribute:      http.StatusBadRequest,
	store.ErrInvalidAttributeValue: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var statusMessages = map[int]string{
	http.StatusBadRequest:   app.MsgInvalidDataProvided,
	http.StatusUnauthorized: app.MsgTokenIsExpiredOrInvalid,
	http.StatusForbidden:    app.MsgAccessDenied,
	http.StatusNotFound:     app.MsgNotFound,
	http.StatusConflict:     app.MsgAlreadyExists,

	http.StatusServiceUnavailable: app.MsgServiceUnavailable,
}

// statusFromError maps err to an HTTP status. Access-denied and unavailable
// errors win over the store failure they are reported with.
func statusFromError(err error) int {
	if errors.Is(err, store.ErrAccessDenied) {
		return http.StatusForbidden
	}
	if errors.Is(err, store.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status of err and a message that does not
// leak its details.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg, ok := statusMessages[status]
	if !ok {
		msg = app.MsgInternalServerError
	}
	http.Error(w, msg, status)
}
