package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-secure-data/internal/store"
	"github.com/go-resty/resty/v2"
)

// statusErrors is the reverse of the gateway's error-to-status mapping.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           store.ErrAccessDenied,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  store.ErrUnavailable,
}

// mapHTTPError returns nil for 2xx responses. Other statuses become the
// matching sentinel with the response body as detail.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	if detail == "" {
		detail = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, detail)
}
