package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of a body.
const hashHeader = "HashSHA256"

// withHashing checks the HashSHA256 header of the request body when the
// caller sent one and signs the response body the same way. It is a
// pass-through when no hash key is configured.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	if h.hashKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if sent := r.Header.Get(hashHeader); sent != "" {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !utils.Verify(body, sent) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", sent).
					Msg("hashes are not equal")
				http.Error(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		w.Header().Set(hashHeader, utils.Sign(hw.body.Bytes()))
		w.WriteHeader(hw.status)
		if _, err := w.Write(hw.body.Bytes()); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response body")
		}
	})
}

// hashingResponseWriter holds the response back until the body is complete
// so it can be signed before anything is sent.
type hashingResponseWriter struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
