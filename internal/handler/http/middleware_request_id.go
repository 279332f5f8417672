package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-feed-client/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// withRequestID reuses the caller's X-Request-ID, so a replayed client
// request keeps its id in the server log, or generates one. The id is echoed
// back and attached to the request logger.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		ctx := utils.WithRequestID(l.WithContext(r.Context()), requestID)

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
