package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the trace ID across service hops: a caller that
// sets it (for example the course service calling the payment service)
// keeps one trace ID across both services' logs.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with a trace ID, reusing the caller's when
// present and minting a fresh UUID otherwise. The ID is stamped on the
// request-scoped logger and echoed in the response header so callers can
// correlate rejections with server logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
