package http

import (
	"net/http"

	"github.com/MKhiriev/population-dashboard/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the X-Trace-ID of the request or generates one, echoes
// it in the response and stores a logger carrying it in the request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
