package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"backoffice/internal/requestctx"
)

const requestIDHeader = "X-Request-ID"

// Inbound ids longer than this are replaced rather than echoed, so a
// client cannot stuff arbitrary payloads into logs.
const maxRequestIDLen = 64

// RequestID tags every request with an id, honoring a well-formed
// inbound header so ids survive across proxies. The id is echoed back
// on the response and threaded through the context for log lines and
// response envelopes.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), id)))
	})
}

func GetRequestID(ctx context.Context) string {
	return requestctx.GetRequestID(ctx)
}
