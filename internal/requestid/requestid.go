// Package requestid assigns each inbound request a UUID and carries it
// through the context so upstream calls can be correlated in logs.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the correlation header exchanged with clients and forwarded
// to the upstream booking API.
const Header = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// FromContext returns the request id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// Middleware reuses an incoming X-Request-ID when present, otherwise
// generates one, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
