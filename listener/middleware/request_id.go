package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength caps inbound IDs so a caller cannot inflate every log line.
const maxRequestIDLength = 256

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the ID stored by RequestID, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// RequestID tags every request with an ID that ends up in the response header and in
// each log entry written for the request. A host that already traces its config reloads
// can pass its own ID in X-Request-ID; it is kept if it is printable ASCII of at most
// 256 bytes. Otherwise a time-ordered UUIDv7 is assigned.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !acceptRequestID(id) {
				id = newRequestID()
				r.Header.Set(RequestIDHeader, id)
			}

			w.Header().Set(RequestIDHeader, id)

			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

func acceptRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		slog.Warn("middleware: UUIDv7 unavailable, using random request ID", slog.Any("error", err))

		return uuid.NewString()
	}

	return id.String()
}
