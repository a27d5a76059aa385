package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request when no positive duration is given.
const DefaultTimeout = 5 * time.Second

// TimeoutMessage is the error text returned when a request exceeds its deadline.
const TimeoutMessage = "request timed out"

// timeoutBody is encoded once, http.TimeoutHandler only takes a fixed string.
const timeoutBody = `{"error":"` + TimeoutMessage + `"}` + "\n"

// Timeout returns a middleware that bounds how long a lookup may take, including
// the file read and parse. A request over the deadline gets 503 with a JSON error
// body and its context is cancelled. A non-positive duration falls back to
// DefaultTimeout with a warning.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	if duration <= 0 {
		slog.Warn("middleware: timeout must be positive, using default",
			slog.Duration("provided", duration), slog.Duration("default", DefaultTimeout))

		duration = DefaultTimeout
	}

	return func(next http.Handler) http.Handler {
		bounded := http.TimeoutHandler(next, duration, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Completed responses replace this with the handler's own Content-Type.
			w.Header().Set("Content-Type", "application/json")

			bounded.ServeHTTP(w, r)
		})
	}
}
