package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoveredMessage is the error text returned when a handler panics.
const RecoveredMessage = "internal server error"

// Recovery returns a middleware that turns a panic in a downstream handler into
// a 500 response with a JSON error body. The panic value and stack are logged at
// Error together with the request ID. When the handler had already started its
// response, only the log entry is written. http.ErrAbortHandler is re-raised so
// net/http can drop the connection.
// A nil logger resolves to slog.Default().
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newResponseRecorder(w)

			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				if recovered == http.ErrAbortHandler { //nolint:errorlint,err113 // sentinel compared by identity in net/http
					panic(recovered)
				}

				attrs := append(requestAttrs(r),
					slog.String("panic", fmt.Sprint(recovered)),
					slog.String("stack", string(debug.Stack())),
					slog.Bool("response_started", rec.started()),
				)

				loggerOrDefault(logger).LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !rec.started() {
					writeJSONError(rec, http.StatusInternalServerError, RecoveredMessage)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
