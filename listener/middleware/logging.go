package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging returns a middleware that writes one access log entry per request:
// method, path, query, status, response size, duration and request ID.
// Successful lookups log at Info, client errors such as a missing key at Warn,
// and server errors such as an unparsable file at Error.
// A nil logger resolves to slog.Default() on every request.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newResponseRecorder(w)

			next.ServeHTTP(rec, r)

			status := rec.statusOrOK()

			attrs := requestAttrs(r)
			if r.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", r.URL.RawQuery))
			}

			attrs = append(attrs,
				slog.Int("status", status),
				slog.Int("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)

			loggerOrDefault(logger).LogAttrs(r.Context(), levelFor(status), "http request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
