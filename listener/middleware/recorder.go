package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// responseRecorder tracks what a handler sent through the wrapped ResponseWriter.
// The inspection handler only writes small, complete bodies, so streaming and
// hijacking are not passed through.
type responseRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{ResponseWriter: w}
}

func (r *responseRecorder) WriteHeader(code int) {
	if r.status != 0 {
		return
	}

	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}

	n, err := r.ResponseWriter.Write(b)
	r.bytes += n

	return n, err //nolint:wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *responseRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *responseRecorder) started() bool {
	return r.status != 0
}

// statusOrOK reports 200 for handlers that returned without writing anything.
func (r *responseRecorder) statusOrOK() int {
	if r.status == 0 {
		return http.StatusOK
	}

	return r.status
}

type errorBody struct {
	Error string `json:"error"`
}

// writeJSONError sends the same {"error": ...} body the inspection API uses.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}

	return slog.Default()
}

func requestAttrs(r *http.Request) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}

	if reqID := GetRequestID(r.Context()); reqID != "" {
		attrs = append(attrs, slog.String("request_id", reqID))
	}

	return attrs
}
