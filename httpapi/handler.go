package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"
	"github.com/0xalexb/hjarta-modelconfig/listener/middleware"

	"github.com/goccy/go-yaml"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ErrNilSource is returned by NewHandler when no configuration source is given.
var ErrNilSource = errors.New("configuration source must not be nil")

// Source is the read side of the model configuration accessor.
type Source interface {
	Get(key string) (any, error)
	Document() (any, error)
}

type options struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	timeout       time.Duration
}

// Option configures NewHandler.
type Option func(*options)

// WithLogger sets the logger used for access and error logs. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider. Defaults to the global provider.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = provider
	}
}

// WithTimeout bounds each request. Defaults to middleware.DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

type handler struct {
	source  Source
	logger  *slog.Logger
	metrics *lookupMetrics
}

// NewHandler builds the inspection handler wrapped in the middleware chain.
func NewHandler(source Source, opts ...Option) (http.Handler, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	cfg := options{timeout: middleware.DefaultTimeout}

	for _, apply := range opts {
		apply(&cfg)
	}

	if cfg.meterProvider == nil {
		cfg.meterProvider = otel.GetMeterProvider()
	}

	metrics, err := newLookupMetrics(cfg.meterProvider)
	if err != nil {
		return nil, err
	}

	h := &handler{
		source:  source,
		logger:  cfg.logger,
		metrics: metrics,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("GET /v1/config", h.document)
	mux.HandleFunc("GET /v1/config/{key...}", h.lookup)

	var wrapped http.Handler = mux
	wrapped = middleware.Timeout(cfg.timeout)(wrapped)
	wrapped = middleware.Logging(cfg.logger)(wrapped)
	wrapped = middleware.Recovery(cfg.logger)(wrapped)
	wrapped = middleware.RequestID()(wrapped)

	return wrapped, nil
}

type lookupResponse struct {
	Key   string `json:"key"   yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

type errorResponse struct {
	Error string `json:"error" yaml:"error"`
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) document(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	document, err := h.source.Document()
	if err != nil {
		h.fail(w, r, start, err)

		return
	}

	h.metrics.record(r.Context(), OutcomeFound, time.Since(start))
	h.render(w, r, http.StatusOK, document)
}

func (h *handler) lookup(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	key := r.PathValue("key")

	value, err := h.source.Get(key)
	if err != nil {
		h.fail(w, r, start, err)

		return
	}

	h.metrics.record(r.Context(), OutcomeFound, time.Since(start))
	h.render(w, r, http.StatusOK, lookupResponse{Key: key, Value: value})
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	status := http.StatusInternalServerError
	outcome := OutcomeError

	switch {
	case errors.Is(err, modelconfig.ErrConfigKeyNotFound):
		status = http.StatusNotFound
		outcome = OutcomeMissing
	case errors.Is(err, modelconfig.ErrConfigParse):
		outcome = OutcomeParseError
	}

	h.metrics.record(r.Context(), outcome, time.Since(start))

	if status >= http.StatusInternalServerError {
		h.log().ErrorContext(r.Context(), "configuration lookup failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.Any("error", err))
	}

	h.render(w, r, status, errorResponse{Error: err.Error()})
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, contentType, err := encode(r.URL.Query().Get("format"), payload)
	if err != nil {
		h.log().ErrorContext(r.Context(), "encoding response failed", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *handler) log() *slog.Logger {
	if h.logger != nil {
		return h.logger
	}

	return slog.Default()
}

func encode(format string, payload any) ([]byte, string, error) {
	if format == "yaml" {
		body, err := yaml.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("encoding YAML: %w", err)
		}

		return body, "application/yaml", nil
	}

	var buf bytes.Buffer

	err := json.NewEncoder(&buf).Encode(payload)
	if err != nil {
		return nil, "", fmt.Errorf("encoding JSON: %w", err)
	}

	return buf.Bytes(), "application/json", nil
}
