// Package httpapi exposes read-only model configuration lookups over HTTP.
//
// Routes:
//
//	GET /healthz            liveness, always "ok"
//	GET /v1/config          the whole document
//	GET /v1/config/{key}    {"key": ..., "value": ...} for a top-level key
//
// Responses are JSON unless the request asks for ?format=yaml. Every request
// re-reads the configuration file through the accessor.
package httpapi
