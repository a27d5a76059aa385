// Package middleware provides the HTTP middleware chain wrapped around the model config inspection handler:
// request IDs, access logging, panic recovery and per-request deadlines.
package middleware
