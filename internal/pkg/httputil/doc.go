// Package httputil provides shared HTTP response helpers for the lead-capture
// handlers.
//
// Handlers use these helpers instead of raw http.ResponseWriter calls so every
// endpoint returns the same JSON envelope and never leaks internal errors.
package httputil
