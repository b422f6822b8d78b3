// Package validation turns raw request bodies into normalized, typed inputs
// for each lead endpoint.
//
// Each Parse* function returns either a validated input or a *Error carrying
// one failure Code. Callers map the code to an HTTP status; nothing here
// panics or returns untyped errors.
package validation
