// Package errs defines the error types returned to API clients.
//
// Handlers and services return *HTTPError values; the global error
// handler serializes them as a JSON body with a short human-readable
// detail message, plus per-field errors for validation failures.
package errs
