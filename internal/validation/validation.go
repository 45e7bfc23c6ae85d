// Package validation contains the logic for validating request data.
//
// It binds incoming requests into typed payloads and enforces the
// rules declared in validator struct tags, translating failures into
// field-level errors the client can act on. Payloads that cannot be
// bound or that fail validation are rejected with 422 before any
// handler logic runs.
package validation
