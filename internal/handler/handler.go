// Package handler is the first entry point for business logic after
// the router.
//
// It binds and validates requests through the validation package,
// calls the appropriate service, and writes the JSON response. It acts
// as the interface between the HTTP request and the core business
// logic.
package handler
