// Package middleware contains the Echo middleware stack: request id
// issuance, request-scoped logger enrichment, global middlewares
// (CORS, logging, recovery, secure headers) with the global error
// handler, and optional New Relic tracing.
package middleware
