// Package sqlerr specifically handles database driver errors.
//
// It parses error codes from the PostgreSQL driver and converts them
// into user-friendly HTTP errors (e.g. converting a foreign key
// violation into a Bad Request with a readable message).
package sqlerr
