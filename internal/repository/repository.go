// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or delete
// border and task rows, abstracting SQL logic away from the service
// layer.
package repository

import "errors"

// ErrNotFound is returned when a row lookup or a mutation targets an id
// that does not exist. The service layer translates it into the
// client-facing 404.
var ErrNotFound = errors.New("record not found")
