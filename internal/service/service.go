// Package service contains the business logic.
//
// It sits between the handler and repository layers: it performs the
// existence and ownership checks the store does not enforce, assembles
// response entities from explicit queries, and classifies missing rows
// into the client-facing not-found errors.
package service
