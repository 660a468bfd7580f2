// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
//
// Query handlers bypass the domain repositories and read directly from the
// database with raw SQL, returning denormalized read models (joined display
// strings, aggregate counts) shaped for the HTTP layer. Queries never open
// transactions and never mutate state.
package queries
