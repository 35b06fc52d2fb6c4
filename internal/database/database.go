// Package database provides the document-store abstraction layer for Yookve.
//
// This package defines the Store interface that abstracts SurrealDB operations,
// allowing for clean separation between business logic and data access.
//
// # Interface Design
//
// The Store interface treats SurrealDB as a document store keyed by
// (table, id). Documents are plain map[string]interface{} values; the
// repository layer owns the mapping between documents and domain entities.
//
//   - Get/Put/Merge/Delete: single-document operations addressed by id
//   - Select: store-native queries for filtered and ordered lookups
//   - Count: table cardinality (used by the startup seeder)
//   - EnsureTable: creates a table if it does not exist yet
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Document does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing document
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate id).
	ErrDuplicate = errors.New("duplicate document")

	// ErrConnection indicates a failure to connect to or communicate with the store.
	ErrConnection = errors.New("store connection error")

	// ErrQuery indicates a query execution failure (syntax error, invalid reference, etc.).
	ErrQuery = errors.New("query error")
)

// Document is a schemaless record as stored and returned by the store.
type Document = map[string]interface{}

// Store defines the interface for document-store operations
type Store interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// EnsureTable creates the table if it does not exist yet
	EnsureTable(ctx context.Context, table string) error

	// Get retrieves a single document by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, table, id string) (Document, error)

	// Put stores a document under the given id
	Put(ctx context.Context, table, id string, doc Document) error

	// Merge applies a partial-field update to an existing document
	Merge(ctx context.Context, table, id string, fields Document) error

	// Delete removes a document. Reports whether a document was removed.
	Delete(ctx context.Context, table, id string) (bool, error)

	// Select executes a store-native query and returns matching documents
	Select(ctx context.Context, query string, vars map[string]interface{}) ([]Document, error)

	// Count returns the number of documents in a table
	Count(ctx context.Context, table string) (int, error)
}

// Config holds store configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
