// Package database provides document-store connectivity for the Yookve API.
//
// The package abstracts SurrealDB behind the Store interface so the
// repository layer can address records as (table, id) documents without
// knowing about the underlying query protocol.
//
// # Store Interface
//
// The Store interface defines core operations:
//
//	type Store interface {
//	    Get(ctx context.Context, table, id string) (Document, error)
//	    Put(ctx context.Context, table, id string, doc Document) error
//	    Merge(ctx context.Context, table, id string, fields Document) error
//	    Delete(ctx context.Context, table, id string) (bool, error)
//	    Select(ctx context.Context, query string, vars map[string]interface{}) ([]Document, error)
//	    Count(ctx context.Context, table string) (int, error)
//	    EnsureTable(ctx context.Context, table string) error
//	}
//
// # Connection Management
//
// Connect to SurrealDB:
//
//	store := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "yookve",
//	    Database:  "main",
//	    User:      "root",
//	    Password:  "secret",
//	})
//	err := store.Connect(ctx)
//
// # Error Types
//
// Standard error types for data operations:
//
//   - ErrNotFound: Document does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Store connection failed
//   - ErrQuery: Query execution failed
package database
