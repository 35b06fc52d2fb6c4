package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB implements the Store interface for SurrealDB
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB instance
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Sign in as root user
	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	// Use namespace and database
	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the store connection
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the store connection
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	// Execute a simple query to verify connection
	_, err := s.db.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// EnsureTable creates the table if it does not exist yet.
// Table names are internal constants, never user input.
func (s *SurrealDB) EnsureTable(ctx context.Context, table string) error {
	query := fmt.Sprintf("DEFINE TABLE IF NOT EXISTS %s SCHEMALESS", table)
	_, err := s.query(ctx, query, nil)
	return err
}

// Get retrieves a single document by id
func (s *SurrealDB) Get(ctx context.Context, table, id string) (Document, error) {
	rows, err := s.query(ctx, `SELECT * FROM type::thing($tb, $id)`, map[string]interface{}{
		"tb": table,
		"id": id,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Put stores a document under the given id
func (s *SurrealDB) Put(ctx context.Context, table, id string, doc Document) error {
	_, err := s.query(ctx, `CREATE type::thing($tb, $id) CONTENT $doc`, map[string]interface{}{
		"tb":  table,
		"id":  id,
		"doc": doc,
	})
	if err != nil && isUniqueConstraintError(err) {
		return fmt.Errorf("%w: %s:%s", ErrDuplicate, table, id)
	}
	return err
}

// Merge applies a partial-field update to an existing document
func (s *SurrealDB) Merge(ctx context.Context, table, id string, fields Document) error {
	rows, err := s.query(ctx, `UPDATE type::thing($tb, $id) MERGE $fields`, map[string]interface{}{
		"tb":     table,
		"id":     id,
		"fields": fields,
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document. Reports whether a document was removed.
func (s *SurrealDB) Delete(ctx context.Context, table, id string) (bool, error) {
	rows, err := s.query(ctx, `DELETE type::thing($tb, $id) RETURN BEFORE`, map[string]interface{}{
		"tb": table,
		"id": id,
	})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// Select executes a store-native query and returns matching documents
func (s *SurrealDB) Select(ctx context.Context, query string, vars map[string]interface{}) ([]Document, error) {
	return s.query(ctx, query, vars)
}

// Count returns the number of documents in a table
func (s *SurrealDB) Count(ctx context.Context, table string) (int, error) {
	rows, err := s.query(ctx, `SELECT count() FROM type::table($tb) GROUP ALL`, map[string]interface{}{
		"tb": table,
	})
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return toInt(rows[0]["count"]), nil
}

// query executes a single statement and flattens the SurrealDB response
// into a list of documents.
func (s *SurrealDB) query(ctx context.Context, query string, vars map[string]interface{}) ([]Document, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	docs := make([]Document, 0)
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		switch v := r.Result.(type) {
		case []interface{}:
			for _, item := range v {
				if doc, ok := item.(map[string]interface{}); ok {
					docs = append(docs, doc)
				}
			}
		case map[string]interface{}:
			docs = append(docs, v)
		}
	}

	return docs, nil
}

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// toInt converts the numeric types SurrealDB may return into an int
func toInt(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}
