// Package testdb provides isolated SurrealDB environments for
// integration tests. Each TestDB gets a unique namespace so tests can
// run in parallel against the same instance.
//
// Tests using this package skip automatically when no SurrealDB
// instance is reachable, so the suite stays green on machines without
// a local database.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    repo := repository.NewUserRepository(tdb.Store)
//	    ...
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/repository"
)

// TestDB provides an isolated database environment for testing.
type TestDB struct {
	Store     *database.SurrealDB
	Namespace string
	Database  string
	t         *testing.T
}

var (
	counterMu sync.Mutex
	counter   int64
)

// getTestConfig returns database config from environment or defaults
func getTestConfig() database.Config {
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("TEST_DB_PORT")
	if port == "" {
		port = "8000"
	}

	user := os.Getenv("TEST_DB_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("TEST_DB_PASSWORD")
	if password == "" {
		password = "root"
	}

	return database.Config{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New connects to the test SurrealDB instance under a fresh namespace
// and creates all application tables. The test is skipped when the
// instance is unreachable.
func New(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := getTestConfig()
	cfg.Namespace = uniqueNamespace()
	cfg.Database = "test"

	store := database.NewSurrealDB(cfg)
	if err := store.Connect(ctx); err != nil {
		t.Skipf("testdb: surrealdb not available: %v", err)
	}

	tables := []string{
		repository.TableUsers,
		repository.TablePreferences,
		repository.TableTravelPackages,
		repository.TableBookings,
		repository.TableSavedPackages,
	}
	for _, table := range tables {
		if err := store.EnsureTable(ctx, table); err != nil {
			_ = store.Close()
			t.Fatalf("testdb: failed to create table %s: %v", table, err)
		}
	}

	return &TestDB{
		Store:     store,
		Namespace: cfg.Namespace,
		Database:  cfg.Database,
		t:         t,
	}
}

// Close removes the test namespace and closes the connection
func (tdb *TestDB) Close() {
	if tdb.Store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Cleanup errors are not actionable for the test
	_, _ = tdb.Store.Select(ctx, fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace), nil)
	_ = tdb.Store.Close()
}

// Ctx returns a context with a reasonable timeout for test operations
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}
