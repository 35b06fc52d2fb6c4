package service

import (
	"context"
	"testing"

	"github.com/yookve/api/internal/database"
)

type mockStore struct {
	tables    []string
	count     int
	countErr  error
	ensureErr error
}

func (m *mockStore) Connect(ctx context.Context) error { return nil }
func (m *mockStore) Close() error                      { return nil }
func (m *mockStore) Ping(ctx context.Context) error    { return nil }

func (m *mockStore) EnsureTable(ctx context.Context, table string) error {
	if m.ensureErr != nil {
		return m.ensureErr
	}
	m.tables = append(m.tables, table)
	return nil
}

func (m *mockStore) Get(ctx context.Context, table, id string) (database.Document, error) {
	return nil, database.ErrNotFound
}

func (m *mockStore) Put(ctx context.Context, table, id string, doc database.Document) error {
	return nil
}

func (m *mockStore) Merge(ctx context.Context, table, id string, fields database.Document) error {
	return nil
}

func (m *mockStore) Delete(ctx context.Context, table, id string) (bool, error) {
	return false, nil
}

func (m *mockStore) Select(ctx context.Context, query string, vars map[string]interface{}) ([]database.Document, error) {
	return nil, nil
}

func (m *mockStore) Count(ctx context.Context, table string) (int, error) {
	return m.count, m.countErr
}

func TestEnsureSchema(t *testing.T) {
	store := &mockStore{}
	svc := NewSeederService(store, newMockPackageRepo())

	if err := svc.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if len(store.tables) != 5 {
		t.Errorf("expected 5 tables, got %d (%v)", len(store.tables), store.tables)
	}
}

func TestSeedTravelPackages_EmptyCatalog(t *testing.T) {
	store := &mockStore{count: 0}
	packages := newMockPackageRepo()
	svc := NewSeederService(store, packages)

	if err := svc.SeedTravelPackages(context.Background()); err != nil {
		t.Fatalf("SeedTravelPackages failed: %v", err)
	}
	if len(packages.packages) != 6 {
		t.Errorf("expected 6 seeded packages, got %d", len(packages.packages))
	}

	roma, found, _ := packages.GetByID(context.Background(), "1")
	if !found {
		t.Fatal("package 1 not seeded")
	}
	if roma.Title != "Weekend Culturale a Roma" || roma.Price != 650 {
		t.Errorf("unexpected package 1: %s / %v", roma.Title, roma.Price)
	}
	if !roma.IsRecommended {
		t.Error("expected package 1 to be flagged recommended")
	}
}

func TestSeedTravelPackages_AlreadySeeded(t *testing.T) {
	store := &mockStore{count: 6}
	packages := newMockPackageRepo()
	svc := NewSeederService(store, packages)

	if err := svc.SeedTravelPackages(context.Background()); err != nil {
		t.Fatalf("SeedTravelPackages failed: %v", err)
	}
	if len(packages.packages) != 0 {
		t.Errorf("expected no new packages, got %d", len(packages.packages))
	}
}
