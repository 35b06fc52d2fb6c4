package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
)

// Store table names. Tables are created at startup by the seeder.
const (
	TableUsers          = "app_user"
	TablePreferences    = "preference"
	TableTravelPackages = "travel_package"
	TableBookings       = "booking"
	TableSavedPackages  = "saved_package"
)

// Repository provides the CRUD contract shared by all entities. T is the
// entity type, decode maps a store document back into it.
type Repository[T model.Entity] struct {
	store  database.Store
	table  string
	decode func(database.Document) T
}

func newRepository[T model.Entity](store database.Store, table string, decode func(database.Document) T) *Repository[T] {
	return &Repository[T]{store: store, table: table, decode: decode}
}

// Table returns the table this repository operates on
func (r *Repository[T]) Table() string { return r.table }

// GetByID retrieves an entity by id. Absence is reported via the found
// flag, not an error.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	doc, err := r.store.Get(ctx, r.table, id)
	if errors.Is(err, database.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return r.decode(doc), true, nil
}

// GetAll retrieves up to limit entities (all of them when limit <= 0)
func (r *Repository[T]) GetAll(ctx context.Context, limit int) ([]T, error) {
	return r.Search(ctx, "", nil, "", limit)
}

// Create stores a new entity. When the entity carries no id, a fresh UUID
// is generated. The stored document is read back so the caller receives
// the entity exactly as persisted.
func (r *Repository[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T

	id := entity.EntityID()
	if id == "" {
		id = uuid.NewString()
	}

	if err := r.store.Put(ctx, r.table, id, entity.Document()); err != nil {
		return zero, err
	}

	created, found, err := r.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, fmt.Errorf("%w: %s:%s vanished after create", database.ErrQuery, r.table, id)
	}
	return created, nil
}

// Update applies a partial-field update. A missing entity is reported via
// the found flag, not an error.
func (r *Repository[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (T, bool, error) {
	var zero T

	err := r.store.Merge(ctx, r.table, id, fields)
	if errors.Is(err, database.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes an entity. Reports whether a document was removed.
func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.Delete(ctx, r.table, id)
}

// Search retrieves entities matching the given WHERE clause, optionally
// ordered and limited. The clause references $-prefixed vars; callers own
// the clause text, user input only ever travels through vars.
func (r *Repository[T]) Search(ctx context.Context, where string, vars map[string]interface{}, orderBy string, limit int) ([]T, error) {
	query := `SELECT * FROM type::table($tb)`
	if where != "" {
		query += " WHERE " + where
	}
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}

	queryVars := map[string]interface{}{"tb": r.table}
	for k, v := range vars {
		queryVars[k] = v
	}
	if limit > 0 {
		query += " LIMIT $limit"
		queryVars["limit"] = limit
	}

	docs, err := r.store.Select(ctx, query, queryVars)
	if err != nil {
		return nil, err
	}

	entities := make([]T, 0, len(docs))
	for _, doc := range docs {
		entities = append(entities, r.decode(doc))
	}
	return entities, nil
}
