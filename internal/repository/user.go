package repository

import (
	"context"

	"github.com/yookve/api/internal/database"
	"github.com/yookve/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	*Repository[*model.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(store database.Store) *UserRepository {
	return &UserRepository{newRepository(store, TableUsers, decodeUser)}
}

// GetByUsername retrieves a user by exact username match. Usernames are
// stored as submitted; uniqueness is enforced at registration time.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, bool, error) {
	users, err := r.Search(ctx, "username = $username", map[string]interface{}{
		"username": username,
	}, "", 1)
	if err != nil {
		return nil, false, err
	}
	if len(users) == 0 {
		return nil, false, nil
	}
	return users[0], true, nil
}

// GetByEmail retrieves a user by exact email match
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	users, err := r.Search(ctx, "email = $email", map[string]interface{}{
		"email": email,
	}, "", 1)
	if err != nil {
		return nil, false, err
	}
	if len(users) == 0 {
		return nil, false, nil
	}
	return users[0], true, nil
}

func decodeUser(doc database.Document) *model.User {
	return &model.User{
		ID:        recordKey(doc["id"]),
		Username:  getString(doc, "username"),
		Name:      getString(doc, "name"),
		Email:     getString(doc, "email"),
		Hash:      getString(doc, "password"),
		CreatedAt: getTime(doc, "createdAt"),
	}
}
