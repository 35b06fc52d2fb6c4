package model

import "time"

// User represents a registered account. The bcrypt hash is stored with the
// document but never serialized into API responses.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Hash      string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntityID returns the record id
func (u *User) EntityID() string { return u.ID }

// Document returns the store representation of the user
func (u *User) Document() map[string]interface{} {
	return map[string]interface{}{
		"username":  u.Username,
		"name":      u.Name,
		"email":     u.Email,
		"password":  u.Hash,
		"createdAt": u.CreatedAt,
	}
}
