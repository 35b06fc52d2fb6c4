package model

// Entity is implemented by every persisted domain type. Document returns
// the store representation of the entity; the record id is managed by the
// repository layer and is never part of the document body.
type Entity interface {
	EntityID() string
	Document() map[string]interface{}
}
