package model

import "time"

// SavedPackage is a package bookmarked by a user. The package display
// fields are denormalized into the document at save time so the saved list
// renders without a second lookup, even if the catalog entry changes later.
// The embedded ID is the saved record's own id; PackageID points back at
// the catalog entry.
type SavedPackage struct {
	TravelPackage
	PackageID string    `json:"packageId,omitempty"`
	UserID    string    `json:"userId"`
	SavedAt   time.Time `json:"savedAt"`
}

// EntityID returns the record id
func (s *SavedPackage) EntityID() string { return s.ID }

// Document returns the store representation of the saved package
func (s *SavedPackage) Document() map[string]interface{} {
	doc := s.TravelPackage.Document()
	doc["packageId"] = s.PackageID
	doc["userId"] = s.UserID
	doc["savedAt"] = s.SavedAt
	return doc
}
