package model

import "time"

// Preference captures a travel-preference submission. Preferences are
// immutable: each submission creates a new document and the most recent
// one is the active preference for recommendations.
type Preference struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Destination       string    `json:"destination,omitempty"`
	TravelType        string    `json:"travelType,omitempty"`
	Interests         []string  `json:"interests,omitempty"`
	Budget            int       `json:"budget,omitempty"`
	DepartureDate     string    `json:"departureDate,omitempty"`
	ReturnDate        string    `json:"returnDate,omitempty"`
	NumAdults         int       `json:"numAdults"`
	NumChildren       int       `json:"numChildren"`
	NumInfants        int       `json:"numInfants"`
	AccommodationType string    `json:"accommodationType,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// EntityID returns the record id
func (p *Preference) EntityID() string { return p.ID }

// Document returns the store representation of the preference
func (p *Preference) Document() map[string]interface{} {
	return map[string]interface{}{
		"userId":            p.UserID,
		"destination":       p.Destination,
		"travelType":        p.TravelType,
		"interests":         p.Interests,
		"budget":            p.Budget,
		"departureDate":     p.DepartureDate,
		"returnDate":        p.ReturnDate,
		"numAdults":         p.NumAdults,
		"numChildren":       p.NumChildren,
		"numInfants":        p.NumInfants,
		"accommodationType": p.AccommodationType,
		"createdAt":         p.CreatedAt,
	}
}
