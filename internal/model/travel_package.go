package model

// TravelPackage is a bookable catalog entry. Rating is kept as the display
// string the client renders ("4.5"), matching the stored documents.
type TravelPackage struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Destination       string   `json:"destination"`
	ImageURL          string   `json:"imageUrl"`
	Rating            string   `json:"rating,omitempty"`
	ReviewCount       int      `json:"reviewCount"`
	AccommodationName string   `json:"accommodationName"`
	AccommodationType string   `json:"accommodationType,omitempty"`
	TransportType     string   `json:"transportType,omitempty"`
	DurationDays      int      `json:"durationDays"`
	DurationNights    int      `json:"durationNights"`
	Experiences       []string `json:"experiences,omitempty"`
	Price             float64  `json:"price"`
	IsRecommended     bool     `json:"isRecommended"`
	Categories        []string `json:"categories,omitempty"`
}

// EntityID returns the record id
func (t *TravelPackage) EntityID() string { return t.ID }

// Document returns the store representation of the package
func (t *TravelPackage) Document() map[string]interface{} {
	return map[string]interface{}{
		"title":             t.Title,
		"description":       t.Description,
		"destination":       t.Destination,
		"imageUrl":          t.ImageURL,
		"rating":            t.Rating,
		"reviewCount":       t.ReviewCount,
		"accommodationName": t.AccommodationName,
		"accommodationType": t.AccommodationType,
		"transportType":     t.TransportType,
		"durationDays":      t.DurationDays,
		"durationNights":    t.DurationNights,
		"experiences":       t.Experiences,
		"price":             t.Price,
		"isRecommended":     t.IsRecommended,
		"categories":        t.Categories,
	}
}

// MatchScore returns how many of the given interests appear in the
// package categories. Used to order recommendations by relevance.
func (t *TravelPackage) MatchScore(interests []string) int {
	score := 0
	for _, interest := range interests {
		for _, category := range t.Categories {
			if interest == category {
				score++
				break
			}
		}
	}
	return score
}
