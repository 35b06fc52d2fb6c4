package travelapi

import (
	"strings"

	"github.com/yookve/api/internal/model"
)

// buildSearchPayload translates a stored preference into the external
// API's schema. The upstream validator rejects partial shapes, so every
// interest and transport flag is always present.
func buildSearchPayload(pref *model.Preference) map[string]interface{} {
	return map[string]interface{}{
		"destinazione":  pref.Destination,
		"tipo_viaggio":  pref.TravelType,
		"tipo_alloggio": pref.AccommodationType,
		"budget":        pref.Budget,
		"data_partenza": pref.DepartureDate,
		"data_ritorno":  pref.ReturnDate,
		"viaggiatori": map[string]interface{}{
			"adulti":  pref.NumAdults,
			"bambini": pref.NumChildren,
			"neonati": pref.NumInfants,
		},
		"interessi": buildInterests(pref.Interests),
		"trasporti": map[string]interface{}{
			"auto_propria": false,
			"Unknown":      false,
		},
	}
}

// buildInterests returns the nested boolean interest schema with flags
// flipped for each matching stored interest.
func buildInterests(interests []string) map[string]interface{} {
	schema := map[string]interface{}{
		"storia_e_arte": map[string]interface{}{
			"siti_archeologici":        false,
			"musei_e_gallerie":         false,
			"monumenti_e_architettura": false,
		},
		"Food_&_wine": map[string]interface{}{
			"visite_alle_cantine":           false,
			"soggiorni_nella_wine_country":  false,
			"corsi_di_cucina":               false,
		},
		"vacanze_attive": map[string]interface{}{
			"trekking_di_più_giorni":           false,
			"tour_in_e_bike_di_più_giorni":     false,
			"tour_in_bicicletta_di_più_giorni": false,
			"sci_snowboard_di_più_giorni":      false,
		},
		"vita_locale":       false,
		"salute_e_benessere": false,
	}

	for _, interest := range interests {
		key := normalizeInterest(interest)
		if key == "" {
			continue
		}
		flipMatching(schema, key)
	}

	return schema
}

// normalizeInterest lowercases and underscores an interest name so it
// can be compared against schema keys.
func normalizeInterest(interest string) string {
	s := strings.ToLower(strings.TrimSpace(interest))
	return strings.ReplaceAll(s, " ", "_")
}

// flipMatching sets any schema flag whose key matches the interest,
// walking one level of nesting.
func flipMatching(schema map[string]interface{}, key string) {
	for name, value := range schema {
		lowered := strings.ToLower(name)
		switch v := value.(type) {
		case bool:
			if keyMatches(lowered, key) {
				schema[name] = true
			}
		case map[string]interface{}:
			if keyMatches(lowered, key) {
				// Category-level match flips every flag in the group
				for leaf := range v {
					v[leaf] = true
				}
				continue
			}
			for leaf := range v {
				if keyMatches(strings.ToLower(leaf), key) {
					v[leaf] = true
				}
			}
		}
	}
}

func keyMatches(schemaKey, interest string) bool {
	return strings.Contains(schemaKey, interest) || strings.Contains(interest, schemaKey)
}
