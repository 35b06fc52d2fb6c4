package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// recordKey extracts the bare record key from a SurrealDB record id,
// stripping the table prefix and the ⟨⟩ escaping SurrealDB applies to
// keys containing hyphens (UUIDs always do).
func recordKey(id interface{}) string {
	full := ""
	switch v := id.(type) {
	case string:
		full = v
	case models.RecordID:
		full = v.String()
	case *models.RecordID:
		if v != nil {
			full = v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if key, ok := v["id"].(string); ok {
			full = key
		}
	default:
		// Try JSON marshaling as fallback
		if data, err := json.Marshal(id); err == nil {
			var recordID models.RecordID
			if err := json.Unmarshal(data, &recordID); err == nil {
				full = recordID.String()
			}
		}
	}

	if idx := strings.Index(full, ":"); idx >= 0 {
		full = full[idx+1:]
	}
	full = strings.TrimPrefix(full, "⟨")
	full = strings.TrimSuffix(full, "⟩")
	return strings.Trim(full, "`")
}

// getString extracts a string value from a document
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a document
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

// getFloat extracts a float value from a document
func getFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// getBool extracts a bool value from a document
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// getTime extracts a time value from a document
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case time.Time:
		return v
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

// getStringSlice extracts a string slice from a document
func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(v))
	for _, item := range v {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
