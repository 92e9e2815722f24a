package controllers

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// isMissing reports whether a request field counts as absent for
// required-field validation. Empty strings and zero values are treated
// the same as a missing key, matching how the admin frontend submits
// cleared form fields.
func isMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case json.Number:
		n, err := v.Float64()
		return err == nil && n == 0
	default:
		return false
	}
}

// missingFields returns the subset of required fields that are absent
// from the request body, in the order given
func missingFields(data map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		if isMissing(data[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

// stringField extracts a trimmed string value from the request body,
// returning "" when the key is absent
func stringField(data map[string]any, key string) string {
	return strings.TrimSpace(cast.ToString(data[key]))
}
