package conversions

import (
	"encoding/json"
	"fmt"
)

// The extractors tolerate absent keys: a field the query did not select is
// simply the zero value, never an error. Present-but-null behaves the same
// except where the caller explicitly parses (dates, the extra payload).

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func boolField(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func intField(raw map[string]any, key string) int {
	// encoding/json decodes every number into float64
	n, _ := raw[key].(float64)
	return int(n)
}

// structuredField parses the extra metadata the API embeds as a
// JSON-encoded string. Null and absent pass through as nil.
func structuredField(raw map[string]any, key string) (map[string]any, error) {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("field %s: expected a JSON-encoded string, got %T", key, value)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return nil, fmt.Errorf("field %s: %w", key, err)
	}
	return parsed, nil
}
