//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// ItemField modifies one field of the i-th element of the "items" array.
func ItemField(i int, key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		items, ok := m["items"].([]any)
		if !ok || i >= len(items) {
			return
		}
		if item, ok := items[i].(map[string]any); ok {
			Field(key, value)(item)
		}
	}
}
