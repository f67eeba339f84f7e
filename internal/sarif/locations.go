package sarif

import "strings"

// StripURISubstring removes every occurrence of each substr, in order, from the
// locations[].physicalLocation.artifactLocation.uri string of each result.
// Non-string or absent URIs are left alone. It returns the number of URIs changed.
func StripURISubstring(results []interface{}, substrs ...string) int {
	rewritten := 0
	for _, result := range results {
		for _, location := range field[[]interface{}](result, "locations") {
			artifact := field[map[string]interface{}](
				field[map[string]interface{}](location, "physicalLocation"),
				"artifactLocation",
			)
			uri, ok := artifact["uri"].(string)
			if !ok {
				continue
			}
			cleaned := uri
			for _, substr := range substrs {
				if substr != "" {
					cleaned = strings.ReplaceAll(cleaned, substr, "")
				}
			}
			if cleaned != uri {
				artifact["uri"] = cleaned
				rewritten++
			}
		}
	}
	return rewritten
}

// field returns obj[key] when obj is a JSON object and the value has type T.
func field[T any](obj interface{}, key string) T {
	var zero T
	m, ok := obj.(map[string]interface{})
	if !ok {
		return zero
	}
	v, ok := m[key].(T)
	if !ok {
		return zero
	}
	return v
}
