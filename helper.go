// File: lixenwraith/oasconfig/helper.go
package oasconfig

import (
	"fmt"
	"strings"
)

// flattenMap converts a nested map to a flat map with dot-notation keys.
// Lists are kept as leaf values.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		switch sub := value.(type) {
		case map[string]any:
			for subPath, subValue := range flattenMap(sub, newPath) {
				flat[subPath] = subValue
			}
		case map[any]any:
			// YAML tables with non-string keys
			converted := make(map[string]any, len(sub))
			for k, v := range sub {
				converted[fmt.Sprint(k)] = v
			}
			for subPath, subValue := range flattenMap(converted, newPath) {
				flat[subPath] = subValue
			}
		default:
			flat[newPath] = value
		}
	}

	return flat
}

// envCandidates returns the environment variable names checked for key:
// the key itself, the key with every non-alphanumeric character replaced by
// '_', and that form upper-cased. Duplicates are dropped.
func envCandidates(key string) []string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, key)
	upper := strings.ToUpper(sanitized)

	names := []string{key}
	if sanitized != key {
		names = append(names, sanitized)
	}
	if upper != sanitized {
		names = append(names, upper)
	}
	return names
}
