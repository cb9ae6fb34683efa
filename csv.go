package oasconfig

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// csvSet splits raw on commas and trims every element. An empty raw value
// yields an empty set. Empty elements between separators are kept as "",
// empty elements after the last non-empty one are dropped before trimming,
// so "a," is {"a"} while "a, " is {"a", ""}.
func csvSet(raw string, present bool) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	if !present {
		return set
	}
	items := strings.Split(raw, ",")
	for len(items) > 0 && items[len(items)-1] == "" {
		items = items[:len(items)-1]
	}
	for _, item := range items {
		set.Add(strings.TrimSpace(item))
	}
	return set
}
