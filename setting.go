package oasconfig

// resolution is the state of one memoized setting.
type resolution uint8

const (
	unresolved resolution = iota
	resolvedAbsent
	resolvedPresent
)

// cached memoizes one setting. Absence is cached like any other result,
// errors are not.
type cached[T any] struct {
	state resolution
	value T
}

func (c *cached[T]) get(resolve func() (T, bool, error)) (T, bool, error) {
	var zero T
	switch c.state {
	case resolvedPresent:
		return c.value, true, nil
	case resolvedAbsent:
		return zero, false, nil
	}

	value, ok, err := resolve()
	if err != nil {
		return zero, false, err
	}
	if ok {
		c.state, c.value = resolvedPresent, value
	} else {
		c.state = resolvedAbsent
	}
	return value, ok, nil
}

// firstPresent evaluates keys in priority order and returns the first present
// value together with the key that supplied it.
func firstPresent[T any](keys []string, lookup func(key string) (T, bool, error)) (T, string, bool, error) {
	var zero T
	for _, key := range keys {
		value, ok, err := lookup(key)
		if err != nil {
			return zero, key, false, err
		}
		if ok {
			return value, key, true, nil
		}
	}
	return zero, "", false, nil
}
