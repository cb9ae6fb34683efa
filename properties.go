// FILE: lixenwraith/oasconfig/properties.go
package oasconfig

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Properties is a layered, flat key/value store implementing Provider.
//
// Each Source keeps its own values. A lookup walks the sources in the order
// given by LoadOptions.Sources and returns the first hit. Keys are free form:
// "mp.openapi.servers.path./api/v1" is as valid as "mp.openapi.filter".
//
// All methods are safe for concurrent use.
type Properties struct {
	options        LoadOptions
	values         map[Source]map[string]any
	configFilePath string
	mutex          sync.RWMutex
}

// New creates an empty Properties with DefaultLoadOptions.
func New() *Properties {
	return NewWithOptions(DefaultLoadOptions())
}

// NewWithOptions creates an empty Properties with custom load options.
func NewWithOptions(opts LoadOptions) *Properties {
	if len(opts.Sources) == 0 {
		opts.Sources = DefaultLoadOptions().Sources
	}
	return &Properties{
		options: opts,
		values:  make(map[Source]map[string]any),
	}
}

// SetDefault stores value as the default for key.
func (p *Properties) SetDefault(key string, value any) error {
	return p.SetSource(key, SourceDefault, value)
}

// SetSource stores value for key in a specific source.
func (p *Properties) SetSource(key string, source Source, value any) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("property key cannot be empty")
	}
	if !source.valid() {
		return fmt.Errorf("unknown source %q", source)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.sourceValues(source)[key] = value
	return nil
}

// Unset removes key from one source. Other sources are untouched.
func (p *Properties) Unset(key string, source Source) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	delete(p.values[source], key)
}

// Get returns the effective value for key and the source that supplied it.
func (p *Properties) Get(key string) (any, Source, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.lookup(key)
}

// GetSource returns the value of key in one source, ignoring precedence.
func (p *Properties) GetSource(key string, source Source) (any, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	val, ok := p.values[source][key]
	return val, ok
}

// OptionalString implements Provider.
func (p *Properties) OptionalString(key string) (string, bool, error) {
	val, _, ok := p.Get(key)
	if !ok {
		return "", false, nil
	}
	s, err := stringValue(key, val)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// OptionalBool implements Provider. Blank strings count as not configured.
func (p *Properties) OptionalBool(key string) (bool, bool, error) {
	val, _, ok := p.Get(key)
	if !ok {
		return false, false, nil
	}
	if s, isString := val.(string); isString && strings.TrimSpace(s) == "" {
		return false, false, nil
	}
	b, err := decodeBool(key, val)
	if err != nil {
		return false, false, err
	}
	return b, true, nil
}

// PropertyNames implements Provider. Names are sorted and unique across
// the active sources. Environment variables are listed by their own names.
func (p *Properties) PropertyNames() []string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	seen := make(map[string]struct{})
	for _, source := range p.options.Sources {
		for key := range p.values[source] {
			seen[key] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for key := range seen {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// Value implements Provider.
func (p *Properties) Value(key string) (string, error) {
	s, ok, err := p.OptionalString(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrPropertyNotFound, key)
	}
	return s, nil
}

// ConfigFilePath returns the path of the last loaded configuration file.
func (p *Properties) ConfigFilePath() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.configFilePath
}

// Options returns the active load options.
func (p *Properties) Options() LoadOptions {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.options
}

// lookup walks the sources by precedence. Callers hold at least a read lock.
func (p *Properties) lookup(key string) (any, Source, bool) {
	for _, source := range p.options.Sources {
		values := p.values[source]
		if len(values) == 0 {
			continue
		}
		if source == SourceEnv {
			for _, name := range p.envNames(key) {
				if val, ok := values[name]; ok {
					return val, source, true
				}
			}
			continue
		}
		if val, ok := values[key]; ok {
			return val, source, true
		}
	}
	return nil, "", false
}

// envNames returns the environment variable names tried for key. The key
// itself always comes first, so every name listed by PropertyNames reads back
// through Value even when EnvTransform is set.
func (p *Properties) envNames(key string) []string {
	if p.options.EnvTransform != nil {
		if name := p.options.EnvTransform(key); name != key {
			return []string{key, name}
		}
		return []string{key}
	}
	return envCandidates(key)
}

// sourceValues returns the map of one source, creating it. Callers hold the
// write lock.
func (p *Properties) sourceValues(source Source) map[string]any {
	values, ok := p.values[source]
	if !ok {
		values = make(map[string]any)
		p.values[source] = values
	}
	return values
}
