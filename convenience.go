// File: lixenwraith/oasconfig/convenience.go
package oasconfig

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Quick builds properties from the standard sources and returns a Resolver
// over them. Precedence: CLI > Env > File > Default.
// A missing configFile is reported as ErrConfigNotFound alongside a usable
// Resolver.
func Quick(envPrefix, configFile string, opts ...Option) (*Resolver, error) {
	loadOpts := DefaultLoadOptions()
	loadOpts.EnvPrefix = envPrefix

	props := NewWithOptions(loadOpts)
	err := props.LoadWithOptions(configFile, os.Args[1:], loadOpts)
	return NewResolver(props, opts...), err
}

// MustQuick is like Quick but panics on fatal errors
func MustQuick(envPrefix, configFile string, opts ...Option) *Resolver {
	r, err := Quick(envPrefix, configFile, opts...)
	if err != nil && !isNotFoundOnly(err) {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return r
}

// Debug returns a formatted listing of every property, its effective value
// and the value held by each source.
func (p *Properties) Debug() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	var b strings.Builder
	b.WriteString("Properties Debug Info:\n")
	b.WriteString(fmt.Sprintf("Precedence: %v\n", p.options.Sources))
	if p.configFilePath != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", p.configFilePath))
	}
	b.WriteString("Values:\n")

	keys := make(map[string]struct{})
	for _, values := range p.values {
		for key := range values {
			keys[key] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	for _, key := range sorted {
		current, source, _ := p.lookup(key)
		b.WriteString(fmt.Sprintf("  %s:\n", key))
		b.WriteString(fmt.Sprintf("    Current: %v (%s)\n", current, source))
		for _, s := range p.options.Sources {
			if val, ok := p.values[s][key]; ok {
				b.WriteString(fmt.Sprintf("    %s: %v\n", s, val))
			}
		}
	}

	return b.String()
}

// isNotFoundOnly reports whether err carries nothing but ErrConfigNotFound
func isNotFoundOnly(err error) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !isNotFoundOnly(e) {
				return false
			}
		}
		return true
	}
	return err == ErrConfigNotFound
}
