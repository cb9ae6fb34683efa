// FILE: lixenwraith/oasconfig/provider.go
package oasconfig

// Provider is the key/value source a Resolver reads from. Implementations are
// expected to be synchronous and backed by already loaded data.
//
// Properties is the implementation shipped with this package; any other
// configuration system can be adapted by implementing these four methods.
type Provider interface {
	// OptionalString returns the raw value for key. The bool is false when
	// the key is not configured.
	OptionalString(key string) (string, bool, error)

	// OptionalBool returns the value for key converted to a bool. Conversion
	// failures are returned as errors, not as absence.
	OptionalBool(key string) (bool, bool, error)

	// PropertyNames lists every key known to the provider.
	PropertyNames() []string

	// Value returns the raw value of a key that must exist.
	Value(key string) (string, error)
}
