// File: lixenwraith/oasconfig/builder.go
package oasconfig

import (
	"errors"
	"fmt"
	"os"
)

// ValidatorFunc defines the signature for a function that can validate loaded properties.
// It receives the fully loaded *Properties object and should return an error if validation fails.
type ValidatorFunc func(p *Properties) error

// Builder provides a fluent interface for building properties and resolvers
type Builder struct {
	props      *Properties
	opts       LoadOptions
	defaults   map[string]any
	file       string
	args       []string
	err        error
	validators []ValidatorFunc
	resolverOp []Option
}

// NewBuilder creates a new builder reading CLI overrides from os.Args
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultLoadOptions(),
		args:       os.Args[1:],
		defaults:   make(map[string]any),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDefaults adds default values. Nested maps are flattened into dotted keys.
func (b *Builder) WithDefaults(defaults map[string]any) *Builder {
	for key, value := range flattenMap(defaults, "") {
		b.defaults[key] = value
	}
	return b
}

// WithDefault adds a single default value
func (b *Builder) WithDefault(key string, value any) *Builder {
	b.defaults[key] = value
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFileFormat forces the configuration file format
func (b *Builder) WithFileFormat(format string) *Builder {
	switch format {
	case "", FormatAuto, FormatTOML, FormatJSON, FormatYAML, FormatProperties:
		b.opts.FileFormat = format
	default:
		b.err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithSources sets the precedence order for configuration sources
func (b *Builder) WithSources(sources ...Source) *Builder {
	for _, s := range sources {
		if !s.valid() {
			b.err = fmt.Errorf("unknown source %q", s)
			return b
		}
	}
	b.opts.Sources = sources
	return b
}

// WithEnvTransform sets a custom environment variable name transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.opts.EnvTransform = fn
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// WithResolverOptions sets options applied by BuildResolver
func (b *Builder) WithResolverOptions(opts ...Option) *Builder {
	b.resolverOp = append(b.resolverOp, opts...)
	return b
}

// Build creates the Properties instance with all specified options
func (b *Builder) Build() (*Properties, error) {
	if b.err != nil {
		return nil, b.err
	}

	b.props = NewWithOptions(b.opts)
	for key, value := range b.defaults {
		if err := b.props.SetDefault(key, value); err != nil {
			return nil, fmt.Errorf("failed to register defaults: %w", err)
		}
	}

	loadErr := b.props.LoadWithOptions(b.file, b.args, b.opts)
	if loadErr != nil && !errors.Is(loadErr, ErrConfigNotFound) {
		// Return on fatal load errors. ErrConfigNotFound is not fatal.
		return nil, loadErr
	}

	for _, validator := range b.validators {
		if err := validator(b.props); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrConfigNotFound or nil
	return b.props, loadErr
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Properties {
	props, err := b.Build()
	if err != nil {
		// Ignore ErrConfigNotFound as it is not a fatal error for MustBuild.
		if !errors.Is(err, ErrConfigNotFound) {
			panic(fmt.Sprintf("config build failed: %v", err))
		}
	}
	return props
}

// BuildResolver builds the properties and wraps them in a Resolver
func (b *Builder) BuildResolver() (*Resolver, error) {
	props, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}
	return NewResolver(props, b.resolverOp...), err
}
