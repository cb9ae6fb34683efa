// FILE: lixenwraith/oasconfig/errors.go
package oasconfig

import "errors"

var (
	// ErrConfigNotFound is returned when a configuration file does not exist.
	// It is not fatal: the application can run on defaults, environment and CLI.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrCLIParse wraps command-line argument parsing failures.
	ErrCLIParse = errors.New("failed to parse command-line arguments")

	// ErrValueSize is returned when an environment value exceeds MaxValueSize.
	ErrValueSize = errors.New("value size exceeds maximum")

	// ErrUnsupportedFormat is returned when a file format cannot be determined.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrPropertyNotFound is returned by Provider.Value for unknown keys.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrConversion wraps typed conversion failures of a raw property value.
	ErrConversion = errors.New("property conversion failed")

	// ErrInvalidPattern wraps a scan pattern that looks like a regular
	// expression but does not compile.
	ErrInvalidPattern = errors.New("invalid scan pattern")
)

// MaxValueSize bounds a single environment value in bytes.
const MaxValueSize = 1 << 20
