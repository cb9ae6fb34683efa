// File: lixenwraith/oasconfig/doc.go

// Package oasconfig resolves MicroProfile OpenAPI generation settings from a
// flat key/value configuration source.
//
// Features:
//   - Typed, memoized accessors for the mp.openapi.* key namespace
//   - Vendor/legacy key fallback chains with fixed defaults
//   - Scan include/exclude matchers: verbatim regular expressions or
//     alternations of literal names merged with built-in exclusions
//   - Live per-path and per-operation server overrides
//   - Schema overrides collected from mp.openapi.schema.<Type> properties
//   - A layered Properties provider: defaults, TOML/YAML/JSON/.properties
//     files, environment variables and command-line arguments
//
// Quick Start:
//
//	r, err := oasconfig.NewBuilder().
//	    WithFile("META-INF/microprofile-config.properties").
//	    BuildResolver()
//	if err != nil && !errors.Is(err, oasconfig.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//
//	include, err := r.ScanPackages()
//	exclude, err := r.ScanExcludePackages()
//	if include.Matches(pkg) && !exclude.Matches(pkg) {
//	    // scan pkg
//	}
//
// Scan patterns:
// A value starting with '^' or ending with '$' is compiled as a regular
// expression (regexp2, .NET/Java style syntax) and used as is. Any other value
// is a comma separated list of exact names. For the exclude settings the
// built-in names (NeverScanPackages, NeverScanClasses) are added to the list.
// Both forms match whole names only.
//
// Default Precedence (highest to lowest):
//  1. Command-line arguments (--mp.openapi.scan.disable=true)
//  2. Environment variables (MP_OPENAPI_SCAN_DISABLE=true)
//  3. Configuration file
//  4. Default values
//
// Thread Safety:
// Properties is safe for concurrent use. Resolver is not: it memoizes without
// locking and belongs to a single generation run.
package oasconfig
