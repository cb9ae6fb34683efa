// FILE: lixenwraith/oasconfig/loader.go
package oasconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Source represents a configuration source, used to define lookup precedence
type Source string

const (
	// SourceDefault represents values set programmatically as defaults
	SourceDefault Source = "default"
	// SourceFile represents values loaded from a configuration file
	SourceFile Source = "file"
	// SourceEnv represents values captured from environment variables
	SourceEnv Source = "env"
	// SourceCLI represents values loaded from command-line arguments
	SourceCLI Source = "cli"
)

func (s Source) valid() bool {
	switch s {
	case SourceDefault, SourceFile, SourceEnv, SourceCLI:
		return true
	}
	return false
}

// Supported file formats
const (
	FormatAuto       = "auto"
	FormatTOML       = "toml"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
	FormatProperties = "properties"
)

// EnvTransformFunc converts a property key to the environment variable name
// looked up for it. The name is matched after EnvPrefix has been stripped.
type EnvTransformFunc func(key string) string

// LoadOptions configures how properties are loaded and looked up
type LoadOptions struct {
	// Sources defines the precedence order (first = highest priority)
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// EnvPrefix restricts captured environment variables to those starting
	// with it. The prefix is stripped from the stored names.
	// Example: "MYAPP_" captures "MYAPP_MP_OPENAPI_FILTER" as "MP_OPENAPI_FILTER"
	EnvPrefix string

	// EnvTransform replaces the derived lookup variants (key with
	// non-alphanumerics as underscores, and its upper-cased form). The exact
	// key is still tried first.
	EnvTransform EnvTransformFunc

	// FileFormat forces a file format. Empty or FormatAuto detects it.
	FileFormat string
}

// DefaultLoadOptions returns the standard load options
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources:    []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
		FileFormat: FormatAuto,
	}
}

// Load reads a configuration file and command-line arguments using the
// current options.
func (p *Properties) Load(filePath string, args []string) error {
	return p.LoadWithOptions(filePath, args, p.Options())
}

// LoadWithOptions loads every source listed in opts.Sources. A missing file
// is reported as ErrConfigNotFound joined with other non-fatal errors; a file
// that exists but cannot be parsed is fatal.
func (p *Properties) LoadWithOptions(filePath string, args []string, opts LoadOptions) error {
	if len(opts.Sources) == 0 {
		opts.Sources = DefaultLoadOptions().Sources
	}

	p.mutex.Lock()
	p.options = opts
	p.mutex.Unlock()

	var loadErrors []error

	for _, source := range opts.Sources {
		switch source {
		case SourceDefault:
			// Defaults are set programmatically
			continue

		case SourceFile:
			if filePath != "" {
				if err := p.loadFile(filePath, opts.FileFormat); err != nil {
					if errors.Is(err, ErrConfigNotFound) {
						loadErrors = append(loadErrors, err)
					} else {
						return err // Fatal error
					}
				}
			}

		case SourceEnv:
			if err := p.loadEnv(opts.EnvPrefix); err != nil {
				loadErrors = append(loadErrors, err)
			}

		case SourceCLI:
			if len(args) > 0 {
				if err := p.loadCLI(args); err != nil {
					loadErrors = append(loadErrors, err)
				}
			}
		}
	}

	return errors.Join(loadErrors...)
}

// LoadEnv captures environment variables starting with prefix
func (p *Properties) LoadEnv(prefix string) error {
	return p.loadEnv(prefix)
}

// LoadCLI loads properties from command-line arguments
func (p *Properties) LoadCLI(args []string) error {
	return p.loadCLI(args)
}

// LoadFile loads properties from a TOML, YAML, JSON or .properties file
func (p *Properties) LoadFile(filePath string) error {
	return p.loadFile(filePath, p.Options().FileFormat)
}

// loadFile reads, parses and flattens one configuration file. The file
// source is replaced as a whole.
func (p *Properties) loadFile(path, format string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if format == "" || format == FormatAuto {
		// Try extension first
		format = detectFileFormat(path)
		if format == "" {
			format = detectFormatFromContent(fileData)
		}
	}

	flat, err := parseFile(format, fileData)
	if err != nil {
		return fmt.Errorf("config file '%s': %w", path, err)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.configFilePath = path
	p.values[SourceFile] = flat
	return nil
}

// parseFile decodes data in the given format into flat dotted keys
func parseFile(format string, data []byte) (map[string]any, error) {
	nested := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&nested); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatProperties:
		loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
		props, err := loader.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse properties: %w", err)
		}
		flat := make(map[string]any, props.Len())
		for _, key := range props.Keys() {
			if value, ok := props.Get(key); ok {
				flat[key] = value
			}
		}
		return flat, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return flattenMap(nested, ""), nil
}

// loadEnv captures the process environment. Values are kept as strings and
// converted on lookup.
func (p *Properties) loadEnv(prefix string) error {
	captured := make(map[string]any)
	for _, kv := range os.Environ() {
		name, value, found := strings.Cut(kv, "=")
		if !found || name == "" {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			name = strings.TrimPrefix(name, prefix)
			if name == "" {
				continue
			}
		}
		if len(value) > MaxValueSize {
			return fmt.Errorf("%w: environment variable %s", ErrValueSize, name)
		}
		captured[name] = value
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.values[SourceEnv] = captured
	return nil
}

// loadCLI loads properties from command-line arguments
func (p *Properties) loadCLI(args []string) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCLIParse, err)
	}
	if len(parsed) == 0 {
		return nil // No CLI args to process.
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	values := p.sourceValues(SourceCLI)
	for key, value := range parsed {
		values[key] = value
	}
	return nil
}

// parseArgs processes command-line arguments into flat key/value pairs.
// Accepted forms are "--key=value", "--key value" and "--flag" (true).
// Keys are kept verbatim, dots are not interpreted.
func parseArgs(args []string) (map[string]any, error) {
	result := make(map[string]any)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip non-flag arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Skip "--" argument if used as a separator
			i++
			continue
		}

		var key string
		var valueStr string

		if k, v, found := strings.Cut(argContent, "="); found {
			key = k
			valueStr = v
			i++
		} else {
			key = argContent
			// Boolean flag if the next arg is another flag or there is none
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				valueStr = "true"
				i++
			} else {
				valueStr = args[i+1]
				i += 2
			}
		}

		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("empty key in argument %q", arg)
		}

		// Always stored as a string, converted on lookup.
		result[key] = valueStr
	}

	return result, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".properties":
		return FormatProperties
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing. Each
// candidate must decode to a table, which rejects YAML's scalar documents.
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil && len(yamlTest) > 0 {
		return FormatYAML
	}

	return FormatProperties
}
