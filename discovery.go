// FILE: lixenwraith/oasconfig/discovery.go
package oasconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions locates a MicroProfile style configuration file such as
// META-INF/microprofile-config.properties.
type FileDiscoveryOptions struct {
	// File name without extension, e.g. "microprofile-config"
	Name string

	// Tried in order within each directory; .properties comes first by default
	Extensions []string

	// Directories searched after the working directory, relative ones
	// resolve against it ("META-INF" by default)
	Paths []string

	// Names a file path that bypasses the directory search
	EnvVar string

	// Flag whose value names the file, matched as "--config x" or "--config=x"
	CLIFlag string

	// Search $XDG_CONFIG_HOME/<Name> and the XDG system directories last
	UseXDG bool

	// Search the working directory before Paths
	UseCurrentDir bool
}

// DefaultDiscoveryOptions searches ./<appName>.properties, then
// META-INF/<appName>.properties, then the XDG directories, trying the
// TOML, YAML and JSON spellings after .properties in each. <APPNAME>_CONFIG
// or --config short-circuits the search.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".properties", ".toml", ".yaml", ".yml", ".json"},
		Paths:         []string{"META-INF"},
		EnvVar:        envVarName(appName) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery enables automatic config file discovery
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path := discoverFile(opts, b.args); path != "" {
		b.file = path
	}
	return b
}

// discoverFile returns the first config file found, or "" when none exists
func discoverFile(opts FileDiscoveryOptions, args []string) string {
	// An explicit path wins even if the file does not exist; loading reports it
	if opts.CLIFlag != "" {
		for i, arg := range args {
			if arg == opts.CLIFlag && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, opts.CLIFlag+"=") {
				return strings.TrimPrefix(arg, opts.CLIFlag+"=")
			}
		}
	}

	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	var searchPaths []string

	// Current directory first, then custom paths relative to it
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseXDG {
		searchPaths = append(searchPaths, getXDGConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}

	// Environment and overrides still apply
	return ""
}

// getXDGConfigPaths returns the per-user then system XDG directories for appName
func getXDGConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}

// envVarName upper-cases name and replaces non-alphanumerics with '_'
func envVarName(name string) string {
	candidates := envCandidates(name)
	return candidates[len(candidates)-1]
}
