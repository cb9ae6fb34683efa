// FILE: lixenwraith/oasconfig/resolver.go
package oasconfig

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
)

// Resolver turns raw provider values into typed OpenAPI generation settings.
//
// Every setting is resolved on first access and memoized, including the fact
// that it is not configured. A Resolver is meant to live for one generation
// run against one Provider.
//
// Thread Safety:
// The memoized accessors mutate the resolver without locking and must not be
// called from multiple goroutines concurrently. PathServers and
// OperationServers touch no resolver state and may be called concurrently as
// long as the Provider allows it.
type Resolver struct {
	provider Provider
	logger   *zap.Logger

	// plain string settings keyed by property key
	strings map[string]*cached[string]

	scanDisable             cached[bool]
	scanDependenciesDisable cached[bool]
	schemaReferencesEnable  cached[bool]
	applicationPathDisable  cached[bool]

	customSchemaRegistryClass cached[string]

	scanPackages        cached[Matcher]
	scanClasses         cached[Matcher]
	scanExcludePackages cached[Matcher]
	scanExcludeClasses  cached[Matcher]

	servers              cached[mapset.Set[string]]
	scanDependenciesJars cached[mapset.Set[string]]

	schemas cached[map[string]string]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to trace setting resolution.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver reading from provider. Nothing is queried
// until the first accessor call.
func NewResolver(provider Provider, opts ...Option) *Resolver {
	r := &Resolver{
		provider: provider,
		logger:   zap.NewNop(),
		strings:  make(map[string]*cached[string]),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Provider returns the provider the resolver reads from.
func (r *Resolver) Provider() Provider {
	return r.provider
}

// ModelReader returns the configured model reader class.
func (r *Resolver) ModelReader() (string, bool, error) {
	return r.stringSetting(KeyModelReader)
}

// Filter returns the configured filter class.
func (r *Resolver) Filter() (string, bool, error) {
	return r.stringSetting(KeyFilter)
}

// ScanDisable reports whether annotation scanning is disabled. Default false.
func (r *Resolver) ScanDisable() (bool, error) {
	return r.boolSetting(&r.scanDisable, false, KeyScanDisable)
}

// ScanPackages returns the matcher for packages to scan.
func (r *Resolver) ScanPackages() (Matcher, error) {
	return r.patternSetting(&r.scanPackages, KeyScanPackages, nil)
}

// ScanClasses returns the matcher for classes to scan.
func (r *Resolver) ScanClasses() (Matcher, error) {
	return r.patternSetting(&r.scanClasses, KeyScanClasses, nil)
}

// ScanExcludePackages returns the matcher for packages never scanned. Unless
// the configured value is a regular expression, the built-in package
// exclusions are always part of it.
func (r *Resolver) ScanExcludePackages() (Matcher, error) {
	return r.patternSetting(&r.scanExcludePackages, KeyScanExcludePackages, neverScanPackages)
}

// ScanExcludeClasses is the class counterpart of ScanExcludePackages.
func (r *Resolver) ScanExcludeClasses() (Matcher, error) {
	return r.patternSetting(&r.scanExcludeClasses, KeyScanExcludeClasses, neverScanClasses)
}

// Servers returns the global server URLs. The returned set is shared with the
// cache and must not be modified.
func (r *Resolver) Servers() (mapset.Set[string], error) {
	return r.setSetting(&r.servers, KeyServers)
}

// PathServers returns the server URLs configured for one path. The result is
// read live from the provider on every call.
func (r *Resolver) PathServers(path string) (mapset.Set[string], error) {
	return r.liveSet(ServersPathPrefix + path)
}

// OperationServers returns the server URLs configured for one operation id.
// The result is read live from the provider on every call.
func (r *Resolver) OperationServers(operationID string) (mapset.Set[string], error) {
	return r.liveSet(ServersOperationPrefix + operationID)
}

// ScanDependenciesDisable reports whether dependency archives are skipped.
func (r *Resolver) ScanDependenciesDisable() (bool, error) {
	return r.boolSetting(&r.scanDependenciesDisable, false,
		KeyScanDependenciesDisable, KeyScanDependenciesDisableLegacy)
}

// ScanDependenciesJars returns the dependency archives to scan.
func (r *Resolver) ScanDependenciesJars() (mapset.Set[string], error) {
	return r.setSetting(&r.scanDependenciesJars, KeyScanDependenciesJars, KeyScanDependenciesJarsLegacy)
}

// SchemaReferencesEnable reports whether schemas are emitted as references.
// Default true.
func (r *Resolver) SchemaReferencesEnable() (bool, error) {
	return r.boolSetting(&r.schemaReferencesEnable, true,
		KeySchemaReferencesEnable, KeySchemaReferencesEnableLegacy)
}

// CustomSchemaRegistryClass returns the configured schema registry class.
func (r *Resolver) CustomSchemaRegistryClass() (string, bool, error) {
	return r.customSchemaRegistryClass.get(func() (string, bool, error) {
		keys := []string{KeyCustomSchemaRegistryClass, KeyCustomSchemaRegistryClassLegacy}
		value, key, ok, err := firstPresent(keys, r.lookupString)
		if err != nil {
			return "", false, err
		}
		r.logResolved(keys[0], key, ok)
		return value, ok, nil
	})
}

// ApplicationPathDisable reports whether the application path is left out of
// generated paths.
func (r *Resolver) ApplicationPathDisable() (bool, error) {
	return r.boolSetting(&r.applicationPathDisable, false,
		KeyApplicationPathDisable, KeyApplicationPathDisableLegacy)
}

// Schemas returns schema overrides keyed by type name. The map is built from
// the provider's property names on first call and never refreshed. It is
// shared with the cache and must not be modified.
//
// When a type is configured in both the dotted and the environment spelling,
// the dotted one wins.
func (r *Resolver) Schemas() (map[string]string, error) {
	schemas, _, err := r.schemas.get(func() (map[string]string, bool, error) {
		schemas := make(map[string]string)
		fromEnv := make(map[string]bool)
		for _, name := range r.provider.PropertyNames() {
			var typeName string
			var envForm bool
			switch {
			case strings.HasPrefix(name, SchemaPrefix):
				typeName = strings.TrimPrefix(name, SchemaPrefix)
			case strings.HasPrefix(name, SchemaEnvPrefix):
				typeName = strings.TrimPrefix(name, SchemaEnvPrefix)
				envForm = true
			default:
				continue
			}
			if _, exists := schemas[typeName]; exists {
				r.logger.Warn("schema configured under both spellings, using the dotted one",
					zap.String("type", typeName),
					zap.String("ignored", SchemaEnvPrefix+typeName))
				if envForm || !fromEnv[typeName] {
					continue
				}
			}

			value, err := r.provider.Value(name)
			if err != nil {
				return nil, false, fmt.Errorf("failed to read schema property %s: %w", name, err)
			}
			schemas[typeName] = value
			fromEnv[typeName] = envForm
		}
		r.logger.Debug("schema overrides resolved", zap.Int("count", len(schemas)))
		return schemas, true, nil
	})
	return schemas, err
}

// OpenAPIVersion returns the OpenAPI version to emit.
func (r *Resolver) OpenAPIVersion() (string, bool, error) {
	return r.stringSetting(KeyOpenAPIVersion)
}

func (r *Resolver) InfoTitle() (string, bool, error) {
	return r.stringSetting(KeyInfoTitle)
}

func (r *Resolver) InfoVersion() (string, bool, error) {
	return r.stringSetting(KeyInfoVersion)
}

func (r *Resolver) InfoDescription() (string, bool, error) {
	return r.stringSetting(KeyInfoDescription)
}

func (r *Resolver) InfoTermsOfService() (string, bool, error) {
	return r.stringSetting(KeyInfoTermsOfService)
}

func (r *Resolver) InfoContactEmail() (string, bool, error) {
	return r.stringSetting(KeyInfoContactEmail)
}

func (r *Resolver) InfoContactName() (string, bool, error) {
	return r.stringSetting(KeyInfoContactName)
}

func (r *Resolver) InfoContactURL() (string, bool, error) {
	return r.stringSetting(KeyInfoContactURL)
}

func (r *Resolver) InfoLicenseName() (string, bool, error) {
	return r.stringSetting(KeyInfoLicenseName)
}

func (r *Resolver) InfoLicenseURL() (string, bool, error) {
	return r.stringSetting(KeyInfoLicenseURL)
}

// lookupString reads key without caching. A value that is blank after
// trimming counts as not configured; a present value is returned untrimmed.
func (r *Resolver) lookupString(key string) (string, bool, error) {
	value, ok, err := r.provider.OptionalString(key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok || strings.TrimSpace(value) == "" {
		return "", false, nil
	}
	return value, true, nil
}

func (r *Resolver) lookupBool(key string) (bool, bool, error) {
	value, ok, err := r.provider.OptionalBool(key)
	if err != nil {
		return false, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, ok, nil
}

func (r *Resolver) stringSetting(key string) (string, bool, error) {
	c, exists := r.strings[key]
	if !exists {
		c = &cached[string]{}
		r.strings[key] = c
	}
	return c.get(func() (string, bool, error) {
		value, ok, err := r.lookupString(key)
		if err != nil {
			return "", false, err
		}
		r.logResolved(key, key, ok)
		return value, ok, nil
	})
}

// boolSetting resolves the first configured key of keys, falling back to def.
func (r *Resolver) boolSetting(c *cached[bool], def bool, keys ...string) (bool, error) {
	value, _, err := c.get(func() (bool, bool, error) {
		value, key, ok, err := firstPresent(keys, r.lookupBool)
		if err != nil {
			return false, false, err
		}
		r.logResolved(keys[0], key, ok)
		if !ok {
			return def, true, nil
		}
		return value, true, nil
	})
	return value, err
}

func (r *Resolver) setSetting(c *cached[mapset.Set[string]], keys ...string) (mapset.Set[string], error) {
	set, _, err := c.get(func() (mapset.Set[string], bool, error) {
		raw, key, ok, err := firstPresent(keys, r.lookupString)
		if err != nil {
			return nil, false, err
		}
		r.logResolved(keys[0], key, ok)
		return csvSet(raw, ok), true, nil
	})
	return set, err
}

func (r *Resolver) liveSet(key string) (mapset.Set[string], error) {
	raw, ok, err := r.lookupString(key)
	if err != nil {
		return nil, err
	}
	return csvSet(raw, ok), nil
}

func (r *Resolver) patternSetting(c *cached[Matcher], key string, builtIn []string) (Matcher, error) {
	matcher, _, err := c.get(func() (Matcher, bool, error) {
		raw, ok, err := r.lookupString(key)
		if err != nil {
			return nil, false, err
		}
		m, err := matcherOf(key, raw, ok, builtIn)
		if err != nil {
			r.logger.Warn("scan pattern rejected", zap.String("key", key), zap.Error(err))
			return nil, false, err
		}
		r.logger.Debug("scan pattern resolved",
			zap.String("key", key),
			zap.Bool("configured", ok),
			zap.Bool("regex", m.kind == matcherRegex),
			zap.String("expr", m.String()))
		return m, true, nil
	})
	return matcher, err
}

func (r *Resolver) logResolved(setting, source string, present bool) {
	if !present {
		r.logger.Debug("setting not configured", zap.String("key", setting))
		return
	}
	r.logger.Debug("setting resolved", zap.String("key", setting), zap.String("source", source))
}
