// File: lixenwraith/oasconfig/keys.go
package oasconfig

// Property prefixes of the MicroProfile OpenAPI key namespace.
const (
	KeyPrefix        = "mp.openapi."
	ExtensionsPrefix = KeyPrefix + "extensions."
	vendorPrefix     = ExtensionsPrefix + "smallrye."

	// SchemaPrefix and SchemaEnvPrefix select schema override properties.
	// Both spellings have the same length, the type name follows either one.
	SchemaPrefix    = KeyPrefix + "schema."
	SchemaEnvPrefix = "MP_OPENAPI_SCHEMA_"

	// ServersPathPrefix and ServersOperationPrefix are completed by a caller
	// supplied path or operation id.
	ServersPathPrefix      = KeyPrefix + "servers.path."
	ServersOperationPrefix = KeyPrefix + "servers.operation."
)

// Core keys
const (
	KeyModelReader         = KeyPrefix + "model.reader"
	KeyFilter              = KeyPrefix + "filter"
	KeyScanDisable         = KeyPrefix + "scan.disable"
	KeyScanPackages        = KeyPrefix + "scan.packages"
	KeyScanClasses         = KeyPrefix + "scan.classes"
	KeyScanExcludePackages = KeyPrefix + "scan.exclude.packages"
	KeyScanExcludeClasses  = KeyPrefix + "scan.exclude.classes"
	KeyServers             = KeyPrefix + "servers"
)

// Extension keys. The vendor spelling is consulted first, the plain extension
// spelling is kept for older deployments.
const (
	KeyScanDependenciesDisable       = vendorPrefix + "scan-dependencies.disable"
	KeyScanDependenciesDisableLegacy = ExtensionsPrefix + "scan-dependencies.disable"

	KeyScanDependenciesJars       = vendorPrefix + "scan-dependencies.jars"
	KeyScanDependenciesJarsLegacy = ExtensionsPrefix + "scan-dependencies.jars"

	KeySchemaReferencesEnable       = vendorPrefix + "schema-references.enable"
	KeySchemaReferencesEnableLegacy = ExtensionsPrefix + "schema-references.enable"

	KeyCustomSchemaRegistryClass       = vendorPrefix + "custom-schema-registry.class"
	KeyCustomSchemaRegistryClassLegacy = ExtensionsPrefix + "custom-schema-registry.class"

	KeyApplicationPathDisable       = vendorPrefix + "application-path.disable"
	KeyApplicationPathDisableLegacy = ExtensionsPrefix + "application-path.disable"
)

// Document metadata keys
const (
	KeyOpenAPIVersion     = ExtensionsPrefix + "openapi"
	KeyInfoTitle          = ExtensionsPrefix + "info.title"
	KeyInfoVersion        = ExtensionsPrefix + "info.version"
	KeyInfoDescription    = ExtensionsPrefix + "info.description"
	KeyInfoTermsOfService = ExtensionsPrefix + "info.termsOfService"
	KeyInfoContactEmail   = ExtensionsPrefix + "info.contact.email"
	KeyInfoContactName    = ExtensionsPrefix + "info.contact.name"
	KeyInfoContactURL     = ExtensionsPrefix + "info.contact.url"
	KeyInfoLicenseName    = ExtensionsPrefix + "info.license.name"
	KeyInfoLicenseURL     = ExtensionsPrefix + "info.license.url"
)

// Packages and classes that are never scanned. User configuration of the
// exclude keys adds to these, it cannot remove them.
var (
	neverScanPackages = []string{"java.lang"}
	neverScanClasses  = []string{}
)

// NeverScanPackages returns a copy of the built-in package exclusions.
func NeverScanPackages() []string {
	return append([]string(nil), neverScanPackages...)
}

// NeverScanClasses returns a copy of the built-in class exclusions.
func NeverScanClasses() []string {
	return append([]string(nil), neverScanClasses...)
}
