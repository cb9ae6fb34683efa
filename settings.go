package oasconfig

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Info holds the document info metadata. Unset fields are empty.
type Info struct {
	Title          string `yaml:"title,omitempty" json:"title,omitempty"`
	Version        string `yaml:"version,omitempty" json:"version,omitempty"`
	Description    string `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	ContactEmail   string `yaml:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ContactName    string `yaml:"contactName,omitempty" json:"contactName,omitempty"`
	ContactURL     string `yaml:"contactUrl,omitempty" json:"contactUrl,omitempty"`
	LicenseName    string `yaml:"licenseName,omitempty" json:"licenseName,omitempty"`
	LicenseURL     string `yaml:"licenseUrl,omitempty" json:"licenseUrl,omitempty"`
}

// Settings is a plain snapshot of every memoized setting, suitable for
// printing or serialization. Matchers are represented by their expression.
type Settings struct {
	ModelReader               string            `yaml:"modelReader,omitempty" json:"modelReader,omitempty"`
	Filter                    string            `yaml:"filter,omitempty" json:"filter,omitempty"`
	ScanDisable               bool              `yaml:"scanDisable" json:"scanDisable"`
	ScanPackages              string            `yaml:"scanPackages" json:"scanPackages"`
	ScanClasses               string            `yaml:"scanClasses" json:"scanClasses"`
	ScanExcludePackages       string            `yaml:"scanExcludePackages" json:"scanExcludePackages"`
	ScanExcludeClasses        string            `yaml:"scanExcludeClasses" json:"scanExcludeClasses"`
	Servers                   []string          `yaml:"servers" json:"servers"`
	ScanDependenciesDisable   bool              `yaml:"scanDependenciesDisable" json:"scanDependenciesDisable"`
	ScanDependenciesJars      []string          `yaml:"scanDependenciesJars" json:"scanDependenciesJars"`
	SchemaReferencesEnable    bool              `yaml:"schemaReferencesEnable" json:"schemaReferencesEnable"`
	CustomSchemaRegistryClass string            `yaml:"customSchemaRegistryClass,omitempty" json:"customSchemaRegistryClass,omitempty"`
	ApplicationPathDisable    bool              `yaml:"applicationPathDisable" json:"applicationPathDisable"`
	Schemas                   map[string]string `yaml:"schemas" json:"schemas"`
	OpenAPIVersion            string            `yaml:"openapi,omitempty" json:"openapi,omitempty"`
	Info                      Info              `yaml:"info" json:"info"`
}

// Snapshot resolves every memoized setting and returns them as Settings. The
// first error stops resolution.
func (r *Resolver) Snapshot() (*Settings, error) {
	s := &Settings{}

	strs := []struct {
		get    func() (string, bool, error)
		target *string
	}{
		{r.ModelReader, &s.ModelReader},
		{r.Filter, &s.Filter},
		{r.CustomSchemaRegistryClass, &s.CustomSchemaRegistryClass},
		{r.OpenAPIVersion, &s.OpenAPIVersion},
		{r.InfoTitle, &s.Info.Title},
		{r.InfoVersion, &s.Info.Version},
		{r.InfoDescription, &s.Info.Description},
		{r.InfoTermsOfService, &s.Info.TermsOfService},
		{r.InfoContactEmail, &s.Info.ContactEmail},
		{r.InfoContactName, &s.Info.ContactName},
		{r.InfoContactURL, &s.Info.ContactURL},
		{r.InfoLicenseName, &s.Info.LicenseName},
		{r.InfoLicenseURL, &s.Info.LicenseURL},
	}
	for _, f := range strs {
		v, _, err := f.get()
		if err != nil {
			return nil, err
		}
		*f.target = v
	}

	bools := []struct {
		get    func() (bool, error)
		target *bool
	}{
		{r.ScanDisable, &s.ScanDisable},
		{r.ScanDependenciesDisable, &s.ScanDependenciesDisable},
		{r.SchemaReferencesEnable, &s.SchemaReferencesEnable},
		{r.ApplicationPathDisable, &s.ApplicationPathDisable},
	}
	for _, f := range bools {
		v, err := f.get()
		if err != nil {
			return nil, err
		}
		*f.target = v
	}

	matchers := []struct {
		get    func() (Matcher, error)
		target *string
	}{
		{r.ScanPackages, &s.ScanPackages},
		{r.ScanClasses, &s.ScanClasses},
		{r.ScanExcludePackages, &s.ScanExcludePackages},
		{r.ScanExcludeClasses, &s.ScanExcludeClasses},
	}
	for _, f := range matchers {
		m, err := f.get()
		if err != nil {
			return nil, err
		}
		*f.target = m.String()
	}

	servers, err := r.Servers()
	if err != nil {
		return nil, err
	}
	s.Servers = sortedMembers(servers)

	jars, err := r.ScanDependenciesJars()
	if err != nil {
		return nil, err
	}
	s.ScanDependenciesJars = sortedMembers(jars)

	schemas, err := r.Schemas()
	if err != nil {
		return nil, err
	}
	s.Schemas = make(map[string]string, len(schemas))
	for k, v := range schemas {
		s.Schemas[k] = v
	}

	return s, nil
}

// sortedMembers returns the members of set in ascending order.
func sortedMembers(set mapset.Set[string]) []string {
	members := set.ToSlice()
	sort.Strings(members)
	return members
}
