// FILE: lixenwraith/oasconfig/settings_test.go
package oasconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSnapshot tests collecting every setting at once
func TestSnapshot(t *testing.T) {
	p := New()
	for key, value := range map[string]any{
		KeyModelReader:                     "com.example.Reader",
		KeyScanPackages:                    "com.example.b, com.example.a",
		KeyScanExcludeClasses:              "^.*Test$",
		KeyServers:                         "https://b.example.com,https://a.example.com",
		KeyScanDependenciesJarsLegacy:      "lib.jar",
		KeySchemaReferencesEnableLegacy:    false,
		KeyCustomSchemaRegistryClass:       "com.example.Registry",
		KeyInfoTitle:                       "Orders API",
		KeyInfoLicenseName:                 "Apache-2.0",
		SchemaPrefix + "java.time.Instant": `{"type":"string","format":"date-time"}`,
	} {
		require.NoError(t, p.SetDefault(key, value))
	}

	s, err := NewResolver(p).Snapshot()
	require.NoError(t, err)

	assert.Equal(t, "com.example.Reader", s.ModelReader)
	assert.Empty(t, s.Filter)
	assert.False(t, s.ScanDisable)
	assert.Equal(t, `(com\.example\.a|com\.example\.b)`, s.ScanPackages)
	assert.Equal(t, "", s.ScanClasses)
	assert.Equal(t, `(java\.lang)`, s.ScanExcludePackages)
	assert.Equal(t, "^.*Test$", s.ScanExcludeClasses)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, s.Servers)
	assert.Equal(t, []string{"lib.jar"}, s.ScanDependenciesJars)
	assert.False(t, s.SchemaReferencesEnable)
	assert.Equal(t, "com.example.Registry", s.CustomSchemaRegistryClass)
	assert.Equal(t, map[string]string{"java.time.Instant": `{"type":"string","format":"date-time"}`}, s.Schemas)
	assert.Equal(t, "Orders API", s.Info.Title)
	assert.Equal(t, "Apache-2.0", s.Info.LicenseName)
	assert.Empty(t, s.Info.Version)

	t.Run("YAML", func(t *testing.T) {
		out, err := yaml.Marshal(s)
		require.NoError(t, err)
		assert.Contains(t, string(out), "modelReader: com.example.Reader")
		assert.Contains(t, string(out), "title: Orders API")
		assert.NotContains(t, string(out), "filter:")
	})

	t.Run("StopsOnError", func(t *testing.T) {
		errBoom := errors.New("boom")
		stub := newStubProvider()
		stub.fail[KeyScanDisable] = errBoom

		s, err := NewResolver(stub).Snapshot()
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errBoom)
	})
}
