package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/oasconfig"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "microprofile-config.properties")
	content := `mp.openapi.filter=com.example.Filter
mp.openapi.scan.exclude.packages=com.example.internal
mp.openapi.servers=https://b.example.com,https://a.example.com
mp.openapi.servers.path./api/v1=https://v1.example.com
mp.openapi.extensions.info.title=Orders API
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestShow(t *testing.T) {
	config := writeConfig(t)

	t.Run("JSON", func(t *testing.T) {
		out, err := run(t, "--config", config, "show", "--format", "json")
		require.NoError(t, err)

		var s oasconfig.Settings
		require.NoError(t, json.Unmarshal([]byte(out), &s))
		assert.Equal(t, "com.example.Filter", s.Filter)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, s.Servers)
		assert.Equal(t, "Orders API", s.Info.Title)
		assert.True(t, s.SchemaReferencesEnable)
	})

	t.Run("YAMLWithOverride", func(t *testing.T) {
		out, err := run(t, "-c", config, "--set", "mp.openapi.filter=com.example.Override", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "filter: com.example.Override")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := run(t, "--config", config, "show", "--format", "xml")
		assert.Error(t, err)
	})

	t.Run("InvalidSet", func(t *testing.T) {
		_, err := run(t, "--config", config, "--set", "novalue", "show")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected key=value")
	})
}

func TestMatch(t *testing.T) {
	config := writeConfig(t)

	out, err := run(t, "--config", config,
		"--set", "mp.openapi.scan.packages=com.example.api,com.example.internal",
		"match", "packages", "com.example.api", "com.example.internal", "java.lang")
	require.NoError(t, err)

	assert.Contains(t, out, "com.example.api\tinclude=true\texclude=false")
	assert.Contains(t, out, "com.example.internal\tinclude=true\texclude=true")
	assert.Contains(t, out, "java.lang\tinclude=false\texclude=true")

	t.Run("InvalidPattern", func(t *testing.T) {
		_, err := run(t, "--config", config, "--set", "mp.openapi.scan.classes=^(", "match", "classes", "X")
		assert.ErrorIs(t, err, oasconfig.ErrInvalidPattern)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := run(t, "--config", config, "match", "modules", "X")
		assert.Error(t, err)
	})
}

func TestServers(t *testing.T) {
	config := writeConfig(t)

	out, err := run(t, "--config", config, "servers", "--path", "/api/v1", "--path", "/other", "--operation", "getOrder")
	require.NoError(t, err)

	assert.Contains(t, out, "global\thttps://a.example.com,https://b.example.com")
	assert.Contains(t, out, "path /api/v1\thttps://v1.example.com")
	assert.Contains(t, out, "path /other\t-")
	assert.Contains(t, out, "operation getOrder\t-")
}

func TestSources(t *testing.T) {
	config := writeConfig(t)

	out, err := run(t, "--config", config, "--set", "mp.openapi.filter=cli.Filter", "sources")
	require.NoError(t, err)
	assert.Contains(t, out, "File: "+config)
	assert.Contains(t, out, "Current: cli.Filter (cli)")
	assert.Contains(t, out, "file: com.example.Filter")
}

func TestMissingConfigFile(t *testing.T) {
	out, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.properties"),
		"--set", "mp.openapi.servers=https://only.example.com", "servers")
	require.NoError(t, err)
	assert.Contains(t, out, "global\thttps://only.example.com")
}

func TestReportMissingConfig(t *testing.T) {
	t.Run("ExplicitPathWarns", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		reportMissingConfig(zap.New(core), "/etc/app/missing.properties")

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, "/etc/app/missing.properties", entries[0].ContextMap()["path"])
	})

	t.Run("DiscoveryStaysQuiet", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		reportMissingConfig(zap.New(core), "")
		assert.Zero(t, logs.Len())
	})
}
