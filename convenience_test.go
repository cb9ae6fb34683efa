// FILE: lixenwraith/oasconfig/convenience_test.go
package oasconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuickFunctions tests the one-call setup helpers
func TestQuickFunctions(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "microprofile-config.properties")
	require.NoError(t, os.WriteFile(configFile, []byte("mp.openapi.filter=from.file\nmp.openapi.servers=https://file.example.com\n"), 0644))

	t.Run("Quick", func(t *testing.T) {
		t.Setenv("QUICKTEST_MP_OPENAPI_SERVERS", "https://env.example.com")

		r, err := Quick("QUICKTEST_", configFile)
		require.NoError(t, err)

		filter, _, err := r.Filter()
		require.NoError(t, err)
		assert.Equal(t, "from.file", filter)

		servers, err := r.Servers()
		require.NoError(t, err)
		assert.True(t, servers.Contains("https://env.example.com"))
		assert.Equal(t, 1, servers.Cardinality())
	})

	t.Run("QuickMissingFile", func(t *testing.T) {
		r, err := Quick("QUICKTEST_", filepath.Join(tmpDir, "missing.toml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
		require.NotNil(t, r)

		_, ok, err := r.Filter()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MustQuick", func(t *testing.T) {
		assert.NotPanics(t, func() {
			r := MustQuick("QUICKTEST_", filepath.Join(tmpDir, "missing.toml"))
			assert.NotNil(t, r)
		})

		broken := filepath.Join(tmpDir, "broken.json")
		require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
		assert.Panics(t, func() {
			MustQuick("QUICKTEST_", broken)
		})
	})
}

// TestNotFoundOnly tests classification of joined load errors
func TestNotFoundOnly(t *testing.T) {
	assert.True(t, isNotFoundOnly(ErrConfigNotFound))
	assert.True(t, isNotFoundOnly(errors.Join(ErrConfigNotFound)))
	assert.False(t, isNotFoundOnly(errors.Join(ErrConfigNotFound, ErrValueSize)))
	assert.False(t, isNotFoundOnly(ErrCLIParse))
}

// TestDebug tests the per-source listing
func TestDebug(t *testing.T) {
	p := New()
	require.NoError(t, p.SetDefault(KeyFilter, "default.Filter"))
	require.NoError(t, p.SetSource(KeyFilter, SourceCLI, "cli.Filter"))
	require.NoError(t, p.SetSource(KeyServers, SourceFile, "https://a.example.com"))

	debug := p.Debug()
	assert.Contains(t, debug, "Properties Debug Info")
	assert.Contains(t, debug, KeyFilter+":")
	assert.Contains(t, debug, "Current: cli.Filter (cli)")
	assert.Contains(t, debug, "default: default.Filter")
	assert.Contains(t, debug, "Current: https://a.example.com (file)")
}
