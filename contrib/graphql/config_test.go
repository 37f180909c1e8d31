package graphql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStringList(t *testing.T) {
	t.Run("scalar node decodes to a single entry", func(t *testing.T) {
		var cfg Config
		err := yaml.Unmarshal([]byte("schema: api.graphql\n"), &cfg)
		require.NoError(t, err)
		assert.Equal(t, StringList{"api.graphql"}, cfg.Schema)
	})

	t.Run("sequence node decodes to all entries", func(t *testing.T) {
		var cfg Config
		err := yaml.Unmarshal([]byte("schema:\n  - a.graphql\n  - b.graphql\n"), &cfg)
		require.NoError(t, err)
		assert.Equal(t, StringList{"a.graphql", "b.graphql"}, cfg.Schema)
	})

	t.Run("mapping node is rejected", func(t *testing.T) {
		var cfg Config
		err := yaml.Unmarshal([]byte("schema:\n  path: a.graphql\n"), &cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected string or list")
	})

	t.Run("single entry marshals back to a scalar", func(t *testing.T) {
		data, err := yaml.Marshal(&Config{Schema: StringList{"api.graphql"}})
		require.NoError(t, err)
		assert.Contains(t, string(data), "schema: api.graphql")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields an empty config", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Schema)
		assert.NotNil(t, cfg.Scalars)
	})

	t.Run("round trip preserves the config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "graphql.yaml")
		want := &Config{
			Schema:    StringList{"api.graphql"},
			Unit:      "Models",
			Namespace: StringList{"API"},
			Scalars:   map[string]string{"DateTime": "TDateTime"},
		}
		require.NoError(t, SaveConfig(path, want))
		got, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("unit: [unclosed"), 0o644))
		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse graphql config")
	})
}

func TestConfigHelpers(t *testing.T) {
	t.Run("schema paths deduplicate", func(t *testing.T) {
		var cfg Config
		cfg.AddSchemaPath("a.graphql")
		cfg.AddSchemaPath("b.graphql")
		cfg.AddSchemaPath("a.graphql")
		assert.Equal(t, StringList{"a.graphql", "b.graphql"}, cfg.Schema)
	})

	t.Run("scalar mappings initialize on demand", func(t *testing.T) {
		var cfg Config
		cfg.SetScalar("Upload", "TBytes")
		assert.Equal(t, map[string]string{"Upload": "TBytes"}, cfg.Scalars)
	})
}
