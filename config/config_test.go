package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	conf := Default()
	assert.Equal(t, DefaultListen, conf.Listen)
	assert.False(t, conf.Debug)
	assert.Empty(t, conf.DefaultSyntax)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `listen: "0.0.0.0:8080"
debug: true
default_syntax: att
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", conf.Listen)
	assert.True(t, conf.Debug)
	assert.Equal(t, "att", conf.DefaultSyntax)
}

// Fields absent from the file keep their defaults.
func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0600))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultListen, conf.Listen)
	assert.True(t, conf.Debug)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
