package layoutgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAssetsDefault(t *testing.T) {
	a, err := LoadAssets("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAssets(), a)
	assert.Contains(t, a.Template, "keyinfo('k50')")
	assert.Contains(t, a.Script, "function keyinfo(position, layer)")
}

func TestLoadAssetsDir(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadAssets(dir)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateFile), []byte("<svg></svg>"), 0o644))
	a, err := LoadAssets(dir)
	require.NoError(t, err)
	assert.Equal(t, Assets{Template: "<svg></svg>"}, a)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ScriptFile), []byte("var x;"), 0o644))
	a, err = LoadAssets(dir)
	require.NoError(t, err)
	assert.Equal(t, "var x;", a.Script)
}
