package layoutgen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFunctionUnmarshal(t *testing.T) {
	var fns []KeyFunction
	require.NoError(t, json.Unmarshal([]byte(`[[4,"a","b"],[null,null,"NULL"],[7,"x",null]]`), &fns))
	assert.Equal(t, []KeyFunction{
		{4, "a", "b"},
		{0, NullFunction, NullFunction},
		{7, "x", NullFunction},
	}, fns)

	var fn KeyFunction
	assert.Error(t, json.Unmarshal([]byte(`[4,"a"]`), &fn))
	assert.Error(t, json.Unmarshal([]byte(`["4","a","b"]`), &fn))
	assert.Error(t, json.Unmarshal([]byte(`{"keycode":4}`), &fn))
}

func TestKeyFunctionMarshal(t *testing.T) {
	b, err := json.Marshal(KeyFunction{0x2F, "kbfun_shift_press_release", "NULL"})
	require.NoError(t, err)
	assert.JSONEq(t, `[47,"kbfun_shift_press_release","NULL"]`, string(b))
}

func TestUIInfoValidate(t *testing.T) {
	info := &UIInfo{Mappings: Mappings{
		MatrixPositions: []string{"k1", "k2", "k1", ""},
		MatrixLayout: [][]KeyFunction{
			make([]KeyFunction, 4),
			make([]KeyFunction, 3),
		},
	}}
	err := info.Validate()
	require.ErrorIs(t, err, ErrInvalidUIInfo)
	msg := err.Error()
	assert.Contains(t, msg, `duplicate name "k1"`)
	assert.Contains(t, msg, "matrix-positions[3]: empty name")
	assert.Contains(t, msg, "matrix-layout[1]: 3 key functions for 4 matrix positions")
	assert.NotContains(t, msg, "matrix-layout[0]")

	empty := &UIInfo{}
	err = empty.Validate()
	require.ErrorIs(t, err, ErrInvalidUIInfo)
	assert.Contains(t, err.Error(), "matrix-positions: missing or empty")
	assert.Contains(t, err.Error(), "matrix-layout: missing or empty")
}

func TestLoadUIInfo(t *testing.T) {
	info, digest, err := LoadUIInfo(filepath.Join("testdata", "ergodox-ui-info.json"))
	require.NoError(t, err)
	assert.Len(t, digest, 64)
	assert.Len(t, info.Mappings.MatrixPositions, 80)
	assert.Len(t, info.Mappings.MatrixLayout, 3)
	assert.Equal(t, "2a5a6d7", info.Miscellaneous.GitCommitID)

	_, _, err = LoadUIInfo(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"mappings":{"matrix-positions":["k1"],"matrix-layout":[[]]}}`), 0o644))
	_, digest, err = LoadUIInfo(bad)
	require.ErrorIs(t, err, ErrInvalidUIInfo)
	assert.NotEmpty(t, digest)
}
