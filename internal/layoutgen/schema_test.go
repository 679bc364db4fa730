package layoutgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIInfoSchema(t *testing.T) {
	b, err := UIInfoSchema()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "layout-gen UI info", doc["title"])
	assert.Equal(t, []interface{}{"mappings"}, doc["required"])

	s := string(b)
	assert.Contains(t, s, `"matrix-positions"`)
	assert.Contains(t, s, `"matrix-layout"`)
	assert.Contains(t, s, `"git-commit-id"`)
	assert.Contains(t, s, `"prefixItems"`)
	assert.NotContains(t, s, `"$ref"`)
}
