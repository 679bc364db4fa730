package layoutgen

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// UIInfoSchema returns the JSON Schema of the fields read from a UI info
// document.
func UIInfoSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	js := r.Reflect(&UIInfo{})
	js.Title = "layout-gen UI info"
	js.Description = "Key matrix and per-layer key functions exported by the firmware build."

	b, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json schema: %w", err)
	}
	return b, nil
}
