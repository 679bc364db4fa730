package layoutgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/invopop/jsonschema"
)

// UIInfo is the subset of the firmware's UI info document the generator
// reads.
type UIInfo struct {
	Mappings      Mappings      `json:"mappings"`
	Miscellaneous Miscellaneous `json:"miscellaneous,omitempty"`
}

type Mappings struct {
	MatrixPositions []string        `json:"matrix-positions" jsonschema_description:"Name of every physical key slot. Order is shared with each layer of matrix-layout."`
	MatrixLayout    [][]KeyFunction `json:"matrix-layout" jsonschema_description:"One entry per layer; each layer holds one [keycode, press, release] triple per matrix position."`
}

type Miscellaneous struct {
	GitCommitDate string `json:"git-commit-date,omitempty" jsonschema_description:"Commit date of the firmware build, copied into the document header."`
	GitCommitID   string `json:"git-commit-id,omitempty" jsonschema_description:"Commit id of the firmware build, copied into the document header."`
}

// KeyFunction is one [keycode, press, release] triple of a layer.
type KeyFunction struct {
	Keycode int
	Press   string
	Release string
}

func (k *KeyFunction) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("key function: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("key function: want [keycode, press, release], got %d elements", len(raw))
	}
	var code *int
	if err := json.Unmarshal(raw[0], &code); err != nil {
		return fmt.Errorf("key function keycode: %w", err)
	}
	press, err := decodeFunctionName(raw[1])
	if err != nil {
		return fmt.Errorf("key function press: %w", err)
	}
	release, err := decodeFunctionName(raw[2])
	if err != nil {
		return fmt.Errorf("key function release: %w", err)
	}
	*k = KeyFunction{Press: press, Release: release}
	if code != nil {
		k.Keycode = *code
	}
	return nil
}

func (k KeyFunction) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{k.Keycode, k.Press, k.Release})
}

func (KeyFunction) JSONSchema() *jsonschema.Schema {
	name := &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "null"},
		},
	}
	return &jsonschema.Schema{
		Type:        "array",
		Description: "[keycode, press function, release function]; a null function name means NULL.",
		PrefixItems: []*jsonschema.Schema{
			{Type: "integer", Description: "USB HID usage code, 0-255."},
			name,
			name,
		},
	}
}

// decodeFunctionName accepts a function name string or JSON null, which
// firmware exporters emit for unset handlers.
func decodeFunctionName(raw json.RawMessage) (string, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	if s == nil {
		return NullFunction, nil
	}
	return *s, nil
}

func parseUIInfo(path string, payload []byte) (*UIInfo, error) {
	var info UIInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &info, nil
}

// LoadUIInfo reads, decodes and validates a UI info document. The returned
// digest is the sha256 of the file contents.
func LoadUIInfo(path string) (*UIInfo, string, error) {
	digest, payload, err := fileSHA256(path)
	if err != nil {
		return nil, "", fmt.Errorf("read ui info: %w", err)
	}
	info, err := parseUIInfo(path, payload)
	if err != nil {
		return nil, digest, err
	}
	return info, digest, nil
}

// Validate checks that every layer lines up with the matrix positions.
// All problems are reported together.
func (u *UIInfo) Validate() error {
	var merr *multierror.Error

	positions := u.Mappings.MatrixPositions
	if len(positions) == 0 {
		merr = multierror.Append(merr, errors.New("mappings.matrix-positions: missing or empty"))
	}
	seen := make(map[string]int, len(positions))
	for i, name := range positions {
		if strings.TrimSpace(name) == "" {
			merr = multierror.Append(merr, fmt.Errorf("mappings.matrix-positions[%d]: empty name", i))
			continue
		}
		if prev, ok := seen[name]; ok {
			merr = multierror.Append(merr, fmt.Errorf("mappings.matrix-positions[%d]: duplicate name %q (already at index %d)", i, name, prev))
			continue
		}
		seen[name] = i
	}

	if len(u.Mappings.MatrixLayout) == 0 {
		merr = multierror.Append(merr, errors.New("mappings.matrix-layout: missing or empty"))
	}
	for i, layer := range u.Mappings.MatrixLayout {
		if len(layer) != len(positions) {
			merr = multierror.Append(merr, fmt.Errorf("mappings.matrix-layout[%d]: %d key functions for %d matrix positions", i, len(layer), len(positions)))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUIInfo, err)
	}
	return nil
}
