package layoutgen

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names looked up in the build-scripts directory.
const (
	TemplateFile = "gen-layout--template.svg"
	ScriptFile   = "gen-layout--template.js"
)

//go:embed assets/gen-layout--template.svg
var defaultTemplate string

//go:embed assets/gen-layout--template.js
var defaultScript string

// Assets are the template inputs of a render: the SVG drawn once per layer
// and the script injected once into the document head.
type Assets struct {
	Template string
	Script   string
}

// DefaultAssets returns the ErgoDox template built into the binary.
func DefaultAssets() Assets {
	return Assets{Template: defaultTemplate, Script: defaultScript}
}

// LoadAssets reads the template files from dir, or returns [DefaultAssets]
// when dir is empty. The script fragment is optional.
func LoadAssets(dir string) (Assets, error) {
	if dir == "" {
		return DefaultAssets(), nil
	}
	tpl, err := os.ReadFile(filepath.Join(dir, TemplateFile))
	if err != nil {
		return Assets{}, fmt.Errorf("read template: %w", err)
	}
	a := Assets{Template: string(tpl)}
	script, err := os.ReadFile(filepath.Join(dir, ScriptFile))
	switch {
	case err == nil:
		a.Script = string(script)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Assets{}, fmt.Errorf("read script: %w", err)
	}
	return a, nil
}
