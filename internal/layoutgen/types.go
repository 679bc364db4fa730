package layoutgen

import (
	"errors"
	"io"
)

// NullFunction is the function name firmware exports for an unset
// press/release handler.
const NullFunction = "NULL"

var (
	ErrMissingUIInfo = errors.New("--ui-info-file is required")
	ErrInvalidUIInfo = errors.New("invalid ui info")
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoLayerSlot   = errors.New("layer function without a layer-stack slot number")
)

type Config struct {
	UIInfoPath      string
	BuildScriptsDir string
	ConfigPath      string
	OutPath         string
	LabelsJSONPath  string
	ChecksumsPath   string
	RunLogPath      string

	// Stdout receives the document when OutPath is empty.
	Stdout io.Writer
}

// Tokens are the fixed labels drawn for keys whose function is not tied to
// a keycode.
type Tokens struct {
	Bootloader string `json:"bootloader"`
	Null       string `json:"noop"`
	Numpad     string `json:"numpad"`
}

// FontSize is the textual rewrite applied to the rendered layer sections.
// Labels are longer than the position names the template was drawn for.
type FontSize struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Settings struct {
	Title    string   `json:"title"`
	Tokens   Tokens   `json:"tokens"`
	FontSize FontSize `json:"font_size"`
}

func DefaultSettings() Settings {
	return Settings{
		Title: "Firmware keyboard layout",
		Tokens: Tokens{
			Bootloader: "[btldr]",
			Null:       "[null]",
			Numpad:     "[num]",
		},
		FontSize: FontSize{
			From: "font-size: 14px",
			To:   "font-size: 10px",
		},
	}
}

// LayerLabels holds the classified label of every matrix position on one
// layer, in matrix-position order.
type LayerLabels struct {
	Layer  int      `json:"layer"`
	Labels []string `json:"labels"`
}

type Result struct {
	Document  string        `json:"-"`
	Positions []string      `json:"positions"`
	Layers    []LayerLabels `json:"layers"`
	// Missing lists matrix positions with no content slot in the template.
	Missing   []string `json:"missing,omitempty"`
	Artifacts []string `json:"-"`
}
