package layoutgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"

	svg "github.com/ajstarks/svgo"
)

type ScaffoldOptions struct {
	// Columns is the number of keys per row; 0 means 14.
	Columns int
	// KeySize is the key pitch in pixels; 0 means 54.
	KeySize int
}

const (
	scaffoldMargin = 20
	scaffoldGap    = 4
)

// A scaffold name is written unescaped into a quoted script argument and as
// element text, and must read back as both.
var scaffoldNamePattern = regexp.MustCompile(`^[^'"()<>&\s]+$`)

var ErrScaffoldName = errors.New("position name cannot be used in a scaffold")

// Scaffold writes a grid template with one key per matrix position. Every
// key carries a content slot and a keyinfo script reference, so the output
// can be dropped into a build-scripts directory as is.
func Scaffold(w io.Writer, positions []string, opts ScaffoldOptions) error {
	if len(positions) == 0 {
		return errors.New("scaffold: no matrix positions")
	}
	for i, name := range positions {
		if !scaffoldNamePattern.MatchString(name) {
			return fmt.Errorf("%w: matrix-positions[%d] %q", ErrScaffoldName, i, name)
		}
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = 14
	}
	pitch := opts.KeySize
	if pitch <= 0 {
		pitch = 54
	}
	rows := (len(positions) + cols - 1) / cols
	width := 2*scaffoldMargin + cols*pitch
	height := 2*scaffoldMargin + rows*pitch
	size := pitch - scaffoldGap

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height, `class="layout"`)
	canvas.Style("text/css",
		".keycap { fill: #fdf6e3; stroke: #586e75; stroke-width: 1; cursor: pointer; }\n",
		".label { font-family: sans-serif; font-size: 14px; fill: #073642; text-anchor: middle; dominant-baseline: middle; pointer-events: none; }\n",
	)
	for i, name := range positions {
		x := scaffoldMargin + (i%cols)*pitch
		y := scaffoldMargin + (i/cols)*pitch
		canvas.Group(`class="key"`, fmt.Sprintf(`onclick="keyinfo('%s')"`, name))
		canvas.Roundrect(x, y, size, size, 5, 5, `class="keycap"`)
		canvas.Text(x+size/2, y+size/2, name, `class="label"`)
		canvas.Gend()
	}
	canvas.End()

	// The XML prolog is dropped: the template is embedded in HTML.
	out := buf.Bytes()
	if bytes.HasPrefix(out, []byte("<?xml")) {
		if i := bytes.IndexByte(out, '\n'); i >= 0 {
			out = out[i+1:]
		}
	}
	_, err := w.Write(out)
	return err
}
