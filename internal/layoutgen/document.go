package layoutgen

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/solardome/layout-gen/internal/keycode"
)

// layoutData is embedded in the document head for the key info script.
type layoutData struct {
	Positions []string        `json:"positions"`
	Layers    [][]KeyFunction `json:"layers"`
	Labels    [][]string      `json:"labels"`
}

// AdjustFontSize applies the font-size rewrite to s. Applying it to its own
// output is a no-op as long as fs.To does not contain fs.From, which
// [Settings.Validate] enforces.
func AdjustFontSize(s string, fs FontSize) string {
	if fs.From == "" {
		return s
	}
	return strings.ReplaceAll(s, fs.From, fs.To)
}

func renderLayers(tpl *Template, positions []string, layers []LayerLabels, fs FontSize) string {
	var b strings.Builder
	for _, layer := range layers {
		labels := make(map[string]string, len(positions))
		for i, name := range positions {
			labels[name] = layer.Labels[i]
		}
		fmt.Fprintf(&b, "<h2>Layer %d</h2>\n", layer.Layer)
		b.WriteString(tpl.Render(layer.Layer, labels))
		b.WriteString("\n")
	}
	return AdjustFontSize(b.String(), fs)
}

func renderDocument(info *UIInfo, assets Assets, layers []LayerLabels, body string, s Settings) (string, error) {
	data := layoutData{
		Positions: info.Mappings.MatrixPositions,
		Layers:    info.Mappings.MatrixLayout,
		Labels:    make([][]string, 0, len(layers)),
	}
	for _, l := range layers {
		data.Labels = append(data.Labels, l.Labels)
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode layout data: %w", err)
	}

	title := html.EscapeString(s.Title)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + title + "</title>\n")
	b.WriteString(`<style>
body { font-family: sans-serif; color: #073642; background: #ffffff; margin: 2em; }
h2 { margin-top: 2em; border-bottom: 1px solid #93a1a1; }
code { background: #eee8d5; padding: 0 0.2em; }
.provenance { color: #586e75; }
.keyinfo { position: sticky; top: 0; min-height: 1.4em; padding: 0.4em; background: #fdf6e3; border: 1px solid #93a1a1; font-family: monospace; }
</style>
`)
	b.WriteString("<script>\nvar layoutInfo = ")
	b.Write(dataJSON)
	b.WriteString(";\n</script>\n")
	if strings.TrimSpace(assets.Script) != "" {
		b.WriteString("<script>\n")
		b.WriteString(assets.Script)
		if !strings.HasSuffix(assets.Script, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("</script>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>" + title + "</h1>\n")

	misc := info.Miscellaneous
	if misc.GitCommitDate != "" || misc.GitCommitID != "" {
		b.WriteString("<p class=\"provenance\">")
		if misc.GitCommitDate != "" {
			b.WriteString("git commit date: <code>" + html.EscapeString(misc.GitCommitDate) + "</code>")
		}
		if misc.GitCommitDate != "" && misc.GitCommitID != "" {
			b.WriteString("<br>")
		}
		if misc.GitCommitID != "" {
			b.WriteString("git commit id: <code>" + html.EscapeString(misc.GitCommitID) + "</code>")
		}
		b.WriteString("</p>\n")
	}

	writeLegend(&b, s.Tokens)
	b.WriteString("<div id=\"keyinfo\" class=\"keyinfo\"></div>\n")

	b.WriteString(body)

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func writeLegend(b *strings.Builder, t Tokens) {
	code := func(s string) string { return "<code>" + html.EscapeString(s) + "</code>" }
	b.WriteString("<h2>Notes</h2>\n<ul>\n")
	b.WriteString("<li>Each key shows what it does on that layer. Blank keys are transparent: they fall through to the layer below.</li>\n")
	b.WriteString("<li>" + code("sh X") + ": sends X with shift held.</li>\n")
	b.WriteString("<li>" + code("la N +- L") + ": layer key using layer-stack slot N. " + code("+") + " pushes layer L, " + code("-") + " pops it.</li>\n")
	b.WriteString("<li>" + code(t.Bootloader) + ": jumps to the bootloader.</li>\n")
	b.WriteString("<li>" + code(t.Null) + ": does nothing.</li>\n")
	b.WriteString("<li>" + code(t.Numpad) + ": numpad control.</li>\n")
	b.WriteString("<li>" + code(keycode.NotAvailable) + ": keycode with no known label.</li>\n")
	b.WriteString("<li>Click a key to see its keycode and press/release functions.</li>\n")
	b.WriteString("</ul>\n")
}
