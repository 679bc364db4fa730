package layoutgen

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	// segmentContent is element text that is exactly a position name.
	segmentContent
	// segmentScriptRef is a quoted call argument naming a position, e.g.
	// keyinfo('k01').
	segmentScriptRef
)

type segment struct {
	kind  segmentKind
	text  string
	name  string
	quote byte
}

// Template is a parsed layout template. Substitution only touches the slots
// found at parse time, so names sharing a prefix (k1, k10) or appearing in
// unrelated markup are never rewritten.
type Template struct {
	segments []segment
	slots    []string
}

var scriptRefPattern = regexp.MustCompile(`\((['"])([^'"()\s]+)(['"])\)`)

// ParseTemplate tokenizes src and records every content slot and script
// reference that names one of positions. The raw bytes of all other tokens
// are kept verbatim.
func ParseTemplate(src string, positions []string) (*Template, error) {
	names := make(map[string]bool, len(positions))
	for _, p := range positions {
		names[p] = true
	}

	t := &Template{}
	z := html.NewTokenizer(strings.NewReader(src))
	rawParent := ""
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				break
			}
			return nil, fmt.Errorf("tokenize template: %w", z.Err())
		}
		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				rawParent = string(name)
			}
			t.appendScriptRefs(raw, names)
		case html.SelfClosingTagToken:
			// <script/>, <style/> and <title/> have no body to read.
			z.NextIsNotRawText()
			t.appendScriptRefs(raw, names)
		case html.EndTagToken:
			rawParent = ""
			t.appendLiteral(raw)
		case html.TextToken:
			switch {
			case rawParent == "script":
				t.appendScriptRefs(raw, names)
			case rawParent == "" && names[raw]:
				t.segments = append(t.segments, segment{kind: segmentContent, name: raw})
				t.slots = append(t.slots, raw)
			default:
				t.appendLiteral(raw)
			}
		default:
			t.appendLiteral(raw)
		}
	}
	return t, nil
}

func (t *Template) appendLiteral(s string) {
	if s == "" {
		return
	}
	if n := len(t.segments); n > 0 && t.segments[n-1].kind == segmentLiteral {
		t.segments[n-1].text += s
		return
	}
	t.segments = append(t.segments, segment{kind: segmentLiteral, text: s})
}

func (t *Template) appendScriptRefs(s string, names map[string]bool) {
	last := 0
	for _, m := range scriptRefPattern.FindAllStringSubmatchIndex(s, -1) {
		open, name, closing := s[m[2]:m[3]], s[m[4]:m[5]], s[m[6]:m[7]]
		if open != closing || !names[name] {
			continue
		}
		t.appendLiteral(s[last:m[0]])
		t.segments = append(t.segments, segment{kind: segmentScriptRef, name: name, quote: open[0]})
		last = m[1]
	}
	t.appendLiteral(s[last:])
}

// Positions returns the position names of the content slots in template
// order.
func (t *Template) Positions() []string {
	return append([]string(nil), t.slots...)
}

// ScriptRefs returns the number of script references found.
func (t *Template) ScriptRefs() int {
	n := 0
	for _, s := range t.segments {
		if s.kind == segmentScriptRef {
			n++
		}
	}
	return n
}

// Render returns a copy of the template for one layer: content slots are
// replaced with the escaped label and script references gain the layer
// number as a second argument. Slots with no label keep the position name.
func (t *Template) Render(layer int, labels map[string]string) string {
	var b strings.Builder
	layerArg := strconv.Itoa(layer)
	for _, s := range t.segments {
		switch s.kind {
		case segmentContent:
			label, ok := labels[s.name]
			if !ok {
				b.WriteString(s.name)
				continue
			}
			b.WriteString(html.EscapeString(label))
		case segmentScriptRef:
			b.WriteByte('(')
			b.WriteByte(s.quote)
			b.WriteString(s.name)
			b.WriteByte(s.quote)
			b.WriteString(", ")
			b.WriteString(layerArg)
			b.WriteByte(')')
		default:
			b.WriteString(s.text)
		}
	}
	return b.String()
}
