package layoutgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/solardome/layout-gen/internal/keycode"
)

// Kind is the family a key function belongs to for labelling purposes.
type Kind int

const (
	KindPlain Kind = iota
	KindTransparent
	KindShiftPressRelease
	KindJumpToBootloader
	KindNoOp
	KindNumpad
	KindLayer
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindTransparent:
		return "transparent"
	case KindShiftPressRelease:
		return "shift_press_release"
	case KindJumpToBootloader:
		return "jump_to_bootloader"
	case KindNoOp:
		return "noop"
	case KindNumpad:
		return "numpad"
	case KindLayer:
		return "layer"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Function is a classified key function.
type Function struct {
	Kind    Kind
	Keycode int

	// Layer functions only.
	Slot string
	Push bool
	Pop  bool
}

var layerSlotPattern = regexp.MustCompile(`[0-9]+`)

// Classify maps a key function to its kind. Rules are checked in a fixed
// order and the first match wins.
func Classify(fn KeyFunction) (Function, error) {
	press, release := fn.Press, fn.Release
	either := func(sub string) bool {
		return strings.Contains(press, sub) || strings.Contains(release, sub)
	}

	f := Function{Keycode: fn.Keycode}
	switch {
	case strings.Contains(press, "transparent"):
		f.Kind = KindTransparent
	case strings.Contains(press, "kbfun_shift_press_release"):
		f.Kind = KindShiftPressRelease
	case strings.Contains(press, "jump_to_bootloader"):
		f.Kind = KindJumpToBootloader
	case press == NullFunction && release == NullFunction:
		f.Kind = KindNoOp
	case either("numpad"):
		f.Kind = KindNumpad
	case either("layer"):
		slot := layerSlotPattern.FindString(press + release)
		if slot == "" {
			return Function{}, fmt.Errorf("%w: press %q release %q", ErrNoLayerSlot, press, release)
		}
		f.Kind = KindLayer
		f.Slot = slot
		f.Push = either("push")
		f.Pop = either("pop")
	default:
		f.Kind = KindPlain
	}
	return f, nil
}

// Label renders the text drawn on the key.
func (f Function) Label(t Tokens) string {
	switch f.Kind {
	case KindTransparent:
		return ""
	case KindShiftPressRelease:
		return "sh " + keycode.Lookup(f.Keycode)
	case KindJumpToBootloader:
		return t.Bootloader
	case KindNoOp:
		return t.Null
	case KindNumpad:
		return t.Numpad
	case KindLayer:
		var b strings.Builder
		b.WriteString("la ")
		b.WriteString(f.Slot)
		b.WriteByte(' ')
		if f.Push {
			b.WriteByte('+')
		}
		if f.Pop {
			b.WriteByte('-')
		}
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(f.Keycode))
		return b.String()
	default:
		return keycode.Lookup(f.Keycode)
	}
}

// ClassifyLayer labels every key of one layer. fns must be aligned with
// positions.
func ClassifyLayer(layer int, positions []string, fns []KeyFunction, t Tokens) (LayerLabels, error) {
	if len(fns) != len(positions) {
		return LayerLabels{}, fmt.Errorf("%w: layer %d has %d key functions for %d matrix positions", ErrInvalidUIInfo, layer, len(fns), len(positions))
	}
	out := LayerLabels{Layer: layer, Labels: make([]string, len(fns))}
	for i, fn := range fns {
		f, err := Classify(fn)
		if err != nil {
			return LayerLabels{}, fmt.Errorf("layer %d position %s: %w", layer, positions[i], err)
		}
		out.Labels[i] = f.Label(t)
	}
	return out, nil
}
