package layoutgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLabels(t *testing.T) {
	tokens := DefaultSettings().Tokens
	tests := []struct {
		name string
		fn   KeyFunction
		want string
		kind Kind
	}{
		{"plain", KeyFunction{0x04, "kbfun_press_release", "kbfun_press_release"}, "a A", KindPlain},
		{"unmapped", KeyFunction{0xA5, "kbfun_press_release", "kbfun_press_release"}, "[n/a]", KindPlain},
		{"transparent", KeyFunction{0x04, "kbfun_transparent", "kbfun_transparent"}, "", KindTransparent},
		{"shifted", KeyFunction{0x1E, "kbfun_shift_press_release", "kbfun_shift_press_release"}, "sh 1 !", KindShiftPressRelease},
		{"bootloader", KeyFunction{0, "kbfun_jump_to_bootloader", "NULL"}, "[btldr]", KindJumpToBootloader},
		{"noop", KeyFunction{0, "NULL", "NULL"}, "[null]", KindNoOp},
		{"noop ignores keycode", KeyFunction{0x04, "NULL", "NULL"}, "[null]", KindNoOp},
		{"numpad in release", KeyFunction{0, "NULL", "kbfun_layermask_numpad_toggle"}, "[num]", KindNumpad},
		{"numpad wins over layer", KeyFunction{0x53, "kbfun_layermask_numpad_toggle", "NULL"}, "[num]", KindNumpad},
		{"push and pop", KeyFunction{5, "kbfun_layer_push_2", "kbfun_layer_pop_2"}, "la 2 +- 5", KindLayer},
		{"push and pop short names", KeyFunction{5, "push_layer_2", "pop_layer_2"}, "la 2 +- 5", KindLayer},
		{"push only", KeyFunction{1, "kbfun_layer_push_3", "NULL"}, "la 3 + 1", KindLayer},
		{"pop only", KeyFunction{0, "kbfun_layer_pop_1", "NULL"}, "la 1 - 0", KindLayer},
		{"sticky", KeyFunction{1, "kbfun_layer_sticky_1", "kbfun_layer_sticky_1"}, "la 1  1", KindLayer},
		{"slot from release", KeyFunction{4, "kbfun_layer_toggle", "kbfun_layer_pop_10"}, "la 10 - 4", KindLayer},
		{"transparent beats layer", KeyFunction{0, "kbfun_transparent_layer_1", "kbfun_layer_pop_1"}, "", KindTransparent},
		{"shift beats layer", KeyFunction{0x2F, "kbfun_shift_press_release", "kbfun_layer_pop_1"}, "sh [ {", KindShiftPressRelease},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Classify(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, f.Kind)
			assert.Equal(t, tt.want, f.Label(tokens))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	fn := KeyFunction{3, "kbfun_layer_push_1", "kbfun_layer_pop_1"}
	first, err := Classify(fn)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Classify(fn)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifyLayerWithoutSlot(t *testing.T) {
	_, err := Classify(KeyFunction{1, "kbfun_layer_toggle", "NULL"})
	require.ErrorIs(t, err, ErrNoLayerSlot)
}

func TestClassifyCustomTokens(t *testing.T) {
	tokens := Tokens{Bootloader: "BOOT", Null: "-", Numpad: "NUM"}
	f, err := Classify(KeyFunction{0, "kbfun_jump_to_bootloader", "NULL"})
	require.NoError(t, err)
	assert.Equal(t, "BOOT", f.Label(tokens))
}

func TestClassifyLayer(t *testing.T) {
	positions := []string{"k1", "k2", "k3"}
	fns := []KeyFunction{
		{0x04, "kbfun_press_release", "kbfun_press_release"},
		{0, "kbfun_transparent", "kbfun_transparent"},
		{0, "NULL", "NULL"},
	}
	got, err := ClassifyLayer(2, positions, fns, DefaultSettings().Tokens)
	require.NoError(t, err)
	assert.Equal(t, LayerLabels{Layer: 2, Labels: []string{"a A", "", "[null]"}}, got)

	_, err = ClassifyLayer(0, positions, fns[:2], DefaultSettings().Tokens)
	require.ErrorIs(t, err, ErrInvalidUIInfo)

	fns[1] = KeyFunction{0, "kbfun_layer_toggle", "NULL"}
	_, err = ClassifyLayer(0, positions, fns, DefaultSettings().Tokens)
	require.ErrorIs(t, err, ErrNoLayerSlot)
	assert.Contains(t, err.Error(), "position k2")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "layer", KindLayer.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}
