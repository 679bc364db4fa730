// Package keycode holds the static USB HID usage code to label table used
// when drawing keyboard layouts.
package keycode

import "sort"

// NotAvailable is the label for unmapped codes.
const NotAvailable = "[n/a]"

// Lookup returns the label for code, or [NotAvailable] when the code is
// outside the 8-bit range or unmapped.
func Lookup(code int) string {
	if code < 0 || code > 0xFF {
		return NotAvailable
	}
	if s, ok := Label(uint8(code)); ok {
		return s
	}
	return NotAvailable
}

// Label returns the label for code and whether the code is mapped.
func Label(code uint8) (string, bool) {
	s, ok := table[code]
	return s, ok
}

// Codes returns the mapped codes in ascending order.
func Codes() []uint8 {
	out := make([]uint8, 0, len(table))
	for c := range table {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
