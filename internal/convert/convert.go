// Package convert exposes the simplified↔traditional Chinese conversion
// contract the contexts render candidates through. The engine treats the
// converter as an external collaborator; Table is the built-in
// character-level default.
package convert

import "strings"

// Converter turns simplified Chinese text into its traditional form.
// Implementations must pass unknown text through unchanged.
type Converter interface {
	SimpToTrad(src string) string
}

// Identity performs no conversion.
type Identity struct{}

// SimpToTrad returns src unchanged.
func (Identity) SimpToTrad(src string) string { return src }

// Table converts rune-by-rune through a fixed mapping. It cannot handle
// one-to-many phrase conversions; plug an opencc-backed Converter for
// those.
type Table struct {
	m map[rune]rune
}

// NewTable builds a converter over the packaged character mapping.
func NewTable() *Table {
	return &Table{m: simpToTrad}
}

// SimpToTrad converts each mapped rune and passes the rest through.
func (t *Table) SimpToTrad(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, r := range src {
		if tr, ok := t.m[r]; ok {
			r = tr
		}
		b.WriteRune(r)
	}
	return b.String()
}
