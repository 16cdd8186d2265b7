// Package codepage provides fixed bijective tables between byte values and
// visible Unicode glyphs, so that every one of the 256 byte values can be
// shown as a unique, non-empty character.
package codepage

import (
	"github.com/cockroachdb/errors"

	"base256/pkg/utf8codec"
)

// Substitute glyphs for byte values that would otherwise be invisible or
// collide with another entry.
const (
	AltNull       rune = 0x2205 // empty set
	AltSpace      rune = 0x2423 // open box
	AltSoftHyphen rune = 0x2E1A // hyphen with diaeresis
	AltNBSP       rune = 0x25AF // white vertical rectangle
	AltDelete     rune = 0x2302 // house
)

// ErrDuplicateGlyph is returned by New when two byte values share a glyph.
var ErrDuplicateGlyph = errors.New("duplicate glyph in codepage")

// Table maps each byte value to a glyph and back.
type Table struct {
	name    string
	glyphs  [256]rune
	inverse map[rune]byte
}

// New builds a table and its inverse. The table must be a bijection.
func New(name string, glyphs [256]rune) (*Table, error) {
	inverse := make(map[rune]byte, len(glyphs))
	for i, r := range glyphs {
		if prev, ok := inverse[r]; ok {
			return nil, errors.Wrapf(ErrDuplicateGlyph, "%s: U+%04X at 0x%02X and 0x%02X", name, r, prev, i)
		}
		inverse[r] = byte(i)
	}
	return &Table{
		name:    name,
		glyphs:  glyphs,
		inverse: inverse,
	}, nil
}

func mustNew(name string, glyphs [256]rune) *Table {
	t, err := New(name, glyphs)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the codepage name.
func (t *Table) Name() string {
	return t.name
}

// Glyph returns the glyph for b.
func (t *Table) Glyph(b byte) rune {
	return t.glyphs[b]
}

// Byte returns the byte value shown as r, if any.
func (t *Table) Byte(r rune) (byte, bool) {
	b, ok := t.inverse[r]
	return b, ok
}

// Glyphs returns a copy of the forward table.
func (t *Table) Glyphs() [256]rune {
	return t.glyphs
}

// String renders all 256 glyphs in byte order.
func (t *Table) String() string {
	return string(utf8codec.Encode(t.glyphs[:]))
}
