package codepage

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestTablesAreBijections(t *testing.T) {
	for _, table := range []*Table{CP437, CP1252} {
		t.Run(table.Name(), func(t *testing.T) {
			seen := make(map[rune]bool, 256)
			for i := 0; i < 256; i++ {
				r := table.Glyph(byte(i))
				require.False(t, seen[r], "glyph U+%04X repeated at 0x%02X", r, i)
				seen[r] = true

				b, ok := table.Byte(r)
				require.True(t, ok)
				require.Equal(t, byte(i), b)
			}
		})
	}
}

func TestTablesKeepPrintableASCII(t *testing.T) {
	for _, table := range []*Table{CP437, CP1252} {
		for b := 0x21; b < 0x7F; b++ {
			require.Equal(t, rune(b), table.Glyph(byte(b)), "%s 0x%02X", table.Name(), b)
		}
		require.Equal(t, AltNull, table.Glyph(0))
		require.Equal(t, AltSpace, table.Glyph(' '))
		require.Equal(t, AltDelete, table.Glyph(0x7F))
	}
}

func TestCP1252Substitutes(t *testing.T) {
	require.Equal(t, AltNBSP, CP1252.Glyph(0xA0))
	require.Equal(t, AltSoftHyphen, CP1252.Glyph(0xAD))
	for _, b := range []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D} {
		require.Greater(t, CP1252.Glyph(b), rune(0x9F), "0x%02X must not be a C1 control", b)
	}
	require.Equal(t, AltNBSP, CP437.Glyph(0xFF))
}

func TestNewRejectsDuplicates(t *testing.T) {
	glyphs := CP437.Glyphs()
	glyphs[0x41] = glyphs[0x42]

	_, err := New("broken", glyphs)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateGlyph))
	require.Contains(t, err.Error(), "broken")
	require.Contains(t, err.Error(), "U+0042")
}

func TestByteUnmapped(t *testing.T) {
	_, ok := CP437.Byte(0x1F600)
	require.False(t, ok)
}

func TestString(t *testing.T) {
	s := []rune(CP437.String())
	require.Len(t, s, 256)
	require.Equal(t, 'A', s[0x41])
}
