package notation

import (
	"fmt"
	"log/slog"

	"base256/pkg/codepage"
	"base256/pkg/utf8codec"
)

// tableNotation shows every byte as its codepage glyph.
type tableNotation struct {
	kind      Kind
	table     *codepage.Table
	newline   bool
	printNull bool
	logger    *slog.Logger
}

func (n *tableNotation) Kind() Kind { return n.kind }

func (n *tableNotation) Layout() Layout {
	return Layout{Width: 1, Printable: true}
}

func (n *tableNotation) EncodeChar(c, _, _ byte) string {
	if n.newline && c == '\n' {
		return "\n"
	}
	if n.printNull && c == 0 {
		return " "
	}
	return utf8codec.EncodeRune(n.table.Glyph(c))
}

func (n *tableNotation) Decode(text string) ([]byte, error) {
	if n.newline {
		return nil, unsupported("decode not supported with printnewline enabled")
	}
	if n.printNull {
		return nil, unsupported("decode not supported with printnull enabled")
	}
	return decodeGlyphs(text, n.logger, n.table.Byte), nil
}

const brailleBase rune = 0x2800

// brailleNotation maps byte b to U+2800+b, the dot pattern of its bits.
type brailleNotation struct {
	newline   bool
	printNull bool
	logger    *slog.Logger
}

func (n *brailleNotation) Kind() Kind { return Braille }

func (n *brailleNotation) Layout() Layout {
	return Layout{Width: 1}
}

func (n *brailleNotation) EncodeChar(c, _, _ byte) string {
	if c == 0 && !n.printNull {
		return utf8codec.EncodeRune(codepage.AltNull)
	}
	if n.newline && c == '\n' {
		return "\n"
	}
	return utf8codec.EncodeRune(brailleBase + rune(c))
}

// Decode accepts both renderings of the null byte, so only newline
// passthrough is lossy here.
func (n *brailleNotation) Decode(text string) ([]byte, error) {
	if n.newline {
		return nil, unsupported("decode not supported with printnewline enabled")
	}
	return decodeGlyphs(text, n.logger, func(r rune) (byte, bool) {
		if r == codepage.AltNull {
			return 0, true
		}
		if r >= brailleBase && r <= brailleBase+0xFF {
			return byte(r - brailleBase), true
		}
		return 0, false
	}), nil
}

// decodeGlyphs maps every code point of text back to a byte. Line breaks
// are layout and get skipped; glyphs without a byte become '?'.
func decodeGlyphs(text string, logger *slog.Logger, lookup func(rune) (byte, bool)) []byte {
	cps := utf8codec.DecodeString(text)
	result := make([]byte, 0, len(cps))
	for i, r := range cps {
		if r == '\n' {
			continue
		}
		b, ok := lookup(r)
		if !ok {
			logger.Warn("invalid character", "codepoint", fmt.Sprintf("U+%04X", r), "position", i)
			b = '?'
		}
		result = append(result, b)
	}
	return result
}
