package notation

import (
	"fmt"
)

// literal is the framing shared by the string literal notations. Each byte
// is escaped on its own; multi-byte characters are not grouped.
type literal struct {
	quote        string
	lineEnd      string
	noLineBreaks bool
}

func (l literal) Open() string  { return l.quote }
func (l literal) Close() string { return l.quote }

func (l literal) Layout() Layout {
	layout := Layout{
		Width:        1,
		Printable:    true,
		AlignOutput:  true,
		LineEnd:      l.lineEnd,
		NoLineBreaks: l.noLineBreaks,
	}
	if !l.noLineBreaks {
		layout.LineBegin = l.quote
	}
	return layout
}

// shortEscape handles the single character escapes every supported language
// shares, plus the escaped quote character.
func shortEscape(c, quote byte) (string, bool) {
	switch c {
	case '\b':
		return `\b`, true
	case '\f':
		return `\f`, true
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	case '\\':
		return `\\`, true
	case quote:
		return `\` + string(rune(quote)), true
	}
	return "", false
}

// octalEscape writes c in octal. Fewer than three digits are only used when
// the next byte is not an octal digit, which would otherwise extend the
// escape.
func octalEscape(c, next byte) string {
	digitNext := next >= '0' && next <= '7'
	switch {
	case c < 8 && !digitNext:
		return fmt.Sprintf(`\%o`, c)
	case c < 64 && !digitNext:
		return fmt.Sprintf(`\%02o`, c)
	}
	return fmt.Sprintf(`\%03o`, c)
}

// octalString covers ANSI C and Java, which both end an octal escape after
// at most three digits. Hex escapes are avoided because they do not end.
type octalString struct {
	literal
	kind Kind
	// cEscapes enables \a, \v and the trigraph guard.
	cEscapes bool
}

func (n *octalString) Kind() Kind { return n.kind }

func (n *octalString) EncodeChar(c, prev, next byte) string {
	if s, ok := shortEscape(c, '"'); ok {
		return s
	}
	if n.cEscapes {
		switch {
		case c == '\a':
			return `\a`
		case c == '\v':
			return `\v`
		case c == '?' && prev == '?':
			return `\?`
		}
	}
	if isPrintable(c) {
		return string(rune(c))
	}
	return octalEscape(c, next)
}

// jsString uses \xHH escapes. \0 is only safe when no decimal digit follows,
// since \0 followed by a digit reads as a legacy octal escape.
type jsString struct {
	literal
}

func (n *jsString) Kind() Kind { return JSString }

func (n *jsString) EncodeChar(c, _, next byte) string {
	if s, ok := shortEscape(c, '\''); ok {
		return s
	}
	if isPrintable(c) {
		return string(rune(c))
	}
	if c == 0 && !isDigit(next) {
		return `\0`
	}
	return fmt.Sprintf(`\x%02X`, c)
}

// jsonString only has \u escapes, and no way to continue a string on the
// next line.
type jsonString struct {
	literal
}

func (n *jsonString) Kind() Kind { return JSONString }

func (n *jsonString) EncodeChar(c, _, _ byte) string {
	if s, ok := shortEscape(c, '"'); ok {
		return s
	}
	if isPrintable(c) {
		return string(rune(c))
	}
	return fmt.Sprintf(`\u%04X`, c)
}
