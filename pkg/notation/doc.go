// Package notation implements the fixed catalogue of textual notations for
// bytes.
//
// # Contract
//
// Every notation turns one byte into one glyph with EncodeChar. The glyph
// may depend on the previous and the next byte of the buffer (string literal
// escapes look ahead to avoid swallowing a following digit); both are 0 when
// unknown.
//
// Layout describes how a glyph sits on a line:
//
//   - Width: display columns per glyph for fixed width notations
//   - Space: a separator space follows every glyph
//   - Printable: printable ASCII already shows as itself
//   - LineBegin, LineEnd: text around a wrapped line (for example the quotes
//     that close and reopen a string literal)
//   - NoLineBreaks: the notation cannot contain a raw line break
//   - AlignOutput: wrapping counts emitted characters instead of input bytes
//
// # Whole-buffer notations
//
// Notations that need the whole buffer implement Framer: Open is written
// before the first glyph and Close after the last. Base64 uses Close to
// flush its padding, the string literals use Open and Close for quoting.
// A notation that is not a Framer can always be encoded one byte at a time,
// see Streams.
//
// # Catalogue
//
//	cp437    256 unique glyphs based on code page 437
//	cp1252   256 unique glyphs based on code page 1252
//	braille  Unicode Braille patterns in Unicode order
//	ascii    printable ASCII as itself, everything else as '?'
//	base64   standard Base64 with padding
//	hex      two hex digits, optional 0x prefix
//	dec      three decimal digits, no zero padding with prefix
//	oct      three octal digits, optional 0 prefix
//	bin      eight binary digits, optional 0b prefix
//	low      least significant hex digit only
//	high     most significant hex digit only
//	colored  one cell with a 256 color background per byte
//	c        ANSI C string literal
//	java     Java string literal, byte based
//	js       JavaScript string literal, byte based
//	json     JSON string literal
package notation
