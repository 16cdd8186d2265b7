// Package utf8codec converts between UTF-8 byte sequences and Unicode code
// points.
//
// Decoding is total: every malformed, overlong or truncated sequence becomes
// exactly one ReplacementChar and decoding resumes at the first byte that was
// found to be invalid, so that byte gets its own chance to start a sequence.
package utf8codec

// ReplacementChar is substituted for every invalid sequence.
const ReplacementChar rune = 0xFFFD

// MaxRune is the largest valid code point.
const MaxRune rune = 0x10FFFF

// isCont reports whether b is a continuation byte (10xxxxxx).
func isCont(b int) bool {
	return b&0xC0 == 0x80
}

// Decode converts UTF-8 bytes to code points. It never fails and never reads
// past the end of b: missing lookahead bytes read as 0xFF, which is never a
// continuation byte.
func Decode(b []byte) []rune {
	result := make([]rune, 0, len(b))
	at := func(i int) int {
		if i < len(b) {
			return int(b[i])
		}
		return 0xFF
	}

	for i := 0; i < len(b); i++ {
		b0 := int(b[i])
		b1, b2, b3 := at(i+1), at(i+2), at(i+3)

		switch {
		case b0 < 0x80:
			result = append(result, rune(b0))
		case b0 < 0xC2:
			// Continuation byte or overlong two byte lead.
			result = append(result, ReplacementChar)
		case b0 < 0xE0:
			if !isCont(b1) {
				result = append(result, ReplacementChar)
				continue
			}
			i++
			result = append(result, rune((b0&0x1F)<<6|(b1&0x3F)))
		case b0 < 0xF0:
			if !isCont(b1) || (b0 == 0xE0 && b1 < 0xA0) {
				result = append(result, ReplacementChar)
				continue
			}
			i++
			if !isCont(b2) {
				result = append(result, ReplacementChar)
				continue
			}
			i++
			result = append(result, rune((b0&0x0F)<<12|(b1&0x3F)<<6|(b2&0x3F)))
		case b0 < 0xF5:
			if !isCont(b1) || (b0 == 0xF0 && b1 < 0x90) || (b0 == 0xF4 && b1 >= 0x90) {
				result = append(result, ReplacementChar)
				continue
			}
			i++
			if !isCont(b2) {
				result = append(result, ReplacementChar)
				continue
			}
			i++
			if !isCont(b3) {
				result = append(result, ReplacementChar)
				continue
			}
			i++
			result = append(result, rune((b0&0x07)<<18|(b1&0x3F)<<12|(b2&0x3F)<<6|(b3&0x3F)))
		default:
			result = append(result, ReplacementChar)
		}
	}
	return result
}

// DecodeString is Decode for a string holding raw bytes.
func DecodeString(s string) []rune {
	return Decode([]byte(s))
}

// AppendRune appends the UTF-8 encoding of r to dst. Code points outside
// [0, MaxRune] are written as ReplacementChar.
func AppendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0:
		return AppendRune(dst, ReplacementChar)
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, byte(0xC0|r>>6), byte(0x80|r&0x3F))
	case r < 0x10000:
		return append(dst, byte(0xE0|r>>12), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
	case r <= MaxRune:
		return append(dst, byte(0xF0|r>>18), byte(0x80|(r>>12)&0x3F), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
	default:
		return append(dst, 0xEF, 0xBF, 0xBD)
	}
}

// Encode converts code points to UTF-8 bytes.
func Encode(cps []rune) []byte {
	result := make([]byte, 0, len(cps))
	for _, r := range cps {
		result = AppendRune(result, r)
	}
	return result
}

// EncodeRune returns the UTF-8 encoding of a single code point as a string.
func EncodeRune(r rune) string {
	return string(AppendRune(make([]byte, 0, 4), r))
}
