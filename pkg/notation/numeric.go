package notation

import (
	"log/slog"
	"strconv"
	"strings"
)

type hexNotation struct {
	prefix bool
	digits string
}

func (n *hexNotation) Kind() Kind { return Hex }

func (n *hexNotation) Layout() Layout {
	if n.prefix {
		return Layout{Width: 4, Space: true}
	}
	return Layout{Width: 2, Space: true}
}

func (n *hexNotation) EncodeChar(c, _, _ byte) string {
	s := string([]byte{n.digits[c>>4], n.digits[c&15]})
	if n.prefix {
		return "0x" + s
	}
	return s
}

// Decode regroups hex digits in pairs. Everything that is not a digit is a
// separator, and a 0x prefix is skipped where a new byte starts.
func (n *hexNotation) Decode(text string) ([]byte, error) {
	result := make([]byte, 0, len(text)/2)
	count := 0
	var val byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if count%2 == 0 && c == '0' && i+1 < len(text) && (text[i+1] == 'x' || text[i+1] == 'X') {
			i++
			continue
		}
		d, ok := hexValue(c)
		if !ok {
			continue
		}
		if count%2 == 1 {
			result = append(result, val<<4|d)
		} else {
			val = d
		}
		count++
	}
	return result, nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// decimalNotation prints three zero padded digits, or the plain number when
// prefixed output is requested (decimal has no prefix, so "prefix" only
// drops the leading zeros like a C literal would).
type decimalNotation struct {
	prefix bool
	logger *slog.Logger
}

func (n *decimalNotation) Kind() Kind { return Decimal }

func (n *decimalNotation) Layout() Layout {
	return Layout{Width: 3, Space: true}
}

func (n *decimalNotation) EncodeChar(c, _, _ byte) string {
	if n.prefix {
		return strconv.Itoa(int(c))
	}
	return string([]byte{'0' + c/100, '0' + c/10%10, '0' + c%10})
}

func (n *decimalNotation) Decode(text string) ([]byte, error) {
	if n.prefix {
		return n.decodeRuns(text), nil
	}
	result := make([]byte, 0, len(text)/3)
	count, val, start := 0, 0, 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isDigit(c) {
			continue
		}
		if count%3 == 0 {
			val = int(c - '0')
			start = i
		} else {
			val = val*10 + int(c-'0')
		}
		if count%3 == 2 {
			result = n.appendValue(result, val, start)
		}
		count++
	}
	return result, nil
}

// decodeRuns reads unpadded numbers, one per run of digits.
func (n *decimalNotation) decodeRuns(text string) []byte {
	var result []byte
	for i := 0; i < len(text); {
		if !isDigit(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isDigit(text[j]) {
			j++
		}
		run := strings.TrimLeft(text[i:j], "0")
		val := 0
		if len(run) > 3 {
			val = 256
		} else if run != "" {
			val, _ = strconv.Atoi(run)
		}
		result = n.appendValue(result, val, i)
		i = j
	}
	return result
}

func (n *decimalNotation) appendValue(dst []byte, val, position int) []byte {
	if val > 255 {
		n.logger.Warn("invalid value", "value", val, "position", position)
		return append(dst, '?')
	}
	return append(dst, byte(val))
}

// radixNotation prints fixed width digits in a power of two base.
type radixNotation struct {
	kind       Kind
	base       int
	digits     int
	prefix     bool
	prefixText string
}

func (n *radixNotation) Kind() Kind { return n.kind }

func (n *radixNotation) Layout() Layout {
	width := n.digits
	if n.prefix {
		width += len(n.prefixText)
	}
	return Layout{Width: width, Space: true}
}

func (n *radixNotation) EncodeChar(c, _, _ byte) string {
	s := strconv.FormatUint(uint64(c), n.base)
	if pad := n.digits - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	if n.prefix {
		return n.prefixText + s
	}
	return s
}
