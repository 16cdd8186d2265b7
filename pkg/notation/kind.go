package notation

import (
	"github.com/cockroachdb/errors"
)

// Kind identifies one notation of the catalogue.
type Kind int

const (
	CP437 Kind = iota
	CP1252
	Braille
	ASCII
	Base64
	Hex
	Decimal
	Octal
	Binary
	Low
	High
	Colored
	CString
	JavaString
	JSString
	JSONString
)

var kindNames = [...]string{
	CP437:      "cp437",
	CP1252:     "cp1252",
	Braille:    "braille",
	ASCII:      "ascii",
	Base64:     "base64",
	Hex:        "hex",
	Decimal:    "dec",
	Octal:      "oct",
	Binary:     "bin",
	Low:        "low",
	High:       "high",
	Colored:    "colored",
	CString:    "c",
	JavaString: "java",
	JSString:   "js",
	JSONString: "json",
}

// String returns the catalogue name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns the whole catalogue in display order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind resolves a catalogue name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, errors.Mark(errors.Newf("unknown format: %s", name), ErrUnknownFormat)
}
