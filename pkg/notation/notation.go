package notation

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"base256/pkg/codepage"
)

var (
	// ErrUnknownFormat is returned for a notation name outside the catalogue.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnsupported is returned when a notation cannot decode, either at all
	// or with its current options.
	ErrUnsupported = errors.New("not supported")
)

// Layout is the intrinsic presentation metadata of a notation.
type Layout struct {
	Width        int
	Space        bool
	Printable    bool
	LineBegin    string
	LineEnd      string
	NoLineBreaks bool
	AlignOutput  bool
}

// Notation encodes single bytes.
type Notation interface {
	Kind() Kind
	EncodeChar(c, prev, next byte) string
	Layout() Layout
}

// Framer is implemented by notations that need to see the start and the end
// of the buffer.
type Framer interface {
	Open() string
	Close() string
}

// Resetter is implemented by notations that carry state between EncodeChar
// calls. Reset starts a new buffer.
type Resetter interface {
	Reset()
}

// Decoder is implemented by notations that can be converted back to bytes.
type Decoder interface {
	Decode(text string) ([]byte, error)
}

// Streams reports whether n can be encoded one byte at a time without
// knowing the neighbouring bytes or the end of the buffer.
func Streams(n Notation) bool {
	_, framed := n.(Framer)
	return !framed
}

// Options configures notation construction.
type Options struct {
	// PrintNewline shows byte 10 as a literal line break.
	PrintNewline bool
	// PrintNull shows byte 0 as a blank glyph instead of the empty set.
	PrintNull bool
	// Prefix adds C style number prefixes.
	Prefix bool
	// Lower selects lower case hex digits.
	Lower bool
	// Logger receives decode diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

const (
	upperDigits = "0123456789ABCDEF"
	lowerDigits = "0123456789abcdef"
)

// New constructs the notation of the given kind.
func New(kind Kind, opts Options) (Notation, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	digits := upperDigits
	if opts.Lower {
		digits = lowerDigits
	}

	switch kind {
	case CP437, CP1252:
		table := codepage.CP437
		if kind == CP1252 {
			table = codepage.CP1252
		}
		return &tableNotation{
			kind:      kind,
			table:     table,
			newline:   opts.PrintNewline,
			printNull: opts.PrintNull,
			logger:    logger,
		}, nil
	case Braille:
		return &brailleNotation{newline: opts.PrintNewline, printNull: opts.PrintNull, logger: logger}, nil
	case ASCII:
		return &asciiNotation{newline: opts.PrintNewline}, nil
	case Base64:
		return &base64Notation{}, nil
	case Hex:
		return &hexNotation{prefix: opts.Prefix, digits: digits}, nil
	case Decimal:
		return &decimalNotation{prefix: opts.Prefix, logger: logger}, nil
	case Octal:
		return &radixNotation{kind: Octal, base: 8, digits: 3, prefix: opts.Prefix, prefixText: "0"}, nil
	case Binary:
		return &radixNotation{kind: Binary, base: 2, digits: 8, prefix: opts.Prefix, prefixText: "0b"}, nil
	case Low:
		return &nibbleNotation{kind: Low, digits: digits}, nil
	case High:
		return &nibbleNotation{kind: High, shift: 4, digits: digits}, nil
	case Colored:
		return coloredNotation{}, nil
	case CString:
		return &octalString{literal: literal{quote: `"`, lineEnd: `"`}, kind: CString, cEscapes: true}, nil
	case JavaString:
		return &octalString{literal: literal{quote: `"`, lineEnd: `" +`}, kind: JavaString}, nil
	case JSString:
		return &jsString{literal: literal{quote: `'`, lineEnd: `' +`}}, nil
	case JSONString:
		return &jsonString{literal: literal{quote: `"`, noLineBreaks: true}}, nil
	}
	return nil, errors.Mark(errors.Newf("unknown format: %d", int(kind)), ErrUnknownFormat)
}

// Lookup constructs the notation with the given catalogue name.
func Lookup(name string, opts Options) (Notation, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return New(kind, opts)
}

// unsupported builds an ErrUnsupported for a decode request.
func unsupported(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnsupported)
}

func isPrintable(c byte) bool {
	return c >= 32 && c < 127
}
