// Package printer lays out the glyphs of a notation: wrapping, line numbers,
// separators, ANSI colors and mixing in printable ASCII. The options work the
// same way for every notation; the notation's Layout decides the details.
package printer

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"base256/pkg/notation"
)

// ErrNotStreamable is returned by Stream for notations that need the whole
// buffer.
var ErrNotStreamable = errors.New("streaming not supported")

// LineNumbers selects the line number prefix.
type LineNumbers int

const (
	LineNumbersOff LineNumbers = iota
	LineNumbersDecimal
	LineNumbersHex
)

// Config holds the presentation options.
type Config struct {
	// Wrap starts a new line every Wrap input bytes, or every Wrap output
	// characters for notations aligned on output. 0 disables wrapping.
	Wrap        int
	LineNumbers LineNumbers
	// Color wraps non-literal glyphs in a color picked by the high nibble.
	Color bool
	// Comma writes ", " after every glyph.
	Comma bool
	// Mix shows printable ASCII as itself in notations that otherwise don't.
	Mix bool
	// PrintNewline shows byte 10 as a line break where literal text is shown.
	PrintNewline bool
	// PrintSpace shows byte 32 as blank where literal text is shown.
	PrintSpace bool
}

// Printer renders bytes with one notation.
type Printer struct {
	n      notation.Notation
	layout notation.Layout
	cfg    Config
}

// New creates a printer. The color overlay is dropped for the colored
// notation, which is colored by itself.
func New(n notation.Notation, cfg Config) *Printer {
	if n.Kind() == notation.Colored {
		cfg.Color = false
	}
	return &Printer{
		n:      n,
		layout: n.Layout(),
		cfg:    cfg,
	}
}

// Notation returns the notation in use.
func (p *Printer) Notation() notation.Notation {
	return p.n
}

// Config returns the effective options.
func (p *Printer) Config() Config {
	return p.cfg
}

// EncodeChar renders one byte. The second result is the length of the
// notation's own output, before any spacing or coloring was applied.
func (p *Printer) EncodeChar(c, prev, next byte) (string, int) {
	// Always ask the notation first, stateful notations count every byte.
	raw := p.n.EncodeChar(c, prev, next)
	width := len(raw)

	literal := p.cfg.Mix || p.layout.Printable
	if p.cfg.PrintSpace && c == ' ' && literal {
		return strings.Repeat(" ", p.layout.Width), width
	}
	if raw == "\n" {
		return raw, width
	}
	if p.cfg.PrintNewline && c == '\n' && literal {
		return "\n", width
	}
	if p.cfg.Mix && c > 32 && c < 127 && !p.layout.Printable {
		return strings.Repeat(" ", p.layout.Width-1) + string(rune(c)), width
	}
	if !p.cfg.Color || (len(raw) == 1 && raw[0] == c) {
		return raw, width
	}
	return colorize(c, raw), width
}

// Encode renders a whole buffer.
func (p *Printer) Encode(data []byte) string {
	if r, ok := p.n.(notation.Resetter); ok {
		r.Reset()
	}

	var sb strings.Builder
	e := p.newEncoder(&sb, len(p.formatOffset(len(data))))
	for i, c := range data {
		var prev, next byte
		if i > 0 {
			prev = data[i-1]
		}
		if i+1 < len(data) {
			next = data[i+1]
		}
		e.glyph(c, prev, next)
	}
	if e.framer != nil {
		if len(data) == 0 {
			sb.WriteString(e.framer.Open())
		}
		sb.WriteString(e.framer.Close())
	}
	return sb.String()
}

// Stream encodes r one byte at a time and returns the number of bytes read.
// Neighbouring bytes are unknown in this mode, so notations that need them
// or need to see the end of the input are rejected before reading.
func (p *Printer) Stream(r io.Reader, w io.Writer) (int64, error) {
	if !notation.Streams(p.n) {
		return 0, errors.Mark(errors.Newf("format %s does not support streaming", p.n.Kind()), ErrNotStreamable)
	}
	if rs, ok := p.n.(notation.Resetter); ok {
		rs.Reset()
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	e := p.newEncoder(bw, 0)
	var count int64
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = bw.Flush()
			return count, errors.Wrap(err, "read input")
		}
		e.glyph(c, 0, 0)
		count++
		// Keep interactive input responsive.
		if br.Buffered() == 0 {
			if err := bw.Flush(); err != nil {
				return count, errors.Wrap(err, "write output")
			}
		}
	}
	return count, errors.Wrap(bw.Flush(), "write output")
}

// Decode converts text back to bytes if the notation supports it.
func (p *Printer) Decode(text string) ([]byte, error) {
	d, ok := p.n.(notation.Decoder)
	if !ok {
		return nil, errors.Mark(errors.Newf("decode not implemented for format %s", p.n.Kind()), notation.ErrUnsupported)
	}
	return d.Decode(text)
}

func (p *Printer) formatOffset(offset int) string {
	if p.cfg.LineNumbers == LineNumbersHex {
		return strconv.FormatInt(int64(offset), 16)
	}
	return strconv.Itoa(offset)
}

// encoder tracks the position on the current line.
type encoder struct {
	p        *Printer
	w        io.StringWriter
	framer   notation.Framer
	numWidth int
	column   int
	offset   int
}

func (p *Printer) newEncoder(w io.StringWriter, numWidth int) *encoder {
	framer, _ := p.n.(notation.Framer)
	return &encoder{
		p:        p,
		w:        w,
		framer:   framer,
		numWidth: numWidth,
	}
}

func (e *encoder) glyph(c, prev, next byte) {
	cfg, layout := e.p.cfg, e.p.layout

	wrapped := false
	if cfg.Wrap > 0 && e.column >= cfg.Wrap {
		e.w.WriteString(layout.LineEnd)
		if !layout.NoLineBreaks {
			e.w.WriteString("\n")
		}
		e.column = 0
		wrapped = true
	}
	if cfg.LineNumbers != LineNumbersOff && e.column == 0 {
		num := e.p.formatOffset(e.offset)
		if pad := e.numWidth - len(num); pad > 0 {
			num = strings.Repeat(" ", pad) + num
		}
		e.w.WriteString(num + ": ")
	}
	if e.offset == 0 && e.framer != nil {
		e.w.WriteString(e.framer.Open())
	}
	if wrapped {
		e.w.WriteString(layout.LineBegin)
	}

	s, width := e.p.EncodeChar(c, prev, next)
	e.w.WriteString(s)
	e.offset++
	if s == "\n" {
		// A literal line break starts a fresh, numbered line.
		e.column = 0
		return
	}
	if cfg.Comma {
		e.w.WriteString(",")
	}
	if cfg.Comma || layout.Space {
		e.w.WriteString(" ")
	}

	if layout.AlignOutput {
		e.column += width
	} else {
		e.column++
	}
}
