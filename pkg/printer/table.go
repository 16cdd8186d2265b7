package printer

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"base256/pkg/notation"
)

const nibbles = "0123456789abcdef"

// Table renders all 256 byte values as a 16x16 grid with the high nibble on
// the rows and the low nibble on the columns. Cells are encoded without
// neighbouring bytes.
func (p *Printer) Table() string {
	if r, ok := p.n.(notation.Resetter); ok {
		r.Reset()
	}
	width := p.layout.Width
	cell := width + 1

	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < 16; x++ {
		sb.WriteByte(nibbles[x])
		sb.WriteString(strings.Repeat(" ", cell-1))
	}
	sb.WriteString("\n +")
	sb.WriteString(strings.Repeat("-", 16*cell))
	sb.WriteString("\n")

	for y := 0; y < 16; y++ {
		sb.WriteByte(nibbles[y])
		sb.WriteString("|")
		for x := 0; x < 16; x++ {
			s, _ := p.EncodeChar(byte(y*16+x), 0, 0)
			if s == "\n" {
				s = strings.Repeat(" ", cell-1)
			}
			if pad := width - ansi.StringWidth(s); pad > 0 {
				s = strings.Repeat(" ", pad) + s
			}
			sb.WriteString(" ")
			sb.WriteString(s)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
