package printer

import (
	"strings"

	"github.com/muesli/termenv"
)

// hues maps the high nibble of a byte to a 16 color palette entry. The grays
// (7, 8, 15) go to rows 0x3x-0x6x, where the printable ASCII usually sits.
var hues = [16]termenv.ANSIColor{
	termenv.ANSIRed, termenv.ANSIGreen, termenv.ANSIYellow, termenv.ANSIWhite,
	termenv.ANSIBrightWhite, termenv.ANSIBrightBlack, termenv.ANSIBrightWhite, termenv.ANSIBlue,
	termenv.ANSIBrightRed, termenv.ANSIBrightGreen, termenv.ANSIBrightYellow, termenv.ANSIMagenta,
	termenv.ANSIBrightMagenta, termenv.ANSICyan, termenv.ANSIBrightCyan, termenv.ANSIBrightBlue,
}

var (
	sgrReset          = termenv.CSI + termenv.ResetSeq + "m"
	sgrGrayBackground = termenv.CSI + termenv.ANSIBrightBlack.Sequence(true) + "m"
)

// colorize wraps s in the foreground color for c. Terminals are assumed to
// be light text on black.
func colorize(c byte, s string) string {
	hue := hues[c>>4]
	var sb strings.Builder
	sb.WriteString(termenv.CSI + hue.Sequence(false) + "m")
	// Dark blue needs a lighter background to be readable, and row 0x6x
	// repeats the hue of row 0x4x.
	if hue == termenv.ANSIBlue || c>>4 == 6 {
		sb.WriteString(sgrGrayBackground)
	}
	sb.WriteString(s)
	sb.WriteString(sgrReset)
	return sb.String()
}
