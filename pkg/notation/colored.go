package notation

import (
	"github.com/muesli/termenv"
)

// coloredNotation ignores the text of a byte and shows a blank cell with
// the matching color of the 256 color palette as background.
type coloredNotation struct{}

func (coloredNotation) Kind() Kind { return Colored }

func (coloredNotation) Layout() Layout {
	return Layout{Width: 1}
}

func (coloredNotation) EncodeChar(c, _, _ byte) string {
	return termenv.CSI + termenv.ANSI256Color(c).Sequence(true) + "m " + termenv.CSI + termenv.ResetSeq + "m"
}
