package notation

// asciiNotation keeps visible ASCII and hides everything else behind '?'.
type asciiNotation struct {
	newline bool
}

func (n *asciiNotation) Kind() Kind { return ASCII }

func (n *asciiNotation) Layout() Layout {
	return Layout{Width: 1, Printable: true}
}

func (n *asciiNotation) EncodeChar(c, _, _ byte) string {
	if n.newline && c == '\n' {
		return "\n"
	}
	if c > 32 && c < 127 {
		return string(rune(c))
	}
	return "?"
}

// nibbleNotation prints a single hex digit of each byte.
type nibbleNotation struct {
	kind   Kind
	shift  uint
	digits string
}

func (n *nibbleNotation) Kind() Kind { return n.kind }

func (n *nibbleNotation) Layout() Layout {
	return Layout{Width: 1}
}

func (n *nibbleNotation) EncodeChar(c, _, _ byte) string {
	d := (c >> n.shift) & 15
	return n.digits[d : d+1]
}
