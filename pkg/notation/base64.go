package notation

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// base64Notation packs every three bytes into four glyphs through a 24 bit
// accumulator. Glyphs are emitted as soon as their six bits are known, so
// EncodeChar yields one, one and then two glyphs per group; Close flushes
// the last partial group with padding.
type base64Notation struct {
	acc   uint32
	count int
}

func (n *base64Notation) Kind() Kind { return Base64 }

func (n *base64Notation) Layout() Layout {
	return Layout{Width: 1}
}

func (n *base64Notation) Reset() {
	n.acc = 0
	n.count = 0
}

func (n *base64Notation) sextet(shift uint) byte {
	return base64Alphabet[(n.acc>>shift)&0x3F]
}

func (n *base64Notation) EncodeChar(c, _, _ byte) string {
	r := n.count % 3
	n.count++
	switch r {
	case 0:
		n.acc = uint32(c) << 16
		return string(n.sextet(18))
	case 1:
		n.acc |= uint32(c) << 8
		return string(n.sextet(12))
	default:
		n.acc |= uint32(c)
		return string([]byte{n.sextet(6), n.sextet(0)})
	}
}

func (n *base64Notation) Open() string { return "" }

func (n *base64Notation) Close() string {
	switch n.count % 3 {
	case 1:
		return string(n.sextet(12)) + "=="
	case 2:
		return string(n.sextet(6)) + "="
	}
	return ""
}

func base64Value(c byte) uint32 {
	switch {
	case c >= 'A' && c <= 'Z':
		return uint32(c - 'A')
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 26
	case c >= '0' && c <= '9':
		return uint32(c-'0') + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	}
	return 0
}

// Decode reads groups of four glyphs. Whitespace from wrapping is ignored,
// padding reads as zero bits and suppresses the bytes it stands for. A
// trailing incomplete group is dropped.
func (n *base64Notation) Decode(text string) ([]byte, error) {
	glyphs := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case ' ', '\t', '\n', '\r':
		default:
			glyphs = append(glyphs, c)
		}
	}

	result := make([]byte, 0, len(glyphs)/4*3)
	for i := 0; i+3 < len(glyphs); i += 4 {
		g := glyphs[i : i+4]
		v := base64Value(g[0])<<18 | base64Value(g[1])<<12 | base64Value(g[2])<<6 | base64Value(g[3])
		result = append(result, byte(v>>16))
		if g[2] != '=' {
			result = append(result, byte(v>>8))
		}
		if g[3] != '=' {
			result = append(result, byte(v))
		}
	}
	return result, nil
}
