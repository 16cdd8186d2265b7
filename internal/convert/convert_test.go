package convert

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"base256/internal/logging"
	"base256/pkg/notation"
)

func run(t *testing.T, opts Options, input string) (string, string) {
	t.Helper()
	var logs bytes.Buffer
	if opts.Logger == nil {
		opts.Logger = logging.NewWithWriter(&logs, true, slog.LevelInfo)
	}
	var out bytes.Buffer
	require.NoError(t, Run(opts, strings.NewReader(input), &out))
	return out.String(), logs.String()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		format   string
		mix      bool
		wrap     int
		expected notation.Kind
	}{
		{name: "default", opts: Options{}, format: "cp437", expected: notation.CP437},
		{name: "explicit", opts: Options{Format: "braille"}, format: "braille", expected: notation.Braille},
		{name: "hex shortcut", opts: Options{Format: "json", Hex: true}, format: "hex", expected: notation.Hex},
		{name: "later shortcut wins", opts: Options{Hex: true, Dec: true}, format: "dec", expected: notation.Decimal},
		{name: "ascii over cp437", opts: Options{CP437: true, ASCII: true}, format: "ascii", expected: notation.ASCII},
		{name: "hex mix", opts: Options{Dec: true, HexMix: true}, format: "hex", mix: true, expected: notation.Hex},
		{name: "wrap default", opts: Options{WrapDefault: true}, format: "cp437", wrap: 64, expected: notation.CP437},
		{name: "wrap wide", opts: Options{WrapDefault: true, WrapWide: true}, format: "cp437", wrap: 100, expected: notation.CP437},
		{name: "explicit wrap wins", opts: Options{Wrap: 8, WrapWide: true}, format: "cp437", wrap: 8, expected: notation.CP437},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			require.NoError(t, opts.Validate())
			require.Equal(t, tt.format, opts.Format)
			require.Equal(t, tt.mix, opts.Mix)
			require.Equal(t, tt.wrap, opts.Wrap)
			require.Equal(t, tt.expected, opts.kind)
		})
	}
}

func TestValidateErrors(t *testing.T) {
	opts := Options{Format: "utf16"}
	err := opts.Validate()
	require.True(t, errors.Is(err, notation.ErrUnknownFormat))
	require.Equal(t, "unknown format: utf16", err.Error())

	opts = Options{Wrap: -1}
	require.ErrorContains(t, opts.Validate(), "invalid wrap width -1")
}

func TestRunEncode(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		input    string
		expected string
	}{
		{name: "cp437 default", opts: Options{}, input: "AB\x00", expected: "AB∅\n"},
		{name: "lower case hex by default", opts: Options{Hex: true}, input: "\xff", expected: "ff \n"},
		{name: "upper case hex", opts: Options{Hex: true, Upper: true}, input: "\xff", expected: "FF \n"},
		{name: "size", opts: Options{Hex: true, Size: true}, input: "ab", expected: "61 62 \nsize: 2\n"},
		{name: "no newline", opts: Options{Hex: true, NoNewline: true}, input: "ab", expected: "61 62 "},
		{name: "size without newline", opts: Options{Dec: true, Size: true, NoNewline: true}, input: "a", expected: "097 \nsize: 1"},
		{name: "hex mix", opts: Options{HexMix: true}, input: "a\x01", expected: " a 01 \n"},
		{name: "line numbers", opts: Options{Hex: true, Wrap: 2, LineNumbers: true}, input: "abc", expected: "0: 61 62 \n2: 63 \n"},
		{name: "hex line numbers", opts: Options{Format: "low", Wrap: 16, HexLineNumbers: true}, input: strings.Repeat("a", 20), expected: "0: " + strings.Repeat("1", 16) + "\n10: 1111\n"},
		{name: "c string", opts: Options{Format: "c"}, input: "a\"", expected: "\"a\\\"\"\n"},
		{name: "c string with size", opts: Options{Format: "c", Size: true}, input: "a\x00", expected: "\"a\\0\"\nsize: 2\n"},
		{name: "base64", opts: Options{Format: "base64"}, input: "Man", expected: "TWFu\n"},
		{name: "empty base64", opts: Options{Format: "base64", Size: true}, input: "", expected: "\nsize: 0\n"},
		{name: "json", opts: Options{Format: "json", Wrap: 2}, input: "a\tb", expected: "\"a\\tb\"\n"},
		{name: "printnewline", opts: Options{PrintNewline: true}, input: "a\nb", expected: "a\nb\n"},
		{name: "printspace", opts: Options{Hex: true, Mix: true, PrintSpace: true}, input: " ", expected: "   \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := run(t, tt.opts, tt.input)
			if diff := cmp.Diff(tt.expected, out); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunDecode(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		input    string
		expected string
	}{
		{name: "hex", opts: Options{Hex: true, Decode: true}, input: "61 62\n", expected: "ab"},
		{name: "hex with prefix", opts: Options{Hex: true, Decode: true}, input: "0x61, 0x62", expected: "ab"},
		{name: "dec", opts: Options{Dec: true, Decode: true}, input: "097098", expected: "ab"},
		{name: "base64", opts: Options{Format: "base64", Decode: true}, input: "TWFu\nTQ==\n", expected: "ManM"},
		{name: "cp437", opts: Options{Decode: true}, input: "AB∅\n", expected: "AB\x00"},
		{name: "size", opts: Options{Hex: true, Decode: true, Size: true}, input: "6162", expected: "ab\nsize: 2"},
		{name: "unsupported format", opts: Options{ASCII: true, Decode: true}, input: "abc", expected: "decode not implemented for format ascii"},
		{name: "unsupported option", opts: Options{Decode: true, PrintNewline: true}, input: "abc", expected: "decode not supported with printnewline enabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := run(t, tt.opts, tt.input)
			if diff := cmp.Diff(tt.expected, out); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunDecodeLogsInvalidGlyphs(t *testing.T) {
	out, logs := run(t, Options{Decode: true}, "A€")
	require.Equal(t, "A?", out)
	require.Contains(t, logs, "invalid character")
	require.Contains(t, logs, "U+20AC")
}

func TestRunTable(t *testing.T) {
	out, _ := run(t, Options{Hex: true, Table: true}, "")
	require.True(t, strings.HasPrefix(out, "   0  1  2"))
	require.True(t, strings.HasSuffix(out, "\n\n"))
	require.Contains(t, out, "4| 40 41 42")
}

func TestRunTables(t *testing.T) {
	out, _ := run(t, Options{Tables: true, Hex: true, Table: true}, "")
	require.Contains(t, out, "cp437: \n")
	require.Contains(t, out, "json: \n")
	require.Contains(t, out, "hex (without --mix): \n")
	require.Contains(t, out, "hex (with --mix): \n")
	require.NotContains(t, out, "cp437 (with --mix)")

	headers := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasSuffix(line, ": ") && !strings.Contains(line, "|") {
			headers++
		}
	}
	// Every notation once, plus a mixed table for the nine that don't show
	// text as itself.
	require.Equal(t, 25, headers)
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte{0x00, 0xFF}, 0o644))

	stdout, _ := run(t, Options{Hex: true, InFile: in, OutFile: out, Size: true}, "ignored")
	require.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "00 ff \nsize: 2\n", string(data))

	stdout, _ = run(t, Options{Hex: true, InFile: in, OutFile: out}, "")
	require.Empty(t, stdout)
	stdout, _ = run(t, Options{Hex: true, InFile: out, Decode: true}, "")
	require.Equal(t, "\x00\xff", stdout)
}

func TestRunMissingInputFile(t *testing.T) {
	var out bytes.Buffer
	err := Run(Options{InFile: filepath.Join(t.TempDir(), "missing")}, strings.NewReader(""), &out)
	require.ErrorContains(t, err, "invalid input file")
	require.Empty(t, out.String())
}

func TestRunUnknownFormatWritesNothing(t *testing.T) {
	var out bytes.Buffer
	err := Run(Options{Format: "rot13"}, strings.NewReader("abc"), &out)
	require.True(t, errors.Is(err, notation.ErrUnknownFormat))
	require.Empty(t, out.String())
}
