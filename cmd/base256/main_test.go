package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"base256/internal/convert"
	"base256/pkg/notation"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	opts = convert.Options{}
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		input    string
		expected string
	}{
		{name: "default format", input: "A\x00", expected: "A∅\n"},
		{name: "hex shortcut", args: []string{"-x"}, input: "\xab", expected: "ab \n"},
		{name: "dec shortcut", args: []string{"-0", "--comma"}, input: "\x01\x02", expected: "001, 002, \n"},
		{name: "hex mix", args: []string{"-m"}, input: "a\x01", expected: " a 01 \n"},
		{name: "format flag", args: []string{"--format=json"}, input: "\"", expected: "\"\\\"\"\n"},
		{name: "upper", args: []string{"-x", "--upper", "-n"}, input: "\xab", expected: "AB "},
		{name: "bare wrap", args: []string{"--format=low", "--wrap"}, input: strings.Repeat("\x00", 65), expected: strings.Repeat("0", 64) + "\n0\n"},
		{name: "wrap value", args: []string{"--format=low", "--wrap=2", "-l"}, input: "\x01\x02\x03", expected: "0: 12\n2: 3\n"},
		{name: "size", args: []string{"-x", "-s"}, input: "a", expected: "61 \nsize: 1\n"},
		{name: "decode", args: []string{"-x", "-d"}, input: "6162", expected: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.input, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestInputFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(in, []byte("hi"), 0o644))
	out, err := execute(t, "", "--format=c", in)
	require.NoError(t, err)
	require.Equal(t, "\"hi\"\n", out)
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "--format=rot13")
	require.True(t, errors.Is(err, notation.ErrUnknownFormat))
}

func TestTooManyArguments(t *testing.T) {
	_, err := execute(t, "", "a", "b")
	require.Error(t, err)
}
