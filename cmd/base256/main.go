package main

import (
	"fmt"
	"os"
	"strings"

	"base256/internal/convert"
	"base256/pkg/notation"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var opts convert.Options

var rootCmd = &cobra.Command{
	Use:   "base256 [flags] [infile]",
	Short: "base256 - a base-256 viewer",
	Long: `base256 shows binary data as text, one glyph per byte, as opposed to a
base-16 hexdump. It can also print hex, decimal, octal, binary, base64 and
string literals, and convert some of these back to binary.

If no output file is given, output goes to stdout. If no input file is given
either, input is read from stdin and converted as it arrives.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			opts.InFile = args[0]
		}
		return convert.Run(opts, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func formatHelp() string {
	names := make([]string, 0, len(notation.Kinds()))
	for _, k := range notation.Kinds() {
		names = append(names, k.String())
	}
	return "Format to use, one of " + strings.Join(names, ", ") + ". Use -H or --tables to view them"
}

// addShortcuts registers the boolean format and wrap shortcuts.
func addShortcuts(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.Hex, "hex", "x", false, "Shortcut for --format=hex")
	fs.BoolVarP(&opts.Dec, "dec", "0", false, "Shortcut for --format=dec")
	fs.BoolVarP(&opts.CP1252, "cp1252", "1", false, "Shortcut for --format=cp1252")
	fs.BoolVarP(&opts.CP437, "cp437", "4", false, "Shortcut for --format=cp437")
	fs.BoolVarP(&opts.ASCII, "ascii", "a", false, "Shortcut for --format=ascii")
	fs.BoolVarP(&opts.HexMix, "hex-mix", "m", false, "Shortcut for --format=hex --mix")
	fs.BoolVarP(&opts.WrapDefault, "wrap-64", "w", false, "Shortcut for --wrap=64")
	fs.BoolVarP(&opts.WrapWide, "wrap-100", "W", false, "Shortcut for --wrap=100")
}

func init() {
	fs := rootCmd.Flags()
	fs.StringVar(&opts.Format, "format", convert.DefaultFormat, formatHelp())
	addShortcuts(fs)

	fs.StringVar(&opts.OutFile, "outfile", "", "Write to the given output file instead of stdout")
	fs.BoolVarP(&opts.Decode, "decode", "d", false, "Decode from the format back to binary data (hex, dec, base64, cp437, cp1252 and braille)")
	fs.BoolVarP(&opts.Table, "table", "H", false, "Show a reference table of the selected format")
	fs.BoolVar(&opts.Tables, "tables", false, "Show the reference tables of all formats")

	fs.BoolVar(&opts.Mix, "mix", false, "Show printable ASCII characters as themselves")
	fs.BoolVar(&opts.PrintNewline, "printnewline", false, "Print newlines as actual newlines where text is shown as itself")
	fs.BoolVar(&opts.PrintSpace, "printspace", false, "Print space as blank where text is shown as itself")
	fs.BoolVar(&opts.PrintNull, "printnull", false, "Print null as blank instead of the empty set symbol")
	fs.BoolVar(&opts.Prefix, "prefix", false, "Use C-style number prefixes")
	fs.BoolVar(&opts.Comma, "comma", false, "Add a comma between characters")
	fs.Bool("lower", true, "Use lower case hex digits (the default)")
	fs.BoolVar(&opts.Upper, "upper", false, "Use upper case hex digits")
	fs.BoolVarP(&opts.Color, "color", "c", false, "Color non-ASCII characters by their high hex digit (independent of --format=colored)")

	fs.IntVar(&opts.Wrap, "wrap", 0, "Add newlines every so many input bytes")
	fs.Lookup("wrap").NoOptDefVal = "64"
	fs.BoolVarP(&opts.LineNumbers, "line-numbers", "l", false, "Display line numbers (starting byte index) in decimal")
	fs.BoolVarP(&opts.HexLineNumbers, "hex-line-numbers", "L", false, "Display line numbers (starting byte index) in hexadecimal")
	fs.BoolVarP(&opts.Size, "size", "s", false, "Print the size in bytes at the end")
	fs.BoolVarP(&opts.NoNewline, "no-newline", "n", false, "No extra newline at the end of the output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
