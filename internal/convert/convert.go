package convert

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"

	"base256/internal/logging"
	"base256/pkg/notation"
	"base256/pkg/printer"
)

// DefaultFormat is used when no format is selected.
const DefaultFormat = "cp437"

const (
	wrapDefault = 64
	wrapWide    = 100
)

// Options is one conversion request, as given on the command line.
type Options struct {
	Format string

	// Format shortcuts. When several are set the last one in this list wins.
	Hex    bool
	Dec    bool
	CP1252 bool
	CP437  bool
	ASCII  bool
	HexMix bool

	InFile  string
	OutFile string

	Decode bool
	Table  bool
	Tables bool

	Mix          bool
	PrintNewline bool
	PrintSpace   bool
	PrintNull    bool
	Prefix       bool
	Comma        bool
	Upper        bool
	Color        bool

	// Wrap is the explicit wrap width. WrapWide and WrapDefault only apply
	// when it is zero.
	Wrap        int
	WrapDefault bool
	WrapWide    bool

	LineNumbers    bool
	HexLineNumbers bool

	Size      bool
	NoNewline bool

	// Logger receives decode diagnostics. Defaults to logging.New.
	Logger *slog.Logger

	kind notation.Kind
}

// Validate resolves the shortcuts into Format, Mix and Wrap and checks the
// values.
func (o *Options) Validate() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	shortcuts := []struct {
		set    bool
		format string
	}{
		{o.Hex, "hex"},
		{o.Dec, "dec"},
		{o.CP1252, "cp1252"},
		{o.CP437, "cp437"},
		{o.ASCII, "ascii"},
		{o.HexMix, "hex"},
	}
	for _, s := range shortcuts {
		if s.set {
			o.Format = s.format
		}
	}
	if o.HexMix {
		o.Mix = true
	}

	kind, err := notation.ParseKind(o.Format)
	if err != nil {
		return err
	}
	o.kind = kind

	if o.Wrap < 0 {
		return errors.Newf("invalid wrap width %d", o.Wrap)
	}
	if o.Wrap == 0 {
		switch {
		case o.WrapWide:
			o.Wrap = wrapWide
		case o.WrapDefault:
			o.Wrap = wrapDefault
		}
	}
	return nil
}

func (o *Options) notationOptions() notation.Options {
	return notation.Options{
		PrintNewline: o.PrintNewline,
		PrintNull:    o.PrintNull,
		Prefix:       o.Prefix,
		// Digits are lower case unless upper case is asked for.
		Lower:  !o.Upper,
		Logger: o.Logger,
	}
}

func (o *Options) printerConfig() printer.Config {
	cfg := printer.Config{
		Wrap:         o.Wrap,
		Color:        o.Color,
		Comma:        o.Comma,
		Mix:          o.Mix,
		PrintNewline: o.PrintNewline,
		PrintSpace:   o.PrintSpace,
	}
	switch {
	case o.HexLineNumbers:
		cfg.LineNumbers = printer.LineNumbersHex
	case o.LineNumbers:
		cfg.LineNumbers = printer.LineNumbersDecimal
	}
	return cfg
}

// Run performs the conversion described by opts. Input comes from
// opts.InFile or stdin, output goes to opts.OutFile or stdout.
func Run(opts Options, stdin io.Reader, stdout io.Writer) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(slog.LevelInfo)
	}

	if opts.Tables {
		return writeTables(opts, stdout)
	}

	n, err := notation.New(opts.kind, opts.notationOptions())
	if err != nil {
		return err
	}
	p := printer.New(n, opts.printerConfig())

	if opts.Table {
		_, err := io.WriteString(stdout, p.Table()+"\n")
		return errors.Wrap(err, "write table")
	}

	if opts.InFile == "" && opts.OutFile == "" && !opts.Decode && notation.Streams(n) {
		return stream(opts, p, stdin, stdout)
	}

	var data []byte
	if opts.InFile != "" {
		data, err = os.ReadFile(opts.InFile)
		if err != nil {
			return errors.Wrap(err, "invalid input file")
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "read input")
		}
	}

	var result string
	var size int
	if opts.Decode {
		decoded, err := p.Decode(string(data))
		switch {
		case errors.Is(err, notation.ErrUnsupported):
			// The reason is the result, like any other output.
			opts.Logger.Debug("decode unsupported", "format", opts.Format, "error", err)
			result = err.Error()
		case err != nil:
			return errors.Wrap(err, "decode")
		default:
			result = string(decoded)
		}
		size = len(result)
	} else {
		result = p.Encode(data)
		size = len(data)
	}
	result += opts.trailer(size)

	if opts.OutFile == "" {
		_, err := io.WriteString(stdout, result)
		return errors.Wrap(err, "write output")
	}
	if err := os.WriteFile(opts.OutFile, []byte(result), 0o644); err != nil {
		return errors.Wrapf(err, "write output file %s", opts.OutFile)
	}
	return nil
}

// trailer is the optional size line and the final newline. Decoded data
// never gets a newline appended.
func (o *Options) trailer(size int) string {
	var s string
	if o.Size {
		s += "\nsize: " + strconv.Itoa(size)
	}
	if !o.Decode && !o.NoNewline {
		s += "\n"
	}
	return s
}

func stream(opts Options, p *printer.Printer, stdin io.Reader, stdout io.Writer) error {
	size, err := p.Stream(stdin, stdout)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, opts.trailer(int(size)))
	return errors.Wrap(err, "write output")
}

// writeTables prints the reference table of every notation. Notations that
// don't show text as itself are printed a second time with mixing.
func writeTables(opts Options, stdout io.Writer) error {
	w := bufio.NewWriter(stdout)
	nopts := opts.notationOptions()
	for _, kind := range notation.Kinds() {
		n, err := notation.New(kind, nopts)
		if err != nil {
			return err
		}
		both := !n.Layout().Printable
		for _, mix := range []bool{false, true} {
			if mix && !both {
				continue
			}
			switch {
			case !both:
				w.WriteString(kind.String() + ": \n")
			case mix:
				w.WriteString(kind.String() + " (with --mix): \n")
			default:
				w.WriteString(kind.String() + " (without --mix): \n")
			}
			p := printer.New(n, printer.Config{
				Color:      opts.Color,
				Comma:      opts.Comma,
				Mix:        mix,
				PrintSpace: opts.PrintSpace,
			})
			w.WriteString(p.Table() + "\n")
		}
	}
	return errors.Wrap(w.Flush(), "write tables")
}
