package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	jdom "github.com/jdom-format/go-jdom"
	"github.com/jdom-format/go-jdom/encode"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	CBORFormat
)

func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(v) {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	case "cbor", "c":
		return CBORFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

type MainConfig struct {
	Wire  bool `cli:"name=w aliases=wire desc='compact (wire) JSON output'"`
	Color bool `cli:"name=color desc='render JSON output with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	C bool `cli:"name=c aliases=cbor desc='do i/o in cbor'"`

	InFormat, OutFormat *Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) inFormat(file string) Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.J:
		return JSONFormat
	case cfg.Y:
		return YAMLFormat
	case cfg.C:
		return CBORFormat
	}
	return formatForFile(file, JSONFormat)
}

func (cfg *MainConfig) outFormat() Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.Y:
		return YAMLFormat
	case cfg.C:
		return CBORFormat
	}
	return JSONFormat
}

func formatForFile(file string, def Format) Format {
	switch filepath.Ext(file) {
	case ".json":
		return JSONFormat
	case ".yaml", ".yml":
		return YAMLFormat
	case ".cbor", ".cb":
		return CBORFormat
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Compact(cfg.Wire),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) && !cfg.Wire {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readDocument loads one document from file ("-" for stdin) in the
// input format.
func readDocument(cfg *MainConfig, file string) (*jdom.Document, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	switch cfg.inFormat(file) {
	case YAMLFormat:
		return jdom.FromYAML(in)
	case CBORFormat:
		return jdom.FromCBOR(in)
	default:
		return jdom.FromJSON(in)
	}
}

// writeDocument renders doc to w in the output format.
func writeDocument(cfg *MainConfig, w io.Writer, doc *jdom.Document) error {
	var (
		out []byte
		err error
	)
	switch cfg.outFormat() {
	case YAMLFormat:
		out, err = doc.ToYAML()
	case CBORFormat:
		out, err = doc.ToCBOR()
	default:
		out, err = doc.ToJSON(cfg.encOpts(w)...)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=m aliases=merge desc='apply as RFC 7386 merge patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='expression to evaluate against each document'"`

	Eval *cli.Command
}

type DiagConfig struct {
	*MainConfig

	Diag *cli.Command
}
