package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	jdom "github.com/jdom-format/go-jdom"
	"github.com/jdom-format/go-jdom/debug"
	"github.com/jdom-format/go-jdom/gomap"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: eval requires -e <expr>", cli.ErrUsage)
	}
	prg, err := expr.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := readDocument(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		env := map[string]any{"doc": docGo(doc)}
		if debug.Eval() {
			debug.Logf("eval %q on %s\n", cfg.Expr, file)
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", file, err)
		}
		if err := writeResult(cfg, cc, res); err != nil {
			return err
		}
	}
	return nil
}

func docGo(doc *jdom.Document) any {
	if a, ok := doc.Array(); ok {
		return a.ToSlice()
	}
	if o, ok := doc.Object(); ok {
		return o.ToMap()
	}
	return nil
}

// writeResult prints scalar results bare and renders composite results
// as documents in the output format.
func writeResult(cfg *EvalConfig, cc *cli.Context, res any) error {
	norm, err := gomap.Normalize(res)
	if err != nil {
		return err
	}
	switch v := norm.(type) {
	case []any:
		a, err := jdom.FromSlice(v)
		if err != nil {
			return err
		}
		return writeDocument(cfg.MainConfig, cc.Out, jdom.NewArrayDocument(a))
	case map[string]any:
		o, err := jdom.FromMap(v)
		if err != nil {
			return err
		}
		return writeDocument(cfg.MainConfig, cc.Out, jdom.NewObjectDocument(o))
	default:
		_, err := fmt.Fprintf(cc.Out, "%v\n", v)
		return err
	}
}
