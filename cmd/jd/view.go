package main

import (
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := readDocument(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		// view always renders JSON text, whatever -O says
		out, err := doc.ToJSON(cfg.encOpts(cc.Out)...)
		if err != nil {
			return err
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}
