package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jdom-format/go-jdom/container"
)

func diag(cfg *DiagConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diag.Parse(cc, args)
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
		data, err := doc.ToCBOR()
		if err != nil {
			return err
		}
		dg, err := container.Diagnose(data)
		if err != nil {
			return fmt.Errorf("error diagnosing %s: %w", file, err)
		}
		if _, err := fmt.Fprintln(cc.Out, dg); err != nil {
			return err
		}
	}
	return nil
}
