package main

import (
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
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
		if err := writeDocument(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
