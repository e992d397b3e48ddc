package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	jdom "github.com/jdom-format/go-jdom"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := readDocument(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		res, err := applyPatch(cfg, doc, pd)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := writeDocument(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func applyPatch(cfg *PatchConfig, doc *jdom.Document, pd []byte) (*jdom.Document, error) {
	if cfg.Merge {
		return doc.Merge(pd)
	}
	return doc.Patch(pd)
}
