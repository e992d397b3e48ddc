package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := readDocument(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := readDocument(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if a.Equal(b) {
		return nil
	}
	// diff over the canonical indented rendering, one line per element
	aj, err := a.ToJSON()
	if err != nil {
		return err
	}
	bj, err := b.ToJSON()
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(string(aj), string(bj))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	if useColor(cfg.MainConfig, cc) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for line := range strings.Lines(d.Text) {
			fmt.Fprintf(cc.Out, "%s%s", prefix, line)
		}
	}
	return nil
}

func useColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
