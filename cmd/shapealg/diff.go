package main

import (
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/shapealg/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := wantArgs(args, 2, "<from> <to>"); err != nil {
		return err
	}
	ds, err := readDescs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	changes := libdiff.Diff(ds[0], ds[1])
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	_, err = io.WriteString(cc.Out, libdiff.Format(changes))
	return err
}
