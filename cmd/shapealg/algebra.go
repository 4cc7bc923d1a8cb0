package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
	"github.com/signadot/shapealg"
	"github.com/signadot/shapealg/encode"
)

func show(cfg *SeqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	ds, err := readDescs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for i, d := range ds {
		if i != 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func all(cfg *SeqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := wantArgs(args, 1, "<seq>"); err != nil {
		return err
	}
	seq, err := readDesc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	ok, err := shapealg.All(seq)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, ok)
	return err
}

func sliceDrop(cfg *SeqConfig, cc *cli.Context, args []string, drop bool) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := wantArgs(args, 2, "<n> <seq>"); err != nil {
		return err
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad count %q", cli.ErrUsage, args[0])
	}
	seq, err := readDesc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	op := shapealg.Slice
	if drop {
		op = shapealg.Drop
	}
	res, err := op(seq, n)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func filter(cfg *FilterConfig, cc *cli.Context, args []string, narrow bool) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := wantArgs(args, 2, "<pattern> <union>"); err != nil {
		return err
	}
	ds, err := readDescs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	op := shapealg.ExcludeIfBottom
	if narrow {
		op = shapealg.Narrow
	}
	res, err := op(ds[1], ds[0], cfg.opts()...)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func merge(cfg *SeqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := wantArgs(args, 1, "<union>"); err != nil {
		return err
	}
	u, err := readDesc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	res, err := shapealg.IntersectVariants(u)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func lub(cfg *LubConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lub.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Hierarchy == "" {
		return fmt.Errorf("%w: -h is required", cli.ErrUsage)
	}
	if err := wantArgs(args, 2, "<a> <b>"); err != nil {
		return err
	}
	h, err := readHierarchy(cfg.Hierarchy)
	if err != nil {
		return err
	}
	ds, err := readDescs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	res, err := shapealg.LeastUpperBound(h, ds[0], ds[1], shapealg.WithTop(cfg.Top))
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
