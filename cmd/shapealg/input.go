package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/shapealg/desc"
	"github.com/signadot/shapealg/hier"
	"github.com/signadot/shapealg/parse"
)

// readArg returns the bytes named by arg: the text itself with -s, stdin
// for "-", and the file contents otherwise.
func readArg(cfg *MainConfig, cc *cli.Context, arg string) ([]byte, error) {
	switch {
	case cfg.S:
		return []byte(arg), nil
	case arg == "-":
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

func readDesc(cfg *MainConfig, cc *cli.Context, arg string) (*desc.Desc, error) {
	d, err := readArg(cfg, cc, arg)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	if cfg.Patch == "" {
		return res, nil
	}
	patch, err := os.ReadFile(cfg.Patch)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", cfg.Patch, err)
	}
	return parse.ApplyPatch(res, patch)
}

func readDescs(cfg *MainConfig, cc *cli.Context, args []string) ([]*desc.Desc, error) {
	res := make([]*desc.Desc, len(args))
	for i, arg := range args {
		d, err := readDesc(cfg, cc, arg)
		if err != nil {
			return nil, err
		}
		res[i] = d
	}
	return res, nil
}

func readHierarchy(file string) (*hier.Hierarchy, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read hierarchy %q: %w", file, err)
	}
	h, err := parse.Hierarchy(d)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return h, nil
}

func wantArgs(args []string, n int, synopsis string) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %s", cli.ErrUsage, synopsis)
	}
	return nil
}
