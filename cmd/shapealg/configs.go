package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/shapealg"
	"github.com/signadot/shapealg/encode"
	"github.com/signadot/shapealg/parse"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	S      bool   `cli:"name=s desc='descriptor arguments are text, not files'"`
	Indent int    `cli:"name=indent desc='indent records in text output'"`
	Patch  string `cli:"name=patch desc='json patch file applied to every input descriptor'"`

	OutFormat *encode.Format
	Env       map[string]any

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(_ *cli.Context, v string) (any, error) {
	f, ok := encode.ParseFormat(v)
	if !ok {
		return nil, fmt.Errorf("%w: unknown format %q (text, yaml, json)", cli.ErrUsage, v)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) envOpt(_ *cli.Context, a string) (any, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return nil, err
	}
	cfg.Env[key] = v
	return 0, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ExprEnv(cfg.Env)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.Indent(cfg.Indent)}
	if cfg.OutFormat != nil {
		res = append(res, encode.EncodeFormat(*cfg.OutFormat))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type SeqConfig struct {
	*MainConfig
	Command *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Literal bool `cli:"name=literal desc='only literal never slots count as bottom'"`

	Command *cli.Command
}

func (cfg *FilterConfig) opts() []shapealg.Opt {
	return []shapealg.Opt{shapealg.LiteralBottomOnly(cfg.Literal)}
}

type LubConfig struct {
	*MainConfig
	Hierarchy string `cli:"name=h desc='hierarchy file (class: parent)'"`
	Top       string `cli:"name=top desc='class returned for unrelated classes'"`

	Lub *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Gops      bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
	Addr      string `cli:"name=addr desc='TCP listen address, stdio when empty'"`
	Hierarchy string `cli:"name=h desc='hierarchy file for leastUpperBound'"`
	Top       string `cli:"name=top desc='class returned for unrelated classes'"`

	Serve *cli.Command
}
