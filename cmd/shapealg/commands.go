package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Env: map[string]any{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text, yaml, json",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc, "(format)"),
		},
		&cli.Opt{
			Name:        "e",
			Description: "variable for !expr scalars",
			Type:        cli.NamedFuncOpt(cfg.envOpt, "(name=val)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "shapealg").
		WithSynopsis("shapealg [opts] command [opts]").
		WithDescription("shapealg computes with structural type descriptors.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return shapealgMain(cfg, cc, args)
		}).
		WithSubs(
			ShowCommand(cfg),
			AllCommand(cfg),
			SliceCommand(cfg),
			DropCommand(cfg),
			ExcludeCommand(cfg),
			NarrowCommand(cfg),
			MergeCommand(cfg),
			LubCommand(cfg),
			DiffCommand(cfg),
			ServeCommand(cfg))
}

func ShowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SeqConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "show").
		WithAliases("s").
		WithSynopsis("show [files]").
		WithDescription("parse descriptors and print them").
		WithRun(func(cc *cli.Context, args []string) error {
			return show(cfg, cc, args)
		})
}

func AllCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SeqConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "all").
		WithSynopsis("all <seq>").
		WithDescription("print whether every element of a tuple is true").
		WithRun(func(cc *cli.Context, args []string) error {
			return all(cfg, cc, args)
		})
}

func SliceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SeqConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "slice").
		WithSynopsis("slice <n> <seq>").
		WithDescription("print the first n elements of a tuple").
		WithRun(func(cc *cli.Context, args []string) error {
			return sliceDrop(cfg, cc, args, false)
		})
}

func DropCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SeqConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "drop").
		WithSynopsis("drop <n> <seq>").
		WithDescription("print a tuple without its first n elements").
		WithRun(func(cc *cli.Context, args []string) error {
			return sliceDrop(cfg, cc, args, true)
		})
}

func ExcludeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "exclude").
		WithAliases("x").
		WithSynopsis("exclude [-literal] <pattern> <union>").
		WithDescription("drop union members with a never slot at a pattern position").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args, false)
		})
}

func NarrowCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "narrow").
		WithAliases("n").
		WithSynopsis("narrow [-literal] <pattern> <union>").
		WithDescription("restrict union members to a pattern and drop the dead ones").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args, true)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SeqConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Command, "merge").
		WithAliases("m").
		WithSynopsis("merge <union>").
		WithDescription("merge the record variants of a union into one record").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func LubCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LubConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Lub, "lub").
		WithAliases("join").
		WithSynopsis("lub -h <hierarchy> [-top name] <a> <b>").
		WithDescription("print the least upper bound of two class descriptors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lub(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] <from> <to>").
		WithDescription("print the structural differences between two descriptors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-gops] [-addr addr] [-h hierarchy] [-top name]").
		WithDescription("serve the algebra over json-rpc 2.0").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
