package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"plaindata/internal/gen"
	"plaindata/internal/manifest"
)

const defaultManifest = "plaindata.yaml"

const usageText = `plaindata-gen - plain data method generator

Usage:
  plaindata-gen init -pkg <path> [-flags order,frozen] <Type>...   Write a manifest
  plaindata-gen analyze [-m plaindata.yaml] [-infos] [-dump]         Show field strategies
  plaindata-gen gen [-m plaindata.yaml]                              Generate code
  plaindata-gen check [-m plaindata.yaml]                            Fail if generated code is stale

Manifest flags are eq, unsafe_hash, order, repr and frozen. Every type gets
eq and repr unless the manifest says otherwise.`

// Root returns the root command for plaindata-gen.
func Root() *cli.Command {
	return cli.NewCommand("plaindata-gen").
		WithSynopsis("plaindata-gen command [opts]").
		WithDescription(usageText).
		WithSubs(
			InitCommand(),
			AnalyzeCommand(),
			GenCommand(),
			CheckCommand(),
		)
}

type analyzeConfig struct {
	*cli.Command
	Manifest string `cli:"name=m aliases=manifest desc='manifest file (default plaindata.yaml)'"`
	Verbose  bool   `cli:"name=v desc='log progress to stderr'"`
	Infos    bool   `cli:"name=infos desc='also print informational diagnostics'"`
	Dump     bool   `cli:"name=dump desc='dump the planned types'"`
}

// AnalyzeCommand returns the analyze subcommand.
func AnalyzeCommand() *cli.Command {
	cfg := &analyzeConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "analyze").
		WithSynopsis("analyze [-m manifest] [-infos] [-dump] - show how each field is compared and hashed").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *analyzeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 0 {
		return fmt.Errorf("%w: analyze takes no arguments, got %v", cli.ErrUsage, args)
	}

	p, err := buildPlan(manifestPath(cfg.Manifest), newLogger(os.Stderr, cfg.Verbose))
	if err != nil {
		return err
	}

	out := newReporter(cc.Out)
	out.strategies(p)

	if cfg.Dump {
		dumpPlan(cc.Out, p)
	}

	newReporter(os.Stderr).diagnostics(&p.Diagnostics, cfg.Infos)

	if p.Diagnostics.HasErrors() {
		return cli.ExitCodeErr(1)
	}

	return nil
}

type genConfig struct {
	*cli.Command
	Manifest string `cli:"name=m aliases=manifest desc='manifest file (default plaindata.yaml)'"`
	Verbose  bool   `cli:"name=v desc='log progress to stderr'"`
}

// GenCommand returns the gen subcommand.
func GenCommand() *cli.Command {
	cfg := &genConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "gen").
		WithSynopsis("gen [-m manifest] - write the generated file of every manifest package").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *genConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 0 {
		return fmt.Errorf("%w: gen takes no arguments, got %v", cli.ErrUsage, args)
	}

	files, err := generate(manifestPath(cfg.Manifest), cfg.Verbose)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files)
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintf(cc.Out, "wrote %s\n", path)
	}

	if len(written) == 0 {
		fmt.Fprintln(cc.Out, "generated code is up to date")
	}

	return nil
}

type checkConfig struct {
	*cli.Command
	Manifest string `cli:"name=m aliases=manifest desc='manifest file (default plaindata.yaml)'"`
	Verbose  bool   `cli:"name=v desc='log progress to stderr'"`
}

// CheckCommand returns the check subcommand.
func CheckCommand() *cli.Command {
	cfg := &checkConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "check").
		WithSynopsis("check [-m manifest] - exit non-zero when generated code is missing or stale").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *checkConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) != 0 {
		return fmt.Errorf("%w: check takes no arguments, got %v", cli.ErrUsage, args)
	}

	files, err := generate(manifestPath(cfg.Manifest), cfg.Verbose)
	if err != nil {
		return err
	}

	stale, err := gen.Check(files)
	if err != nil {
		return err
	}

	if len(stale) == 0 {
		fmt.Fprintln(cc.Out, "generated code is up to date")
		return nil
	}

	rep := newReporter(cc.Out)
	for _, s := range stale {
		rep.stale(s)
	}

	return cli.ExitCodeErr(1)
}

type initConfig struct {
	*cli.Command
	Manifest string `cli:"name=m aliases=manifest desc='manifest file to write (default plaindata.yaml)'"`
	Package  string `cli:"name=pkg desc='import path of the package holding the types'"`
	Flags    string `cli:"name=flags desc='comma separated flags added to every type, e.g. order,frozen'"`
	Force    bool   `cli:"name=f desc='overwrite an existing manifest'"`
}

// InitCommand returns the init subcommand.
func InitCommand() *cli.Command {
	cfg := &initConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "init").
		WithSynopsis("init -pkg <path> [-flags f1,f2] [-f] <Type>... - write a starter manifest").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *initConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}

	if cfg.Package == "" || len(args) == 0 {
		return fmt.Errorf("%w: init needs -pkg and at least one type name", cli.ErrUsage)
	}

	path := manifestPath(cfg.Manifest)

	if _, err := os.Stat(path); err == nil && !cfg.Force {
		return fmt.Errorf("%s already exists, use -f to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	mf := newManifest(cfg.Package, splitFlags(cfg.Flags), args)

	if diags := manifest.Validate(mf); diags.HasErrors() {
		newReporter(os.Stderr).diagnostics(diags, false)
		return cli.ExitCodeErr(1)
	}

	if err := manifest.WriteFile(mf, path); err != nil {
		return err
	}

	fmt.Fprintf(cc.Out, "wrote %s\n", path)

	return nil
}

func newManifest(pkgPath string, flags []string, typeNames []string) *manifest.File {
	pkg := manifest.Package{Path: pkgPath, Output: manifest.DefaultOutput}
	for _, name := range typeNames {
		pkg.Types = append(pkg.Types, manifest.TypeEntry{Name: name, Flags: flags})
	}

	return &manifest.File{Version: "1", Packages: []manifest.Package{pkg}}
}

func splitFlags(s string) []string {
	var flags []string

	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			flags = append(flags, f)
		}
	}

	return flags
}

func manifestPath(p string) string {
	if p == "" {
		return defaultManifest
	}

	return p
}

// generate runs the whole pipeline and reports diagnostics on stderr.
func generate(path string, verbose bool) ([]gen.GeneratedFile, error) {
	logger := newLogger(os.Stderr, verbose)

	p, err := buildPlan(path, logger)
	if err != nil {
		return nil, err
	}

	newReporter(os.Stderr).diagnostics(&p.Diagnostics, false)

	if p.Diagnostics.HasErrors() {
		return nil, cli.ExitCodeErr(1)
	}

	return gen.NewGenerator(gen.GeneratorConfig{
		WriteDebugUnformatted: true,
		Logger:                logger,
	}).Generate(p)
}
