package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Cerber-Ursi/uneval/bind"
	"github.com/Cerber-Ursi/uneval/convert"
	"github.com/Cerber-Ursi/uneval/encode"
	"github.com/Cerber-Ursi/uneval/parse"
	"github.com/Cerber-Ursi/uneval/value"
)

func gen(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input file", cli.ErrUsage)
	}
	in, err := readInput(args)
	if err != nil {
		return err
	}
	if cfg.Patch != "" {
		in, err = applyPatch(cfg, in)
		if err != nil {
			return err
		}
	}
	node, err := decode(cfg, in)
	if err != nil {
		return err
	}

	if cfg.Check {
		return check(cfg, cc, node)
	}
	w, closeOut, err := outWriter(cfg, cc)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		closeOut()
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return err
	}
	return writeHelpers(cfg)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return in, nil
	}
	in, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", args[0], err)
	}
	return in, nil
}

func applyPatch(cfg *Config, in []byte) ([]byte, error) {
	if !cfg.J {
		return nil, fmt.Errorf("%w: -patch requires JSON input (-j)", cli.ErrUsage)
	}
	pd, err := os.ReadFile(cfg.Patch)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", cfg.Patch, err)
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, fmt.Errorf("bad patch %q: %w", cfg.Patch, err)
	}
	patched, err := p.Apply(in)
	if err != nil {
		return nil, fmt.Errorf("applying %q: %w", cfg.Patch, err)
	}
	return patched, nil
}

// decode turns the input document into a value tree, either directly
// or, under -select, through an expr projection of the plain decoded
// document.  The projection path loses shape tags: the program sees
// maps, slices and scalars, and its result is bound like a Go value.
func decode(cfg *Config, in []byte) (*value.Node, error) {
	if cfg.Select == "" {
		return parse.Parse(in, cfg.parseOpts()...)
	}
	var doc any
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return nil, fmt.Errorf("error decoding input: %w", err)
	}
	prg, err := expr.Compile(cfg.Select)
	if err != nil {
		return nil, fmt.Errorf("%w: bad -select program: %w", cli.ErrUsage, err)
	}
	out, err := expr.Run(prg, doc)
	if err != nil {
		return nil, fmt.Errorf("error running -select program: %w", err)
	}
	return bind.FromGo(out)
}

func outWriter(cfg *Config, cc *cli.Context) (io.Writer, func() error, error) {
	if cfg.Out == "" || cfg.Out == "-" {
		return cc.Out, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// check renders to memory and compares against the existing -o file,
// reporting a diff and failing when the file is stale.
func check(cfg *Config, cc *cli.Context, node *value.Node) error {
	if cfg.Out == "" || cfg.Out == "-" {
		return fmt.Errorf("%w: -check requires -o", cli.ErrUsage)
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, cfg.plainOpts()...); err != nil {
		return err
	}
	buf.WriteByte('\n')
	existing, err := os.ReadFile(cfg.Out)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", cfg.Out, err)
	}
	if bytes.Equal(existing, buf.Bytes()) {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(existing), buf.String(), false)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return fmt.Errorf("%s is out of date", cfg.Out)
}

func writeHelpers(cfg *Config) error {
	if cfg.Helpers == "" {
		return nil
	}
	arity := cfg.Arity
	if arity == 0 {
		arity = convert.DefaultMaxArity
	}
	f, err := os.OpenFile(cfg.Helpers, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := convert.Helpers(f, arity); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
