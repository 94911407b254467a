package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/Cerber-Ursi/uneval/encode"
	"github.com/Cerber-Ursi/uneval/parse"
)

type Config struct {
	J     bool `cli:"name=j aliases=json desc='treat input as JSON'"`
	Color bool `cli:"name=color desc='colorize output'"`
	Check bool `cli:"name=check desc='verify the -o file is up to date instead of writing it'"`

	Helpers string `cli:"name=helpers desc='also write the tuple conversion helper module to this path'"`
	Arity   int    `cli:"name=arity desc='max tuple arity for the helper module (default 32)'"`

	ConvertPath string `cli:"name=convert-path desc='path prefix for tuple conversion calls'"`
	Select      string `cli:"name=select desc='expr program applied to the decoded document before encoding'"`
	Patch       string `cli:"name=patch desc='RFC 6902 patch file applied to JSON input before encoding'"`

	Out string

	Main *cli.Command
}

func (cfg *Config) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return nil, nil
}

func (cfg *Config) parseOpts() []parse.ParseOption {
	if cfg.J {
		return []parse.ParseOption{parse.ParseJSON()}
	}
	return nil
}

// plainOpts renders text as it would be included in a program: the
// convert path override applies, colors never do.  Used for the
// -check comparison, which must match the uncolored file bytes even
// under an explicit -color.
func (cfg *Config) plainOpts() []encode.EncodeOption {
	if cfg.ConvertPath == "" {
		return nil
	}
	return []encode.EncodeOption{encode.ConvertPath(cfg.ConvertPath)}
}

func (cfg *Config) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.plainOpts()
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
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
