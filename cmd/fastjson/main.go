// Command fastjson parses fastjson dialect input and prints every value it
// finds back out, one per line, in the dialect (or strict JSON with -s).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	simplerenv "go-simpler.org/env"

	fastjson "fastjson.lol"
	"fastjson.lol/chk"
	"fastjson.lol/env"
	"fastjson.lol/lol"
	"fastjson.lol/reader"
	"fastjson.lol/value"
	"fastjson.lol/writer"
)

// C is the environment configuration; flags override it.
type C struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"off/fatal/error/warn/info/debug/trace"`
	Strict   bool   `env:"STRICT" default:"false" usage:"emit strict RFC 8259 JSON"`
}

type args struct {
	Files  []string `arg:"positional" help:"input files (stdin when none given)"`
	Env    string   `arg:"--env" help:"load configuration from a .env file"`
	Strict bool     `arg:"-s,--strict" help:"emit strict RFC 8259 JSON"`
}

func (args) Version() string { return "fastjson " + fastjson.Version }

func main() {
	var a args
	arg.MustParse(&a)
	cfg := &C{}
	opts := &simplerenv.Options{SliceSep: ","}
	if a.Env != "" {
		var e env.Env
		var err error
		if e, err = env.GetEnv(a.Env); chk.F(err) {
			os.Exit(1)
		}
		opts.Source = e
	}
	if err := simplerenv.Load(cfg, opts); chk.F(err) {
		os.Exit(1)
	}
	lol.SetLogLevel(cfg.LogLevel)
	w := writer.New(os.Stdout)
	w.Strict = cfg.Strict || a.Strict
	if len(a.Files) == 0 {
		if err := pump(w, os.Stdin); err != nil {
			os.Exit(1)
		}
		return
	}
	for _, path := range a.Files {
		f, err := os.Open(path)
		if chk.F(err) {
			os.Exit(1)
		}
		err = pump(w, f)
		chk.E(f.Close())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
			os.Exit(1)
		}
	}
}

// pump parses every value in rd and renders each to w.
func pump(w *writer.T, rd io.Reader) (err error) {
	var r *reader.T
	if r, err = reader.New(rd); chk.E(err) {
		return
	}
	for {
		var v value.T
		if v, err = r.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			return
		}
		if err = w.Put(v); chk.E(err) {
			return
		}
	}
}
