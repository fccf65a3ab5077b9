// Command govisit decodes JSON or YAML input and pretty-prints it through
// the traversal engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	govisit "github.com/reoring/govisit"
	"github.com/reoring/govisit/json5"
)

func main() {
	var (
		format   string
		nulls    bool
		noSort   bool
		noCycles bool
		getters  bool
		strict   bool
	)
	flag.StringVar(&format, "format", "json", "input format: json or yaml")
	flag.BoolVar(&nulls, "nulls", false, "include null members in the output")
	flag.BoolVar(&noSort, "no-sort", false, "keep keys in discovery order")
	flag.BoolVar(&noCycles, "no-cycles", false, "disable cycle detection")
	flag.BoolVar(&getters, "getters", false, "include accessor methods as members")
	flag.BoolVar(&strict, "strict", false, "emit strict JSON (quote all keys)")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	v, err := readInput(format, flag.Arg(0))
	if err != nil {
		log.Fatalf("decode input: %v", err)
	}

	d := json5.NewDumper(os.Stdout)
	d.Strict = strict
	w := govisit.New(d, govisit.Options{
		IncludeNils:           nulls,
		DisableKeySort:        noSort,
		DisableSetSort:        noSort,
		DisableCycleDetection: noCycles,
		Accessors:             getters,
		CycleReplacement:      func(any) any { return "<cycle>" },
		Warn:                  func(err error) { log.Warn(err) },
	})
	w.RegisterBuiltinAdapters()

	if err := w.Walk(v); err != nil {
		log.Fatalf("traverse: %v", err)
	}
	fmt.Println()
}

func readInput(format, path string) (any, error) {
	in := os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	switch format {
	case "json":
		return govisit.JSONReader(in)
	case "yaml":
		return govisit.YAMLReader(in)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
