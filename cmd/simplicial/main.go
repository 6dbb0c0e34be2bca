// SPDX-License-Identifier: MIT

// Command simplicial prints the Euler characteristic and Betti numbers of
// simplicial complexes read from a YAML/JSON file or taken from the built-in
// catalog.
//
// Usage:
//
//	simplicial [-file complexes.yaml] [-catalog] [-name torus] [-list]
//	           [-exact] [-workers n] [-check] [-log-level info]
//
// With neither -file nor -name the whole catalog is printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/simplicial/builder"
	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/homology"
	"github.com/katalvlaran/simplicial/report"
)

var log = logging.Logger("simplicial")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("simplicial", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		file     = fs.String("file", "", "Path to a YAML or JSON file listing complexes")
		catalog  = fs.Bool("catalog", false, "Print every built-in complex (default without -file and -name)")
		name     = fs.String("name", "", "Print one built-in complex by name")
		list     = fs.Bool("list", false, "List built-in complex names and exit")
		exact    = fs.Bool("exact", false, "Use exact big-integer elimination")
		workers  = fs.Int("workers", 0, "Dimensions computed concurrently (0 = one per physical core)")
		check    = fs.Bool("check", false, "Verify that the boundary of a boundary is zero")
		logLevel = fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level %q, using info\n", *logLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	if *list {
		for _, n := range builder.Names() {
			fmt.Fprintln(stdout, n)
		}

		return 0
	}

	complexes, err := collect(*file, *name, *catalog)
	if err != nil {
		fmt.Fprintf(stderr, "simplicial: %v\n", err)

		return 1
	}
	log.Infof("computing homology of %d complexes", len(complexes))

	opts := []homology.Option{homology.WithWorkers(*workers)}
	if *exact {
		opts = append(opts, homology.WithExactArithmetic())
	}

	summaries := make([]homology.Summary, 0, len(complexes))
	for _, c := range complexes {
		if *check {
			if err = homology.CheckBoundarySquare(c); err != nil {
				fmt.Fprintf(stderr, "simplicial: %v\n", err)

				return 1
			}
		}
		s, err := homology.Summarize(c, opts...)
		if err != nil {
			fmt.Fprintf(stderr, "simplicial: %v\n", err)

			return 1
		}
		summaries = append(summaries, s)
	}

	if err = report.RenderAll(stdout, summaries); err != nil {
		fmt.Fprintf(stderr, "simplicial: %v\n", err)

		return 1
	}

	return 0
}

// collect gathers complexes from the file, then the named catalog entry,
// then the whole catalog.
func collect(file, name string, catalog bool) ([]*core.Complex, error) {
	var out []*core.Complex
	if file != "" {
		cs, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded %d complexes from %s", len(cs), file)
		out = append(out, cs...)
	}
	if name != "" {
		n, err := builder.Lookup(name)
		if err != nil {
			return nil, err
		}
		c, err := n.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if catalog || (file == "" && name == "") {
		for _, n := range builder.Catalog() {
			c, err := n.Build()
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}

	return out, nil
}
