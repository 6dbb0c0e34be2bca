// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplicial/builder"
	"github.com/katalvlaran/simplicial/core"
)

var (
	// errNoComplexes indicates a document without any entry.
	errNoComplexes = errors.New("input: no complexes")

	// errAmbiguousEntry indicates an entry listing both simplices and facets.
	errAmbiguousEntry = errors.New("input: both simplices and facets given")

	// errEmptyEntry indicates an entry listing neither simplices nor facets.
	errEmptyEntry = errors.New("input: neither simplices nor facets given")
)

// document is the on-disk input format. JSON is accepted as well, being a
// subset of YAML.
type document struct {
	Complexes []entry `yaml:"complexes"`
}

// entry describes one complex, either as its full simplex list (validated
// as is) or as facets (closed downward).
type entry struct {
	Name      string  `yaml:"name"`
	Simplices [][]int `yaml:"simplices"`
	Facets    [][]int `yaml:"facets"`
}

// loadFile reads and parses the complexes in filename.
func loadFile(filename string) ([]*core.Complex, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	return parse(data)
}

// parse decodes data and builds every complex it lists, in order.
func parse(data []byte) ([]*core.Complex, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}
	if len(doc.Complexes) == 0 {
		return nil, errNoComplexes
	}

	out := make([]*core.Complex, 0, len(doc.Complexes))
	for i, e := range doc.Complexes {
		c, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("complex %d (%q): %w", i, e.Name, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func (e entry) build() (*core.Complex, error) {
	switch {
	case e.Simplices != nil && e.Facets != nil:
		return nil, errAmbiguousEntry
	case e.Simplices != nil:
		return core.New(e.Name, e.Simplices)
	case e.Facets != nil:
		return builder.BuildComplex(e.Name, nil, builder.Facets(e.Facets))
	default:
		return nil, errEmptyEntry
	}
}
