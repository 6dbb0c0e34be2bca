// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildComplex(name, bopts, cons...). Resolves cfg, runs
//     cons in order, closes the facet list downward and validates it.
//   - Functional options (BuilderOption) resolve into a builderConfig value
//     (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     complexes.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/simplicial/core"
)

var log = logging.Logger("builder")

// Constructor emits facets (vertex lists) using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Pass every local vertex index through cfg.label.
//   - Emit facets in a stable order for the same config.
//
// Facets need not be closed or deduplicated; BuildComplex does both.
type Constructor func(cfg builderConfig) ([][]int, error)

// BuildComplex resolves the builder configuration from bopts, applies all
// constructors in order and closes the concatenated facets into a validated
// core.Complex named name.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or when core rejects the facets
//     (the core sentinel stays reachable through errors.Is).
//   - Constructor errors, wrapped with "BuildComplex: %w".
//
// Complexity:
//   - Σ cost of the constructors plus core.FromFacets.
func BuildComplex(name string, bopts []BuilderOption, cons ...Constructor) (*core.Complex, error) {
	cfg := newBuilderConfig(bopts...)

	var facets [][]int
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildComplex, i, ErrConstructFailed)
		}
		part, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildComplex, err)
		}
		facets = append(facets, part...)
	}

	c, err := core.FromFacets(name, facets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuildComplex, ErrConstructFailed, err)
	}
	log.Debugf("built %q: %d facets, f-vector %v", name, len(facets), c.FVector())

	return c, nil
}

// Shifted runs con with every label moved k further than the surrounding
// configuration, so several constructors can be composed into a disjoint
// union inside one BuildComplex call.
//
// Panics on negative k, like WithOffset.
func Shifted(k int, con Constructor) Constructor {
	if k < 0 {
		panic("builder: Shifted(k<0)")
	}

	return func(cfg builderConfig) ([][]int, error) {
		if con == nil {
			return nil, fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		cfg.offset += k

		return con(cfg)
	}
}
