// SPDX-License-Identifier: MIT
// Package homology — functional options.
//
// Defaults:
//   - workers = DefaultWorkers (1): dimensions evaluated one after another.
//   - exact   = DefaultExact (false): float elimination with exact-zero pivots.

package homology

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

const (
	// DefaultWorkers keeps Homology sequential unless asked otherwise.
	DefaultWorkers = 1

	// DefaultExact selects float elimination.
	DefaultExact = false
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options is the resolved configuration of one call.
type Options struct {
	workers int  // DefaultWorkers
	exact   bool // DefaultExact
}

// WithWorkers lets Homology evaluate up to k dimensions concurrently.
// k ≤ 0 selects AutoWorkers().
func WithWorkers(k int) Option {
	if k <= 0 {
		k = AutoWorkers()
	}

	return func(o *Options) { o.workers = k }
}

// WithExactArithmetic computes every rank with matrix.ExactRank.
func WithExactArithmetic() Option {
	return func(o *Options) { o.exact = true }
}

// AutoWorkers returns the number of physical cores reported by the CPU,
// capped by GOMAXPROCS, and 1 when detection fails.
func AutoWorkers() int {
	n := cpuid.CPU.PhysicalCores
	if n < 1 {
		return 1
	}
	if p := runtime.GOMAXPROCS(0); n > p {
		n = p
	}

	return n
}

// gatherOptions applies user setters over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers, exact: DefaultExact}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
