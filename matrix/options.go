// SPDX-License-Identifier: MIT
// Package matrix — functional options for the elimination kernels.
//
// Purpose:
//   - Keep the numeric policy of GaussianEliminate/Rank in one resolved struct.
//   - Expose only WithX setters; the Options struct stays opaque to callers.
//
// Defaults:
//   - integralCheck = DefaultIntegralCheck (true): refuse non-integral input.

package matrix

// DefaultIntegralCheck enables the exact-integer precondition on elimination input.
const DefaultIntegralCheck = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	integralCheck bool // DefaultIntegralCheck
}

// WithIntegralCheck makes GaussianEliminate/Rank verify that every entry is an
// exact integer before touching the matrix (the default).
// Complexity: O(1).
func WithIntegralCheck() Option {
	return func(o *Options) { o.integralCheck = true }
}

// WithoutIntegralCheck skips the exact-integer precondition.
// Exact-zero pivoting is then the caller's responsibility: entries like 0.1
// can leave rounding residues that count as extra pivots.
// Complexity: O(1).
func WithoutIntegralCheck() Option {
	return func(o *Options) { o.integralCheck = false }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{integralCheck: DefaultIntegralCheck}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
