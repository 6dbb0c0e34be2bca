// SPDX-License-Identifier: MIT

// Package homology computes the Euler characteristic and the Betti numbers of
// a validated core.Complex.
//
// For every dimension n the engine builds the boundary operator
//
//	d_n : C_n → C_{n-1},   d_n[f][s] = (−1)^k  when f = s with vertex k removed,
//
// whose rows follow the insertion order of the (n−1)-simplices and whose
// columns follow the n-simplices. Ranks come from the matrix package, and
// rank–nullity gives
//
//	β_n = dim ker d_n − dim im d_{n+1} = (|C_n| − rank d_n) − rank d_{n+1}.
//
// Entry points:
//
//	NSimplices(c, n)            // n-simplices, insertion order
//	EulerCharacteristic(c)      // Σ (−1)^i |C_i|, no elimination
//	BoundaryMatrix(c, n)        // d_n as *matrix.Dense (possibly 0×k or k×0)
//	BettiNumber(c, n, opts...)  // β_n
//	Homology(c, opts...)        // [β_0 … β_dim]
//	Components(c)               // path components by BFS over the 1-skeleton
//	Summarize(c, opts...)       // all of the above plus Euler–Poincaré and β_0 checks
//	CheckBoundarySquare(c)      // d_n · d_{n+1} = 0 for every n
//
// Every matrix is built fresh for each query; nothing is cached between
// dimensions. Homology may evaluate dimensions concurrently (WithWorkers); the
// result is ordered by n either way.
//
// Options:
//
//	WithWorkers(k)          – evaluate up to k dimensions at once (k ≤ 0: one
//	                          per physical core)
//	WithExactArithmetic()   – ranks through matrix.ExactRank instead of float
//	                          elimination
//
// Errors:
//
//	ErrNilComplex, ErrDimensionOutOfRange, ErrNegativeBetti,
//	ErrEulerPoincare, ErrComponentCount, ErrBoundaryNotNilpotent, plus matrix
//	sentinels.
//
// Logging goes through the "homology" go-log logger at debug level (matrix
// shapes and ranks); internal-consistency failures are logged as warnings.
package homology
