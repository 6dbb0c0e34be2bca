// Package matrix is the linear-algebra engine behind the homology computations.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix whose shape may legally be 0×n, n×0
//     or 0×0 (empty boundary operators are ordinary values, not errors).
//   - In-place row operations (SwapRows, ScaleRow, AddScaledRow).
//   - GaussianEliminate, which reduces a matrix to row-echelon form in place
//     using exact-zero pivot tests, and CountPivots, which reads the rank off
//     an echelon matrix.
//   - ExactRank, a fraction-free elimination over big integers for callers
//     that want arithmetic with no floating-point assumptions at all.
//
// Numeric policy:
//
//	Pivot tests compare against 0.0 exactly. The homology package only feeds
//	boundary operators with entries in {-1,0,+1}. The entry under a pivot is
//	written as an exact 0 once its row has been combined, so the echelon shape
//	never depends on a rounding residue. GaussianEliminate
//	refuses non-integral input with ErrNonIntegral unless the caller opts out
//	with WithoutIntegralCheck; ExactRank drops the float assumption entirely.
//
// Complexity:
//
//	GaussianEliminate and Rank run in O(r·c·min(r,c)); CountPivots in O(r·c).
package matrix
