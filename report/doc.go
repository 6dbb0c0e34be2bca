// SPDX-License-Identifier: MIT

// Package report renders homology.Summary values as plain text blocks.
//
// A block looks like:
//
//	Space: torus
//	Dimension: 2
//	F-vector: [9 27 18]
//	Euler characteristic: 0
//	Betti numbers: [1 2 1]
//
// RenderAll separates consecutive blocks with one blank line. Rendering
// never reorders or recomputes anything; it only formats what Summarize
// produced.
package report
