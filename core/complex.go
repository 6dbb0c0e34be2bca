// SPDX-License-Identifier: MIT
// File: complex.go
// Role: the immutable Complex type, its validating constructor and accessors.
// Determinism:
//   - Simplices keep their insertion order; every per-dimension list is a
//     subsequence of it.
// Concurrency:
//   - A Complex is never mutated after New returns, so any number of
//     goroutines may read it without locking. Accessors hand out copies.

package core

// Complex is a validated, immutable finite simplicial complex.
type Complex struct {
	name      string
	simplices []Simplex      // insertion order
	index     map[string]int // Simplex.Key() → position in simplices
	byDim     [][]int        // byDim[n] = positions of the n-simplices, in order
}

// New validates simplices and returns the complex they describe.
//
// Implementation:
//   - Stage 1: name and emptiness checks.
//   - Stage 2: per-simplex shape checks (non-empty, labels ≥ 0, strictly
//     increasing) and duplicate detection through the key index.
//   - Stage 3: downward closure. Checking the codimension-1 faces of every
//     simplex is enough: by induction each lower face is then present too.
//
// Errors:
//   - ErrEmptyName, ErrEmptyComplex, ErrEmptySimplex, ErrNegativeVertex,
//     ErrNotIncreasing, ErrDuplicateSimplex, ErrMissingFace.
//     On error the result is nil; no partial complex is built.
//
// Complexity:
//   - Time O(Σ|s|²), Space O(Σ|s|).
func New(name string, simplices [][]int) (*Complex, error) {
	if name == "" {
		return nil, coreErrorf(opNew, ErrEmptyName)
	}
	if len(simplices) == 0 {
		return nil, coreErrorf(opNew, ErrEmptyComplex)
	}

	c := &Complex{
		name:      name,
		simplices: make([]Simplex, 0, len(simplices)),
		index:     make(map[string]int, len(simplices)),
	}
	var (
		raw []int
		s   Simplex
		key string
		ok  bool
		err error
	)
	for _, raw = range simplices {
		if err = checkShape(raw); err != nil {
			return nil, simplexErrorf(opNew, raw, err)
		}
		s = Simplex(raw).Clone()
		key = s.Key()
		if _, ok = c.index[key]; ok {
			return nil, simplexErrorf(opNew, raw, ErrDuplicateSimplex)
		}
		c.index[key] = len(c.simplices)
		c.simplices = append(c.simplices, s)
		for len(c.byDim) <= s.Dim() {
			c.byDim = append(c.byDim, nil)
		}
		c.byDim[s.Dim()] = append(c.byDim[s.Dim()], len(c.simplices)-1)
	}

	var k int
	for _, s = range c.simplices {
		if len(s) == 1 {
			continue
		}
		for k = range s {
			if _, ok = c.index[s.Face(k).Key()]; !ok {
				return nil, simplexErrorf(opNew, s, ErrMissingFace)
			}
		}
	}

	return c, nil
}

// checkShape verifies a single simplex: non-empty, non-negative, increasing.
func checkShape(s []int) error {
	if len(s) == 0 {
		return ErrEmptySimplex
	}
	if s[0] < 0 {
		return ErrNegativeVertex
	}
	for i := 1; i < len(s); i++ {
		if s[i] < 0 {
			return ErrNegativeVertex
		}
		if s[i] <= s[i-1] {
			return ErrNotIncreasing
		}
	}

	return nil
}

// Name returns the complex name.
func (c *Complex) Name() string { return c.name }

// Dim returns the largest simplex dimension.
func (c *Complex) Dim() int { return len(c.byDim) - 1 }

// Len returns the total number of simplices.
func (c *Complex) Len() int { return len(c.simplices) }

// Simplices returns a deep copy of all simplices in insertion order.
// Complexity: O(Σ|s|).
func (c *Complex) Simplices() []Simplex {
	out := make([]Simplex, len(c.simplices))
	for i, s := range c.simplices {
		out[i] = s.Clone()
	}

	return out
}

// NSimplices returns copies of the simplices of dimension exactly n, in
// insertion order. Out-of-range n yields an empty, non-nil slice.
// Complexity: O(|C_n|·(n+1)).
func (c *Complex) NSimplices(n int) []Simplex {
	if n < 0 || n >= len(c.byDim) {
		return []Simplex{}
	}
	out := make([]Simplex, len(c.byDim[n]))
	for i, pos := range c.byDim[n] {
		out[i] = c.simplices[pos].Clone()
	}

	return out
}

// Count returns |C_n|, the number of n-simplices (0 when n is out of range).
// Complexity: O(1).
func (c *Complex) Count(n int) int {
	if n < 0 || n >= len(c.byDim) {
		return 0
	}

	return len(c.byDim[n])
}

// FVector returns [|C_0|, |C_1|, ..., |C_dim|].
func (c *Complex) FVector() []int {
	out := make([]int, len(c.byDim))
	for n := range c.byDim {
		out[n] = len(c.byDim[n])
	}

	return out
}

// Index returns the insertion position of s, if present.
// Complexity: O(|s|).
func (c *Complex) Index(s Simplex) (int, bool) {
	i, ok := c.index[s.Key()]

	return i, ok
}

// Contains reports whether s belongs to the complex.
func (c *Complex) Contains(s Simplex) bool {
	_, ok := c.index[s.Key()]

	return ok
}
