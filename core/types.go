// SPDX-License-Identifier: MIT

package core

import (
	"strconv"
	"strings"
)

// Simplex is a strictly increasing list of non-negative vertex labels.
// A k-simplex has k+1 vertices. Simplices compare by value.
type Simplex []int

// Dim returns len(s)-1; the empty simplex has dimension -1.
func (s Simplex) Dim() int { return len(s) - 1 }

// Key returns a stable map key such as "0,1,2".
// Complexity: O(len(s)).
func (s Simplex) Key() string {
	buf := make([]byte, 0, 4*len(s))
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}

// Equal reports whether s and o have the same vertices in the same order.
func (s Simplex) Equal(o Simplex) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Face returns a fresh copy of s with the vertex at position k removed.
// It returns nil when k is outside [0, len(s)).
// Complexity: O(len(s)).
func (s Simplex) Face(k int) Simplex {
	if k < 0 || k >= len(s) {
		return nil
	}
	f := make(Simplex, 0, len(s)-1)
	f = append(f, s[:k]...)

	return append(f, s[k+1:]...)
}

// Clone returns an independent copy of s.
func (s Simplex) Clone() Simplex {
	if s == nil {
		return nil
	}
	cp := make(Simplex, len(s))
	copy(cp, s)

	return cp
}

// String renders s as "[0 1 2]".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}

// less orders simplices by dimension, then lexicographically.
func less(a, b Simplex) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
