// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/simplicial/homology"
)

const (
	labelSpace = "Space"
	labelDim   = "Dimension"
	labelF     = "F-vector"
	labelEuler = "Euler characteristic"
	labelBetti = "Betti numbers"
)

// Render writes the text block for s to w.
//
// Errors:
//   - any error returned by w, wrapped with "Render".
func Render(w io.Writer, s homology.Summary) error {
	if _, err := io.WriteString(w, String(s)); err != nil {
		return fmt.Errorf("Render: %s: %w", s.Name, err)
	}

	return nil
}

// RenderAll writes every summary in order, one blank line between blocks.
// It stops at the first write error.
func RenderAll(w io.Writer, all []homology.Summary) error {
	for i, s := range all {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("RenderAll: %w", err)
			}
		}
		if err := Render(w, s); err != nil {
			return fmt.Errorf("RenderAll: %w", err)
		}
	}

	return nil
}

// String returns the text block for s, newline terminated.
func String(s homology.Summary) string {
	var b strings.Builder
	line(&b, labelSpace, s.Name)
	line(&b, labelDim, strconv.Itoa(s.Dim))
	line(&b, labelF, ints(s.FVector))
	line(&b, labelEuler, strconv.Itoa(s.Euler))
	line(&b, labelBetti, ints(s.Betti))

	return b.String()
}

func line(b *strings.Builder, label, value string) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteByte('\n')
}

// ints formats xs as "[a b c]"; nil and empty both give "[]".
func ints(xs []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')

	return b.String()
}
