// SPDX-License-Identifier: MIT
// Package homology — connected components of the 1-skeleton.
//
// β_0 counts path components. Components finds them combinatorially with a
// breadth-first search over vertices and edges, independent of any matrix,
// and Summarize uses it to cross-check the rank computation.
//
// Determinism:
//   - Roots are taken in increasing vertex label; neighbours are visited in
//     increasing label, so Order and grouping are stable.

package homology

import (
	"sort"

	"github.com/katalvlaran/simplicial/core"
)

const opComponents = "Components"

// queueItem pairs a vertex label with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker holds the mutable BFS state over a fixed adjacency.
type walker struct {
	adj     map[int][]int
	queue   []queueItem
	visited map[int]bool
}

// Components returns the vertex sets of the path components of c, each
// sorted, ordered by their smallest vertex. len(result) equals β_0.
//
// Errors:
//   - ErrNilComplex.
//
// Complexity:
//   - Time O(V log V + E log E), Space O(V + E).
func Components(c *core.Complex) ([][]int, error) {
	if c == nil {
		return nil, homologyErrorf(opComponents, ErrNilComplex)
	}

	vertices := c.NSimplices(0)
	w := &walker{
		adj:     make(map[int][]int, len(vertices)),
		queue:   make([]queueItem, 0, len(vertices)),
		visited: make(map[int]bool, len(vertices)),
	}
	roots := make([]int, len(vertices))
	for i, v := range vertices {
		roots[i] = v[0]
		w.adj[v[0]] = nil
	}
	for _, e := range c.NSimplices(1) {
		w.adj[e[0]] = append(w.adj[e[0]], e[1])
		w.adj[e[1]] = append(w.adj[e[1]], e[0])
	}
	for _, nbrs := range w.adj {
		sort.Ints(nbrs)
	}
	sort.Ints(roots)

	var out [][]int
	for _, r := range roots {
		if w.visited[r] {
			continue
		}
		comp := w.run(r)
		sort.Ints(comp)
		out = append(out, comp)
	}
	log.Debugf("%s: %d components", c.Name(), len(out))

	return out, nil
}

// run explores the component of root and returns its vertices in visit order.
func (w *walker) run(root int) []int {
	var order []int
	w.enqueue(root, 0)
	for len(w.queue) > 0 {
		item := w.dequeue()
		order = append(order, item.v)
		for _, nbr := range w.adj[item.v] {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1)
			}
		}
	}

	return order
}

// enqueue marks v visited and appends it to the queue.
func (w *walker) enqueue(v, depth int) {
	w.visited[v] = true
	w.queue = append(w.queue, queueItem{v: v, depth: depth})
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}
