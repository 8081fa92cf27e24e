// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package wavelet builds a balanced wavelet tree over a byte sequence,
// used here purely as a compression front-end rather than for
// rank/select queries.
package wavelet

import "github.com/bwtlab/gama/internal/bitmap"

// Tree is a sparse, level-order indexed collection of node bitmaps.
// Node 0 holds the 256-bit alphabet-occupancy map rather than a real
// tree node. Last is the highest node index ever written; indices above
// it, and any nil entry below it, are leaves with nothing to emit.
type Tree struct {
	Nodes []*bitmap.Bitmap
	Last  int
}

// Build constructs the wavelet tree over s, an arbitrary byte sequence
// (typically the BWT output).
func Build(s []byte) *Tree {
	t := &Tree{Nodes: []*bitmap.Bitmap{nil}}

	occ := bitmap.New()
	var counts [256]int
	for _, c := range s {
		counts[c]++
	}
	for c := 0; c < 256; c++ {
		occ.Append(counts[c] > 0)
	}
	t.Nodes[0] = occ

	syms := make([]int, len(s))
	for i, c := range s {
		syms[i] = int(c)
	}
	t.split(1, syms)
	return t
}

func (t *Tree) node(k int) *bitmap.Bitmap {
	for len(t.Nodes) <= k {
		t.Nodes = append(t.Nodes, nil)
	}
	if k > t.Last {
		t.Last = k
	}
	return t.Nodes[k]
}

// split recursively partitions syms by midpoint, writing the current
// node's bitmap and descending into children 2k and 2k+1.
func (t *Tree) split(k int, syms []int) {
	if len(syms) == 0 {
		return
	}

	lo, hi := -1, -1
	for _, c := range syms {
		if lo < 0 || c < lo {
			lo = c
		}
		if hi < 0 || c > hi {
			hi = c
		}
	}
	if lo == hi {
		return // leaf: single symbol, no bitmap to write
	}
	mid := (lo + hi) / 2

	bm := bitmap.New()
	left := make([]int, 0, len(syms))
	right := make([]int, 0, len(syms))
	for _, c := range syms {
		if c <= mid {
			bm.Append(false)
			left = append(left, c)
		} else {
			bm.Append(true)
			right = append(right, c)
		}
	}

	t.node(k)
	t.Nodes[k] = bm

	t.split(2*k, left)
	t.split(2*k+1, right)
}
