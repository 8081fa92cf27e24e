// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt derives the Burrows-Wheeler Transform of a byte buffer via
// an explicit suffix array, rather than the move-to-front/prefix-coding
// stack bzip2 builds around it.
package bwt

import "github.com/bwtlab/gama/internal/sais"

// Encode returns the Burrows-Wheeler Transform of buf together with the
// suffix array used to derive it. The returned bwt has length
// len(buf)+1: position i holds T[(SA[i]-1) mod (n+1)], where T is buf
// with an implicit zero sentinel appended at index n.
//
// sais.Solve requires its sentinel value to occur nowhere else in the
// string, which a literal byte 0 in buf would violate. To satisfy that
// without disturbing the output, every symbol fed to the suffix array
// is buf's byte value shifted up by one (so real symbols occupy
// [1,256) and only the appended terminator uses 0); shifting every
// symbol by the same constant leaves their relative order, and
// therefore the resulting suffix array, unchanged. bwtOut itself is
// still built by reading straight from buf, so its bytes are exactly
// the original values.
func Encode(buf []byte) (bwtOut []byte, sa []int) {
	n := len(buf)
	t := make([]int, n+1)
	for i, b := range buf {
		t[i] = int(b) + 1
	}
	t[n] = 0

	sa = make([]int, n+1)
	sais.Solve(t, sa, 257)

	bwtOut = make([]byte, n+1)
	for i, s := range sa {
		if s == 0 {
			bwtOut[i] = 0
		} else {
			bwtOut[i] = buf[s-1]
		}
	}
	return bwtOut, sa
}
