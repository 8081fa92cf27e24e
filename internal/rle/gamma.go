// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rle implements run-length encodings of a bitmap's runs, used
// to compress the bitmaps that make up a wavelet tree.
package rle

import (
	"math/bits"

	"github.com/bwtlab/gama/internal/bitmap"
)

// EncodeGamma transforms in into a bitmap whose first bit is the value
// of in's first bit, followed by the Elias-gamma encoding of each
// maximal run length in in. in must hold at least one bit.
func EncodeGamma(in *bitmap.Bitmap) *bitmap.Bitmap {
	n := in.Len()
	out := bitmap.New()
	if n == 0 {
		return out
	}

	prev := in.Get(0)
	out.Append(prev)
	run := 1
	for i := 1; i < n; i++ {
		b := in.Get(i)
		if b == prev {
			run++
			continue
		}
		emitGamma(out, run)
		run = 1
		prev = b
	}
	emitGamma(out, run)
	return out
}

// emitGamma writes v (v >= 1) as floor(log2(v)) zero bits followed by
// the floor(log2(v))+1 bit binary representation of v.
func emitGamma(out *bitmap.Bitmap, v int) {
	l := bits.Len(uint(v)) - 1
	for i := 0; i < l; i++ {
		out.Append(false)
	}
	for i := l; i >= 0; i-- {
		out.Append(v>>uint(i)&1 == 1)
	}
}

// EncodeFixed8 is the non-gamma alternative: each run length is written
// as one or more fixed 8-bit chunks, a chunk value of 255 meaning "at
// least 255, more follows." It exists for comparison (see cmd/gama-bench)
// and is never used by the default pipeline.
func EncodeFixed8(in *bitmap.Bitmap) *bitmap.Bitmap {
	n := in.Len()
	out := bitmap.New()
	if n == 0 {
		return out
	}

	prev := in.Get(0)
	out.Append(prev)
	run := 1
	for i := 1; i < n; i++ {
		b := in.Get(i)
		if b == prev {
			run++
			continue
		}
		emitFixed8(out, run)
		run = 1
		prev = b
	}
	emitFixed8(out, run)
	return out
}

func emitFixed8(out *bitmap.Bitmap, run int) {
	for run >= 255 {
		emitByte(out, 255)
		run -= 255
	}
	emitByte(out, run)
}

func emitByte(out *bitmap.Bitmap, v int) {
	for i := 7; i >= 0; i-- {
		out.Append(v>>uint(i)&1 == 1)
	}
}
