// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"testing"

	"github.com/bwtlab/gama/internal/bitmap"
	"github.com/bwtlab/gama/internal/testutil"
)

// decodeGamma reconstructs the original bitmap from its gamma encoding;
// an oracle for the round-trip property (invariant 6), not part of the
// production pipeline (decompression is out of scope).
func decodeGamma(enc *bitmap.Bitmap, wantLen int) *bitmap.Bitmap {
	pos := 0
	readBit := func() bool {
		b := enc.Get(pos)
		pos++
		return b
	}
	readGamma := func() int {
		l := 0
		for !readBit() {
			l++
		}
		v := 1
		for i := 0; i < l; i++ {
			v <<= 1
			if readBit() {
				v |= 1
			}
		}
		return v
	}

	out := bitmap.New()
	if enc.Len() == 0 {
		return out
	}
	bit := readBit()
	for out.Len() < wantLen {
		run := readGamma()
		for i := 0; i < run && out.Len() < wantLen; i++ {
			out.Append(bit)
		}
		bit = !bit
	}
	return out
}

func fromBits(bs ...bool) *bitmap.Bitmap {
	b := bitmap.New()
	for _, v := range bs {
		b.Append(v)
	}
	return b
}

func TestEncodeGammaRoundTrip(t *testing.T) {
	vectors := [][]bool{
		{true},
		{false},
		{true, true, true, false, false, true},
		{false, false, false, false, false, false, false, false, true},
	}
	for _, v := range vectors {
		in := fromBits(v...)
		enc := EncodeGamma(in)
		got := decodeGamma(enc, in.Len())
		for i := 0; i < in.Len(); i++ {
			if got.Get(i) != in.Get(i) {
				t.Errorf("round-trip mismatch at bit %d for %v", i, v)
				break
			}
		}
	}
}

func TestEncodeGammaRandom(t *testing.T) {
	rnd := testutil.NewRand(5)
	for trial := 0; trial < 40; trial++ {
		n := rnd.Intn(400) + 1
		in := bitmap.New()
		bit := rnd.Intn(2) == 1
		for i := 0; i < n; i++ {
			if rnd.Intn(5) == 0 {
				bit = !bit
			}
			in.Append(bit)
		}
		enc := EncodeGamma(in)
		got := decodeGamma(enc, in.Len())
		for i := 0; i < in.Len(); i++ {
			if got.Get(i) != in.Get(i) {
				t.Fatalf("trial %d: round-trip mismatch at bit %d", trial, i)
			}
		}
	}
}

// A run of length r costs 2*floor(log2(r))+1 bits in gamma and 8 bits in
// fixed8, so gamma is the shorter code for every run of at most 15 bits
// (and longer for runs of 16 to 254). The inputs here cap each run at 15.
func TestEncodeFixed8NeverSmallerThanGamma(t *testing.T) {
	rnd := testutil.NewRand(6)
	for trial := 0; trial < 20; trial++ {
		n := rnd.Intn(2000) + 1
		in := bitmap.New()
		bit := rnd.Intn(2) == 1
		run := 0
		for i := 0; i < n; i++ {
			if run == 15 || rnd.Intn(50) == 0 {
				bit = !bit
				run = 0
			}
			in.Append(bit)
			run++
		}
		g := EncodeGamma(in)
		f := EncodeFixed8(in)
		if g.Len() > f.Len() {
			t.Errorf("trial %d: gamma encoding (%d bits) larger than fixed8 (%d bits) for runs of at most 15 bits", trial, g.Len(), f.Len())
		}
	}
}
