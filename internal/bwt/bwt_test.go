// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"sort"
	"testing"

	"github.com/bwtlab/gama/internal/testutil"
)

// naiveBWT computes the BWT by sorting the suffixes of buf with an
// implicit zero sentinel appended, independent of the suffix-array
// machinery; used as an oracle per spec invariant 3.
//
// This compares suffixes rather than fixed-length rotations: when two
// rotations of buf+sentinel are bit-for-bit identical (possible once buf
// contains its own zero bytes, since the sentinel is then no longer a
// value unique to the end of the string), rotation order is ambiguous,
// but suffix order is not — the shorter suffix, the one that runs out of
// symbols first, is always the smaller one. That is the same convention
// the real suffix array construction relies on to place the sentinel.
func naiveBWT(buf []byte) []byte {
	n := len(buf)
	t := make([]int, n+1)
	for i, b := range buf {
		t[i] = int(b)
	}
	sa := make([]int, n+1)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		i, j := sa[a], sa[b]
		for i < n+1 && j < n+1 {
			if t[i] != t[j] {
				return t[i] < t[j]
			}
			i++
			j++
		}
		return i == n+1
	})
	out := make([]byte, n+1)
	for i, s := range sa {
		if s == 0 {
			out[i] = 0
		} else {
			out[i] = buf[s-1]
		}
	}
	return out
}

func TestEncode(t *testing.T) {
	vectors := []struct {
		input string
		bwt   string
		sa    []int
	}{
		{"banana", "annb\x00aa", []int{6, 5, 3, 1, 0, 4, 2}},
		{"mississippi", "ipssm\x00pissii", []int{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}},
		{"A", "A\x00", []int{1, 0}},
		{"abracadabra", "", []int{11, 10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2}},
	}
	for _, v := range vectors {
		bwtOut, sa := Encode([]byte(v.input))
		if !intsEqual(sa, v.sa) {
			t.Errorf("Encode(%q) SA = %v, want %v", v.input, sa, v.sa)
		}
		if v.bwt != "" && string(bwtOut) != v.bwt {
			t.Errorf("Encode(%q) BWT = %q, want %q", v.input, bwtOut, v.bwt)
		}
		if got := naiveBWT([]byte(v.input)); !bytes.Equal(got, bwtOut) {
			t.Errorf("Encode(%q) disagrees with naive BWT:\ngot  %q\nwant %q", v.input, bwtOut, got)
		}
	}
}

// TestEncodeEmbeddedNUL exercises the case where buf itself contains a
// zero byte, which collides in value with the implicit sentinel appended
// at T[n]. Encode must still agree with the naive suffix-sort oracle, and
// the sentinel suffix must still land at SA[0].
func TestEncodeEmbeddedNUL(t *testing.T) {
	vectors := [][]byte{
		{0},
		{0, 0},
		{'a', 0, 'b'},
		{0, 'x', 0, 'x', 0},
		[]byte("go\x00pher\x00"),
	}
	for _, buf := range vectors {
		bwtOut, sa := Encode(buf)
		want := naiveBWT(buf)
		if !bytes.Equal(bwtOut, want) {
			t.Errorf("Encode(%v) disagrees with naive BWT:\ngot  %v\nwant %v", buf, bwtOut, want)
		}
		if sa[0] != len(buf) {
			t.Errorf("Encode(%v) SA[0] = %d, want %d (the sentinel suffix is always smallest)", buf, sa[0], len(buf))
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	bwtOut, sa := Encode(nil)
	if len(bwtOut) != 1 || bwtOut[0] != 0 {
		t.Errorf("Encode(nil) BWT = %v, want [0]", bwtOut)
	}
	if len(sa) != 1 || sa[0] != 0 {
		t.Errorf("Encode(nil) SA = %v, want [0]", sa)
	}
}

func TestEncodeRandom(t *testing.T) {
	rnd := testutil.NewRand(2)
	for trial := 0; trial < 30; trial++ {
		n := rnd.Intn(500)
		buf := rnd.Bytes(n)
		bwtOut, _ := Encode(buf)
		want := naiveBWT(buf)
		if !bytes.Equal(bwtOut, want) {
			t.Errorf("trial %d: Encode disagrees with naive BWT for %v", trial, buf)
		}
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
