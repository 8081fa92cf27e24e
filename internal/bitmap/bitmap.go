// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitmap implements a growable, densely packed sequence of bits.
package bitmap

import "github.com/dsnet/golib/bits"

// Bitmap is an ordered, append-only sequence of bits, packed MSB-first
// into bytes. The zero value is an empty bitmap ready to use.
type Bitmap struct {
	buf []byte
	n   int
}

// New returns an empty Bitmap.
func New() *Bitmap { return new(Bitmap) }

// Len reports the number of bits appended so far.
func (b *Bitmap) Len() int { return b.n }

// Append adds a single bit to the end of the bitmap.
func (b *Bitmap) Append(bit bool) {
	if b.n%8 == 0 {
		b.buf = append(b.buf, 0)
	}
	if bit {
		byteIdx := b.n / 8
		bitIdx := uint(7 - b.n%8)
		b.buf[byteIdx] |= 1 << bitIdx
	}
	b.n++
}

// Get reports the value of the i-th bit.
func (b *Bitmap) Get(i int) bool {
	byteIdx := i / 8
	bitIdx := uint(7 - i%8)
	return b.buf[byteIdx]&(1<<bitIdx) != 0
}

// Count returns the number of set bits. Unused trailing bits in the
// final byte are always zero, so counting over the full backing array
// is exact.
func (b *Bitmap) Count() int {
	return bits.Count(b.buf)
}

// Bytes returns the packed byte representation. The final byte may hold
// unused trailing bits, which are always zero; callers recover the
// exact bit count via Len.
func (b *Bitmap) Bytes() []byte { return b.buf }

// Reset empties the bitmap for reuse, retaining its backing storage.
func (b *Bitmap) Reset() {
	b.buf = b.buf[:0]
	b.n = 0
}
