// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package gama

import (
	"fmt"
	"io"

	"github.com/bwtlab/gama/internal/bwt"
	"github.com/bwtlab/gama/internal/rle"
	"github.com/bwtlab/gama/internal/wavelet"
)

// Writer compresses an input byte stream into the gama wire format.
//
// Unlike a typical streaming compressor, Writer buffers every byte
// written to it: the suffix array construction that drives the whole
// pipeline needs the complete input before it can produce anything, so
// there is no useful notion of a partial block to flush early.
type Writer struct {
	InputOffset  int64 // Total number of bytes passed to Write
	OutputOffset int64 // Total number of bytes written to the underlying io.Writer

	wr  io.Writer
	err error
	buf []byte
}

// NewWriter creates a new Writer that writes the compressed form of
// whatever is written to it to w once Close is called.
func NewWriter(w io.Writer) *Writer {
	zw := new(Writer)
	zw.Reset(w)
	return zw
}

// Reset discards the Writer's state and makes it equivalent to the
// result of NewWriter, but writing to w instead.
func (zw *Writer) Reset(w io.Writer) {
	*zw = Writer{wr: w, buf: zw.buf[:0]}
}

// Write appends buf to the Writer's internal buffer. The data is not
// compressed or written to the underlying io.Writer until Close.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	zw.InputOffset += int64(len(buf))
	return len(buf), nil
}

// Close runs the compression pipeline over everything written so far
// and flushes the result to the underlying io.Writer. Close is
// idempotent: calling it again after a successful close is a no-op.
func (zw *Writer) Close() error {
	if zw.err == ErrClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	var out []byte
	func() {
		defer errRecover(&zw.err)
		out = zw.encode()
	}()
	if zw.err != nil {
		return zw.err
	}

	n, err := zw.wr.Write(out)
	zw.OutputOffset += int64(n)
	if err != nil {
		zw.err = err
		return err
	}
	zw.err = ErrClosed
	return nil
}

// encode runs BWT -> wavelet tree -> gamma RLE -> byte packing over the
// buffered input and returns the finished wire-format bytes.
func (zw *Writer) encode() []byte {
	bwtBytes, _ := bwt.Encode(zw.buf)
	tree := wavelet.Build(bwtBytes)

	out := make([]byte, 0, len(zw.buf))
	out = append(out, tree.Nodes[0].Bytes()...) // 256-bit root occupancy, 32 raw bytes

	for k := 1; k <= tree.Last; k++ {
		node := tree.Nodes[k]
		if node == nil || node.Len() == 0 {
			continue
		}
		enc := rle.EncodeGamma(node)
		out = append(out, []byte(fmt.Sprintf("%d", node.Len()))...)
		out = append(out, enc.Bytes()...)
	}
	return out
}
