// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package gama implements a compressor built from a Burrows-Wheeler
// Transform, a balanced wavelet tree over the transformed bytes, and
// Elias-gamma run-length coding of each wavelet bitmap.
//
// Compression stack:
//	Burrows-Wheeler transform (BWT)
//	Wavelet tree               (WT)
//	Gamma run-length encoding  (RLE)
//
// This intentionally has no decompressor: the output is meant as the
// payload of a separate FM-index-style reader, not a self-contained
// archive format.
//
// References:
//	https://en.wikipedia.org/wiki/Burrows%E2%80%93Wheeler_transform
//	https://en.wikipedia.org/wiki/Wavelet_Tree
//	https://en.wikipedia.org/wiki/Elias_gamma_coding
package gama

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "gama: " + string(e) }

// ErrClosed reports that the Writer has already been closed.
var ErrClosed error = Error("writer is closed")

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
