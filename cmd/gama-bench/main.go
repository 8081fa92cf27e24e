// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command gama-bench compares the output size of this module's
// gamma-coded wavelet-tree pipeline against a couple of off-the-shelf
// general-purpose compressors, plus the fixed-8-bit run-length variant
// in place of gamma coding.
//
// Example usage:
//	$ gama-bench -sizes 1e4,1e5,1e6 twain.txt
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/golib/strconv"

	"github.com/bwtlab/gama"
	"github.com/bwtlab/gama/internal/bwt"
	"github.com/bwtlab/gama/internal/rle"
	"github.com/bwtlab/gama/internal/wavelet"
)

var (
	sizesFlag = flag.String("sizes", "-1", "comma-separated list of input sizes to truncate each file to (e.g. 1e4,1e5); -1 means the whole file")
	seedFlag  = flag.Int("seed", 1, "byte used to fill a requested size when the file is empty; shorter non-empty files are repeated")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: gama-bench [-sizes 1e4,1e5,1e6] file...")
		os.Exit(1)
	}

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -sizes: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-24s %10s %12s %12s %12s %12s\n", "file:size", "input", "gama", "flate", "xz", "fixed8")
	for _, file := range flag.Args() {
		input, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			continue
		}
		for _, size := range sizes {
			buf := sizeTo(input, size, byte(*seedFlag))
			row(file, size, buf)
		}
	}
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, tok := range regexp.MustCompile("[,:]").Split(s, -1) {
		f, err := strconv.ParsePrefix(tok, strconv.AutoParse)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, int(f))
	}
	return sizes, nil
}

// sizeTo truncates or replicates input to exactly n bytes; n < 0 keeps
// the file as-is.
func sizeTo(input []byte, n int, pad byte) []byte {
	if n < 0 || len(input) == n {
		return input
	}
	if len(input) > n {
		return input[:n]
	}
	if len(input) == 0 {
		return bytes.Repeat([]byte{pad}, n)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = input[i%len(input)]
	}
	return out
}

func row(file string, size int, buf []byte) {
	label := fmt.Sprintf("%s:%d", file, size)
	if size < 0 {
		label = fmt.Sprintf("%s:all", file)
	}
	fmt.Printf("%-24s %10d %12d %12d %12d %12d\n",
		label, len(buf), gamaSize(buf), flateSize(buf), xzSize(buf), fixed8Size(buf))
}

func gamaSize(buf []byte) int {
	var out bytes.Buffer
	zw := gama.NewWriter(&out)
	zw.Write(buf)
	zw.Close()
	return out.Len()
}

func flateSize(buf []byte) int {
	var out bytes.Buffer
	zw, _ := flate.NewWriter(&out, flate.DefaultCompression)
	zw.Write(buf)
	zw.Close()
	return out.Len()
}

func xzSize(buf []byte) int {
	var out bytes.Buffer
	zw, err := xz.NewWriter(&out)
	if err != nil {
		return -1
	}
	zw.Write(buf)
	zw.Close()
	return out.Len()
}

// fixed8Size runs the same BWT -> wavelet pipeline gama uses, but with
// the non-default fixed-8-bit run-length encoder instead of gamma coding.
func fixed8Size(buf []byte) int {
	bwtBytes, _ := bwt.Encode(buf)
	tree := wavelet.Build(bwtBytes)

	total := tree.Nodes[0].Len() / 8
	for k := 1; k <= tree.Last; k++ {
		node := tree.Nodes[k]
		if node == nil || node.Len() == 0 {
			continue
		}
		enc := rle.EncodeFixed8(node)
		total += len(fmt.Sprintf("%d", node.Len())) + (enc.Len()+7)/8
	}
	return total
}
