// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command gama compresses a single input file into the gama wire format.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bwtlab/gama"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "enter filename.")
		os.Exit(1)
	}
	filename := os.Args[1]

	input, err := os.Open(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "file not found.")
		os.Exit(1)
	}
	defer input.Close()

	outputName := filename + ".gama.lz"
	output, err := os.OpenFile(outputName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", outputName, err)
		os.Exit(1)
	}
	defer output.Close()

	zw := gama.NewWriter(output)
	if _, err := copyBuffered(zw, input); err != nil {
		fmt.Fprintf(os.Stderr, "compression failed: %v\n", err)
		os.Exit(1)
	}
	if err := zw.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "compression failed: %v\n", err)
		os.Exit(1)
	}
}

func copyBuffered(zw *gama.Writer, input *os.File) (int64, error) {
	var total int64
	buf := make([]byte, 32*1024)
	for {
		n, rerr := input.Read(buf)
		if n > 0 {
			wn, werr := zw.Write(buf[:n])
			total += int64(wn)
			if werr != nil {
				return total, werr
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				return total, nil
			}
			return total, rerr
		}
	}
}
