// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais computes the suffix array of an integer string using the
// induced-sorting algorithm (SA-IS). The input alphabet is any integer
// range [0,sigma) and the final position of the input must hold a value
// that appears nowhere else in the string; this unique minimum acts as
// the sentinel that bootstraps both the L-type and S-type induction
// passes and terminates the recursive reduction.
package sais

// empty marks a suffix-array slot that induced sorting has not yet
// filled. All real positions are non-negative, so -1 can never collide
// with a valid text offset.
const empty = -1

// Solve computes the suffix array of t into sa. Both slices must have
// the same length, and t must end in a value that occurs nowhere else
// in t (the sentinel). sigma bounds the alphabet: every value in t must
// satisfy 0 <= t[i] < sigma.
func Solve(t, sa []int, sigma int) {
	n := len(t)
	if n == 0 {
		return
	}
	sais(t, sa, n, sigma)
}

func sais(t, sa []int, n, sigma int) {
	for i := 0; i < n; i++ {
		sa[i] = empty
	}
	if n == 1 {
		sa[0] = 0
		return
	}
	if n == 2 {
		if t[0] < t[1] {
			sa[0], sa[1] = 0, 1
		} else {
			sa[0], sa[1] = 1, 0
		}
		return
	}

	isS := classify(t, n)
	isLMS := func(i int) bool { return i > 0 && isS[i] && !isS[i-1] }

	bucketSize := make([]int, sigma)
	for _, c := range t[:n] {
		bucketSize[c]++
	}

	// Seed the array: place every LMS suffix at the tail of its symbol's
	// bucket, visiting the text right to left so equal-symbol LMS
	// positions land in text order (induction corrects the order).
	seedLMS(t, sa, isLMS, bucketSize, n)

	induceL(t, sa, isS, bucketSize, n)
	induceS(t, sa, isS, bucketSize, n)

	// Compact the now partially-sorted LMS suffixes to the front of sa,
	// then assign each LMS substring a rank ("name"), writing names into
	// the back half of sa indexed by half its text position — LMS
	// positions are never adjacent, so that mapping is collision-free.
	n1 := 0
	for i := 0; i < n; i++ {
		if sa[i] >= 0 && isLMS(sa[i]) {
			sa[n1] = sa[i]
			n1++
		}
	}
	for i := n1; i < n; i++ {
		sa[i] = empty
	}

	name := 0
	prev := -1
	for i := 0; i < n1; i++ {
		pos := sa[i]
		diff := prev < 0
		if !diff {
			d := 0
			for {
				if t[prev+d] != t[pos+d] {
					diff = true
					break
				}
				pIsLMS := isLMS(prev + d)
				qIsLMS := isLMS(pos + d)
				if d > 0 && (pIsLMS || qIsLMS) {
					diff = !(pIsLMS && qIsLMS)
					break
				}
				d++
			}
		}
		if diff {
			name++
			prev = pos
		}
		sa[n1+pos/2] = name - 1
	}
	for i, j := n-1, n-1; i >= n1; i-- {
		if sa[i] >= 0 {
			sa[j] = sa[i]
			j--
		}
	}

	t1 := sa[n-n1 : n]
	sa1 := sa[:n1]

	if name < n1 {
		// Names collide: the reduced string is not yet a permutation,
		// so recurse to sort it.
		sais(t1, sa1, n1, name)
	} else {
		// Every LMS substring is already distinct: the name IS the rank,
		// so the suffix array of t1 is t1's inverse permutation.
		for i := 0; i < n1; i++ {
			sa1[t1[i]] = i
		}
	}

	lms := make([]int, 0, n1)
	for i := 1; i < n; i++ {
		if isLMS(i) {
			lms = append(lms, i)
		}
	}
	for i := 0; i < n1; i++ {
		sa1[i] = lms[sa1[i]]
	}

	// sa1 aliases sa[:n1]; snapshot the lifted positions before the reset
	// below clears the whole array, or the re-bucketing loop just below
	// would read back its own freshly-cleared cells.
	order := make([]int, n1)
	copy(order, sa1)

	for i := 0; i < n; i++ {
		sa[i] = empty
	}
	tails := bucketTails(bucketSize)
	for i := n1 - 1; i >= 0; i-- {
		j := order[i]
		c := t[j]
		tails[c]--
		sa[tails[c]] = j
	}

	induceL(t, sa, isS, bucketSize, n)
	induceS(t, sa, isS, bucketSize, n)
}

// classify assigns each position a suffix type: true for S-type (the
// suffix starting here is lexicographically smaller than the one
// starting at i+1), false for L-type. The final position is always
// S-type by convention (the sentinel is the smallest symbol).
func classify(t []int, n int) []bool {
	isS := make([]bool, n)
	isS[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case t[i] < t[i+1]:
			isS[i] = true
		case t[i] > t[i+1]:
			isS[i] = false
		default:
			isS[i] = isS[i+1]
		}
	}
	return isS
}

func seedLMS(t, sa []int, isLMS func(int) bool, bucketSize []int, n int) {
	tails := bucketTails(bucketSize)
	for i := n - 1; i >= 0; i-- {
		if isLMS(i) {
			c := t[i]
			tails[c]--
			sa[tails[c]] = i
		}
	}
}

func bucketHeads(bucketSize []int) []int {
	heads := make([]int, len(bucketSize))
	sum := 0
	for i, sz := range bucketSize {
		heads[i] = sum
		sum += sz
	}
	return heads
}

func bucketTails(bucketSize []int) []int {
	tails := make([]int, len(bucketSize))
	sum := 0
	for i, sz := range bucketSize {
		sum += sz
		tails[i] = sum
	}
	return tails
}

// induceL fills in every L-type suffix's position by scanning sa left
// to right: whenever sa[i] names a position whose predecessor is
// L-type, that predecessor is placed at the head of its bucket.
func induceL(t, sa []int, isS []bool, bucketSize []int, n int) {
	heads := bucketHeads(bucketSize)
	for i := 0; i < n; i++ {
		si := sa[i]
		if si <= 0 {
			continue
		}
		j := si - 1
		if !isS[j] {
			c := t[j]
			sa[heads[c]] = j
			heads[c]++
		}
	}
}

// induceS mirrors induceL for S-type suffixes, scanning right to left
// and filling bucket tails inward.
func induceS(t, sa []int, isS []bool, bucketSize []int, n int) {
	tails := bucketTails(bucketSize)
	for i := n - 1; i >= 0; i-- {
		si := sa[i]
		if si <= 0 {
			continue
		}
		j := si - 1
		if isS[j] {
			c := t[j]
			tails[c]--
			sa[tails[c]] = j
		}
	}
}
