// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitref is a bit-at-a-time reference model of the bit range
// algorithms, used as an oracle when testing the word-at-a-time versions.
package bitref

import (
	"strings"

	"github.com/cockroachdb/bitalgo/internal/wordops"
	"golang.org/x/exp/rand"
)

// Get returns bit i of words.
func Get[W wordops.Word](words []W, i int) bool {
	digits := int(wordops.Digits[W]())
	return words[i/digits]&(W(1)<<uint(i%digits)) != 0
}

// Set assigns bit i of words.
func Set[W wordops.Word](words []W, i int, v bool) {
	digits := int(wordops.Digits[W]())
	if v {
		words[i/digits] |= W(1) << uint(i%digits)
	} else {
		words[i/digits] &^= W(1) << uint(i%digits)
	}
}

// Count returns the number of bits in [from, to) equal to v.
func Count[W wordops.Word](words []W, from, to int, v bool) int {
	n := 0
	for i := from; i < to; i++ {
		if Get(words, i) == v {
			n++
		}
	}
	return n
}

// Reverse reverses bits [from, to) of words by swapping pairs of bits from
// the outside in.
func Reverse[W wordops.Word](words []W, from, to int) {
	for i, j := from, to-1; i < j; i, j = i+1, j-1 {
		bi, bj := Get(words, i), Get(words, j)
		Set(words, i, bj)
		Set(words, j, bi)
	}
}

// Random returns n words of random bits.
func Random[W wordops.Word](rng *rand.Rand, n int) []W {
	words := make([]W, n)
	for i := range words {
		words[i] = W(rng.Uint64())
	}
	return words
}

// Format renders words as a string of '0' and '1' in bit index order (the
// least-significant bit of the first word first), with a space between words.
func Format[W wordops.Word](words []W) string {
	digits := int(wordops.Digits[W]())
	var sb strings.Builder
	for i := 0; i < len(words)*digits; i++ {
		if i > 0 && i%digits == 0 {
			sb.WriteByte(' ')
		}
		if Get(words, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
