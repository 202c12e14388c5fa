// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitsetview runs the bitalgo range algorithms directly over the
// storage of a *bitset.BitSet from github.com/bits-and-blooms/bitset.
//
// The BitSet's words are borrowed for the duration of each call. Bit i of a
// BitSet is bit i%64 of word i/64, which is the numbering bitalgo uses, so no
// translation is required.
package bitsetview

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/bitalgo"
	"github.com/cockroachdb/errors"
)

// Range returns iterators addressing [from, to) within b. Unlike the bitalgo
// algorithms, which treat a malformed range as a programming error, Range
// returns an error: BitSet lengths are typically runtime values.
func Range(b *bitset.BitSet, from, to uint) (first, last bitalgo.Iterator[uint64], _ error) {
	if from > to {
		return first, last, errors.Newf("bitsetview: range [%d, %d) is inverted", from, to)
	}
	if to > b.Len() {
		return first, last, errors.Newf("bitsetview: range [%d, %d) exceeds bitset length %d", from, to, b.Len())
	}
	words := b.Words()
	first = bitalgo.MakeIterator(words, int(from/64), from%64)
	last = bitalgo.MakeIterator(words, int(to/64), to%64)
	return first, last, nil
}

// Count returns the number of bits in [from, to) of b equal to value.
func Count(b *bitset.BitSet, from, to uint, value bitalgo.Bit) (uint, error) {
	first, last, err := Range(b, from, to)
	if err != nil {
		return 0, err
	}
	return uint(bitalgo.Count(first, last, value)), nil
}

// Reverse reverses the order of the bits in [from, to) of b in place.
func Reverse(b *bitset.BitSet, from, to uint) error {
	first, last, err := Range(b, from, to)
	if err != nil {
		return err
	}
	bitalgo.Reverse(first, last)
	return nil
}
