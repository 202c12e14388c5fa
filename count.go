// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitalgo

import "github.com/cockroachdb/bitalgo/internal/wordops"

// Count returns the number of bits in [first, last) equal to value.
//
// The range is decomposed into at most one partial first word, zero or more
// whole interior words and at most one partial last word, each of which is
// population counted directly. The number of unset bits is derived from the
// number of set bits and the length of the range, so Count(r, Bit0) +
// Count(r, Bit1) is always the length of r.
//
// Count panics if [first, last) is not a well-formed range (see
// ValidateRange).
func Count[W Word](first, last Iterator[W], value Bit) int {
	assertRangeViability(first, last)

	digits := wordops.Digits[W]()
	words := first.words
	var n int
	if first.base != last.base {
		it := first.base
		if !first.IsAligned() {
			n = wordops.Popcnt(words[it] >> first.pos)
			it++
		}
		for ; it < last.base; it++ {
			n += wordops.Popcnt(words[it])
		}
		// An aligned last iterator may be the end of the sequence; its word
		// must not be read.
		if !last.IsAligned() {
			n += wordops.Popcnt(words[last.base] << (digits - last.pos))
		}
	} else if first.pos != last.pos {
		n = wordops.Popcnt(wordops.Bextr(words[first.base], first.pos, last.pos-first.pos))
	}

	if !value.IsSet() {
		n = first.Distance(last) - n
	}
	return n
}
