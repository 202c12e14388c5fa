// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitalgo implements algorithms over bit ranges stored in slices of
// fixed-width unsigned words.
//
// A range is a pair of Iterators [first, last) over the same caller-owned
// []W. The range rarely begins or ends on a word boundary, so each algorithm
// decomposes it into a partial first word, whole interior words and a partial
// last word, operating on whole words wherever possible. Bits sharing a word
// with either end of the range, but lying outside it, are never modified.
//
//	words := []uint8{0b11110000, 0b11110000}
//	first, last := bitalgo.At(words, 4), bitalgo.At(words, 12)
//	bitalgo.Count(first, last, bitalgo.Bit1) // 4
//	bitalgo.Reverse(first, last)             // words == {0b00000000, 0b11111111}
//
// The algorithms are synchronous and allocation free. They perform no locking:
// callers must exclude concurrent mutation of the words for the duration of a
// call. A malformed range (iterators over different slices, or first after
// last) is a programming error and causes a panic before any word is touched;
// see ValidateRange.
package bitalgo
