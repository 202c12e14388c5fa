// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package wordops implements single-word bit primitives shared by the bit
// range algorithms: population count, bit extraction, bit-order reversal,
// funnel shifts and masked blends. Every function is generic over the
// unsigned word type and operates on exactly one word (or one pair of words
// for the funnel shifts).
//
// Bit 0 is the least-significant bit of a word. Go defines shifts by an
// amount greater than or equal to the operand width to yield zero, which the
// functions below rely on at the edges (a zero-length or full-width shift).
package wordops

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Word is the constraint satisfied by every type usable as the underlying
// storage unit of a bit sequence.
type Word interface {
	constraints.Unsigned
}

// Digits returns the number of bits in a W. The result is a constant for a
// given instantiation.
func Digits[W Word]() uint {
	var w W
	return uint(unsafe.Sizeof(w)) * 8
}

// Popcnt returns the number of set bits in w.
func Popcnt[W Word](w W) int {
	switch Digits[W]() {
	case 8:
		return bits.OnesCount8(uint8(w))
	case 16:
		return bits.OnesCount16(uint16(w))
	case 32:
		return bits.OnesCount32(uint32(w))
	default:
		return bits.OnesCount64(uint64(w))
	}
}

// Bitswap returns w with its bit order reversed: bit 0 is exchanged with bit
// digits-1, bit 1 with bit digits-2, and so on.
func Bitswap[W Word](w W) W {
	switch Digits[W]() {
	case 8:
		return W(bits.Reverse8(uint8(w)))
	case 16:
		return W(bits.Reverse16(uint16(w)))
	case 32:
		return W(bits.Reverse32(uint32(w)))
	default:
		return W(bits.Reverse64(uint64(w)))
	}
}

// Mask returns a word with the bits [start, start+length) set. A length that
// reaches past the end of the word is truncated at the word boundary.
func Mask[W Word](start, length uint) W {
	digits := Digits[W]()
	if start >= digits || length == 0 {
		return 0
	}
	var ones W = ^W(0)
	if length < digits-start {
		ones = (W(1) << length) - 1
	}
	return ones << start
}

// Bextr extracts length bits of w starting at bit start and returns them
// right-justified.
//
//	w:      10110010
//	start:  2, length: 4
//	result: 00001100
func Bextr[W Word](w W, start, length uint) W {
	return (w >> start) & Mask[W](0, length)
}

// Shld is a funnel shift left: it shifts dst left by cnt bits, filling the
// vacated low bits with the cnt most significant bits of src. It returns the
// high word of the conceptual double word (dst:src) << cnt.
func Shld[W Word](dst, src W, cnt uint) W {
	if cnt == 0 {
		return dst
	}
	return (dst << cnt) | (src >> (Digits[W]() - cnt))
}

// Shrd is a funnel shift right: it shifts dst right by cnt bits, filling the
// vacated high bits with the cnt least significant bits of src. It returns the
// low word of the conceptual double word (src:dst) >> cnt.
func Shrd[W Word](dst, src W, cnt uint) W {
	if cnt == 0 {
		return dst
	}
	return (dst >> cnt) | (src << (Digits[W]() - cnt))
}

// Bitblend returns src0 with the bits [start, start+length) replaced by the
// corresponding bits of src1.
func Bitblend[W Word](src0, src1 W, start, length uint) W {
	m := Mask[W](start, length)
	return src0 ^ ((src0 ^ src1) & m)
}
