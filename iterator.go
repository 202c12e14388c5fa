// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitalgo

import (
	"unsafe"

	"github.com/cockroachdb/bitalgo/internal/invariants"
	"github.com/cockroachdb/bitalgo/internal/wordops"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Word is the constraint satisfied by the underlying storage unit of a bit
// sequence. See wordops.Word.
type Word = wordops.Word

// Iterator addresses a single bit within a caller-owned []W. It is a pure
// value: copying an Iterator never copies the words, and stepping an Iterator
// returns a new one rather than mutating the receiver.
//
// An Iterator is the pair (Base, Position): Base is an index into the word
// slice and Position is the bit offset within that word, with 0 denoting the
// least-significant bit. Position is always < digits. The iterator one past
// the last bit of the sequence has Base == len(words) and Position == 0; it
// may be used as the end of a range but never dereferenced.
//
// Bits are numbered across the sequence so that bit i lives in word i/digits
// at offset i%digits:
//
//	words:   [   w0   ][   w1   ]
//	offsets:  76543210  76543210
//	index:    7......0  15.....8
type Iterator[W Word] struct {
	words []W
	base  int
	pos   uint
}

// Begin returns an iterator addressing the first bit of words.
func Begin[W Word](words []W) Iterator[W] {
	return Iterator[W]{words: words}
}

// End returns an iterator one past the last bit of words.
func End[W Word](words []W) Iterator[W] {
	return Iterator[W]{words: words, base: len(words)}
}

// At returns an iterator addressing bit i of words. i may equal the total
// number of bits in words, in which case the result equals End(words).
func At[W Word](words []W, i int) Iterator[W] {
	digits := int(wordops.Digits[W]())
	invariants.CheckBoundsInclusive(i, len(words)*digits)
	return Iterator[W]{words: words, base: i / digits, pos: uint(i % digits)}
}

// MakeIterator returns an iterator addressing bit pos of words[base]. It
// panics if pos is not less than the word width.
func MakeIterator[W Word](words []W, base int, pos uint) Iterator[W] {
	if pos >= wordops.Digits[W]() {
		panic(errors.AssertionFailedf("bit offset %d out of range for %d-bit words", pos, wordops.Digits[W]()))
	}
	invariants.CheckBoundsInclusive(base, len(words))
	return Iterator[W]{words: words, base: base, pos: pos}
}

// Words returns the word slice the iterator addresses.
func (it Iterator[W]) Words() []W { return it.words }

// Base returns the index of the word containing the addressed bit.
func (it Iterator[W]) Base() int { return it.base }

// Position returns the offset of the addressed bit within its word.
func (it Iterator[W]) Position() uint { return it.pos }

// Index returns the absolute bit index of the iterator within its sequence.
func (it Iterator[W]) Index() int {
	return it.base*int(wordops.Digits[W]()) + int(it.pos)
}

// IsAligned returns true if the iterator addresses the first bit of a word.
func (it Iterator[W]) IsAligned() bool { return it.pos == 0 }

// Next returns an iterator addressing the following bit.
func (it Iterator[W]) Next() Iterator[W] {
	if it.pos++; it.pos == wordops.Digits[W]() {
		it.pos = 0
		it.base++
	}
	invariants.CheckBoundsInclusive(it.base, len(it.words))
	return it
}

// Prev returns an iterator addressing the preceding bit.
func (it Iterator[W]) Prev() Iterator[W] {
	if it.pos == 0 {
		it.pos = wordops.Digits[W]()
		it.base--
	}
	it.pos--
	invariants.CheckBounds(it.base, len(it.words))
	return it
}

// Add returns an iterator n bits away from it. n may be negative.
func (it Iterator[W]) Add(n int) Iterator[W] {
	digits := int(wordops.Digits[W]())
	i := it.Index() + n
	invariants.CheckBoundsInclusive(i, len(it.words)*digits)
	// i is non-negative for any well-formed result, so truncating division
	// matches floor division.
	it.base = i / digits
	it.pos = uint(i % digits)
	return it
}

// Distance returns the number of bits from it to other, which is negative if
// other precedes it.
func (it Iterator[W]) Distance(other Iterator[W]) int {
	digits := int(wordops.Digits[W]())
	return (other.base-it.base)*digits + int(other.pos) - int(it.pos)
}

// SameSequence returns true if it and other address the same word slice.
func (it Iterator[W]) SameSequence(other Iterator[W]) bool {
	return len(it.words) == len(other.words) &&
		unsafe.SliceData(it.words) == unsafe.SliceData(other.words)
}

// Equal returns true if it and other address the same bit of the same
// sequence.
func (it Iterator[W]) Equal(other Iterator[W]) bool {
	return it.base == other.base && it.pos == other.pos && it.SameSequence(other)
}

// Compare returns -1, 0 or +1 depending on whether it addresses a bit before,
// at or after other. The result is only meaningful for iterators over the
// same sequence.
func (it Iterator[W]) Compare(other Iterator[W]) int {
	switch {
	case it.base < other.base:
		return -1
	case it.base > other.base:
		return +1
	case it.pos < other.pos:
		return -1
	case it.pos > other.pos:
		return +1
	default:
		return 0
	}
}

// Less returns true if it addresses a bit before other.
func (it Iterator[W]) Less(other Iterator[W]) bool { return it.Compare(other) < 0 }

// Word returns the word containing the addressed bit.
func (it Iterator[W]) Word() W { return it.words[it.base] }

// Get returns the addressed bit.
func (it Iterator[W]) Get() Bit {
	return bitOf(it.words[it.base]&(W(1)<<it.pos) != 0)
}

// Set assigns the addressed bit. This writes through to the underlying words.
func (it Iterator[W]) Set(b Bit) {
	if b.IsSet() {
		it.words[it.base] |= W(1) << it.pos
	} else {
		it.words[it.base] &^= W(1) << it.pos
	}
}

// Flip inverts the addressed bit.
func (it Iterator[W]) Flip() {
	it.words[it.base] ^= W(1) << it.pos
}

// String implements fmt.Stringer.
func (it Iterator[W]) String() string {
	return redact.StringWithoutMarkers(it)
}

// SafeFormat implements redact.SafeFormatter.
func (it Iterator[W]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%d:%d", redact.Safe(it.base), redact.Safe(it.pos))
}
