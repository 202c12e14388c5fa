// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitalgo

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/bitalgo/internal/wordops"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Reverse reverses the order of the bits in [first, last) in place. Bits
// outside the range, including the bits sharing a word with either end of the
// range, are left unchanged.
//
// Reverse panics if [first, last) is not a well-formed range (see
// ValidateRange). It does not allocate.
func Reverse[W Word](first, last Iterator[W]) {
	assertRangeViability(first, last)
	words := first.words
	switch c := classifyReverse(first, last); c {
	case reverseEmpty:
	case reverseAligned:
		reverseAlignedWords(words, first.base, last.base)
	case reverseSameWord:
		reverseWithinWord(words, first.base, first.pos, last.pos)
	case reverseShiftLeft:
		reverseShiftingLeft(words, first.base, first.pos, last.base, last.pos)
	case reverseShiftRight:
		reverseShiftingRight(words, first.base, first.pos, last.base, last.pos)
	case reverseNoShift:
		reverseWithoutShift(words, first.base, first.pos, last.base, last.pos)
	default:
		panic(errors.AssertionFailedf("unknown reverse case %s", c))
	}
}

// reverseCase enumerates the shapes of range handled by Reverse.
type reverseCase uint8

const (
	// reverseEmpty is a zero-length range.
	reverseEmpty reverseCase = iota
	// reverseAligned is a range that begins and ends on word boundaries.
	reverseAligned
	// reverseSameWord is a range within a single word.
	reverseSameWord
	// reverseShiftLeft, reverseShiftRight and reverseNoShift are ranges
	// spanning more than one word with at least one unaligned end. After the
	// words are reversed, the bits must be realigned by funnel shifting left
	// or right, or not at all, depending on how first's offset compares to
	// the gap at the end of the last word.
	reverseShiftLeft
	reverseShiftRight
	reverseNoShift
)

var reverseCaseNames = [...]string{
	reverseEmpty:      "empty",
	reverseAligned:    "aligned",
	reverseSameWord:   "same-word",
	reverseShiftLeft:  "shift-left",
	reverseShiftRight: "shift-right",
	reverseNoShift:    "no-shift",
}

// String implements fmt.Stringer.
func (c reverseCase) String() string {
	if int(c) < len(reverseCaseNames) {
		return reverseCaseNames[c]
	}
	return fmt.Sprintf("reverseCase(%d)", c)
}

// SafeFormat implements redact.SafeFormatter.
func (c reverseCase) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(c.String()))
}

// classifyReverse selects the reverse case for a well-formed range.
func classifyReverse[W Word](first, last Iterator[W]) reverseCase {
	switch {
	case first.base == last.base && first.pos == last.pos:
		return reverseEmpty
	case first.IsAligned() && last.IsAligned():
		return reverseAligned
	case first.base == last.base:
		return reverseSameWord
	}
	switch gap := endGap[W](last.pos); {
	case first.pos < gap:
		return reverseShiftLeft
	case first.pos > gap:
		return reverseShiftRight
	default:
		return reverseNoShift
	}
}

// endGap returns the number of bits following the end of a range within the
// range's last word, or 0 if the range ends on a word boundary.
func endGap[W Word](lastPos uint) uint {
	if lastPos == 0 {
		return 0
	}
	return wordops.Digits[W]() - lastPos
}

// reverseAlignedWords reverses the bits of words[firstBase:lastBase]. Both
// ends are word boundaries so reversing the words and then the bits within
// each word suffices.
func reverseAlignedWords[W Word](words []W, firstBase, lastBase int) {
	run := words[firstBase:lastBase]
	slices.Reverse(run)
	for i := range run {
		run[i] = wordops.Bitswap(run[i])
	}
}

// reverseWithinWord reverses bits [firstPos, lastPos) of words[base], where
// lastPos > 0.
//
// The slice is shifted down to bit 0 and bit-swapped, which leaves it at the
// top of the word; shifting right by the gap moves it back to [firstPos,
// lastPos), where it's blended into the original word.
func reverseWithinWord[W Word](words []W, base int, firstPos, lastPos uint) {
	w := words[base]
	swapped := wordops.Bitswap(w>>firstPos) >> endGap[W](lastPos)
	words[base] = wordops.Bitblend(w, swapped, firstPos, lastPos-firstPos)
}

// multiWordReversal holds the state shared by the three multi-word cases.
// firstValue and lastValue are the boundary words as they were before any
// mutation; their bits outside the range are restored by finish.
type multiWordReversal[W Word] struct {
	firstBase, lastBase int
	firstPos, lastPos   uint
	// end is one past the last word containing bits of the range.
	end        int
	firstValue W
	lastValue  W
}

// beginMultiWordReversal saves the boundary words and reverses the order of
// every word containing bits of the range.
func beginMultiWordReversal[W Word](
	words []W, firstBase int, firstPos uint, lastBase int, lastPos uint,
) multiWordReversal[W] {
	r := multiWordReversal[W]{
		firstBase:  firstBase,
		lastBase:   lastBase,
		firstPos:   firstPos,
		lastPos:    lastPos,
		end:        lastBase,
		firstValue: words[firstBase],
	}
	if lastPos != 0 {
		r.end++
		r.lastValue = words[lastBase]
	}
	slices.Reverse(words[firstBase:r.end])
	return r
}

// finish bit-swaps every word of the reversed run and restores the bits
// preceding the range in the first word and following it in the last word.
func (r multiWordReversal[W]) finish(words []W) {
	digits := wordops.Digits[W]()
	for i := r.firstBase; i < r.end; i++ {
		words[i] = wordops.Bitswap(words[i])
	}
	if r.firstPos != 0 {
		words[r.firstBase] = wordops.Bitblend(r.firstValue, words[r.firstBase], r.firstPos, digits-r.firstPos)
	}
	if r.lastPos != 0 {
		words[r.lastBase] = wordops.Bitblend(words[r.lastBase], r.lastValue, r.lastPos, digits-r.lastPos)
	}
}

// reverseShiftingLeft handles a multi-word range where first's offset is less
// than the gap after last. The last word is necessarily unaligned. Every word
// of the reversed run is funnel shifted left by the difference, pulling in the
// high bits of its successor.
func reverseShiftingLeft[W Word](words []W, firstBase int, firstPos uint, lastBase int, lastPos uint) {
	r := beginMultiWordReversal(words, firstBase, firstPos, lastBase, lastPos)
	cnt := endGap[W](lastPos) - firstPos
	for i := firstBase; i < lastBase; i++ {
		words[i] = wordops.Shld(words[i], words[i+1], cnt)
	}
	words[lastBase] <<= cnt
	r.finish(words)
}

// reverseShiftingRight handles a multi-word range where first's offset is
// greater than the gap after last. Every word of the reversed run is funnel
// shifted right by the difference, pulling in the low bits of its predecessor.
func reverseShiftingRight[W Word](words []W, firstBase int, firstPos uint, lastBase int, lastPos uint) {
	r := beginMultiWordReversal(words, firstBase, firstPos, lastBase, lastPos)
	cnt := firstPos - endGap[W](lastPos)
	for i := r.end - 1; i > firstBase; i-- {
		words[i] = wordops.Shrd(words[i], words[i-1], cnt)
	}
	words[firstBase] >>= cnt
	r.finish(words)
}

// reverseWithoutShift handles a multi-word range where first's offset equals
// the gap after last, so the reversed words are already aligned.
func reverseWithoutShift[W Word](words []W, firstBase int, firstPos uint, lastBase int, lastPos uint) {
	r := beginMultiWordReversal(words, firstBase, firstPos, lastBase, lastPos)
	r.finish(words)
}
