// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitalgo

import (
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/bitalgo/internal/bitref"
	"github.com/cockroachdb/bitalgo/internal/wordops"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCountRandom(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	t.Run("uint8", func(t *testing.T) { testCountRandom[uint8](t, rng) })
	t.Run("uint16", func(t *testing.T) { testCountRandom[uint16](t, rng) })
	t.Run("uint32", func(t *testing.T) { testCountRandom[uint32](t, rng) })
	t.Run("uint64", func(t *testing.T) { testCountRandom[uint64](t, rng) })
}

func testCountRandom[W Word](t *testing.T, rng *rand.Rand) {
	for i := 0; i < 500; i++ {
		words := bitref.Random[W](rng, rng.Intn(6))
		from, to := randomRange(rng, words)
		first, last := At(words, from), At(words, to)

		set, unset := Count(first, last, Bit1), Count(first, last, Bit0)
		require.Equalf(t, bitref.Count(words, from, to, true), set, "[%d, %d) of %s", from, to, bitref.Format(words))
		require.Equalf(t, bitref.Count(words, from, to, false), unset, "[%d, %d) of %s", from, to, bitref.Format(words))
		require.Equal(t, to-from, set+unset)
	}
}

// TestCountSingleWordEquivalence checks that counting a range confined to one
// word gives the same result as counting the same bits after splitting them
// across two words, which forces the multi-word decomposition.
func TestCountSingleWordEquivalence(t *testing.T) {
	for a := 0; a < 256; a++ {
		w := uint8(a)
		for from := 0; from <= 8; from++ {
			for to := from; to <= 8; to++ {
				single := []uint8{w}
				want := Count(At(single, from), At(single, to), Bit1)

				// Place the word's bits so that they straddle two words.
				split := make([]uint8, 2)
				for i := from; i < to; i++ {
					bitref.Set(split, i+4, bitref.Get(single, i))
				}
				got := Count(At(split, from+4), At(split, to+4), Bit1)
				require.Equalf(t, want, got, "%08b [%d, %d)", w, from, to)
			}
		}
	}
}

func TestCountDoesNotReadPastLast(t *testing.T) {
	// A range ending at End(words) must not touch words[len(words)]. Slicing
	// the backing array shorter than its capacity leaves a poisoned word just
	// past the end that would be counted if read.
	backing := []uint32{0xffffffff, 0x0000ffff, 0xffffffff}
	words := backing[:2]
	require.Equal(t, 48, Count(At(words, 0), End(words), Bit1))
	require.Equal(t, 16, Count(At(words, 0), End(words), Bit0))
	require.Equal(t, 16, Count(At(words, 32), End(words), Bit1))
	require.Equal(t, 0, Count(End(words), End(words), Bit1))
}

func TestCountMalformedRange(t *testing.T) {
	words := make([]uint64, 2)
	other := make([]uint64, 2)
	for _, tc := range []struct {
		first, last Iterator[uint64]
		want        string
	}{
		{At(words, 10), At(words, 9), "bit range [0:10, 0:9) is inverted"},
		{At(words, 0), At(other, 9), "bit range [0:0, 0:9) spans different word sequences"},
		{Begin(words), Iterator[uint64]{words: words, base: 2, pos: 1}, "range end: iterator 2:1 past the end of 2 words"},
		{Iterator[uint64]{words: words, base: 3}, End(words), "range start: iterator 3:0 out of bounds of 2 words"},
		{Iterator[uint64]{words: words, pos: 64}, End(words), "range start: bit offset 64 out of range for 64-bit words"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			err := catchPanic(func() { Count(tc.first, tc.last, Bit1) })
			require.Error(t, err)
			require.Equal(t, tc.want, err.Error())
			verr := ValidateRange(tc.first, tc.last)
			require.Equal(t, tc.want, verr.Error())
			require.True(t, errors.IsAssertionFailure(verr))
		})
	}
	require.NoError(t, ValidateRange(Begin(words), End(words)))
}

// randomRange returns a random well-formed range of bit indexes within words.
// Half of the time the ends are snapped to word boundaries so that aligned
// ranges are exercised as often as unaligned ones.
func randomRange[W Word](rng *rand.Rand, words []W) (from, to int) {
	digits := int(wordops.Digits[W]())
	n := len(words) * digits
	from, to = rng.Intn(n+1), rng.Intn(n+1)
	if from > to {
		from, to = to, from
	}
	if rng.Intn(4) == 0 {
		from -= from % digits
	}
	if rng.Intn(4) == 0 {
		to -= to % digits
		if to < from {
			to = from
		}
	}
	return from, to
}

func BenchmarkCount(b *testing.B) {
	b.Run("uint8", func(b *testing.B) { benchmarkCount[uint8](b) })
	b.Run("uint32", func(b *testing.B) { benchmarkCount[uint32](b) })
	b.Run("uint64", func(b *testing.B) { benchmarkCount[uint64](b) })
}

func benchmarkCount[W Word](b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	words := bitref.Random[W](rng, 1024)
	digits := int(wordops.Digits[W]())
	for _, span := range []int{7, digits * 4, digits*1000 + 3} {
		b.Run(fmt.Sprintf("span=%d", span), func(b *testing.B) {
			first := At(words, 3)
			last := first.Add(span)
			b.ResetTimer()
			var n int
			for i := 0; i < b.N; i++ {
				n += Count(first, last, Bit1)
			}
			_ = n
		})
	}
}
