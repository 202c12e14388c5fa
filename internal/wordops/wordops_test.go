// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package wordops

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDigits(t *testing.T) {
	require.Equal(t, uint(8), Digits[uint8]())
	require.Equal(t, uint(16), Digits[uint16]())
	require.Equal(t, uint(32), Digits[uint32]())
	require.Equal(t, uint(64), Digits[uint64]())

	type named uint16
	require.Equal(t, uint(16), Digits[named]())
}

// TestWordOps runs the primitives over 8-bit words written MSB-first, so that
// the testdata reads like the diagrams in the doc comments.
func TestWordOps(t *testing.T) {
	parse := func(t *testing.T, td *datadriven.TestData, key string) uint8 {
		var s string
		td.ScanArgs(t, key, &s)
		v, err := parseBinary8(s)
		require.NoError(t, err)
		return v
	}
	datadriven.RunTest(t, "testdata/wordops", func(t *testing.T, td *datadriven.TestData) string {
		var start, length, cnt int
		switch td.Cmd {
		case "popcnt":
			return fmt.Sprint(Popcnt(parse(t, td, "w")))
		case "bitswap":
			return fmt.Sprintf("%08b", Bitswap(parse(t, td, "w")))
		case "mask":
			td.ScanArgs(t, "start", &start)
			td.ScanArgs(t, "length", &length)
			return fmt.Sprintf("%08b", Mask[uint8](uint(start), uint(length)))
		case "bextr":
			td.ScanArgs(t, "start", &start)
			td.ScanArgs(t, "length", &length)
			return fmt.Sprintf("%08b", Bextr(parse(t, td, "w"), uint(start), uint(length)))
		case "shld":
			td.ScanArgs(t, "cnt", &cnt)
			return fmt.Sprintf("%08b", Shld(parse(t, td, "dst"), parse(t, td, "src"), uint(cnt)))
		case "shrd":
			td.ScanArgs(t, "cnt", &cnt)
			return fmt.Sprintf("%08b", Shrd(parse(t, td, "dst"), parse(t, td, "src"), uint(cnt)))
		case "bitblend":
			td.ScanArgs(t, "start", &start)
			td.ScanArgs(t, "length", &length)
			return fmt.Sprintf("%08b", Bitblend(parse(t, td, "src0"), parse(t, td, "src1"), uint(start), uint(length)))
		default:
			td.Fatalf(t, "unknown command: %s", td.Cmd)
			return ""
		}
	})
}

func parseBinary8(s string) (uint8, error) {
	s = strings.ReplaceAll(s, "_", "")
	if len(s) != 8 {
		return 0, fmt.Errorf("expected 8 binary digits, got %q", s)
	}
	var v uint8
	for _, r := range s {
		switch r {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("invalid binary digit %q in %q", r, s)
		}
	}
	return v, nil
}

// The naive* helpers compute each primitive one bit at a time.

func naiveBit(w uint64, i uint) uint64 { return (w >> i) & 1 }

func naivePopcnt(w uint64, digits uint) int {
	n := 0
	for i := uint(0); i < digits; i++ {
		n += int(naiveBit(w, i))
	}
	return n
}

func naiveBitswap(w uint64, digits uint) uint64 {
	var r uint64
	for i := uint(0); i < digits; i++ {
		r |= naiveBit(w, i) << (digits - 1 - i)
	}
	return r
}

func naiveBlend(src0, src1 uint64, start, length, digits uint) uint64 {
	r := src0
	for i := start; i < start+length && i < digits; i++ {
		r &^= 1 << i
		r |= naiveBit(src1, i) << i
	}
	return r
}

// TestExhaustive8 checks every primitive against the naive bit-at-a-time
// rendition for every 8-bit operand.
func TestExhaustive8(t *testing.T) {
	for a := 0; a <= math.MaxUint8; a++ {
		w := uint8(a)
		require.Equal(t, naivePopcnt(uint64(w), 8), Popcnt(w))
		require.Equal(t, uint8(naiveBitswap(uint64(w), 8)), Bitswap(w))
		for start := uint(0); start <= 8; start++ {
			for length := uint(0); start+length <= 8; length++ {
				var want uint8
				for i := uint(0); i < length; i++ {
					want |= uint8(naiveBit(uint64(w), start+i)) << i
				}
				require.Equalf(t, want, Bextr(w, start, length), "Bextr(%08b, %d, %d)", w, start, length)
			}
		}
	}
}

func TestFunnelShifts(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < 1000; i++ {
		hi, lo := rng.Uint64(), rng.Uint64()
		for cnt := uint(0); cnt <= 64; cnt++ {
			// Treat (hi:lo) as a 128-bit value and shift one bit at a time.
			h, l := hi, lo
			for j := uint(0); j < cnt; j++ {
				h = h<<1 | l>>63
				l <<= 1
			}
			require.Equalf(t, h, Shld(hi, lo, cnt), "Shld(%x, %x, %d)", hi, lo, cnt)

			h, l = hi, lo
			for j := uint(0); j < cnt; j++ {
				l = l>>1 | h<<63
				h >>= 1
			}
			require.Equalf(t, l, Shrd(lo, hi, cnt), "Shrd(%x, %x, %d)", lo, hi, cnt)
		}
	}
}

func TestBlendAndSwapWidths(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	t.Run("uint16", func(t *testing.T) { checkWidth[uint16](t, rng) })
	t.Run("uint32", func(t *testing.T) { checkWidth[uint32](t, rng) })
	t.Run("uint64", func(t *testing.T) { checkWidth[uint64](t, rng) })
}

func checkWidth[W Word](t *testing.T, rng *rand.Rand) {
	digits := Digits[W]()
	for i := 0; i < 200; i++ {
		a, b := W(rng.Uint64()), W(rng.Uint64())
		require.Equal(t, naivePopcnt(uint64(a), digits), Popcnt(a))
		require.Equal(t, W(naiveBitswap(uint64(a), digits)), Bitswap(a))
		require.Equal(t, a, Bitswap(Bitswap(a)))
		start := uint(rng.Intn(int(digits)))
		length := uint(rng.Intn(int(digits-start) + 1))
		require.Equal(t, W(naiveBlend(uint64(a), uint64(b), start, length, digits)),
			Bitblend(a, b, start, length))
	}
	require.Equal(t, ^W(0), Mask[W](0, digits))
	require.Equal(t, W(0), Mask[W](digits, 1))
}
