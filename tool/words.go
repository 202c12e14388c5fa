// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/bitalgo"
	"github.com/cockroachdb/bitalgo/internal/wordops"
	"github.com/cockroachdb/errors"
)

// parseWords parses each argument as a word of type W. Arguments may use any
// prefix accepted by strconv.ParseUint with base 0 (0x, 0b, 0o).
func parseWords[W bitalgo.Word](args []string) ([]W, error) {
	digits := int(wordops.Digits[W]())
	words := make([]W, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, digits)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %d-bit word %q", digits, arg)
		}
		words = append(words, W(v))
	}
	return words, nil
}

// formatWord renders w as a zero-padded hex or binary literal.
func formatWord[W bitalgo.Word](w W, binary bool) string {
	digits := int(wordops.Digits[W]())
	if binary {
		return fmt.Sprintf("0b%0*b", digits, uint64(w))
	}
	return fmt.Sprintf("0x%0*x", digits/4, uint64(w))
}

// bitRange resolves the bit indexes [from, to) to iterators over words. A
// negative to denotes the end of the sequence. Out of bounds and inverted
// ranges are returned as errors.
func bitRange[W bitalgo.Word](
	words []W, from, to int,
) (first, last bitalgo.Iterator[W], _ error) {
	n := len(words) * int(wordops.Digits[W]())
	if to < 0 {
		to = n
	}
	if from < 0 || from > n || to > n {
		return first, last, errors.Newf("range [%d, %d) out of bounds of %d bits", from, to, n)
	}
	first, last = bitalgo.At(words, from), bitalgo.At(words, to)
	if err := bitalgo.ValidateRange(first, last); err != nil {
		return first, last, errors.Wrap(err, "invalid range")
	}
	return first, last, nil
}
