// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitalgo

import (
	"github.com/cockroachdb/bitalgo/internal/wordops"
	"github.com/cockroachdb/errors"
)

// ValidateRange returns an error if [first, last) is not a well-formed range:
// both iterators must address the same sequence, each must lie within the
// sequence (the end iterator included), and first must not follow last.
//
// Count and Reverse panic with the returned error, which satisfies
// errors.IsAssertionFailure. Callers constructing ranges from untrusted input
// can call ValidateRange first to obtain an error instead.
func ValidateRange[W Word](first, last Iterator[W]) error {
	if !first.SameSequence(last) {
		return errors.AssertionFailedf("bit range [%s, %s) spans different word sequences", first, last)
	}
	if err := validateIterator(first); err != nil {
		return errors.NewAssertionErrorWithWrappedErrf(err, "range start")
	}
	if err := validateIterator(last); err != nil {
		return errors.NewAssertionErrorWithWrappedErrf(err, "range end")
	}
	if last.Less(first) {
		return errors.AssertionFailedf("bit range [%s, %s) is inverted", first, last)
	}
	return nil
}

func validateIterator[W Word](it Iterator[W]) error {
	digits := wordops.Digits[W]()
	switch {
	case it.pos >= digits:
		return errors.AssertionFailedf("bit offset %d out of range for %d-bit words", it.pos, digits)
	case it.base < 0 || it.base > len(it.words):
		return errors.AssertionFailedf("iterator %s out of bounds of %d words", it, len(it.words))
	case it.base == len(it.words) && it.pos != 0:
		return errors.AssertionFailedf("iterator %s past the end of %d words", it, len(it.words))
	}
	return nil
}

func assertRangeViability[W Word](first, last Iterator[W]) {
	if err := ValidateRange(first, last); err != nil {
		panic(err)
	}
}
