// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitalgo

import "github.com/cockroachdb/redact"

// Bit is the value of a single bit. Any nonzero Bit is treated as set.
type Bit uint8

// The canonical bit values.
const (
	Bit0 Bit = 0
	Bit1 Bit = 1
)

// IsSet returns true if b denotes a set bit.
func (b Bit) IsSet() bool { return b != 0 }

// String implements fmt.Stringer.
func (b Bit) String() string {
	if b.IsSet() {
		return "1"
	}
	return "0"
}

// SafeFormat implements redact.SafeFormatter.
func (b Bit) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(b.String()))
}

func bitOf(set bool) Bit {
	if set {
		return Bit1
	}
	return Bit0
}
