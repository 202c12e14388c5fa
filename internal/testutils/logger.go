// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// Logger is a logger that writes to a testing.TB.
type Logger struct {
	T testing.TB
}

func (l Logger) Infof(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}

// CaptureLogger records every message so tests can assert on what was
// logged. Fatalf messages are recorded and then fail the test.
type CaptureLogger struct {
	T  testing.TB
	mu sync.Mutex
	sb strings.Builder
}

func (l *CaptureLogger) Infof(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *CaptureLogger) Fatalf(format string, args ...interface{}) {
	l.record(format, args...)
	l.T.Helper()
	l.T.Fatalf(format, args...)
}

// String returns everything logged so far, one message per line.
func (l *CaptureLogger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sb.String()
}

func (l *CaptureLogger) record(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(&l.sb, format, args...)
	if !strings.HasSuffix(format, "\n") {
		l.sb.WriteByte('\n')
	}
}
