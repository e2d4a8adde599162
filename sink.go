// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"errors"
	"net"
)

// ByteSink is any io.Writer. It is named here only to match the data
// model's vocabulary; no wrapper type exists because Go's io.Writer
// already carries the "accept a slice, report how much was taken"
// contract the design needs.

// isWouldBlock reports whether err represents a transient non-blocking
// I/O condition that should be surfaced to the caller unchanged rather
// than treated as a terminal failure. Blocking callers never see this;
// it only matters for endpoints built on top of a net.Conn-style
// deadline or a custom non-blocking implementation that returns
// ErrWouldBlock directly.
func isWouldBlock(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrWouldBlock) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}
