// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"errors"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for the taxonomy in the design: a GZIP/ZLIB adapter
// never retries on its own, so every one of these surfaces straight to
// the caller. Wrap with github.com/pkg/errors at the point of detection
// so errors.Is still sees the sentinel while deep pipelines keep a
// useful stack trace.
var (
	// ErrBadHeader means the magic bytes, compression method, or flag
	// bits did not parse as a valid header.
	ErrBadHeader = errors.New("deflatestream: invalid gzip header")

	// ErrCorruptStream means a trailer's CRC-32 or length field did not
	// match the decoded payload, or the trailer was truncated.
	ErrCorruptStream = errors.New("deflatestream: corrupt stream")

	// ErrUnexpectedEOF means the source was exhausted while the codec
	// still expected more input.
	ErrUnexpectedEOF = errors.New("deflatestream: unexpected EOF")

	// ErrWriteZero means a sink accepted zero bytes without reporting
	// an error.
	ErrWriteZero = errors.New("deflatestream: sink accepted zero bytes")

	// ErrWouldBlock is returned unchanged from a non-blocking endpoint;
	// adapters preserve enough state that the same call can be retried.
	ErrWouldBlock = errors.New("deflatestream: would block")

	// ErrInvalidArgument means a GZIP header field was rejected: the
	// filename or comment contained a NUL byte, or the extra field was
	// longer than 65535 bytes.
	ErrInvalidArgument = errors.New("deflatestream: invalid gzip header field")

	// ErrClosed is the error the pipe-backed adapters (EncodeReader and
	// DecodeWriter shapes) close their internal pipe with on Close. The
	// background goroutine sees it, so Close may return it when the
	// stream was abandoned mid-copy; the caller's own Read/Write calls
	// after Close get io.ErrClosedPipe.
	ErrClosed = errors.New("deflatestream: use of closed adapter")
)

func badHeader() error {
	return pkgerrors.WithStack(ErrBadHeader)
}

func corrupt() error {
	return pkgerrors.WithStack(ErrCorruptStream)
}

func unexpectedEOF() error {
	return pkgerrors.WithStack(ErrUnexpectedEOF)
}

// wrapShortRead turns an io.EOF/io.ErrUnexpectedEOF surfaced while reading
// a fixed-size trailer into ErrCorruptStream, per the design's decision to
// treat partial trailer reads as corruption rather than as EOF.
func wrapShortRead(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return corrupt()
	}
	return pkgerrors.WithStack(err)
}
