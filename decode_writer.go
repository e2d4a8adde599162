// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import "io"

// DecodeWriter is a push-decompress adapter for raw DEFLATE: bytes written
// to it are treated as compressed input, and the decompressed bytes are
// forwarded to the wrapped io.Writer sink.
type DecodeWriter struct {
	bridge *pipeDecodeWriter
	r      *Reader
}

// NewDecodeWriter returns a DecodeWriter decompressing into sink.
func NewDecodeWriter(sink io.Writer) *DecodeWriter {
	var inner *Reader
	bridge := newPipeDecodeWriter(sink, func(src io.Reader) pullSide {
		inner = NewReader(src)
		return inner
	})
	return &DecodeWriter{bridge: bridge, r: inner}
}

func (d *DecodeWriter) Write(p []byte) (int, error) {
	return d.bridge.Write(p)
}

// Finish signals end-of-stream and waits until every decompressed byte has
// reached the sink, surfacing any codec or sink error.
func (d *DecodeWriter) Finish() error {
	return d.bridge.Finish()
}

// Close aborts the stream without a clean finish; prefer Finish when the
// caller wants to observe decode errors.
func (d *DecodeWriter) Close() error {
	return d.bridge.Close()
}

// TotalIn returns the number of compressed bytes written so far.
func (d *DecodeWriter) TotalIn() uint64 { return d.r.TotalIn() }

// TotalOut returns the number of uncompressed bytes forwarded to the sink so far.
func (d *DecodeWriter) TotalOut() uint64 { return d.r.TotalOut() }
