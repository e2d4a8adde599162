// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import "io"

// GzipDecodeWriter is a push-decompress adapter: bytes written to it are
// treated as a GZIP stream, and the decompressed payload is forwarded to
// the wrapped io.Writer sink.
type GzipDecodeWriter struct {
	bridge *pipeDecodeWriter
	r      *GzipReader
}

// NewGzipDecodeWriter returns a GzipDecodeWriter decompressing into sink.
func NewGzipDecodeWriter(sink io.Writer) *GzipDecodeWriter {
	var inner *GzipReader
	bridge := newPipeDecodeWriter(sink, func(src io.Reader) pullSide {
		inner = newGzipReader(src)
		return inner
	})
	return &GzipDecodeWriter{bridge: bridge, r: inner}
}

func (d *GzipDecodeWriter) Write(p []byte) (int, error) {
	return d.bridge.Write(p)
}

// Finish signals end-of-stream and waits until every decompressed byte
// has reached the sink, surfacing any header, trailer, or sink error.
func (d *GzipDecodeWriter) Finish() error {
	return d.bridge.Finish()
}

// Close aborts the stream without a clean finish; prefer Finish when the
// caller wants to observe decode errors.
func (d *GzipDecodeWriter) Close() error {
	return d.bridge.Close()
}

// TotalIn returns the number of compressed bytes written so far.
func (d *GzipDecodeWriter) TotalIn() uint64 { return d.r.TotalIn() }

// TotalOut returns the number of uncompressed bytes forwarded to the sink so far.
func (d *GzipDecodeWriter) TotalOut() uint64 { return d.r.TotalOut() }
