// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"io"

	"github.com/streamkit-go/deflatestream/internal/codec"
)

// ZlibWriter is a push-compress adapter producing a ZLIB stream (2-byte
// header, DEFLATE payload, 4-byte Adler-32 trailer), all handled by the
// wrapped codec.
type ZlibWriter struct {
	c        *codec.Compressor
	finished bool
}

// NewZlibWriter returns a ZlibWriter using DefaultCompression.
func NewZlibWriter(w io.Writer) *ZlibWriter {
	z, _ := NewZlibWriterLevel(w, DefaultCompression)
	return z
}

// NewZlibWriterLevel returns a ZlibWriter compressing at the given level.
func NewZlibWriterLevel(w io.Writer, level Level) (*ZlibWriter, error) {
	c, err := codec.NewZlibCompressor(w, level.flateLevel())
	if err != nil {
		return nil, err
	}
	return &ZlibWriter{c: c}, nil
}

// Write compresses p and forwards it to the wrapped writer.
func (z *ZlibWriter) Write(p []byte) (int, error) {
	if z.finished {
		panic("deflatestream: Write called on a finished ZlibWriter")
	}
	return z.c.Write(p)
}

// Flush emits a sync-flush point without ending the stream.
func (z *ZlibWriter) Flush() error {
	if z.finished {
		panic("deflatestream: Flush called on a finished ZlibWriter")
	}
	return z.c.Flush()
}

// Close finishes the stream, writing the Adler-32 trailer. Idempotent.
func (z *ZlibWriter) Close() error {
	if z.finished {
		return nil
	}
	z.finished = true
	return z.c.Close()
}

// Reset discards the ZlibWriter's state and rebinds it to w, preserving
// the configured compression level.
func (z *ZlibWriter) Reset(w io.Writer) {
	z.c.Reset(w)
	z.finished = false
}

// TotalIn returns the number of uncompressed bytes written so far.
func (z *ZlibWriter) TotalIn() uint64 { return z.c.TotalIn() }

// TotalOut returns the number of compressed bytes emitted so far.
func (z *ZlibWriter) TotalOut() uint64 { return z.c.TotalOut() }
