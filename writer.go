// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"io"

	"github.com/streamkit-go/deflatestream/internal/codec"
)

// Writer is a push-compress adapter for raw DEFLATE: bytes written to it
// are compressed and forwarded to the wrapped io.Writer.
type Writer struct {
	c        *codec.Compressor
	finished bool
}

// NewWriter returns a Writer using DefaultCompression.
func NewWriter(w io.Writer) *Writer {
	z, _ := NewWriterLevel(w, DefaultCompression)
	return z
}

// NewWriterLevel returns a Writer compressing at the given level.
func NewWriterLevel(w io.Writer, level Level) (*Writer, error) {
	c, err := codec.NewCompressor(w, level.flateLevel())
	if err != nil {
		return nil, err
	}
	return &Writer{c: c}, nil
}

// Write compresses p and forwards it to the wrapped writer. Calling Write
// after Close is a programming error and panics, per the adapter's
// documented lifecycle.
func (z *Writer) Write(p []byte) (int, error) {
	if z.finished {
		panic("deflatestream: Write called on a finished Writer")
	}
	return z.c.Write(p)
}

// Flush emits a sync-flush point without ending the stream.
func (z *Writer) Flush() error {
	if z.finished {
		panic("deflatestream: Flush called on a finished Writer")
	}
	return z.c.Flush()
}

// Close finishes the stream. It is idempotent: calling it again after a
// successful finish is a no-op.
func (z *Writer) Close() error {
	if z.finished {
		return nil
	}
	z.finished = true
	return z.c.Close()
}

// Reset discards the Writer's state and rebinds it to w, preserving the
// configured compression level.
func (z *Writer) Reset(w io.Writer) {
	z.c.Reset(w)
	z.finished = false
}

// TotalIn returns the number of uncompressed bytes written so far.
func (z *Writer) TotalIn() uint64 { return z.c.TotalIn() }

// TotalOut returns the number of compressed bytes emitted so far.
func (z *Writer) TotalOut() uint64 { return z.c.TotalOut() }
