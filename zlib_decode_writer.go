// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"io"

	"github.com/streamkit-go/deflatestream/internal/codec"
)

// lazyZlibReader defers constructing the underlying codec.Decompressor
// (which eagerly parses the 2-byte ZLIB header) until the first Read,
// since GzipDecodeWriter-style push-decompress bridging has no bytes
// available in the pipe at construction time.
type lazyZlibReader struct {
	src io.Reader
	d   *codec.Decompressor
	err error
}

func (l *lazyZlibReader) Read(p []byte) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if l.d == nil {
		d, err := codec.NewZlibDecompressor(l.src)
		if err != nil {
			l.err = err
			return 0, err
		}
		l.d = d
	}
	return l.d.Read(p)
}

func (l *lazyZlibReader) Close() error {
	if l.d == nil {
		return nil
	}
	return l.d.Close()
}

func (l *lazyZlibReader) totalIn() uint64 {
	if l.d == nil {
		return 0
	}
	return l.d.TotalIn()
}

func (l *lazyZlibReader) totalOut() uint64 {
	if l.d == nil {
		return 0
	}
	return l.d.TotalOut()
}

// ZlibDecodeWriter is a push-decompress adapter: bytes written to it are
// treated as a ZLIB stream, and the decompressed payload is forwarded to
// the wrapped io.Writer sink.
type ZlibDecodeWriter struct {
	bridge *pipeDecodeWriter
	r      *lazyZlibReader
}

// NewZlibDecodeWriter returns a ZlibDecodeWriter decompressing into sink.
func NewZlibDecodeWriter(sink io.Writer) *ZlibDecodeWriter {
	var inner *lazyZlibReader
	bridge := newPipeDecodeWriter(sink, func(src io.Reader) pullSide {
		inner = &lazyZlibReader{src: src}
		return inner
	})
	return &ZlibDecodeWriter{bridge: bridge, r: inner}
}

func (d *ZlibDecodeWriter) Write(p []byte) (int, error) {
	return d.bridge.Write(p)
}

// Finish signals end-of-stream and waits until every decompressed byte
// has reached the sink, surfacing any header, trailer, or sink error.
func (d *ZlibDecodeWriter) Finish() error {
	return d.bridge.Finish()
}

// Close aborts the stream without a clean finish; prefer Finish when the
// caller wants to observe decode errors.
func (d *ZlibDecodeWriter) Close() error {
	return d.bridge.Close()
}

// TotalIn returns the number of compressed bytes written so far.
func (d *ZlibDecodeWriter) TotalIn() uint64 { return d.r.totalIn() }

// TotalOut returns the number of uncompressed bytes forwarded to the sink so far.
func (d *ZlibDecodeWriter) TotalOut() uint64 { return d.r.totalOut() }
