// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import "io"

// ZlibEncodeReader is a pull-compress adapter for ZLIB: reading from it
// pulls plaintext from the wrapped io.Reader and returns a ZLIB stream.
type ZlibEncodeReader struct {
	bridge *pipeEncodeReader
	w      *ZlibWriter
}

// NewZlibEncodeReader returns a ZlibEncodeReader using DefaultCompression.
func NewZlibEncodeReader(src io.Reader) *ZlibEncodeReader {
	er, _ := NewZlibEncodeReaderLevel(src, DefaultCompression)
	return er
}

// NewZlibEncodeReaderLevel returns a ZlibEncodeReader compressing at the
// given level.
func NewZlibEncodeReaderLevel(src io.Reader, level Level) (*ZlibEncodeReader, error) {
	if _, err := NewZlibWriterLevel(io.Discard, level); err != nil {
		return nil, err
	}
	var inner *ZlibWriter
	bridge := newPipeEncodeReader(src, func(sink io.Writer) pushSide {
		inner, _ = NewZlibWriterLevel(sink, level)
		return inner
	})
	return &ZlibEncodeReader{bridge: bridge, w: inner}, nil
}

func (e *ZlibEncodeReader) Read(p []byte) (int, error) {
	return e.bridge.Read(p)
}

// Close releases the background goroutine bridging the two directions.
func (e *ZlibEncodeReader) Close() error {
	return e.bridge.Close()
}

// TotalIn returns the number of uncompressed bytes pulled from the source so far.
func (e *ZlibEncodeReader) TotalIn() uint64 { return e.w.TotalIn() }

// TotalOut returns the number of compressed bytes returned to the caller so far.
func (e *ZlibEncodeReader) TotalOut() uint64 { return e.w.TotalOut() }
