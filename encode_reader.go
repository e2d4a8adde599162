// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import "io"

// EncodeReader is a pull-compress adapter for raw DEFLATE: reading from it
// pulls plaintext from the wrapped io.Reader and returns compressed bytes.
type EncodeReader struct {
	bridge *pipeEncodeReader
	w      *Writer
}

// NewEncodeReader returns an EncodeReader using DefaultCompression.
func NewEncodeReader(src io.Reader) *EncodeReader {
	er, _ := NewEncodeReaderLevel(src, DefaultCompression)
	return er
}

// NewEncodeReaderLevel returns an EncodeReader compressing at the given level.
func NewEncodeReaderLevel(src io.Reader, level Level) (*EncodeReader, error) {
	// Validate the level up front so the background goroutine never has
	// to hand an error back across the pipe.
	if _, err := NewWriterLevel(io.Discard, level); err != nil {
		return nil, err
	}
	var inner *Writer
	bridge := newPipeEncodeReader(src, func(sink io.Writer) pushSide {
		inner, _ = NewWriterLevel(sink, level)
		return inner
	})
	return &EncodeReader{bridge: bridge, w: inner}, nil
}

func (e *EncodeReader) Read(p []byte) (int, error) {
	return e.bridge.Read(p)
}

// Close releases the background goroutine bridging the two directions.
func (e *EncodeReader) Close() error {
	return e.bridge.Close()
}

// TotalIn returns the number of uncompressed bytes pulled from the source so far.
func (e *EncodeReader) TotalIn() uint64 { return e.w.TotalIn() }

// TotalOut returns the number of compressed bytes returned to the caller so far.
func (e *EncodeReader) TotalOut() uint64 { return e.w.TotalOut() }
