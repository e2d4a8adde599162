// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import "io"

// GzipEncodeReader is a pull-compress adapter: reading from it pulls
// plaintext from the wrapped io.Reader and returns a GZIP stream.
type GzipEncodeReader struct {
	bridge *pipeEncodeReader
	w      *GzipWriter
}

// NewGzipEncodeReader returns a GzipEncodeReader using DefaultCompression.
func NewGzipEncodeReader(src io.Reader) *GzipEncodeReader {
	er, _ := NewGzipEncodeReaderLevel(src, DefaultCompression)
	return er
}

// NewGzipEncodeReaderLevel returns a GzipEncodeReader compressing at the
// given level.
func NewGzipEncodeReaderLevel(src io.Reader, level Level) (*GzipEncodeReader, error) {
	if _, err := NewGzipWriterLevel(io.Discard, level); err != nil {
		return nil, err
	}
	var inner *GzipWriter
	bridge := newPipeEncodeReader(src, func(sink io.Writer) pushSide {
		inner, _ = NewGzipWriterLevel(sink, level)
		return inner
	})
	return &GzipEncodeReader{bridge: bridge, w: inner}, nil
}

// Header exposes the GzipWriter header fields for customization (Name,
// Comment, Extra, ModTime) before the first Read drains the pipe.
func (e *GzipEncodeReader) Header() *GzipHeader { return &e.w.GzipHeader }

func (e *GzipEncodeReader) Read(p []byte) (int, error) {
	return e.bridge.Read(p)
}

// Close releases the background goroutine bridging the two directions.
func (e *GzipEncodeReader) Close() error {
	return e.bridge.Close()
}

// TotalIn returns the number of uncompressed bytes pulled from the source so far.
func (e *GzipEncodeReader) TotalIn() uint64 { return e.w.TotalIn() }

// TotalOut returns the number of compressed DEFLATE bytes produced so far;
// GZIP header and trailer bytes are not counted.
func (e *GzipEncodeReader) TotalOut() uint64 { return e.w.TotalOut() }
