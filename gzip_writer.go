// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"encoding/binary"
	"io"

	"github.com/streamkit-go/deflatestream/internal/codec"
	"github.com/streamkit-go/deflatestream/internal/xcrc"
)

// CompressedBlobWriter is implemented by adapters that can splice an
// already-compressed GZIP blob directly into their output stream.
type CompressedBlobWriter interface {
	WriteCompressed(p []byte) (n int, err error)
}

// GzipWriter is a push-compress adapter producing a GZIP stream. Header
// fields (GzipHeader) may be set any time before the first Write, Flush,
// or Close call, which writes the header lazily.
type GzipWriter struct {
	GzipHeader
	w           io.Writer
	level       Level
	compressor  *codec.Compressor
	digest      *xcrc.Digest
	wroteHeader bool
	finished    bool
	active      bool
	err         error
}

// NewGzipWriter returns a GzipWriter using DefaultCompression.
func NewGzipWriter(w io.Writer) *GzipWriter {
	z, _ := NewGzipWriterLevel(w, DefaultCompression)
	return z
}

// NewGzipWriterLevel returns a GzipWriter compressing at the given level.
func NewGzipWriterLevel(w io.Writer, level Level) (*GzipWriter, error) {
	return &GzipWriter{
		GzipHeader: newGzipHeader(),
		w:          w,
		level:      level,
		digest:     xcrc.New(),
	}, nil
}

func (z *GzipWriter) writeHeader() error {
	z.wroteHeader = true
	if err := writeGzipHeader(z.w, z.GzipHeader, z.level); err != nil {
		z.err = err
		return err
	}
	if z.compressor == nil {
		c, err := codec.NewCompressor(z.w, z.level.flateLevel())
		if err != nil {
			z.err = err
			return err
		}
		z.compressor = c
	}
	return nil
}

// Write CRC-updates p and compresses it into the stream, writing the
// header first if this is the first call.
func (z *GzipWriter) Write(p []byte) (int, error) {
	if z.finished {
		panic("deflatestream: Write called on a finished GzipWriter")
	}
	if z.err != nil {
		return 0, z.err
	}
	if !z.wroteHeader {
		if err := z.writeHeader(); err != nil {
			return 0, err
		}
	}
	z.digest.Update(p)
	z.active = true
	n, err := z.compressor.Write(p)
	z.err = err
	return n, err
}

// WriteCompressed splices the payload of an already-compressed GZIP blob
// directly into the output stream, combining its trailer checksum into
// the running digest instead of decompressing and recompressing it. The
// blob must carry its own valid header and trailer.
func (z *GzipWriter) WriteCompressed(p []byte) (int, error) {
	if z.finished {
		panic("deflatestream: WriteCompressed called on a finished GzipWriter")
	}
	if z.err != nil {
		return 0, z.err
	}
	if !z.wroteHeader {
		if err := z.writeHeader(); err != nil {
			return 0, err
		}
	}
	if z.active {
		if err := z.compressor.Flush(); err != nil {
			z.err = err
			return 0, err
		}
		z.active = false
	}
	if len(p) < 18 {
		return 0, badHeader()
	}
	trailerChecksum := binary.LittleEndian.Uint32(p[len(p)-8 : len(p)-4])
	trailerLength := binary.LittleEndian.Uint32(p[len(p)-4:])
	content, ok := getDeflateSlice(p)
	if !ok {
		return 0, badHeader()
	}
	z.digest.Combine(trailerChecksum, int(trailerLength))
	n, err := z.w.Write(content)
	z.err = err
	return n, err
}

// Flush emits a sync-flush point, writing the header first if needed.
func (z *GzipWriter) Flush() error {
	if z.finished {
		panic("deflatestream: Flush called on a finished GzipWriter")
	}
	if z.err != nil {
		return z.err
	}
	if !z.wroteHeader {
		if _, err := z.Write(nil); err != nil {
			return err
		}
	}
	z.err = z.compressor.Flush()
	z.active = false
	return z.err
}

// Close finishes the stream, writing the 8-byte trailer. Idempotent.
func (z *GzipWriter) Close() error {
	if z.finished {
		return nil
	}
	if z.err != nil {
		return z.err
	}
	if !z.wroteHeader {
		if _, err := z.Write(nil); err != nil {
			return err
		}
	}
	z.finished = true
	if err := z.compressor.Close(); err != nil {
		z.err = err
		return err
	}
	var trailer [8]byte
	binary.LittleEndian.PutUint32(trailer[:4], z.digest.Sum())
	binary.LittleEndian.PutUint32(trailer[4:8], z.digest.Amount())
	_, err := z.w.Write(trailer[:])
	z.err = err
	return err
}

// Reset discards the GzipWriter's state (including header fields) and
// rebinds it to w, preserving the configured compression level.
func (z *GzipWriter) Reset(w io.Writer) {
	z.GzipHeader = newGzipHeader()
	z.w = w
	z.wroteHeader = false
	z.finished = false
	z.active = false
	z.err = nil
	z.digest.Reset()
	if z.compressor != nil {
		z.compressor.Reset(w)
	}
}

// TotalIn returns the number of uncompressed bytes written so far.
func (z *GzipWriter) TotalIn() uint64 {
	if z.compressor == nil {
		return 0
	}
	return z.compressor.TotalIn()
}

// TotalOut returns the number of compressed DEFLATE bytes the compressor
// has emitted to the sink so far. Header and trailer bytes, and payload
// spliced in by WriteCompressed, are not counted.
func (z *GzipWriter) TotalOut() uint64 {
	if z.compressor == nil {
		return 0
	}
	return z.compressor.TotalOut()
}

var (
	_ io.WriteCloser       = (*GzipWriter)(nil)
	_ CompressedBlobWriter = (*GzipWriter)(nil)
)
