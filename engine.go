// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import "io"

// pushSide is the subset of a push-compress adapter (Writer, ZlibWriter,
// GzipWriter, ...) the pipe bridge below needs to drive it.
type pushSide interface {
	io.Writer
	Close() error
}

// pullSide is the subset of a pull-decompress adapter (Reader, ZlibReader,
// GzipReader, ...) the pipe bridge needs to drive it.
type pullSide interface {
	io.Reader
	Close() error
}

// pipeEncodeReader turns a push-compress adapter into a pull-compress
// Reader: a dedicated goroutine copies the plaintext source into the
// push-compress adapter, whose sink is the write end of an in-process
// pipe; the adapter's own Read drains the pipe's read end. The goroutine
// is exclusively owned by this adapter and runs alongside the caller's
// Read calls; the two sides exchange data only through the pipe, and
// byte counters are kept in atomics.
type pipeEncodeReader struct {
	pr   *io.PipeReader
	pw   *io.PipeWriter
	done chan error
}

// newPipeEncodeReader starts the bridge. newPush builds the push-compress
// adapter bound to the pipe's write end.
func newPipeEncodeReader(src io.Reader, newPush func(io.Writer) pushSide) *pipeEncodeReader {
	pr, pw := io.Pipe()
	push := newPush(pw)
	done := make(chan error, 1)
	go func() {
		_, copyErr := io.Copy(push, src)
		closeErr := push.Close()
		if copyErr == nil {
			copyErr = closeErr
		}
		done <- copyErr
		close(done)
		pw.CloseWithError(copyErr)
	}()
	return &pipeEncodeReader{pr: pr, pw: pw, done: done}
}

func (e *pipeEncodeReader) Read(p []byte) (int, error) {
	return e.pr.Read(p)
}

// Close tears down the bridge, unblocking the background goroutine if it
// is still copying, and waits for it to finish. Later calls return nil.
func (e *pipeEncodeReader) Close() error {
	e.pr.CloseWithError(ErrClosed)
	return <-e.done
}

// pipeDecodeWriter turns a pull-decompress adapter into a push-decompress
// DecodeWriter: a dedicated goroutine reads decompressed bytes out of the
// pull-decompress adapter (whose source is the read end of an in-process
// pipe) and copies them to the final sink; the adapter's own Write feeds
// compressed bytes into the pipe's write end.
type pipeDecodeWriter struct {
	pw   *io.PipeWriter
	pull pullSide
	done chan error
}

// newPipeDecodeWriter starts the bridge. newPull builds the pull-decompress
// adapter bound to the pipe's read end.
func newPipeDecodeWriter(sink io.Writer, newPull func(io.Reader) pullSide) *pipeDecodeWriter {
	pr, pw := io.Pipe()
	pull := newPull(pr)
	done := make(chan error, 1)
	go func() {
		_, copyErr := io.Copy(sink, pull)
		closeErr := pull.Close()
		if copyErr == nil {
			copyErr = closeErr
		}
		pr.CloseWithError(copyErr)
		done <- copyErr
		close(done)
	}()
	return &pipeDecodeWriter{pw: pw, pull: pull, done: done}
}

func (d *pipeDecodeWriter) Write(p []byte) (int, error) {
	return d.pw.Write(p)
}

// Finish signals end-of-input to the decompressor side and waits for the
// drain goroutine to deliver every remaining decompressed byte to the
// sink, returning its final error (nil on a clean, fully verified stream).
func (d *pipeDecodeWriter) Finish() error {
	if err := d.pw.Close(); err != nil {
		return err
	}
	return <-d.done
}

// Close aborts the bridge without requiring a clean end-of-stream; used
// when a caller drops a DecodeWriter without finishing it.
func (d *pipeDecodeWriter) Close() error {
	d.pw.CloseWithError(ErrClosed)
	<-d.done
	return nil
}
