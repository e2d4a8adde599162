// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"bufio"
	"io"
)

// peekSource is the "peekable input" collaborator the design calls out as
// an external BufRead primitive: borrow the currently buffered bytes,
// consume N of them, or ask for more. bufio.Reader already implements
// exactly this trio (Peek/Discard/ReadByte), so no wrapper type is
// needed. No call site takes this interface: GzipReader holds the
// concrete *bufio.Reader returned by asPeeker.
type peekSource interface {
	Peek(n int) ([]byte, error)
	Discard(n int) (int, error)
	ReadByte() (byte, error)
}

const defaultBufSize = 4096

// asPeeker returns r unchanged if it is already a *bufio.Reader,
// otherwise wraps it in one with the package's default buffer size.
func asPeeker(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReaderSize(r, defaultBufSize)
}
