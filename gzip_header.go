// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/klauspost/crc32"
)

// GZIP wire-format constants, RFC 1952 section 2.3.
const (
	gzipID1     = 0x1f
	gzipID2     = 0x8b
	gzipDeflate = 8

	flagText    = 1 << 0
	flagHdrCrc  = 1 << 1
	flagExtra   = 1 << 2
	flagName    = 1 << 3
	flagComment = 1 << 4
)

// GzipHeader holds the optional and derived fields of a single GZIP
// member header: Extra, Name and Comment are written (and parsed) as
// described in §6. The xfl byte is derived from the compression level and
// cannot be set; OS defaults to headerOS() and is written as set.
type GzipHeader struct {
	Extra   []byte
	Name    string
	Comment string
	ModTime time.Time
	OS      byte
}

func newGzipHeader() GzipHeader {
	return GzipHeader{OS: headerOS()}
}

// validate rejects Name/Comment values containing a NUL, per the builder
// invariant in §3, and Extra values longer than 65535 bytes.
func (h GzipHeader) validate() error {
	if containsNUL(h.Name) || containsNUL(h.Comment) {
		return ErrInvalidArgument
	}
	if len(h.Extra) > 0xffff {
		return ErrInvalidArgument
	}
	return nil
}

func containsNUL(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}

// writeGzipHeader serializes h to w, picking xfl from level. It does not
// emit FHCRC; see the open question preserved in DESIGN.md.
func writeGzipHeader(w io.Writer, h GzipHeader, level Level) error {
	if err := h.validate(); err != nil {
		return err
	}
	var buf [10]byte
	buf[0] = gzipID1
	buf[1] = gzipID2
	buf[2] = gzipDeflate
	if len(h.Extra) > 0 {
		buf[3] |= flagExtra
	}
	if h.Name != "" {
		buf[3] |= flagName
	}
	if h.Comment != "" {
		buf[3] |= flagComment
	}
	if h.ModTime.After(time.Unix(0, 0)) {
		binary.LittleEndian.PutUint32(buf[4:8], uint32(h.ModTime.Unix()))
	}
	buf[8] = level.xfl()
	buf[9] = h.OS
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	if len(h.Extra) > 0 {
		var lenBuf [2]byte
		binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(h.Extra)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := w.Write(h.Extra); err != nil {
			return err
		}
	}
	if h.Name != "" {
		if err := writeNulTerminated(w, h.Name); err != nil {
			return err
		}
	}
	if h.Comment != "" {
		if err := writeNulTerminated(w, h.Comment); err != nil {
			return err
		}
	}
	return nil
}

func writeNulTerminated(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}

// parseGzipHeader reads one GZIP member header from br per RFC 1952,
// verifying FHCRC against the header bytes read so far when present. It
// also returns the number of header bytes consumed, so callers can fold
// framing bytes into a TotalIn tally (the header never passes through
// the codec package's own counting reader, which only sees the DEFLATE
// payload).
func parseGzipHeader(br *bufio.Reader) (GzipHeader, int, error) {
	var hdr GzipHeader

	var fixed [10]byte
	if _, err := io.ReadFull(br, fixed[:]); err != nil {
		return hdr, 0, wrapShortRead(err)
	}
	n := len(fixed)
	if fixed[0] != gzipID1 || fixed[1] != gzipID2 || fixed[2] != gzipDeflate {
		return hdr, n, badHeader()
	}
	flg := fixed[3]
	hcrc := crc32.Update(0, crc32.IEEETable, fixed[:])
	hdr.ModTime = time.Unix(int64(binary.LittleEndian.Uint32(fixed[4:8])), 0)

	if flg&flagExtra != 0 {
		var lenBuf [2]byte
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return hdr, n, wrapShortRead(err)
		}
		n += len(lenBuf)
		hcrc = crc32.Update(hcrc, crc32.IEEETable, lenBuf[:])
		xlen := binary.LittleEndian.Uint16(lenBuf[:])
		extra := make([]byte, xlen)
		if _, err := io.ReadFull(br, extra); err != nil {
			return hdr, n, wrapShortRead(err)
		}
		n += len(extra)
		hcrc = crc32.Update(hcrc, crc32.IEEETable, extra)
		hdr.Extra = extra
	}
	if flg&flagName != 0 {
		name, sum, read, err := readNulTerminated(br, hcrc)
		n += read
		if err != nil {
			return hdr, n, err
		}
		hdr.Name = name
		hcrc = sum
	}
	if flg&flagComment != 0 {
		comment, sum, read, err := readNulTerminated(br, hcrc)
		n += read
		if err != nil {
			return hdr, n, err
		}
		hdr.Comment = comment
		hcrc = sum
	}
	if flg&flagHdrCrc != 0 {
		var crcBuf [2]byte
		if _, err := io.ReadFull(br, crcBuf[:]); err != nil {
			return hdr, n, wrapShortRead(err)
		}
		n += len(crcBuf)
		want := binary.LittleEndian.Uint16(crcBuf[:])
		if uint16(hcrc) != want {
			return hdr, n, badHeader()
		}
	}
	hdr.OS = fixed[9]
	return hdr, n, nil
}

func readNulTerminated(br *bufio.Reader, crcSoFar uint32) (string, uint32, int, error) {
	b, err := br.ReadBytes(0)
	if err != nil {
		return "", crcSoFar, len(b), wrapShortRead(err)
	}
	crcSoFar = crc32.Update(crcSoFar, crc32.IEEETable, b)
	return string(b[:len(b)-1]), crcSoFar, len(b), nil
}

// getDeflateSlice strips a complete GZIP blob's header and trailer,
// returning the raw DEFLATE payload in between. Used by WriteCompressed
// to splice a pre-compressed member into an open stream without
// decompressing it.
func getDeflateSlice(gzBlob []byte) ([]byte, bool) {
	headerLen := getHeaderLength(gzBlob)
	if headerLen < 0 {
		return nil, false
	}
	if len(gzBlob) < headerLen+8 {
		return nil, false
	}
	return gzBlob[headerLen : len(gzBlob)-8], true
}

// getHeaderLength walks the same state machine as parseGzipHeader, but
// over an in-memory slice, returning -1 on any malformed or truncated
// header.
func getHeaderLength(gzBlob []byte) int {
	headerLen := 10
	if len(gzBlob) < headerLen {
		return -1
	}
	if gzBlob[0] != gzipID1 || gzBlob[1] != gzipID2 || gzBlob[2] != gzipDeflate {
		return -1
	}
	flg := gzBlob[3]
	if flg&flagExtra != 0 {
		headerLen += 2
		if len(gzBlob) < headerLen {
			return -1
		}
		xlen := binary.LittleEndian.Uint16(gzBlob[10:12])
		headerLen += int(xlen)
		if len(gzBlob) < headerLen {
			return -1
		}
	}
	if flg&flagName != 0 {
		end := bytes.IndexByte(gzBlob[headerLen:], 0)
		if end < 0 {
			return -1
		}
		headerLen += end + 1
		if len(gzBlob) < headerLen {
			return -1
		}
	}
	if flg&flagComment != 0 {
		end := bytes.IndexByte(gzBlob[headerLen:], 0)
		if end < 0 {
			return -1
		}
		headerLen += end + 1
		if len(gzBlob) < headerLen {
			return -1
		}
	}
	if flg&flagHdrCrc != 0 {
		headerLen += 2
		if len(gzBlob) < headerLen {
			return -1
		}
	}
	return headerLen
}
