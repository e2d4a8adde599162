// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/streamkit-go/deflatestream"
)

func gzipRoundTrip(t *testing.T, payload []byte, level deflatestream.Level) []byte {
	t.Helper()
	var compressed bytes.Buffer
	w, err := deflatestream.NewGzipWriterLevel(&compressed, level)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return compressed.Bytes()
}

// Scenario 1 from spec.md §8.
func TestGzipConcreteScenarioFooBarBaz(t *testing.T) {
	payload := []byte("foo bar baz")
	blob := gzipRoundTrip(t, payload, deflatestream.DefaultCompression)

	r, err := deflatestream.NewGzipReader(bytes.NewReader(blob))
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	lastFour := blob[len(blob)-4:]
	require.Equal(t, []byte{0x0B, 0x00, 0x00, 0x00}, lastFour)
}

// Scenario 2 from spec.md §8: header round-trip across all optional fields.
func TestGzipHeaderRoundTripAllFields(t *testing.T) {
	var compressed bytes.Buffer
	w, err := deflatestream.NewGzipWriterLevel(&compressed, deflatestream.DefaultCompression)
	require.NoError(t, err)
	w.Name = "foo.rs"
	w.Comment = "bar"
	w.Extra = []byte{0, 1, 2, 3}

	payload := []byte{0, 2, 4, 6}
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := deflatestream.NewGzipReader(bytes.NewReader(compressed.Bytes()))
	require.NoError(t, err)

	diff := cmp.Diff(deflatestream.GzipHeader{
		Name:    "foo.rs",
		Comment: "bar",
		Extra:   []byte{0, 1, 2, 3},
	}, r.GzipHeader, cmpopts.IgnoreFields(deflatestream.GzipHeader{}, "ModTime", "OS"))
	require.Empty(t, diff)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestGzipInvalidArgumentOnInteriorNUL(t *testing.T) {
	w := deflatestream.NewGzipWriter(io.Discard)
	w.Name = "bad\x00name"
	_, err := w.Write([]byte("x"))
	require.ErrorIs(t, err, deflatestream.ErrInvalidArgument)
}

// Scenario 3.
func TestGzipRoundTripOneMebibyteRandom(t *testing.T) {
	payload := make([]byte, 1<<20)
	_, err := rand.Read(payload)
	require.NoError(t, err)
	blob := gzipRoundTrip(t, payload, deflatestream.BestCompression)

	r, err := deflatestream.NewGzipReader(bytes.NewReader(blob))
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

// Scenario 4: reset equivalence.
func TestGzipResetEquivalence(t *testing.T) {
	payload := make([]byte, 1<<20)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	var resetBuf bytes.Buffer
	w, err := deflatestream.NewGzipWriterLevel(&resetBuf, deflatestream.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	resetBuf.Reset()
	w.Reset(&resetBuf)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	fresh := gzipRoundTrip(t, payload, deflatestream.DefaultCompression)
	require.Equal(t, fresh, resetBuf.Bytes())
}

// Scenario 5: multi-member vs single-member decode.
func TestGzipMultistream(t *testing.T) {
	a := gzipRoundTrip(t, []byte("A"), deflatestream.DefaultCompression)
	b := gzipRoundTrip(t, []byte("B"), deflatestream.DefaultCompression)
	concatenated := append(append([]byte{}, a...), b...)

	multi, err := deflatestream.NewGzipReader(bytes.NewReader(concatenated))
	require.NoError(t, err)
	got, err := io.ReadAll(multi)
	require.NoError(t, err)
	require.Equal(t, []byte("AB"), got)

	single, err := deflatestream.NewGzipReader(bytes.NewReader(concatenated))
	require.NoError(t, err)
	single.Multistream(false)
	got, err = io.ReadAll(single)
	require.NoError(t, err)
	require.Equal(t, []byte("A"), got)
	n, err := single.Read(make([]byte, 8))
	require.Equal(t, 0, n)
	require.NoError(t, err)
}

// Scenario 6: read-after-EOF.
func TestGzipReadAfterEOF(t *testing.T) {
	blob := gzipRoundTrip(t, []byte("hello"), deflatestream.DefaultCompression)
	r, err := deflatestream.NewGzipReader(bytes.NewReader(blob))
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	require.NoError(t, err)

	n, err := r.Read(make([]byte, 16))
	require.Equal(t, 0, n)
	require.NoError(t, err)
	n, err = r.Read(make([]byte, 16))
	require.Equal(t, 0, n)
	require.NoError(t, err)
}

func TestGzipTrailingDataTolerance(t *testing.T) {
	blob := gzipRoundTrip(t, []byte("payload"), deflatestream.DefaultCompression)
	withGarbage := append(append([]byte{}, blob...), []byte("unrelated trailing bytes")...)

	r, err := deflatestream.NewGzipReader(bytes.NewReader(withGarbage))
	require.NoError(t, err)
	r.Multistream(false)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), got)
	require.EqualValues(t, len(blob), r.TotalIn())
}

func TestGzipCorruptionDetection(t *testing.T) {
	t.Run("flipped trailer byte", func(t *testing.T) {
		blob := append([]byte{}, gzipRoundTrip(t, []byte("payload"), deflatestream.DefaultCompression)...)
		blob[len(blob)-1] ^= 0xFF

		r, err := deflatestream.NewGzipReader(bytes.NewReader(blob))
		require.NoError(t, err)
		_, err = io.ReadAll(r)
		require.ErrorIs(t, err, deflatestream.ErrCorruptStream)
	})

	t.Run("flipped magic byte", func(t *testing.T) {
		blob := append([]byte{}, gzipRoundTrip(t, []byte("payload"), deflatestream.DefaultCompression)...)
		blob[0] ^= 0xFF

		_, err := deflatestream.NewGzipReader(bytes.NewReader(blob))
		require.ErrorIs(t, err, deflatestream.ErrBadHeader)
	})

	t.Run("truncated trailer", func(t *testing.T) {
		blob := gzipRoundTrip(t, []byte("payload"), deflatestream.DefaultCompression)
		truncated := blob[:len(blob)-4]

		r, err := deflatestream.NewGzipReader(bytes.NewReader(truncated))
		require.NoError(t, err)
		_, err = io.ReadAll(r)
		require.ErrorIs(t, err, deflatestream.ErrCorruptStream)
	})
}

func TestGzipWriteCompressedSplicesBlob(t *testing.T) {
	blobA := gzipRoundTrip(t, []byte("AAAA"), deflatestream.DefaultCompression)

	var out bytes.Buffer
	w := deflatestream.NewGzipWriter(&out)
	_, err := w.WriteCompressed(blobA)
	require.NoError(t, err)
	_, err = w.Write([]byte("BBBB"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := deflatestream.NewGzipReader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("AAAABBBB"), got)
}

func TestGzipEncodeReaderMatchesWriter(t *testing.T) {
	payload := bytes.Repeat([]byte("gzip pull-compress "), 200)

	var viaWriter bytes.Buffer
	w := deflatestream.NewGzipWriter(&viaWriter)
	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	er := deflatestream.NewGzipEncodeReader(bytes.NewReader(payload))
	got, err := io.ReadAll(er)
	require.NoError(t, err)
	require.Equal(t, viaWriter.Bytes(), got)
}

func TestGzipDecodeWriterMatchesReader(t *testing.T) {
	payload := bytes.Repeat([]byte("gzip push-decompress "), 200)
	blob := gzipRoundTrip(t, payload, deflatestream.DefaultCompression)

	var out bytes.Buffer
	dw := deflatestream.NewGzipDecodeWriter(&out)
	_, err := dw.Write(blob)
	require.NoError(t, err)
	require.NoError(t, dw.Finish())
	require.Equal(t, payload, out.Bytes())
}

// Chained composition law from spec.md §8.
func TestChainedAdapterComposition(t *testing.T) {
	original := bytes.Repeat([]byte("chained pipeline "), 300)

	var gz bytes.Buffer
	gw := deflatestream.NewGzipWriter(&gz)
	_, err := gw.Write(original)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	var zl bytes.Buffer
	zw := deflatestream.NewZlibWriter(&zl)
	_, err = zw.Write(gz.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var df bytes.Buffer
	dfw := deflatestream.NewWriter(&df)
	_, err = dfw.Write(zl.Bytes())
	require.NoError(t, err)
	require.NoError(t, dfw.Close())

	deflateDec := deflatestream.NewReader(&df)
	deflateOut, err := io.ReadAll(deflateDec)
	require.NoError(t, err)

	zlibDec, err := deflatestream.NewZlibReader(bytes.NewReader(deflateOut))
	require.NoError(t, err)
	zlibOut, err := io.ReadAll(zlibDec)
	require.NoError(t, err)

	gzipDec, err := deflatestream.NewGzipReader(bytes.NewReader(zlibOut))
	require.NoError(t, err)
	gzipOut, err := io.ReadAll(gzipDec)
	require.NoError(t, err)

	require.Equal(t, original, gzipOut)
}

func TestGzipZeroLengthPayloadDecodesToZeroBytes(t *testing.T) {
	blob := gzipRoundTrip(t, nil, deflatestream.DefaultCompression)
	r, err := deflatestream.NewGzipReader(bytes.NewReader(blob))
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGzipTrailerRecordsPayloadLength(t *testing.T) {
	var buf bytes.Buffer
	w := deflatestream.NewGzipWriter(&buf)
	_, err := w.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], 3)
	require.Equal(t, trailer[:], buf.Bytes()[buf.Len()-4:])
}
