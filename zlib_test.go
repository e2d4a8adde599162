// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream_test

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamkit-go/deflatestream"
)

func TestZlibWriterReaderRoundTrip(t *testing.T) {
	testcases := []struct {
		note  string
		input []byte
	}{
		{note: "nil input", input: nil},
		{note: "single byte", input: []byte("Z")},
		{note: "many repeated bytes", input: bytes.Repeat([]byte("Z"), 1000)},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.note, func(t *testing.T) {
			var compressed bytes.Buffer
			w := deflatestream.NewZlibWriter(&compressed)
			_, err := w.Write(tc.input)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := deflatestream.NewZlibReader(&compressed)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			// io.ReadAll never returns nil, so compare against a
			// non-nil copy of the input.
			require.Equal(t, append([]byte{}, tc.input...), got)
		})
	}
}

func TestZlibEncodeReaderMatchesWriter(t *testing.T) {
	payload := bytes.Repeat([]byte("zlib pull-compress "), 200)

	var viaWriter bytes.Buffer
	w := deflatestream.NewZlibWriter(&viaWriter)
	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	er := deflatestream.NewZlibEncodeReader(bytes.NewReader(payload))
	got, err := io.ReadAll(er)
	require.NoError(t, err)

	require.Equal(t, viaWriter.Bytes(), got)
}

func TestZlibDecodeWriterMatchesReader(t *testing.T) {
	payload := bytes.Repeat([]byte("zlib push-decompress "), 200)
	var compressed bytes.Buffer
	w := deflatestream.NewZlibWriter(&compressed)
	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var out bytes.Buffer
	dw := deflatestream.NewZlibDecodeWriter(&out)
	_, err = dw.Write(compressed.Bytes())
	require.NoError(t, err)
	require.NoError(t, dw.Finish())

	require.Equal(t, payload, out.Bytes())
}

func TestZlibBadHeaderRejected(t *testing.T) {
	bad := []byte{0x00, 0x00, 0x00, 0x00}
	_, err := deflatestream.NewZlibReader(bytes.NewReader(bad))
	require.Error(t, err)
}

func TestZlibRoundTripOneMebibyteRandom(t *testing.T) {
	payload := make([]byte, 1<<20)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	var compressed bytes.Buffer
	w := deflatestream.NewZlibWriter(&compressed)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := deflatestream.NewZlibReader(&compressed)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}
