// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package deflatestream provides streaming adapters for raw DEFLATE
// (RFC 1951), ZLIB (RFC 1950), and GZIP (RFC 1952) over arbitrary
// io.Reader/io.Writer endpoints.
//
// Four adapter shapes exist for each wire format: a pull-decompress
// Reader, a push-compress Writer, a pull-compress EncodeReader, and a
// push-decompress DecodeWriter. The DEFLATE and CRC-32 algorithms
// themselves are supplied by github.com/klauspost/compress and
// github.com/klauspost/crc32 respectively; this package owns only the
// framing and the glue between Go's io interfaces and those codecs.
package deflatestream
