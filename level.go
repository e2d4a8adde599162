// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import "github.com/klauspost/compress/flate"

// Level selects a compression effort. The numeric values are metadata
// only; they are not part of any wire format.
type Level int

const (
	NoCompression      Level = 0
	FastCompression    Level = 1
	DefaultCompression Level = 6
	BestCompression    Level = 9
)

// flateLevel maps the four-value public enum onto the underlying codec's
// level parameter. Values outside the enum pass through unchanged so
// callers migrating raw flate.Writer levels keep working.
func (l Level) flateLevel() int {
	switch l {
	case NoCompression:
		return flate.NoCompression
	case FastCompression:
		return flate.BestSpeed
	case DefaultCompression:
		return flate.DefaultCompression
	case BestCompression:
		return flate.BestCompression
	default:
		return int(l)
	}
}

// xfl returns the GZIP header's "extra flags" byte for this level,
// following the non-canonical-but-preserved mapping from the original
// implementation: 2 for best compression, 4 for fastest, 0 otherwise.
func (l Level) xfl() byte {
	switch l {
	case BestCompression:
		return 2
	case FastCompression:
		return 4
	default:
		return 0
	}
}
