package requestutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

const (
	SuffixGzip = ".gz"
	SuffixXZ   = ".xz"
	SuffixZstd = ".zst"
)

// IsCompressed reports whether the name carries a
// compression suffix that NewReader understands.
func IsCompressed(name string) bool {
	switch suffix(name) {
	case SuffixGzip, SuffixXZ, SuffixZstd:
		return true
	default:
		return false
	}
}

// NewReader wraps r with a decompressor selected by the suffix
// of name. Names without a known suffix are passed through.
func NewReader(name string, r io.Reader) (io.ReadCloser, error) {
	switch suffix(name) {
	case SuffixGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return gr, nil
	case SuffixXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
		return io.NopCloser(xr), nil
	case SuffixZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

func suffix(name string) string {
	name = strings.ToLower(name)
	// drop any query string so that urls still match
	name, _, _ = strings.Cut(name, "?")
	for _, s := range []string{SuffixGzip, SuffixXZ, SuffixZstd} {
		if strings.HasSuffix(name, s) {
			return s
		}
	}
	return ""
}
