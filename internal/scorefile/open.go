package scorefile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Open opens a score or key file, transparently decompressing when the
// path carries a .zst suffix, and reports the score format implied by
// the remaining extension (.json selects FormatJSON).
func Open(path string) (io.ReadCloser, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FormatText, err
	}

	name := path
	var rc io.ReadCloser = f
	if strings.HasSuffix(name, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, FormatText, fmt.Errorf("open zstd stream %s: %w", path, err)
		}
		rc = &zstdReadCloser{Reader: dec, dec: dec, file: f}
		name = strings.TrimSuffix(name, ".zst")
	}

	format := FormatText
	if strings.HasSuffix(name, ".json") {
		format = FormatJSON
	}
	return rc, format, nil
}

type zstdReadCloser struct {
	io.Reader
	dec  *zstd.Decoder
	file *os.File
}

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return z.file.Close()
}
