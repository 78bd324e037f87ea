package exprmatrix

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Expression matrices are commonly shipped compressed. These magic-byte
// signatures let Open accept .gz, .zip, .xz, and .bz2 files transparently.
// Signatures from https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[string][]byte{
	"gzip":  {0x1f, 0x8b, 0x08},
	"zip":   {0x50, 0x4b, 0x03, 0x04},
	"xz":    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	"bzip2": {0x42, 0x5a, 0x68},
}

func sniffCompression(leader []byte) string {
	for name, sig := range compressionSigs {
		if bytes.HasPrefix(leader, sig) {
			return name
		}
	}

	return ""
}

// Open loads a matrix from a delimited file, decompressing it first if its
// leading bytes identify a known compression format. Diagnostics go to the
// standard logger.
func Open(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := maybeDecompress(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return Parse(r, nil)
}

func maybeDecompress(f *os.File) (io.Reader, error) {
	leader := make([]byte, 6)
	n, err := io.ReadFull(f, leader)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch sniffCompression(leader[:n]) {
	case "gzip":
		return gzip.NewReader(f)
	case "bzip2":
		return bzip2.NewReader(f), nil
	case "xz":
		return xz.NewReader(f, 0)
	case "zip":
		zr := zipstream.NewReader(f)
		// Advance to the first archived file; a zipped matrix is
		// expected to hold exactly one.
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return zr, nil
	}

	return f, nil
}
