// Package compress provides the lossless compression boundary of the PGN
// codec. The codec only needs deterministic compress/decompress over byte
// buffers, so the interface is deliberately narrow.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/chessstego/chessstego-go/internal/errors"
)

// Compressor is a deterministic, lossless byte-buffer compressor.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Zlib compresses with the zlib format at the default level. The same input
// always yields the same output, which the PGN codec's determinism relies on.
type Zlib struct{}

// NewZlib returns a zlib-backed Compressor.
func NewZlib() *Zlib {
	return &Zlib{}
}

// Compress deflates data into a zlib stream.
func (z *Zlib) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, errors.Wrap(err, "compressing payload")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "compressing payload")
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream. A corrupt or truncated stream fails
// with ErrDecompression.
func (z *Zlib) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDecompression, "%v", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDecompression, "%v", err)
	}
	return out, nil
}
