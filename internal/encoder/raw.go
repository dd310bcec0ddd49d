package encoder

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/DNS451/gray-level-cli/internal/posterize"
)

// rawMagic prefixes raw dumps: magic, width and height (big-endian
// uint32), then the zstd-compressed RGBA bytes.
var rawMagic = [4]byte{'G', 'L', 'R', '1'}

const rawHeaderLen = 12

// ErrRawFormat is returned when a raw dump is truncated or mislabeled.
var ErrRawFormat = errors.New("encoder: malformed raw dump")

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		)
		if err != nil {
			panic(err)
		}
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(err)
		}
		return dec
	},
}

// RawEncoder dumps the transformed RGBA buffer itself, zstd-compressed.
type RawEncoder struct{}

func (e *RawEncoder) Format() string      { return "raw" }
func (e *RawEncoder) Extension() string   { return "rgba.zst" }
func (e *RawEncoder) Available() bool     { return true }
func (e *RawEncoder) SupportsAlpha() bool { return true }

func (e *RawEncoder) Encode(f Frame) ([]byte, error) {
	buf := posterize.FromImage(f.Image)

	out := make([]byte, rawHeaderLen, rawHeaderLen+len(buf.Pix)/4)
	copy(out, rawMagic[:])
	binary.BigEndian.PutUint32(out[4:], uint32(buf.Width))
	binary.BigEndian.PutUint32(out[8:], uint32(buf.Height))

	enc := zstdEncPool.Get().(*zstd.Encoder)
	out = enc.EncodeAll(buf.Pix, out)
	zstdEncPool.Put(enc)
	return out, nil
}

// DecodeRaw reverses RawEncoder.Encode.
func DecodeRaw(data []byte) (*posterize.Buffer, error) {
	if len(data) < rawHeaderLen || [4]byte(data[:4]) != rawMagic {
		return nil, ErrRawFormat
	}
	w := int(binary.BigEndian.Uint32(data[4:]))
	h := int(binary.BigEndian.Uint32(data[8:]))

	dec := zstdDecPool.Get().(*zstd.Decoder)
	pix, err := dec.DecodeAll(data[rawHeaderLen:], nil)
	zstdDecPool.Put(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRawFormat, err)
	}
	return posterize.NewBuffer(w, h, pix)
}
