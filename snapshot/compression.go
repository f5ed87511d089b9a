package snapshot

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects how the value payload is packed.
type Compression uint8

const (
	// None stores the little-endian values as is.
	None Compression = 0
	// LZ4 uses LZ4 block compression: fast, modest ratio.
	LZ4 Compression = 1
	// Zstd uses Zstandard: slower, better ratio on mostly-Unreachable fields.
	Zstd Compression = 2
)

// String returns the lowercase codec name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

var (
	zstdEncoders sync.Pool
	zstdDecoders sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoders.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoders.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(8*maxCells),
	)
}

// lz4MaxRatio bounds how far one LZ4 block can expand: a match costs at
// least one byte per 255 bytes of output. The slack covers tiny blocks.
const (
	lz4MaxRatio = 255
	lz4Slack    = 64
)

// compress packs raw with c. ok is false when c gave no saving, in which
// case the caller stores raw uncompressed.
func compress(raw []byte, c Compression) (out []byte, ok bool, err error) {
	switch c {
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, false, err
		}
		// n == 0 means incompressible
		if n == 0 || n >= len(raw) {
			return nil, false, nil
		}
		return buf[:n], true, nil

	case Zstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, false, err
		}
		defer zstdEncoders.Put(enc)
		out = enc.EncodeAll(raw, nil)
		if len(out) >= len(raw) {
			return nil, false, nil
		}
		return out, true, nil

	default:
		return nil, false, nil
	}
}

// decompress unpacks payload into a buffer of exactly rawLen bytes.
// Output memory follows what payload can actually produce, not what the
// header claims.
func decompress(payload []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case LZ4:
		if uint64(rawLen) > lz4MaxRatio*uint64(len(payload))+lz4Slack {
			return nil, errSizeMismatch
		}
		raw := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, err
		}
		if n != rawLen {
			return nil, errSizeMismatch
		}
		return raw, nil

	case Zstd:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoders.Put(dec)
		if err = dec.Reset(bytes.NewReader(payload)); err != nil {
			return nil, err
		}
		// One byte past rawLen is enough to detect an overlong stream.
		raw, err := io.ReadAll(io.LimitReader(dec, int64(rawLen)+1))
		if err != nil {
			return nil, err
		}
		if len(raw) != rawLen {
			return nil, errSizeMismatch
		}
		return raw, nil

	default:
		if len(payload) != rawLen {
			return nil, errSizeMismatch
		}
		return payload, nil
	}
}
