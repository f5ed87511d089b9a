package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvnav/dijkstra"
)

// Version is the format version written by Encode.
const Version = 1

var magic = [4]byte{'L', 'V', 'D', 'F'}

// Header layout, little-endian:
//
//	[0:4]   magic "LVDF"
//	[4]     version
//	[5]     compression
//	[6:10]  width
//	[10:14] height
//	[14:22] maxDepth (IEEE-754 bits)
//	[22:26] raw payload length
//	[26:30] stored payload length
const headerSize = 30

// maxCells bounds encoded and decoded fields: 8192×8192, 512 MiB of raw
// values. Larger fields return ErrTooLarge from Encode.
const maxCells = 1 << 26

var (
	// ErrBadMagic indicates the stream does not start with "LVDF".
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrUnsupportedVersion indicates a version this package cannot read.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")

	// ErrUnknownCompression indicates a compression byte outside None, LZ4, Zstd.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")

	// ErrCorrupt indicates inconsistent lengths, a failed decompression or
	// invalid cell values.
	ErrCorrupt = errors.New("snapshot: corrupt data")

	// ErrTooLarge indicates a field with more cells than the format can hold.
	ErrTooLarge = errors.New("snapshot: field too large")

	errSizeMismatch = errors.New("decompressed size mismatch")
)

// Encode writes f to w, packing its values with c. When c does not shrink
// the payload the values are stored uncompressed and the header says None.
func Encode(w io.Writer, f *dijkstra.DistanceField, c Compression) error {
	if c > Zstd {
		return fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
	if f.Len() > maxCells {
		return fmt.Errorf("%w: %d cells", ErrTooLarge, f.Len())
	}

	// 1) Serialise values
	values := f.Values()
	raw := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(v))
	}

	// 2) Compress, falling back to raw
	payload, ok, err := compress(raw, c)
	if err != nil {
		return fmt.Errorf("snapshot: %s: %w", c, err)
	}
	if !ok {
		payload, c = raw, None
	}

	// 3) Header + payload in one write
	buf := make([]byte, headerSize, headerSize+len(payload))
	copy(buf[0:4], magic[:])
	buf[4] = Version
	buf[5] = byte(c)
	binary.LittleEndian.PutUint32(buf[6:], uint32(f.Width()))
	binary.LittleEndian.PutUint32(buf[10:], uint32(f.Height()))
	binary.LittleEndian.PutUint64(buf[14:], math.Float64bits(f.MaxDepth()))
	binary.LittleEndian.PutUint32(buf[22:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(buf[26:], uint32(len(payload)))
	buf = append(buf, payload...)

	_, err = w.Write(buf)
	return err
}

// Decode reads one field written by Encode. opts configure the returned
// field as in dijkstra.NewEmpty.
func Decode(r io.Reader, opts ...dijkstra.Option) (*dijkstra.DistanceField, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("snapshot: header: %w", err)
	}

	// 1) Identify
	if [4]byte(hdr[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if hdr[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr[4])
	}
	c := Compression(hdr[5])
	if c > Zstd {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, hdr[5])
	}

	// 2) Check lengths before allocating
	width := binary.LittleEndian.Uint32(hdr[6:])
	height := binary.LittleEndian.Uint32(hdr[10:])
	maxDepth := math.Float64frombits(binary.LittleEndian.Uint64(hdr[14:]))
	rawLen := binary.LittleEndian.Uint32(hdr[22:])
	payloadLen := binary.LittleEndian.Uint32(hdr[26:])

	cells := uint64(width) * uint64(height)
	if cells == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrCorrupt, width, height)
	}
	if cells > maxCells {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrCorrupt, ErrTooLarge, width, height)
	}
	if uint64(rawLen) != 8*cells {
		return nil, fmt.Errorf("%w: raw length %d for %d cells", ErrCorrupt, rawLen, cells)
	}
	if payloadLen > rawLen || (c == None && payloadLen != rawLen) {
		return nil, fmt.Errorf("%w: payload length %d", ErrCorrupt, payloadLen)
	}

	// 3) Payload, grown as bytes arrive so a lying header costs nothing
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(io.LimitReader(r, int64(payloadLen))); err != nil {
		return nil, fmt.Errorf("snapshot: payload: %w", err)
	}
	if buf.Len() != int(payloadLen) {
		return nil, fmt.Errorf("snapshot: payload: %d of %d bytes: %w", buf.Len(), payloadLen, io.ErrUnexpectedEOF)
	}
	payload := buf.Bytes()
	raw, err := decompress(payload, c, int(rawLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, c, err)
	}

	values := make([]float64, cells)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}

	f, err := dijkstra.FromValues(int(width), int(height), maxDepth, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return f, nil
}
