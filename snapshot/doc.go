// Package snapshot persists dijkstra.DistanceField values in a compact
// binary form, so expensive static fields (e.g. distance to every exit of a
// level) can be built once and shipped with the level data.
//
// A snapshot is a fixed 30-byte little-endian header ("LVDF", version,
// compression, width, height, maxDepth, raw and stored payload lengths)
// followed by the cell values as float64 bits, optionally packed with LZ4
// (github.com/pierrec/lz4/v4) or Zstandard
// (github.com/klauspost/compress/zstd). Unreachable cells are stored as
// math.MaxFloat64, which compresses well.
//
// Fields are limited to 8192×8192 cells. Decode checks the header lengths
// against each other, then grows its buffers only as payload bytes arrive and
// decompress, so a header alone cannot force a large allocation. NaN or
// negative cell values are rejected, and a truncated or tampered stream
// yields an error wrapping ErrCorrupt or io.ErrUnexpectedEOF rather than a
// bogus field.
package snapshot
