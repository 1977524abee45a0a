// File: render/snapshot.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Compressed binary snapshots of finished grids, so an expensive run can
// be cached and re-rendered without recomputation. The payload is a
// little-endian header plus raw cells, block-compressed with s2.

package render

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/momentics/hioload-fractal/api"
)

// snapshotMagic marks the head of every snapshot stream.
var snapshotMagic = [4]byte{'H', 'L', 'F', 'G'}

const snapshotHeaderLen = 12 // width, height, maxIterations as uint32

// Snapshot is a decoded grid. It implements api.Grid, so it can be fed
// straight back into any renderer.
type Snapshot struct {
	width         int
	height        int
	maxIterations int
	cells         []uint16
}

var _ api.Grid = (*Snapshot)(nil)

// Width returns the pixel width.
func (s *Snapshot) Width() int { return s.width }

// Height returns the pixel height.
func (s *Snapshot) Height() int { return s.height }

// MaxIterations returns the iteration cap the grid was computed with.
func (s *Snapshot) MaxIterations() int { return s.maxIterations }

// At returns the stored result for pixel (x, y).
func (s *Snapshot) At(x, y int) uint16 {
	return s.cells[y*s.width+x]
}

// WriteSnapshot serializes and compresses g into w. maxIterations is
// carried with the grid so that thresholds remain interpretable when the
// snapshot is rendered later.
func WriteSnapshot(w io.Writer, g api.Grid, maxIterations int) error {
	width, height := g.Width(), g.Height()
	payload := make([]byte, snapshotHeaderLen+width*height*2)
	binary.LittleEndian.PutUint32(payload[0:], uint32(width))
	binary.LittleEndian.PutUint32(payload[4:], uint32(height))
	binary.LittleEndian.PutUint32(payload[8:], uint32(maxIterations))

	off := snapshotHeaderLen
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			binary.LittleEndian.PutUint16(payload[off:], g.At(x, y))
			off += 2
		}
	}

	if _, err := w.Write(snapshotMagic[:]); err != nil {
		return fmt.Errorf("render: snapshot write: %w", err)
	}
	if _, err := w.Write(s2.Encode(nil, payload)); err != nil {
		return fmt.Errorf("render: snapshot write: %w", err)
	}
	return nil
}

// ReadSnapshot decompresses and validates a snapshot previously written
// by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("render: snapshot read: %w", err)
	}
	if len(raw) < len(snapshotMagic) || [4]byte(raw[:4]) != snapshotMagic {
		return nil, fmt.Errorf("render: bad magic: %w", api.ErrSnapshotCorrupt)
	}
	payload, err := s2.Decode(nil, raw[4:])
	if err != nil {
		return nil, fmt.Errorf("render: decompress: %v: %w", err, api.ErrSnapshotCorrupt)
	}
	if len(payload) < snapshotHeaderLen {
		return nil, fmt.Errorf("render: truncated header: %w", api.ErrSnapshotCorrupt)
	}

	width := int(binary.LittleEndian.Uint32(payload[0:]))
	height := int(binary.LittleEndian.Uint32(payload[4:]))
	maxIterations := int(binary.LittleEndian.Uint32(payload[8:]))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: bad dimensions %dx%d: %w", width, height, api.ErrSnapshotCorrupt)
	}
	body := payload[snapshotHeaderLen:]
	if len(body) != width*height*2 {
		return nil, fmt.Errorf("render: cell payload %d bytes, want %d: %w",
			len(body), width*height*2, api.ErrSnapshotCorrupt)
	}

	cells := make([]uint16, width*height)
	for i := range cells {
		cells[i] = binary.LittleEndian.Uint16(body[i*2:])
	}
	return &Snapshot{
		width:         width,
		height:        height,
		maxIterations: maxIterations,
		cells:         cells,
	}, nil
}
