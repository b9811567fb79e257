// Package frame maps file chunks onto fixed-size pixel buffers.
//
// Layout of a frame:
//
//	[0,8)          payload length, uint64 little-endian
//	[8,8+length)   payload
//	rest           zero
package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/faanross/simulacra_png/internal/layout"
	"github.com/faanross/simulacra_png/internal/status"
)

// Frame is the pixel buffer for one chunk, sized to its tier.
type Frame struct {
	tier layout.Tier
	buf  []byte
}

// New allocates a zero-filled frame for tier.
func New(tier layout.Tier) *Frame {
	return &Frame{tier: tier, buf: make([]byte, tier.Total)}
}

// Payload stamps n into the header and returns the n-byte window after it
// for the caller to fill. n larger than the tier's capacity is a programming
// error and panics.
func (f *Frame) Payload(n int) []byte {
	if n < 0 || int64(n) > f.tier.Usable {
		panic(fmt.Sprintf("frame: payload of %d bytes does not fit tier %s (%d)", n, f.tier.Name, f.tier.Usable))
	}
	binary.LittleEndian.PutUint64(f.buf[:layout.HEADER_SIZE], uint64(n))
	return f.buf[layout.HEADER_SIZE : layout.HEADER_SIZE+n]
}

// Tier returns the geometry the frame was allocated for.
func (f *Frame) Tier() layout.Tier { return f.tier }

// Bytes returns the whole pixel buffer.
func (f *Frame) Bytes() []byte { return f.buf }

// Embed copies chunk into a new frame for tier.
func Embed(chunk []byte, tier layout.Tier) *Frame {
	f := New(tier)
	copy(f.Payload(len(chunk)), chunk)
	return f
}

// StoredLength reads the header of a raw pixel buffer.
func StoredLength(pix []byte) (uint64, error) {
	if len(pix) < layout.HEADER_SIZE {
		return 0, status.Errorf(status.DataErr, "extract", "", "frame of %d bytes has no header", len(pix))
	}
	return binary.LittleEndian.Uint64(pix[:layout.HEADER_SIZE]), nil
}

// Extract returns the payload held by a raw pixel buffer. The result aliases pix.
func Extract(pix []byte) ([]byte, error) {
	n, err := StoredLength(pix)
	if err != nil {
		return nil, err
	}
	avail := uint64(len(pix) - layout.HEADER_SIZE)
	if n > avail {
		return nil, status.Errorf(status.DataErr, "extract", "", "stored length %d exceeds %d available bytes", n, avail)
	}
	return pix[layout.HEADER_SIZE : layout.HEADER_SIZE+int(n)], nil
}
