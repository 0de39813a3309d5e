package block

import (
	"encoding/binary"

	"github.com/goopsie/texcore/pkg/texture"
)

// unpack565 splits a little-endian RGB565 colour into 8-bit channels,
// normalizing each field by its max value rather than bit-replicating.
func unpack565(v uint16) (r, g, b uint8) {
	r5 := (v >> 11) & 0x1F
	g6 := (v >> 5) & 0x3F
	b5 := v & 0x1F
	r = uint8((uint32(r5)*255 + 15) / 31)
	g = uint8((uint32(g6)*255 + 31) / 63)
	b = uint8((uint32(b5)*255 + 15) / 31)
	return
}

func lerp8(a, b uint8, num, den uint32) uint8 {
	return uint8((uint32(a)*(den-num) + uint32(b)*num) / den)
}

// colourIndices unpacks the 32-bit little-endian 2-bit index field shared
// by BC1/BC2/BC3's colour block into 16 values, texel 0 = top-left.
func colourIndices(idx uint32) [16]uint8 {
	var out [16]uint8
	for i := 0; i < 16; i++ {
		out[i] = uint8((idx >> (2 * i)) & 0x3)
	}
	return out
}

func decodeBC1ColourBlock(blk []byte) ([4]texture.RGBA8, bool) {
	c0 := binary.LittleEndian.Uint16(blk[0:2])
	c1 := binary.LittleEndian.Uint16(blk[2:4])
	r0, g0, b0 := unpack565(c0)
	r1, g1, b1 := unpack565(c1)
	var colours [4]texture.RGBA8
	colours[0] = texture.RGBA8{R: r0, G: g0, B: b0, A: 255}
	colours[1] = texture.RGBA8{R: r1, G: g1, B: b1, A: 255}
	if c0 > c1 {
		colours[2] = texture.RGBA8{R: lerp8(r0, r1, 1, 3), G: lerp8(g0, g1, 1, 3), B: lerp8(b0, b1, 1, 3), A: 255}
		colours[3] = texture.RGBA8{R: lerp8(r0, r1, 2, 3), G: lerp8(g0, g1, 2, 3), B: lerp8(b0, b1, 2, 3), A: 255}
		return colours, false
	}
	colours[2] = texture.RGBA8{R: lerp8(r0, r1, 1, 2), G: lerp8(g0, g1, 1, 2), B: lerp8(b0, b1, 1, 2), A: 255}
	colours[3] = texture.RGBA8{}
	return colours, true
}

func decodeBC1Block(blk []byte) [16]texture.RGBA8 {
	colours, _ := decodeBC1ColourBlock(blk)
	idx := colourIndices(binary.LittleEndian.Uint32(blk[4:8]))
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		tile[i] = colours[idx[i]]
	}
	return tile
}

// decodeBC2AlphaColourBlock decodes BC2/BC3's colour half using the
// always-4-colour-opaque interpolation (no punch-through branch).
func decodeBC2AlphaColourBlock(blk []byte) [4]texture.RGBA8 {
	c0 := binary.LittleEndian.Uint16(blk[0:2])
	c1 := binary.LittleEndian.Uint16(blk[2:4])
	r0, g0, b0 := unpack565(c0)
	r1, g1, b1 := unpack565(c1)
	return [4]texture.RGBA8{
		{R: r0, G: g0, B: b0, A: 255},
		{R: r1, G: g1, B: b1, A: 255},
		{R: lerp8(r0, r1, 1, 3), G: lerp8(g0, g1, 1, 3), B: lerp8(b0, b1, 1, 3), A: 255},
		{R: lerp8(r0, r1, 2, 3), G: lerp8(g0, g1, 2, 3), B: lerp8(b0, b1, 2, 3), A: 255},
	}
}

func decodeBC2Block(blk []byte) [16]texture.RGBA8 {
	colours := decodeBC2AlphaColourBlock(blk[8:16])
	idx := colourIndices(binary.LittleEndian.Uint32(blk[12:16]))
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		nibble := (blk[i/2] >> ((uint(i) % 2) * 4)) & 0xF
		a := nibble*17 // 4-bit to 8-bit: v*17 == v<<4|v
		c := colours[idx[i]]
		c.A = a
		tile[i] = c
	}
	return tile
}

// interp8Values decodes a BC3/BC4-style 8-byte alpha/channel sub-block:
// two reference values followed by a 48-bit, 3-bit-per-texel index
// table, expanding to 8 candidate values and 16 texel values.
func interp8Values(v0, v1 uint8) [8]uint8 {
	var out [8]uint8
	out[0], out[1] = v0, v1
	if v0 > v1 {
		for i := uint32(1); i <= 6; i++ {
			out[1+i] = uint8((uint32(v0)*(6-i) + uint32(v1)*i) / 6)
		}
	} else {
		for i := uint32(1); i <= 4; i++ {
			out[1+i] = uint8((uint32(v0)*(4-i) + uint32(v1)*i) / 4)
		}
		out[6] = 0
		out[7] = 255
	}
	return out
}

func read48LE(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 | uint64(b[4])<<32 | uint64(b[5])<<40
}

func decode3BitIndices(bits uint64) [16]uint8 {
	var out [16]uint8
	for i := 0; i < 16; i++ {
		out[i] = uint8((bits >> (3 * i)) & 0x7)
	}
	return out
}

func decodeBC3AlphaChannel(blk []byte) [16]uint8 {
	values := interp8Values(blk[0], blk[1])
	idx := decode3BitIndices(read48LE(blk[2:8]))
	var out [16]uint8
	for i := 0; i < 16; i++ {
		out[i] = values[idx[i]]
	}
	return out
}

func decodeBC3Block(blk []byte) [16]texture.RGBA8 {
	alpha := decodeBC3AlphaChannel(blk[0:8])
	colours := decodeBC2AlphaColourBlock(blk[8:16])
	idx := colourIndices(binary.LittleEndian.Uint32(blk[12:16]))
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		c := colours[idx[i]]
		c.A = alpha[i]
		tile[i] = c
	}
	return tile
}

// rebaseSigned maps a signed 8-bit single-channel value (-128..127) into
// unsigned 0..255 by adding 128.
func rebaseSigned(v uint8) uint8 {
	return uint8(int16(int8(v)) + 128)
}

func decodeBC4Channel(blk []byte, signed bool) [16]uint8 {
	v0, v1 := blk[0], blk[1]
	if signed {
		vals := interp8SignedValues(int8(v0), int8(v1))
		idx := decode3BitIndices(read48LE(blk[2:8]))
		var out [16]uint8
		for i := 0; i < 16; i++ {
			out[i] = rebaseSigned(uint8(vals[idx[i]]))
		}
		return out
	}
	return decodeBC3AlphaChannel(blk)
}

func interp8SignedValues(v0, v1 int8) [8]int8 {
	var out [8]int8
	out[0], out[1] = v0, v1
	if v0 > v1 {
		for i := int32(1); i <= 6; i++ {
			out[1+i] = int8((int32(v0)*(6-i) + int32(v1)*i) / 6)
		}
	} else {
		for i := int32(1); i <= 4; i++ {
			out[1+i] = int8((int32(v0)*(4-i) + int32(v1)*i) / 4)
		}
		out[6] = -127
		out[7] = 127
	}
	return out
}

func decodeBC4Block(blk []byte, signed bool) [16]texture.RGBA8 {
	r := decodeBC4Channel(blk, signed)
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		tile[i] = texture.RGBA8{R: r[i], A: 255}
	}
	return tile
}

func decodeBC5Block(blk []byte, signed bool) [16]texture.RGBA8 {
	r := decodeBC4Channel(blk[0:8], signed)
	g := decodeBC4Channel(blk[8:16], signed)
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		tile[i] = texture.RGBA8{R: r[i], G: g[i], A: 255}
	}
	return tile
}
