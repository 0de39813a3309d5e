package block

import (
	"math"

	"github.com/goopsie/texcore/pkg/texture"
)

// BC6H stores two (or four, two-region) 16-bit-float endpoints whose
// per-channel bits are scattered through the 128-bit block in a layout
// that differs for each of the 14 modes. Each mode is described here as
// the sequence of destination field fragments its header bits fill, in
// bitstream order, following Microsoft's published per-mode bit tables.

// Endpoint field registers: w/x are region 0's two endpoints, y/z are
// region 1's (two-region modes only).
const (
	bc6RW = iota
	bc6RX
	bc6RY
	bc6RZ
	bc6GW
	bc6GX
	bc6GY
	bc6GZ
	bc6BW
	bc6BX
	bc6BY
	bc6BZ
)

// bc6Op writes count bits into field dst starting at bit, ascending, or
// descending when down is set (mode 15 stores its delta-extension bits
// MSB-first).
type bc6Op struct {
	dst   uint8
	bit   uint8
	count uint8
	down  bool
}

func seq(dst, from, count int) bc6Op {
	return bc6Op{dst: uint8(dst), bit: uint8(from), count: uint8(count)}
}

func one(dst, bit int) bc6Op {
	return bc6Op{dst: uint8(dst), bit: uint8(bit), count: 1}
}

func rev(dst, from, count int) bc6Op {
	return bc6Op{dst: uint8(dst), bit: uint8(from), count: uint8(count), down: true}
}

type bc6ModeDesc struct {
	twoRegion   bool
	transformed bool
	epb         int    // endpoint precision in bits
	deltaBits   [3]int // delta field width per channel (transformed only)
	ops         []bc6Op
}

// Keyed by the mode value: 2-bit values 0-1, then 5-bit values. Reserved
// values (19, 23, 27, 31) are absent and decode to black.
var bc6Modes = map[uint32]bc6ModeDesc{
	0: {twoRegion: true, transformed: true, epb: 10, deltaBits: [3]int{5, 5, 5}, ops: []bc6Op{
		one(bc6GY, 4), one(bc6BY, 4), one(bc6BZ, 4),
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 5), one(bc6GZ, 4), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 5), one(bc6BZ, 0), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 5), one(bc6BZ, 1), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 5), one(bc6BZ, 2),
		seq(bc6RZ, 0, 5), one(bc6BZ, 3),
	}},
	1: {twoRegion: true, transformed: true, epb: 7, deltaBits: [3]int{6, 6, 6}, ops: []bc6Op{
		one(bc6GY, 5), one(bc6GZ, 4), one(bc6GZ, 5),
		seq(bc6RW, 0, 7), one(bc6BZ, 0), one(bc6BZ, 1), one(bc6BY, 4),
		seq(bc6GW, 0, 7), one(bc6BY, 5), one(bc6BZ, 2), one(bc6GY, 4),
		seq(bc6BW, 0, 7), one(bc6BZ, 3), one(bc6BZ, 5), one(bc6BZ, 4),
		seq(bc6RX, 0, 6), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 6), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 6), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 6), seq(bc6RZ, 0, 6),
	}},
	2: {twoRegion: true, transformed: true, epb: 11, deltaBits: [3]int{5, 4, 4}, ops: []bc6Op{
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 5), one(bc6RW, 10), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 4), one(bc6GW, 10), one(bc6BZ, 0), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 4), one(bc6BW, 10), one(bc6BZ, 1), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 5), one(bc6BZ, 2),
		seq(bc6RZ, 0, 5), one(bc6BZ, 3),
	}},
	6: {twoRegion: true, transformed: true, epb: 11, deltaBits: [3]int{4, 5, 4}, ops: []bc6Op{
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 4), one(bc6RW, 10), one(bc6GZ, 4), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 5), one(bc6GW, 10), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 4), one(bc6BW, 10), one(bc6BZ, 1), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 4), one(bc6BZ, 0), one(bc6BZ, 2),
		seq(bc6RZ, 0, 4), one(bc6GY, 4), one(bc6BZ, 3),
	}},
	10: {twoRegion: true, transformed: true, epb: 11, deltaBits: [3]int{4, 4, 5}, ops: []bc6Op{
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 4), one(bc6RW, 10), one(bc6BY, 4), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 4), one(bc6GW, 10), one(bc6BZ, 0), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 5), one(bc6BW, 10), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 4), one(bc6BZ, 1), one(bc6BZ, 2),
		seq(bc6RZ, 0, 4), one(bc6BZ, 4), one(bc6BZ, 3),
	}},
	14: {twoRegion: true, transformed: true, epb: 9, deltaBits: [3]int{5, 5, 5}, ops: []bc6Op{
		seq(bc6RW, 0, 9), one(bc6BY, 4),
		seq(bc6GW, 0, 9), one(bc6GY, 4),
		seq(bc6BW, 0, 9), one(bc6BZ, 4),
		seq(bc6RX, 0, 5), one(bc6GZ, 4), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 5), one(bc6BZ, 0), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 5), one(bc6BZ, 1), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 5), one(bc6BZ, 2),
		seq(bc6RZ, 0, 5), one(bc6BZ, 3),
	}},
	18: {twoRegion: true, transformed: true, epb: 8, deltaBits: [3]int{6, 5, 5}, ops: []bc6Op{
		seq(bc6RW, 0, 8), one(bc6GZ, 4), one(bc6BY, 4),
		seq(bc6GW, 0, 8), one(bc6BZ, 2), one(bc6GY, 4),
		seq(bc6BW, 0, 8), one(bc6BZ, 3), one(bc6BZ, 4),
		seq(bc6RX, 0, 6), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 5), one(bc6BZ, 0), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 5), one(bc6BZ, 1), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 6), seq(bc6RZ, 0, 6),
	}},
	22: {twoRegion: true, transformed: true, epb: 8, deltaBits: [3]int{5, 6, 5}, ops: []bc6Op{
		seq(bc6RW, 0, 8), one(bc6BZ, 0), one(bc6BY, 4),
		seq(bc6GW, 0, 8), one(bc6GY, 5), one(bc6GY, 4),
		seq(bc6BW, 0, 8), one(bc6GZ, 5), one(bc6BZ, 4),
		seq(bc6RX, 0, 5), one(bc6GZ, 4), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 6), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 5), one(bc6BZ, 1), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 5), one(bc6BZ, 2),
		seq(bc6RZ, 0, 5), one(bc6BZ, 3),
	}},
	26: {twoRegion: true, transformed: true, epb: 8, deltaBits: [3]int{5, 5, 6}, ops: []bc6Op{
		seq(bc6RW, 0, 8), one(bc6BZ, 1), one(bc6BY, 4),
		seq(bc6GW, 0, 8), one(bc6BY, 5), one(bc6GY, 4),
		seq(bc6BW, 0, 8), one(bc6BZ, 5), one(bc6BZ, 4),
		seq(bc6RX, 0, 5), one(bc6GZ, 4), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 5), one(bc6BZ, 0), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 6), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 5), one(bc6BZ, 2),
		seq(bc6RZ, 0, 5), one(bc6BZ, 3),
	}},
	30: {twoRegion: true, epb: 6, ops: []bc6Op{
		seq(bc6RW, 0, 6), one(bc6GZ, 4), one(bc6BZ, 0), one(bc6BZ, 1), one(bc6BY, 4),
		seq(bc6GW, 0, 6), one(bc6GY, 5), one(bc6BY, 5), one(bc6BZ, 2), one(bc6GY, 4),
		seq(bc6BW, 0, 6), one(bc6GZ, 5), one(bc6BZ, 3), one(bc6BZ, 5), one(bc6BZ, 4),
		seq(bc6RX, 0, 6), seq(bc6GY, 0, 4),
		seq(bc6GX, 0, 6), seq(bc6GZ, 0, 4),
		seq(bc6BX, 0, 6), seq(bc6BY, 0, 4),
		seq(bc6RY, 0, 6), seq(bc6RZ, 0, 6),
	}},
	3: {epb: 10, ops: []bc6Op{
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 10), seq(bc6GX, 0, 10), seq(bc6BX, 0, 10),
	}},
	7: {transformed: true, epb: 11, deltaBits: [3]int{9, 9, 9}, ops: []bc6Op{
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 9), one(bc6RW, 10),
		seq(bc6GX, 0, 9), one(bc6GW, 10),
		seq(bc6BX, 0, 9), one(bc6BW, 10),
	}},
	11: {transformed: true, epb: 12, deltaBits: [3]int{8, 8, 8}, ops: []bc6Op{
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 8), one(bc6RW, 10), one(bc6RW, 11),
		seq(bc6GX, 0, 8), one(bc6GW, 10), one(bc6GW, 11),
		seq(bc6BX, 0, 8), one(bc6BW, 10), one(bc6BW, 11),
	}},
	15: {transformed: true, epb: 16, deltaBits: [3]int{4, 4, 4}, ops: []bc6Op{
		seq(bc6RW, 0, 10), seq(bc6GW, 0, 10), seq(bc6BW, 0, 10),
		seq(bc6RX, 0, 4), rev(bc6RW, 15, 6),
		seq(bc6GX, 0, 4), rev(bc6GW, 15, 6),
		seq(bc6BX, 0, 4), rev(bc6BW, 15, 6),
	}},
}

func signExtend(v uint32, bits int) int32 {
	shift := uint(32 - bits)
	return int32(v<<shift) >> shift
}

// bc6Unquantize maps a raw endpoint channel to the 17-bit intermediate
// range the weight interpolation runs in.
func bc6Unquantize(v int32, prec int, signed bool) int32 {
	if !signed {
		if prec >= 15 {
			return v
		}
		switch {
		case v == 0:
			return 0
		case v == int32(1)<<uint(prec)-1:
			return 0xFFFF
		default:
			return (v<<16 + 0x8000) >> uint(prec)
		}
	}
	if prec >= 16 {
		return v
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var q int32
	switch {
	case v == 0:
		q = 0
	case v >= int32(1)<<uint(prec-1)-1:
		q = 0x7FFF
	default:
		q = (v<<15 + 0x4000) >> uint(prec-1)
	}
	if neg {
		return -q
	}
	return q
}

// bc6Finish converts an interpolated channel to half-float bits.
func bc6Finish(v int32, signed bool) uint16 {
	if !signed {
		return uint16(v * 31 >> 6)
	}
	v = v * 31 >> 5
	if v < 0 {
		return 0x8000 | uint16(-v)
	}
	return uint16(v)
}

func halfBitsToFloat(h uint16) float32 {
	sign := uint32(h>>15) << 31
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF
	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal half: renormalize.
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3FF
		exp++
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	case 31:
		return math.Float32frombits(sign | 0xFF<<23 | mant<<13)
	default:
		return math.Float32frombits(sign | (exp+112)<<23 | mant<<13)
	}
}

// decodeBC6HBlock decodes one 16-byte BC6H block to 16 RGBAf pixels.
func decodeBC6HBlock(blk []byte, signed bool) [16]texture.RGBAf {
	r := &bitReader{data: blk}
	mode := r.read(2)
	if mode >= 2 {
		mode |= r.read(3) << 2
	}
	desc, ok := bc6Modes[mode]
	if !ok {
		// Reserved mode: opaque black, per the format's required
		// decoder behaviour.
		var tile [16]texture.RGBAf
		for i := range tile {
			tile[i].A = 1
		}
		return tile
	}

	var field [12]uint32
	for _, op := range desc.ops {
		for i := 0; i < int(op.count); i++ {
			bit := int(op.bit) + i
			if op.down {
				bit = int(op.bit) - i
			}
			field[op.dst] |= r.read(1) << uint(bit)
		}
	}

	// Channel-major endpoint view: ep[region*2+end][channel].
	numEndpoints := 2
	if desc.twoRegion {
		numEndpoints = 4
	}
	var ep [4][3]int32
	base := [3]uint32{field[bc6RW], field[bc6GW], field[bc6BW]}
	raw := [4][3]uint32{
		{field[bc6RW], field[bc6GW], field[bc6BW]},
		{field[bc6RX], field[bc6GX], field[bc6BX]},
		{field[bc6RY], field[bc6GY], field[bc6BY]},
		{field[bc6RZ], field[bc6GZ], field[bc6BZ]},
	}
	mask := int32(1)<<uint(desc.epb) - 1
	for c := 0; c < 3; c++ {
		w := int32(base[c])
		if signed {
			w = signExtend(base[c], desc.epb)
		}
		ep[0][c] = w
		for e := 1; e < numEndpoints; e++ {
			v := int32(raw[e][c])
			if desc.transformed {
				d := signExtend(raw[e][c], desc.deltaBits[c])
				v = (w + d) & mask
				if signed {
					v = signExtend(uint32(v), desc.epb)
				}
			} else if signed {
				v = signExtend(raw[e][c], desc.epb)
			}
			ep[e][c] = v
		}
		for e := 0; e < numEndpoints; e++ {
			ep[e][c] = bc6Unquantize(ep[e][c], desc.epb, signed)
		}
	}

	partition := 0
	idxBits := 4
	numSubsets := 1
	if desc.twoRegion {
		partition = int(r.read(5))
		idxBits = 3
		numSubsets = 2
	}
	weights := bcWeights(idxBits)

	var tile [16]texture.RGBAf
	for i := 0; i < 16; i++ {
		bits := idxBits
		if bcIsAnchor(numSubsets, partition, i) {
			bits--
		}
		w := weights[r.read(bits)]
		subset := bcSubset(numSubsets, partition, i)
		a, b := ep[subset*2], ep[subset*2+1]
		var px texture.RGBAf
		for c := 0; c < 3; c++ {
			interp := (a[c]*int32(64-w) + b[c]*int32(w) + 32) >> 6
			f := halfBitsToFloat(bc6Finish(interp, signed))
			switch c {
			case 0:
				px.R = f
			case 1:
				px.G = f
			case 2:
				px.B = f
			}
		}
		px.A = 1
		tile[i] = px
	}
	return tile
}
