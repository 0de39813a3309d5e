package pvrtc

import "encoding/binary"

// pvrtcBlock is one parsed 64-bit PVRTC1 block: two representative
// colours (A, B), the modulation-mode flag, and a per-texel blend weight
// in eighths telling the decoder how far to move from the neighbouring
// blocks' interpolated A towards their interpolated B.
type pvrtcBlock struct {
	colorA rgba8888
	colorB rgba8888
	// weight, in 0..8 eighths, and the punch-through flag, indexed [y][x]
	// within the block footprint.
	weight [4][8]uint8
	punch  [4][8]bool
}

type rgba8888 struct {
	r, g, b, a int
}

// parseBlock splits a little-endian 64-bit PVRTC1 block into its colour
// and modulation fields: the low 32 bits hold the modulation data, the
// high 32 bits the colour data (colour B in the upper half with its
// opaque flag at bit 31, colour A in bits 1-15 with its opaque flag at
// bit 15, and the modulation-mode flag at bit 0).
func parseBlock(data []byte, mode Mode) pvrtcBlock {
	modWord := binary.LittleEndian.Uint32(data[0:4])
	colorWord := binary.LittleEndian.Uint32(data[4:8])

	var blk pvrtcBlock
	blk.colorA = decodeColorA(colorWord)
	blk.colorB = decodeColorB(colorWord)
	modMode := colorWord&0x1 != 0

	if mode == Mode2BPP {
		unpackModulation2BPP(&blk, modWord, modMode)
	} else {
		unpackModulation4BPP(&blk, modWord, modMode)
	}
	return blk
}

// unpackModulation4BPP reads sixteen 2-bit modulation values. With the
// mode flag clear the four values mean 0, 3, 5, and 8 eighths; with it
// set they mean 0, 4, 4-with-punch-through, and 8.
func unpackModulation4BPP(blk *pvrtcBlock, modWord uint32, modMode bool) {
	weights := [4]uint8{0, 3, 5, 8}
	if modMode {
		weights = [4]uint8{0, 4, 4, 8}
	}
	for i := 0; i < 16; i++ {
		y, x := i/4, i%4
		m := modWord >> uint(2*i) & 0x3
		blk.weight[y][x] = weights[m]
		blk.punch[y][x] = modMode && m == 2
	}
}

// unpackModulation2BPP reads the 8x4 modulation grid. With the mode flag
// clear every texel carries one bit (fully A or fully B). With it set,
// 2-bit values sit on a checkerboard and the remaining texels average
// their stored neighbours.
func unpackModulation2BPP(blk *pvrtcBlock, modWord uint32, modMode bool) {
	if !modMode {
		for i := 0; i < 32; i++ {
			y, x := i/8, i%8
			if modWord>>uint(i)&0x1 != 0 {
				blk.weight[y][x] = 8
			}
		}
		return
	}

	// Checkerboard texels ((x+y) even) carry 2-bit values read in texel
	// order; the bit stream advances only on stored texels.
	weights := [4]uint8{0, 3, 5, 8}
	var stored [4][8]bool
	bit := uint(0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)&1 != 0 {
				continue
			}
			m := modWord >> bit & 0x3
			bit += 2
			blk.weight[y][x] = weights[m]
			blk.punch[y][x] = m == 2
			stored[y][x] = true
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if stored[y][x] {
				continue
			}
			var sum, n int
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx > 7 || ny < 0 || ny > 3 {
					continue
				}
				sum += int(blk.weight[ny][nx])
				n++
			}
			blk.weight[y][x] = uint8((sum + n/2) / n)
		}
	}
}

// decodeColorA unpacks colour A (bits 1-15): RGB554 when opaque, ARGB
// 3443 with punch-through alpha otherwise. Channels expand to 8 bits by
// bit replication.
func decodeColorA(colorWord uint32) rgba8888 {
	var c rgba8888
	if colorWord&0x8000 != 0 {
		c.r = expand5(int(colorWord>>10) & 0x1F)
		c.g = expand5(int(colorWord>>5) & 0x1F)
		c.b = expand4(int(colorWord>>1) & 0xF)
		c.a = 255
		return c
	}
	c.r = expand4(int(colorWord>>8) & 0xF)
	c.g = expand4(int(colorWord>>4) & 0xF)
	c.b = expand3(int(colorWord>>1) & 0x7)
	c.a = expand3(int(colorWord>>12) & 0x7)
	return c
}

// decodeColorB unpacks colour B (bits 16-31): RGB555 when opaque, ARGB
// 3443+1 more blue bit otherwise.
func decodeColorB(colorWord uint32) rgba8888 {
	var c rgba8888
	if colorWord&0x80000000 != 0 {
		c.r = expand5(int(colorWord>>26) & 0x1F)
		c.g = expand5(int(colorWord>>21) & 0x1F)
		c.b = expand5(int(colorWord>>16) & 0x1F)
		c.a = 255
		return c
	}
	c.r = expand4(int(colorWord>>24) & 0xF)
	c.g = expand4(int(colorWord>>20) & 0xF)
	c.b = expand4(int(colorWord>>16) & 0xF)
	c.a = expand3(int(colorWord>>28) & 0x7)
	return c
}

func expand3(v int) int { return v<<5 | v<<2 | v>>1 }
func expand4(v int) int { return v<<4 | v }
func expand5(v int) int { return v<<3 | v>>2 }
