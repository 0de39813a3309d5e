package block

import "github.com/goopsie/texcore/pkg/texture"

// etcModifiers is the 8-row intensity modifier table shared by ETC1's
// individual and differential modes (Ericsson Texture Compression spec).
var etcModifiers = [8][4]int32{
	{2, 8, -2, -8},
	{5, 17, -5, -17},
	{9, 29, -9, -29},
	{13, 42, -13, -42},
	{18, 60, -18, -60},
	{24, 80, -24, -80},
	{33, 106, -33, -106},
	{47, 183, -47, -183},
}

// etcDistances is ETC2's T/H-mode paint-colour distance table.
var etcDistances = [8]int32{3, 6, 11, 16, 23, 32, 41, 64}

func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// eacModifiers is the 16-row, 8-column modifier table shared by EAC R11/
// RG11 single-channel blocks and ETC2's explicit-alpha block.
var eacModifiers = [16][8]int32{
	{-3, -6, -9, -15, 2, 5, 8, 14},
	{-3, -7, -10, -13, 2, 6, 9, 12},
	{-2, -5, -8, -13, 1, 4, 7, 12},
	{-2, -4, -6, -13, 1, 3, 5, 12},
	{-3, -6, -8, -12, 2, 5, 7, 11},
	{-3, -7, -9, -11, 2, 6, 8, 10},
	{-4, -7, -8, -11, 3, 6, 7, 10},
	{-3, -5, -8, -11, 2, 4, 7, 10},
	{-2, -6, -8, -10, 1, 5, 7, 9},
	{-2, -5, -8, -10, 1, 4, 7, 9},
	{-2, -4, -8, -10, 1, 3, 7, 9},
	{-2, -5, -7, -10, 1, 4, 6, 9},
	{-3, -4, -7, -10, 2, 3, 6, 9},
	{-1, -2, -3, -10, 0, 1, 2, 9},
	{-4, -6, -8, -9, 3, 5, 7, 8},
	{-3, -5, -7, -9, 2, 4, 6, 8},
}

func extend4(v uint8) uint8 { return v<<4 | v }
func extend5(v uint8) uint8 { return v<<3 | v>>2 }
func extend6(v uint8) uint8 { return v<<2 | v>>4 }
func extend7(v uint8) uint8 { return v<<1 | v>>6 }

// etcPixelIndices unpacks the two 16-bit index planes of an ETC colour
// block: 2-bit selector per texel, texel order column-major (p = x*4+y).
func etcPixelIndices(blk []byte) [16]uint8 {
	msb := uint32(blk[4])<<8 | uint32(blk[5])
	lsb := uint32(blk[6])<<8 | uint32(blk[7])
	var out [16]uint8
	for p := 0; p < 16; p++ {
		m := (msb >> uint(p)) & 1
		l := (lsb >> uint(p)) & 1
		out[p] = uint8(m<<1 | l)
	}
	return out
}

// decodeETCIndividualDiff decodes an ETC1-style individual- or
// differential-mode colour block. punch selects punch-through-alpha
// semantics: the diff bit has been repurposed as the opaque flag, so the
// block is always laid out differentially, index 2 is transparent when
// opaque is clear, and modifier index 0 contributes nothing.
func decodeETCIndividualDiff(blk []byte, punch, opaque bool) [16]texture.RGBA8 {
	var c1, c2 [3]uint8
	diff := punch || blk[3]&0x2 != 0
	if !diff {
		c1 = [3]uint8{extend4(blk[0] >> 4), extend4(blk[1] >> 4), extend4(blk[2] >> 4)}
		c2 = [3]uint8{extend4(blk[0] & 0xF), extend4(blk[1] & 0xF), extend4(blk[2] & 0xF)}
	} else {
		r1, g1, b1 := blk[0]>>3, blk[1]>>3, blk[2]>>3
		// ETC1 leaves overflowing deltas undefined (ETC2 escapes to
		// T/H/planar before reaching here); clamp them.
		r2 := clampInt32(int32(r1)+int32(int8(blk[0]<<5)>>5), 0, 31)
		g2 := clampInt32(int32(g1)+int32(int8(blk[1]<<5)>>5), 0, 31)
		b2 := clampInt32(int32(b1)+int32(int8(blk[2]<<5)>>5), 0, 31)
		c1 = [3]uint8{extend5(r1), extend5(g1), extend5(b1)}
		c2 = [3]uint8{extend5(uint8(r2)), extend5(uint8(g2)), extend5(uint8(b2))}
	}
	table1 := int(blk[3]>>5) & 0x7
	table2 := int(blk[3]>>2) & 0x7
	flip := blk[3]&0x1 != 0
	idx := etcPixelIndices(blk)

	var tile [16]texture.RGBA8
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			modIdx := idx[x*4+y]
			if punch && !opaque && modIdx == 2 {
				tile[y*4+x] = texture.RGBA8{}
				continue
			}
			var subblock2 bool
			if flip {
				subblock2 = y >= 2
			} else {
				subblock2 = x >= 2
			}
			base := c1
			table := table1
			if subblock2 {
				base = c2
				table = table2
			}
			mod := etcModifiers[table][modIdx]
			if punch && !opaque && modIdx == 0 {
				mod = 0
			}
			tile[y*4+x] = texture.RGBA8{
				R: clampByte(int32(base[0]) + mod),
				G: clampByte(int32(base[1]) + mod),
				B: clampByte(int32(base[2]) + mod),
				A: 255,
			}
		}
	}
	return tile
}

func decodeETC1Block(blk []byte) [16]texture.RGBA8 {
	return decodeETCIndividualDiff(blk, false, true)
}

// paintTile fills the tile from four paint colours via the 2-bit texel
// selectors, the shared final step of ETC2's T and H modes. In
// punch-through blocks with the opaque bit clear, selector 2 is
// transparent black.
func paintTile(blk []byte, paints [4]texture.RGBA8, punch, opaque bool) [16]texture.RGBA8 {
	idx := etcPixelIndices(blk)
	var tile [16]texture.RGBA8
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			sel := idx[x*4+y]
			if punch && !opaque && sel == 2 {
				tile[y*4+x] = texture.RGBA8{}
				continue
			}
			tile[y*4+x] = paints[sel]
		}
	}
	return tile
}

func decodeETCTBlock(blk []byte, punch, opaque bool) [16]texture.RGBA8 {
	r1 := extend4(blk[0]>>1&0xC | blk[0]&0x3)
	g1 := extend4(blk[1] >> 4)
	b1 := extend4(blk[1] & 0xF)
	r2 := extend4(blk[2] >> 4)
	g2 := extend4(blk[2] & 0xF)
	b2 := extend4(blk[3] >> 4)
	d := etcDistances[(blk[3]>>1)&0x6|blk[3]&0x1]

	paints := [4]texture.RGBA8{
		{R: r1, G: g1, B: b1, A: 255},
		{R: clampByte(int32(r2) + d), G: clampByte(int32(g2) + d), B: clampByte(int32(b2) + d), A: 255},
		{R: r2, G: g2, B: b2, A: 255},
		{R: clampByte(int32(r2) - d), G: clampByte(int32(g2) - d), B: clampByte(int32(b2) - d), A: 255},
	}
	return paintTile(blk, paints, punch, opaque)
}

func decodeETCHBlock(blk []byte, punch, opaque bool) [16]texture.RGBA8 {
	r1 := extend4((blk[0] >> 3) & 0xF)
	g1 := extend4(blk[0]&0x7<<1 | blk[1]>>4&0x1)
	b1 := extend4(blk[1]>>3&0x1<<3 | blk[1]&0x3<<1 | blk[2]>>7)
	r2 := extend4((blk[2] >> 3) & 0xF)
	g2 := extend4(blk[2]&0x7<<1 | blk[3]>>7)
	b2 := extend4((blk[3] >> 3) & 0xF)

	dIdx := blk[3]&0x4 | blk[3]&0x1<<1
	if uint32(r1)<<16|uint32(g1)<<8|uint32(b1) >= uint32(r2)<<16|uint32(g2)<<8|uint32(b2) {
		dIdx |= 1
	}
	d := etcDistances[dIdx]

	paints := [4]texture.RGBA8{
		{R: clampByte(int32(r1) + d), G: clampByte(int32(g1) + d), B: clampByte(int32(b1) + d), A: 255},
		{R: clampByte(int32(r1) - d), G: clampByte(int32(g1) - d), B: clampByte(int32(b1) - d), A: 255},
		{R: clampByte(int32(r2) + d), G: clampByte(int32(g2) + d), B: clampByte(int32(b2) + d), A: 255},
		{R: clampByte(int32(r2) - d), G: clampByte(int32(g2) - d), B: clampByte(int32(b2) - d), A: 255},
	}
	return paintTile(blk, paints, punch, opaque)
}

// decodeETCPlanarBlock decodes ETC2's planar mode: three RGB676 corner
// colours (origin, horizontal, vertical) bilinearly extrapolated across
// the 4x4 tile. Planar blocks are always fully opaque, even in the
// punch-through format.
func decodeETCPlanarBlock(blk []byte) [16]texture.RGBA8 {
	r0 := extend6((blk[0] >> 1) & 0x3F)
	g0 := extend7(blk[0]&0x1<<6 | blk[1]>>1&0x3F)
	b0 := extend6(blk[1]&0x1<<5 | blk[2]>>3&0x3<<3 | blk[2]&0x3<<1 | blk[3]>>7)
	rh := extend6(blk[3]>>2&0x1F<<1 | blk[3]&0x1)
	gh := extend7((blk[4] >> 1) & 0x7F)
	bh := extend6(blk[4]&0x1<<5 | blk[5]>>3&0x1F)
	rv := extend6(blk[5]&0x7<<3 | blk[6]>>5&0x7)
	gv := extend7(blk[6]&0x1F<<2 | blk[7]>>6&0x3)
	bv := extend6(blk[7] & 0x3F)

	plane := func(o, h, v uint8, x, y int32) uint8 {
		return clampByte((x*(int32(h)-int32(o)) + y*(int32(v)-int32(o)) + 4*int32(o) + 2) >> 2)
	}
	var tile [16]texture.RGBA8
	for y := int32(0); y < 4; y++ {
		for x := int32(0); x < 4; x++ {
			tile[y*4+x] = texture.RGBA8{
				R: plane(r0, rh, rv, x, y),
				G: plane(g0, gh, gv, x, y),
				B: plane(b0, bh, bv, x, y),
				A: 255,
			}
		}
	}
	return tile
}

// etcOverflowMode classifies a differential-layout ETC2 block by which
// base-colour delta overflows its 5-bit range: red selects T mode, green
// H mode, blue planar; no overflow is the plain differential block.
func etcOverflowMode(blk []byte) int {
	check := func(b byte) bool {
		v := int32(b>>3) + int32(int8(b<<5)>>5)
		return v < 0 || v > 31
	}
	switch {
	case check(blk[0]):
		return 1
	case check(blk[1]):
		return 2
	case check(blk[2]):
		return 3
	default:
		return 0
	}
}

func decodeETC2RGBBlock(blk []byte) [16]texture.RGBA8 {
	if blk[3]&0x2 == 0 {
		// Individual mode, identical to ETC1.
		return decodeETCIndividualDiff(blk, false, true)
	}
	switch etcOverflowMode(blk) {
	case 1:
		return decodeETCTBlock(blk, false, true)
	case 2:
		return decodeETCHBlock(blk, false, true)
	case 3:
		return decodeETCPlanarBlock(blk)
	default:
		return decodeETCIndividualDiff(blk, false, true)
	}
}

func decodeETC2RGBABlock(blk []byte) [16]texture.RGBA8 {
	alpha := decodeEACChannel(blk[0:8], false)
	rgb := decodeETC2RGBBlock(blk[8:16])
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		rgb[i].A = alpha[i]
		tile[i] = rgb[i]
	}
	return tile
}

// decodeETC2RGBA1Block decodes the punch-through-alpha ETC2 variant. The
// bit that selects individual vs differential mode in plain ETC2 is the
// opaque flag here, so the block always carries the differential layout
// and its T/H/planar overflow escapes.
func decodeETC2RGBA1Block(blk []byte) [16]texture.RGBA8 {
	opaque := blk[3]&0x2 != 0
	switch etcOverflowMode(blk) {
	case 1:
		return decodeETCTBlock(blk, true, opaque)
	case 2:
		return decodeETCHBlock(blk, true, opaque)
	case 3:
		return decodeETCPlanarBlock(blk)
	default:
		return decodeETCIndividualDiff(blk, true, opaque)
	}
}

// decodeEACChannel decodes one EAC-coded 11-bit channel to 8 bits:
// unsigned values widen to u16 and scale with round(255*v/65535); signed
// values map to a saturating float and remap via (v+1)/2 before scaling.
func decodeEACChannel(blk []byte, signed bool) [16]uint8 {
	multiplier := int32(blk[1]>>4) & 0xF
	table := int(blk[1] & 0xF)
	idx := decode3BitIndices(read48LE(blk[2:8]))

	var out [16]uint8
	if !signed {
		base := int32(blk[0])*8 + 4
		for i := 0; i < 16; i++ {
			mod := eacModifiers[table][idx[i]]
			v11 := clampInt32(base+mod*multiplier*8, 0, 2047)
			v16 := v11 << 5
			out[i] = uint8((v16*255 + 32767) / 65535)
		}
		return out
	}

	base := int32(int8(blk[0])) * 8
	for i := 0; i < 16; i++ {
		mod := eacModifiers[table][idx[i]]
		v11 := clampInt32(base+mod*multiplier*8, -1023, 1023)
		f := float64(v11) / 1023.0
		f = (f + 1) / 2
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		out[i] = uint8(f*255 + 0.5)
	}
	return out
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func decodeEACR11Tile(blk []byte, signed bool) [16]texture.RGBA8 {
	r := decodeEACChannel(blk, signed)
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		tile[i] = texture.RGBA8{R: r[i], A: 255}
	}
	return tile
}

func decodeEACRG11Tile(blk []byte, signed bool) [16]texture.RGBA8 {
	r := decodeEACChannel(blk[0:8], signed)
	g := decodeEACChannel(blk[8:16], signed)
	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		tile[i] = texture.RGBA8{R: r[i], G: g[i], A: 255}
	}
	return tile
}
