package block

import "github.com/goopsie/texcore/pkg/texture"

// bc7Mode describes one of BC7's 8 block modes (Microsoft's published
// BC7 format). Modes 0-3 and 7 partition the block into 2 or 3 colour
// subsets selected by a 4- or 6-bit index into the shared 64-entry
// partition tables; modes 4-6 are single-subset, modes 4 and 5 with
// rotation and mode 4 with a selectable second index stream.
type bc7Mode struct {
	numSubsets  int
	partBits    int
	rotBits     int
	idxSelBit   bool
	colorBits   int
	alphaBits   int
	endpointPB  bool // one p-bit per endpoint
	sharedPB    bool // one p-bit per endpoint pair
	colorIdxLen int
	alphaIdxLen int
}

// alphaIdxLen is only set for modes 4 and 5, the two modes with a
// second, independently-streamed index table; every other mode shares
// one index stream between colour and alpha.
var bc7Modes = [8]bc7Mode{
	{numSubsets: 3, partBits: 4, colorBits: 4, endpointPB: true, colorIdxLen: 3},
	{numSubsets: 2, partBits: 6, colorBits: 6, sharedPB: true, colorIdxLen: 3},
	{numSubsets: 3, partBits: 6, colorBits: 5, colorIdxLen: 2},
	{numSubsets: 2, partBits: 6, colorBits: 7, endpointPB: true, colorIdxLen: 2},
	{numSubsets: 1, rotBits: 2, idxSelBit: true, colorBits: 5, alphaBits: 6, colorIdxLen: 2, alphaIdxLen: 3},
	{numSubsets: 1, rotBits: 2, colorBits: 7, alphaBits: 8, colorIdxLen: 2, alphaIdxLen: 2},
	{numSubsets: 1, colorBits: 7, alphaBits: 7, endpointPB: true, colorIdxLen: 4},
	{numSubsets: 2, partBits: 6, colorBits: 5, alphaBits: 5, endpointPB: true, colorIdxLen: 2},
}

type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) read(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		byteIdx := r.pos / 8
		bitIdx := uint(r.pos % 8)
		bit := (r.data[byteIdx] >> bitIdx) & 1
		v |= uint32(bit) << uint(i)
		r.pos++
	}
	return v
}

// expandToByte widens a bits-wide endpoint channel to 8 bits by shifting
// left and replicating the top bits into the vacated low bits.
func expandToByte(v uint32, bits int) uint8 {
	if bits >= 8 {
		return uint8(v)
	}
	v <<= uint(8 - bits)
	return uint8(v | v>>uint(bits))
}

func bc7Lerp(a, b uint8, w uint32) uint8 {
	return uint8((uint32(a)*(64-w) + uint32(b)*w + 32) >> 6)
}

func decodeBC7Block(blk []byte) [16]texture.RGBA8 {
	// Mode is the position of the first set bit, scanning from bit 0.
	mode := -1
	for i := 0; i < 8; i++ {
		if blk[0]&(1<<uint(i)) != 0 {
			mode = i
			break
		}
	}
	if mode < 0 {
		// Reserved/invalid encoding: transparent black.
		var tile [16]texture.RGBA8
		return tile
	}

	r := &bitReader{data: blk}
	r.read(mode + 1) // mode-select bits

	m := bc7Modes[mode]
	numEndpoints := m.numSubsets * 2

	partition := 0
	if m.partBits > 0 {
		partition = int(r.read(m.partBits))
	}
	rotation := 0
	if m.rotBits > 0 {
		rotation = int(r.read(m.rotBits))
	}
	idxSel := false
	if m.idxSelBit {
		idxSel = r.read(1) != 0
	}

	type endpoint struct{ r, g, b, a uint32 }
	endpoints := make([]endpoint, numEndpoints)
	for i := range endpoints {
		endpoints[i].r = r.read(m.colorBits)
	}
	for i := range endpoints {
		endpoints[i].g = r.read(m.colorBits)
	}
	for i := range endpoints {
		endpoints[i].b = r.read(m.colorBits)
	}
	if m.alphaBits > 0 {
		for i := range endpoints {
			endpoints[i].a = r.read(m.alphaBits)
		}
	}

	colorBits := m.colorBits
	alphaBits := m.alphaBits
	if m.endpointPB {
		for i := range endpoints {
			p := r.read(1)
			endpoints[i].r = endpoints[i].r<<1 | p
			endpoints[i].g = endpoints[i].g<<1 | p
			endpoints[i].b = endpoints[i].b<<1 | p
			if m.alphaBits > 0 {
				endpoints[i].a = endpoints[i].a<<1 | p
			}
		}
		colorBits++
		if m.alphaBits > 0 {
			alphaBits++
		}
	} else if m.sharedPB {
		for pair := 0; pair < numEndpoints/2; pair++ {
			p := r.read(1)
			for _, i := range []int{pair * 2, pair*2 + 1} {
				endpoints[i].r = endpoints[i].r<<1 | p
				endpoints[i].g = endpoints[i].g<<1 | p
				endpoints[i].b = endpoints[i].b<<1 | p
			}
		}
		colorBits++
	}

	colorRGBA := make([]texture.RGBA8, numEndpoints)
	for i, e := range endpoints {
		px := texture.RGBA8{
			R: expandToByte(e.r, colorBits),
			G: expandToByte(e.g, colorBits),
			B: expandToByte(e.b, colorBits),
			A: 255,
		}
		if m.alphaBits > 0 {
			px.A = expandToByte(e.a, alphaBits)
		}
		colorRGBA[i] = px
	}

	// Index streams. The bitstream order is fixed (colorIdxLen stream
	// first); mode 4's index-selection bit only swaps which stream drives
	// colour vs alpha afterwards. Each subset's anchor texel stores one
	// fewer bit (its MSB is implicitly 0).
	var streamA, streamB [16]uint32
	for i := 0; i < 16; i++ {
		bits := m.colorIdxLen
		if bcIsAnchor(m.numSubsets, partition, i) {
			bits--
		}
		streamA[i] = r.read(bits)
	}
	if m.alphaIdxLen > 0 {
		for i := 0; i < 16; i++ {
			bits := m.alphaIdxLen
			if i == 0 {
				bits--
			}
			streamB[i] = r.read(bits)
		}
	}

	colorIdx, alphaIdx := streamA, streamA
	colorIdxLen, alphaIdxLen := m.colorIdxLen, m.colorIdxLen
	if m.alphaIdxLen > 0 {
		alphaIdx, alphaIdxLen = streamB, m.alphaIdxLen
		if idxSel {
			colorIdx, alphaIdx = alphaIdx, colorIdx
			colorIdxLen, alphaIdxLen = alphaIdxLen, colorIdxLen
		}
	}

	colorWeights := bcWeights(colorIdxLen)
	alphaWeights := bcWeights(alphaIdxLen)

	var tile [16]texture.RGBA8
	for i := 0; i < 16; i++ {
		subset := bcSubset(m.numSubsets, partition, i)
		e0 := colorRGBA[subset*2]
		e1 := colorRGBA[subset*2+1]
		cw := colorWeights[colorIdx[i]]
		aw := alphaWeights[alphaIdx[i]]
		px := texture.RGBA8{
			R: bc7Lerp(e0.R, e1.R, cw),
			G: bc7Lerp(e0.G, e1.G, cw),
			B: bc7Lerp(e0.B, e1.B, cw),
			A: bc7Lerp(e0.A, e1.A, aw),
		}
		switch rotation {
		case 1:
			px.R, px.A = px.A, px.R
		case 2:
			px.G, px.A = px.A, px.G
		case 3:
			px.B, px.A = px.A, px.B
		}
		tile[i] = px
	}
	return tile
}
