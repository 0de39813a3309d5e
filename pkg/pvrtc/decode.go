package pvrtc

import "github.com/goopsie/texcore/pkg/texture"

// decodeTexel reconstructs one output pixel by bilinearly blending the
// representative colours A and B of the four block centres nearest this
// texel (PVRTC1's defining trick: the stored colours only directly apply
// at each block's centre, everywhere else they're interpolated from
// neighbours), then moving from the blended A towards the blended B by
// the texel's own modulation weight in eighths. Punch-through modulation
// values force alpha to zero. The interpolation wraps at the image edges
// to match PVRTC1's tiling requirement.
func decodeTexel(mode Mode, blocks []pvrtcBlock, blocksX, blocksY, bw, bh, x, y int) texture.RGBA8 {
	bx, by := x/bw, y/bh
	lx, ly := x-bx*bw, y-by*bh

	cx := bw / 2
	cy := bh / 2

	bx0, bx1, wx := neighborAxis(bx, blocksX, lx, cx, bw)
	by0, by1, wy := neighborAxis(by, blocksY, ly, cy, bh)

	b00 := blocks[by0*blocksX+bx0]
	b10 := blocks[by0*blocksX+bx1]
	b01 := blocks[by1*blocksX+bx0]
	b11 := blocks[by1*blocksX+bx1]

	aR, aG, aB, aA := bilinear4(b00.colorA, b10.colorA, b01.colorA, b11.colorA, wx, wy)
	bR, bG, bB, bA := bilinear4(b00.colorB, b10.colorB, b01.colorB, b11.colorB, wx, wy)

	blk := blocks[by*blocksX+bx]
	t := float64(blk.weight[ly][lx]) / 8

	px := texture.RGBA8{
		R: lerpByte(aR, bR, t),
		G: lerpByte(aG, bG, t),
		B: lerpByte(aB, bB, t),
		A: lerpByte(aA, bA, t),
	}
	if blk.punch[ly][lx] {
		px.A = 0
	}
	return px
}

// neighborAxis returns the two block indices (with wraparound) this
// texel's coordinate falls between on one axis, and the fractional blend
// weight toward the second.
func neighborAxis(b, numBlocks, local, center, blockDim int) (b0, b1 int, w float64) {
	if local < center {
		b0 = (b - 1 + numBlocks) % numBlocks
		b1 = b
		w = float64(local+blockDim-center) / float64(blockDim)
	} else {
		b0 = b
		b1 = (b + 1) % numBlocks
		w = float64(local-center) / float64(blockDim)
	}
	return
}

func bilinear4(c00, c10, c01, c11 rgba8888, wx, wy float64) (r, g, b, a float64) {
	top := func(v00, v10 int) float64 { return float64(v00)*(1-wx) + float64(v10)*wx }
	r = top(c00.r, c10.r)*(1-wy) + top(c01.r, c11.r)*wy
	g = top(c00.g, c10.g)*(1-wy) + top(c01.g, c11.g)*wy
	b = top(c00.b, c10.b)*(1-wy) + top(c01.b, c11.b)*wy
	a = top(c00.a, c10.a)*(1-wy) + top(c01.a, c11.a)*wy
	return
}

func lerpByte(a, b, t float64) uint8 {
	v := a + (b-a)*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
