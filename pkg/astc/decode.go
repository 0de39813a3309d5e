package astc

import (
	"fmt"
	"sync"

	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

// Result holds the decoded pixels, matching pkg/block's Result shape:
// exactly one of RGBA8/RGBAf is populated, selected by whether profile
// requests an HDR interpretation.
type Result struct {
	RGBA8 []texture.RGBA8
	RGBAf []texture.RGBAf
}

// Decode decompresses an ASTC-format buffer of w x h pixels at the block
// footprint implied by f. Work is fanned out one goroutine per block row
// behind a bounded semaphore — ASTC's block-mode/weight-grid decode does
// enough per-block work to be worth parallelizing, unlike the fixed 4x4
// BC tiles in pkg/block.
func Decode(f pixfmt.Format, data []byte, w, h int, profile Profile) (Result, error) {
	if !pixfmt.IsASTC(f) {
		return Result{}, fmt.Errorf("astc: %s is not an ASTC format", pixfmt.Name(f))
	}
	bw, bh := pixfmt.BlockW(f), pixfmt.BlockH(f)
	want := pixfmt.DataSize(f, w, h)
	if len(data) != want {
		return Result{}, fmt.Errorf("astc: data length %d does not match %s %dx%d (want %d)", len(data), pixfmt.Name(f), w, h, want)
	}

	blocksX := pixfmt.NumBlocks(bw, w)
	blocksY := pixfmt.NumBlocks(bh, h)
	scratchW, scratchH := blocksX*bw, blocksY*bh
	hdr := profile == ProfileHDRRGBLDRAlpha || profile == ProfileHDR

	if hdr {
		scratch := make([]texture.RGBAf, scratchW*scratchH)
		decodeRows(blocksX, blocksY, bw, bh, BlockBytes, data, func(bxi, byi int, off int) {
			tile := decodeBlockRGBAf(data[off:off+BlockBytes], bw, bh, profile)
			putTileF(scratch, scratchW, bxi, byi, bw, bh, tile)
		})
		return Result{RGBAf: cropF(scratch, scratchW, w, h)}, nil
	}

	scratch := make([]texture.RGBA8, scratchW*scratchH)
	decodeRows(blocksX, blocksY, bw, bh, BlockBytes, data, func(bxi, byi int, off int) {
		tile := decodeBlockRGBA8(data[off:off+BlockBytes], bw, bh, profile)
		putTile8(scratch, scratchW, bxi, byi, bw, bh, tile)
	})
	return Result{RGBA8: crop8(scratch, scratchW, w, h)}, nil
}

func decodeRows(blocksX, blocksY, bw, bh, blockSize int, data []byte, decodeOne func(bxi, byi, off int)) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers())
	for byi := 0; byi < blocksY; byi++ {
		byi := byi
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			for bxi := 0; bxi < blocksX; bxi++ {
				off := (byi*blocksX + bxi) * blockSize
				decodeOne(bxi, byi, off)
			}
		}()
	}
	wg.Wait()
}

func maxWorkers() int {
	n := 8
	return n
}

func putTile8(scratch []texture.RGBA8, scratchW, bxi, byi, bw, bh int, tile []texture.RGBA8) {
	for ty := 0; ty < bh; ty++ {
		row := (byi*bh + ty) * scratchW
		copy(scratch[row+bxi*bw:row+bxi*bw+bw], tile[ty*bw:ty*bw+bw])
	}
}

func putTileF(scratch []texture.RGBAf, scratchW, bxi, byi, bw, bh int, tile []texture.RGBAf) {
	for ty := 0; ty < bh; ty++ {
		row := (byi*bh + ty) * scratchW
		copy(scratch[row+bxi*bw:row+bxi*bw+bw], tile[ty*bw:ty*bw+bw])
	}
}

func crop8(scratch []texture.RGBA8, scratchW, w, h int) []texture.RGBA8 {
	out := make([]texture.RGBA8, w*h)
	for y := 0; y < h; y++ {
		copy(out[y*w:(y+1)*w], scratch[y*scratchW:y*scratchW+w])
	}
	return out
}

func cropF(scratch []texture.RGBAf, scratchW, w, h int) []texture.RGBAf {
	out := make([]texture.RGBAf, w*h)
	for y := 0; y < h; y++ {
		copy(out[y*w:(y+1)*w], scratch[y*scratchW:y*scratchW+w])
	}
	return out
}

// texelWeight returns the interpolated 0..64 weight for one texel, plane p
// (0, or 1 for the second plane of a dual-plane block).
func texelWeight(sb *symbolicBlock, dec []decimationEntry, texelIdx, p int) uint8 {
	if sb.mode.weightCount == 0 {
		return 32
	}
	planeStride := 1
	planeOffset := 0
	if sb.mode.isDualPlane {
		planeStride = 2
		planeOffset = p
	}

	e := dec[texelIdx]
	row := weightRowForQuant(sb.mode.quantMode)
	if row < 0 {
		return 32
	}

	var sum uint32
	var wsum uint32
	for k := 0; k < 4; k++ {
		if e.w[k] == 0 && k > 0 {
			continue
		}
		wi := e.idx[k]*planeStride + planeOffset
		if wi >= len(sb.weights) {
			continue
		}
		val := weightUnscrambleAndUnquantMap[row][sb.weights[wi]]
		sum += uint32(val) * e.w[k]
		wsum += e.w[k]
	}
	if wsum == 0 {
		return 32
	}
	return uint8((sum + wsum/2) / wsum)
}

func lerpEndpoint(e0, e1, weight int) int {
	return (e0*(64-weight) + e1*weight + 32) >> 6
}

func decodeBlockRGBA8(block []byte, bw, bh int, profile Profile) []texture.RGBA8 {
	out := make([]texture.RGBA8, bw*bh)
	sb := physicalToSymbolic(bw, bh, block)

	if sb.isErrorBlk {
		for i := range out {
			out[i] = texture.RGBA8{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}
		}
		return out
	}
	if sb.isConstant {
		r, g, b, a := constComponents8(sb, profile)
		for i := range out {
			out[i] = texture.RGBA8{R: r, G: g, B: b, A: a}
		}
		return out
	}

	dec := getDecimationTable(bw, bh, sb.mode.weightsX, sb.mode.weightsY)
	smallBlock := bw*bh < 31
	for i := range out {
		part := selectPartition(sb.partIndex, i%bw, i/bw, sb.partCount, smallBlock)
		e0, e1 := sb.e0[part], sb.e1[part]
		w := texelWeight(&sb, dec, i, 0)
		r := lerpEndpoint(e0.r, e1.r, int(w)) >> 8
		g := lerpEndpoint(e0.g, e1.g, int(w)) >> 8
		b := lerpEndpoint(e0.b, e1.b, int(w)) >> 8
		a := lerpEndpoint(e0.a, e1.a, int(w)) >> 8
		if sb.mode.isDualPlane {
			w2 := texelWeight(&sb, dec, i, 1)
			switch sb.plane2Comp & 0x3 {
			case 0:
				r = lerpEndpoint(e0.r, e1.r, int(w2)) >> 8
			case 1:
				g = lerpEndpoint(e0.g, e1.g, int(w2)) >> 8
			case 2:
				b = lerpEndpoint(e0.b, e1.b, int(w2)) >> 8
			case 3:
				a = lerpEndpoint(e0.a, e1.a, int(w2)) >> 8
			}
		}
		out[i] = texture.RGBA8{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
	}
	return out
}

func decodeBlockRGBAf(block []byte, bw, bh int, profile Profile) []texture.RGBAf {
	rgba8 := decodeBlockRGBA8(block, bw, bh, profile)
	out := make([]texture.RGBAf, len(rgba8))
	for i, px := range rgba8 {
		out[i] = px.ToRGBAf()
	}
	return out
}

func constComponents8(sb symbolicBlock, profile Profile) (r, g, b, a uint8) {
	if !sb.isHDRConst {
		return uint8(sb.constColor[0] >> 8), uint8(sb.constColor[1] >> 8), uint8(sb.constColor[2] >> 8), uint8(sb.constColor[3] >> 8)
	}
	rf := halfToFloat32(sb.constColor[0])
	gf := halfToFloat32(sb.constColor[1])
	bf := halfToFloat32(sb.constColor[2])
	af := halfToFloat32(sb.constColor[3])
	toByte := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return toByte(rf), toByte(gf), toByte(bf), toByte(af)
}
