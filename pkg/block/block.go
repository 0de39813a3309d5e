// Package block decodes the BC (DXT/DXn), ETC, and EAC block-compressed
// pixel formats to RGBA8 (BC6H to RGBAf).
//
// Every format here tiles the image in 4×4 blocks. Each block is decoded
// into a scratch tile sized ⌈w/4⌉*4 × ⌈h/4⌉*4; once every block has been
// written the scratch is cropped down to the real w×h, so images whose
// dimensions aren't multiples of 4 decode without per-block edge cases.
package block

import (
	"fmt"

	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

// Result holds the decoded pixels: exactly one of RGBA8/RGBAf is set.
type Result struct {
	RGBA8 []texture.RGBA8
	RGBAf []texture.RGBAf
}

const (
	tileDim    = 4
	blockBytes = 16 // max block size in bytes (BC1/BC4 use only the first 8)
)

func scratchDims(w, h int) (int, int, int, int) {
	bw := (w + tileDim - 1) / tileDim
	bh := (h + tileDim - 1) / tileDim
	return bw, bh, bw * tileDim, bh * tileDim
}

func cropRGBA8(scratch []texture.RGBA8, scratchW, w, h int) []texture.RGBA8 {
	out := make([]texture.RGBA8, w*h)
	for y := 0; y < h; y++ {
		copy(out[y*w:(y+1)*w], scratch[y*scratchW:y*scratchW+w])
	}
	return out
}

func cropRGBAf(scratch []texture.RGBAf, scratchW, w, h int) []texture.RGBAf {
	out := make([]texture.RGBAf, w*h)
	for y := 0; y < h; y++ {
		copy(out[y*w:(y+1)*w], scratch[y*scratchW:y*scratchW+w])
	}
	return out
}

func putTile(scratch []texture.RGBA8, scratchW, bx, by int, tile [16]texture.RGBA8) {
	for ty := 0; ty < tileDim; ty++ {
		row := (by*tileDim + ty) * scratchW
		copy(scratch[row+bx*tileDim:row+bx*tileDim+tileDim], tile[ty*tileDim:ty*tileDim+tileDim])
	}
}

func putTileF(scratch []texture.RGBAf, scratchW, bx, by int, tile [16]texture.RGBAf) {
	for ty := 0; ty < tileDim; ty++ {
		row := (by*tileDim + ty) * scratchW
		copy(scratch[row+bx*tileDim:row+bx*tileDim+tileDim], tile[ty*tileDim:ty*tileDim+tileDim])
	}
}

// Decode decompresses a BC/ETC/EAC-format buffer of w×h pixels.
func Decode(f pixfmt.Format, data []byte, w, h int) (Result, error) {
	if !pixfmt.IsBC(f) && !pixfmt.IsETC(f) && !pixfmt.IsEAC(f) {
		return Result{}, fmt.Errorf("block: %s is not a BC/ETC/EAC format", pixfmt.Name(f))
	}
	want := pixfmt.DataSize(f, w, h)
	if len(data) != want {
		return Result{}, fmt.Errorf("block: data length %d does not match %s %dx%d (want %d)", len(data), pixfmt.Name(f), w, h, want)
	}

	bw, bh, scratchW, scratchH := scratchDims(w, h)
	blockSize := pixfmt.BytesPerBlock(f)

	if f == pixfmt.BC6U || f == pixfmt.BC6S {
		scratch := make([]texture.RGBAf, scratchW*scratchH)
		for byi := 0; byi < bh; byi++ {
			for bxi := 0; bxi < bw; bxi++ {
				off := (byi*bw + bxi) * blockSize
				tile := decodeBC6HBlock(data[off:off+blockSize], f == pixfmt.BC6S)
				putTileF(scratch, scratchW, bxi, byi, tile)
			}
		}
		return Result{RGBAf: cropRGBAf(scratch, scratchW, w, h)}, nil
	}

	scratch := make([]texture.RGBA8, scratchW*scratchH)
	for byi := 0; byi < bh; byi++ {
		for bxi := 0; bxi < bw; bxi++ {
			off := (byi*bw + bxi) * blockSize
			blk := data[off : off+blockSize]
			var tile [16]texture.RGBA8
			switch f {
			case pixfmt.BC1DXT1, pixfmt.BC1DXT1A:
				tile = decodeBC1Block(blk)
			case pixfmt.BC2DXT2DXT3:
				tile = decodeBC2Block(blk)
			case pixfmt.BC3DXT4DXT5:
				tile = decodeBC3Block(blk)
			case pixfmt.BC4ATI1U:
				tile = decodeBC4Block(blk, false)
			case pixfmt.BC4ATI1S:
				tile = decodeBC4Block(blk, true)
			case pixfmt.BC5ATI2U:
				tile = decodeBC5Block(blk, false)
			case pixfmt.BC5ATI2S:
				tile = decodeBC5Block(blk, true)
			case pixfmt.BC7:
				tile = decodeBC7Block(blk)
			case pixfmt.ETC1:
				tile = decodeETC1Block(blk)
			case pixfmt.ETC2RGB:
				tile = decodeETC2RGBBlock(blk)
			case pixfmt.ETC2RGBA:
				tile = decodeETC2RGBABlock(blk)
			case pixfmt.ETC2RGBA1:
				tile = decodeETC2RGBA1Block(blk)
			case pixfmt.EACR11U:
				tile = decodeEACR11Tile(blk, false)
			case pixfmt.EACR11S:
				tile = decodeEACR11Tile(blk, true)
			case pixfmt.EACRG11U:
				tile = decodeEACRG11Tile(blk, false)
			case pixfmt.EACRG11S:
				tile = decodeEACRG11Tile(blk, true)
			default:
				return Result{}, fmt.Errorf("block: unhandled format %s", pixfmt.Name(f))
			}
			putTile(scratch, scratchW, bxi, byi, tile)
		}
	}
	return Result{RGBA8: cropRGBA8(scratch, scratchW, w, h)}, nil
}
