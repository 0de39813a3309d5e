// Package pvrtc decodes PVRTC1 4bpp and 2bpp compressed textures to
// RGBA8, implementing Imagination Technologies' published PVRTC1
// decompression algorithm, organized the way this codebase organizes its
// other block decoders (pkg/block): a per-block struct parsed up front,
// and a Decode entry point that writes every texel of the full image
// directly (no scratch tile, no cropping).
package pvrtc

import (
	"fmt"

	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

// Mode selects the PVRTC1 bits-per-pixel variant; each has a different
// block footprint (4bpp: 4x4 texels per block; 2bpp: 8x4).
type Mode int

const (
	Mode4BPP Mode = iota
	Mode2BPP
)

func (m Mode) blockDims() (w, h int) {
	if m == Mode2BPP {
		return 8, 4
	}
	return 4, 4
}

// Decode decompresses a PVRTC1 buffer of w x h pixels. w and h must each
// be a power of two no smaller than the block footprint, the same
// constraint the format itself imposes on encoded textures.
func Decode(mode Mode, data []byte, w, h int) (Result, error) {
	bw, bh := mode.blockDims()
	if w < bw || h < bh || !isPowerOfTwo(w) || !isPowerOfTwo(h) {
		return Result{}, fmt.Errorf("pvrtc: %dx%d is not a valid PVRTC1 dimension for %s", w, h, modeName(mode))
	}
	blocksX, blocksY := w/bw, h/bh
	want := blocksX * blocksY * 8
	if len(data) != want {
		return Result{}, fmt.Errorf("pvrtc: data length %d does not match %s %dx%d (want %d)", len(data), modeName(mode), w, h, want)
	}

	blocks := make([]pvrtcBlock, blocksX*blocksY)
	for i := range blocks {
		blocks[i] = parseBlock(data[i*8:i*8+8], mode)
	}

	out := make([]texture.RGBA8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out[y*w+x] = decodeTexel(mode, blocks, blocksX, blocksY, bw, bh, x, y)
		}
	}
	return Result{RGBA8: out}, nil
}

func modeName(m Mode) string {
	if m == Mode2BPP {
		return "PVRTC2bpp"
	}
	return "PVRTC4bpp"
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Result holds the decoded pixels.
type Result struct {
	RGBA8 []texture.RGBA8
}

// FormatMode maps a pixfmt PVR compressed format to the Mode Decode needs.
func FormatMode(f pixfmt.Format) (Mode, bool) {
	switch f {
	case pixfmt.PVRBPP4:
		return Mode4BPP, true
	case pixfmt.PVRBPP2:
		return Mode2BPP, true
	default:
		return 0, false
	}
}
