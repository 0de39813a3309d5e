package block

import (
	"encoding/binary"
	"testing"

	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

func buildBC1Block(c0, c1 uint16, indices uint32) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], c0)
	binary.LittleEndian.PutUint16(b[2:4], c1)
	binary.LittleEndian.PutUint32(b[4:8], indices)
	return b
}

func TestDecodeBC1OpaqueFourColour(t *testing.T) {
	// c0 > c1 numerically selects 4-colour opaque mode.
	blk := buildBC1Block(0xFFFF, 0x0000, 0x00000000) // all texels -> colour0
	res, err := Decode(pixfmt.BC1DXT1, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBA8 {
		if p.R != 255 || p.G != 255 || p.B != 255 || p.A != 255 {
			t.Fatalf("texel %d = %+v, want opaque white", i, p)
		}
	}
}

func TestDecodeBC1PunchThroughTransparent(t *testing.T) {
	// c0 <= c1 selects the punch-through-alpha mode; index 3 is
	// transparent black.
	blk := buildBC1Block(0x0000, 0xFFFF, 0xFFFFFFFF) // all texels -> index 3
	res, err := Decode(pixfmt.BC1DXT1A, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBA8 {
		if p.A != 0 {
			t.Fatalf("texel %d alpha = %d, want 0 (transparent)", i, p.A)
		}
	}
}

func TestDecodeBC2ExplicitAlpha(t *testing.T) {
	blk := make([]byte, 16)
	// All 16 alpha nibbles = 0xF -> 255 after nibble*17 expansion.
	for i := range blk[:8] {
		blk[i] = 0xFF
	}
	binary.LittleEndian.PutUint16(blk[8:10], 0xFFFF)
	binary.LittleEndian.PutUint16(blk[10:12], 0x0000)
	res, err := Decode(pixfmt.BC2DXT2DXT3, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBA8 {
		if p.A != 255 {
			t.Fatalf("texel %d alpha = %d, want 255", i, p.A)
		}
	}
}

func TestDecodeBC4SignedRebase(t *testing.T) {
	blk := make([]byte, 8)
	var neg127, pos127 int8 = -127, 127
	blk[0] = byte(neg127)
	blk[1] = byte(pos127)
	// All indices 0 -> value0 == blk[0].
	res, err := Decode(pixfmt.BC4ATI1S, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := uint8(1) // -127 + 128 = 1
	if res.RGBA8[0].R != want {
		t.Errorf("R = %d, want %d", res.RGBA8[0].R, want)
	}
}

func TestDecodeEACR11UnsignedZero(t *testing.T) {
	blk := make([]byte, 8) // base=0, multiplier=0 -> near-black
	res, err := Decode(pixfmt.EACR11U, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.RGBA8[0].R > 2 {
		t.Errorf("R = %d, want near 0", res.RGBA8[0].R)
	}
}

func TestDecodeETC1SolidColour(t *testing.T) {
	// Individual mode, both sub-block colours equal, modifiers zero
	// (table 0, index combination (0,0) yields modifier table[0][0]=2
	// for every texel, so output is uniform).
	blk := make([]byte, 8)
	blk[0] = 0x88 // R1=R2=8 (4-bit, *17 = 136)
	blk[1] = 0x88
	blk[2] = 0x88
	// byte3: table1=0,table2=0,diff=0,flip=0
	blk[3] = 0x00
	res, err := Decode(pixfmt.ETC1, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	first := res.RGBA8[0]
	for i, p := range res.RGBA8 {
		if p != first {
			t.Fatalf("texel %d = %+v, want uniform %+v", i, p, first)
		}
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode(pixfmt.BC1DXT1, make([]byte, 4), 4, 4)
	if err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestDecodeCropsNonMultipleOfFour(t *testing.T) {
	// 5x5 image needs a 8x8 scratch (2x2 blocks) then crop.
	n := pixfmt.DataSize(pixfmt.BC1DXT1, 5, 5)
	blk := make([]byte, n)
	res, err := Decode(pixfmt.BC1DXT1, blk, 5, 5)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.RGBA8) != 25 {
		t.Fatalf("len = %d, want 25", len(res.RGBA8))
	}
}

func TestDecodeBC7DoesNotPanic(t *testing.T) {
	// Exercise the mode-6 bit layout (single byte with bit 6 set selects
	// mode 6).
	blk := make([]byte, 16)
	blk[0] = 1 << 6
	res, err := Decode(pixfmt.BC7, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.RGBA8) != 16 {
		t.Fatalf("len = %d, want 16", len(res.RGBA8))
	}
}

// bitWriter packs values LSB-first, mirroring the BPTC bitstream order.
type bitWriter struct {
	data []byte
	pos  int
}

func (w *bitWriter) write(v uint32, n int) {
	for i := 0; i < n; i++ {
		if v>>uint(i)&1 != 0 {
			w.data[w.pos/8] |= 1 << uint(w.pos%8)
		}
		w.pos++
	}
}

func TestDecodeBC7Mode1Partition0(t *testing.T) {
	// Mode 1, partition 0: texel columns 0-1 are subset 0, columns 2-3
	// subset 1. Subset 0 endpoints are black, subset 1 endpoints white
	// (6-bit 0x3F plus a set shared p-bit). All indices zero, so each
	// texel lands exactly on its subset's first endpoint.
	w := &bitWriter{data: make([]byte, 16)}
	w.write(0x2, 2) // mode 1 (first set bit at position 1)
	w.write(0, 6)   // partition 0
	for ch := 0; ch < 3; ch++ {
		w.write(0, 6)    // subset 0, endpoint 0
		w.write(0, 6)    // subset 0, endpoint 1
		w.write(0x3F, 6) // subset 1, endpoint 0
		w.write(0x3F, 6) // subset 1, endpoint 1
	}
	w.write(0, 1) // subset 0 shared p-bit
	w.write(1, 1) // subset 1 shared p-bit
	// 46 index bits, all zero: already zeroed.

	res, err := Decode(pixfmt.BC7, w.data, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := res.RGBA8[y*4+x]
			want := uint8(0)
			if x >= 2 {
				want = 255
			}
			if p.R != want || p.G != want || p.B != want || p.A != 255 {
				t.Fatalf("texel (%d,%d) = %+v, want grey %d", x, y, p, want)
			}
		}
	}
}

func TestDecodeBC6HMode3Solid(t *testing.T) {
	// Mode 3 (one region, raw 10-bit endpoints, no transform): both
	// endpoints at the 10-bit max unquantize to 0xFFFF and finish at the
	// largest finite half-float regardless of the texel indices.
	w := &bitWriter{data: make([]byte, 16)}
	w.write(3, 5) // 5-bit mode value 00011
	for i := 0; i < 6; i++ {
		w.write(1023, 10)
	}
	res, err := Decode(pixfmt.BC6U, w.data, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBAf {
		if p.R != 65504 || p.G != 65504 || p.B != 65504 || p.A != 1 {
			t.Fatalf("texel %d = %+v, want (65504, 65504, 65504, 1)", i, p)
		}
	}
}

func TestDecodeBC6HZeroBlockIsBlack(t *testing.T) {
	res, err := Decode(pixfmt.BC6U, make([]byte, 16), 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBAf {
		if p.R != 0 || p.G != 0 || p.B != 0 || p.A != 1 {
			t.Fatalf("texel %d = %+v, want opaque black", i, p)
		}
	}
}

func TestDecodeETC2TMode(t *testing.T) {
	// Differential red base 31 + delta 3 overflows, escaping to T mode.
	// Base colour 1 decodes to pure red (R1a=R1b=0b11); colour 2 and the
	// paint distance stay zero-ish, and all-zero selectors pick colour 1
	// for every texel.
	blk := []byte{0xFB, 0x00, 0x00, 0x02, 0, 0, 0, 0}
	res, err := Decode(pixfmt.ETC2RGB, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBA8 {
		if p.R != 255 || p.G != 0 || p.B != 0 || p.A != 255 {
			t.Fatalf("texel %d = %+v, want opaque red", i, p)
		}
	}
}

func TestDecodeETC2PlanarMode(t *testing.T) {
	// Blue base 3 + delta -4 underflows, escaping to planar mode. The
	// three blue corner values all encode 0b011000, so the plane is
	// constant: extend6(24) = 97 in blue, zero elsewhere.
	blk := []byte{0x00, 0x00, 0x1C, 0x02, 0x00, 0xC0, 0x00, 0x18}
	res, err := Decode(pixfmt.ETC2RGB, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBA8 {
		if p.R != 0 || p.G != 0 || p.B != 97 || p.A != 255 {
			t.Fatalf("texel %d = %+v, want (0, 0, 97, 255)", i, p)
		}
	}
}

func TestDecodeETC2PunchThroughTransparent(t *testing.T) {
	// Opaque bit clear, every selector = 2 (MSB plane all ones): every
	// texel is transparent black.
	blk := []byte{0, 0, 0, 0x00, 0xFF, 0xFF, 0, 0}
	res, err := Decode(pixfmt.ETC2RGBA1, blk, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i, p := range res.RGBA8 {
		if p != (texture.RGBA8{}) {
			t.Fatalf("texel %d = %+v, want transparent black", i, p)
		}
	}
}
