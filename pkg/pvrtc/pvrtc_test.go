package pvrtc

import (
	"encoding/binary"
	"testing"
)

func buildSolidBlock(r5 uint32) []byte {
	// Opaque forms of both colours (A at bits 1-15 with flag bit 15, B at
	// bits 16-31 with flag bit 31), same value in every channel, and a
	// modulation grid of all zeros so every texel resolves to colour A.
	colorA := uint32(0x8000) | r5<<10 | r5<<5 | (r5>>1)<<1
	colorB := uint32(0x80000000) | r5<<26 | r5<<21 | r5<<16
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0)
	binary.LittleEndian.PutUint32(data[4:8], colorB|colorA)
	return data
}

func TestDecodeUniformImageIsFlat(t *testing.T) {
	blockCount := 2 * 2
	data := make([]byte, 0, blockCount*8)
	for i := 0; i < blockCount; i++ {
		data = append(data, buildSolidBlock(0x1F)...)
	}
	res, err := Decode(Mode4BPP, data, 8, 8)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.RGBA8) != 64 {
		t.Fatalf("got %d texels, want 64", len(res.RGBA8))
	}
	for i, p := range res.RGBA8 {
		if p.R != 255 || p.G != 255 || p.B != 255 || p.A != 255 {
			t.Fatalf("texel %d = %+v, want uniform white", i, p)
		}
	}
}

func TestDecodeRejectsNonPowerOfTwo(t *testing.T) {
	data := make([]byte, 8)
	_, err := Decode(Mode4BPP, data, 6, 4)
	if err == nil {
		t.Fatal("expected an error for a non-power-of-two dimension")
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode(Mode4BPP, make([]byte, 4), 4, 4)
	if err == nil {
		t.Fatal("expected an error for a truncated buffer")
	}
}

func TestDecode2BPPBlockDims(t *testing.T) {
	data := make([]byte, 8) // one 8x4 block
	res, err := Decode(Mode2BPP, data, 8, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.RGBA8) != 32 {
		t.Fatalf("got %d texels, want 32", len(res.RGBA8))
	}
}

func TestParseBlockOpaqueColorAHasFullAlpha(t *testing.T) {
	blk := parseBlock(buildSolidBlock(0x10), Mode4BPP)
	if blk.colorA.a != 255 {
		t.Fatalf("colorA.a = %d, want 255 for an opaque block", blk.colorA.a)
	}
	if blk.colorB.a != 255 {
		t.Fatalf("colorB.a = %d, want 255 for an opaque block", blk.colorB.a)
	}
}

func TestDecode4BPPModulationWeights(t *testing.T) {
	// Solid colour A = colour B = white; any modulation weight must still
	// land on white, and a punch-through value (mode flag + value 2) must
	// clear alpha.
	data := buildSolidBlock(0x1F)
	data[4] |= 0x1                                     // modulation mode flag
	binary.LittleEndian.PutUint32(data[0:4], 0x2)      // texel (0,0) value 2
	res, err := Decode(Mode4BPP, data, 4, 4)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.RGBA8[0].A != 0 {
		t.Fatalf("texel 0 alpha = %d, want punch-through 0", res.RGBA8[0].A)
	}
	if res.RGBA8[5].A != 255 {
		t.Fatalf("texel 5 alpha = %d, want opaque", res.RGBA8[5].A)
	}
}

func TestExpandHelpersAreMonotonic(t *testing.T) {
	prev := -1
	for v := 0; v < 32; v++ {
		got := expand5(v)
		if got <= prev {
			t.Fatalf("expand5(%d) = %d, not increasing from %d", v, got, prev)
		}
		prev = got
	}
}
