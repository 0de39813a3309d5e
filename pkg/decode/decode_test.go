package decode

import (
	"testing"

	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/pixfmt"
)

func TestDecodeR8G8B8A8(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50, 60, 70, 80}
	res, st, err := Decode(pixfmt.R8G8B8A8, data, 2, 1, Options{})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Fatal() || st&Valid == 0 {
		t.Fatalf("expected Valid bit set and no fatal bits, got %v", st)
	}
	if len(res.RGBA8) != 2 || res.RGBA8[0].R != 10 || res.RGBA8[1].A != 80 {
		t.Fatalf("unexpected result: %+v", res.RGBA8)
	}
}

func TestDecodeRejectsInvalidDimensions(t *testing.T) {
	_, st, err := Decode(pixfmt.R8G8B8A8, nil, 0, 4, Options{})
	if err == nil || !st.Fatal() {
		t.Fatalf("expected a fatal error for a zero dimension")
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, st, err := Decode(pixfmt.Invalid, nil, 4, 4, Options{})
	if err == nil || st&FatalUnsupportedFormat == 0 {
		t.Fatalf("expected FatalUnsupportedFormat, got %v, %v", st, err)
	}
}

func TestReverseRowsRGBA8(t *testing.T) {
	data := make([]byte, 4*2*2) // 4x2 R8G8 image, 2 bytes/pixel
	for i := range data {
		data[i] = byte(i)
	}
	res, _, err := Decode(pixfmt.R8G8, data, 4, 2, Options{ReverseRows: true})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	plain, _, _ := Decode(pixfmt.R8G8, data, 4, 2, Options{})
	for x := 0; x < 4; x++ {
		if res.RGBA8[x] != plain.RGBA8[4+x] || res.RGBA8[4+x] != plain.RGBA8[x] {
			t.Fatalf("row reversal mismatch at column %d", x)
		}
	}
}

func TestSpreadLuminance(t *testing.T) {
	// L8 and R8 decode their one value into Red and spread it into G/B;
	// A8 is alpha-only and must come through untouched (RGB zero, alpha
	// carried) even when spreading is requested.
	for _, f := range []pixfmt.Format{pixfmt.L8, pixfmt.R8} {
		res, _, err := Decode(f, []byte{0x80}, 1, 1, Options{SpreadLuminance: true})
		if err != nil {
			t.Fatalf("%v decode: %v", f, err)
		}
		p := res.RGBA8[0]
		if p.R != 0x80 || p.G != 0x80 || p.B != 0x80 {
			t.Fatalf("%v: expected G/B spread from R, got %+v", f, p)
		}
	}

	res, _, err := Decode(pixfmt.A8, []byte{0x80}, 1, 1, Options{SpreadLuminance: true})
	if err != nil {
		t.Fatalf("A8 decode: %v", err)
	}
	p := res.RGBA8[0]
	if p.R != 0 || p.G != 0 || p.B != 0 || p.A != 0x80 {
		t.Fatalf("A8: expected RGB untouched at zero with alpha carried, got %+v", p)
	}
}

func TestDecodeASTCSampleNotFatal(t *testing.T) {
	info, stBefore := decodeASTCSample(t)
	if stBefore.Fatal() {
		t.Fatalf("unexpected fatal state: %v", stBefore)
	}
	_ = info
}

// decodeASTCSample exercises the ASTC dispatch branch with a trivial
// constant-colour block so the fatal/non-fatal States plumbing between
// pkg/decode and pkg/astc is covered without duplicating pkg/astc's own
// block-format tests.
func decodeASTCSample(t *testing.T) (Result, States) {
	t.Helper()
	blk := make([]byte, 16)
	blk[0] = 0xFC
	blk[1] = 0x01
	res, st, err := Decode(pixfmt.ASTC4X4, blk, 4, 4, Options{ProfileHint: colormodel.LRGB, AutoGamma: true})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res, st
}
