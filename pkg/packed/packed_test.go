package packed

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/goopsie/texcore/pkg/pixfmt"
)

func TestDecode565NormalizesByFieldMax(t *testing.T) {
	buf := make([]byte, 2)
	// All-ones 5- and 6-bit fields should normalize to 255, not the 248/252
	// a plain left shift gives.
	binary.LittleEndian.PutUint16(buf, 0xFFFF)
	res, err := Decode(pixfmt.G3B5R5G3, buf, 1, 1, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := res.RGBA8[0]
	if p.R != 255 || p.G != 255 || p.B != 255 || p.A != 255 {
		t.Fatalf("got %+v, want all 255", p)
	}
}

func TestDecode4444PartialField(t *testing.T) {
	buf := make([]byte, 2)
	// R=0xF, G=0x0, B=0x0, A=0x0 packed as R<<12|G<<8|B<<4|A.
	binary.LittleEndian.PutUint16(buf, 0xF000)
	res, err := Decode(pixfmt.G4B4A4R4, buf, 1, 1, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := res.RGBA8[0]
	if p.R != 255 {
		t.Errorf("R = %d, want 255", p.R)
	}
	if p.G != 0 || p.B != 0 || p.A != 0 {
		t.Errorf("got %+v, want G=B=A=0", p)
	}
}

func TestDecodeR8G8B8A8Passthrough(t *testing.T) {
	buf := []byte{10, 20, 30, 40}
	res, err := Decode(pixfmt.R8G8B8A8, buf, 1, 1, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := res.RGBA8[0]
	if p.R != 10 || p.G != 20 || p.B != 30 || p.A != 40 {
		t.Fatalf("got %+v", p)
	}
}

func TestDecodeBGRAChannelSwap(t *testing.T) {
	buf := []byte{10, 20, 30, 40} // B,G,R,A in memory
	res, err := Decode(pixfmt.B8G8R8A8, buf, 1, 1, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := res.RGBA8[0]
	if p.R != 30 || p.G != 20 || p.B != 10 || p.A != 40 {
		t.Fatalf("got %+v, want R=30 G=20 B=10 A=40", p)
	}
}

func TestDecodeR16fHalfFloat(t *testing.T) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, 0x3C00) // half-precision 1.0
	res, err := Decode(pixfmt.R16f, buf, 1, 1, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(float64(res.RGBAf[0].R)-1.0) > 1e-6 {
		t.Fatalf("R = %v, want 1.0", res.RGBAf[0].R)
	}
	if res.RGBAf[0].A != 1 {
		t.Errorf("A = %v, want 1", res.RGBAf[0].A)
	}
}

func TestDecodeR9G9B9E5SharedExponent(t *testing.T) {
	// All mantissas and exponent zero decodes to exactly black.
	buf := make([]byte, 4)
	res, err := Decode(pixfmt.R9G9B9E5uf, buf, 1, 1, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := res.RGBAf[0]
	if p.R != 0 || p.G != 0 || p.B != 0 {
		t.Fatalf("got %+v, want all zero", p)
	}
}

// TestDecodeRGBMMatchesScenario decodes one RGBM pixel by hand: bytes
// {128, 0, 0, 64} at max range 8 give R = (128/255)*(64/255)*8.
func TestDecodeRGBMMatchesScenario(t *testing.T) {
	buf := []byte{128, 0, 0, 64}
	res, err := Decode(pixfmt.R8G8B8M8, buf, 1, 1, 8)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := res.RGBAf[0]
	want := float32(1.00784)
	if math.Abs(float64(p.R-want)) > 0.001 {
		t.Errorf("R = %v, want ~%v", p.R, want)
	}
	if p.G != 0 || p.B != 0 {
		t.Errorf("got G=%v B=%v, want both 0", p.G, p.B)
	}
	if p.A != 1 {
		t.Errorf("A = %v, want 1", p.A)
	}
}

func TestDecodeRGBDZeroDivisorIsOpaqueBlack(t *testing.T) {
	buf := []byte{200, 150, 100, 0}
	res, err := Decode(pixfmt.R8G8B8D8, buf, 1, 1, 8)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := res.RGBAf[0]
	if p.R != 0 || p.G != 0 || p.B != 0 || p.A != 1 {
		t.Fatalf("got %+v, want opaque black", p)
	}
}

func TestDecodeRejectsWrongDataLength(t *testing.T) {
	_, err := Decode(pixfmt.R8G8B8A8, []byte{1, 2, 3}, 2, 2, 0)
	if err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestDecodeRejectsNonPackedFormat(t *testing.T) {
	_, err := Decode(pixfmt.BC1DXT1, make([]byte, 8), 4, 4, 0)
	if err == nil {
		t.Fatal("expected error for non-packed format")
	}
}
