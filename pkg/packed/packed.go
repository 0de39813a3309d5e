// Package packed decodes the packed (non-block) pixel formats to either
// RGBA8 or RGBAf. Sub-byte bit fields are normalized by dividing by the
// field maximum rather than bit-shifting, so an all-ones field reaches
// 255 exactly. The in-memory bit layout for the 16-bit packed formats
// (565/4444/5551/1555 and their channel-order variants) follows each
// format's name, with one conventional layout per name rather than
// per-call variations.
package packed

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

// Result holds the decoded pixels: exactly one of RGBA8/RGBAf is set.
type Result struct {
	RGBA8 []texture.RGBA8
	RGBAf []texture.RGBAf
}

// DefaultMaxRange is used by RGBM/RGBD decode when the caller does not
// supply an explicit max_range.
const DefaultMaxRange = 8.0

func normalizeField(v, maxVal uint16) uint8 {
	if maxVal == 0 {
		return 0
	}
	return uint8((uint32(v)*255 + uint32(maxVal)/2) / uint32(maxVal))
}

func halfToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF
	var bits uint32
	switch {
	case exp == 0 && mant == 0:
		bits = sign << 31
	case exp == 0:
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		exp++
		mant &= 0x3FF
		bits = sign<<31 | (exp+112)<<23 | mant<<13
	case exp == 0x1F:
		bits = sign<<31 | 0xFF<<23 | mant<<13
	default:
		bits = sign<<31 | (exp+112)<<23 | mant<<13
	}
	return math.Float32frombits(bits)
}

// ufloat decodes an unsigned floating-point field with no sign bit (used
// by R11G11B10uf's 11-bit and 10-bit channels), bias 15.
func ufloat(bits uint32, mantissaBits int) float32 {
	expMask := uint32(0x1F)
	mantMask := uint32(1)<<uint(mantissaBits) - 1
	exp := bits >> uint(mantissaBits) & expMask
	mant := bits & mantMask
	switch {
	case exp == 0 && mant == 0:
		return 0
	case exp == 0:
		return float32(mant) * float32(math.Pow(2, float64(-14-mantissaBits)))
	case exp == 31 && mant == 0:
		return float32(math.Inf(1))
	case exp == 31:
		return float32(math.NaN())
	default:
		return (1 + float32(mant)/float32(uint32(1)<<uint(mantissaBits))) * float32(math.Pow(2, float64(int(exp)-15)))
	}
}

// sharedExponent decodes one of a shared-exponent triple's 9-bit
// mantissas, always denormal (no implicit leading 1), bias 15.
func sharedExponent(mantissa9, exp5 uint32) float32 {
	return float32(mantissa9) * float32(math.Pow(2, float64(int(exp5)-15-9)))
}

// Decode converts a packed-format buffer of w*h pixels to RGBA8 or RGBAf.
// maxRange configures RGBM/RGBD decode (ignored for all other formats).
func Decode(f pixfmt.Format, data []byte, w, h int, maxRange float64) (Result, error) {
	if !pixfmt.IsPacked(f) {
		return Result{}, fmt.Errorf("packed: %s is not a packed format", pixfmt.Name(f))
	}
	want := pixfmt.DataSize(f, w, h)
	if len(data) != want {
		return Result{}, fmt.Errorf("packed: data length %d does not match %s %dx%d (want %d)", len(data), pixfmt.Name(f), w, h, want)
	}
	n := w * h
	if maxRange <= 0 {
		maxRange = DefaultMaxRange
	}

	switch f {
	case pixfmt.R8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			out[i] = texture.RGBA8{R: data[i], A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.L8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := data[i]
			out[i] = texture.RGBA8{R: v, G: v, B: v, A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.A8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			out[i] = texture.RGBA8{A: data[i]}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.L8A8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v, a := data[i*2], data[i*2+1]
			out[i] = texture.RGBA8{R: v, G: v, B: v, A: a}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R8G8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			out[i] = texture.RGBA8{R: data[i*2], G: data[i*2+1], A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R8G8B8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 3
			out[i] = texture.RGBA8{R: data[o], G: data[o+1], B: data[o+2], A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R8G8B8A8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 4
			out[i] = texture.RGBA8{R: data[o], G: data[o+1], B: data[o+2], A: data[o+3]}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.B8G8R8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 3
			out[i] = texture.RGBA8{R: data[o+2], G: data[o+1], B: data[o], A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.B8G8R8A8:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 4
			out[i] = texture.RGBA8{R: data[o+2], G: data[o+1], B: data[o], A: data[o+3]}
		}
		return Result{RGBA8: out}, nil

	case pixfmt.G3B5R5G3: // 565: R(5) G(6) B(5)
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2 : i*2+2])
			r := (v >> 11) & 0x1F
			g := (v >> 5) & 0x3F
			b := v & 0x1F
			out[i] = texture.RGBA8{R: normalizeField(r, 31), G: normalizeField(g, 63), B: normalizeField(b, 31), A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.G4B4A4R4: // 4444: R(4) G(4) B(4) A(4)
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2 : i*2+2])
			r := (v >> 12) & 0xF
			g := (v >> 8) & 0xF
			b := (v >> 4) & 0xF
			a := v & 0xF
			out[i] = texture.RGBA8{R: normalizeField(r, 15), G: normalizeField(g, 15), B: normalizeField(b, 15), A: normalizeField(a, 15)}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.B4A4R4G4: // 4444, channel order reversed: A(4) B(4) G(4) R(4)
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2 : i*2+2])
			a := (v >> 12) & 0xF
			b := (v >> 8) & 0xF
			g := (v >> 4) & 0xF
			r := v & 0xF
			out[i] = texture.RGBA8{R: normalizeField(r, 15), G: normalizeField(g, 15), B: normalizeField(b, 15), A: normalizeField(a, 15)}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.G3B5A1R5G2: // 5551: R(5) G(5) B(5) A(1)
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2 : i*2+2])
			r := (v >> 11) & 0x1F
			g := (v >> 6) & 0x1F
			b := (v >> 1) & 0x1F
			a := v & 0x1
			out[i] = texture.RGBA8{R: normalizeField(r, 31), G: normalizeField(g, 31), B: normalizeField(b, 31), A: normalizeField(a, 1)}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.G2B5A1R5G3: // 1555: A(1) R(5) G(5) B(5)
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2 : i*2+2])
			a := (v >> 15) & 0x1
			r := (v >> 10) & 0x1F
			g := (v >> 5) & 0x1F
			b := v & 0x1F
			out[i] = texture.RGBA8{R: normalizeField(r, 31), G: normalizeField(g, 31), B: normalizeField(b, 31), A: normalizeField(a, 1)}
		}
		return Result{RGBA8: out}, nil

	case pixfmt.R16:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(data[i*2 : i*2+2])
			out[i] = texture.RGBA8{R: uint8(v >> 8), A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R16G16:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 4
			out[i] = texture.RGBA8{
				R: uint8(binary.LittleEndian.Uint16(data[o:o+2]) >> 8),
				G: uint8(binary.LittleEndian.Uint16(data[o+2:o+4]) >> 8),
				A: 255,
			}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R16G16B16:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 6
			out[i] = texture.RGBA8{
				R: uint8(binary.LittleEndian.Uint16(data[o:o+2]) >> 8),
				G: uint8(binary.LittleEndian.Uint16(data[o+2:o+4]) >> 8),
				B: uint8(binary.LittleEndian.Uint16(data[o+4:o+6]) >> 8),
				A: 255,
			}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R16G16B16A16:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 8
			out[i] = texture.RGBA8{
				R: uint8(binary.LittleEndian.Uint16(data[o:o+2]) >> 8),
				G: uint8(binary.LittleEndian.Uint16(data[o+2:o+4]) >> 8),
				B: uint8(binary.LittleEndian.Uint16(data[o+4:o+6]) >> 8),
				A: uint8(binary.LittleEndian.Uint16(data[o+6:o+8]) >> 8),
			}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R32:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			out[i] = texture.RGBA8{R: uint8(v >> 24), A: 255}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R32G32:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 8
			out[i] = texture.RGBA8{
				R: uint8(binary.LittleEndian.Uint32(data[o:o+4]) >> 24),
				G: uint8(binary.LittleEndian.Uint32(data[o+4:o+8]) >> 24),
				A: 255,
			}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R32G32B32:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 12
			out[i] = texture.RGBA8{
				R: uint8(binary.LittleEndian.Uint32(data[o:o+4]) >> 24),
				G: uint8(binary.LittleEndian.Uint32(data[o+4:o+8]) >> 24),
				B: uint8(binary.LittleEndian.Uint32(data[o+8:o+12]) >> 24),
				A: 255,
			}
		}
		return Result{RGBA8: out}, nil
	case pixfmt.R32G32B32A32:
		out := make([]texture.RGBA8, n)
		for i := 0; i < n; i++ {
			o := i * 16
			out[i] = texture.RGBA8{
				R: uint8(binary.LittleEndian.Uint32(data[o:o+4]) >> 24),
				G: uint8(binary.LittleEndian.Uint32(data[o+4:o+8]) >> 24),
				B: uint8(binary.LittleEndian.Uint32(data[o+8:o+12]) >> 24),
				A: uint8(binary.LittleEndian.Uint32(data[o+12:o+16]) >> 24),
			}
		}
		return Result{RGBA8: out}, nil

	case pixfmt.R16f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			r := halfToFloat32(binary.LittleEndian.Uint16(data[i*2 : i*2+2]))
			out[i] = texture.RGBAf{R: r, A: 1}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R16G16f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 4
			out[i] = texture.RGBAf{
				R: halfToFloat32(binary.LittleEndian.Uint16(data[o : o+2])),
				G: halfToFloat32(binary.LittleEndian.Uint16(data[o+2 : o+4])),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R16G16B16f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 6
			out[i] = texture.RGBAf{
				R: halfToFloat32(binary.LittleEndian.Uint16(data[o : o+2])),
				G: halfToFloat32(binary.LittleEndian.Uint16(data[o+2 : o+4])),
				B: halfToFloat32(binary.LittleEndian.Uint16(data[o+4 : o+6])),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R16G16B16A16f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 8
			out[i] = texture.RGBAf{
				R: halfToFloat32(binary.LittleEndian.Uint16(data[o : o+2])),
				G: halfToFloat32(binary.LittleEndian.Uint16(data[o+2 : o+4])),
				B: halfToFloat32(binary.LittleEndian.Uint16(data[o+4 : o+6])),
				A: halfToFloat32(binary.LittleEndian.Uint16(data[o+6 : o+8])),
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R32f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			r := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4 : i*4+4]))
			out[i] = texture.RGBAf{R: r, A: 1}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R32G32f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 8
			out[i] = texture.RGBAf{
				R: math.Float32frombits(binary.LittleEndian.Uint32(data[o : o+4])),
				G: math.Float32frombits(binary.LittleEndian.Uint32(data[o+4 : o+8])),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R32G32B32f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 12
			out[i] = texture.RGBAf{
				R: math.Float32frombits(binary.LittleEndian.Uint32(data[o : o+4])),
				G: math.Float32frombits(binary.LittleEndian.Uint32(data[o+4 : o+8])),
				B: math.Float32frombits(binary.LittleEndian.Uint32(data[o+8 : o+12])),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R32G32B32A32f:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 16
			out[i] = texture.RGBAf{
				R: math.Float32frombits(binary.LittleEndian.Uint32(data[o : o+4])),
				G: math.Float32frombits(binary.LittleEndian.Uint32(data[o+4 : o+8])),
				B: math.Float32frombits(binary.LittleEndian.Uint32(data[o+8 : o+12])),
				A: math.Float32frombits(binary.LittleEndian.Uint32(data[o+12 : o+16])),
			}
		}
		return Result{RGBAf: out}, nil

	case pixfmt.R11G11B10uf:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			out[i] = texture.RGBAf{
				R: ufloat(v&0x7FF, 6),
				G: ufloat((v>>11)&0x7FF, 6),
				B: ufloat((v>>22)&0x3FF, 5),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.B10G11R11uf:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			out[i] = texture.RGBAf{
				B: ufloat(v&0x3FF, 5),
				G: ufloat((v>>10)&0x7FF, 6),
				R: ufloat((v>>21)&0x7FF, 6),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R9G9B9E5uf:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			e := (v >> 27) & 0x1F
			out[i] = texture.RGBAf{
				R: sharedExponent(v&0x1FF, e),
				G: sharedExponent((v>>9)&0x1FF, e),
				B: sharedExponent((v>>18)&0x1FF, e),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.E5B9G9R9uf:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint32(data[i*4 : i*4+4])
			e := (v >> 27) & 0x1F
			out[i] = texture.RGBAf{
				B: sharedExponent(v&0x1FF, e),
				G: sharedExponent((v>>9)&0x1FF, e),
				R: sharedExponent((v>>18)&0x1FF, e),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil

	case pixfmt.R8G8B8M8:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 4
			r, g, b, m := data[o], data[o+1], data[o+2], data[o+3]
			scale := float64(m) / 255 * maxRange
			out[i] = texture.RGBAf{
				R: float32(float64(r) / 255 * scale),
				G: float32(float64(g) / 255 * scale),
				B: float32(float64(b) / 255 * scale),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil
	case pixfmt.R8G8B8D8:
		out := make([]texture.RGBAf, n)
		for i := 0; i < n; i++ {
			o := i * 4
			r, g, b, d := data[o], data[o+1], data[o+2], data[o+3]
			if d == 0 {
				out[i] = texture.RGBAf{A: 1}
				continue
			}
			scale := (maxRange / 255) / (float64(d) / 255)
			out[i] = texture.RGBAf{
				R: float32(float64(r) / 255 * scale),
				G: float32(float64(g) / 255 * scale),
				B: float32(float64(b) / 255 * scale),
				A: 1,
			}
		}
		return Result{RGBAf: out}, nil

	default:
		return Result{}, fmt.Errorf("packed: unhandled format %s", pixfmt.Name(f))
	}
}
