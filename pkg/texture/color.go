package texture

import (
	"encoding/binary"
	"fmt"
	"math"
)

// RGBA8 is an 8-bit-per-channel decoded pixel.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGBAf is a 32-bit-float-per-channel decoded pixel, used for HDR decode
// output. It marshals as four little-endian float32 fields.
type RGBAf struct {
	R, G, B, A float32
}

// RGBAfFromBytes reads an RGBAf from 16 bytes (4 little-endian float32s).
func RGBAfFromBytes(data []byte) RGBAf {
	if len(data) < 16 {
		return RGBAf{}
	}
	return RGBAf{
		R: math.Float32frombits(binary.LittleEndian.Uint32(data[0:4])),
		G: math.Float32frombits(binary.LittleEndian.Uint32(data[4:8])),
		B: math.Float32frombits(binary.LittleEndian.Uint32(data[8:12])),
		A: math.Float32frombits(binary.LittleEndian.Uint32(data[12:16])),
	}
}

// ToBytes writes c to 16 bytes (4 little-endian float32s).
func (c RGBAf) ToBytes() []byte {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint32(data[0:4], math.Float32bits(c.R))
	binary.LittleEndian.PutUint32(data[4:8], math.Float32bits(c.G))
	binary.LittleEndian.PutUint32(data[8:12], math.Float32bits(c.B))
	binary.LittleEndian.PutUint32(data[12:16], math.Float32bits(c.A))
	return data
}

func (c RGBAf) String() string {
	return fmt.Sprintf("RGBAf(%.4f, %.4f, %.4f, %.4f)", c.R, c.G, c.B, c.A)
}

// ToRGBA8 clamps and quantizes c to an 8-bit pixel.
func (c RGBAf) ToRGBA8() RGBA8 {
	clamp := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return RGBA8{clamp(c.R), clamp(c.G), clamp(c.B), clamp(c.A)}
}

// ToRGBAf expands an 8-bit pixel to float.
func (c RGBA8) ToRGBAf() RGBAf {
	return RGBAf{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}
