// Package dds parses DirectDraw Surface containers: the legacy 124-byte
// header plus optional DX10 extension, resolving pixel format via FourCC,
// DXGI format, or explicit component masks, with the published
// DDS_HEADER_FLAGS_* / DDS_PIXELFORMAT layout constants declared locally.
package dds

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

const (
	magic           = 0x20534444 // "DDS "
	headerSize      = 124
	pfSize          = 32
	maxMipmapLevels = 16

	flagPixelFormat = 0x1000
	flagMipmapCount = 0x20000
	flagDepth       = 0x800000

	pfFourCC      = 0x4
	pfRGB         = 0x40
	pfLuminance   = 0x20000
	pfAlphaPixels = 0x1

	capsMipmap  = 0x400000
	capsCubemap = 0x200

	dx10FourCC = 0x30315844 // "DX10"

	miscTextureCube = 0x4
)

var fourCCFormat = map[uint32]pixfmt.Format{
	fourCC("DXT1"): pixfmt.BC1DXT1,
	fourCC("DXT2"): pixfmt.BC2DXT2DXT3,
	fourCC("DXT3"): pixfmt.BC2DXT2DXT3,
	fourCC("DXT4"): pixfmt.BC3DXT4DXT5,
	fourCC("DXT5"): pixfmt.BC3DXT4DXT5,
	fourCC("ATI1"): pixfmt.BC4ATI1U,
	fourCC("BC4U"): pixfmt.BC4ATI1U,
	fourCC("BC4S"): pixfmt.BC4ATI1S,
	fourCC("ATI2"): pixfmt.BC5ATI2U,
	fourCC("BC5U"): pixfmt.BC5ATI2U,
	fourCC("BC5S"): pixfmt.BC5ATI2S,
	fourCC("ETC "): pixfmt.ETC1,
	fourCC("ETC1"): pixfmt.ETC1,
	fourCC("ETC2"): pixfmt.ETC2RGB,
	fourCC("ETCA"): pixfmt.ETC2RGBA,
	fourCC("ETCP"): pixfmt.ETC2RGBA1,
	111:             pixfmt.R16f,
	112:             pixfmt.R16G16B16A16f,
	113:             pixfmt.R16G16B16A16f,
	114:             pixfmt.R32f,
	115:             pixfmt.R32G32f,
	116:             pixfmt.R32G32B32A32f,
}

func fourCC(s string) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// dxgiFormat maps the subset of DXGI_FORMAT values texcore understands to
// the internal registry. Unmapped values report ok=false.
func dxgiFormat(v uint32) (f pixfmt.Format, sRGB bool, ok bool) {
	switch v {
	case 28:
		return pixfmt.R8G8B8A8, false, true
	case 29:
		return pixfmt.R8G8B8A8, true, true
	case 2:
		return pixfmt.R32G32B32A32, false, true
	case 10:
		return pixfmt.R16G16B16A16, false, true
	case 41:
		return pixfmt.R32, false, true
	case 54:
		return pixfmt.R16, false, true
	case 61:
		return pixfmt.R8, false, true
	case 26:
		return pixfmt.R11G11B10uf, false, true
	case 67:
		return pixfmt.R9G9B9E5uf, false, true
	case 71:
		return pixfmt.BC1DXT1, false, true
	case 72:
		return pixfmt.BC1DXT1, true, true
	case 74:
		return pixfmt.BC2DXT2DXT3, false, true
	case 75:
		return pixfmt.BC2DXT2DXT3, true, true
	case 77:
		return pixfmt.BC3DXT4DXT5, false, true
	case 78:
		return pixfmt.BC3DXT4DXT5, true, true
	case 80:
		return pixfmt.BC4ATI1U, false, true
	case 81:
		return pixfmt.BC4ATI1S, false, true
	case 83:
		return pixfmt.BC5ATI2U, false, true
	case 84:
		return pixfmt.BC5ATI2S, false, true
	case 95:
		return pixfmt.BC6U, false, true
	case 96:
		return pixfmt.BC6S, false, true
	case 98:
		return pixfmt.BC7, false, true
	case 99:
		return pixfmt.BC7, true, true
	default:
		return pixfmt.Invalid, false, false
	}
}

// maskFormat resolves an uncompressed legacy pixel format from its RGB bit
// count and component masks.
func maskFormat(rgbBitCount uint32, r, g, b, a uint32) (pixfmt.Format, bool) {
	switch {
	case rgbBitCount == 32 && r == 0xFF0000 && g == 0xFF00 && b == 0xFF && a == 0xFF000000:
		return pixfmt.B8G8R8A8, true
	case rgbBitCount == 32 && r == 0xFF && g == 0xFF00 && b == 0xFF0000 && a == 0xFF000000:
		return pixfmt.R8G8B8A8, true
	case rgbBitCount == 24 && r == 0xFF0000 && g == 0xFF00 && b == 0xFF:
		return pixfmt.B8G8R8, true
	case rgbBitCount == 16 && r == 0xF800 && g == 0x7E0 && b == 0x1F:
		return pixfmt.G3B5R5G3, true
	case rgbBitCount == 16 && r == 0xF00 && g == 0xF0 && b == 0xF && a == 0xF000:
		return pixfmt.G4B4A4R4, true
	case rgbBitCount == 16 && r == 0x7C00 && g == 0x3E0 && b == 0x1F && a == 0x8000:
		return pixfmt.G2B5A1R5G3, true
	case rgbBitCount == 8 && r == 0xFF && a == 0:
		return pixfmt.L8, true
	case rgbBitCount == 8 && a == 0xFF && r == 0:
		return pixfmt.A8, true
	case rgbBitCount == 16 && r == 0xFF && a == 0xFF00:
		return pixfmt.L8A8, true
	default:
		return pixfmt.Invalid, false
	}
}

// States records warnings and fatal conditions encountered while parsing.
type States uint32

const (
	// Valid is set whenever Decode produced a usable Image; it coexists
	// with any Conditional bit and never with a Fatal one.
	Valid States = 1 << iota

	ConditionalPitchMismatch
	ConditionalMalformedPixelFormat
	ConditionalExtVersionMismatch
	FatalTruncated
	FatalVolumeTexturesNotSupported
	FatalUnresolvedFormat
	FatalBadMagic
	FatalMaxMipmapLevelsExceeded
)

func (s States) Fatal() bool {
	return s&(FatalTruncated|FatalVolumeTexturesNotSupported|FatalUnresolvedFormat|FatalBadMagic|FatalMaxMipmapLevelsExceeded) != 0
}

// Describe returns the stable English description of every bit set in s,
// in bit order.
func (s States) Describe() []string {
	var out []string
	add := func(bit States, text string) {
		if s&bit != 0 {
			out = append(out, text)
		}
	}
	add(Valid, "decode succeeded")
	add(ConditionalPitchMismatch, "declared pitch did not match the computed row pitch")
	add(ConditionalMalformedPixelFormat, "pixel format header was malformed")
	add(ConditionalExtVersionMismatch, "DX10 extension header version did not match the expected value")
	add(FatalTruncated, "file was truncated before all declared data could be read")
	add(FatalVolumeTexturesNotSupported, "volume (3D) textures are not supported")
	add(FatalUnresolvedFormat, "pixel format could not be resolved to a known format")
	add(FatalBadMagic, "file did not start with the expected DDS magic number")
	add(FatalMaxMipmapLevelsExceeded, "mipmap level count exceeded the supported maximum")
	return out
}

// Surface is one face (cubemap) or array slice's full mipmap chain.
type Surface struct {
	Mips []texture.Layer
}

// Image is a fully decoded DDS container.
type Image struct {
	Width, Height int
	Format        pixfmt.Format
	ColourProfile colormodel.Profile
	AlphaMode     colormodel.AlphaMode
	IsCubemap     bool
	NumMipLevels  int
	Surfaces      []Surface
	States        States
}

func isSRGBByDefault(f pixfmt.Format) bool {
	switch f {
	case pixfmt.BC4ATI1U, pixfmt.BC4ATI1S, pixfmt.BC5ATI2U, pixfmt.BC5ATI2S, pixfmt.BC6U, pixfmt.BC6S, pixfmt.A8:
		return false
	default:
		return true
	}
}

func alphaModeForFourCC(cc uint32) colormodel.AlphaMode {
	switch cc {
	case fourCC("DXT2"), fourCC("DXT4"):
		return colormodel.AlphaPremultiplied
	case fourCC("DXT3"), fourCC("DXT5"):
		return colormodel.AlphaNormal
	default:
		return colormodel.AlphaUnspecified
	}
}

// Decode reads a full DDS container, strict controlling whether
// conditional warnings are promoted to fatal errors.
func Decode(r io.Reader, strict bool) (*Image, States, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, FatalTruncated, fmt.Errorf("reading dds stream: %w", err)
	}
	if len(buf) < 4+headerSize {
		return nil, FatalTruncated, fmt.Errorf("dds buffer too short: %d bytes", len(buf))
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != magic {
		return nil, FatalBadMagic, fmt.Errorf("bad dds magic")
	}

	h := buf[4:] // DDS_HEADER, 124 bytes: dwSize, dwFlags, dwHeight, dwWidth, ...
	var st States

	flags := binary.LittleEndian.Uint32(h[4:8])
	height := int(binary.LittleEndian.Uint32(h[8:12]))
	width := int(binary.LittleEndian.Uint32(h[12:16]))
	pitchOrLinear := binary.LittleEndian.Uint32(h[16:20])
	depthFlagSet := flags&flagDepth != 0
	mipCount := int(binary.LittleEndian.Uint32(h[24:28]))
	if flags&flagMipmapCount == 0 || mipCount == 0 {
		mipCount = 1
	}

	hasPitch := flags&0x8 != 0
	hasLinear := flags&0x80000 != 0
	if hasPitch == hasLinear {
		st |= ConditionalPitchMismatch
		_ = pitchOrLinear
	}

	if depthFlagSet {
		return nil, FatalVolumeTexturesNotSupported, fmt.Errorf("volume textures are not supported")
	}

	// DDS_PIXELFORMAT begins at header offset 72 (file offset 76: 4 magic + 72).
	pf := h[72:104]
	pfFlags := binary.LittleEndian.Uint32(pf[4:8])
	cc := binary.LittleEndian.Uint32(pf[8:12])
	rgbBitCount := binary.LittleEndian.Uint32(pf[12:16])
	rMask := binary.LittleEndian.Uint32(pf[16:20])
	gMask := binary.LittleEndian.Uint32(pf[20:24])
	bMask := binary.LittleEndian.Uint32(pf[24:28])
	aMask := binary.LittleEndian.Uint32(pf[28:32])

	caps := binary.LittleEndian.Uint32(h[104:108])
	caps2 := binary.LittleEndian.Uint32(h[108:112])

	var format pixfmt.Format
	var sRGB bool
	var alphaMode colormodel.AlphaMode
	const cubemapFaceMask = 0xFC00 // POSITIVEX..NEGATIVEZ face bits
	cubemap := caps&capsCubemap != 0 && caps2&cubemapFaceMask != 0
	arraySize := 1
	dataOffset := 4 + headerSize

	if pfFlags&pfFourCC != 0 && cc == dx10FourCC {
		if len(buf) < dataOffset+20 {
			return nil, FatalTruncated, fmt.Errorf("dds buffer too short for dx10 extension")
		}
		ext := buf[dataOffset : dataOffset+20]
		dxgiVal := binary.LittleEndian.Uint32(ext[0:4])
		misc2 := binary.LittleEndian.Uint32(ext[12:16])
		arraySize = int(binary.LittleEndian.Uint32(ext[16:20]))
		var ok bool
		format, sRGB, ok = dxgiFormat(dxgiVal)
		if !ok {
			return nil, FatalUnresolvedFormat, fmt.Errorf("unresolved dxgi format %d", dxgiVal)
		}
		if misc2&miscTextureCube != 0 {
			cubemap = true
		}
		dataOffset += 20
	} else if pfFlags&pfFourCC != 0 {
		var ok bool
		format, ok = fourCCFormat[cc]
		if !ok {
			return nil, FatalUnresolvedFormat, fmt.Errorf("unresolved fourcc format")
		}
		sRGB = isSRGBByDefault(format)
		alphaMode = alphaModeForFourCC(cc)
	} else if pfFlags&(pfRGB|pfLuminance) != 0 || pfFlags&pfAlphaPixels != 0 {
		var ok bool
		format, ok = maskFormat(rgbBitCount, rMask, gMask, bMask, aMask)
		if !ok {
			st |= ConditionalMalformedPixelFormat
			format = pixfmt.R8G8B8A8
		}
		sRGB = isSRGBByDefault(format)
	} else {
		st |= ConditionalMalformedPixelFormat
		return nil, st, fmt.Errorf("unresolvable pixel format")
	}

	if mipCount > maxMipmapLevels {
		mipCount = maxMipmapLevels
		st |= FatalMaxMipmapLevelsExceeded
	}

	numImages := 1
	if cubemap {
		numImages = 6 * arraySize
	} else {
		numImages = arraySize
	}

	surfaces := make([]Surface, numImages)
	offset := dataOffset
	for s := 0; s < numImages; s++ {
		w, hh := width, height
		mips := make([]texture.Layer, mipCount)
		for m := 0; m < mipCount; m++ {
			size := pixfmt.DataSize(format, w, hh)
			if offset+size > len(buf) {
				return nil, FatalTruncated, fmt.Errorf("dds data truncated at surface %d mip %d", s, m)
			}
			var l texture.Layer
			if err := l.Set(format, w, hh, buf[offset:offset+size], false); err != nil {
				return nil, FatalUnresolvedFormat, err
			}
			mips[m] = l
			offset += size
			w = max(1, w/2)
			hh = max(1, hh/2)
		}
		surfaces[s] = Surface{Mips: mips}
	}

	if format == pixfmt.BC1DXT1 && len(surfaces) > 0 && len(surfaces[0].Mips) > 0 {
		if bc1HasPunchThroughAlpha(surfaces[0].Mips[0].Data) {
			format = pixfmt.BC1DXT1A
			for s := range surfaces {
				for m := range surfaces[s].Mips {
					surfaces[s].Mips[m].Format = pixfmt.BC1DXT1A
				}
			}
		}
	}

	profile := colormodel.LRGB
	if sRGB {
		profile = colormodel.SRGB
	}

	if strict && st != 0 {
		if st&(ConditionalPitchMismatch|ConditionalMalformedPixelFormat) != 0 {
			st |= FatalUnresolvedFormat
		}
		return nil, st, fmt.Errorf("strict mode: conditional promoted to fatal")
	}

	st |= Valid

	return &Image{
		Width:         width,
		Height:        height,
		Format:        format,
		ColourProfile: profile,
		AlphaMode:     alphaMode,
		IsCubemap:     cubemap,
		NumMipLevels:  mipCount,
		Surfaces:      surfaces,
		States:        st,
	}, st, nil
}

// bc1HasPunchThroughAlpha scans every 4x4 BC1 block in data (the first
// mip only) for the punch-through alpha encoding: colour0 <= colour1
// (unsigned 565 comparison) and at least one 2-bit index == 0b11.
func bc1HasPunchThroughAlpha(data []byte) bool {
	for off := 0; off+8 <= len(data); off += 8 {
		c0 := binary.LittleEndian.Uint16(data[off : off+2])
		c1 := binary.LittleEndian.Uint16(data[off+2 : off+4])
		if c0 > c1 {
			continue
		}
		indices := binary.LittleEndian.Uint32(data[off+4 : off+8])
		for i := 0; i < 16; i++ {
			if (indices>>(2*i))&0x3 == 0x3 {
				return true
			}
		}
	}
	return false
}
