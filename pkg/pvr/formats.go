package pvr

import (
	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/pixfmt"
)

// formatInfo is the result of resolving a PVR pixel-format spec: the
// internal registry format plus the colour profile/alpha-mode/channel-type
// triple the header (or header+channel-type pair, for V3) implies.
type formatInfo struct {
	Format      pixfmt.Format
	Profile     colormodel.Profile
	AlphaMode   colormodel.AlphaMode
	ChannelType colormodel.ChannelType
}

// formatInfoFromV1V2 resolves a V1/V2 HeaderV1V2.PixelFormat byte (the
// PVRLFMT enumeration) to a formatInfo. ok is false for PVRLFMT codes
// texcore does not carry a decoder for and for unrecognized bytes: the
// PixelFormat stays Invalid and the caller reports
// Fatal_PixelFormatNotSupported.
func formatInfoFromV1V2(pf byte) (formatInfo, bool) {
	info := formatInfo{Format: pixfmt.Invalid, Profile: colormodel.SRGB}
	switch pf {
	case 0x00, 0x10: // ARGB_4444, ARGB_4444_ALT
		info.Format = pixfmt.G4B4A4R4
	case 0x01, 0x11: // ARGB_1555, ARGB_1555_ALT
		info.Format = pixfmt.G3B5A1R5G2
	case 0x02, 0x13: // RGB_565, RGB_565_ALT
		info.Format = pixfmt.G3B5R5G3
	case 0x04, 0x15: // RGB_888, RGB_888_ALT
		info.Format = pixfmt.R8G8B8
	case 0x05: // ARGB_8888
		info.Format = pixfmt.B8G8R8A8
	case 0x12: // ARGB_8888_ALT
		info.Format = pixfmt.R8G8B8A8
	case 0x07, 0x16: // I_8, I_8_ALT
		info.Format = pixfmt.L8
	case 0x08, 0x17: // AI_88, AI_88_ALT
		info.Format = pixfmt.L8A8
	case 0x0C, 0x18: // PVRTC2, PVRTC2_ALT
		info.Format = pixfmt.PVRBPP2
	case 0x0D, 0x19: // PVRTC4, PVRTC4_ALT
		info.Format = pixfmt.PVRBPP4
	case 0x1A: // BGRA_8888
		info.Format = pixfmt.B8G8R8A8
	case 0x20: // DXT1
		info.Format = pixfmt.BC1DXT1
	case 0x21: // DXT2
		info.Format = pixfmt.BC2DXT2DXT3
		info.AlphaMode = colormodel.AlphaPremultiplied
	case 0x22: // DXT3
		info.Format = pixfmt.BC2DXT2DXT3
	case 0x23: // DXT4
		info.Format = pixfmt.BC3DXT4DXT5
		info.AlphaMode = colormodel.AlphaPremultiplied
	case 0x24: // DXT5
		info.Format = pixfmt.BC3DXT4DXT5
	case 0x30: // R_16F
		info.Format, info.Profile, info.ChannelType = pixfmt.R16f, colormodel.LRGB, colormodel.SFLOAT
	case 0x31: // GR_1616F
		info.Format, info.Profile, info.ChannelType = pixfmt.R16G16f, colormodel.LRGB, colormodel.SFLOAT
	case 0x32: // ABGR_16161616F
		info.Format, info.Profile, info.ChannelType = pixfmt.R16G16B16A16f, colormodel.LRGB, colormodel.SFLOAT
	case 0x33: // R_32F
		info.Format, info.Profile, info.ChannelType = pixfmt.R32f, colormodel.LRGB, colormodel.SFLOAT
	case 0x34: // GR_3232F
		info.Format, info.Profile, info.ChannelType = pixfmt.R32G32f, colormodel.LRGB, colormodel.SFLOAT
	case 0x35: // ABGR_32323232F
		info.Format, info.Profile, info.ChannelType = pixfmt.R32G32B32A32f, colormodel.LRGB, colormodel.SFLOAT
	case 0x36: // ETC. V2 ETC1 files from PVRTexTool are always linear.
		info.Format, info.Profile = pixfmt.ETC1, colormodel.LRGB
	case 0x40: // A_8
		info.Format = pixfmt.A8
	case 0x43: // L8
		info.Format, info.Profile, info.ChannelType = pixfmt.L8, colormodel.LRGB, colormodel.UINT
	default:
		return info, false
	}
	return info, true
}

// formatInfoFromV3Canonical resolves the lower 32 bits of a V3 header's
// 64-bit PixelFormat field when the upper 32 bits are zero (the "canonical
// enumerated format" branch, PVR3FMT). chanType is the channel type
// already resolved from the header's separate ChannelType field; it
// selects between signed/unsigned BC4/BC5/EAC variants and is itself
// overridden for formats that mandate one (BC6 and R9G9B9E5 force
// HDRa+UFLOAT; RGBM/RGBD force HDRa and keep chanType).
//
// PVRTC-II is not matched: texcore carries no PVRTC-II decoder, so those
// codes fall through to the unsupported default.
func formatInfoFromV3Canonical(fmtLS32 uint32, chanType colormodel.ChannelType) (pixfmt.Format, colormodel.Profile, colormodel.AlphaMode, colormodel.ChannelType, bool) {
	profile := colormodel.Unspecified
	alpha := colormodel.AlphaUnspecified
	switch fmtLS32 {
	case 0x00, 0x01: // PVRTC_2BPP_RGB, PVRTC_2BPP_RGBA
		return pixfmt.PVRBPP2, profile, alpha, chanType, true
	case 0x02, 0x03: // PVRTC_4BPP_RGB, PVRTC_4BPP_RGBA
		return pixfmt.PVRBPP4, profile, alpha, chanType, true
	case 0x06: // ETC1
		return pixfmt.ETC1, profile, alpha, chanType, true
	case 0x07: // DXT1_BC1
		return pixfmt.BC1DXT1, profile, alpha, chanType, true
	case 0x08: // DXT2
		return pixfmt.BC2DXT2DXT3, profile, colormodel.AlphaPremultiplied, chanType, true
	case 0x09: // DXT3_BC2
		return pixfmt.BC2DXT2DXT3, profile, alpha, chanType, true
	case 0x0A: // DXT4
		return pixfmt.BC3DXT4DXT5, profile, colormodel.AlphaPremultiplied, chanType, true
	case 0x0B: // DXT5_BC3
		return pixfmt.BC3DXT4DXT5, profile, alpha, chanType, true
	case 0x0C: // BC4
		if chanType == colormodel.SNORM {
			return pixfmt.BC4ATI1S, colormodel.LRGB, alpha, chanType, true
		}
		return pixfmt.BC4ATI1U, colormodel.LRGB, alpha, chanType, true
	case 0x0D: // BC5
		if chanType == colormodel.SNORM {
			return pixfmt.BC5ATI2S, colormodel.LRGB, alpha, chanType, true
		}
		return pixfmt.BC5ATI2U, colormodel.LRGB, alpha, chanType, true
	case 0x0E: // BC6. The header does not say signed or unsigned; assume unsigned.
		return pixfmt.BC6U, colormodel.HDRa, alpha, colormodel.UFLOAT, true
	case 0x0F: // BC7
		return pixfmt.BC7, profile, alpha, chanType, true
	case 0x13: // R9G9B9E5_Shared_Exponent
		return pixfmt.R9G9B9E5uf, colormodel.HDRa, alpha, colormodel.UFLOAT, true
	case 0x16: // ETC2_RGB
		return pixfmt.ETC2RGB, profile, alpha, chanType, true
	case 0x17: // ETC2_RGBA
		return pixfmt.ETC2RGBA, profile, alpha, chanType, true
	case 0x18: // ETC2_RGB_A1
		return pixfmt.ETC2RGBA1, profile, alpha, chanType, true
	case 0x19: // EAC_R11
		if chanType == colormodel.SNORM {
			return pixfmt.EACR11S, profile, alpha, chanType, true
		}
		return pixfmt.EACR11U, profile, alpha, chanType, true
	case 0x1A: // EAC_RG11
		if chanType == colormodel.SNORM {
			return pixfmt.EACRG11S, profile, alpha, chanType, true
		}
		return pixfmt.EACRG11U, profile, alpha, chanType, true
	case 0x1B:
		return pixfmt.ASTC4X4, profile, alpha, chanType, true
	case 0x1C:
		return pixfmt.ASTC5X4, profile, alpha, chanType, true
	case 0x1D:
		return pixfmt.ASTC5X5, profile, alpha, chanType, true
	case 0x1E:
		return pixfmt.ASTC6X5, profile, alpha, chanType, true
	case 0x1F:
		return pixfmt.ASTC6X6, profile, alpha, chanType, true
	case 0x20:
		return pixfmt.ASTC8X5, profile, alpha, chanType, true
	case 0x21:
		return pixfmt.ASTC8X6, profile, alpha, chanType, true
	case 0x22:
		return pixfmt.ASTC8X8, profile, alpha, chanType, true
	case 0x23:
		return pixfmt.ASTC10X5, profile, alpha, chanType, true
	case 0x24:
		return pixfmt.ASTC10X6, profile, alpha, chanType, true
	case 0x25:
		return pixfmt.ASTC10X8, profile, alpha, chanType, true
	case 0x26:
		return pixfmt.ASTC10X10, profile, alpha, chanType, true
	case 0x27:
		return pixfmt.ASTC12X10, profile, alpha, chanType, true
	case 0x28:
		return pixfmt.ASTC12X12, profile, alpha, chanType, true
	case 0x35: // RGBM
		return pixfmt.R8G8B8M8, colormodel.HDRa, alpha, chanType, true
	case 0x36: // RGBD
		return pixfmt.R8G8B8D8, colormodel.HDRa, alpha, chanType, true
	default:
		return pixfmt.Invalid, colormodel.Unspecified, colormodel.AlphaNone, colormodel.ChannelNone, false
	}
}

// fourCC packs 4 ASCII bytes little-endian.
func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// swapEndian32 byte-reverses a uint32. The V3 channel-bits sub-field is
// compared against byte-swapped constants so the literal
// 0x10101010-style masks below read naturally as per-channel bit counts
// on an LE host.
func swapEndian32(v uint32) uint32 {
	return v>>24 | (v>>8)&0xFF00 | (v<<8)&0xFF0000 | v<<24
}

// formatInfoFromV3ChannelBits resolves the "channel-bits FourCC" branch of
// a V3 PixelFormat field (upper 32 bits non-zero): fmtLS32 names the
// channel order as a 4-character FourCC, fmtMS32 packs one bit-count byte
// per channel. sFloat/uFloat select which of each FourCC's two per-channel
// sub-tables applies.
func formatInfoFromV3ChannelBits(fmtLS32, fmtMS32 uint32, chanType colormodel.ChannelType) (pixfmt.Format, colormodel.Profile, bool) {
	sFloat := chanType == colormodel.SFLOAT
	uFloat := chanType == colormodel.UFLOAT

	switch fmtLS32 {
	case fourCC('r', 0, 0, 0):
		if sFloat {
			switch fmtMS32 {
			case swapEndian32(0x10000000):
				return pixfmt.R16f, colormodel.HDRa, true
			case swapEndian32(0x20000000):
				return pixfmt.R32f, colormodel.HDRa, true
			}
		} else {
			switch fmtMS32 {
			case swapEndian32(0x10000000):
				return pixfmt.R16, colormodel.LRGB, true
			case swapEndian32(0x20000000):
				return pixfmt.R32, colormodel.LRGB, true
			}
		}

	case fourCC('r', 'g', 0, 0):
		if sFloat {
			switch fmtMS32 {
			case swapEndian32(0x10100000):
				return pixfmt.R16G16f, colormodel.HDRa, true
			case swapEndian32(0x20200000):
				return pixfmt.R32G32f, colormodel.HDRa, true
			}
		} else {
			switch fmtMS32 {
			case swapEndian32(0x10100000):
				return pixfmt.R16G16, colormodel.LRGB, true
			case swapEndian32(0x20200000):
				return pixfmt.R32G32, colormodel.LRGB, true
			}
		}

	case fourCC('r', 'g', 'b', 0):
		if sFloat {
			switch fmtMS32 {
			case swapEndian32(0x10101000):
				return pixfmt.R16G16B16f, colormodel.HDRa, true
			case swapEndian32(0x20202000):
				return pixfmt.R32G32B32f, colormodel.HDRa, true
			}
		} else {
			switch fmtMS32 {
			case swapEndian32(0x05060500): // LE PVR: R5 G6 B5.
				return pixfmt.G3B5R5G3, colormodel.Unspecified, true
			case swapEndian32(0x10101000):
				return pixfmt.R16G16B16, colormodel.LRGB, true
			case swapEndian32(0x20202000):
				return pixfmt.R32G32B32, colormodel.LRGB, true
			}
		}

	case fourCC('b', 'g', 'r', 0):
		if uFloat && fmtMS32 == swapEndian32(0x0a0b0b00) { // PVR: B10 G11 R11 UFLOAT.
			return pixfmt.B10G11R11uf, colormodel.Unspecified, true
		}

	case fourCC('r', 'g', 'b', 'a'):
		if sFloat {
			switch fmtMS32 {
			case swapEndian32(0x10101010):
				return pixfmt.R16G16B16A16f, colormodel.Unspecified, true
			case swapEndian32(0x20202020):
				return pixfmt.R32G32B32A32f, colormodel.Unspecified, true
			}
		} else {
			switch fmtMS32 {
			case swapEndian32(0x08080808):
				return pixfmt.R8G8B8A8, colormodel.Unspecified, true
			case swapEndian32(0x04040404):
				return pixfmt.B4A4R4G4, colormodel.Unspecified, true
			case swapEndian32(0x05050501):
				return pixfmt.G2B5A1R5G3, colormodel.Unspecified, true
			case swapEndian32(0x10101010):
				return pixfmt.R16G16B16A16, colormodel.LRGB, true
			case swapEndian32(0x20202020):
				return pixfmt.R32G32B32A32, colormodel.LRGB, true
			}
		}

	case fourCC('a', 'r', 'g', 'b'):
		switch fmtMS32 {
		case swapEndian32(0x01050505): // LE PVR: A1 R5 G5 B5.
			return pixfmt.G3B5A1R5G2, colormodel.Unspecified, true
		case swapEndian32(0x04040404): // LE PVR: A4 R4 G4 B4.
			return pixfmt.G4B4A4R4, colormodel.Unspecified, true
		}

	case fourCC('b', 'g', 'r', 'a'):
		if fmtMS32 == swapEndian32(0x08080808) {
			return pixfmt.B8G8R8A8, colormodel.Unspecified, true
		}
	}
	return pixfmt.Invalid, colormodel.Unspecified, false
}
