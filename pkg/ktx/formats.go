package ktx

import (
	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/pixfmt"
)

// GL and VK enum values below are the fixed, public Khronos/Vulkan registry
// constants (OpenGL's gl_format.h / Vulkan's vulkan_core.h); texcore has no
// GL/Vulkan headers of its own to include them from, so the ones it
// resolves are declared locally.
const (
	glUnsignedByte        = 0x1401
	glFloat               = 0x1406
	glHalfFloat           = 0x140B
	glUnsignedShort565Rev = 0x8364
	glUnsignedShort565    = 0x8363
	glUnsignedShort4444   = 0x8033
	glUnsignedShort5551   = 0x8034

	glLuminance   = 0x1909
	glAlpha       = 0x1906
	glRed         = 0x1903
	glRedInteger  = 0x8D94
	glRG          = 0x8227
	glRGInteger   = 0x8228
	glRGB         = 0x1907
	glRGBInteger  = 0x8D98
	glRGBA        = 0x1908
	glRGBAInteger = 0x8D99
	glBGR         = 0x80E0
	glBGRInteger  = 0x8D9A
	glBGRA        = 0x80E1
	glBGRAInteger = 0x8D9B

	glEtc1RGB8Oes = 0x8D64

	glCompressedRGBS3TCDXT1EXT      = 0x83F0
	glCompressedSRGBS3TCDXT1EXT     = 0x8C4C
	glCompressedRGBAS3TCDXT1EXT     = 0x83F1
	glCompressedSRGBAlphaS3TCDXT1EXT = 0x8C4D
	glCompressedRGBAS3TCDXT3EXT     = 0x83F2
	glCompressedSRGBAlphaS3TCDXT3EXT = 0x8C4E
	glCompressedRGBAS3TCDXT5EXT     = 0x83F3
	glCompressedSRGBAlphaS3TCDXT5EXT = 0x8C4F

	glCompressedRedRGTC1       = 0x8DBB
	glCompressedSignedRedRGTC1 = 0x8DBC
	glCompressedRGRGTC2        = 0x8DBD
	glCompressedSignedRGRGTC2  = 0x8DBE

	glCompressedRGBBPTCUnsignedFloat = 0x8E8F
	glCompressedRGBBPTCSignedFloat   = 0x8E8E
	glCompressedRGBABPTCUnorm        = 0x8E8C
	glCompressedSRGBAlphaBPTCUnorm   = 0x8E8D

	glCompressedRGB8ETC2                      = 0x9274
	glCompressedSRGB8ETC2                     = 0x9275
	glCompressedRGBA8ETC2EAC                  = 0x9278
	glCompressedSRGB8Alpha8ETC2EAC            = 0x9279
	glCompressedRGB8PunchThroughAlpha1ETC2    = 0x9276
	glCompressedSRGB8PunchThroughAlpha1ETC2   = 0x9277
	glCompressedR11EAC                        = 0x9270
	glCompressedSignedR11EAC                  = 0x9271
	glCompressedRG11EAC                       = 0x9272
	glCompressedSignedRG11EAC                 = 0x9273

	glCompressedRGBAASTC4x4KHR = 0x93B0
	glCompressedSRGB8Alpha8ASTC4x4KHR = 0x93D0

	glR11FG11FB10F = 0x8C3A
	glRGB9E5       = 0x8C3D
)

// astcBlockOrder lists the ASTC footprints in the same order the KHR_ASTC
// and SRGB_ALPHA8_ASTC enum ranges enumerate them, letting both GL and VK
// lookups compute an offset rather than spell out 14 constants twice.
var astcBlockOrder = []pixfmt.Format{
	pixfmt.ASTC4X4, pixfmt.ASTC5X4, pixfmt.ASTC5X5, pixfmt.ASTC6X5, pixfmt.ASTC6X6,
	pixfmt.ASTC8X5, pixfmt.ASTC8X6, pixfmt.ASTC8X8, pixfmt.ASTC10X5, pixfmt.ASTC10X6,
	pixfmt.ASTC10X8, pixfmt.ASTC10X10, pixfmt.ASTC12X10, pixfmt.ASTC12X12,
}

type formatInfo struct {
	Format    pixfmt.Format
	Profile   colormodel.Profile
	AlphaMode colormodel.AlphaMode
	ChanType  colormodel.ChannelType
}

// formatInfoFromGL resolves glType/glFormat/glInternalFormat the way
// tKTX::GetFormatInfo_FromGLFormat does: compressed formats are identified
// solely by glInternalFormat; everything else falls back to the
// glFormat/glType pair.
func formatInfoFromGL(glType, glFormat, glInternalFormat uint32) (formatInfo, bool) {
	if off := int(glInternalFormat) - glCompressedRGBAASTC4x4KHR; off >= 0 && off < len(astcBlockOrder) {
		return formatInfo{astcBlockOrder[off], colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	}
	if off := int(glInternalFormat) - glCompressedSRGB8Alpha8ASTC4x4KHR; off >= 0 && off < len(astcBlockOrder) {
		return formatInfo{astcBlockOrder[off], colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	}

	switch glInternalFormat {
	case glCompressedRGBS3TCDXT1EXT:
		return formatInfo{pixfmt.BC1DXT1, colormodel.LRGB, colormodel.AlphaNone, colormodel.ChannelUnspecified}, true
	case glCompressedSRGBS3TCDXT1EXT:
		return formatInfo{pixfmt.BC1DXT1, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedRGBAS3TCDXT1EXT:
		return formatInfo{pixfmt.BC1DXT1A, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedSRGBAlphaS3TCDXT1EXT:
		return formatInfo{pixfmt.BC1DXT1A, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedRGBAS3TCDXT3EXT:
		return formatInfo{pixfmt.BC2DXT2DXT3, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedSRGBAlphaS3TCDXT3EXT:
		return formatInfo{pixfmt.BC2DXT2DXT3, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedRGBAS3TCDXT5EXT:
		return formatInfo{pixfmt.BC3DXT4DXT5, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedSRGBAlphaS3TCDXT5EXT:
		return formatInfo{pixfmt.BC3DXT4DXT5, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedRedRGTC1:
		return formatInfo{pixfmt.BC4ATI1U, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case glCompressedSignedRedRGTC1:
		return formatInfo{pixfmt.BC4ATI1S, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.SNORM}, true
	case glCompressedRGRGTC2:
		return formatInfo{pixfmt.BC5ATI2U, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case glCompressedSignedRGRGTC2:
		return formatInfo{pixfmt.BC5ATI2S, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.SNORM}, true
	case glCompressedRGBBPTCUnsignedFloat:
		return formatInfo{pixfmt.BC6U, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.UFLOAT}, true
	case glCompressedRGBBPTCSignedFloat:
		return formatInfo{pixfmt.BC6S, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case glCompressedRGBABPTCUnorm:
		return formatInfo{pixfmt.BC7, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case glCompressedSRGBAlphaBPTCUnorm:
		return formatInfo{pixfmt.BC7, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true

	case glEtc1RGB8Oes:
		return formatInfo{pixfmt.ETC1, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedRGB8ETC2:
		return formatInfo{pixfmt.ETC2RGB, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedSRGB8ETC2:
		return formatInfo{pixfmt.ETC2RGB, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedRGBA8ETC2EAC:
		return formatInfo{pixfmt.ETC2RGBA, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedSRGB8Alpha8ETC2EAC:
		return formatInfo{pixfmt.ETC2RGBA, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedRGB8PunchThroughAlpha1ETC2:
		return formatInfo{pixfmt.ETC2RGBA1, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedSRGB8PunchThroughAlpha1ETC2:
		return formatInfo{pixfmt.ETC2RGBA1, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case glCompressedR11EAC:
		return formatInfo{pixfmt.EACR11U, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case glCompressedSignedR11EAC:
		return formatInfo{pixfmt.EACR11S, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case glCompressedRG11EAC:
		return formatInfo{pixfmt.EACRG11U, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case glCompressedSignedRG11EAC:
		return formatInfo{pixfmt.EACRG11S, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true

	case glR11FG11FB10F:
		return formatInfo{pixfmt.B10G11R11uf, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.UFLOAT}, true
	case glRGB9E5:
		return formatInfo{pixfmt.E5B9G9R9uf, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.UFLOAT}, true
	}

	switch glFormat {
	case glLuminance:
		if glType == glUnsignedByte {
			return formatInfo{pixfmt.L8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		}
	case glAlpha:
		if glType == glUnsignedByte {
			return formatInfo{pixfmt.A8, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		}
	case glRed, glRedInteger:
		switch glType {
		case glUnsignedByte:
			return formatInfo{pixfmt.R8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		case glHalfFloat:
			return formatInfo{pixfmt.R16f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
		case glFloat:
			return formatInfo{pixfmt.R32f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
		}
	case glRG, glRGInteger:
		switch glType {
		case glUnsignedByte:
			return formatInfo{pixfmt.R8G8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		case glHalfFloat:
			return formatInfo{pixfmt.R16G16f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
		case glFloat:
			return formatInfo{pixfmt.R32G32f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
		}
	case glRGB, glRGBInteger:
		switch glType {
		case glUnsignedByte:
			return formatInfo{pixfmt.R8G8B8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		case glUnsignedShort565Rev:
			return formatInfo{pixfmt.G3B5R5G3, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		}
	case glRGBA, glRGBAInteger:
		switch glType {
		case glUnsignedByte:
			return formatInfo{pixfmt.R8G8B8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		case glHalfFloat:
			return formatInfo{pixfmt.R16G16B16A16f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
		case glFloat:
			return formatInfo{pixfmt.R32G32B32A32f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
		}
	case glBGR, glBGRInteger:
		switch glType {
		case glUnsignedByte:
			return formatInfo{pixfmt.B8G8R8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		case glUnsignedShort565:
			return formatInfo{pixfmt.G3B5R5G3, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		}
	case glBGRA, glBGRAInteger:
		switch glType {
		case glUnsignedByte:
			return formatInfo{pixfmt.B8G8R8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		case glUnsignedShort4444:
			return formatInfo{pixfmt.G4B4A4R4, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		case glUnsignedShort5551:
			return formatInfo{pixfmt.G3B5A1R5G2, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
		}
	}

	return formatInfo{}, false
}

// Vulkan core format numbers (from vulkan_core.h) used by KTX2.
const (
	vkFormatB4G4R4A4UnormPack16 = 3
	vkFormatB5G6R5UnormPack16   = 5
	vkFormatB5G5R5A1UnormPack16 = 6
	vkFormatR8Unorm             = 9
	vkFormatR8Uint              = 13
	vkFormatR8Srgb              = 15
	vkFormatR8G8Unorm           = 16
	vkFormatR8G8Uint            = 20
	vkFormatR8G8Srgb            = 22
	vkFormatR8G8B8Unorm         = 23
	vkFormatR8G8B8Uint          = 27
	vkFormatR8G8B8Srgb          = 29
	vkFormatB8G8R8Unorm         = 30
	vkFormatB8G8R8Uint          = 34
	vkFormatB8G8R8Srgb          = 36
	vkFormatR8G8B8A8Unorm       = 37
	vkFormatR8G8B8A8Uint        = 41
	vkFormatR8G8B8A8Srgb        = 43
	vkFormatB8G8R8A8Unorm       = 44
	vkFormatB8G8R8A8Uint        = 48
	vkFormatB8G8R8A8Srgb        = 50
	vkFormatR16Sfloat           = 76
	vkFormatR16G16Sfloat        = 83
	vkFormatR16G16B16A16Sfloat  = 97
	vkFormatR32Sfloat           = 100
	vkFormatR32G32Sfloat        = 103
	vkFormatR32G32B32A32Sfloat  = 109
	vkFormatB10G11R11UfloatPack32 = 122
	vkFormatE5B9G9R9UfloatPack32   = 123

	vkFormatBC1RGBUnormBlock  = 131
	vkFormatBC1RGBSrgbBlock   = 132
	vkFormatBC1RGBAUnormBlock = 133
	vkFormatBC1RGBASrgbBlock  = 134
	vkFormatBC2UnormBlock     = 135
	vkFormatBC2SrgbBlock      = 136
	vkFormatBC3UnormBlock     = 137
	vkFormatBC3SrgbBlock      = 138
	vkFormatBC4UnormBlock     = 139
	vkFormatBC4SnormBlock     = 140
	vkFormatBC5UnormBlock     = 141
	vkFormatBC5SnormBlock     = 142
	vkFormatBC6HUfloatBlock   = 143
	vkFormatBC6HSfloatBlock   = 144
	vkFormatBC7UnormBlock     = 145
	vkFormatBC7SrgbBlock      = 146

	vkFormatEtc2R8G8B8UnormBlock   = 147
	vkFormatEtc2R8G8B8SrgbBlock    = 148
	vkFormatEtc2R8G8B8A1UnormBlock = 149
	vkFormatEtc2R8G8B8A1SrgbBlock  = 150
	vkFormatEtc2R8G8B8A8UnormBlock = 151
	vkFormatEtc2R8G8B8A8SrgbBlock  = 152
	vkFormatEacR11UnormBlock       = 153
	vkFormatEacR11SnormBlock       = 154
	vkFormatEacR11G11UnormBlock    = 155
	vkFormatEacR11G11SnormBlock    = 156

	vkFormatAstc4x4UnormBlock = 157
	vkFormatAstc4x4SrgbBlock  = 158

	// The SFLOAT_BLOCK_EXT range comes from VK_EXT_texture_compression_astc_hdr,
	// numbered sequentially starting at this extension base.
	vkFormatAstc4x4SfloatBlockExt = 1000066000
)

// formatInfoFromVK resolves a KTX2 vkFormat to the internal format,
// colour profile, alpha mode, and channel type. ASTC codes are handled
// arithmetically (the registry assigns UNORM/SRGB pairs and the SFLOAT
// extension range in block-size order), everything else by explicit case.
func formatInfoFromVK(vkFormat uint32) (formatInfo, bool) {
	if off := int(vkFormat) - vkFormatAstc4x4UnormBlock; off >= 0 && off < 2*len(astcBlockOrder) {
		f := astcBlockOrder[off/2]
		if off%2 == 0 {
			return formatInfo{f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.UNORM}, true
		}
		return formatInfo{f, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	}
	if off := int(vkFormat) - vkFormatAstc4x4SfloatBlockExt; off >= 0 && off < len(astcBlockOrder) {
		return formatInfo{astcBlockOrder[off], colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	}

	switch vkFormat {
	case vkFormatR8Unorm:
		return formatInfo{pixfmt.R8, colormodel.SRGB, colormodel.AlphaNone, colormodel.UNORM}, true
	case vkFormatR8Uint:
		return formatInfo{pixfmt.R8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case vkFormatR8Srgb:
		return formatInfo{pixfmt.R8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatR8G8Unorm:
		return formatInfo{pixfmt.R8G8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatR8G8Uint:
		return formatInfo{pixfmt.R8G8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case vkFormatR8G8Srgb:
		return formatInfo{pixfmt.R8G8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatR8G8B8Unorm:
		return formatInfo{pixfmt.R8G8B8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatR8G8B8Uint:
		return formatInfo{pixfmt.R8G8B8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case vkFormatR8G8B8Srgb:
		return formatInfo{pixfmt.R8G8B8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatR8G8B8A8Unorm:
		return formatInfo{pixfmt.R8G8B8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatR8G8B8A8Uint:
		return formatInfo{pixfmt.R8G8B8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case vkFormatR8G8B8A8Srgb:
		return formatInfo{pixfmt.R8G8B8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatB8G8R8Unorm:
		return formatInfo{pixfmt.B8G8R8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatB8G8R8Uint:
		return formatInfo{pixfmt.B8G8R8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case vkFormatB8G8R8Srgb:
		return formatInfo{pixfmt.B8G8R8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatB8G8R8A8Unorm:
		return formatInfo{pixfmt.B8G8R8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatB8G8R8A8Uint:
		return formatInfo{pixfmt.B8G8R8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UINT}, true
	case vkFormatB8G8R8A8Srgb:
		return formatInfo{pixfmt.B8G8R8A8, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatB5G6R5UnormPack16:
		return formatInfo{pixfmt.G3B5R5G3, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatB4G4R4A4UnormPack16:
		return formatInfo{pixfmt.G4B4A4R4, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatB5G5R5A1UnormPack16:
		return formatInfo{pixfmt.G3B5A1R5G2, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatR16Sfloat:
		return formatInfo{pixfmt.R16f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatR16G16Sfloat:
		return formatInfo{pixfmt.R16G16f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatR16G16B16A16Sfloat:
		return formatInfo{pixfmt.R16G16B16A16f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatR32Sfloat:
		return formatInfo{pixfmt.R32f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatR32G32Sfloat:
		return formatInfo{pixfmt.R32G32f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatR32G32B32A32Sfloat:
		return formatInfo{pixfmt.R32G32B32A32f, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatB10G11R11UfloatPack32:
		return formatInfo{pixfmt.B10G11R11uf, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.UFLOAT}, true
	case vkFormatE5B9G9R9UfloatPack32:
		return formatInfo{pixfmt.E5B9G9R9uf, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.UFLOAT}, true

	case vkFormatBC1RGBUnormBlock:
		return formatInfo{pixfmt.BC1DXT1, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatBC1RGBSrgbBlock:
		return formatInfo{pixfmt.BC1DXT1, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatBC1RGBAUnormBlock:
		return formatInfo{pixfmt.BC1DXT1A, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatBC1RGBASrgbBlock:
		return formatInfo{pixfmt.BC1DXT1A, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatBC2UnormBlock:
		return formatInfo{pixfmt.BC2DXT2DXT3, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatBC2SrgbBlock:
		return formatInfo{pixfmt.BC2DXT2DXT3, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatBC3UnormBlock:
		return formatInfo{pixfmt.BC3DXT4DXT5, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatBC3SrgbBlock:
		return formatInfo{pixfmt.BC3DXT4DXT5, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatBC4UnormBlock:
		return formatInfo{pixfmt.BC4ATI1U, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatBC4SnormBlock:
		return formatInfo{pixfmt.BC4ATI1S, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.SNORM}, true
	case vkFormatBC5UnormBlock:
		return formatInfo{pixfmt.BC5ATI2U, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatBC5SnormBlock:
		return formatInfo{pixfmt.BC5ATI2S, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.SNORM}, true
	case vkFormatBC6HUfloatBlock:
		return formatInfo{pixfmt.BC6U, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.UFLOAT}, true
	case vkFormatBC6HSfloatBlock:
		return formatInfo{pixfmt.BC6S, colormodel.HDRa, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatBC7UnormBlock:
		return formatInfo{pixfmt.BC7, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatBC7SrgbBlock:
		return formatInfo{pixfmt.BC7, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true

	case vkFormatEtc2R8G8B8UnormBlock:
		return formatInfo{pixfmt.ETC2RGB, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatEtc2R8G8B8SrgbBlock:
		return formatInfo{pixfmt.ETC2RGB, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatEtc2R8G8B8A8UnormBlock:
		return formatInfo{pixfmt.ETC2RGBA, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatEtc2R8G8B8A8SrgbBlock:
		return formatInfo{pixfmt.ETC2RGBA, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatEtc2R8G8B8A1UnormBlock:
		return formatInfo{pixfmt.ETC2RGBA1, colormodel.LRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatEtc2R8G8B8A1SrgbBlock:
		return formatInfo{pixfmt.ETC2RGBA1, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.ChannelUnspecified}, true
	case vkFormatEacR11UnormBlock:
		return formatInfo{pixfmt.EACR11U, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatEacR11SnormBlock:
		return formatInfo{pixfmt.EACR11S, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	case vkFormatEacR11G11UnormBlock:
		return formatInfo{pixfmt.EACRG11U, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.UNORM}, true
	case vkFormatEacR11G11SnormBlock:
		return formatInfo{pixfmt.EACRG11S, colormodel.SRGB, colormodel.AlphaUnspecified, colormodel.SFLOAT}, true
	}

	return formatInfo{}, false
}
