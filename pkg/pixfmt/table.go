package pixfmt

// info is the per-format static record backing every Registry query.
// blockW/blockH are always >= 1 for valid formats. Exactly one of
// bytesPerBlock/bitsPerPixel is the "native" unit for the family; the
// other is derived on demand so that bytesPerBlock*numBlocksW*numBlocksH
// always equals the required layer size (see BytesPerBlock).
type info struct {
	name          string
	blockW        int
	blockH        int
	bytesPerBlock int // 0 if this format is naturally bit-sized (packed/palette)
	bitsPerPixel  int // 0 if this format is naturally block-sized and non-integral bpp
	alphaCapable  bool
	hdr           bool
	spreadLum     bool // single red/luminance channel; SpreadLuminance may copy R into G/B
}

var table = buildTable()

func buildTable() map[Format]info {
	t := make(map[Format]info, numFormats)

	reg := func(f Format, name string, bw, bh, bytesPerBlock, bitsPerPixel int, alpha, hdr, spread bool) {
		t[f] = info{name, bw, bh, bytesPerBlock, bitsPerPixel, alpha, hdr, spread}
	}

	// Packed formats: block 1x1, size expressed in bits per pixel. The
	// final bool marks the spreadable single-channel formats: R8 and L8
	// decode their one value into Red only, so SpreadLuminance may copy
	// it into G/B afterwards. A8 is alpha-only (its decode leaves RGB
	// zero and is never spread) and L8A8 carries two channels.
	reg(R8, "R8", 1, 1, 0, 8, false, false, true)
	reg(R8G8, "R8G8", 1, 1, 0, 16, false, false, false)
	reg(R8G8B8, "R8G8B8", 1, 1, 0, 24, false, false, false)
	reg(R8G8B8A8, "R8G8B8A8", 1, 1, 0, 32, true, false, false)
	reg(B8G8R8, "B8G8R8", 1, 1, 0, 24, false, false, false)
	reg(B8G8R8A8, "B8G8R8A8", 1, 1, 0, 32, true, false, false)
	reg(G3B5R5G3, "G3B5R5G3", 1, 1, 0, 16, false, false, false)
	reg(G4B4A4R4, "G4B4A4R4", 1, 1, 0, 16, true, false, false)
	reg(B4A4R4G4, "B4A4R4G4", 1, 1, 0, 16, true, false, false)
	reg(G3B5A1R5G2, "G3B5A1R5G2", 1, 1, 0, 16, true, false, false)
	reg(G2B5A1R5G3, "G2B5A1R5G3", 1, 1, 0, 16, true, false, false)
	reg(L8, "L8", 1, 1, 0, 8, false, false, true)
	reg(A8, "A8", 1, 1, 0, 8, true, false, false)
	reg(L8A8, "L8A8", 1, 1, 0, 16, true, false, false)
	reg(R16, "R16", 1, 1, 0, 16, false, false, false)
	reg(R16G16, "R16G16", 1, 1, 0, 32, false, false, false)
	reg(R16G16B16, "R16G16B16", 1, 1, 0, 48, false, false, false)
	reg(R16G16B16A16, "R16G16B16A16", 1, 1, 0, 64, true, false, false)
	reg(R32, "R32", 1, 1, 0, 32, false, false, false)
	reg(R32G32, "R32G32", 1, 1, 0, 64, false, false, false)
	reg(R32G32B32, "R32G32B32", 1, 1, 0, 96, false, false, false)
	reg(R32G32B32A32, "R32G32B32A32", 1, 1, 0, 128, true, false, false)
	reg(R16f, "R16f", 1, 1, 0, 16, false, true, false)
	reg(R16G16f, "R16G16f", 1, 1, 0, 32, false, true, false)
	reg(R16G16B16f, "R16G16B16f", 1, 1, 0, 48, false, true, false)
	reg(R16G16B16A16f, "R16G16B16A16f", 1, 1, 0, 64, true, true, false)
	reg(R32f, "R32f", 1, 1, 0, 32, false, true, false)
	reg(R32G32f, "R32G32f", 1, 1, 0, 64, false, true, false)
	reg(R32G32B32f, "R32G32B32f", 1, 1, 0, 96, false, true, false)
	reg(R32G32B32A32f, "R32G32B32A32f", 1, 1, 0, 128, true, true, false)
	reg(R11G11B10uf, "R11G11B10uf", 1, 1, 0, 32, false, true, false)
	reg(B10G11R11uf, "B10G11R11uf", 1, 1, 0, 32, false, true, false)
	reg(R9G9B9E5uf, "R9G9B9E5uf", 1, 1, 0, 32, false, true, false)
	reg(E5B9G9R9uf, "E5B9G9R9uf", 1, 1, 0, 32, false, true, false)
	reg(R8G8B8M8, "R8G8B8M8", 1, 1, 0, 32, false, true, false)
	reg(R8G8B8D8, "R8G8B8D8", 1, 1, 0, 32, false, true, false)

	// BC block formats: always 4x4.
	reg(BC1DXT1, "BC1DXT1", 4, 4, 8, 0, false, false, false)
	reg(BC1DXT1A, "BC1DXT1A", 4, 4, 8, 0, true, false, false)
	reg(BC2DXT2DXT3, "BC2DXT2DXT3", 4, 4, 16, 0, true, false, false)
	reg(BC3DXT4DXT5, "BC3DXT4DXT5", 4, 4, 16, 0, true, false, false)
	reg(BC4ATI1U, "BC4ATI1U", 4, 4, 8, 0, false, false, false)
	reg(BC4ATI1S, "BC4ATI1S", 4, 4, 8, 0, false, false, false)
	reg(BC5ATI2U, "BC5ATI2U", 4, 4, 16, 0, false, false, false)
	reg(BC5ATI2S, "BC5ATI2S", 4, 4, 16, 0, false, false, false)
	reg(BC6U, "BC6U", 4, 4, 16, 0, false, true, false)
	reg(BC6S, "BC6S", 4, 4, 16, 0, false, true, false)
	reg(BC7, "BC7", 4, 4, 16, 0, true, false, false)

	// ETC block formats: always 4x4.
	reg(ETC1, "ETC1", 4, 4, 8, 0, false, false, false)
	reg(ETC2RGB, "ETC2RGB", 4, 4, 8, 0, false, false, false)
	reg(ETC2RGBA, "ETC2RGBA", 4, 4, 16, 0, true, false, false)
	reg(ETC2RGBA1, "ETC2RGBA1", 4, 4, 8, 0, true, false, false)

	// EAC block formats: always 4x4.
	reg(EACR11U, "EACR11U", 4, 4, 8, 0, false, false, false)
	reg(EACR11S, "EACR11S", 4, 4, 8, 0, false, false, false)
	reg(EACRG11U, "EACRG11U", 4, 4, 16, 0, false, false, false)
	reg(EACRG11S, "EACRG11S", 4, 4, 16, 0, false, false, false)

	// PVR block formats. 4bpp modes use a 4x4 block, 2bpp modes an 8x4
	// block; both settle at 8 bytes/block. The HDR revisions double that.
	reg(PVRBPP4, "PVRBPP4", 4, 4, 8, 0, true, false, false)
	reg(PVRBPP2, "PVRBPP2", 8, 4, 8, 0, true, false, false)
	reg(PVRHDRBPP8, "PVRHDRBPP8", 4, 4, 16, 0, true, true, false)
	reg(PVRHDRBPP6, "PVRHDRBPP6", 8, 4, 16, 0, true, true, false)
	reg(PVR2BPP4, "PVR2BPP4", 4, 4, 8, 0, true, false, false)
	reg(PVR2BPP2, "PVR2BPP2", 8, 4, 8, 0, true, false, false)
	reg(PVR2HDRBPP8, "PVR2HDRBPP8", 4, 4, 16, 0, true, true, false)
	reg(PVR2HDRBPP6, "PVR2HDRBPP6", 8, 4, 16, 0, true, true, false)

	// ASTC block formats: always 16 bytes/block, footprint varies.
	reg(ASTC4X4, "ASTC4X4", 4, 4, 16, 0, true, false, false)
	reg(ASTC5X4, "ASTC5X4", 5, 4, 16, 0, true, false, false)
	reg(ASTC5X5, "ASTC5X5", 5, 5, 16, 0, true, false, false)
	reg(ASTC6X5, "ASTC6X5", 6, 5, 16, 0, true, false, false)
	reg(ASTC6X6, "ASTC6X6", 6, 6, 16, 0, true, false, false)
	reg(ASTC8X5, "ASTC8X5", 8, 5, 16, 0, true, false, false)
	reg(ASTC8X6, "ASTC8X6", 8, 6, 16, 0, true, false, false)
	reg(ASTC8X8, "ASTC8X8", 8, 8, 16, 0, true, false, false)
	reg(ASTC10X5, "ASTC10X5", 10, 5, 16, 0, true, false, false)
	reg(ASTC10X6, "ASTC10X6", 10, 6, 16, 0, true, false, false)
	reg(ASTC10X8, "ASTC10X8", 10, 8, 16, 0, true, false, false)
	reg(ASTC10X10, "ASTC10X10", 10, 10, 16, 0, true, false, false)
	reg(ASTC12X10, "ASTC12X10", 12, 10, 16, 0, true, false, false)
	reg(ASTC12X12, "ASTC12X12", 12, 12, 16, 0, true, false, false)

	// Vendor tags: block 1x1, sized per pixel (RGBE at 32 bits, half-float
	// RGBA at 64 bits), decoded externally.
	reg(RADIANCE, "RADIANCE", 1, 1, 0, 32, false, true, false)
	reg(OPENEXR, "OPENEXR", 1, 1, 0, 64, true, true, false)

	// Palette formats: 1-8 bit indices, block 1x1.
	reg(PAL1BIT, "PAL1BIT", 1, 1, 0, 1, false, false, false)
	reg(PAL2BIT, "PAL2BIT", 1, 1, 0, 2, false, false, false)
	reg(PAL3BIT, "PAL3BIT", 1, 1, 0, 3, false, false, false)
	reg(PAL4BIT, "PAL4BIT", 1, 1, 0, 4, false, false, false)
	reg(PAL5BIT, "PAL5BIT", 1, 1, 0, 5, false, false, false)
	reg(PAL6BIT, "PAL6BIT", 1, 1, 0, 6, false, false, false)
	reg(PAL7BIT, "PAL7BIT", 1, 1, 0, 7, false, false, false)
	reg(PAL8BIT, "PAL8BIT", 1, 1, 0, 8, false, false, false)

	return t
}

func lookup(f Format) (info, bool) {
	i, ok := table[f]
	return i, ok
}
