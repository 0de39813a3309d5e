// Package pixfmt enumerates the pixel formats understood by the rest of
// texcore and reports their block geometry and size arithmetic.
//
// The enum is laid out as contiguous ranges, one range per format family
// (packed, BC, ETC, EAC, PVR, ASTC, vendor, palette). Classification
// predicates (IsBC, IsASTC, ...) are single range comparisons against the
// first/last markers declared below; adding a new format only ever
// appends to the tail of its family's range.
package pixfmt

// Format identifies a pixel format understood by texcore.
type Format int

const (
	Invalid Format = iota

	// Packed formats: one pixel occupies an integral number of bits.
	R8
	R8G8
	R8G8B8
	R8G8B8A8
	B8G8R8
	B8G8R8A8
	G3B5R5G3   // in-memory 565
	G4B4A4R4   // in-memory 4444
	B4A4R4G4   // in-memory 4444, channel order reversed
	G3B5A1R5G2 // in-memory 5551
	G2B5A1R5G3 // in-memory 1555
	L8
	A8
	L8A8
	R16
	R16G16
	R16G16B16
	R16G16B16A16
	R32
	R32G32
	R32G32B32
	R32G32B32A32
	R16f
	R16G16f
	R16G16B16f
	R16G16B16A16f
	R32f
	R32G32f
	R32G32B32f
	R32G32B32A32f
	R11G11B10uf
	B10G11R11uf
	R9G9B9E5uf
	E5B9G9R9uf
	R8G8B8M8 // RGBM: shared multiplier
	R8G8B8D8 // RGBD: shared divisor

	// BC (DXT/DXn) block-compressed formats.
	BC1DXT1
	BC1DXT1A
	BC2DXT2DXT3
	BC3DXT4DXT5
	BC4ATI1U
	BC4ATI1S
	BC5ATI2U
	BC5ATI2S
	BC6U
	BC6S
	BC7

	// ETC block-compressed formats.
	ETC1
	ETC2RGB
	ETC2RGBA
	ETC2RGBA1

	// EAC block-compressed formats (single/dual channel, ETC2 family).
	EACR11U
	EACR11S
	EACRG11U
	EACRG11S

	// PVR (PVRTC) block-compressed formats: V1/V2 LDR and HDR, and the
	// PVRTC-II ("PVR2") revision.
	PVRBPP4
	PVRBPP2
	PVRHDRBPP8
	PVRHDRBPP6
	PVR2BPP4
	PVR2BPP2
	PVR2HDRBPP8
	PVR2HDRBPP6

	// ASTC block-compressed formats, one per block footprint.
	ASTC4X4
	ASTC5X4
	ASTC5X5
	ASTC6X5
	ASTC6X6
	ASTC8X5
	ASTC8X6
	ASTC8X8
	ASTC10X5
	ASTC10X6
	ASTC10X8
	ASTC10X10
	ASTC12X10
	ASTC12X12

	// Vendor formats: carried as a tag only, decoded by the external
	// Radiance/OpenEXR loaders.
	RADIANCE
	OPENEXR

	// Palette formats: indexed colour, 1-8 bits per index. Palette block
	// decode itself is a declared non-goal; the format tag still needs to
	// round-trip through the registry.
	PAL1BIT
	PAL2BIT
	PAL3BIT
	PAL4BIT
	PAL5BIT
	PAL6BIT
	PAL7BIT
	PAL8BIT

	numFormats
)

// Family range markers, declared separately from the iota block above so
// that appending a format to a family's tail never renumbers anything.
const (
	firstPacked = R8
	lastPacked  = R8G8B8D8

	firstBC = BC1DXT1
	lastBC  = BC7

	firstETC = ETC1
	lastETC  = ETC2RGBA1

	firstEAC = EACR11U
	lastEAC  = EACRG11S

	firstPVR = PVRBPP4
	lastPVR  = PVR2HDRBPP6

	firstASTC = ASTC4X4
	lastASTC  = ASTC12X12

	firstVendor = RADIANCE
	lastVendor  = OPENEXR

	firstPalette = PAL1BIT
	lastPalette  = PAL8BIT
)

// IsPacked reports whether fmt is a packed (non-block) format.
func IsPacked(f Format) bool { return f >= firstPacked && f <= lastPacked }

// IsBC reports whether f is one of the BC1-BC7 block formats.
func IsBC(f Format) bool { return f >= firstBC && f <= lastBC }

// IsETC reports whether f is one of the ETC1/ETC2 block formats.
func IsETC(f Format) bool { return f >= firstETC && f <= lastETC }

// IsEAC reports whether f is one of the EAC R11/RG11 block formats.
func IsEAC(f Format) bool { return f >= firstEAC && f <= lastEAC }

// IsPVR reports whether f is one of the PVRTC block formats.
func IsPVR(f Format) bool { return f >= firstPVR && f <= lastPVR }

// IsASTC reports whether f is one of the ASTC block formats.
func IsASTC(f Format) bool { return f >= firstASTC && f <= lastASTC }

// IsVendor reports whether f is a vendor pass-through tag (Radiance, OpenEXR).
func IsVendor(f Format) bool { return f >= firstVendor && f <= lastVendor }

// IsPalette reports whether f is one of the indexed-colour formats.
func IsPalette(f Format) bool { return f >= firstPalette && f <= lastPalette }

// IsBlock reports whether f is decoded a fixed-size tile at a time.
func IsBlock(f Format) bool {
	return IsBC(f) || IsETC(f) || IsEAC(f) || IsPVR(f) || IsASTC(f)
}

// Valid reports whether f is a recognized, non-Invalid format.
func Valid(f Format) bool { return f > Invalid && f < numFormats }
