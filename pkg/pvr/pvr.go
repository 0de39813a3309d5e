// Package pvr parses the PowerVR texture container in its three historical
// forms: V1 (44-byte header), V2 (52-byte header, adds a FourCC and an
// explicit surface count), and V3 (52-byte header, a 64-bit dual-purpose
// pixel-format field and trailing metadata chunks). All three are resolved
// into one normalized layer table, the same shape dds and ktx produce.
package pvr

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

const maxMipmapLevels = 16

// loadFlag bits, V1/V2 header.Flags.
const (
	flagV1V2HasMipmaps   = 1 << 8
	flagV1V2Twiddled     = 1 << 9
	flagV1V2Bumpmap      = 1 << 10
	flagV1V2Cubemap      = 1 << 12
	flagV1V2Volume       = 1 << 14
	flagV1V2FlippedInner = 1 << 4
)

const (
	v3FlagPreMultiplied = 1 << 1
)

// PVR3KEY_ORIENTATION, the only metadata chunk this package interprets.
const (
	v3FourCC           = 0x03525650
	v3MetaFourCC       = 0x03525650
	v3KeyOrientation   = 3
	v3MetaHeaderSize   = 12
	headerSizeV1V2     = 44
	headerSizeV2Full   = 52
	headerSizeV3       = 52
)

// Surface is one cubemap face's or array element's full mipmap chain,
// each chain holding Depth slices per level for volume textures.
type Surface struct {
	Mips []texture.Layer
}

// Image is a fully decoded PVR container, normalized to a single
// Surfaces[surf].Mips[mip] shape regardless of source version. Volume
// textures flatten their Z slices into the Data of each Mips entry is not
// attempted here: Depth reports the slice count and Layers exposes the
// full surf/face/mip/slice table in the normalized order Index describes,
// which callers needing individual slices should use instead of Surfaces.
type Image struct {
	Version       int
	Width, Height int
	Depth         int
	Format        pixfmt.Format
	ColourProfile colormodel.Profile
	AlphaMode     colormodel.AlphaMode
	ChannelType   colormodel.ChannelType
	IsCubemap     bool
	NumSurfaces   int
	NumFaces      int
	NumMipLevels  int
	Surfaces      []Surface
	Layers        []texture.Layer
	OrientFlipX   bool
	OrientFlipY   bool
	States        States
}

// Index computes the position of a given (surface, face, mip, slice) entry
// in Layers: surfaces outermost, then faces, then mipmaps, then depth
// slices innermost. Both on-disk orderings (V1/V2's surf-face-mip-slice
// and V3's mip-surf-face-slice) are reshuffled into this single layout at
// parse time so callers never need to know which version produced an
// Image.
func (img *Image) Index(surf, face, mip, slice int) int {
	return slice + mip*img.Depth + face*(img.NumMipLevels*img.Depth) + surf*(img.NumFaces*img.NumMipLevels*img.Depth)
}

// Decode reads a full PVR V1, V2, or V3 container. strict controls whether
// conditional warnings (non-power-of-two PVRTC1 dimensions, a V2 FourCC
// that doesn't read "PVR!", more than 16 mip levels) are promoted to
// fatal errors instead of being merely recorded in the returned States.
func Decode(r io.Reader, strict bool) (*Image, States, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, FatalTruncated, fmt.Errorf("reading pvr stream: %w", err)
	}
	if len(buf) < 4 {
		return nil, FatalTruncated, fmt.Errorf("pvr buffer too short: %d bytes", len(buf))
	}

	// The first u32 is either a V3 magic or a V1/V2 header size (44
	// or 52).
	first := binary.LittleEndian.Uint32(buf[0:4])
	switch first {
	case v3FourCC:
		return decodeV3(buf, strict)
	case headerSizeV1V2:
		return decodeV1V2(buf, 1, strict)
	case headerSizeV2Full:
		return decodeV1V2(buf, 2, strict)
	default:
		return nil, FatalUnsupportedPVRFileVersion, fmt.Errorf("pvr: unrecognized header size/magic %#x", first)
	}
}

// decodeV1V2 parses a V1 (44-byte) or V2 (52-byte) header.
func decodeV1V2(buf []byte, version int, strict bool) (*Image, States, error) {
	headerSize := headerSizeV1V2
	if version == 2 {
		headerSize = headerSizeV2Full
	}
	if len(buf) < headerSize {
		return nil, FatalTruncated, fmt.Errorf("pvr v%d buffer too short for header", version)
	}
	h := buf[:headerSize]
	order := binary.LittleEndian

	height := int(order.Uint32(h[4:8]))
	width := int(order.Uint32(h[8:12]))
	numMips := int(order.Uint32(h[12:16])) + 1 // field stores mipmap count minus one.
	pixelFormatFlags := order.Uint32(h[16:20])
	dataSize := int(order.Uint32(h[20:24]))
	// bitCount, h[24:28]: derivable from format, unused here.
	// red/green/blue/alpha bitmasks, h[28:44]: unused for the enumerated
	// PixelFormat byte path this package implements; only the old
	// masked-RGB path would need them, and that path predates every
	// PixelFormat byte value still in circulation.

	var numSurfaces, fourCC uint32
	if version == 2 {
		fourCC = order.Uint32(h[44:48])
		numSurfaces = order.Uint32(h[48:52])
	}

	if width <= 0 || height <= 0 {
		return nil, FatalInvalidDimensions, fmt.Errorf("pvr: invalid dimensions %dx%d", width, height)
	}

	var st States
	if version == 2 {
		if fourCC != uint32('P')|uint32('V')<<8|uint32('R')<<16|uint32('!')<<24 {
			st |= ConditionalV2IncorrectFourCC
			if strict {
				return nil, FatalV2IncorrectFourCC, fmt.Errorf("pvr v2: bad FourCC")
			}
		}
	}
	if numSurfaces == 0 {
		numSurfaces = 1
	}

	pixelFormatByte := byte(pixelFormatFlags & 0xFF)
	flags := pixelFormatFlags

	hasMipmaps := flags&flagV1V2HasMipmaps != 0
	twiddled := flags&flagV1V2Twiddled != 0
	isCubemap := flags&flagV1V2Cubemap != 0
	isVolume := flags&flagV1V2Volume != 0

	if twiddled {
		return nil, FatalV1V2TwiddlingUnsupported, fmt.Errorf("pvr: twiddled data is not supported")
	}
	if !hasMipmaps && numMips > 1 {
		st |= ConditionalV1V2MipmapFlagInconsistent
		if strict {
			return nil, FatalV1V2MipmapFlagInconsistent, fmt.Errorf("pvr: mipmap flag inconsistent with stored mip count")
		}
	}
	if isCubemap && numSurfaces != 6 {
		if strict {
			return nil, FatalV1V2CubemapFlagInconsistent, fmt.Errorf("pvr: cubemap flag set but numSurfaces=%d", numSurfaces)
		}
	}

	info, ok := formatInfoFromV1V2(pixelFormatByte)
	if !ok {
		return nil, FatalPixelFormatNotSupported, fmt.Errorf("pvr: unsupported v1/v2 pixel format byte %#x", pixelFormatByte)
	}

	if info.Format == pixfmt.PVRBPP4 || info.Format == pixfmt.PVRBPP2 {
		if !isPowerOfTwo(width) || !isPowerOfTwo(height) {
			st |= ConditionalV1V2InvalidDimensionsPVRTC1
			if strict {
				return nil, FatalV1V2InvalidDimensionsPVRTC1, fmt.Errorf("pvr: PVRTC1 requires power-of-two dimensions, got %dx%d", width, height)
			}
		}
	}

	if numMips > maxMipmapLevels {
		numMips = maxMipmapLevels
		st |= FatalMaxMipmapLevelsExceeded
	}

	depth := 1
	if isVolume {
		depth = max(1, dataSize/max(1, totalMipsBytes(info.Format, width, height, numMips, 1)))
	}

	numFaces := 1
	numSurf := int(numSurfaces)
	if isCubemap {
		numFaces = 6
		numSurf = int(numSurfaces) / 6
		if numSurf == 0 {
			numSurf = 1
		}
	}

	layers, _, err := buildLayersV1V2(buf[headerSize:], info.Format, width, height, numSurf, numFaces, numMips, depth)
	if err != nil {
		return nil, FatalTruncated, err
	}

	if strict && st != 0 {
		return nil, st, fmt.Errorf("strict mode: conditional promoted to fatal")
	}

	st |= Valid

	img := &Image{
		Version:       version,
		Width:         width,
		Height:        height,
		Depth:         depth,
		Format:        info.Format,
		ColourProfile: info.Profile,
		AlphaMode:     info.AlphaMode,
		ChannelType:   info.ChannelType,
		IsCubemap:     isCubemap,
		NumSurfaces:   numSurf,
		NumFaces:      numFaces,
		NumMipLevels:  numMips,
		Layers:        layers,
		States:        st,
	}
	img.Surfaces = surfacesFromLayers(img)

	return img, st, nil
}

// buildLayersV1V2 reads the V1/V2 on-disk ordering: surface, then face,
// then mipmap (largest first), then depth slice, and writes each entry
// directly into the normalized Index position.
func buildLayersV1V2(data []byte, format pixfmt.Format, width, height, numSurf, numFaces, numMips, depth int) ([]texture.Layer, int, error) {
	layers := make([]texture.Layer, numSurf*numFaces*numMips*depth)
	offset := 0
	for surf := 0; surf < numSurf; surf++ {
		for face := 0; face < numFaces; face++ {
			w, h := width, height
			for mip := 0; mip < numMips; mip++ {
				for slice := 0; slice < depth; slice++ {
					size := pixfmt.DataSize(format, w, h)
					if offset+size > len(data) {
						return nil, offset, fmt.Errorf("pvr: data truncated at surf=%d face=%d mip=%d slice=%d", surf, face, mip, slice)
					}
					idx := slice + mip*depth + face*(numMips*depth) + surf*(numFaces*numMips*depth)
					var l texture.Layer
					if err := l.Set(format, w, h, data[offset:offset+size], false); err != nil {
						return nil, offset, err
					}
					layers[idx] = l
					offset += size
				}
				if w > 1 {
					w /= 2
				}
				if h > 1 {
					h /= 2
				}
			}
		}
	}
	return layers, offset, nil
}

// decodeV3 parses a V3 (52-byte) header plus its trailing metadata
// chunks.
func decodeV3(buf []byte, strict bool) (*Image, States, error) {
	if len(buf) < headerSizeV3 {
		return nil, FatalTruncated, fmt.Errorf("pvr v3 buffer too short for header")
	}
	h := buf[:headerSizeV3]
	order := binary.LittleEndian

	flags := order.Uint32(h[4:8])
	fmtLS32 := order.Uint32(h[8:12])
	fmtMS32 := order.Uint32(h[12:16])
	colourSpace := order.Uint32(h[16:20])
	channelTypeRaw := order.Uint32(h[20:24])
	height := int(order.Uint32(h[24:28]))
	width := int(order.Uint32(h[28:32]))
	depth := int(order.Uint32(h[32:36]))
	numSurfaces := int(order.Uint32(h[36:40]))
	numFaces := int(order.Uint32(h[40:44]))
	numMips := int(order.Uint32(h[44:48]))
	metaDataSize := int(order.Uint32(h[48:52]))

	if width <= 0 || height <= 0 {
		return nil, FatalInvalidDimensions, fmt.Errorf("pvr v3: invalid dimensions %dx%d", width, height)
	}
	if numMips <= 0 {
		numMips = 1
	}
	if numSurfaces <= 0 {
		numSurfaces = 1
	}
	if numFaces <= 0 {
		numFaces = 1
	}
	if depth <= 0 {
		depth = 1
	}

	chanType := channelTypeFromV3(channelTypeRaw)

	var format pixfmt.Format
	var profile colormodel.Profile
	var alphaMode colormodel.AlphaMode
	var resolved bool
	if fmtMS32 == 0 {
		format, profile, alphaMode, chanType, resolved = formatInfoFromV3Canonical(fmtLS32, chanType)
	} else {
		format, profile, resolved = formatInfoFromV3ChannelBits(fmtLS32, fmtMS32, chanType)
	}
	if !resolved {
		return nil, FatalPixelFormatNotSupported, fmt.Errorf("pvr v3: unsupported pixel format %#x/%#x", fmtMS32, fmtLS32)
	}

	// Floating-point channel types imply an HDR (unclamped alpha) profile
	// even for formats whose canonical-enum case above didn't already
	// force one, matching GetFormatInfo_FromV3Header's post-switch
	// lRGB-to-HDRa promotion.
	if profile == colormodel.Unspecified {
		if chanType == colormodel.SFLOAT || chanType == colormodel.UFLOAT {
			profile = colormodel.HDRa
		} else if colourSpace == 1 {
			profile = colormodel.SRGB
		} else {
			profile = colormodel.LRGB
		}
	}
	if flags&v3FlagPreMultiplied != 0 {
		alphaMode = colormodel.AlphaPremultiplied
	} else if alphaMode == colormodel.AlphaUnspecified {
		alphaMode = colormodel.AlphaNormal
	}

	var st States
	if format == pixfmt.PVRBPP4 || format == pixfmt.PVRBPP2 {
		if !isPowerOfTwo(width) || !isPowerOfTwo(height) {
			st |= ConditionalV1V2InvalidDimensionsPVRTC1
			if strict {
				return nil, FatalV1V2InvalidDimensionsPVRTC1, fmt.Errorf("pvr v3: PVRTC1 requires power-of-two dimensions, got %dx%d", width, height)
			}
		}
	}

	if numMips > maxMipmapLevels {
		numMips = maxMipmapLevels
		st |= FatalMaxMipmapLevelsExceeded
	}

	metaOff := headerSizeV3
	if len(buf) < metaOff+metaDataSize {
		return nil, FatalTruncated, fmt.Errorf("pvr v3: metadata block truncated")
	}
	flipX, flipY, flipErr := parseV3Metadata(buf[metaOff : metaOff+metaDataSize])
	if flipErr != nil {
		st |= ConditionalCouldNotFlipRows
	}

	isCubemap := numFaces == 6

	dataOff := metaOff + metaDataSize
	layers, _, err := buildLayersV3(buf[dataOff:], format, width, height, numSurfaces, numFaces, numMips, depth)
	if err != nil {
		return nil, FatalTruncated, err
	}

	if strict && st != 0 {
		return nil, st, fmt.Errorf("strict mode: conditional promoted to fatal")
	}

	st |= Valid

	img := &Image{
		Version:       3,
		Width:         width,
		Height:        height,
		Depth:         depth,
		Format:        format,
		ColourProfile: profile,
		AlphaMode:     alphaMode,
		ChannelType:   chanType,
		IsCubemap:     isCubemap,
		NumSurfaces:   numSurfaces,
		NumFaces:      numFaces,
		NumMipLevels:  numMips,
		Layers:        layers,
		OrientFlipX:   flipX,
		OrientFlipY:   flipY,
		States:        st,
	}
	img.Surfaces = surfacesFromLayers(img)

	return img, st, nil
}

// buildLayersV3 reads the V3 on-disk ordering: mipmap (largest first),
// then surface, then face, then depth slice — the inverse nesting of
// V1/V2 — and writes each entry into the same normalized Index position
// buildLayersV1V2 uses, so both versions produce an identically shaped
// Layers slice.
func buildLayersV3(data []byte, format pixfmt.Format, width, height, numSurf, numFaces, numMips, depth int) ([]texture.Layer, int, error) {
	layers := make([]texture.Layer, numSurf*numFaces*numMips*depth)
	offset := 0
	w, h := width, height
	for mip := 0; mip < numMips; mip++ {
		for surf := 0; surf < numSurf; surf++ {
			for face := 0; face < numFaces; face++ {
				for slice := 0; slice < depth; slice++ {
					size := pixfmt.DataSize(format, w, h)
					if offset+size > len(data) {
						return nil, offset, fmt.Errorf("pvr: data truncated at mip=%d surf=%d face=%d slice=%d", mip, surf, face, slice)
					}
					idx := slice + mip*depth + face*(numMips*depth) + surf*(numFaces*numMips*depth)
					var l texture.Layer
					if err := l.Set(format, w, h, data[offset:offset+size], false); err != nil {
						return nil, offset, err
					}
					layers[idx] = l
					offset += size
				}
			}
		}
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return layers, offset, nil
}

// parseV3Metadata scans the 12-byte-header metadata chunks trailing a V3
// header for the one this package understands: PVR3KEY_ORIENTATION.
// Unrecognized chunks (any other fourCC/key pair) are skipped over, not
// treated as an error.
func parseV3Metadata(meta []byte) (flipX, flipY bool, err error) {
	off := 0
	for off+v3MetaHeaderSize <= len(meta) {
		order := binary.LittleEndian
		fourCC := order.Uint32(meta[off : off+4])
		key := order.Uint32(meta[off+4 : off+8])
		dataSize := int(order.Uint32(meta[off+8 : off+12]))
		off += v3MetaHeaderSize
		if off+dataSize > len(meta) {
			return false, false, fmt.Errorf("pvr v3: metadata chunk truncated")
		}
		if fourCC == v3MetaFourCC && key == v3KeyOrientation && dataSize == 3 {
			flipX = meta[off+0] != 0
			flipY = meta[off+1] != 0
			// meta[off+2] is the Z-axis orientation bit; unused here (no
			// volume-texture axis-flip consumer in this package).
		}
		off += dataSize
	}
	return flipX, flipY, nil
}

func channelTypeFromV3(raw uint32) colormodel.ChannelType {
	// Byte, short and int widths (0-3, 4-7, 8-11), each as UnsignedNorm,
	// SignedNorm, Unsigned, Signed; then the two float types.
	switch raw {
	case 0, 4, 8:
		return colormodel.UNORM
	case 1, 5, 9:
		return colormodel.SNORM
	case 2, 6, 10:
		return colormodel.UINT
	case 3, 7, 11:
		return colormodel.SINT
	case 12: // PVR3CHANTYPE_SignedFloat
		return colormodel.SFLOAT
	case 13: // PVR3CHANTYPE_UnsignedFloat
		return colormodel.UFLOAT
	default:
		return colormodel.ChannelUnspecified
	}
}

func surfacesFromLayers(img *Image) []Surface {
	surfaces := make([]Surface, img.NumSurfaces*img.NumFaces)
	i := 0
	for surf := 0; surf < img.NumSurfaces; surf++ {
		for face := 0; face < img.NumFaces; face++ {
			mips := make([]texture.Layer, img.NumMipLevels)
			for mip := 0; mip < img.NumMipLevels; mip++ {
				mips[mip] = img.Layers[img.Index(surf, face, mip, 0)]
			}
			surfaces[i] = Surface{Mips: mips}
			i++
		}
	}
	return surfaces
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// totalMipsBytes sums the encoded size of every mip level at a single
// depth slice, used to recover the V1/V2 volume-texture slice count from
// the header's total DataSize field (V1/V2 carries no explicit depth
// field outside the legacy masked-RGB path).
func totalMipsBytes(format pixfmt.Format, width, height, numMips, depth int) int {
	total := 0
	w, h := width, height
	for m := 0; m < numMips; m++ {
		total += pixfmt.DataSize(format, w, h) * depth
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return total
}
