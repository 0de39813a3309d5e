// Package ktx parses Khronos KTX1 and KTX2 containers: identifier and
// header validation, the KTX1 mip/cube-padding walk and the KTX2 level
// index (including Zstandard supercompression), and pixel-format
// resolution from either the GL type/format/internal-format triple or the
// single Vulkan format (the tables in formats.go), following the
// published KTX1/KTX2 container specifications.
package ktx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/DataDog/zstd"

	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/texture"
)

var ktx1Identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}
var ktx2Identifier = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x32, 0x30, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

const maxMipmapLevels = 16

const supercompressionZstd = 2

// Surface is one face (cubemap) or array layer's full mipmap chain.
type Surface struct {
	Mips []texture.Layer
}

// Image is a fully decoded KTX1 or KTX2 container.
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

// Decode reads a full KTX1 or KTX2 container, strict controlling whether
// conditional warnings are promoted to fatal errors.
func Decode(r io.Reader, strict bool) (*Image, States, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, FatalTruncated, fmt.Errorf("reading ktx stream: %w", err)
	}
	if len(buf) < 12 {
		return nil, FatalTruncated, fmt.Errorf("ktx buffer too short: %d bytes", len(buf))
	}

	switch {
	case bytes.Equal(buf[0:12], ktx1Identifier[:]):
		return decodeKTX1(buf, strict)
	case bytes.Equal(buf[0:12], ktx2Identifier[:]):
		return decodeKTX2(buf, strict)
	default:
		return nil, FatalBadMagic, fmt.Errorf("bad ktx identifier")
	}
}

func decodeKTX1(buf []byte, strict bool) (*Image, States, error) {
	const headerSize = 13 * 4
	if len(buf) < 12+headerSize {
		return nil, FatalTruncated, fmt.Errorf("ktx1 buffer too short for header")
	}
	h := buf[12 : 12+headerSize]

	order := binary.ByteOrder(binary.LittleEndian)
	if binary.LittleEndian.Uint32(h[0:4]) != 0x04030201 {
		order = binary.BigEndian
	}

	glType := order.Uint32(h[4:8])
	glFormat := order.Uint32(h[12:16])
	glInternalFormat := order.Uint32(h[16:20])
	width := int(order.Uint32(h[24:28]))
	height := int(order.Uint32(h[28:32]))
	depth := int(order.Uint32(h[32:36]))
	numArrayElements := int(order.Uint32(h[36:40]))
	numFaces := int(order.Uint32(h[40:44]))
	numMips := int(order.Uint32(h[44:48]))
	kvdBytes := int(order.Uint32(h[48:52]))

	if width <= 0 || height <= 0 {
		return nil, FatalInvalidDimensions, fmt.Errorf("ktx1: invalid dimensions %dx%d", width, height)
	}
	if depth > 1 {
		return nil, FatalVolumeTexturesNotSupported, fmt.Errorf("ktx1: volume textures are not supported")
	}

	info, ok := formatInfoFromGL(glType, glFormat, glInternalFormat)
	if !ok {
		return nil, FatalUnresolvedFormat, fmt.Errorf("ktx1: unresolved gl format (type=%#x format=%#x internal=%#x)", glType, glFormat, glInternalFormat)
	}

	cubemap := numFaces == 6
	arrayCount := numArrayElements
	if arrayCount == 0 {
		arrayCount = 1
	}
	if numMips == 0 {
		numMips = 1
	}

	var st States
	if numMips > maxMipmapLevels {
		numMips = maxMipmapLevels
		st |= FatalMaxMipmapLevelsExceeded
	}

	offset := 12 + headerSize + kvdBytes
	numSurfaces := arrayCount * numFaces
	if numFaces == 0 {
		numSurfaces = arrayCount
	}
	surfaceMips := make([][]texture.Layer, numSurfaces)
	for i := range surfaceMips {
		surfaceMips[i] = make([]texture.Layer, numMips)
	}

	for m := 0; m < numMips; m++ {
		if offset+4 > len(buf) {
			return nil, FatalTruncated, fmt.Errorf("ktx1: truncated before mip %d imageSize", m)
		}
		imageSize := int(order.Uint32(buf[offset : offset+4]))
		offset += 4

		w, hh := max(1, width>>uint(m)), max(1, height>>uint(m))
		for s := 0; s < numSurfaces; s++ {
			if offset+imageSize > len(buf) {
				return nil, FatalTruncated, fmt.Errorf("ktx1: data truncated at surface %d mip %d", s, m)
			}
			var l texture.Layer
			if err := l.Set(info.Format, w, hh, buf[offset:offset+imageSize], false); err != nil {
				return nil, FatalUnresolvedFormat, err
			}
			surfaceMips[s][m] = l
			offset += imageSize
			if pad := imageSize % 4; pad != 0 && cubemap {
				offset += 4 - pad // cubePadding between faces
			}
		}
		if pad := (imageSize * numSurfaces) % 4; pad != 0 {
			offset += 4 - pad // mipPadding
		}
	}

	surfaces := make([]Surface, numSurfaces)
	for i, mips := range surfaceMips {
		surfaces[i] = Surface{Mips: mips}
	}

	if strict && st != 0 {
		return nil, st | FatalMaxMipmapLevelsExceeded, fmt.Errorf("strict mode: conditional promoted to fatal")
	}

	st |= Valid

	return &Image{
		Width:         width,
		Height:        height,
		Format:        info.Format,
		ColourProfile: info.Profile,
		AlphaMode:     info.AlphaMode,
		IsCubemap:     cubemap,
		NumMipLevels:  numMips,
		Surfaces:      surfaces,
		States:        st,
	}, st, nil
}

func decodeKTX2(buf []byte, strict bool) (*Image, States, error) {
	const headerSize = 9*4 + 4*4 + 2*8
	if len(buf) < 12+headerSize {
		return nil, FatalTruncated, fmt.Errorf("ktx2 buffer too short for header")
	}
	h := buf[12 : 12+headerSize]
	order := binary.LittleEndian // KTX2 is always little-endian.

	vkFormat := order.Uint32(h[0:4])
	width := int(order.Uint32(h[8:12]))
	height := int(order.Uint32(h[12:16]))
	depth := int(order.Uint32(h[16:20]))
	layerCount := int(order.Uint32(h[20:24]))
	faceCount := int(order.Uint32(h[24:28]))
	levelCount := int(order.Uint32(h[28:32]))
	supercompression := order.Uint32(h[32:36])

	if width <= 0 || height <= 0 {
		return nil, FatalInvalidDimensions, fmt.Errorf("ktx2: invalid dimensions %dx%d", width, height)
	}
	if depth > 1 {
		return nil, FatalVolumeTexturesNotSupported, fmt.Errorf("ktx2: volume textures are not supported")
	}
	if supercompression != 0 && supercompression != supercompressionZstd {
		return nil, FatalSupercompressionUnsupported, fmt.Errorf("ktx2: unsupported supercompressionScheme %d", supercompression)
	}

	info, ok := formatInfoFromVK(vkFormat)
	if !ok {
		return nil, FatalUnresolvedFormat, fmt.Errorf("ktx2: unresolved vkFormat %d", vkFormat)
	}

	cubemap := faceCount == 6
	arrayCount := layerCount
	if arrayCount == 0 {
		arrayCount = 1
	}
	if levelCount == 0 {
		levelCount = 1
	}

	var st States
	if levelCount > maxMipmapLevels {
		levelCount = maxMipmapLevels
		st |= FatalMaxMipmapLevelsExceeded
	}

	levelIndexOff := 12 + headerSize
	const levelEntrySize = 3 * 8
	if len(buf) < levelIndexOff+levelCount*levelEntrySize {
		return nil, FatalTruncated, fmt.Errorf("ktx2: truncated level index")
	}

	numSurfaces := arrayCount * faceCount
	if faceCount == 0 {
		numSurfaces = arrayCount
	}
	surfaceMips := make([][]texture.Layer, numSurfaces)
	for i := range surfaceMips {
		surfaceMips[i] = make([]texture.Layer, levelCount)
	}

	// KTX2 level index entries are ordered from the largest mip (level 0)
	// to the smallest, same as KTX1's sequential mip stream.
	for m := 0; m < levelCount; m++ {
		entry := buf[levelIndexOff+m*levelEntrySize : levelIndexOff+(m+1)*levelEntrySize]
		byteOffset := order.Uint64(entry[0:8])
		byteLength := order.Uint64(entry[8:16])
		uncompressedLength := order.Uint64(entry[16:24])

		if byteOffset+byteLength > uint64(len(buf)) {
			return nil, FatalTruncated, fmt.Errorf("ktx2: level %d data out of range", m)
		}
		levelData := buf[byteOffset : byteOffset+byteLength]
		if supercompression == supercompressionZstd {
			decompressed, err := zstd.Decompress(make([]byte, 0, uncompressedLength), levelData)
			if err != nil {
				return nil, FatalCorrupted, fmt.Errorf("ktx2: zstd decompress level %d: %w", m, err)
			}
			levelData = decompressed
		}

		w, hh := max(1, width>>uint(m)), max(1, height>>uint(m))
		perSurface := len(levelData) / max(1, numSurfaces)
		lvlOff := 0
		for s := 0; s < numSurfaces; s++ {
			end := lvlOff + perSurface
			if s == numSurfaces-1 {
				end = len(levelData)
			}
			var l texture.Layer
			if err := l.Set(info.Format, w, hh, levelData[lvlOff:end], false); err != nil {
				return nil, FatalUnresolvedFormat, err
			}
			surfaceMips[s][m] = l
			lvlOff = end
		}
	}

	surfaces := make([]Surface, numSurfaces)
	for i, mips := range surfaceMips {
		surfaces[i] = Surface{Mips: mips}
	}

	if strict && st != 0 {
		return nil, st | FatalMaxMipmapLevelsExceeded, fmt.Errorf("strict mode: conditional promoted to fatal")
	}

	st |= Valid

	return &Image{
		Width:         width,
		Height:        height,
		Format:        info.Format,
		ColourProfile: info.Profile,
		AlphaMode:     info.AlphaMode,
		IsCubemap:     cubemap,
		NumMipLevels:  levelCount,
		Surfaces:      surfaces,
		States:        st,
	}, st, nil
}
