package pvr

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/goopsie/texcore/pkg/pixfmt"
)

func putU32(buf []byte, v uint32) []byte {
	tmp := make([]byte, 4)
	binary.LittleEndian.PutUint32(tmp, v)
	return append(buf, tmp...)
}

// buildV2 assembles a minimal single-surface PVR V2 stream: ARGB_8888
// (format byte 0x05), numMips mip levels, filled with zeroed data of the
// correct size.
func buildV2(width, height, numMips int) []byte {
	buf := putU32(nil, headerSizeV2Full)
	buf = putU32(buf, uint32(height))
	buf = putU32(buf, uint32(width))
	buf = putU32(buf, uint32(numMips-1))
	buf = putU32(buf, 0x05|uint32(flagV1V2HasMipmaps)) // ARGB_8888, mipmaps flag set

	size := 0
	w, h := width, height
	for m := 0; m < numMips; m++ {
		size += pixfmt.DataSize(pixfmt.B8G8R8A8, w, h)
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	buf = putU32(buf, uint32(size)) // dataSize
	buf = putU32(buf, 32)           // bitCount
	buf = putU32(buf, 0)            // redMask
	buf = putU32(buf, 0)            // greenMask
	buf = putU32(buf, 0)            // blueMask
	buf = putU32(buf, 0)            // alphaMask
	buf = putU32(buf, fourCC('P', 'V', 'R', '!'))
	buf = putU32(buf, 1) // numSurfaces

	w, h = width, height
	for m := 0; m < numMips; m++ {
		buf = append(buf, make([]byte, pixfmt.DataSize(pixfmt.B8G8R8A8, w, h))...)
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return buf
}

func TestDecodeV2Uncompressed(t *testing.T) {
	buf := buildV2(4, 4, 1)
	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if st.Fatal() {
		t.Fatalf("unexpected fatal state %v", st)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", img.Width, img.Height)
	}
	if img.Format != pixfmt.B8G8R8A8 {
		t.Fatalf("format = %v, want B8G8R8A8", img.Format)
	}
	if img.Version != 2 {
		t.Fatalf("version = %d, want 2", img.Version)
	}
	if len(img.Surfaces) != 1 || len(img.Surfaces[0].Mips) != 1 {
		t.Fatalf("unexpected surface/mip shape: %+v", img.Surfaces)
	}
}

func TestDecodeV2MultipleMips(t *testing.T) {
	buf := buildV2(8, 8, 4)
	img, _, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.NumMipLevels != 4 {
		t.Fatalf("NumMipLevels = %d, want 4", img.NumMipLevels)
	}
	wantDims := [][2]int{{8, 8}, {4, 4}, {2, 2}, {1, 1}}
	for i, m := range img.Surfaces[0].Mips {
		if m.Width != wantDims[i][0] || m.Height != wantDims[i][1] {
			t.Fatalf("mip %d dims = %dx%d, want %v", i, m.Width, m.Height, wantDims[i])
		}
	}
}

func TestDecodeV2BadFourCCConditional(t *testing.T) {
	buf := buildV2(4, 4, 1)
	// FourCC sits right before numSurfaces, at offset 44.
	binary.LittleEndian.PutUint32(buf[44:48], 0xDEADBEEF)
	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if st&ConditionalV2IncorrectFourCC == 0 {
		t.Fatalf("expected ConditionalV2IncorrectFourCC, got %v", st)
	}
	if img == nil {
		t.Fatalf("expected a non-nil image in non-strict mode")
	}
}

func TestDecodeV2BadFourCCStrictRejects(t *testing.T) {
	buf := buildV2(4, 4, 1)
	binary.LittleEndian.PutUint32(buf[44:48], 0xDEADBEEF)
	_, st, err := Decode(bytes.NewReader(buf), true)
	if err == nil || st&FatalV2IncorrectFourCC == 0 {
		t.Fatalf("expected FatalV2IncorrectFourCC, got st=%v err=%v", st, err)
	}
}

func TestDecodeV1V2TooManyMipsCapped(t *testing.T) {
	buf := buildV2(4, 4, 20)
	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.NumMipLevels != maxMipmapLevels {
		t.Fatalf("NumMipLevels = %d, want %d", img.NumMipLevels, maxMipmapLevels)
	}
	if !st.Fatal() {
		t.Fatalf("expected FatalMaxMipmapLevelsExceeded to be set")
	}
}

func TestDecodeV1V2TooManyMipsStrictRejects(t *testing.T) {
	buf := buildV2(4, 4, 20)
	_, _, err := Decode(bytes.NewReader(buf), true)
	if err == nil {
		t.Fatalf("expected strict mode to reject excess mip levels")
	}
}

func TestDecodeV1V2PVRTC1NonPowerOfTwoConditional(t *testing.T) {
	buf := putU32(nil, headerSizeV1V2)
	buf = putU32(buf, 6) // height, not a power of two
	buf = putU32(buf, 6) // width
	buf = putU32(buf, 0) // numMips-1
	buf = putU32(buf, 0x0D|uint32(flagV1V2HasMipmaps))
	buf = putU32(buf, 0)
	size := pixfmt.DataSize(pixfmt.PVRBPP4, 6, 6)
	buf = putU32(buf, uint32(size))
	buf = putU32(buf, 4)
	buf = putU32(buf, 0)
	buf = putU32(buf, 0)
	buf = putU32(buf, 0)
	buf = putU32(buf, 0)
	buf = append(buf, make([]byte, size)...)

	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if st&ConditionalV1V2InvalidDimensionsPVRTC1 == 0 {
		t.Fatalf("expected ConditionalV1V2InvalidDimensionsPVRTC1, got %v", st)
	}
	if img.Format != pixfmt.PVRBPP4 {
		t.Fatalf("format = %v, want PVRBPP4", img.Format)
	}
}

// buildV3 assembles a minimal single-surface PVR V3 stream using the
// channel-bits encoding for RGBA8 (the "LS32=rgba, MS32=8888" branch).
func buildV3(width, height, numMips int, withOrientation bool) []byte {
	buf := putU32(nil, v3FourCC)
	buf = putU32(buf, 0) // flags
	buf = putU32(buf, fourCC('r', 'g', 'b', 'a'))
	buf = putU32(buf, swapEndian32(0x08080808))
	buf = putU32(buf, 0) // colourSpace: linear
	buf = putU32(buf, 0) // channelType: UnsignedByteNorm
	buf = putU32(buf, uint32(height))
	buf = putU32(buf, uint32(width))
	buf = putU32(buf, 1) // depth
	buf = putU32(buf, 1) // numSurfaces
	buf = putU32(buf, 1) // numFaces
	buf = putU32(buf, uint32(numMips))

	var meta []byte
	if withOrientation {
		meta = putU32(nil, v3MetaFourCC)
		meta = putU32(meta, v3KeyOrientation)
		meta = putU32(meta, 3)
		meta = append(meta, 1, 0, 0) // flip X, don't flip Y
	}
	buf = putU32(buf, uint32(len(meta)))
	buf = append(buf, meta...)

	w, h := width, height
	for m := 0; m < numMips; m++ {
		buf = append(buf, make([]byte, pixfmt.DataSize(pixfmt.R8G8B8A8, w, h))...)
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return buf
}

func TestDecodeV3ChannelBitsRGBA8(t *testing.T) {
	buf := buildV3(4, 4, 1, false)
	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if st.Fatal() {
		t.Fatalf("unexpected fatal state %v", st)
	}
	if img.Format != pixfmt.R8G8B8A8 {
		t.Fatalf("format = %v, want R8G8B8A8", img.Format)
	}
	if img.Version != 3 {
		t.Fatalf("version = %d, want 3", img.Version)
	}
}

func TestDecodeV3OrientationMetadata(t *testing.T) {
	buf := buildV3(4, 4, 1, true)
	img, _, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !img.OrientFlipX {
		t.Fatalf("expected OrientFlipX to be set")
	}
	if img.OrientFlipY {
		t.Fatalf("expected OrientFlipY to be unset")
	}
}

func TestDecodeV3TooManyMipsCapped(t *testing.T) {
	buf := buildV3(4, 4, 20, false)
	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.NumMipLevels != maxMipmapLevels {
		t.Fatalf("NumMipLevels = %d, want %d", img.NumMipLevels, maxMipmapLevels)
	}
	if !st.Fatal() {
		t.Fatalf("expected FatalMaxMipmapLevelsExceeded to be set")
	}
}

func TestDecodeUnrecognizedVersionRejected(t *testing.T) {
	buf := putU32(nil, 0xFFFFFFFF)
	buf = append(buf, make([]byte, 40)...)
	_, st, err := Decode(bytes.NewReader(buf), false)
	if err == nil || st&FatalUnsupportedPVRFileVersion == 0 {
		t.Fatalf("expected FatalUnsupportedPVRFileVersion, got st=%v err=%v", st, err)
	}
}

func TestIndexNormalizesVolumeLayout(t *testing.T) {
	img := &Image{NumSurfaces: 2, NumFaces: 1, NumMipLevels: 3, Depth: 2}
	if got := img.Index(0, 0, 0, 0); got != 0 {
		t.Fatalf("Index(0,0,0,0) = %d, want 0", got)
	}
	if got := img.Index(0, 0, 1, 0); got != 2 {
		t.Fatalf("Index(0,0,1,0) = %d, want 2", got)
	}
	if got := img.Index(1, 0, 0, 0); got != 6 {
		t.Fatalf("Index(1,0,0,0) = %d, want 6", got)
	}
}
