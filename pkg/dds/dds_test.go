package dds

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/pixfmt"
)

// buildHeader constructs a minimal 128-byte DDS (magic + 124-byte header)
// with the given dimensions and a DDS_PIXELFORMAT described by fourCCTag
// (0 to instead use explicit component masks).
func buildHeader(width, height int, fourCCTag uint32, rgbBitCount, rMask, gMask, bMask, aMask uint32) []byte {
	buf := make([]byte, 128)
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	h := buf[4:]
	binary.LittleEndian.PutUint32(h[0:4], headerSize)
	flags := uint32(0x1 | 0x2 | 0x4 | flagPixelFormat | 0x80000)
	binary.LittleEndian.PutUint32(h[4:8], flags)
	binary.LittleEndian.PutUint32(h[8:12], uint32(height))
	binary.LittleEndian.PutUint32(h[12:16], uint32(width))

	pf := h[72:104]
	binary.LittleEndian.PutUint32(pf[0:4], pfSize)
	if fourCCTag != 0 {
		binary.LittleEndian.PutUint32(pf[4:8], pfFourCC)
		binary.LittleEndian.PutUint32(pf[8:12], fourCCTag)
	} else {
		flagsPF := uint32(pfRGB)
		if aMask != 0 {
			flagsPF |= pfAlphaPixels
		}
		binary.LittleEndian.PutUint32(pf[4:8], flagsPF)
		binary.LittleEndian.PutUint32(pf[12:16], rgbBitCount)
		binary.LittleEndian.PutUint32(pf[16:20], rMask)
		binary.LittleEndian.PutUint32(pf[20:24], gMask)
		binary.LittleEndian.PutUint32(pf[24:28], bMask)
		binary.LittleEndian.PutUint32(pf[28:32], aMask)
	}
	return buf
}

func TestDecodeTruncatedBufferIsFatal(t *testing.T) {
	buf := make([]byte, 17)
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	_, st, err := Decode(bytes.NewReader(buf), false)
	if err == nil {
		t.Fatal("expected error for truncated buffer")
	}
	if !st.Fatal() {
		t.Errorf("expected a fatal state, got %#x", uint32(st))
	}
}

func TestDecodeDXT1PunchThroughAlphaUpgrade(t *testing.T) {
	header := buildHeader(4, 4, fourCC("DXT1"), 0, 0, 0, 0, 0)
	block := make([]byte, 8)
	binary.LittleEndian.PutUint16(block[0:2], 0x0000)
	binary.LittleEndian.PutUint16(block[2:4], 0xFFFF)
	binary.LittleEndian.PutUint32(block[4:8], 0xFFFFFFFF)
	buf := append(header, block...)

	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if st.Fatal() {
		t.Fatalf("unexpected fatal state %#x", uint32(st))
	}
	if img.Format != pixfmt.BC1DXT1A {
		t.Errorf("expected format upgraded to BC1DXT1A, got %v", img.Format)
	}
	if img.NumMipLevels != 1 {
		t.Errorf("expected 1 mip level, got %d", img.NumMipLevels)
	}
	if len(img.Surfaces) != 1 || len(img.Surfaces[0].Mips) != 1 {
		t.Fatalf("expected a single surface/mip, got %+v", img.Surfaces)
	}
}

func TestDecodeDX10BC7SRGB(t *testing.T) {
	header := buildHeader(8, 8, dx10FourCC, 0, 0, 0, 0, 0)
	ext := make([]byte, 20)
	binary.LittleEndian.PutUint32(ext[0:4], 99) // BC7_UNORM_SRGB
	binary.LittleEndian.PutUint32(ext[4:8], 3)  // TEXTURE2D
	binary.LittleEndian.PutUint32(ext[16:20], 1)

	data := make([]byte, pixfmt.DataSize(pixfmt.BC7, 8, 8))
	buf := append(header, ext...)
	buf = append(buf, data...)

	img, _, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Format != pixfmt.BC7 {
		t.Errorf("expected BC7, got %v", img.Format)
	}
	if img.ColourProfile != colormodel.SRGB {
		t.Errorf("expected sRGB profile, got %v", img.ColourProfile)
	}
}

func TestDecodeUncompressedMaskFormat(t *testing.T) {
	header := buildHeader(2, 2, 0, 32, 0xFF, 0xFF00, 0xFF0000, 0xFF000000)
	data := make([]byte, pixfmt.DataSize(pixfmt.R8G8B8A8, 2, 2))
	buf := append(header, data...)

	img, _, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Format != pixfmt.R8G8B8A8 {
		t.Errorf("expected R8G8B8A8, got %v", img.Format)
	}
}

// buildMippedDXT1 declares mipCount mip levels on a 4x4 DXT1 image and
// appends one 8-byte block per stored level (4x4 and below are all a
// single block).
func buildMippedDXT1(mipCount, storedLevels int) []byte {
	header := buildHeader(4, 4, fourCC("DXT1"), 0, 0, 0, 0, 0)
	h := header[4:]
	flags := binary.LittleEndian.Uint32(h[4:8])
	binary.LittleEndian.PutUint32(h[4:8], flags|flagMipmapCount)
	binary.LittleEndian.PutUint32(h[24:28], uint32(mipCount))
	return append(header, make([]byte, storedLevels*8)...)
}

func TestDecodeDDSMaxMipsSucceeds(t *testing.T) {
	buf := buildMippedDXT1(16, 16)
	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if st.Fatal() {
		t.Fatalf("unexpected fatal state %#x", uint32(st))
	}
	if img.NumMipLevels != maxMipmapLevels {
		t.Fatalf("NumMipLevels = %d, want %d", img.NumMipLevels, maxMipmapLevels)
	}
}

func TestDecodeDDSTooManyMipsCapped(t *testing.T) {
	buf := buildMippedDXT1(17, 16)
	img, st, err := Decode(bytes.NewReader(buf), false)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.NumMipLevels != maxMipmapLevels {
		t.Fatalf("NumMipLevels = %d, want %d", img.NumMipLevels, maxMipmapLevels)
	}
	if st&FatalMaxMipmapLevelsExceeded == 0 || !st.Fatal() {
		t.Fatalf("expected FatalMaxMipmapLevelsExceeded, got %#x", uint32(st))
	}
}

func TestDecodeDDSTooManyMipsStrictRejects(t *testing.T) {
	buf := buildMippedDXT1(17, 16)
	_, _, err := Decode(bytes.NewReader(buf), true)
	if err == nil {
		t.Fatal("expected strict mode to reject excess mip levels")
	}
}

func TestDecodeVolumeTextureIsFatal(t *testing.T) {
	header := buildHeader(4, 4, fourCC("DXT1"), 0, 0, 0, 0, 0)
	h := header[4:]
	flags := binary.LittleEndian.Uint32(h[4:8])
	binary.LittleEndian.PutUint32(h[4:8], flags|flagDepth)
	block := make([]byte, 8)
	buf := append(header, block...)

	_, st, err := Decode(bytes.NewReader(buf), false)
	if err == nil {
		t.Fatal("expected error for volume texture")
	}
	if st&FatalVolumeTexturesNotSupported == 0 {
		t.Errorf("expected FatalVolumeTexturesNotSupported, got %#x", uint32(st))
	}
}
