// Package rowreverse flips image rows while the pixel data is still
// encoded: whole-row swaps for byte-aligned packed formats, and for
// BC1/BC1A/BC2/BC3 a block-row swap combined with a per-block
// index-table row swap, so the blocks decode upside down without being
// decompressed first.
package rowreverse

import (
	"encoding/binary"
	"fmt"

	"github.com/goopsie/texcore/pkg/pixfmt"
)

// CanReverse reports whether a layer of format f and the given height can
// be row-reversed in its still-encoded form.
func CanReverse(f pixfmt.Format, height int) bool {
	switch f {
	case pixfmt.BC1DXT1, pixfmt.BC1DXT1A, pixfmt.BC2DXT2DXT3, pixfmt.BC3DXT4DXT5:
		return height%4 == 0
	default:
		if !pixfmt.IsPacked(f) {
			return false
		}
		bpp := pixfmt.BitsPerPixel(f)
		return bpp > 0 && bpp%8 == 0
	}
}

// ReversePacked reverses row order in place for a byte-aligned packed
// format buffer of the given width/height/bytesPerPixel.
func ReversePacked(data []byte, width, height, bytesPerPixel int) error {
	rowBytes := width * bytesPerPixel
	if len(data) != rowBytes*height {
		return fmt.Errorf("rowreverse: buffer length %d does not match %dx%d at %d bytes/pixel", len(data), width, height, bytesPerPixel)
	}
	tmp := make([]byte, rowBytes)
	for y := 0; y < height/2; y++ {
		top := data[y*rowBytes : (y+1)*rowBytes]
		bot := data[(height-1-y)*rowBytes : (height-y)*rowBytes]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
	return nil
}

// swapColourIndexRows swaps rows 0<->3 and 1<->2 of a BC1-style 2-bit
// index table packed as a little-endian uint32 (row r occupies bits
// [8r:8r+8), 4 indices of 2 bits each).
func swapColourIndexRows(idx uint32) uint32 {
	row := func(v uint32, r int) uint32 { return (v >> (8 * r)) & 0xFF }
	r0, r1, r2, r3 := row(idx, 0), row(idx, 1), row(idx, 2), row(idx, 3)
	return r3 | r2<<8 | r1<<16 | r0<<24
}

// reverseBC1Block swaps a single 8-byte BC1 block's index-table rows in
// place; the two 16-bit colour endpoints are untouched.
func reverseBC1Block(block []byte) {
	idx := binary.LittleEndian.Uint32(block[4:8])
	binary.LittleEndian.PutUint32(block[4:8], swapColourIndexRows(idx))
}

// reverseBC2AlphaBlock swaps the 4 explicit 16-bit alpha rows (rows
// 0<->3, 1<->2) of an 8-byte BC2 alpha block.
func reverseBC2AlphaBlock(block []byte) {
	var rows [4]uint16
	for r := 0; r < 4; r++ {
		rows[r] = binary.LittleEndian.Uint16(block[r*2 : r*2+2])
	}
	rows[0], rows[3] = rows[3], rows[0]
	rows[1], rows[2] = rows[2], rows[1]
	for r := 0; r < 4; r++ {
		binary.LittleEndian.PutUint16(block[r*2:r*2+2], rows[r])
	}
}

// bc3AlphaIndices48 reads the 6-byte (48-bit), little-endian packed array
// of 16 3-bit alpha indices following a BC3 alpha block's two endpoints.
func bc3AlphaIndices48(b []byte) uint64 {
	var v uint64
	for i := 0; i < 6; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func putBC3AlphaIndices48(b []byte, v uint64) {
	for i := 0; i < 6; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// reverseBC3AlphaBlock swaps the 4 rows (4 indices each, 3 bits per
// index) of an 8-byte BC3 alpha block's packed index table; the two
// 8-bit alpha endpoints are untouched.
func reverseBC3AlphaBlock(block []byte) {
	indices := bc3AlphaIndices48(block[2:8])
	get := func(i int) uint64 { return (indices >> uint(3*i)) & 0x7 }
	var out uint64
	set := func(i int, v uint64) { out |= (v & 0x7) << uint(3*i) }
	rowOf := [4]int{3, 2, 1, 0} // index i's new row is 3-old_row(i)
	for i := 0; i < 16; i++ {
		row := i / 4
		col := i % 4
		newRow := rowOf[row]
		set(newRow*4+col, get(i))
	}
	putBC3AlphaIndices48(block[2:8], out)
}

// reverseBlocks is shared by BC1/BC2/BC3: swaps block rows top<->bottom
// and applies perBlock to each relocated block.
func reverseBlocks(data []byte, blocksWide, blocksHigh, blockBytes int, perBlock func(block []byte)) error {
	rowBytes := blocksWide * blockBytes
	if len(data) != rowBytes*blocksHigh {
		return fmt.Errorf("rowreverse: buffer length %d does not match %d block rows of %d bytes", len(data), blocksHigh, rowBytes)
	}
	tmp := make([]byte, rowBytes)
	for by := 0; by < blocksHigh/2; by++ {
		top := data[by*rowBytes : (by+1)*rowBytes]
		bot := data[(blocksHigh-1-by)*rowBytes : (blocksHigh-by)*rowBytes]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
	for by := 0; by < blocksHigh; by++ {
		row := data[by*rowBytes : (by+1)*rowBytes]
		for bx := 0; bx < blocksWide; bx++ {
			perBlock(row[bx*blockBytes : (bx+1)*blockBytes])
		}
	}
	return nil
}

// ReverseBC1 row-reverses a BC1/BC1A layer (8-byte blocks).
func ReverseBC1(data []byte, width, height int) error {
	bw, bh := pixfmt.NumBlocks(4, width), pixfmt.NumBlocks(4, height)
	return reverseBlocks(data, bw, bh, 8, reverseBC1Block)
}

// ReverseBC2 row-reverses a BC2 layer (16-byte blocks: 8-byte explicit
// alpha followed by an 8-byte BC1-style colour block).
func ReverseBC2(data []byte, width, height int) error {
	bw, bh := pixfmt.NumBlocks(4, width), pixfmt.NumBlocks(4, height)
	return reverseBlocks(data, bw, bh, 16, func(block []byte) {
		reverseBC2AlphaBlock(block[0:8])
		reverseBC1Block(block[8:16])
	})
}

// ReverseBC3 row-reverses a BC3 layer (16-byte blocks: 8-byte BC3 alpha
// block followed by an 8-byte BC1-style colour block).
func ReverseBC3(data []byte, width, height int) error {
	bw, bh := pixfmt.NumBlocks(4, width), pixfmt.NumBlocks(4, height)
	return reverseBlocks(data, bw, bh, 16, func(block []byte) {
		reverseBC3AlphaBlock(block[0:8])
		reverseBC1Block(block[8:16])
	})
}

// Reverse dispatches to the right reversal routine for f, or returns an
// error if f cannot be reversed in its encoded form (see CanReverse).
func Reverse(f pixfmt.Format, data []byte, width, height int) error {
	if !CanReverse(f, height) {
		return fmt.Errorf("rowreverse: %s at height %d cannot be reversed pre-decode", pixfmt.Name(f), height)
	}
	switch f {
	case pixfmt.BC1DXT1, pixfmt.BC1DXT1A:
		return ReverseBC1(data, width, height)
	case pixfmt.BC2DXT2DXT3:
		return ReverseBC2(data, width, height)
	case pixfmt.BC3DXT4DXT5:
		return ReverseBC3(data, width, height)
	default:
		bpp := pixfmt.BitsPerPixel(f)
		return ReversePacked(data, width, height, bpp/8)
	}
}
