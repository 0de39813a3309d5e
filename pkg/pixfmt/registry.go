package pixfmt

// BlockW returns the block width of f in pixels, or 0 iff f is Invalid.
func BlockW(f Format) int {
	i, ok := lookup(f)
	if !ok {
		return 0
	}
	return i.blockW
}

// BlockH returns the block height of f in pixels, or 0 iff f is Invalid.
func BlockH(f Format) int {
	i, ok := lookup(f)
	if !ok {
		return 0
	}
	return i.blockH
}

// BitsPerPixel returns the bits-per-pixel of f, or 0 when that value is
// not integral (e.g. ASTC8X5, whose 16 bytes span 40 texels).
func BitsPerPixel(f Format) int {
	i, ok := lookup(f)
	if !ok {
		return 0
	}
	if i.bitsPerPixel != 0 {
		return i.bitsPerPixel
	}
	if i.bytesPerBlock == 0 {
		return 0
	}
	texels := i.blockW * i.blockH
	bits := i.bytesPerBlock * 8
	if bits%texels != 0 {
		return 0
	}
	return bits / texels
}

// BitsPerPixelFloat returns the bits-per-pixel of f as a float, always
// valid for any non-Invalid format.
func BitsPerPixelFloat(f Format) float64 {
	i, ok := lookup(f)
	if !ok {
		return 0
	}
	if i.bitsPerPixel != 0 {
		return float64(i.bitsPerPixel)
	}
	texels := i.blockW * i.blockH
	return 8 * float64(i.bytesPerBlock) / float64(texels)
}

// BytesPerBlock returns the number of bytes occupied by one block of f.
// For packed/palette formats a "block" is a single pixel, and this is
// bitsPerPixel/8 rounded up only when the bit count is not byte-aligned
// (palette formats with <8 bit indices still occupy a full byte per
// texel in texcore's unpacked layer representation).
func BytesPerBlock(f Format) int {
	i, ok := lookup(f)
	if !ok {
		return 0
	}
	if i.bytesPerBlock != 0 {
		return i.bytesPerBlock
	}
	return (i.bitsPerPixel + 7) / 8
}

// NumBlocks returns ceil(imageDim / blockDim), the number of blocks needed
// to cover imageDim pixels of a dimension whose block size is blockDim.
func NumBlocks(blockDim, imageDim int) int {
	if blockDim <= 0 {
		return 0
	}
	return (imageDim + blockDim - 1) / blockDim
}

// DataSize returns the number of bytes a layer of format f and dimensions
// w x h must occupy. This is the single source of truth for the
// layer-size invariant: bytesPerBlock(f) * numBlocks(bw,w) * numBlocks(bh,h).
func DataSize(f Format, w, h int) int {
	bw, bh := BlockW(f), BlockH(f)
	if bw == 0 || bh == 0 {
		return 0
	}
	return BytesPerBlock(f) * NumBlocks(bw, w) * NumBlocks(bh, h)
}

// IsAlphaCapable reports whether f can carry a non-trivial alpha channel.
func IsAlphaCapable(f Format) bool {
	i, ok := lookup(f)
	return ok && i.alphaCapable
}

// IsOpaque reports whether f can never carry alpha information.
func IsOpaque(f Format) bool {
	i, ok := lookup(f)
	return ok && !i.alphaCapable
}

// IsHDR reports whether f's natural decode target is float pixels.
func IsHDR(f Format) bool {
	i, ok := lookup(f)
	return ok && i.hdr
}

// IsLDR reports whether f's natural decode target is 8-bit pixels.
func IsLDR(f Format) bool {
	i, ok := lookup(f)
	return ok && !i.hdr
}

// IsLuminance reports whether f stores luminance/alpha channels rather
// than full colour (L8, A8, L8A8).
func IsLuminance(f Format) bool {
	switch f {
	case L8, A8, L8A8:
		return true
	default:
		return false
	}
}

// SpreadsLuminance reports whether f is a single red- or luminance-only
// channel format whose decoded value lands in Red alone, eligible for the
// SpreadLuminance copy of R into G and B. Alpha-only formats never
// spread.
func SpreadsLuminance(f Format) bool {
	i, ok := lookup(f)
	return ok && i.spreadLum
}

// Name returns the canonical, case-sensitive name of f.
func Name(f Format) string {
	i, ok := lookup(f)
	if !ok {
		return "Invalid"
	}
	return i.name
}

var byName = func() map[string]Format {
	m := make(map[string]Format, len(table))
	for f, i := range table {
		m[i.name] = f
	}
	return m
}()

// FromName returns the format named s, or Invalid if s is not a known
// format name. Name/FromName round-trip for every valid format.
func FromName(s string) Format {
	if f, ok := byName[s]; ok {
		return f
	}
	return Invalid
}
