// Package astc is a decompress-only ASTC (Adaptive Scalable Texture
// Compression) decoder covering the 14 2D block footprints from 4x4 to
// 12x12: block-mode decode, integer sequence (trit/quint) extraction,
// weight-grid decimation, 1-4 partition colour-endpoint decode, and
// void-extent/constant-colour blocks, per the Khronos ASTC
// specification. HDR colour-endpoint formats are approximated (see
// endpoints.go).
//
// Only 2D (block depth 1) footprints are supported; ASTC 3D blocks are
// for volume textures, which texcore does not load.
package astc

// BlockBytes is the size in bytes of a single ASTC block payload.
const BlockBytes = 16

// Profile selects how colour-endpoint and constant-colour blocks are
// interpreted, mirroring the decode profile the reference codec requires
// from its caller (ASTC files do not self-describe this). Callers choose
// a profile; pkg/decode defaults to ProfileHDRRGBLDRAlpha, which loads
// LDR blocks correctly too.
type Profile uint8

const (
	// ProfileLDR decodes using linear LDR rules.
	ProfileLDR Profile = iota
	// ProfileLDRSRGB decodes using sRGB LDR rules.
	ProfileLDRSRGB
	// ProfileHDRRGBLDRAlpha decodes using HDR RGB and LDR alpha rules.
	ProfileHDRRGBLDRAlpha
	// ProfileHDR decodes using HDR RGBA rules.
	ProfileHDR
)
