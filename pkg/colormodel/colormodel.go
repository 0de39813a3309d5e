// Package colormodel holds the small value types that describe how pixel
// data should be interpreted once decoded: colour profile, alpha
// convention, and numeric channel type.
package colormodel

// Profile is the author-intended interpretation of decoded pixel data.
type Profile int

const (
	Unspecified Profile = iota
	SRGB
	GRGB
	LRGB
	HDRa // HDR-linear: values above 1.0 are meaningful.
	LDRsRGB_LDRlA
	LDRgRGB_LDRlA
	LDRlRGBA
	HDRlRGB_LDRlA
	HDRlRGBA
	Auto
)

// IsLinearInRGB reports whether p treats its RGB channels as linear.
// Used to drive auto-gamma decisions in the decode engine.
func IsLinearInRGB(p Profile) bool {
	switch p {
	case LRGB, HDRa, LDRlRGBA, HDRlRGB_LDRlA, HDRlRGBA:
		return true
	default:
		return false
	}
}

func (p Profile) String() string {
	switch p {
	case Unspecified:
		return "Unspecified"
	case SRGB:
		return "sRGB"
	case GRGB:
		return "gRGB"
	case LRGB:
		return "lRGB"
	case HDRa:
		return "HDRa"
	case LDRsRGB_LDRlA:
		return "LDRsRGB_LDRlA"
	case LDRgRGB_LDRlA:
		return "LDRgRGB_LDRlA"
	case LDRlRGBA:
		return "LDRlRGBA"
	case HDRlRGB_LDRlA:
		return "HDRlRGB_LDRlA"
	case HDRlRGBA:
		return "HDRlRGBA"
	case Auto:
		return "Auto"
	default:
		return "Unspecified"
	}
}

// AlphaMode describes how the alpha channel, if any, should be treated.
type AlphaMode int

const (
	AlphaUnspecified AlphaMode = iota
	AlphaNone
	AlphaNormal
	AlphaPremultiplied
)

func (a AlphaMode) String() string {
	switch a {
	case AlphaNone:
		return "None"
	case AlphaNormal:
		return "Normal"
	case AlphaPremultiplied:
		return "Premultiplied"
	default:
		return "Unspecified"
	}
}

// ChannelType is the numeric interpretation of a decoded channel.
type ChannelType int

const (
	ChannelUnspecified ChannelType = iota
	ChannelNone
	UNORM
	SNORM
	UINT
	SINT
	UFLOAT
	SFLOAT
)

func (c ChannelType) String() string {
	switch c {
	case ChannelNone:
		return "NONE"
	case UNORM:
		return "UNORM"
	case SNORM:
		return "SNORM"
	case UINT:
		return "UINT"
	case SINT:
		return "SINT"
	case UFLOAT:
		return "UFLOAT"
	case SFLOAT:
		return "SFLOAT"
	default:
		return "Unspecified"
	}
}
