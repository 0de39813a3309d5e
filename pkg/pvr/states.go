package pvr

// States records warnings and fatal conditions encountered while parsing:
// bit 0 is Valid, followed by a Conditional_* range that can coexist with
// Valid and a Fatal_* range that cannot. Decode errors are not recorded
// here — decoding lives in the decode engine, not this container parser.
type States uint32

const (
	// Valid is set whenever Decode produced a usable Image; it coexists
	// with any Conditional bit and never with a Fatal one.
	Valid States = 1 << iota

	ConditionalCouldNotFlipRows
	ConditionalV2IncorrectFourCC
	ConditionalV1V2InvalidDimensionsPVRTC1
	ConditionalV1V2MipmapFlagInconsistent

	FatalUnsupportedPVRFileVersion
	FatalTruncated
	FatalBadHeaderData
	FatalInvalidDimensions
	FatalV1V2InvalidDimensionsPVRTC1
	FatalV1V2MipmapFlagInconsistent
	FatalV1V2TwiddlingUnsupported
	FatalV1V2CubemapFlagInconsistent
	FatalV2IncorrectFourCC
	FatalPixelFormatNotSupported
	FatalMaxMipmapLevelsExceeded
)

// Fatal reports whether any fatal bit is set.
func (s States) Fatal() bool {
	const fatalMask = FatalUnsupportedPVRFileVersion | FatalTruncated | FatalBadHeaderData |
		FatalInvalidDimensions | FatalV1V2InvalidDimensionsPVRTC1 | FatalV1V2MipmapFlagInconsistent |
		FatalV1V2TwiddlingUnsupported | FatalV1V2CubemapFlagInconsistent | FatalV2IncorrectFourCC |
		FatalPixelFormatNotSupported | FatalMaxMipmapLevelsExceeded
	return s&fatalMask != 0
}

// Describe returns the stable English description of every bit set in s,
// in bit order.
func (s States) Describe() []string {
	var out []string
	add := func(bit States, text string) {
		if s&bit != 0 {
			out = append(out, text)
		}
	}
	add(Valid, "decode succeeded")
	add(ConditionalCouldNotFlipRows, "row order could not be flipped to match the requested orientation")
	add(ConditionalV2IncorrectFourCC, "V2 header FourCC tag did not match the expected value")
	add(ConditionalV1V2InvalidDimensionsPVRTC1, "dimensions are invalid for PVRTC1 and were adjusted")
	add(ConditionalV1V2MipmapFlagInconsistent, "mipmap flag did not match the declared mip count")
	add(FatalUnsupportedPVRFileVersion, "file version is not V1, V2, or V3")
	add(FatalTruncated, "file was truncated before all declared data could be read")
	add(FatalBadHeaderData, "header data failed structural validation")
	add(FatalInvalidDimensions, "declared dimensions are invalid")
	add(FatalV1V2InvalidDimensionsPVRTC1, "dimensions are invalid for PVRTC1")
	add(FatalV1V2MipmapFlagInconsistent, "mipmap flag is inconsistent with the declared mip count")
	add(FatalV1V2TwiddlingUnsupported, "twiddled (Morton-order) surfaces are not supported")
	add(FatalV1V2CubemapFlagInconsistent, "cubemap flag is inconsistent with the surface count")
	add(FatalV2IncorrectFourCC, "V2 header FourCC tag did not match the expected value")
	add(FatalPixelFormatNotSupported, "pixel format is not supported")
	add(FatalMaxMipmapLevelsExceeded, "mipmap level count exceeded the supported maximum")
	return out
}
