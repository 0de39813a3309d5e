package decode

// States records the outcome of a decode call as a single bitfield,
// mirroring the States of pkg/dds, pkg/ktx and pkg/pvr:
// conditional bits are warnings a strict caller may want to promote,
// fatal bits mean the decode did not produce usable pixels.
type States uint32

const (
	// Valid is set on every successful decode; it is always present
	// alongside any conditional bits, and never alongside a fatal bit.
	Valid States = 1 << iota

	// ConditionalBuffersNotClear: the caller passed non-empty output
	// buffers; they were overwritten rather than appended to.
	ConditionalBuffersNotClear

	FatalUnsupportedFormat
	FatalInvalidInput
	FatalPackedDecodeError
	FatalBlockDecodeError
	FatalASTCDecodeError
	FatalPVRDecodeError
)

const fatalMask = FatalUnsupportedFormat | FatalInvalidInput | FatalPackedDecodeError |
	FatalBlockDecodeError | FatalASTCDecodeError | FatalPVRDecodeError

// Fatal reports whether s carries any bit that means decode failed.
func (s States) Fatal() bool {
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
	add(ConditionalBuffersNotClear, "output buffers were not initially empty")
	add(FatalUnsupportedFormat, "pixel format is not supported")
	add(FatalInvalidInput, "image dimensions are not positive")
	add(FatalPackedDecodeError, "packed-format decode failed")
	add(FatalBlockDecodeError, "block-format decode failed")
	add(FatalASTCDecodeError, "ASTC decode failed")
	add(FatalPVRDecodeError, "PVRTC decode failed")
	return out
}
