// Package decode is the top-level decompression entry point: it
// dispatches a compressed pixel-format buffer to pkg/packed, pkg/block,
// pkg/astc, or pkg/pvrtc, then applies the post-decode filter chain
// (tone-map exposure, sRGB/gamma compression, auto-gamma, row reversal,
// spread-luminance) in that order over the produced buffer.
package decode

import (
	"fmt"
	"math"

	"github.com/goopsie/texcore/pkg/astc"
	"github.com/goopsie/texcore/pkg/block"
	"github.com/goopsie/texcore/pkg/colormodel"
	"github.com/goopsie/texcore/pkg/packed"
	"github.com/goopsie/texcore/pkg/pixfmt"
	"github.com/goopsie/texcore/pkg/pvrtc"
	"github.com/goopsie/texcore/pkg/texture"
)

// Result is the decode engine's output: exactly one of RGBA8/RGBAf is
// populated on a non-fatal States, matching every per-family Result type
// this package dispatches to.
type Result struct {
	RGBA8 []texture.RGBA8
	RGBAf []texture.RGBAf
}

// Options controls the post-decode filter chain. All fields are optional;
// the zero value applies no filtering beyond the bare format decode.
type Options struct {
	ProfileHint     colormodel.Profile
	MaxRange        float64 // RGBM/RGBD decode range; 0 selects packed.DefaultMaxRange
	ASTCProfile     astc.Profile
	ToneMapExposure float64 // 0 disables tone-map exposure
	Gamma           float64 // 0 disables gamma compression
	AutoGamma       bool
	ReverseRows     bool
	SpreadLuminance bool
}

// Decode dispatches f's compressed byte buffer to the matching family
// decoder and applies opts' post-decode filter chain. The Result is
// always freshly allocated here, so ConditionalBuffersNotClear remains in
// the States vocabulary for callers that track it but is never set by
// this function — Go's value semantics make a pre-populated Result
// impossible to pass in by accident.
func Decode(f pixfmt.Format, data []byte, w, h int, opts Options) (Result, States, error) {
	if w <= 0 || h <= 0 {
		return Result{}, FatalInvalidInput, fmt.Errorf("decode: invalid dimensions %dx%d", w, h)
	}

	var r Result
	switch {
	case pixfmt.IsPacked(f):
		maxRange := opts.MaxRange
		if maxRange == 0 {
			maxRange = packed.DefaultMaxRange
		}
		res, err := packed.Decode(f, data, w, h, maxRange)
		if err != nil {
			return Result{}, FatalPackedDecodeError, fmt.Errorf("decode: %w", err)
		}
		r = Result{RGBA8: res.RGBA8, RGBAf: res.RGBAf}

	case pixfmt.IsBC(f), pixfmt.IsETC(f), pixfmt.IsEAC(f):
		res, err := block.Decode(f, data, w, h)
		if err != nil {
			return Result{}, FatalBlockDecodeError, fmt.Errorf("decode: %w", err)
		}
		r = Result{RGBA8: res.RGBA8, RGBAf: res.RGBAf}

	case pixfmt.IsASTC(f):
		// ASTC always decodes to RGBAf with alpha present, regardless
		// of the source block's own LDR/HDR content (LDR-profile output
		// is widened from 8-bit). When ASTCProfile is left at its zero
		// value and ProfileHint is Unspecified, ProfileHDRRGBLDRAlpha is
		// used, which loads LDR blocks correctly.
		profile := opts.ASTCProfile
		if profile == astc.ProfileLDR && opts.ProfileHint == colormodel.Unspecified {
			profile = astc.ProfileHDRRGBLDRAlpha
		}
		res, err := astc.Decode(f, data, w, h, profile)
		if err != nil {
			return Result{}, FatalASTCDecodeError, fmt.Errorf("decode: %w", err)
		}
		r = Result{RGBAf: res.RGBAf}
		if len(res.RGBA8) != 0 {
			r.RGBAf = make([]texture.RGBAf, len(res.RGBA8))
			for i, p := range res.RGBA8 {
				r.RGBAf[i] = p.ToRGBAf()
			}
		}

	case pixfmt.IsPVR(f):
		mode, ok := pvrtc.FormatMode(f)
		if !ok {
			return Result{}, FatalUnsupportedFormat, fmt.Errorf("decode: %s has no PVRTC1 decoder (PVRTC-II/PVR-HDR/PVR2-HDR are unsupported)", pixfmt.Name(f))
		}
		res, err := pvrtc.Decode(mode, data, w, h)
		if err != nil {
			return Result{}, FatalPVRDecodeError, fmt.Errorf("decode: %w", err)
		}
		r = Result{RGBA8: res.RGBA8}

	default:
		return Result{}, FatalUnsupportedFormat, fmt.Errorf("decode: %s is not supported", pixfmt.Name(f))
	}

	st := applyFilters(&r, f, w, h, opts)
	return r, st, nil
}

// applyFilters runs the post-decode filter chain in order: tone-map
// exposure and sRGB/gamma compression act on HDR (RGBAf) output only;
// auto-gamma folds into the same pass by choosing an effective gamma when
// the caller didn't name one; row reversal and spread-luminance apply to
// whichever buffer (RGBA8 or RGBAf) decode populated.
func applyFilters(r *Result, f pixfmt.Format, w, h int, opts Options) States {
	var st States

	// Auto-gamma: resolve to sRGB compression when the source is
	// linear-in-RGB and isn't one of the "don't transform" formats, and
	// the caller didn't already name an explicit gamma.
	autoSRGB := opts.Gamma == 0 && opts.AutoGamma &&
		colormodel.IsLinearInRGB(opts.ProfileHint) && !isGammaExempt(f)

	if len(r.RGBAf) != 0 {
		if opts.ToneMapExposure > 0 {
			toneMapExposure(r.RGBAf, opts.ToneMapExposure)
		}
		if autoSRGB {
			srgbCompressAll(r.RGBAf)
		} else if opts.Gamma > 0 {
			gammaCompress(r.RGBAf, opts.Gamma)
		}
	}

	if opts.ReverseRows {
		if len(r.RGBA8) != 0 {
			reverseRowsRGBA8(r.RGBA8, w, h)
		}
		if len(r.RGBAf) != 0 {
			reverseRowsRGBAf(r.RGBAf, w, h)
		}
	}

	if opts.SpreadLuminance && pixfmt.SpreadsLuminance(f) {
		spreadLuminance8(r.RGBA8)
		spreadLuminanceF(r.RGBAf)
	}

	st |= Valid
	return st
}

// isGammaExempt lists the formats auto-gamma must not transform: they
// carry masks, normals, or other non-colour data.
func isGammaExempt(f pixfmt.Format) bool {
	switch f {
	case pixfmt.A8, pixfmt.L8A8, pixfmt.BC4ATI1U, pixfmt.BC4ATI1S, pixfmt.BC5ATI2U, pixfmt.BC5ATI2S:
		return true
	default:
		return false
	}
}

func toneMapExposure(px []texture.RGBAf, exposure float64) {
	for i := range px {
		px[i].R = float32(1 - math.Exp(-float64(px[i].R)*exposure))
		px[i].G = float32(1 - math.Exp(-float64(px[i].G)*exposure))
		px[i].B = float32(1 - math.Exp(-float64(px[i].B)*exposure))
	}
}

// srgbCompress applies the piecewise linear-to-sRGB transfer function.
func srgbCompress(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return float32(1.055*math.Pow(float64(v), 1.0/2.4) - 0.055)
}

func srgbCompressAll(px []texture.RGBAf) {
	for i := range px {
		px[i].R = srgbCompress(px[i].R)
		px[i].G = srgbCompress(px[i].G)
		px[i].B = srgbCompress(px[i].B)
	}
}

func gammaCompress(px []texture.RGBAf, gamma float64) {
	invGamma := 1.0 / gamma
	for i := range px {
		px[i].R = float32(math.Pow(float64(px[i].R), invGamma))
		px[i].G = float32(math.Pow(float64(px[i].G), invGamma))
		px[i].B = float32(math.Pow(float64(px[i].B), invGamma))
	}
}

func reverseRowsRGBA8(px []texture.RGBA8, w, h int) {
	for y := 0; y < h/2; y++ {
		top := px[y*w : y*w+w]
		bot := px[(h-1-y)*w : (h-1-y)*w+w]
		for x := 0; x < w; x++ {
			top[x], bot[x] = bot[x], top[x]
		}
	}
}

func reverseRowsRGBAf(px []texture.RGBAf, w, h int) {
	for y := 0; y < h/2; y++ {
		top := px[y*w : y*w+w]
		bot := px[(h-1-y)*w : (h-1-y)*w+w]
		for x := 0; x < w; x++ {
			top[x], bot[x] = bot[x], top[x]
		}
	}
}

func spreadLuminance8(px []texture.RGBA8) {
	for i := range px {
		px[i].G = px[i].R
		px[i].B = px[i].R
	}
}

func spreadLuminanceF(px []texture.RGBAf) {
	for i := range px {
		px[i].G = px[i].R
		px[i].B = px[i].R
	}
}
