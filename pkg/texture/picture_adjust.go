package texture

import (
	"fmt"
	"math"
)

// adjustState holds the original, unadjusted pixels and their per-channel
// histograms captured by Begin. Every Adjust* call recomputes from this
// original snapshot, never from a previously adjusted result, so repeated
// calls compose predictably instead of drifting.
type adjustState struct {
	original []RGBA8
	hist     [4][256]int
	min, max [4]uint8
}

func channelOf(c RGBA8, ch int) uint8 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.A
	}
}

func setChannel(c *RGBA8, ch int, v uint8) {
	switch ch {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	default:
		c.A = v
	}
}

// BeginAdjust snapshots p's current pixels as the baseline for subsequent
// AdjustBrightness/AdjustContrast/AdjustLevels calls, and precomputes
// per-channel 256-bin histograms and min/max over that baseline.
func (p *Picture) BeginAdjust() error {
	if !p.Valid() {
		return fmt.Errorf("picture is invalid")
	}
	st := &adjustState{original: append([]RGBA8(nil), p.Pixels...)}
	for ch := 0; ch < 4; ch++ {
		st.min[ch] = 255
		st.max[ch] = 0
	}
	for _, c := range st.original {
		for ch := 0; ch < 4; ch++ {
			v := channelOf(c, ch)
			st.hist[ch][v]++
			if v < st.min[ch] {
				st.min[ch] = v
			}
			if v > st.max[ch] {
				st.max[ch] = v
			}
		}
	}
	p.adjust = st
	return nil
}

func (p *Picture) applyPerChannel(f func(ch int, v uint8) uint8) error {
	if p.adjust == nil {
		return fmt.Errorf("BeginAdjust must be called before adjusting")
	}
	for i, c := range p.adjust.original {
		out := c
		for ch := 0; ch < 3; ch++ {
			setChannel(&out, ch, f(ch, channelOf(c, ch)))
		}
		p.Pixels[i] = out
	}
	return nil
}

// AdjustBrightness scales RGB channels (not alpha) by factor, always
// relative to the pixels captured by BeginAdjust.
func (p *Picture) AdjustBrightness(factor float64) error {
	return p.applyPerChannel(func(ch int, v uint8) uint8 {
		return clampChannel(float64(v) * factor)
	})
}

// AdjustContrast scales RGB channels around the mid-grey point (128) by
// factor, relative to the pixels captured by BeginAdjust.
func (p *Picture) AdjustContrast(factor float64) error {
	return p.applyPerChannel(func(ch int, v uint8) uint8 {
		return clampChannel((float64(v)-128)*factor + 128)
	})
}

// AdjustLevels applies a Photoshop-style levels remap to each RGB channel:
// input range [blackPt, whitePt] is linearly expanded to [0,1], gamma
// corrected by powerMidGamma (a power curve, 0.1-10.0 for a direct exponent
// or 0.01-9.99 for the Photoshop midpoint-slider convention), then mapped
// to output range [blackOut, whiteOut]. midPt is the midtone input value
// shown alongside blackPt/whitePt; it is clamped into [blackPt, whitePt]
// and reversed output bounds are swapped rather than rejected, while a
// whitePt not above blackPt returns an error.
func (p *Picture) AdjustLevels(blackPt, midPt, whitePt, blackOut, whiteOut, powerMidGamma float64) error {
	if midPt < blackPt {
		midPt = blackPt
	}
	if midPt > whitePt {
		midPt = whitePt
	}
	if whiteOut < blackOut {
		blackOut, whiteOut = whiteOut, blackOut
	}
	if whitePt <= blackPt {
		return fmt.Errorf("white point %v must exceed black point %v", whitePt, blackPt)
	}
	gamma := powerMidGamma
	if gamma >= 0.01 && gamma <= 9.99 && gamma < 0.1 {
		gamma = 1.0 / gamma
	}
	return p.applyPerChannel(func(ch int, v uint8) uint8 {
		t := (float64(v) - blackPt) / (whitePt - blackPt)
		t = clampF(t, 0, 1)
		t = math.Pow(t, 1/gamma)
		return clampChannel(blackOut + t*(whiteOut-blackOut))
	})
}

// EndAdjust finalizes the adjustment session. If commit is false, p's
// pixels revert to the snapshot taken by BeginAdjust.
func (p *Picture) EndAdjust(commit bool) {
	if p.adjust == nil {
		return
	}
	if !commit {
		copy(p.Pixels, p.adjust.original)
	}
	p.adjust = nil
}

func clampChannel(v float64) uint8 {
	return uint8(math.Round(clampF(v, 0, 255)))
}
