// Package resample implements the two-pass kernel resizer used by
// texture.Picture.Resample: nearest, box, bilinear, the Mitchell-Netravali
// bicubic family, and the Lanczos family, each with a Clamp or Wrap edge
// mode.
package resample

import "math"

// Filter selects the resampling kernel.
type Filter int

const (
	Nearest Filter = iota
	Box
	Bilinear
	BicubicStandard   // Cardinal B=0 C=3/4
	BicubicCatmullRom // B=0 C=1/2
	BicubicMitchell   // B=1/3 C=1/3
	BicubicCardinal   // B=0 C=1
	BicubicBSpline    // B=1 C=0
	LanczosNarrow     // a=2
	LanczosNormal     // a=3
	LanczosWide       // a=4
)

// EdgeMode controls how out-of-range source indices are resolved.
type EdgeMode int

const (
	Clamp EdgeMode = iota
	Wrap
)

func (e EdgeMode) resolve(idx, count int) int {
	if count <= 0 {
		return 0
	}
	switch e {
	case Wrap:
		idx %= count
		if idx < 0 {
			idx += count
		}
		return idx
	default: // Clamp
		if idx < 0 {
			return 0
		}
		if idx >= count {
			return count - 1
		}
		return idx
	}
}

// mitchell returns the Mitchell-Netravali cubic kernel for the given
// (B, C) parameterization, support radius 2 (4 taps).
func mitchell(b, c float64) func(x float64) float64 {
	p0 := (6 - 2*b) / 6
	p2 := (-18 + 12*b + 6*c) / 6
	p3 := (12 - 9*b - 6*c) / 6
	q0 := (8*b + 24*c) / 6
	q1 := (-12*b - 48*c) / 6
	q2 := (6*b + 30*c) / 6
	q3 := (-b - 6*c) / 6
	return func(x float64) float64 {
		x = math.Abs(x)
		switch {
		case x < 1:
			return p0 + x*x*(p2+x*p3)
		case x < 2:
			return q0 + x*(q1+x*(q2+x*q3))
		default:
			return 0
		}
	}
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

func lanczos(a float64) func(x float64) float64 {
	return func(x float64) float64 {
		if math.Abs(x) >= a {
			return 0
		}
		return sinc(x) * sinc(x/a)
	}
}

// kernel returns the 1D weight function and its support radius (taps on
// each side of the center, for fixed-support filters). Box has a
// variable, caller-supplied support and is handled separately.
func kernel(f Filter) (weight func(x float64) float64, support float64) {
	switch f {
	case Bilinear:
		return func(x float64) float64 {
			x = math.Abs(x)
			if x < 1 {
				return 1 - x
			}
			return 0
		}, 1
	case BicubicStandard:
		return mitchell(0, 0.75), 2
	case BicubicCatmullRom:
		return mitchell(0, 0.5), 2
	case BicubicMitchell:
		return mitchell(1.0/3, 1.0/3), 2
	case BicubicCardinal:
		return mitchell(0, 1), 2
	case BicubicBSpline:
		return mitchell(1, 0), 2
	case LanczosNarrow:
		return lanczos(2), 2
	case LanczosNormal:
		return lanczos(3), 3
	case LanczosWide:
		return lanczos(4), 4
	default:
		return mitchell(0, 0.75), 2
	}
}
