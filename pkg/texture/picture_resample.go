package texture

import (
	"fmt"
	"math"

	"github.com/goopsie/texcore/pkg/resample"
)

// Filter re-exports resample.Filter so callers need only import texture.
type Filter = resample.Filter

// EdgeMode re-exports resample.EdgeMode.
type EdgeMode = resample.EdgeMode

const (
	Nearest           = resample.Nearest
	Box               = resample.Box
	Bilinear          = resample.Bilinear
	BicubicStandard   = resample.BicubicStandard
	BicubicCatmullRom = resample.BicubicCatmullRom
	BicubicMitchell   = resample.BicubicMitchell
	BicubicCardinal   = resample.BicubicCardinal
	BicubicBSpline    = resample.BicubicBSpline
	LanczosNarrow     = resample.LanczosNarrow
	LanczosNormal     = resample.LanczosNormal
	LanczosWide       = resample.LanczosWide

	Clamp = resample.Clamp
	Wrap  = resample.Wrap
)

func pixelsToBytes(pixels []RGBA8) []byte {
	out := make([]byte, len(pixels)*4)
	for i, c := range pixels {
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}

func bytesToPixels(data []byte) []RGBA8 {
	out := make([]RGBA8, len(data)/4)
	for i := range out {
		out[i] = RGBA8{data[i*4+0], data[i*4+1], data[i*4+2], data[i*4+3]}
	}
	return out
}

// Resample resizes src to w x h and stores the result in p. A no-op when
// (w, h) already matches src's dimensions (still copies src into p).
func (p *Picture) Resample(src *Picture, w, h int, filter Filter, edge EdgeMode) error {
	if !src.Valid() {
		return fmt.Errorf("source picture is invalid")
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid target dimensions %dx%d", w, h)
	}
	out := resample.Resize(pixelsToBytes(src.Pixels), src.Width, src.Height, w, h, filter, edge)
	p.Width, p.Height = w, h
	p.Pixels = bytesToPixels(out)
	p.SrcFormat = src.SrcFormat
	p.adjust = nil
	return nil
}

// RotateCenter rotates p by angle radians about its center, filling
// exposed corners with fill. If downFilter is nil, nearest-neighbour
// sampling is used directly and upFilter is ignored. Otherwise the image is
// upscaled (by 4x with upFilter+downFilter both set, or by 2x twice with
// only downFilter set), rotated with nearest-neighbour on the upscaled
// canvas, then scaled back down with ScaleHalf, which anti-aliases the
// rotated edges.
func (p *Picture) RotateCenter(angle float64, fill RGBA8, upFilter, downFilter *Filter) error {
	if !p.Valid() {
		return fmt.Errorf("picture is invalid")
	}
	work := p
	scaleBack := 1
	if downFilter != nil {
		up := &Picture{}
		if upFilter != nil {
			if err := up.Resample(p, p.Width*4, p.Height*4, *upFilter, Clamp); err != nil {
				return err
			}
			scaleBack = 4
		} else {
			if err := up.Resample(p, p.Width*2, p.Height*2, *downFilter, Clamp); err != nil {
				return err
			}
			if err := up.Resample(up, up.Width*2, up.Height*2, *downFilter, Clamp); err != nil {
				return err
			}
			scaleBack = 4
		}
		work = up
	}

	const eps = 2e-4
	sinA, cosA := math.Sin(angle), math.Cos(angle)
	cx, cy := float64(work.Width)/2, float64(work.Height)/2

	corners := [4][2]float64{{0, 0}, {float64(work.Width), 0}, {0, float64(work.Height)}, {float64(work.Width), float64(work.Height)}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		ox, oy := c[0]-cx, c[1]-cy
		rx := ox*cosA - oy*sinA
		ry := ox*sinA + oy*cosA
		minX = math.Min(minX, rx)
		maxX = math.Max(maxX, rx)
		minY = math.Min(minY, ry)
		maxY = math.Max(maxY, ry)
	}
	dstW := int(math.Round(maxX-minX+eps)) + 1
	dstH := int(math.Round(maxY-minY+eps)) + 1
	// Pad the canvas to a multiple of scaleBack so every ScaleHalf below
	// sees even dimensions.
	dstW += (scaleBack - dstW%scaleBack) % scaleBack
	dstH += (scaleBack - dstH%scaleBack) % scaleBack

	dst := &Picture{}
	if err := dst.SetSize(dstW, dstH, fill); err != nil {
		return err
	}
	dcx, dcy := float64(dstW)/2, float64(dstH)/2
	for dy := 0; dy < dstH; dy++ {
		for dx := 0; dx < dstW; dx++ {
			ox, oy := float64(dx)-dcx, float64(dy)-dcy
			// Inverse rotation to locate source pixel.
			sx := ox*cosA + oy*sinA + cx
			sy := -ox*sinA + oy*cosA + cy
			ix, iy := int(math.Round(sx)), int(math.Round(sy))
			if ix < 0 || iy < 0 || ix >= work.Width || iy >= work.Height {
				continue
			}
			dst.SetPixel(dx, dy, work.At(ix, iy))
		}
	}

	for i := 0; i < int(math.Log2(float64(scaleBack))); i++ {
		dst.ScaleHalf()
	}
	p.Width, p.Height, p.Pixels = dst.Width, dst.Height, dst.Pixels
	p.adjust = nil
	return nil
}
