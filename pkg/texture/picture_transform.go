package texture

import (
	"fmt"
	"math"
)

// Flip mirrors p. horizontal=true flips left-right; false flips top-bottom
// (row reversal). Always exact.
func (p *Picture) Flip(horizontal bool) {
	if !p.Valid() {
		return
	}
	if horizontal {
		for y := 0; y < p.Height; y++ {
			row := p.Pixels[y*p.Width : (y+1)*p.Width]
			for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
				row[i], row[j] = row[j], row[i]
			}
		}
		return
	}
	row := make([]RGBA8, p.Width)
	for y := 0; y < p.Height/2; y++ {
		top := p.Pixels[y*p.Width : (y+1)*p.Width]
		bot := p.Pixels[(p.Height-1-y)*p.Width : (p.Height-y)*p.Width]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

// Rotate90 performs an exact integer 90 degree rotation.
func (p *Picture) Rotate90(anticlockwise bool) {
	if !p.Valid() {
		return
	}
	nw, nh := p.Height, p.Width
	dst := make([]RGBA8, nw*nh)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			src := p.At(x, y)
			var dx, dy int
			if anticlockwise {
				// (x, y) -> (y, W-1-x)
				dx, dy = y, p.Width-1-x
			} else {
				// (x, y) -> (H-1-y, x)
				dx, dy = p.Height-1-y, x
			}
			dst[dy*nw+dx] = src
		}
	}
	p.Width, p.Height, p.Pixels = nw, nh, dst
}

// ScaleHalf performs an exact box-average half-size downscale. It
// succeeds iff each dimension is either 1 (passed through unchanged) or
// even; a 1xN or Nx1 image is handled as a row/column vector.
func (p *Picture) ScaleHalf() bool {
	if !p.Valid() {
		return false
	}
	if (p.Width != 1 && p.Width%2 != 0) || (p.Height != 1 && p.Height%2 != 0) {
		return false
	}
	nw := p.Width
	if nw > 1 {
		nw /= 2
	}
	nh := p.Height
	if nh > 1 {
		nh /= 2
	}
	dst := make([]RGBA8, nw*nh)
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			sx0 := x * p.Width / nw
			sy0 := y * p.Height / nh
			sx1 := sx0 + 2
			if p.Width == 1 {
				sx1 = 1
			}
			sy1 := sy0 + 2
			if p.Height == 1 {
				sy1 = 1
			}
			var r, g, b, a, n int
			for sy := sy0; sy < sy1 && sy < p.Height; sy++ {
				for sx := sx0; sx < sx1 && sx < p.Width; sx++ {
					c := p.At(sx, sy)
					r += int(c.R)
					g += int(c.G)
					b += int(c.B)
					a += int(c.A)
					n++
				}
			}
			dst[y*nw+x] = RGBA8{uint8(r / n), uint8(g / n), uint8(b / n), uint8(a / n)}
		}
	}
	p.Width, p.Height, p.Pixels = nw, nh, dst
	return true
}

// GenerateLayers returns a mipmap chain (each image half the previous,
// dimensions truncated and clamped to >= 1) down to 1x1, every level
// produced by Resample with filter/edgeMode. If chain is true each level
// is built from the previous level; if false every level resamples from
// the original picture.
func (p *Picture) GenerateLayers(filter Filter, edgeMode EdgeMode, chain bool) ([]*Picture, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("source picture is invalid")
	}
	var levels []*Picture
	cur := &Picture{}
	if err := cur.SetBuffer(p.Width, p.Height, p.Pixels, p.SrcFormat); err != nil {
		return nil, err
	}
	for {
		w, h := cur.Width/2, cur.Height/2
		if cur.Width == 1 {
			w = 1
		}
		if cur.Height == 1 {
			h = 1
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		if w == cur.Width && h == cur.Height {
			break
		}
		next := &Picture{}
		src := cur
		if !chain {
			src = p
		}
		if err := next.Resample(src, w, h, filter, edgeMode); err != nil {
			return nil, err
		}
		levels = append(levels, next)
		cur = next
	}
	return levels, nil
}

// AlphaBlendColour blends colour under p's pixels using each pixel's own
// alpha as the blend factor: c' = c*a + colour*(1-a). If resetAlpha is
// true, every pixel's alpha is then set to 255 (fully opaque).
func (p *Picture) AlphaBlendColour(colour RGBA8, resetAlpha bool) {
	if !p.Valid() {
		return
	}
	for i, c := range p.Pixels {
		a := float64(c.A) / 255
		blend := func(src, bg uint8) uint8 {
			v := float64(src)*a + float64(bg)*(1-a)
			return uint8(math.Round(clampF(v, 0, 255)))
		}
		out := RGBA8{
			R: blend(c.R, colour.R),
			G: blend(c.G, colour.G),
			B: blend(c.B, colour.B),
			A: c.A,
		}
		if resetAlpha {
			out.A = 255
		}
		p.Pixels[i] = out
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
