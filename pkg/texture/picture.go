// Package texture implements the Layer/Frame/Picture data model: the
// mipmap layer container, the single decoded-image frame, and the
// manipulable RGBA8 picture callers use to crop, flip, rotate, resample,
// and adjust images.
package texture

import (
	"fmt"

	"github.com/goopsie/texcore/pkg/pixfmt"
)

// Picture is always RGBA8. Its origin is the lower-left corner: Pixels[0]
// is the bottom-left texel, rows run bottom-to-top.
type Picture struct {
	Width     int
	Height    int
	Pixels    []RGBA8
	SrcFormat pixfmt.Format
	Filename  string
	DurationS float32

	adjust *adjustState
}

// Valid reports whether p holds usable pixel data.
func (p *Picture) Valid() bool {
	return p != nil && p.Width > 0 && p.Height > 0 && len(p.Pixels) == p.Width*p.Height
}

// Invalidate clears p to the empty state.
func (p *Picture) Invalidate() {
	p.Width, p.Height = 0, 0
	p.Pixels = nil
	p.SrcFormat = pixfmt.Invalid
	p.adjust = nil
}

// At returns the pixel at (x, y), with y=0 the bottom row.
func (p *Picture) At(x, y int) RGBA8 {
	return p.Pixels[y*p.Width+x]
}

// SetPixel writes the pixel at (x, y), with y=0 the bottom row.
func (p *Picture) SetPixel(x, y int, c RGBA8) {
	p.Pixels[y*p.Width+x] = c
}

// SetSize allocates a w x h picture filled with colour.
func (p *Picture) SetSize(w, h int, fill RGBA8) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid picture dimensions %dx%d", w, h)
	}
	p.Width, p.Height = w, h
	p.Pixels = make([]RGBA8, w*h)
	for i := range p.Pixels {
		p.Pixels[i] = fill
	}
	p.SrcFormat = pixfmt.R8G8B8A8
	p.adjust = nil
	return nil
}

// SetBuffer copies pixels (w*h of them) into a new picture.
func (p *Picture) SetBuffer(w, h int, pixels []RGBA8, srcFormat pixfmt.Format) error {
	if len(pixels) != w*h {
		return fmt.Errorf("pixel count %d does not match %dx%d", len(pixels), w, h)
	}
	p.Width, p.Height = w, h
	p.Pixels = append([]RGBA8(nil), pixels...)
	p.SrcFormat = srcFormat
	p.adjust = nil
	return nil
}

// SetBufferSteal installs pixels directly without copying.
func (p *Picture) SetBufferSteal(w, h int, pixels []RGBA8, srcFormat pixfmt.Format) error {
	if len(pixels) != w*h {
		return fmt.Errorf("pixel count %d does not match %dx%d", len(pixels), w, h)
	}
	p.Width, p.Height = w, h
	p.Pixels = pixels
	p.SrcFormat = srcFormat
	p.adjust = nil
	return nil
}

// SetFrame populates p from f. When steal is true, f's pixel buffer is
// taken directly and f is left invalid afterwards.
//
// A Set-from-Frame records no source format (the frame carries no
// profile of its own) while a Set-from-Picture (see SetFrom) copies the
// source picture's. The asymmetry is intentional.
func (p *Picture) SetFrame(f *Frame, steal bool) error {
	if !f.Valid() {
		return fmt.Errorf("source frame is invalid")
	}
	w, h := f.Width, f.Height
	if steal {
		return p.SetBufferSteal(w, h, f.Steal(), pixfmt.Invalid)
	}
	return p.SetBuffer(w, h, f.Pixels, pixfmt.Invalid)
}

// SetFrom copies (or steals) another picture's contents into p.
func (p *Picture) SetFrom(src *Picture, steal bool) error {
	if !src.Valid() {
		return fmt.Errorf("source picture is invalid")
	}
	if steal {
		w, h := src.Width, src.Height
		pixels := src.Pixels
		srcFmt := src.SrcFormat
		src.Invalidate()
		return p.SetBufferSteal(w, h, pixels, srcFmt)
	}
	return p.SetBuffer(src.Width, src.Height, src.Pixels, src.SrcFormat)
}

// Steal returns p's pixel buffer and invalidates p.
func (p *Picture) Steal() []RGBA8 {
	pixels := p.Pixels
	p.Invalidate()
	return pixels
}
