package texture

import (
	"fmt"

	"github.com/goopsie/texcore/pkg/pixfmt"
)

// Frame is a single decoded RGBA8 image together with the animation
// duration and source-format tag external loaders (PNG/GIF/WebP/APNG/...)
// attach to it. Frames link in order to represent multi-page or animated
// images; Next is nil for the last frame in a sequence.
type Frame struct {
	Width      int
	Height     int
	Pixels     []RGBA8
	DurationS  float32
	SrcFormat  pixfmt.Format
	Next       *Frame
}

// Valid reports whether f holds usable pixel data.
func (f *Frame) Valid() bool {
	return f != nil && f.Width > 0 && f.Height > 0 && len(f.Pixels) == f.Width*f.Height
}

// Set copies pixels into f. len(pixels) must equal width*height.
func (f *Frame) Set(width, height int, pixels []RGBA8, srcFormat pixfmt.Format, durationS float32) error {
	if len(pixels) != width*height {
		return fmt.Errorf("frame pixel count %d does not match %dx%d", len(pixels), width, height)
	}
	f.Width = width
	f.Height = height
	f.Pixels = append([]RGBA8(nil), pixels...)
	f.SrcFormat = srcFormat
	f.DurationS = durationS
	return nil
}

// StealSet installs pixels into f by taking ownership directly (no copy).
func (f *Frame) StealSet(width, height int, pixels []RGBA8, srcFormat pixfmt.Format, durationS float32) error {
	if len(pixels) != width*height {
		return fmt.Errorf("frame pixel count %d does not match %dx%d", len(pixels), width, height)
	}
	f.Width = width
	f.Height = height
	f.Pixels = pixels
	f.SrcFormat = srcFormat
	f.DurationS = durationS
	return nil
}

// Steal returns f's pixels and invalidates f.
func (f *Frame) Steal() []RGBA8 {
	p := f.Pixels
	f.Width = 0
	f.Height = 0
	f.Pixels = nil
	f.SrcFormat = pixfmt.Invalid
	return p
}

// ReverseRows flips f's pixel rows in place (bottom-to-top becomes
// top-to-bottom and vice versa). Always succeeds: RGBA8 row reversal
// never fails.
func (f *Frame) ReverseRows() {
	if !f.Valid() {
		return
	}
	row := make([]RGBA8, f.Width)
	for y := 0; y < f.Height/2; y++ {
		top := f.Pixels[y*f.Width : (y+1)*f.Width]
		bot := f.Pixels[(f.Height-1-y)*f.Width : (f.Height-y)*f.Width]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}

// IsOpaque reports whether every pixel in f has alpha == 255.
func (f *Frame) IsOpaque() bool {
	for _, p := range f.Pixels {
		if p.A != 255 {
			return false
		}
	}
	return true
}
