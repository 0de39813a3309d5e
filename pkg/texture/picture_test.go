package texture

import (
	"bytes"
	"testing"

	"github.com/goopsie/texcore/pkg/pixfmt"
)

func gradientPixels(w, h int) []RGBA8 {
	px := make([]RGBA8, w*h)
	for i := range px {
		px[i] = RGBA8{R: uint8(i), G: uint8(i * 3), B: uint8(255 - i), A: 255}
	}
	return px
}

func TestPictureStealRoundTrip(t *testing.T) {
	src := gradientPixels(4, 4)
	var p Picture
	if err := p.SetBuffer(4, 4, src, pixfmt.R8G8B8A8); err != nil {
		t.Fatalf("set: %v", err)
	}
	stolen := p.Steal()
	if p.Valid() {
		t.Fatal("picture still valid after Steal")
	}
	if err := p.SetBufferSteal(4, 4, stolen, pixfmt.R8G8B8A8); err != nil {
		t.Fatalf("re-set: %v", err)
	}
	for i := range src {
		if p.Pixels[i] != src[i] {
			t.Fatalf("pixel %d = %+v, want %+v", i, p.Pixels[i], src[i])
		}
	}
}

func TestSetFrameStealInvalidatesFrame(t *testing.T) {
	var f Frame
	if err := f.Set(3, 2, gradientPixels(3, 2), pixfmt.R8G8B8, 0.5); err != nil {
		t.Fatalf("frame set: %v", err)
	}
	var p Picture
	if err := p.SetFrame(&f, true); err != nil {
		t.Fatalf("picture set: %v", err)
	}
	if f.Valid() {
		t.Fatal("frame still valid after steal")
	}
	if p.Width != 3 || p.Height != 2 {
		t.Fatalf("picture is %dx%d, want 3x2", p.Width, p.Height)
	}
}

func TestSetFromStealInvalidatesSource(t *testing.T) {
	var src Picture
	if err := src.SetBuffer(2, 2, gradientPixels(2, 2), pixfmt.B8G8R8A8); err != nil {
		t.Fatalf("set: %v", err)
	}
	var dst Picture
	if err := dst.SetFrom(&src, true); err != nil {
		t.Fatalf("set from: %v", err)
	}
	if src.Valid() {
		t.Fatal("source still valid after steal")
	}
	if dst.SrcFormat != pixfmt.B8G8R8A8 {
		t.Fatalf("src format = %v, want B8G8R8A8", dst.SrcFormat)
	}
}

func TestScaleHalfBoundaries(t *testing.T) {
	cases := []struct {
		w, h         int
		ok           bool
		wantW, wantH int
	}{
		{1, 1, true, 1, 1},
		{11, 1, false, 11, 1},
		{10, 1, true, 5, 1},
		{1, 10, true, 1, 5},
		{4, 4, true, 2, 2},
		{5, 4, false, 5, 4},
	}
	for _, tc := range cases {
		var p Picture
		if err := p.SetBuffer(tc.w, tc.h, gradientPixels(tc.w, tc.h), pixfmt.R8G8B8A8); err != nil {
			t.Fatalf("set %dx%d: %v", tc.w, tc.h, err)
		}
		if got := p.ScaleHalf(); got != tc.ok {
			t.Errorf("%dx%d: ScaleHalf = %v, want %v", tc.w, tc.h, got, tc.ok)
		}
		if p.Width != tc.wantW || p.Height != tc.wantH {
			t.Errorf("%dx%d: result %dx%d, want %dx%d", tc.w, tc.h, p.Width, p.Height, tc.wantW, tc.wantH)
		}
	}
}

func TestScaleHalfTwiceIsDeterministic(t *testing.T) {
	px := gradientPixels(8, 8)
	var a, b Picture
	if err := a.SetBuffer(8, 8, px, pixfmt.R8G8B8A8); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := b.SetBuffer(8, 8, px, pixfmt.R8G8B8A8); err != nil {
		t.Fatalf("set: %v", err)
	}
	a.ScaleHalf()
	a.ScaleHalf()
	b.ScaleHalf()
	b.ScaleHalf()
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("pixel %d differs between identical half-scale sequences", i)
		}
	}
	if a.Width != 2 || a.Height != 2 {
		t.Fatalf("result %dx%d, want 2x2", a.Width, a.Height)
	}
}

func TestCropToZeroInvalidates(t *testing.T) {
	var p Picture
	if err := p.SetBuffer(4, 4, gradientPixels(4, 4), pixfmt.R8G8B8A8); err != nil {
		t.Fatalf("set: %v", err)
	}
	p.Crop(0, 0, MiddleCenter, RGBA8{})
	if p.Valid() {
		t.Fatal("picture still valid after 0x0 crop")
	}
}

func TestCropExpandFills(t *testing.T) {
	fill := RGBA8{R: 9, G: 8, B: 7, A: 255}
	var p Picture
	if err := p.SetSize(2, 2, RGBA8{R: 1, G: 1, B: 1, A: 255}); err != nil {
		t.Fatalf("set: %v", err)
	}
	p.Crop(4, 4, BottomLeft, fill)
	if p.Width != 4 || p.Height != 4 {
		t.Fatalf("result %dx%d, want 4x4", p.Width, p.Height)
	}
	if got := p.At(0, 0); got != (RGBA8{R: 1, G: 1, B: 1, A: 255}) {
		t.Errorf("anchored pixel = %+v, want original", got)
	}
	if got := p.At(3, 3); got != fill {
		t.Errorf("out-of-source pixel = %+v, want fill", got)
	}
}

func TestCropAutoTrimAllMatchingLeavesUnchanged(t *testing.T) {
	var p Picture
	if err := p.SetSize(3, 3, RGBA8{A: 255}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if p.CropAutoTrim(RGBA8{A: 255}, ChannelRGBA) {
		t.Fatal("expected false when trim would consume the whole image")
	}
	if p.Width != 3 || p.Height != 3 {
		t.Fatalf("image changed to %dx%d", p.Width, p.Height)
	}
}

func TestCropAutoTrimBorder(t *testing.T) {
	border := RGBA8{A: 255}
	var p Picture
	if err := p.SetSize(4, 4, border); err != nil {
		t.Fatalf("set: %v", err)
	}
	inner := RGBA8{R: 200, A: 255}
	p.SetPixel(1, 1, inner)
	p.SetPixel(2, 2, inner)
	if !p.CropAutoTrim(border, ChannelRGBA) {
		t.Fatal("expected trim to succeed")
	}
	if p.Width != 2 || p.Height != 2 {
		t.Fatalf("result %dx%d, want 2x2", p.Width, p.Height)
	}
	if p.At(0, 0) != inner || p.At(1, 1) != inner {
		t.Fatal("trimmed image lost the inner content")
	}
}

func TestFlipTwiceIsIdentity(t *testing.T) {
	for _, horizontal := range []bool{false, true} {
		src := gradientPixels(5, 3)
		var p Picture
		if err := p.SetBuffer(5, 3, src, pixfmt.R8G8B8A8); err != nil {
			t.Fatalf("set: %v", err)
		}
		p.Flip(horizontal)
		p.Flip(horizontal)
		for i := range src {
			if p.Pixels[i] != src[i] {
				t.Fatalf("horizontal=%v: pixel %d changed after double flip", horizontal, i)
			}
		}
	}
}

func TestRotate90FourTimesIsIdentity(t *testing.T) {
	src := gradientPixels(4, 3)
	var p Picture
	if err := p.SetBuffer(4, 3, src, pixfmt.R8G8B8A8); err != nil {
		t.Fatalf("set: %v", err)
	}
	for i := 0; i < 4; i++ {
		p.Rotate90(false)
	}
	if p.Width != 4 || p.Height != 3 {
		t.Fatalf("dimensions %dx%d after four rotations, want 4x3", p.Width, p.Height)
	}
	for i := range src {
		if p.Pixels[i] != src[i] {
			t.Fatalf("pixel %d changed after four rotations", i)
		}
	}
}

func TestRotate90Anticlockwise(t *testing.T) {
	var p Picture
	if err := p.SetSize(2, 1, RGBA8{}); err != nil {
		t.Fatalf("set: %v", err)
	}
	marked := RGBA8{R: 255, A: 255}
	p.SetPixel(1, 0, marked)
	p.Rotate90(true)
	if p.Width != 1 || p.Height != 2 {
		t.Fatalf("dimensions %dx%d, want 1x2", p.Width, p.Height)
	}
	// (1, 0) -> (0, W-1-1) = (0, 0) under anticlockwise rotation.
	if p.At(0, 0) != marked {
		t.Fatalf("marked pixel at %+v / %+v, want it at (0,0)", p.At(0, 0), p.At(0, 1))
	}
}

func TestGenerateLayersDownToOne(t *testing.T) {
	var p Picture
	if err := p.SetBuffer(12, 5, gradientPixels(12, 5), pixfmt.R8G8B8A8); err != nil {
		t.Fatalf("set: %v", err)
	}
	for _, chain := range []bool{true, false} {
		levels, err := p.GenerateLayers(Box, Clamp, chain)
		if err != nil {
			t.Fatalf("chain=%v: %v", chain, err)
		}
		// 12x5 -> 6x2 -> 3x1 -> 1x1.
		wantDims := [][2]int{{6, 2}, {3, 1}, {1, 1}}
		if len(levels) != len(wantDims) {
			t.Fatalf("chain=%v: %d levels, want %d", chain, len(levels), len(wantDims))
		}
		for i, l := range levels {
			if l.Width != wantDims[i][0] || l.Height != wantDims[i][1] {
				t.Errorf("chain=%v level %d: %dx%d, want %dx%d", chain, i, l.Width, l.Height, wantDims[i][0], wantDims[i][1])
			}
		}
	}
}

func TestAdjustBrightnessFromOriginalEachTime(t *testing.T) {
	var p Picture
	if err := p.SetSize(2, 2, RGBA8{R: 100, G: 100, B: 100, A: 255}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := p.BeginAdjust(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := p.AdjustBrightness(2.0); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	// A second adjust is relative to the snapshot, not the doubled pixels.
	if err := p.AdjustBrightness(1.5); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if got := p.At(0, 0).R; got != 150 {
		t.Fatalf("R = %d, want 150 (1.5x the original, not 1.5x the doubled value)", got)
	}
	p.EndAdjust(false)
	if got := p.At(0, 0).R; got != 100 {
		t.Fatalf("R = %d after discard, want the original 100", got)
	}
}

func TestAlphaBlendColourResetAlpha(t *testing.T) {
	var p Picture
	if err := p.SetSize(1, 1, RGBA8{R: 255, A: 0}); err != nil {
		t.Fatalf("set: %v", err)
	}
	p.AlphaBlendColour(RGBA8{G: 255}, true)
	got := p.At(0, 0)
	if got.R != 0 || got.G != 255 || got.A != 255 {
		t.Fatalf("pixel = %+v, want fully blended to the background with alpha reset", got)
	}
}

func TestLayerSetStealAndEquality(t *testing.T) {
	data := make([]byte, pixfmt.DataSize(pixfmt.BC1DXT1, 8, 8))
	for i := range data {
		data[i] = byte(i)
	}
	var a, b Layer
	if err := a.Set(pixfmt.BC1DXT1, 8, 8, data, false); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := b.Set(pixfmt.BC1DXT1, 8, 8, data, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !a.Equal(&b) {
		t.Fatal("copied and stolen layers with identical bytes should be equal")
	}
	if a.DataSize() != len(data) {
		t.Fatalf("DataSize = %d, want %d", a.DataSize(), len(data))
	}
	stolen := b.Steal()
	if b.Valid() {
		t.Fatal("layer still valid after Steal")
	}
	if a.Equal(&b) || b.Equal(&b) {
		t.Fatal("invalid layer must not equal anything")
	}
	if !bytes.Equal(stolen, data) {
		t.Fatal("stolen bytes differ from the originals")
	}
}

func TestLayerSetRejectsWrongSize(t *testing.T) {
	var l Layer
	if err := l.Set(pixfmt.BC1DXT1, 8, 8, make([]byte, 7), false); err == nil {
		t.Fatal("expected size mismatch error")
	}
}

func TestFrameReverseRowsInvolution(t *testing.T) {
	var f Frame
	if err := f.Set(3, 4, gradientPixels(3, 4), pixfmt.R8G8B8A8, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	want := append([]RGBA8(nil), f.Pixels...)
	f.ReverseRows()
	if f.Pixels[0] == want[0] && f.Height > 1 {
		t.Fatal("ReverseRows left the first row in place")
	}
	f.ReverseRows()
	for i := range want {
		if f.Pixels[i] != want[i] {
			t.Fatalf("pixel %d changed after double reversal", i)
		}
	}
}

func TestFrameIsOpaque(t *testing.T) {
	var f Frame
	if err := f.Set(2, 1, []RGBA8{{A: 255}, {A: 255}}, pixfmt.R8G8B8A8, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !f.IsOpaque() {
		t.Fatal("all-255 alpha frame should be opaque")
	}
	f.Pixels[1].A = 3
	if f.IsOpaque() {
		t.Fatal("frame with translucent pixel should not be opaque")
	}
}
