package resample

import "testing"

func checkerboard(w, h int) []byte {
	buf := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			o := (y*w + x) * 4
			buf[o+0], buf[o+1], buf[o+2], buf[o+3] = v, v, v, 255
		}
	}
	return buf
}

func TestResizeIdentity(t *testing.T) {
	src := checkerboard(5, 7)
	for _, f := range []Filter{Nearest, Box, Bilinear, BicubicStandard, BicubicCatmullRom, BicubicMitchell, BicubicCardinal, BicubicBSpline, LanczosNarrow, LanczosNormal, LanczosWide} {
		out := Resize(src, 5, 7, 5, 7, f, Clamp)
		if len(out) != len(src) {
			t.Fatalf("filter %d: len mismatch", f)
		}
		for i := range src {
			if out[i] != src[i] {
				t.Errorf("filter %d: byte %d differs: got %d want %d", f, i, out[i], src[i])
			}
		}
	}
}

func TestResizeUpDownRoundTripLowError(t *testing.T) {
	src := checkerboard(4, 4)
	up := Resize(src, 4, 4, 8, 8, LanczosNormal, Clamp)
	down := Resize(up, 8, 8, 4, 4, LanczosNormal, Clamp)
	var sumSq float64
	for i := range src {
		d := float64(down[i]) - float64(src[i])
		sumSq += d * d
	}
	mse := sumSq / float64(len(src))
	if mse >= 8 {
		t.Errorf("round-trip MSE = %v, want < 8", mse)
	}
}

func TestResizeWrapEdgeMode(t *testing.T) {
	src := checkerboard(4, 4)
	out := Resize(src, 4, 4, 8, 8, Bilinear, Wrap)
	if len(out) != 8*8*4 {
		t.Fatalf("unexpected output length %d", len(out))
	}
}
