package pixfmt

import "testing"

func TestNameRoundTrip(t *testing.T) {
	for f := Invalid + 1; f < numFormats; f++ {
		name := Name(f)
		if name == "Invalid" {
			t.Fatalf("format %d has no registered name", f)
		}
		if got := FromName(name); got != f {
			t.Errorf("FromName(%q) = %d, want %d", name, got, f)
		}
	}
}

func TestBlockDimensionsNeverZeroForValidFormat(t *testing.T) {
	for f := Invalid + 1; f < numFormats; f++ {
		if BlockW(f) < 1 || BlockH(f) < 1 {
			t.Errorf("format %d (%s): block dims must be >=1, got %dx%d", f, Name(f), BlockW(f), BlockH(f))
		}
	}
}

func TestInvalidFormatReturnsZeroBlockDims(t *testing.T) {
	if BlockW(Invalid) != 0 || BlockH(Invalid) != 0 {
		t.Errorf("Invalid format must report 0 block dims")
	}
}

func TestDataSizeInvariant(t *testing.T) {
	cases := []struct {
		w, h int
	}{{1, 1}, {3, 3}, {4, 4}, {5, 9}, {32768, 1}, {13, 130}}
	for f := Invalid + 1; f < numFormats; f++ {
		bw, bh := BlockW(f), BlockH(f)
		for _, c := range cases {
			nbw := NumBlocks(bw, c.w)
			nbh := NumBlocks(bh, c.h)
			want := BytesPerBlock(f) * nbw * nbh
			got := DataSize(f, c.w, c.h)
			if got != want {
				t.Errorf("format %s %dx%d: DataSize=%d want %d", Name(f), c.w, c.h, got, want)
			}
		}
	}
}

func TestBitsPerPixelNonIntegralASTC(t *testing.T) {
	// ASTC8X5 packs 16 bytes (128 bits) over 40 texels: not integral.
	if bpp := BitsPerPixel(ASTC8X5); bpp != 0 {
		t.Errorf("BitsPerPixel(ASTC8X5) = %d, want 0 (non-integral)", bpp)
	}
	if f := BitsPerPixelFloat(ASTC8X5); f <= 0 {
		t.Errorf("BitsPerPixelFloat(ASTC8X5) = %v, want >0", f)
	}
}

func TestBitsPerPixelIntegralBC1(t *testing.T) {
	// BC1 packs 8 bytes (64 bits) over 16 texels: 4 bits/pixel.
	if bpp := BitsPerPixel(BC1DXT1); bpp != 4 {
		t.Errorf("BitsPerPixel(BC1DXT1) = %d, want 4", bpp)
	}
}

func TestIntegralInvariant(t *testing.T) {
	// For every format, either BytesPerBlock is integral (trivially true,
	// it's an int) or BitsPerPixel is integral; one is always derivable
	// from the other via BitsPerPixelFloat.
	for f := Invalid + 1; f < numFormats; f++ {
		bpb := BytesPerBlock(f)
		bppf := BitsPerPixelFloat(f)
		if bpb == 0 && bppf == 0 {
			t.Errorf("format %s: both BytesPerBlock and BitsPerPixelFloat are zero", Name(f))
		}
	}
}

func TestClassificationRangesDisjoint(t *testing.T) {
	classify := func(f Format) []string {
		var got []string
		if IsPacked(f) {
			got = append(got, "packed")
		}
		if IsBC(f) {
			got = append(got, "bc")
		}
		if IsETC(f) {
			got = append(got, "etc")
		}
		if IsEAC(f) {
			got = append(got, "eac")
		}
		if IsPVR(f) {
			got = append(got, "pvr")
		}
		if IsASTC(f) {
			got = append(got, "astc")
		}
		if IsVendor(f) {
			got = append(got, "vendor")
		}
		if IsPalette(f) {
			got = append(got, "palette")
		}
		return got
	}
	for f := Invalid + 1; f < numFormats; f++ {
		if n := len(classify(f)); n != 1 {
			t.Errorf("format %s belongs to %d families, want exactly 1: %v", Name(f), n, classify(f))
		}
	}
}
