package resample

import "math"

// axisRatio implements spec §4.10's ratio rule: (s-1)/(d-1) when d>1,
// else 1.0.
func axisRatio(s, d int) float64 {
	if d > 1 {
		return float64(s-1) / float64(d-1)
	}
	return 1.0
}

type tap struct {
	idx int
	w   float64
}

// taps returns the source indices and weights contributing to destination
// coordinate x (already scaled into source space) for the given filter,
// source count, and edge mode.
func taps(f Filter, x float64, ratio float64, count int, edge EdgeMode) []tap {
	switch f {
	case Nearest:
		idx := edge.resolve(int(math.Round(x)), count)
		return []tap{{idx, 1}}
	case Box:
		if ratio < 1 {
			idx := edge.resolve(int(math.Round(x)), count)
			return []tap{{idx, 1}}
		}
		lo := int(math.Floor(x - ratio))
		hi := int(math.Ceil(x + ratio))
		var ts []tap
		var sum float64
		for i := lo; i <= hi; i++ {
			d := float64(i) - x
			w := 1 - math.Abs(d)/ratio
			if w <= 0 {
				continue
			}
			ts = append(ts, tap{edge.resolve(i, count), w})
			sum += w
		}
		return normalize(ts, sum)
	default:
		weight, support := kernel(f)
		lo := int(math.Floor(x - support))
		hi := int(math.Ceil(x + support))
		var ts []tap
		var sum float64
		for i := lo; i <= hi; i++ {
			w := weight(float64(i) - x)
			if w == 0 {
				continue
			}
			ts = append(ts, tap{edge.resolve(i, count), w})
			sum += w
		}
		return normalize(ts, sum)
	}
}

func normalize(ts []tap, sum float64) []tap {
	if sum == 0 {
		return ts
	}
	for i := range ts {
		ts[i].w /= sum
	}
	return ts
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Resize resamples an interleaved RGBA8 buffer (len(src) == srcW*srcH*4)
// to dstW x dstH using the given filter and edge mode. A no-op request
// (dstW==srcW && dstH==srcH) returns an exact copy of src.
func Resize(src []byte, srcW, srcH, dstW, dstH int, filter Filter, edge EdgeMode) []byte {
	if dstW == srcW && dstH == srcH {
		out := make([]byte, len(src))
		copy(out, src)
		return out
	}

	ratioW := axisRatio(srcW, dstW)
	ratioH := axisRatio(srcH, dstH)

	// Horizontal pass: srcW -> dstW, height stays srcH.
	mid := make([]byte, dstW*srcH*4)
	for dx := 0; dx < dstW; dx++ {
		x := float64(dx) * ratioW
		ts := taps(filter, x, ratioW, srcW, edge)
		for y := 0; y < srcH; y++ {
			var r, g, b, a float64
			for _, t := range ts {
				o := (y*srcW + t.idx) * 4
				r += float64(src[o+0]) * t.w
				g += float64(src[o+1]) * t.w
				b += float64(src[o+2]) * t.w
				a += float64(src[o+3]) * t.w
			}
			o := (y*dstW + dx) * 4
			mid[o+0] = clampByte(r)
			mid[o+1] = clampByte(g)
			mid[o+2] = clampByte(b)
			mid[o+3] = clampByte(a)
		}
	}

	// Vertical pass: srcH -> dstH, width stays dstW.
	out := make([]byte, dstW*dstH*4)
	for dy := 0; dy < dstH; dy++ {
		y := float64(dy) * ratioH
		ts := taps(filter, y, ratioH, srcH, edge)
		for x := 0; x < dstW; x++ {
			var r, g, b, a float64
			for _, t := range ts {
				o := (t.idx*dstW + x) * 4
				r += float64(mid[o+0]) * t.w
				g += float64(mid[o+1]) * t.w
				b += float64(mid[o+2]) * t.w
				a += float64(mid[o+3]) * t.w
			}
			o := (dy*dstW + x) * 4
			out[o+0] = clampByte(r)
			out[o+1] = clampByte(g)
			out[o+2] = clampByte(b)
			out[o+3] = clampByte(a)
		}
	}
	return out
}
