package astc

import "sync"

// decimationEntry holds the bilinear blend of up to 4 weight-grid nodes
// that contribute to one texel when the weight grid is coarser than the
// block footprint (ASTC "decimation").
type decimationEntry struct {
	idx [4]int
	w   [4]uint32 // blend weights, sum to 4096
}

type decimationKey struct {
	blockW, blockH, weightsX, weightsY int
}

var decimationCacheMu sync.RWMutex
var decimationCache = map[decimationKey][]decimationEntry{}

// getDecimationTable returns, for every texel in a blockW x blockH block,
// the bilinear blend of weight grid nodes (weightsX x weightsY) that
// contribute to it, per the format's infill interpolation rule. Only the
// 2D derivation is implemented; 3D blocks are for volume textures, which
// texcore does not load.
func getDecimationTable(blockW, blockH, weightsX, weightsY int) []decimationEntry {
	key := decimationKey{blockW, blockH, weightsX, weightsY}

	decimationCacheMu.RLock()
	t, ok := decimationCache[key]
	decimationCacheMu.RUnlock()
	if ok {
		return t
	}

	decimationCacheMu.Lock()
	defer decimationCacheMu.Unlock()
	if t, ok := decimationCache[key]; ok {
		return t
	}

	if weightsX == blockW && weightsY == blockH {
		t = make([]decimationEntry, blockW*blockH)
		for y := 0; y < blockH; y++ {
			for x := 0; x < blockW; x++ {
				e := &t[y*blockW+x]
				e.idx[0] = y*weightsX + x
				e.w[0] = 4096
			}
		}
		decimationCache[key] = t
		return t
	}

	xScale := (1024 + blockW/2) / max1(blockW-1)
	yScale := (1024 + blockH/2) / max1(blockH-1)

	t = make([]decimationEntry, blockW*blockH)
	for y := 0; y < blockH; y++ {
		// Texel coordinate scaled into the weight grid with 4 fraction
		// bits, per the format's decimation rule.
		fy := (yScale*y*(weightsY-1) + 32) >> 6
		gy := fy >> 4
		yFrac := fy & 0xF
		if gy >= weightsY-1 {
			gy = weightsY - 2
			yFrac = 16
		}
		if weightsY == 1 {
			gy, yFrac = 0, 0
		}

		for x := 0; x < blockW; x++ {
			fx := (xScale*x*(weightsX-1) + 32) >> 6
			gx := fx >> 4
			xFrac := fx & 0xF
			if gx >= weightsX-1 {
				gx = weightsX - 2
				xFrac = 16
			}
			if weightsX == 1 {
				gx, xFrac = 0, 0
			}

			q00 := gy*weightsX + gx
			q01 := q00
			q10 := q00
			q11 := q00
			if weightsX > 1 {
				q01 = gy*weightsX + gx + 1
			}
			if weightsY > 1 {
				q10 = (gy+1)*weightsX + gx
				if weightsX > 1 {
					q11 = (gy+1)*weightsX + gx + 1
				} else {
					q11 = q10
				}
			}

			// 4-bit bilinear factors summing to 16, scaled by 256 to
			// keep the table's 4096 fixed-point denominator.
			w11 := (xFrac*yFrac + 8) >> 4
			w10 := yFrac - w11
			w01 := xFrac - w11
			w00 := 16 - xFrac - yFrac + w11

			e := &t[y*blockW+x]
			e.idx = [4]int{q00, q01, q10, q11}
			e.w = [4]uint32{uint32(w00) * 256, uint32(w01) * 256, uint32(w10) * 256, uint32(w11) * 256}
		}
	}

	decimationCache[key] = t
	return t
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
