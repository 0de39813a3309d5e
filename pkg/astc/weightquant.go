package astc

// Weight unquantization and unscramble tables, one row per weight-eligible
// quant level (quant2..quant32 — ASTC never uses a weight quant level above
// quant32).
//
// weightQuantLevels maps a quantMethod to a 0..11 row index into the
// tables below, or -1 if that quant level is never legal for weights.
var weightQuantLevels = [...]int{
	int(quant2):   0,
	int(quant3):   1,
	int(quant4):   2,
	int(quant5):   3,
	int(quant6):   4,
	int(quant8):   5,
	int(quant10):  6,
	int(quant12):  7,
	int(quant16):  8,
	int(quant20):  9,
	int(quant24):  10,
	int(quant32):  11,
	int(quant40):  -1,
	int(quant48):  -1,
	int(quant64):  -1,
	int(quant80):  -1,
	int(quant96):  -1,
	int(quant128): -1,
	int(quant160): -1,
	int(quant192): -1,
	int(quant256): -1,
}

var weightQuantToUnquant = [12][32]uint8{
	{0, 64},
	{0, 32, 64},
	{0, 21, 43, 64},
	{0, 16, 32, 48, 64},
	{0, 64, 12, 52, 25, 39},
	{0, 9, 18, 27, 37, 46, 55, 64},
	{0, 64, 7, 57, 14, 50, 21, 43, 28, 36},
	{0, 64, 17, 47, 5, 59, 23, 41, 11, 53, 28, 36},
	{0, 4, 8, 12, 17, 21, 25, 29, 35, 39, 43, 47, 52, 56, 60, 64},
	{0, 64, 16, 48, 3, 61, 19, 45, 6, 58, 23, 41, 9, 55, 26, 38, 13, 51, 29, 35},
	{0, 64, 21, 43, 11, 53, 32, 5, 59, 27, 37, 16, 48, 2, 62, 23, 41, 13, 51, 29, 35, 8, 56, 18, 46},
	{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 33, 35, 37, 39, 41, 43, 45, 47, 49, 51, 53, 55, 57, 59, 61, 64},
}

var weightScrambleMap = [12][32]uint8{
	{0, 1},
	{0, 1, 2},
	{0, 1, 2, 3},
	{0, 1, 2, 3, 4},
	{0, 2, 4, 5, 3, 1},
	{0, 1, 2, 3, 4, 5, 6, 7},
	{0, 2, 4, 6, 8, 9, 7, 5, 3, 1},
	{0, 4, 8, 6, 2, 10, 11, 7, 3, 9, 5, 1},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{0, 4, 8, 12, 16, 2, 6, 10, 14, 18, 1, 5, 9, 13, 17, 3, 7, 11, 15, 19},
	{0, 8, 16, 3, 19, 11, 23, 14, 6, 22, 1, 9, 17, 24, 12, 4, 20, 2, 10, 18, 5, 21, 13, 7, 15},
	{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31},
}

// weightUnscrambleAndUnquantMap[row][combined] gives the final 0..64 weight
// value for combined index value in 0..quantLevels-1 of that row, folding
// the ISE-bit-reversal scramble and the unquant step into one lookup.
var weightUnscrambleAndUnquantMap [12][32]uint8

func init() {
	for row := 0; row < 12; row++ {
		for i, scrambled := range weightScrambleMap[row] {
			weightUnscrambleAndUnquantMap[row][scrambled] = weightQuantToUnquant[row][i]
		}
	}
}

// weightRowForQuant returns the weightQuantToUnquant/weightScrambleMap row
// for q, or -1 if q is not a legal weight quant level.
func weightRowForQuant(q quantMethod) int {
	if int(q) < 0 || int(q) >= len(weightQuantLevels) {
		return -1
	}
	return weightQuantLevels[q]
}
