package aspect

// reducedScreen maps a screen or print ratio to its most-reduced Screen_
// enumerant. Ratios already in lowest terms, Invalid, Free, and User are
// absent and fall through to the identity default.
var reducedScreen = map[Ratio]Ratio{
	Screen16_10: Screen8_5,
	Screen10_16: Screen5_8,

	Print2x3:     Screen2_3,
	Print2x3L:    Screen3_2,
	Print3x5:     Screen3_5,
	Print3x5L:    Screen5_3,
	Print4x4:     Screen1_1,
	Print4x6:     Screen2_3,
	Print4x6L:    Screen3_2,
	Print5x7:     Screen5_7,
	Print5x7L:    Screen7_5,
	Print5x15:    Screen1_3,
	Print5x15L:   Screen3_1,
	Print8x8:     Screen1_1,
	Print8x10:    Screen4_5,
	Print8x10L:   Screen5_4,
	Print8x24:    Screen1_3,
	Print8x24L:   Screen3_1,
	Print8p5x11:  Screen17_22,
	Print8p5x11L: Screen22_17,
	Print9x16:    Screen9_16,
	Print9x16L:   Screen16_9,
	Print11x14:   Screen11_14,
	Print11x14L:  Screen14_11,
	Print11x16:   Screen11_16,
	Print11x16L:  Screen16_11,
	Print12x12:   Screen1_1,
	Print12x18:   Screen2_3,
	Print12x18L:  Screen3_2,
	Print12x36:   Screen1_3,
	Print12x36L:  Screen3_1,
	Print16x20:   Screen4_5,
	Print16x20L:  Screen5_4,
	Print18x24:   Screen3_4,
	Print18x24L:  Screen4_3,
	Print20x30:   Screen2_3,
	Print20x30L:  Screen3_2,
	Print24x36:   Screen2_3,
	Print24x36L:  Screen3_2,
}

// Reduce returns r's most-reduced Screen_ enumerant. Invalid and User pass
// through unchanged, as do screen ratios already in lowest terms.
func Reduce(r Ratio) Ratio {
	if reduced, ok := reducedScreen[r]; ok {
		return reduced
	}
	return r
}

// fraction is a numerator/denominator pair in lowest terms.
type fraction struct{ Num, Den int }

// screenFractions is tAspectRatioTable: keyed by Screen_ ratio, so
// screenFractions[Screen3_1] is 3:1. The two "Unused" rows in the
// source (16:10 and 10:16, which never appear here because Reduce already
// maps them away) are omitted since nothing indexes them directly.
var screenFractions = map[Ratio]fraction{
	Screen3_1:   {3, 1},
	Screen2_1:   {2, 1},
	Screen16_9:  {16, 9},
	Screen5_3:   {5, 3},
	Screen8_5:   {8, 5},
	Screen3_2:   {3, 2},
	Screen16_11: {16, 11},
	Screen7_5:   {7, 5},
	Screen4_3:   {4, 3},
	Screen22_17: {22, 17},
	Screen14_11: {14, 11},
	Screen5_4:   {5, 4},
	Screen1_1:   {1, 1},
	Screen4_5:   {4, 5},
	Screen11_14: {11, 14},
	Screen17_22: {17, 22},
	Screen3_4:   {3, 4},
	Screen5_7:   {5, 7},
	Screen11_16: {11, 16},
	Screen2_3:   {2, 3},
	Screen5_8:   {5, 8},
	Screen3_5:   {3, 5},
	Screen9_16:  {9, 16},
	Screen1_2:   {1, 2},
	Screen1_3:   {1, 3},
}

// AsFraction returns r's reduced numerator/denominator (16:10 -> 8:5). It
// returns ok=false for Invalid/Free/User, matching tGetAspectRatioFrac.
func AsFraction(r Ratio) (num, den int, ok bool) {
	if r == Invalid || r == User {
		return 0, 0, false
	}
	frac, found := screenFractions[Reduce(r)]
	if !found {
		return 0, 0, false
	}
	return frac.Num, frac.Den, true
}

// AsFloat returns r as a width/height ratio. It returns 0 for Invalid/Free
// and -1 for User, matching tGetAspectRatioFloat.
func AsFloat(r Ratio) float64 {
	switch r {
	case Invalid:
		return 0
	case User:
		return -1
	}
	num, den, ok := AsFraction(r)
	if !ok {
		return 0
	}
	return float64(num) / float64(den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// FromFraction returns the catalogue ratio matching numerator:denominator
// once reduced, e.g. FromFraction(32, 20) returns Screen8_5 rather than
// Screen16_10. It returns Invalid if either argument is <= 0, and User if
// the reduced fraction has no catalogue entry. It never returns a Print_
// enumerant, matching tGetAspectRatio.
func FromFraction(numerator, denominator int) Ratio {
	if numerator <= 0 || denominator <= 0 {
		return Invalid
	}
	g := gcd(numerator, denominator)
	numerator /= g
	denominator /= g

	for r := firstScreen; r <= lastScreen; r++ {
		frac, ok := screenFractions[r]
		if !ok {
			continue
		}
		if frac.Num == numerator && frac.Den == denominator {
			return r
		}
	}
	return User
}
