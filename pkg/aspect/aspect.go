// Package aspect is the fixed aspect-ratio catalogue: the common on-screen
// and print ratios, ordered largest to smallest, plus Free/User/Invalid.
// Ratios that share a reduced fraction (e.g. Screen16_10 and Screen8_5)
// are distinct enumerants but reduce to the same Screen_ value.
//
// Values are explicit integers rather than iota, matching the source enum's
// value numbering exactly (Free aliases Invalid at 0 without consuming a
// slot; later enumerants number from where the prior block left off).
package aspect

import "fmt"

// Ratio names an aspect ratio from the fixed catalogue.
type Ratio int

const (
	Invalid Ratio = 0
	Free    Ratio = 0

	firstValid  Ratio = 1
	firstScreen Ratio = 1

	Screen3_1   Ratio = 1
	Screen2_1   Ratio = 2
	Screen16_9  Ratio = 3
	Screen5_3   Ratio = 4
	Screen16_10 Ratio = 5
	Screen8_5   Ratio = 6
	Screen3_2   Ratio = 7
	Screen16_11 Ratio = 8
	Screen7_5   Ratio = 9
	Screen4_3   Ratio = 10
	Screen22_17 Ratio = 11
	Screen14_11 Ratio = 12
	Screen5_4   Ratio = 13
	Screen1_1   Ratio = 14
	Screen4_5   Ratio = 15
	Screen11_14 Ratio = 16
	Screen17_22 Ratio = 17
	Screen3_4   Ratio = 18
	Screen5_7   Ratio = 19
	Screen11_16 Ratio = 20
	Screen2_3   Ratio = 21
	Screen5_8   Ratio = 22
	Screen10_16 Ratio = 23
	Screen3_5   Ratio = 24
	Screen9_16  Ratio = 25
	Screen1_2   Ratio = 26
	Screen1_3   Ratio = 27

	lastScreen     Ratio = 27
	numScreenRatio Ratio = 27

	firstPrint Ratio = 28

	Print2x3      Ratio = 28
	Print2x3L     Ratio = 29
	Print3x5      Ratio = 30
	Print3x5L     Ratio = 31
	Print4x4      Ratio = 32
	Print4x6      Ratio = 33
	Print4x6L     Ratio = 34
	Print5x7      Ratio = 35
	Print5x7L     Ratio = 36
	Print5x15     Ratio = 37
	Print5x15L    Ratio = 38
	Print8x8      Ratio = 39
	Print8x10     Ratio = 40
	Print8x10L    Ratio = 41
	Print8x24     Ratio = 42
	Print8x24L    Ratio = 43
	Print8p5x11   Ratio = 44
	Print8p5x11L  Ratio = 45
	Print9x16     Ratio = 46
	Print9x16L    Ratio = 47
	Print11x14    Ratio = 48
	Print11x14L   Ratio = 49
	Print11x16    Ratio = 50
	Print11x16L   Ratio = 51
	Print12x12    Ratio = 52
	Print12x18    Ratio = 53
	Print12x18L   Ratio = 54
	Print12x36    Ratio = 55
	Print12x36L   Ratio = 56
	Print16x20    Ratio = 57
	Print16x20L   Ratio = 58
	Print18x24    Ratio = 59
	Print18x24L   Ratio = 60
	Print20x30    Ratio = 61
	Print20x30L   Ratio = 62
	Print24x36    Ratio = 63
	Print24x36L   Ratio = 64

	lastPrint Ratio = 64
	lastValid Ratio = 64

	numRatios Ratio = 65
	User      Ratio = 65
)

// names mirrors tAspectRatioNames: Free at index 0, then every screen and
// print ratio in enum order, then User last.
var names = [...]string{
	"Free",

	"3 : 1", "2 : 1", "16 : 9", "5 : 3", "16 : 10", "8 : 5", "3 : 2",
	"16 : 11", "7 : 5", "4 : 3", "22 : 17", "14 : 11", "5 : 4",

	"1 : 1",

	"4 : 5", "11 : 14", "17 : 22", "3 : 4", "5 : 7", "11 : 16", "2 : 3",
	"5 : 8", "10 : 16", "3 : 5", "9 : 16", "1 : 2", "1 : 3",

	"Print 2x3", "Print 2x3L",
	"Print 3x5", "Print 3x5L",
	"Print 4x4",
	"Print 4x6", "Print 4x6L",
	"Print 5x7", "Print 5x7L",
	"Print 5x15", "Print 5x15L",
	"Print 8x8",
	"Print 8x10", "Print 8x10L",
	"Print 8x24", "Print 8x24L",
	"Print 8.5x11", "Print 8.5x11L",
	"Print 9x16", "Print 9x16L",
	"Print 11x14", "Print 11x14L",
	"Print 11x16", "Print 11x16L",
	"Print 12x12",
	"Print 12x18", "Print 12x18L",
	"Print 12x36", "Print 12x36L",
	"Print 16x20", "Print 16x20L",
	"Print 18x24", "Print 18x24L",
	"Print 20x30", "Print 20x30L",
	"Print 24x36", "Print 24x36L",

	"User",
}

// Name returns r's catalogue name, e.g. "16 : 9" or "Print 8.5x11L".
func Name(r Ratio) string {
	switch {
	case r == Free:
		return names[0]
	case r == User:
		return names[len(names)-1]
	case r >= firstValid && r <= lastValid:
		return names[int(r)]
	default:
		return fmt.Sprintf("Ratio(%d)", int(r))
	}
}

// IsScreenRatio reports whether r is one of the on-screen ratios.
func IsScreenRatio(r Ratio) bool {
	return r >= firstScreen && r <= lastScreen
}

// IsPrintRatio reports whether r is one of the print sizes.
func IsPrintRatio(r Ratio) bool {
	return r >= firstPrint && r <= lastPrint
}

// IsValid reports whether r is a real catalogue entry, excluding
// Invalid/Free and User.
func IsValid(r Ratio) bool {
	return r >= firstValid && r <= lastValid
}
