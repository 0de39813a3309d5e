package astc

// quantMethod is an ASTC integer-sequence quantization mode. Numeric
// values are specified by the ASTC format and must not be reordered.
type quantMethod uint8

const (
	quant2   quantMethod = 0
	quant3   quantMethod = 1
	quant4   quantMethod = 2
	quant5   quantMethod = 3
	quant6   quantMethod = 4
	quant8   quantMethod = 5
	quant10  quantMethod = 6
	quant12  quantMethod = 7
	quant16  quantMethod = 8
	quant20  quantMethod = 9
	quant24  quantMethod = 10
	quant32  quantMethod = 11
	quant40  quantMethod = 12
	quant48  quantMethod = 13
	quant64  quantMethod = 14
	quant80  quantMethod = 15
	quant96  quantMethod = 16
	quant128 quantMethod = 17
	quant160 quantMethod = 18
	quant192 quantMethod = 19
	quant256 quantMethod = 20
)

// btqCount describes the element packing for an integer sequence
// quantization mode: a number of raw bits, plus an optional shared trit
// or quint digit.
type btqCount struct {
	bits   uint8
	trits  bool
	quints bool
}

var btqCounts = [...]btqCount{
	{bits: 1},               // quant2
	{bits: 0, trits: true},  // quant3
	{bits: 2},               // quant4
	{bits: 0, quints: true}, // quant5
	{bits: 1, trits: true},  // quant6
	{bits: 3},               // quant8
	{bits: 1, quints: true}, // quant10
	{bits: 2, trits: true},  // quant12
	{bits: 4},               // quant16
	{bits: 2, quints: true}, // quant20
	{bits: 3, trits: true},  // quant24
	{bits: 5},               // quant32
	{bits: 3, quints: true}, // quant40
	{bits: 4, trits: true},  // quant48
	{bits: 6},               // quant64
	{bits: 4, quints: true}, // quant80
	{bits: 5, trits: true},  // quant96
	{bits: 7},               // quant128
	{bits: 5, quints: true}, // quant160
	{bits: 6, trits: true},  // quant192
	{bits: 8},               // quant256
}

// quantLevels returns the number of distinct unquantized levels for q.
func quantLevels(q quantMethod) int {
	switch q {
	case quant2:
		return 2
	case quant3:
		return 3
	case quant4:
		return 4
	case quant5:
		return 5
	case quant6:
		return 6
	case quant8:
		return 8
	case quant10:
		return 10
	case quant12:
		return 12
	case quant16:
		return 16
	case quant20:
		return 20
	case quant24:
		return 24
	case quant32:
		return 32
	case quant40:
		return 40
	case quant48:
		return 48
	case quant64:
		return 64
	case quant80:
		return 80
	case quant96:
		return 96
	case quant128:
		return 128
	case quant160:
		return 160
	case quant192:
		return 192
	case quant256:
		return 256
	default:
		return 0
	}
}

type iseSize struct {
	scale   uint8
	divisor uint8 // encoded as ((divisor<<1)+1)
}

var iseSizes = [...]iseSize{
	{scale: 1, divisor: 0},  // quant2
	{scale: 8, divisor: 2},  // quant3
	{scale: 2, divisor: 0},  // quant4
	{scale: 7, divisor: 1},  // quant5
	{scale: 13, divisor: 2}, // quant6
	{scale: 3, divisor: 0},  // quant8
	{scale: 10, divisor: 1}, // quant10
	{scale: 18, divisor: 2}, // quant12
	{scale: 4, divisor: 0},  // quant16
	{scale: 13, divisor: 1}, // quant20
	{scale: 23, divisor: 2}, // quant24
	{scale: 5, divisor: 0},  // quant32
	{scale: 16, divisor: 1}, // quant40
	{scale: 28, divisor: 2}, // quant48
	{scale: 6, divisor: 0},  // quant64
	{scale: 19, divisor: 1}, // quant80
	{scale: 33, divisor: 2}, // quant96
	{scale: 7, divisor: 0},  // quant128
	{scale: 22, divisor: 1}, // quant160
	{scale: 38, divisor: 2}, // quant192
	{scale: 8, divisor: 0},  // quant256
}

func iseSequenceBitCount(charCount int, q quantMethod) int {
	if int(q) < 0 || int(q) >= len(iseSizes) {
		return 1024
	}
	e := iseSizes[q]
	divisor := int((e.divisor << 1) + 1)
	return (int(e.scale)*charCount + divisor - 1) / divisor
}

const (
	iseQuantLUTMaxChars = 32
	iseQuantLUTMaxBits  = 128
)

var quantLevelForISELUT [iseQuantLUTMaxChars + 1][iseQuantLUTMaxBits + 1]int16

func init() {
	for cc := 0; cc <= iseQuantLUTMaxChars; cc++ {
		for b := 0; b <= iseQuantLUTMaxBits; b++ {
			quantLevelForISELUT[cc][b] = -1
		}
	}
	for cc := 1; cc <= iseQuantLUTMaxChars; cc++ {
		for b := 0; b <= iseQuantLUTMaxBits; b++ {
			best := int16(-1)
			for q := int(quant256); q >= int(quant2); q-- {
				if iseSequenceBitCount(cc, quantMethod(q)) <= b {
					best = int16(q)
					break
				}
			}
			quantLevelForISELUT[cc][b] = best
		}
	}
}

// quantLevelForISE returns the highest-precision quant level whose ISE
// encoding of charCount characters fits in bitsAvailable bits, or -1.
func quantLevelForISE(charCount, bitsAvailable int) int {
	if charCount <= 0 || bitsAvailable < 0 {
		return -1
	}
	if bitsAvailable > iseQuantLUTMaxBits {
		bitsAvailable = iseQuantLUTMaxBits
	}
	if charCount <= iseQuantLUTMaxChars {
		return int(quantLevelForISELUT[charCount][bitsAvailable])
	}
	best := -1
	for q := int(quant256); q >= int(quant2); q-- {
		if iseSequenceBitCount(charCount, quantMethod(q)) <= bitsAvailable {
			best = q
			break
		}
	}
	return best
}
