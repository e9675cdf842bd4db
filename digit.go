package decimal128

// digit is a single decimal digit in the range 0 through 9.
type digit int8

// noDigit marks the absence of a digit at a position, such as the
// boundary between the integer and fractional parts of a magnitude.
// It appears only in signatures and locals, never inside a stored
// digit sequence.
const noDigit digit = -1

// RoundingMode determines how the last kept digit is adjusted when
// trailing digits are discarded.
type RoundingMode uint8

const (
	// RoundCeiling rounds towards positive infinity.
	RoundCeiling RoundingMode = iota
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// RoundExpand rounds away from zero.
	RoundExpand
	// RoundTrunc rounds towards zero.
	RoundTrunc
	// RoundHalfEven rounds to nearest; ties go to the even digit.
	RoundHalfEven
	// RoundHalfExpand rounds to nearest; ties go away from zero.
	RoundHalfExpand
	// RoundHalfCeiling rounds to nearest; ties go towards positive infinity.
	RoundHalfCeiling
	// RoundHalfFloor rounds to nearest; ties go towards negative infinity.
	RoundHalfFloor
	// RoundHalfTrunc rounds to nearest; ties go towards zero.
	RoundHalfTrunc
)

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch m {
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	case RoundExpand:
		return "expand"
	case RoundTrunc:
		return "trunc"
	case RoundHalfEven:
		return "half-even"
	case RoundHalfExpand:
		return "half-expand"
	case RoundHalfCeiling:
		return "half-ceiling"
	case RoundHalfFloor:
		return "half-floor"
	case RoundHalfTrunc:
		return "half-trunc"
	}
	return "unknown"
}

// roundDigit decides a single rounding step. d is the digit being
// kept (noDigit stands for an empty position and reads as 0), r is the
// first discarded digit, and neg is the sign of the owning numeral.
// The result is d or d+1; a result of 10 signals a carry into the next
// higher position, which the caller must propagate.
func roundDigit(mode RoundingMode, neg bool, d, r digit) digit {
	if d == noDigit {
		d = 0
	}
	var up bool
	switch mode {
	case RoundCeiling:
		up = !neg
	case RoundFloor:
		up = neg
	case RoundExpand:
		up = true
	case RoundTrunc:
		up = false
	case RoundHalfEven:
		up = r > 5 || (r == 5 && d%2 != 0)
	case RoundHalfExpand:
		up = r >= 5
	case RoundHalfCeiling:
		up = r >= 5 && !neg
	case RoundHalfFloor:
		up = r > 5 || (r == 5 && neg)
	case RoundHalfTrunc:
		up = r > 5
	}
	if up {
		return d + 1
	}
	return d
}

// propagate resolves a digit-or-ten value at the least significant
// position of buf, carrying into higher positions. It reports whether
// a carry ran off the most significant digit.
func propagate(buf []digit) ([]digit, bool) {
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] <= 9 {
			return buf, false
		}
		buf[i] -= 10
		if i == 0 {
			return buf, true
		}
		buf[i-1]++
	}
	return buf, false
}
