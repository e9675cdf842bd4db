package decimal128

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Decimal is an immutable decimal floating-point number with up to
// [MaxPrec] significant digits, modeled on the IEEE 754-2008 decimal128
// interchange format. The zero value is the numeric value of 0.
// It is safe for concurrent use by multiple goroutines.
//
// A decimal is one of three variants:
//
//   - finite: a sign and a digit-sequence magnitude.
//   - infinite: a sign only.
//   - not-a-number: a sign only; the sign does not affect rendering.
//
// Arithmetic on finite operands is performed exactly on rationals and
// rounded half-to-even to [MaxPrec] digits, so 0.1 + 0.2 is exactly 0.3.
// Special operands never produce errors; they resolve to NaN or signed
// infinity the way hardware floating point does.
type Decimal struct {
	form form
	neg  bool // indicates whether the decimal is negative
	coef dseq // the magnitude; meaningful only for finite decimals
}

// form classifies a decimal as finite, infinite, or not-a-number,
// so that a NaN with a populated magnitude is unrepresentable.
type form uint8

const (
	finite form = iota
	infinite
	notANumber
)

const (
	// MaxPrec is the maximum number of significant digits in a finite decimal.
	MaxPrec = 34
	// MinExp is the smallest allowed exponent, i.e. the lowest position of
	// the decimal point relative to the first significant digit.
	MinExp = -6143
	// MaxExp is the largest allowed exponent.
	MaxExp = 6144
)

var (
	errInvalidDecimal      = errors.New("invalid decimal")
	errCoefficientOverflow = errors.New("coefficient overflow")
	errExponentRange       = errors.New("exponent out of range")
	errScaleRange          = errors.New("scale out of range")
	errInvalidExponent     = errors.New("exponent is not an integer")
)

// The four accepted literal grammars, compiled once and tried in order.
var (
	nanPattern   = regexp.MustCompile(`^([+-]?)(?i:nan)$`)
	infPattern   = regexp.MustCompile(`^([+-]?)(?i:inf(?:inity)?)$`)
	expPattern   = regexp.MustCompile(`^([+-]?)([1-9][0-9]*)[eE]([+-]?[1-9][0-9]*)$`)
	plainPattern = regexp.MustCompile(`^([+-]?)([0-9]+(?:_[0-9]+)*)(?:\.([0-9](?:_?[0-9]+)*))?$`)
)

var one = Decimal{coef: dseq{coef: "1", exp: 1}}

// Parse converts a string to a (possibly rounded) decimal.
// The input string must be in one of the following formats:
//
//	NaN
//	-Infinity
//	inf
//	1.234
//	-1_000_000.25
//	12e4
//	5E-3
//
// Special values are matched case-insensitively. Underscores may
// separate digit groups in plain decimal notation only. Exponential
// notation places the decimal point after the given number of
// significand digits: 123E1 is 1.23, 123E5 is 12300, and 5E-2 is 0.005.
//
// Parse returns an error:
//   - if the string matches none of the accepted formats;
//   - if an integer value has more than [MaxPrec] digits
//     (a non-integer value is instead rounded half-to-even);
//   - if the exponent is outside [MinExp, MaxExp].
func Parse(s string) (Decimal, error) {
	switch {
	case nanPattern.MatchString(s):
		// The sign of NaN carries no meaning and is dropped.
		return Decimal{form: notANumber}, nil
	case infPattern.MatchString(s):
		return Decimal{form: infinite, neg: s[0] == '-'}, nil
	}
	if m := expPattern.FindStringSubmatch(s); m != nil {
		ipart, fpart, err := expandExponent(m[2], m[3])
		if err != nil {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		return newFinite(m[1] == "-", ipart, fpart)
	}
	if m := plainPattern.FindStringSubmatch(s); m != nil {
		ipart := strings.ReplaceAll(m[2], "_", "")
		fpart := strings.ReplaceAll(m[3], "_", "")
		return newFinite(m[1] == "-", ipart, fpart)
	}
	return Decimal{}, fmt.Errorf("parsing %q: %w", s, errInvalidDecimal)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// expandExponent rewrites exponential notation to the integer and
// fractional digit strings of the equivalent plain notation. The
// exponent counts the digits left of the decimal point, so a
// non-positive exponent prefixes |e| fractional zeros.
func expandExponent(mant, es string) (string, string, error) {
	e, err := strconv.Atoi(es)
	if err != nil {
		return "", "", fmt.Errorf("exponent %q: %w", es, errExponentRange)
	}
	// The rewrite materializes the padding zeros, so reject an
	// out-of-range exponent before allocating them.
	if e < MinExp || e > MaxExp {
		return "", "", fmt.Errorf("exponent %v is outside [%v, %v]: %w", e, MinExp, MaxExp, errExponentRange)
	}
	switch {
	case e <= 0:
		return "", strings.Repeat("0", -e) + mant, nil
	case e >= len(mant):
		return mant + strings.Repeat("0", e-len(mant)), "", nil
	default:
		return mant[:e], mant[e:], nil
	}
}

// newFinite builds a finite decimal from raw digit strings, applying
// the construction invariants: a non-integer with more than [MaxPrec]
// significant digits is rounded half-to-even, an integer with more
// than [MaxPrec] digits is rejected, and the exponent must fall
// within [MinExp, MaxExp].
func newFinite(neg bool, ipart, fpart string) (Decimal, error) {
	s := newDseq(ipart, fpart)
	if !s.isInt() && s.prec() > MaxPrec {
		s = s.roundPrec(MaxPrec)
	}
	if s.isInt() && s.prec() > MaxPrec {
		return Decimal{}, fmt.Errorf("integer with %v significant digit(s) exceeds the %v digit limit: %w", s.prec(), MaxPrec, errCoefficientOverflow)
	}
	if s.exp < MinExp || s.exp > MaxExp {
		return Decimal{}, fmt.Errorf("exponent %v is outside [%v, %v]: %w", s.exp, MinExp, MaxExp, errExponentRange)
	}
	return Decimal{neg: neg, coef: s}, nil
}

// parseFinite re-parses plain decimal text produced by the rational
// layer, finishing the half-to-even rounding to [MaxPrec] digits.
func parseFinite(s string) (Decimal, error) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	ipart, fpart, _ := strings.Cut(s, ".")
	return newFinite(neg, ipart, fpart)
}

func nan() Decimal {
	return Decimal{form: notANumber}
}

func inf(neg bool) Decimal {
	return Decimal{form: infinite, neg: neg}
}

// rat lifts a finite decimal to its exact rational value.
func (d Decimal) rat() *brat {
	return new(brat).setDseq(d.neg, d.coef)
}

// fromRat lowers an exact rational to a decimal, carrying one guard
// digit beyond [MaxPrec] into re-parsing.
func fromRat(r *brat) (Decimal, error) {
	return parseFinite(r.text(MaxPrec + 1))
}

// String implements the [fmt.Stringer] interface and returns the
// decimal in plain notation: NaN, Infinity, -Infinity, or digits with
// an optional point, such as -12.5 or 0.001.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	switch d.form {
	case notANumber:
		return "NaN"
	case infinite:
		if d.neg {
			return "-Infinity"
		}
		return "Infinity"
	}
	if d.neg {
		return "-" + d.coef.render()
	}
	return d.coef.render()
}

// ExponentialString returns the decimal as <significand>E<exponent>,
// where the significand is the significant digits without a point and
// the exponent is the length of the integer part. An empty significand
// renders as 0, so zero is 0E0.
//
// The input grammar does not accept an exponent with a leading zero,
// so output with exponent 0 (zero itself and values in [0.1, 1)) is
// not re-parseable; for every other finite decimal d,
// Parse(d.ExponentialString()) compares equal to d.
func (d Decimal) ExponentialString() string {
	if d.form != finite {
		return d.String()
	}
	sig := d.coef.coef
	if sig == "" {
		sig = "0"
	}
	s := sig + "E" + strconv.Itoa(d.coef.exp)
	if d.neg {
		return "-" + s
	}
	return s
}

// IsNaN returns true if d is a not-a-number value.
func (d Decimal) IsNaN() bool {
	return d.form == notANumber
}

// IsInf returns true if d is an infinity of either sign.
func (d Decimal) IsInf() bool {
	return d.form == infinite
}

// IsFinite returns true if d is neither infinite nor NaN.
func (d Decimal) IsFinite() bool {
	return d.form == finite
}

// IsNeg returns true if d carries a negative sign, including -0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d > 0, including positive infinity.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.IsNaN() && !d.IsZero()
}

// IsZero returns true if d is a zero of either sign.
func (d Decimal) IsZero() bool {
	return d.form == finite && d.coef.prec() == 0
}

// IsInt returns true if d is finite with an empty fractional part.
func (d Decimal) IsInt() bool {
	return d.form == finite && d.coef.isInt()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0, d == -0, or d is NaN
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.IsNaN() || d.IsZero():
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// Prec returns the number of significant digits.
// Prec assumes that 0 has no digits. It is 0 for NaN and infinities.
func (d Decimal) Prec() int {
	return d.coef.prec()
}

// Exponent returns the number of digits in the integer part of the
// magnitude; it is negative for values below 0.1 and 0 for NaN,
// infinities, and zero.
func (d Decimal) Exponent() int {
	return d.coef.exp
}

// Digits returns the integer-part and fractional-part digit strings of
// a finite decimal; the integer part of a value below one is "0".
// Both strings are empty for NaN and infinities.
func (d Decimal) Digits() (ipart, fpart string) {
	if d.form != finite {
		return "", ""
	}
	ipart, fpart = d.coef.parts()
	if ipart == "" {
		ipart = "0"
	}
	return ipart, fpart
}

// Abs returns d with the sign cleared.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Neg returns d with the opposite sign.
func (d Decimal) Neg() Decimal {
	d.neg = !d.neg
	return d
}

// Trunc returns d with its fractional digits dropped, rounding towards
// zero. The sign is kept, so Trunc(-0.5) is -0.
func (d Decimal) Trunc() Decimal {
	if d.form != finite || d.coef.isInt() {
		return d
	}
	ipart, _ := d.coef.parts()
	d.coef = newDseq(ipart, "")
	return d
}

// Ceil returns the smallest integer value greater than or equal to d.
func (d Decimal) Ceil() Decimal {
	if d.form != finite || d.coef.isInt() {
		return d
	}
	f := d.Trunc()
	if d.neg {
		return f
	}
	f.coef = f.coef.succ()
	return f
}

// Floor returns d with its fractional digits dropped. It is identical
// to [Decimal.Trunc]: a negative non-integer rounds towards zero, not
// towards negative infinity, so Floor(-2.5) is -2. Use [Decimal.Round]
// with [RoundFloor] for a true floor.
func (d Decimal) Floor() Decimal {
	return d.Trunc()
}

// Add returns the sum of d and e, rounded half-to-even to [MaxPrec]
// digits. Opposite infinities sum to NaN; otherwise an infinite
// operand is returned unchanged.
//
// Add returns an error if the integer part of the sum has more than
// [MaxPrec] digits.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	if d.IsNaN() || e.IsNaN() {
		return nan(), nil
	}
	if d.IsInf() && e.IsInf() {
		if d.neg != e.neg {
			return nan(), nil
		}
		return d, nil
	}
	if d.IsInf() {
		return d, nil
	}
	if e.IsInf() {
		return e, nil
	}
	return fromRat(new(brat).add(d.rat(), e.rat()))
}

// Sub returns the difference of d and e, rounded half-to-even to
// [MaxPrec] digits. Subtracting an infinity from a like-signed
// infinity gives NaN; an infinite d is otherwise returned unchanged,
// and an infinite e is returned negated.
//
// Sub returns an error if the integer part of the difference has more
// than [MaxPrec] digits.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	if d.IsNaN() || e.IsNaN() {
		return nan(), nil
	}
	if d.IsInf() {
		if e.IsInf() && d.neg == e.neg {
			return nan(), nil
		}
		return d, nil
	}
	if e.IsInf() {
		return e.Neg(), nil
	}
	return fromRat(new(brat).sub(d.rat(), e.rat()))
}

// Mul returns the product of d and e, rounded half-to-even to
// [MaxPrec] digits. An infinity times zero is NaN; any other infinite
// operand gives an infinity whose sign follows the sign rule. A zero
// result is likewise signed by the sign rule.
//
// Mul returns an error if the integer part of the product has more
// than [MaxPrec] digits.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	if d.IsNaN() || e.IsNaN() {
		return nan(), nil
	}
	if d.IsInf() || e.IsInf() {
		if d.IsZero() || e.IsZero() {
			return nan(), nil
		}
		return inf(d.neg != e.neg), nil
	}
	// The rational layer renders zero unsigned, so zero operands take
	// the sign rule here.
	if d.IsZero() || e.IsZero() {
		return Decimal{neg: d.neg != e.neg}, nil
	}
	return fromRat(new(brat).mul(d.rat(), e.rat()))
}

// Quo returns the quotient of d and e, rounded half-to-even to
// [MaxPrec] digits. Division by a finite zero gives NaN regardless of
// the dividend, as does infinity over infinity. An infinite dividend
// gives an infinity and an infinite divisor gives a zero, both signed
// by the sign rule.
//
// Quo returns an error if the integer part of the quotient has more
// than [MaxPrec] digits.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if d.IsNaN() || e.IsNaN() {
		return nan(), nil
	}
	if d.IsInf() && e.IsInf() {
		return nan(), nil
	}
	if e.IsZero() {
		return nan(), nil
	}
	if d.IsInf() {
		return inf(d.neg != e.neg), nil
	}
	if e.IsInf() || d.IsZero() {
		return Decimal{neg: d.neg != e.neg}, nil
	}
	return fromRat(new(brat).quo(d.rat(), e.rat()))
}

// Rem returns the Euclidean remainder of d by e: the unique value
// r = d - e*q with integer q and 0 <= r < |e|, so Rem(-7, 3) is 2.
// An infinite d or a zero e gives NaN; an infinite e returns d
// unchanged.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	if d.IsNaN() || e.IsNaN() {
		return nan(), nil
	}
	if d.IsInf() {
		return nan(), nil
	}
	if e.IsInf() {
		return d, nil
	}
	if e.IsZero() {
		return nan(), nil
	}
	return fromRat(new(brat).mod(d.rat(), e.rat()))
}

// Inv returns 1 / d. The reciprocal of an infinity is a signed zero
// and the reciprocal of any zero is NaN.
func (d Decimal) Inv() (Decimal, error) {
	return one.Quo(d)
}

// Pow returns d raised to the integer-valued exponent e, computed by
// repeated multiplication with intermediate rounding, so the cost is
// linear in the exponent. A negative exponent is computed as the
// reciprocal of the positive power.
//
// Pow returns an error if e is not an integer-valued finite decimal or
// does not fit in an int64.
func (d Decimal) Pow(e Decimal) (Decimal, error) {
	if d.IsNaN() || e.IsNaN() {
		return nan(), nil
	}
	if !e.IsInt() {
		return Decimal{}, fmt.Errorf("power %q: %w", e, errInvalidExponent)
	}
	n, err := e.int64()
	if err != nil {
		return Decimal{}, err
	}
	if n < 0 {
		f, err := d.Pow(e.Neg())
		if err != nil {
			return Decimal{}, err
		}
		return f.Inv()
	}
	f := one
	for i := int64(0); i < n; i++ {
		f, err = f.Mul(d)
		if err != nil {
			return Decimal{}, err
		}
	}
	return f, nil
}

// int64 converts an integer-valued decimal to an int64.
func (d Decimal) int64() (int64, error) {
	ipart, _ := d.coef.parts()
	if ipart == "" {
		ipart = "0"
	}
	n, err := strconv.ParseInt(ipart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("power %v: %w", d, errExponentRange)
	}
	if d.neg {
		n = -n
	}
	return n, nil
}

// Round rounds d to n digits after the decimal point using the given
// rounding mode. If d has n or fewer fractional digits, it is returned
// unchanged. NaN and infinities are returned unchanged.
//
// The rounding decision looks at the first discarded digit only, so
// for the half modes a tie is any discarded sequence beginning with 5.
//
// Round returns an error if n is negative.
func (d Decimal) Round(n int, mode RoundingMode) (Decimal, error) {
	if n < 0 {
		return Decimal{}, fmt.Errorf("cannot round to %v decimal place(s): %w", n, errScaleRange)
	}
	if d.form != finite || d.coef.fracPrec() <= n {
		return d, nil
	}
	s := d.coef.roundFrac(n, d.neg, mode)
	ipart, fpart := s.parts()
	return newFinite(d.neg, ipart, fpart)
}

// ToDecimalPlaces truncates d to n digits after the decimal point,
// incrementing the last kept digit whenever any digits are discarded.
// The kept digit is biased upward regardless of the magnitude of the
// discarded remainder, so ToDecimalPlaces(3.335, 2) and
// ToDecimalPlaces(3.331, 2) are both 3.34; this is not
// round-to-nearest. If d has n or fewer fractional digits, it is
// returned unchanged.
//
// ToDecimalPlaces returns an error if n is negative.
func (d Decimal) ToDecimalPlaces(n int) (Decimal, error) {
	if n < 0 {
		return Decimal{}, fmt.Errorf("cannot truncate to %v decimal place(s): %w", n, errScaleRange)
	}
	if d.form != finite || d.coef.fracPrec() <= n {
		return d, nil
	}
	s := d.coef.toPlaces(n)
	ipart, fpart := s.parts()
	return newFinite(d.neg, ipart, fpart)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e (zeros of both signs compare equal)
//	+1 if d > e
//
// ok is false if either operand is NaN, in which case the operands are
// unordered and the int result is meaningless. Infinities compare by
// sign and beyond every finite value.
func (d Decimal) Cmp(e Decimal) (_ int, ok bool) {
	if d.IsNaN() || e.IsNaN() {
		return 0, false
	}
	switch {
	case d.IsInf() && e.IsInf():
		switch {
		case d.neg == e.neg:
			return 0, true
		case d.neg:
			return -1, true
		}
		return 1, true
	case d.IsInf():
		if d.neg {
			return -1, true
		}
		return 1, true
	case e.IsInf():
		if e.neg {
			return 1, true
		}
		return -1, true
	}
	return d.rat().cmp(e.rat()), true
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(v any) error {
	switch v := v.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case int64:
		return d.UnmarshalText([]byte(strconv.FormatInt(v, 10)))
	case float64:
		return d.UnmarshalText([]byte(strconv.FormatFloat(v, 'f', -1, 64)))
	default:
		return fmt.Errorf("failed to convert from %T to %T", v, Decimal{})
	}
}
