package decimal128

import "strings"

// dseq (Digit SEQuence) is an unsigned decimal magnitude in normalized
// form. coef holds the significant digits as ASCII with no leading or
// trailing zeros, and exp is the length of the integer part, i.e. the
// position of the decimal point counted from the first significant
// digit. exp may exceed len(coef) (trailing integer zeros) or be
// negative or zero (leading fractional zeros). The zero magnitude is
// the empty coef with exp 0.
//
// The numeric value of a magnitude is coef * 10^(exp - prec), where
// coef is read as an integer and prec is the number of significant
// digits. For example, {"123", 1} is 1.23, {"5", 3} is 500, and
// {"5", -1} is 0.005.
type dseq struct {
	coef string
	exp  int
}

// newDseq builds a normalized magnitude from the raw digit strings of
// the integer and fractional parts.
func newDseq(ipart, fpart string) dseq {
	s := ipart + fpart
	start := 0
	for start < len(s) && s[start] == '0' {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == '0' {
		end--
	}
	if start == end {
		return dseq{}
	}
	return dseq{coef: s[start:end], exp: len(ipart) - start}
}

// makeDseq normalizes a raw digit buffer with a given integer-part
// length into a dseq, stripping leading and trailing zeros.
func makeDseq(buf []digit, exp int) dseq {
	start := 0
	for start < len(buf) && buf[start] == 0 {
		start++
	}
	end := len(buf)
	for end > start && buf[end-1] == 0 {
		end--
	}
	if start == end {
		return dseq{}
	}
	return dseq{coef: digitString(buf[start:end]), exp: exp - start}
}

func stringToDigits(s string) []digit {
	buf := make([]digit, len(s))
	for i := 0; i < len(s); i++ {
		buf[i] = digit(s[i] - '0')
	}
	return buf
}

func digitString(buf []digit) string {
	b := make([]byte, len(buf))
	for i, d := range buf {
		b[i] = byte(d) + '0'
	}
	return string(b)
}

// prec returns the number of significant digits.
// prec assumes that 0 has no digits.
func (s dseq) prec() int {
	return len(s.coef)
}

// isInt reports whether the fractional part is empty, i.e. the decimal
// point sits at or beyond the last significant digit.
func (s dseq) isInt() bool {
	return s.exp >= len(s.coef)
}

// fracPrec returns the number of digits after the decimal point,
// counting the leading fractional zeros of magnitudes below one.
func (s dseq) fracPrec() int {
	if s.isInt() {
		return 0
	}
	return len(s.coef) - s.exp
}

// parts splits the magnitude into its raw integer and fractional digit
// strings. The integer part is empty for magnitudes below one.
func (s dseq) parts() (string, string) {
	switch {
	case s.prec() == 0:
		return "", ""
	case s.exp >= len(s.coef):
		return s.coef + strings.Repeat("0", s.exp-len(s.coef)), ""
	case s.exp <= 0:
		return "", strings.Repeat("0", -s.exp) + s.coef
	default:
		return s.coef[:s.exp], s.coef[s.exp:]
	}
}

// render formats the magnitude as plain decimal notation.
// An empty integer part renders with a leading 0.
func (s dseq) render() string {
	ip, fp := s.parts()
	if ip == "" {
		ip = "0"
	}
	if fp == "" {
		return ip
	}
	return ip + "." + fp
}

// roundPrec rounds the magnitude to at most prec significant digits
// using the half-to-even rule, preserving the position of the decimal
// point. A carry off the most significant digit raises the exponent.
func (s dseq) roundPrec(prec int) dseq {
	if len(s.coef) <= prec {
		return s
	}
	buf := stringToDigits(s.coef[:prec])
	r := digit(s.coef[prec] - '0')
	buf[prec-1] = roundDigit(RoundHalfEven, false, buf[prec-1], r)
	buf, carried := propagate(buf)
	exp := s.exp
	if carried {
		buf = append([]digit{1}, buf...)
		exp++
	}
	return makeDseq(buf, exp)
}

// roundFrac applies one rounding step at n digits after the decimal
// point and propagates the carry. The caller ensures the fractional
// part has more than n digits.
func (s dseq) roundFrac(n int, neg bool, mode RoundingMode) dseq {
	ip, fp := s.parts()
	if ip == "" {
		ip = "0"
	}
	buf := stringToDigits(ip + fp[:n])
	r := digit(fp[n] - '0')
	buf[len(buf)-1] = roundDigit(mode, neg, buf[len(buf)-1], r)
	buf, carried := propagate(buf)
	if carried {
		buf = append([]digit{1}, buf...)
	}
	cut := len(buf) - n
	return newDseq(digitString(buf[:cut]), digitString(buf[cut:]))
}

// toPlaces truncates the fractional part to n digits, incrementing the
// last kept digit by one to account for the discarded remainder,
// whatever its magnitude. The caller ensures the fractional part has
// more than n digits.
func (s dseq) toPlaces(n int) dseq {
	ip, fp := s.parts()
	if ip == "" {
		ip = "0"
	}
	buf := stringToDigits(ip + fp[:n])
	buf[len(buf)-1]++
	buf, carried := propagate(buf)
	if carried {
		buf = append([]digit{1}, buf...)
	}
	cut := len(buf) - n
	return newDseq(digitString(buf[:cut]), digitString(buf[cut:]))
}

// succ returns the integer magnitude s + 1.
// succ assumes s is integer-valued.
func (s dseq) succ() dseq {
	buf := stringToDigits(s.coef)
	for len(buf) < s.exp {
		buf = append(buf, 0)
	}
	if len(buf) == 0 {
		buf = []digit{0}
	}
	buf[len(buf)-1]++
	buf, carried := propagate(buf)
	if carried {
		buf = append([]digit{1}, buf...)
	}
	return makeDseq(buf, len(buf))
}
