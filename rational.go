package decimal128

import (
	"math/big"
	"strings"
)

// brat (Big RATional) is an exact fraction of two big.Int values.
// The denominator is always positive; the sign lives in the numerator.
// Combinators write their result into the receiver and never mutate
// their operands, so intermediate values of a multi-step computation
// stay exact and reusable.
type brat struct {
	num big.Int
	den big.Int
}

// bigTen is the shared base for decimal digit shifts.
var bigTen = big.NewInt(10)

// setDseq sets z to the exact value of the magnitude s, negated when
// neg is set. The value is coef * 10^(exp - prec), with no special
// cases for zero or powers of ten.
func (z *brat) setDseq(neg bool, s dseq) *brat {
	z.den.SetInt64(1)
	if s.prec() == 0 {
		z.num.SetInt64(0)
		return z
	}
	z.num.SetString(s.coef, 10)
	if shift := s.exp - s.prec(); shift >= 0 {
		p := new(big.Int).Exp(bigTen, big.NewInt(int64(shift)), nil)
		z.num.Mul(&z.num, p)
	} else {
		z.den.Exp(bigTen, big.NewInt(int64(-shift)), nil)
	}
	if neg {
		z.num.Neg(&z.num)
	}
	return z
}

func (z *brat) sign() int {
	return z.num.Sign()
}

// cmp compares z and x by cross-multiplication and returns -1, 0 or +1.
func (z *brat) cmp(x *brat) int {
	l := new(big.Int).Mul(&z.num, &x.den)
	r := new(big.Int).Mul(&x.num, &z.den)
	return l.Cmp(r)
}

// add calculates z = x + y.
func (z *brat) add(x, y *brat) *brat {
	n := new(big.Int).Mul(&x.num, &y.den)
	m := new(big.Int).Mul(&y.num, &x.den)
	z.den.Mul(&x.den, &y.den)
	z.num.Add(n, m)
	return z
}

// sub calculates z = x - y.
func (z *brat) sub(x, y *brat) *brat {
	n := new(big.Int).Mul(&x.num, &y.den)
	m := new(big.Int).Mul(&y.num, &x.den)
	z.den.Mul(&x.den, &y.den)
	z.num.Sub(n, m)
	return z
}

// mul calculates z = x * y.
func (z *brat) mul(x, y *brat) *brat {
	n := new(big.Int).Mul(&x.num, &y.num)
	z.den.Mul(&x.den, &y.den)
	z.num.Set(n)
	return z
}

// quo calculates z = x / y. y must be non-zero; zero divisors are
// intercepted before the rational layer is reached.
func (z *brat) quo(x, y *brat) *brat {
	n := new(big.Int).Mul(&x.num, &y.den)
	m := new(big.Int).Mul(&x.den, &y.num)
	if m.Sign() < 0 {
		n.Neg(n)
		m.Neg(m)
	}
	z.num.Set(n)
	z.den.Set(m)
	return z
}

// mod calculates the Euclidean remainder z = x - y*q with
// 0 <= z < |y|. y must be non-zero.
func (z *brat) mod(x, y *brat) *brat {
	a := new(big.Int).Mul(&x.num, &y.den)
	b := new(big.Int).Mul(&y.num, &x.den)
	q, m := new(big.Int), new(big.Int)
	q.DivMod(a, b, m)
	z.num.Set(m)
	z.den.Mul(&x.den, &y.den)
	return z
}

// text renders the exact value as plain decimal notation carrying at
// most prec significant digits. Excess digits are truncated: excess
// fractional digits are dropped and excess integer digits are replaced
// with zeros, so the magnitude of the value is preserved.
func (z *brat) text(prec int) string {
	var sb strings.Builder
	if z.num.Sign() < 0 {
		sb.WriteByte('-')
	}
	num := new(big.Int).Abs(&z.num)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, &z.den, r)

	is := q.String()
	n := 0
	if q.Sign() != 0 {
		n = len(is)
	}
	if n > prec {
		sb.WriteString(is[:prec])
		sb.WriteString(strings.Repeat("0", n-prec))
		return sb.String()
	}
	sb.WriteString(is)
	if r.Sign() == 0 || n == prec {
		return sb.String()
	}

	sb.WriteByte('.')
	d, rr := new(big.Int), new(big.Int)
	for r.Sign() != 0 && n < prec {
		r.Mul(r, bigTen)
		d.QuoRem(r, &z.den, rr)
		r.Set(rr)
		c := byte(d.Int64()) + '0'
		sb.WriteByte(c)
		if n > 0 || c != '0' {
			n++
		}
	}
	return sb.String()
}
