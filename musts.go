package decimal128

import "fmt"

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal) Decimal {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal) Decimal {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal) Decimal {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal) MustRem(e Decimal) Decimal {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Decimal.Pow] but panics if computing error.
func (d Decimal) MustPow(e Decimal) Decimal {
	f, err := d.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", e, err))
	}
	return f
}

// MustRound is like [Decimal.Round] but panics if computing error.
func (d Decimal) MustRound(n int, mode RoundingMode) Decimal {
	f, err := d.Round(n, mode)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v, %v) failed: %v", n, mode, err))
	}
	return f
}
