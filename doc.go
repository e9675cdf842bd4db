/*
Package decimal128 implements immutable decimal floating-point numbers
modeled on the [IEEE 754-2008] decimal128 interchange format. It is
designed for applications that must carry decimal fractions exactly,
such as money amounts: 0.1 + 0.2 is exactly 0.3, never
0.30000000000000004.

# Representation

[Decimal] is a struct with three fields:

  - Form: whether the decimal is finite, infinite, or not-a-number.
  - Sign: a boolean indicating whether the decimal is negative.
  - Magnitude: the significant digits together with the position of the
    decimal point, counted from the first significant digit.
    For example, significant digits 123 with the point at position 1
    represent the value 1.23, and with the point at position 3 the
    value 123.

The magnitude is always normalized: it carries no leading or trailing
zeros, so every finite value has exactly one representation and decimals
may be compared with == up to the sign of zero. The zero [Decimal] is
the numeric value 0.

# Constraints

A finite decimal carries at most 34 significant digits, and its decimal
point sits within 6144 positions of the first significant digit in
either direction:

	| Attribute               | Value         |
	| ----------------------- | ------------- |
	| Precision               | 34            |
	| Maximum Exponent (Emax) | 6144          |
	| Minimum Exponent (Emin) | -6143         |
	| Rounding Method         | Half To Even  |

Construction is asymmetric about the decimal point. A value with a
fractional part is rounded half-to-even to 34 significant digits, while
an integer with more than 34 digits is rejected with an error, because
dropping integer digits would change the magnitude of the value.

Special values are fully supported: NaN, Infinity and -Infinity parse,
print, and flow through arithmetic following the usual floating-point
conventions, and zero is signed. Operations involving special values
never return errors; invalid combinations, such as dividing zero by
zero, resolve to NaN.

# Operations

Each binary operation on finite operands is carried out in two steps:

 1. Both operands are lifted to exact fractions of [big.Int] values and
    the operation is performed with infinite precision.

 2. The exact result is rounded half-to-even to 34 significant digits.
    If the integer part of the result does not fit in 34 digits, an
    overflow error is returned.

The result is therefore always the one obtained by computing the exact
mathematical result and rounding once, with the single exception of
[Decimal.Pow], which multiplies step by step with intermediate rounding
and may be off by a few units in the last place for large exponents.

# Rounding

In addition to the implicit half-to-even rounding of arithmetic
results, [Decimal.Round] rounds to a given number of decimal places
under any of nine rounding modes, from [RoundCeiling] through
[RoundHalfTrunc]. The directed modes [RoundCeiling], [RoundFloor],
[RoundExpand] and [RoundTrunc] ignore the discarded digits' values;
the half modes differ only in how they break ties.

[Decimal.Trunc], [Decimal.Ceil], [Decimal.Floor] and
[Decimal.ToDecimalPlaces] provide fixed rounding policies of their
own; note that [Decimal.Floor] truncates rather than floors negative
values, and [Decimal.ToDecimalPlaces] always rounds the last kept digit
up when digits are discarded. See the documentation for each method for
details.

# Errors

All methods are panic-free and pure. Errors are returned only for
out-of-range results and malformed inputs:

  - Overflow.
    Operations whose result has an integer part longer than 34 digits,
    or a decimal point more than 6144 positions away from the first
    significant digit, return an error.

  - Invalid input.
    [Parse] returns an error for text matching none of the accepted
    formats, and [Decimal.Pow] for an exponent that is not an integer.

Division by zero is not an error: it returns NaN, as does any other
invalid combination of special operands.

[IEEE 754-2008]: https://en.wikipedia.org/wiki/IEEE_754-2008_revision
[big.Int]: https://pkg.go.dev/math/big#Int
*/
package decimal128
